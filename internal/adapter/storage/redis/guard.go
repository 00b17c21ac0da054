package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/brunosilvadev/rinha-2025/pkg/metrics"

	"github.com/rs/zerolog"
	"github.com/sony/gobreaker"
)

// Guard is an in-process breaker around coordination store calls. When the
// store is unreachable every caller would otherwise eat the full dial timeout
// per request; once the guard trips, calls fail immediately and the services
// degrade to their store-less behavior until the store answers again.
//
// This breaker is replica-local and guards the store connection itself. It is
// unrelated to the shared per-processor breakers the store persists.
type Guard struct {
	cb  *gobreaker.CircuitBreaker
	log zerolog.Logger
}

// NewGuard creates a guard named for log and metric labels.
func NewGuard(name string, log zerolog.Logger) *Guard {
	settings := gobreaker.Settings{
		Name:        name,
		MaxRequests: 5,
		Timeout:     2 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			return counts.Requests >= 5 && failureRatio >= 0.6
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			log.Warn().
				Str("breaker", name).
				Str("from", from.String()).
				Str("to", to.String()).
				Msg("store guard state changed")
		},
	}

	return &Guard{cb: gobreaker.NewCircuitBreaker(settings), log: log}
}

// Do runs fn under the guard. The op label names the store operation for the
// failure metric. Context cancellation is checked before touching the breaker
// so a dead caller never counts against it.
func (g *Guard) Do(ctx context.Context, op string, fn func() error) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	_, err := g.cb.Execute(func() (interface{}, error) {
		return nil, fn()
	})
	if err != nil {
		metrics.StoreFailuresTotal.WithLabelValues(op).Inc()
		return fmt.Errorf("store %s: %w", op, err)
	}
	return nil
}
