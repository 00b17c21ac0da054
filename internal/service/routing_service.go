package service

import (
	"context"

	"github.com/brunosilvadev/rinha-2025/config"
	"github.com/brunosilvadev/rinha-2025/internal/core/domain"
	"github.com/brunosilvadev/rinha-2025/internal/core/ports"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// RoutingServiceImpl implements ports.RoutingService. The default processor
// charges the lower fee, so routing prefers it whenever it is believed
// usable and only pays the fallback premium when the default is tripped or
// demonstrably slow. Unknown health is never preferred over a confidently
// healthy peer.
type RoutingServiceImpl struct {
	breaker ports.CircuitBreakerService
	health  ports.HealthService
	cfg     config.HealthConfig
	log     zerolog.Logger
}

// NewRoutingService creates a new RoutingServiceImpl.
func NewRoutingService(
	breaker ports.CircuitBreakerService,
	health ports.HealthService,
	cfg config.HealthConfig,
	log zerolog.Logger,
) *RoutingServiceImpl {
	return &RoutingServiceImpl{
		breaker: breaker,
		health:  health,
		cfg:     cfg,
		log:     log,
	}
}

// SelectProcessor returns the processor a dispatch attempt should try first.
// The policy reads top to bottom; apart from the breaker's lazy half-open
// promotion it mutates nothing.
func (s *RoutingServiceImpl) SelectProcessor(ctx context.Context) domain.ProcessorID {
	var def, fb domain.CircuitRecord
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		def = s.breaker.State(gctx, domain.ProcessorDefault)
		return nil
	})
	g.Go(func() error {
		fb = s.breaker.State(gctx, domain.ProcessorFallback)
		return nil
	})
	_ = g.Wait()

	// Default tripped: route around it, unless both are tripped, in which
	// case failing fast on the cheaper processor beats gambling the fee.
	if def.State == domain.CircuitOpen {
		if fb.State != domain.CircuitOpen {
			return domain.ProcessorFallback
		}
		return domain.ProcessorDefault
	}

	// Default probing recovery: send it live traffic only when its health
	// looks sane, otherwise keep paying the fallback premium a bit longer.
	if def.State == domain.CircuitHalfOpen {
		if snap := s.health.Snapshot(ctx, domain.ProcessorDefault); snap != nil && !snap.Failing {
			return domain.ProcessorDefault
		}
		return domain.ProcessorFallback
	}

	if fb.State == domain.CircuitOpen {
		return domain.ProcessorDefault
	}

	// Fallback probing recovery: its probe only matters when we would pick
	// it anyway, so require confident health before spending traffic on it.
	if fb.State == domain.CircuitHalfOpen {
		if snap := s.health.Snapshot(ctx, domain.ProcessorFallback); snap != nil && !snap.Failing {
			return domain.ProcessorFallback
		}
		return domain.ProcessorDefault
	}

	// Both closed. Start the fallback health fetch concurrently, but answer
	// on the default's snapshot alone when it qualifies: the fast path never
	// waits for the fallback fetch.
	fbSnap := make(chan *domain.HealthSnapshot, 1)
	go func() {
		fbSnap <- s.health.Snapshot(ctx, domain.ProcessorFallback)
	}()

	if snap := s.health.Snapshot(ctx, domain.ProcessorDefault); snap != nil && snap.Usable(s.cfg.LatencyThresholdMs) {
		return domain.ProcessorDefault
	}

	if snap := <-fbSnap; snap != nil && !snap.Failing {
		return domain.ProcessorFallback
	}

	// Nothing is confidently healthy; the cheap processor is the least bad
	// guess.
	return domain.ProcessorDefault
}
