package service

import (
	"context"
	"fmt"
	"time"

	"github.com/brunosilvadev/rinha-2025/config"
	"github.com/brunosilvadev/rinha-2025/internal/core/domain"
	"github.com/brunosilvadev/rinha-2025/internal/core/ports"
	"github.com/brunosilvadev/rinha-2025/pkg/apperror"
	"github.com/brunosilvadev/rinha-2025/pkg/async"
	"github.com/brunosilvadev/rinha-2025/pkg/metrics"

	"github.com/rs/zerolog"
)

// summaryWriteTimeout bounds the write-behind counter update, which runs on
// the background pool detached from the request that triggered it.
const summaryWriteTimeout = 2 * time.Second

// PaymentServiceImpl implements ports.PaymentService: route, POST, fall back
// to the other processor, retry with backoff, and keep the breaker and the
// summary counters honest about what happened.
type PaymentServiceImpl struct {
	routing ports.RoutingService
	breaker ports.CircuitBreakerService
	client  ports.ProcessorClient
	summary ports.SummaryStore
	bg      *async.Group
	cfg     config.DispatchConfig
	log     zerolog.Logger
	now     func() time.Time
}

// NewPaymentService creates a new PaymentServiceImpl.
func NewPaymentService(
	routing ports.RoutingService,
	breaker ports.CircuitBreakerService,
	client ports.ProcessorClient,
	summary ports.SummaryStore,
	bg *async.Group,
	cfg config.DispatchConfig,
	log zerolog.Logger,
) *PaymentServiceImpl {
	return &PaymentServiceImpl{
		routing: routing,
		breaker: breaker,
		client:  client,
		summary: summary,
		bg:      bg,
		cfg:     cfg,
		log:     log,
		now:     time.Now,
	}
}

// ProcessPayment dispatches one payment. Each attempt asks routing for a
// preference P, tries P, then the other processor Q, recording every outcome
// into the breaker. The first accepted POST wins; the summary counter of the
// accepting processor is incremented exactly once. requestedAt is stamped
// before the first attempt and never changes, so the upstream's idempotency
// by correlationId sees a stable record across retries.
func (s *PaymentServiceImpl) ProcessPayment(ctx context.Context, req ports.PaymentRequest) (*ports.DispatchResult, error) {
	if req.Amount <= 0 {
		return nil, apperror.ErrInvalidAmount()
	}

	enriched := domain.PaymentRequest{
		CorrelationID: req.CorrelationID,
		Amount:        req.Amount,
	}.Enrich(s.now())

	attempts := 0
	var lastErr error

	for i := 0; i < s.cfg.MaxAttempts; i++ {
		preferred := s.routing.SelectProcessor(ctx)

		for _, p := range []domain.ProcessorID{preferred, preferred.Other()} {
			attempts++
			err := s.post(ctx, p, enriched)
			if err == nil {
				s.settle(ctx, p, enriched)
				return &ports.DispatchResult{
					Processor:   p,
					RequestedAt: enriched.RequestedAt,
					Attempts:    attempts,
				}, nil
			}
			lastErr = err

			// A dead caller aborts here, before the failure is pinned on a
			// processor that may have done nothing wrong.
			if ctx.Err() != nil {
				return nil, fmt.Errorf("dispatch aborted: %w", ctx.Err())
			}
			s.breaker.RecordFailure(ctx, p)
		}

		if i < s.cfg.MaxAttempts-1 {
			select {
			case <-ctx.Done():
				return nil, fmt.Errorf("dispatch aborted: %w", ctx.Err())
			case <-time.After(s.backoffFor(i)):
			}
		}
	}

	metrics.DispatchExhaustedTotal.Inc()
	s.log.Error().
		Str("correlation_id", req.CorrelationID.String()).
		Int("attempts", attempts).
		Err(lastErr).
		Msg("payment dispatch exhausted")
	return nil, apperror.ErrDispatchExhausted(lastErr)
}

// post performs one upstream attempt and feeds the metrics.
func (s *PaymentServiceImpl) post(ctx context.Context, p domain.ProcessorID, enriched domain.EnrichedPayment) error {
	start := time.Now()
	err := s.client.SubmitPayment(ctx, p, enriched)
	metrics.DispatchAttemptDuration.WithLabelValues(p.String()).Observe(float64(time.Since(start).Milliseconds()))

	if err != nil {
		metrics.DispatchTotal.WithLabelValues(p.String(), "failure").Inc()
		s.log.Warn().Err(err).
			Str("correlation_id", enriched.CorrelationID.String()).
			Str("processor", p.String()).
			Msg("upstream payment attempt failed")
		return err
	}
	metrics.DispatchTotal.WithLabelValues(p.String(), "success").Inc()
	return nil
}

// settle records a successful dispatch: the breaker learns about the success
// first, then the processor's summary counters move. The counter update is
// scheduled write-behind; when the background pool is full it runs inline,
// because a returned 200 must eventually be counted somewhere.
func (s *PaymentServiceImpl) settle(ctx context.Context, p domain.ProcessorID, enriched domain.EnrichedPayment) {
	s.breaker.RecordSuccess(ctx, p)

	cents := domain.AmountToCents(enriched.Amount)
	scheduled := s.bg.TryGo(func() {
		bgCtx, cancel := context.WithTimeout(context.Background(), summaryWriteTimeout)
		defer cancel()
		s.increment(bgCtx, p, enriched, cents)
	})
	if !scheduled {
		s.increment(ctx, p, enriched, cents)
	}
}

func (s *PaymentServiceImpl) increment(ctx context.Context, p domain.ProcessorID, enriched domain.EnrichedPayment, cents int64) {
	if err := s.summary.Increment(ctx, p, cents); err != nil {
		s.log.Error().Err(err).
			Str("correlation_id", enriched.CorrelationID.String()).
			Str("processor", p.String()).
			Msg("summary increment failed, totals will under-report")
	}
}

// backoffFor returns the sleep before attempt i+1, clamping past the end of
// the configured steps.
func (s *PaymentServiceImpl) backoffFor(i int) time.Duration {
	if i >= len(s.cfg.Backoff) {
		return s.cfg.Backoff[len(s.cfg.Backoff)-1]
	}
	return s.cfg.Backoff[i]
}
