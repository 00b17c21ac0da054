package service

import (
	"context"
	"time"

	"github.com/brunosilvadev/rinha-2025/config"
	"github.com/brunosilvadev/rinha-2025/internal/core/domain"
	"github.com/brunosilvadev/rinha-2025/internal/core/ports"
	"github.com/brunosilvadev/rinha-2025/pkg/metrics"

	"github.com/rs/zerolog"
)

// CircuitBreakerServiceImpl implements ports.CircuitBreakerService over a
// shared store record per processor. All replicas work on the same record
// with plain read-modify-write; under concurrent updates a transition may be
// applied twice or a count lost, which only shifts a threshold crossing by a
// request or two. Coordination cost here would hurt more than the drift.
type CircuitBreakerServiceImpl struct {
	store ports.CircuitStore
	cfg   config.BreakerConfig
	log   zerolog.Logger
	now   func() time.Time
}

// NewCircuitBreakerService creates a new CircuitBreakerServiceImpl.
func NewCircuitBreakerService(store ports.CircuitStore, cfg config.BreakerConfig, log zerolog.Logger) *CircuitBreakerServiceImpl {
	return &CircuitBreakerServiceImpl{
		store: store,
		cfg:   cfg,
		log:   log,
		now:   time.Now,
	}
}

// State returns the effective breaker record. When the cooldown of an open
// breaker has elapsed the record is promoted to half-open and persisted so
// other replicas see the probe window too.
func (s *CircuitBreakerServiceImpl) State(ctx context.Context, p domain.ProcessorID) domain.CircuitRecord {
	rec, promoted := s.effective(ctx, p)
	if promoted {
		s.persist(ctx, p, rec, "half-open promotion")
		metrics.SetBreakerState(p, rec.State)
		s.log.Info().
			Str("processor", p.String()).
			Msg("circuit breaker half-open, probing")
	}
	return rec
}

// RecordSuccess feeds a dispatch success into the breaker.
// Closed: nothing to do. Open: dropped, the outcome belongs to a request
// that slipped through before the breaker opened. HalfOpen: counts toward
// closing.
func (s *CircuitBreakerServiceImpl) RecordSuccess(ctx context.Context, p domain.ProcessorID) {
	rec, _ := s.effective(ctx, p)

	switch rec.State {
	case domain.CircuitClosed:
		return
	case domain.CircuitOpen:
		return
	case domain.CircuitHalfOpen:
		rec.SuccessCount++
		if rec.SuccessCount >= s.cfg.SuccessThreshold {
			rec.State = domain.CircuitClosed
			rec.SuccessCount = 0
			rec.FailureCount = 0
			rec.LastStateChangeAt = s.now()
			metrics.SetBreakerState(p, rec.State)
			s.log.Info().
				Str("processor", p.String()).
				Msg("circuit breaker closed, processor recovered")
		}
		s.persist(ctx, p, rec, "success")
	}
}

// RecordFailure feeds a dispatch failure into the breaker.
// Closed: counts toward opening. Open: dropped. HalfOpen: the probe failed,
// straight back to open.
func (s *CircuitBreakerServiceImpl) RecordFailure(ctx context.Context, p domain.ProcessorID) {
	rec, _ := s.effective(ctx, p)
	now := s.now()

	switch rec.State {
	case domain.CircuitClosed:
		rec.FailureCount++
		rec.LastFailureAt = now
		if rec.FailureCount >= s.cfg.FailureThreshold {
			s.open(&rec, now)
			metrics.SetBreakerState(p, rec.State)
			s.log.Warn().
				Str("processor", p.String()).
				Int("failures", s.cfg.FailureThreshold).
				Msg("circuit breaker opened")
		}
		s.persist(ctx, p, rec, "failure")
	case domain.CircuitOpen:
		return
	case domain.CircuitHalfOpen:
		rec.LastFailureAt = now
		s.open(&rec, now)
		metrics.SetBreakerState(p, rec.State)
		s.log.Warn().
			Str("processor", p.String()).
			Msg("circuit breaker reopened, probe failed")
		s.persist(ctx, p, rec, "probe failure")
	}
}

// effective reads the stored record and applies the lazy open-to-half-open
// promotion in memory. It reports whether a promotion happened so State can
// persist it; the record functions fold the promotion into their own write.
// Store failures degrade to the default closed record.
func (s *CircuitBreakerServiceImpl) effective(ctx context.Context, p domain.ProcessorID) (domain.CircuitRecord, bool) {
	now := s.now()

	stored, err := s.store.Get(ctx, p)
	if err != nil {
		s.log.Warn().Err(err).
			Str("processor", p.String()).
			Msg("circuit state unavailable, assuming closed")
		return domain.DefaultCircuitRecord(now), false
	}
	if stored == nil {
		return domain.DefaultCircuitRecord(now), false
	}

	rec := *stored
	if rec.State == domain.CircuitOpen && now.Sub(rec.LastStateChangeAt) > s.cfg.Cooldown {
		rec.State = domain.CircuitHalfOpen
		rec.SuccessCount = 0
		rec.FailureCount = 0
		rec.LastStateChangeAt = now
		return rec, true
	}
	return rec, false
}

func (s *CircuitBreakerServiceImpl) open(rec *domain.CircuitRecord, now time.Time) {
	rec.State = domain.CircuitOpen
	rec.FailureCount = 0
	rec.SuccessCount = 0
	rec.LastStateChangeAt = now
}

// persist writes the record back, logging instead of failing. A lost write
// costs at most one breaker transition, which the next update re-derives.
func (s *CircuitBreakerServiceImpl) persist(ctx context.Context, p domain.ProcessorID, rec domain.CircuitRecord, cause string) {
	if err := s.store.Put(ctx, p, rec); err != nil {
		s.log.Warn().Err(err).
			Str("processor", p.String()).
			Str("cause", cause).
			Msg("circuit state write failed")
	}
}
