package service

import (
	"context"
	"time"

	"github.com/brunosilvadev/rinha-2025/internal/core/domain"
	"github.com/brunosilvadev/rinha-2025/internal/core/ports"
	"github.com/brunosilvadev/rinha-2025/pkg/async"

	"github.com/rs/zerolog"
	"golang.org/x/sync/singleflight"
)

// healthWriteTimeout bounds the write-behind cache update, which runs on the
// background pool detached from the request that triggered it.
const healthWriteTimeout = 2 * time.Second

// HealthServiceImpl implements ports.HealthService: a read-through cache
// over the upstream health endpoints, shared across replicas via the store.
// The upstream rate-limits health probes hard, so cache misses are coalesced
// per processor with singleflight; concurrent callers wait for the one
// in-flight probe instead of stacking requests that would earn a 429.
type HealthServiceImpl struct {
	store  ports.HealthStore
	client ports.ProcessorClient
	bg     *async.Group
	flight singleflight.Group
	log    zerolog.Logger
}

// NewHealthService creates a new HealthServiceImpl.
func NewHealthService(
	store ports.HealthStore,
	client ports.ProcessorClient,
	bg *async.Group,
	log zerolog.Logger,
) *HealthServiceImpl {
	return &HealthServiceImpl{
		store:  store,
		client: client,
		bg:     bg,
		log:    log,
	}
}

// Snapshot returns the current health view for a processor, or nil when
// health is unknown. Unknown is an acceptable answer: routing treats it as
// "not confidently healthy" and a later request will probe again.
func (s *HealthServiceImpl) Snapshot(ctx context.Context, p domain.ProcessorID) *domain.HealthSnapshot {
	if snap := s.cached(ctx, p); snap != nil {
		return snap
	}

	v, _, _ := s.flight.Do(p.String(), func() (interface{}, error) {
		// Double-check: a concurrent flight may have filled the cache
		// between our miss and acquiring the slot.
		if snap := s.cached(ctx, p); snap != nil {
			return snap, nil
		}

		snap, err := s.client.FetchHealth(ctx, p)
		if err != nil || snap == nil {
			return (*domain.HealthSnapshot)(nil), nil
		}

		s.writeBehind(p, *snap)
		return snap, nil
	})

	snap, _ := v.(*domain.HealthSnapshot)
	return snap
}

// cached reads the stored snapshot, degrading store failures to a miss.
func (s *HealthServiceImpl) cached(ctx context.Context, p domain.ProcessorID) *domain.HealthSnapshot {
	snap, err := s.store.Get(ctx, p)
	if err != nil {
		s.log.Warn().Err(err).
			Str("processor", p.String()).
			Msg("health cache read failed, treating as miss")
		return nil
	}
	return snap
}

// writeBehind publishes a fresh snapshot to the cache without blocking the
// request path. When the background pool is saturated the write is skipped;
// the snapshot only saves the next caller a probe, it is not load-bearing.
func (s *HealthServiceImpl) writeBehind(p domain.ProcessorID, snap domain.HealthSnapshot) {
	scheduled := s.bg.TryGo(func() {
		ctx, cancel := context.WithTimeout(context.Background(), healthWriteTimeout)
		defer cancel()
		if err := s.store.Set(ctx, p, snap); err != nil {
			s.log.Warn().Err(err).
				Str("processor", p.String()).
				Msg("health cache write failed")
		}
	})
	if !scheduled {
		s.log.Debug().
			Str("processor", p.String()).
			Msg("background pool full, skipping health cache write")
	}
}
