package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/brunosilvadev/rinha-2025/internal/core/domain"

	goredis "github.com/redis/go-redis/v9"
)

// HealthStore implements ports.HealthStore using the coordination store.
// Snapshots expire on their own; all replicas share the cached view.
type HealthStore struct {
	client *goredis.Client
	guard  *Guard
	prefix string
	ttl    time.Duration
}

// NewHealthStore creates a store writing snapshots with the given TTL.
func NewHealthStore(client *goredis.Client, guard *Guard, ttl time.Duration) *HealthStore {
	return &HealthStore{
		client: client,
		guard:  guard,
		prefix: "health_check:",
		ttl:    ttl,
	}
}

// Get retrieves the cached snapshot for a processor.
// Returns nil, nil if none is stored or the stored value has expired.
func (s *HealthStore) Get(ctx context.Context, p domain.ProcessorID) (*domain.HealthSnapshot, error) {
	var snap *domain.HealthSnapshot
	err := s.guard.Do(ctx, "health_get", func() error {
		val, err := s.client.Get(ctx, s.prefix+p.String()).Bytes()
		if err != nil {
			if err == goredis.Nil {
				return nil
			}
			return fmt.Errorf("redis health get: %w", err)
		}
		var h domain.HealthSnapshot
		if err := json.Unmarshal(val, &h); err != nil {
			return fmt.Errorf("redis health decode: %w", err)
		}
		snap = &h
		return nil
	})
	if err != nil {
		return nil, err
	}
	return snap, nil
}

// Set stores a snapshot with the configured TTL.
func (s *HealthStore) Set(ctx context.Context, p domain.ProcessorID, snap domain.HealthSnapshot) error {
	payload, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("redis health encode: %w", err)
	}
	return s.guard.Do(ctx, "health_set", func() error {
		if err := s.client.Set(ctx, s.prefix+p.String(), payload, s.ttl).Err(); err != nil {
			return fmt.Errorf("redis health set: %w", err)
		}
		return nil
	})
}
