package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/brunosilvadev/rinha-2025/internal/core/domain"

	goredis "github.com/redis/go-redis/v9"
)

// CircuitStore implements ports.CircuitStore using the coordination store.
// One record per processor, shared by every replica. Writes refresh a long
// idle TTL so an abandoned deployment leaves no state behind; an expired
// record reads as absent and callers fall back to the default closed breaker.
type CircuitStore struct {
	client *goredis.Client
	guard  *Guard
	prefix string
	ttl    time.Duration
}

// NewCircuitStore creates a store writing records with the given idle TTL.
func NewCircuitStore(client *goredis.Client, guard *Guard, ttl time.Duration) *CircuitStore {
	return &CircuitStore{
		client: client,
		guard:  guard,
		prefix: "circuit_breaker:",
		ttl:    ttl,
	}
}

// Get retrieves the breaker record for a processor, refreshing the idle TTL.
// Any access keeps a live deployment's record warm; only an abandoned one
// expires. Returns nil, nil if none is stored.
func (s *CircuitStore) Get(ctx context.Context, p domain.ProcessorID) (*domain.CircuitRecord, error) {
	var rec *domain.CircuitRecord
	err := s.guard.Do(ctx, "circuit_get", func() error {
		val, err := s.client.GetEx(ctx, s.prefix+p.String(), s.ttl).Bytes()
		if err != nil {
			if err == goredis.Nil {
				return nil
			}
			return fmt.Errorf("redis circuit get: %w", err)
		}
		var r domain.CircuitRecord
		if err := json.Unmarshal(val, &r); err != nil {
			return fmt.Errorf("redis circuit decode: %w", err)
		}
		rec = &r
		return nil
	})
	if err != nil {
		return nil, err
	}
	return rec, nil
}

// Put stores the breaker record, refreshing the idle TTL.
func (s *CircuitStore) Put(ctx context.Context, p domain.ProcessorID, rec domain.CircuitRecord) error {
	payload, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("redis circuit encode: %w", err)
	}
	return s.guard.Do(ctx, "circuit_put", func() error {
		if err := s.client.Set(ctx, s.prefix+p.String(), payload, s.ttl).Err(); err != nil {
			return fmt.Errorf("redis circuit put: %w", err)
		}
		return nil
	})
}
