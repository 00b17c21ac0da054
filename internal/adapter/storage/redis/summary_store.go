package redis

import (
	"context"
	"fmt"
	"strconv"

	"github.com/brunosilvadev/rinha-2025/internal/core/domain"

	goredis "github.com/redis/go-redis/v9"
)

// SummaryStore implements ports.SummaryStore with plain atomic counters.
// Two keys per processor: a request count and an amount total in cents.
// INCR/INCRBY keep concurrent increments from any replica exact without
// locks or read-modify-write cycles.
type SummaryStore struct {
	client *goredis.Client
	guard  *Guard
	prefix string
}

// NewSummaryStore creates a Redis-backed summary counter store.
func NewSummaryStore(client *goredis.Client, guard *Guard) *SummaryStore {
	return &SummaryStore{
		client: client,
		guard:  guard,
		prefix: "payment_summary:",
	}
}

func (s *SummaryStore) requestsKey(p domain.ProcessorID) string {
	return s.prefix + p.String() + ":requests"
}

func (s *SummaryStore) amountKey(p domain.ProcessorID) string {
	return s.prefix + p.String() + ":amount"
}

// Increment adds one request and amountCents to the processor's counters.
// Both counters move in one MULTI/EXEC block so a crash between them cannot
// leave the pair out of step.
func (s *SummaryStore) Increment(ctx context.Context, p domain.ProcessorID, amountCents int64) error {
	return s.guard.Do(ctx, "summary_incr", func() error {
		_, err := s.client.TxPipelined(ctx, func(pipe goredis.Pipeliner) error {
			pipe.Incr(ctx, s.requestsKey(p))
			pipe.IncrBy(ctx, s.amountKey(p), amountCents)
			return nil
		})
		if err != nil {
			return fmt.Errorf("redis summary incr: %w", err)
		}
		return nil
	})
}

// Snapshot reads all four counters at once. Absent keys read as zero.
func (s *SummaryStore) Snapshot(ctx context.Context) (*domain.Summary, error) {
	keys := []string{
		s.requestsKey(domain.ProcessorDefault),
		s.amountKey(domain.ProcessorDefault),
		s.requestsKey(domain.ProcessorFallback),
		s.amountKey(domain.ProcessorFallback),
	}

	var vals []interface{}
	err := s.guard.Do(ctx, "summary_snapshot", func() error {
		var err error
		vals, err = s.client.MGet(ctx, keys...).Result()
		if err != nil {
			return fmt.Errorf("redis summary mget: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	counters := make([]int64, len(keys))
	for i, v := range vals {
		if v == nil {
			continue
		}
		str, ok := v.(string)
		if !ok {
			return nil, fmt.Errorf("redis summary mget: unexpected type %T for %s", v, keys[i])
		}
		n, err := strconv.ParseInt(str, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("redis summary mget: parsing %s: %w", keys[i], err)
		}
		counters[i] = n
	}

	return &domain.Summary{
		Default: domain.ProcessorSummary{
			TotalRequests: counters[0],
			TotalAmount:   domain.CentsToAmount(counters[1]),
		},
		Fallback: domain.ProcessorSummary{
			TotalRequests: counters[2],
			TotalAmount:   domain.CentsToAmount(counters[3]),
		},
	}, nil
}

// Reset deletes all four counters. Absent keys are fine; the next read
// starts from zero either way.
func (s *SummaryStore) Reset(ctx context.Context) error {
	keys := []string{
		s.requestsKey(domain.ProcessorDefault),
		s.amountKey(domain.ProcessorDefault),
		s.requestsKey(domain.ProcessorFallback),
		s.amountKey(domain.ProcessorFallback),
	}
	return s.guard.Do(ctx, "summary_reset", func() error {
		if err := s.client.Del(ctx, keys...).Err(); err != nil {
			return fmt.Errorf("redis summary del: %w", err)
		}
		return nil
	})
}
