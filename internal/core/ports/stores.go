package ports

import (
	"context"

	"github.com/brunosilvadev/rinha-2025/internal/core/domain"
)

// HealthStore persists cached health snapshots in the coordination store.
// Entries expire on their own; Set applies the configured TTL.
type HealthStore interface {
	// Get returns the cached snapshot, or nil, nil when none is stored.
	Get(ctx context.Context, p domain.ProcessorID) (*domain.HealthSnapshot, error)
	Set(ctx context.Context, p domain.ProcessorID, snap domain.HealthSnapshot) error
}

// CircuitStore persists shared circuit breaker records. Records carry a long
// idle TTL refreshed on every write; an expired record reads as absent and
// callers assume the default closed breaker.
type CircuitStore interface {
	// Get returns the stored record, or nil, nil when none is stored.
	Get(ctx context.Context, p domain.ProcessorID) (*domain.CircuitRecord, error)
	Put(ctx context.Context, p domain.ProcessorID, rec domain.CircuitRecord) error
}

// SummaryStore accumulates dispatch totals as atomic counters.
type SummaryStore interface {
	// Increment adds one request and amountCents to the processor's counters.
	Increment(ctx context.Context, p domain.ProcessorID, amountCents int64) error
	Snapshot(ctx context.Context) (*domain.Summary, error)
	Reset(ctx context.Context) error
}
