package ports

import (
	"context"
	"time"

	"github.com/brunosilvadev/rinha-2025/internal/core/domain"

	"github.com/google/uuid"
)

// HealthService serves the cached health view of a processor.
type HealthService interface {
	// Snapshot returns the current health view, or nil when health is
	// unknown. A nil snapshot means "not confidently healthy"; routing
	// must not prefer it over a peer with a good snapshot.
	Snapshot(ctx context.Context, p domain.ProcessorID) *domain.HealthSnapshot
}

// CircuitBreakerService manages the shared per-processor breakers.
type CircuitBreakerService interface {
	// State returns the effective breaker record, applying the lazy
	// open-to-half-open promotion when the cooldown has elapsed. It never
	// fails: when the store is unreachable it returns the default closed
	// record.
	State(ctx context.Context, p domain.ProcessorID) domain.CircuitRecord
	// RecordSuccess feeds a dispatch success into the breaker.
	RecordSuccess(ctx context.Context, p domain.ProcessorID)
	// RecordFailure feeds a dispatch failure into the breaker.
	RecordFailure(ctx context.Context, p domain.ProcessorID)
}

// RoutingService decides which processor a dispatch attempt should target.
type RoutingService interface {
	SelectProcessor(ctx context.Context) domain.ProcessorID
}

// PaymentService is the dispatch pipeline behind POST /payments.
type PaymentService interface {
	ProcessPayment(ctx context.Context, req PaymentRequest) (*DispatchResult, error)
}

// PaymentRequest holds validated input for payment dispatch.
type PaymentRequest struct {
	CorrelationID uuid.UUID
	Amount        float64
}

// DispatchResult reports which processor accepted the payment.
type DispatchResult struct {
	Processor   domain.ProcessorID
	RequestedAt time.Time
	Attempts    int
}

// SummaryService reads and resets the dispatch totals.
type SummaryService interface {
	// Summary returns global totals. The from/to window is accepted for
	// interface compatibility and deliberately ignored.
	Summary(ctx context.Context, from, to *time.Time) (*domain.Summary, error)
	Reset(ctx context.Context) error
}
