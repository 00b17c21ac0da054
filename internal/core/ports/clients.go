package ports

import (
	"context"

	"github.com/brunosilvadev/rinha-2025/internal/core/domain"
)

// ProcessorClient talks to the two upstream payment processors.
type ProcessorClient interface {
	// SubmitPayment posts the payment to the given processor. Any non-2xx
	// response, timeout, or transport error is returned as a non-nil error;
	// only a 2xx acknowledgment counts as accepted.
	SubmitPayment(ctx context.Context, p domain.ProcessorID, payment domain.EnrichedPayment) error

	// FetchHealth probes the processor's health endpoint. It returns
	// nil, nil when no trustworthy answer could be obtained (non-2xx,
	// timeout, transport or decode failure); callers must treat that as
	// unknown, never as healthy.
	FetchHealth(ctx context.Context, p domain.ProcessorID) (*domain.HealthSnapshot, error)
}
