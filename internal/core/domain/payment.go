package domain

import (
	"math"
	"time"

	"github.com/google/uuid"
)

// PaymentRequest is a validated inbound payment intent.
type PaymentRequest struct {
	CorrelationID uuid.UUID `json:"correlation_id"`
	Amount        float64   `json:"amount"` // Decimal units, at most two fraction digits
}

// EnrichedPayment is the upstream-bound payment record. RequestedAt is
// assigned once when the dispatch starts and never changes across retries,
// so every upstream sees the same timestamp for a given correlation ID.
type EnrichedPayment struct {
	CorrelationID uuid.UUID `json:"correlation_id"`
	Amount        float64   `json:"amount"`
	RequestedAt   time.Time `json:"requested_at"`
}

// Enrich stamps the payment with its dispatch timestamp.
func (r PaymentRequest) Enrich(now time.Time) EnrichedPayment {
	return EnrichedPayment{
		CorrelationID: r.CorrelationID,
		Amount:        r.Amount,
		RequestedAt:   now.UTC(),
	}
}

// AmountToCents converts a decimal amount to an integer count of the
// smallest unit. Summary counters store cents so concurrent increments
// stay exact.
func AmountToCents(amount float64) int64 {
	return int64(math.Round(amount * 100))
}

// CentsToAmount converts a cent counter back to decimal units.
func CentsToAmount(cents int64) float64 {
	return float64(cents) / 100
}
