package dto

// PaymentRequest is the request body for payment dispatch. Field names
// follow the processor wire contract, not the snake_case used elsewhere.
type PaymentRequest struct {
	CorrelationID string  `json:"correlationId" binding:"required,uuid"`
	Amount        float64 `json:"amount" binding:"required,gt=0,money"`
}

// ProcessorTotals is one processor's slice of the summary response.
type ProcessorTotals struct {
	TotalRequests int64   `json:"totalRequests"`
	TotalAmount   float64 `json:"totalAmount"`
}

// SummaryResponse is the response body for the payments summary.
type SummaryResponse struct {
	Default  ProcessorTotals `json:"default"`
	Fallback ProcessorTotals `json:"fallback"`
}
