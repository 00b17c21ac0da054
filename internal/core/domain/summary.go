package domain

// ProcessorSummary holds the totals accumulated against one processor.
type ProcessorSummary struct {
	TotalRequests int64   `json:"total_requests"`
	TotalAmount   float64 `json:"total_amount"`
}

// Summary is the consistency-check view over both processors. Totals are
// global, not segmented by time.
type Summary struct {
	Default  ProcessorSummary `json:"default"`
	Fallback ProcessorSummary `json:"fallback"`
}

// ForProcessor returns the summary slot for the given processor.
func (s *Summary) ForProcessor(p ProcessorID) *ProcessorSummary {
	if p == ProcessorFallback {
		return &s.Fallback
	}
	return &s.Default
}
