package domain

// HealthSnapshot is a processor's self-reported health at a point in time.
type HealthSnapshot struct {
	Failing         bool `json:"failing"`
	MinResponseTime int  `json:"min_response_time"` // Milliseconds
}

// Usable reports whether the snapshot describes a processor worth
// dispatching to: not failing and answering under the given latency
// threshold. An absent snapshot is never usable; callers must treat
// a nil *HealthSnapshot as unknown, not healthy.
func (h HealthSnapshot) Usable(maxLatencyMs int) bool {
	return !h.Failing && h.MinResponseTime < maxLatencyMs
}
