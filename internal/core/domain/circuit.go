package domain

import "time"

// CircuitState is the lifecycle state of a processor's circuit breaker.
// States are serialized as short strings so any replica, and a human with
// redis-cli, can read them.
type CircuitState string

const (
	CircuitClosed   CircuitState = "closed"
	CircuitOpen     CircuitState = "open"
	CircuitHalfOpen CircuitState = "half_open"
)

// Valid reports whether s is a known circuit state.
func (s CircuitState) Valid() bool {
	return s == CircuitClosed || s == CircuitOpen || s == CircuitHalfOpen
}

// CircuitRecord is the shared breaker state for one processor. All replicas
// read and write the same record through the coordination store; there is no
// replica-local breaker state.
type CircuitRecord struct {
	State             CircuitState `json:"state"`
	FailureCount      int          `json:"failure_count"`
	SuccessCount      int          `json:"success_count"`
	LastFailureAt     time.Time    `json:"last_failure_at"`
	LastStateChangeAt time.Time    `json:"last_state_change_at"`
}

// DefaultCircuitRecord is the record assumed when none is stored: a closed
// breaker with zeroed counters. A record expiring from the store therefore
// decays to the same state a fresh deployment starts in.
func DefaultCircuitRecord(now time.Time) CircuitRecord {
	return CircuitRecord{
		State:             CircuitClosed,
		LastStateChangeAt: now,
	}
}

// AllowsDispatch reports whether payments may be sent while the breaker is
// in this state. Open blocks dispatch; Closed and HalfOpen permit it.
func (r CircuitRecord) AllowsDispatch() bool {
	return r.State != CircuitOpen
}
