package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/brunosilvadev/rinha-2025/internal/core/domain"
)

var (
	DispatchTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "payment_dispatch_total",
			Help: "Total number of dispatch attempts per processor (count)",
		},
		[]string{"processor", "outcome"},
	)

	DispatchExhaustedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "payment_dispatch_exhausted_total",
			Help: "Total number of payments that failed every attempt on both processors (count)",
		},
	)

	DispatchAttemptDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "payment_attempt_duration_ms",
			Help:    "Duration of a single upstream dispatch attempt in milliseconds",
			Buckets: []float64{1, 5, 10, 25, 50, 100, 250, 500, 1000},
		},
		[]string{"processor"},
	)

	CircuitBreakerState = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_state",
			Help: "Circuit breaker state (0=closed, 1=half-open, 2=open) (state code)",
		},
		[]string{"processor"},
	)

	HealthProbeTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "health_probe_total",
			Help: "Total number of upstream health probes (count)",
		},
		[]string{"processor", "outcome"},
	)

	StoreFailuresTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "coordination_store_failures_total",
			Help: "Total number of coordination store operations that failed and were degraded (count)",
		},
		[]string{"operation"},
	)
)

// RegisterGatewayMetrics registers every gateway collector with the default
// prometheus registry. Call once at bootstrap.
func RegisterGatewayMetrics() {
	prometheus.MustRegister(DispatchTotal)
	prometheus.MustRegister(DispatchExhaustedTotal)
	prometheus.MustRegister(DispatchAttemptDuration)
	prometheus.MustRegister(CircuitBreakerState)
	prometheus.MustRegister(HealthProbeTotal)
	prometheus.MustRegister(StoreFailuresTotal)
}

// SetBreakerState publishes a breaker state transition to the gauge.
func SetBreakerState(p domain.ProcessorID, state domain.CircuitState) {
	var code float64
	switch state {
	case domain.CircuitHalfOpen:
		code = 1
	case domain.CircuitOpen:
		code = 2
	}
	CircuitBreakerState.WithLabelValues(p.String()).Set(code)
}
