package processor

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/brunosilvadev/rinha-2025/config"
	"github.com/brunosilvadev/rinha-2025/internal/core/domain"
	"github.com/brunosilvadev/rinha-2025/pkg/metrics"

	"github.com/rs/zerolog"
)

// requestedAtLayout renders millisecond-precision UTC instants. RequestedAt
// is always stamped in UTC, so the literal Z suffix is accurate.
const requestedAtLayout = "2006-01-02T15:04:05.000Z"

// paymentPayload is the upstream wire shape for POST /payments.
type paymentPayload struct {
	CorrelationID string  `json:"correlationId"`
	Amount        float64 `json:"amount"`
	RequestedAt   string  `json:"requestedAt"`
}

// healthPayload is the upstream wire shape for GET /payments/service-health.
// Pointers distinguish absent fields from zero values; a body missing either
// field is not a trustworthy answer.
type healthPayload struct {
	Failing         *bool `json:"failing"`
	MinResponseTime *int  `json:"minResponseTime"`
}

// Client talks to both upstream processors over dedicated pooled HTTP
// clients: a large pool with the payment deadline for dispatches, and a
// small pool with the tight probe deadline for health checks. Separate
// pools keep slow probes from starving payment traffic.
type Client struct {
	urls          map[domain.ProcessorID]string
	paymentClient *http.Client
	healthClient  *http.Client
	log           zerolog.Logger
}

// NewClient builds the upstream client from processor configuration.
func NewClient(cfg config.ProcessorsConfig, log zerolog.Logger) *Client {
	return &Client{
		urls: map[domain.ProcessorID]string{
			domain.ProcessorDefault:  cfg.DefaultURL,
			domain.ProcessorFallback: cfg.FallbackURL,
		},
		paymentClient: &http.Client{
			Timeout:   cfg.PaymentTimeout,
			Transport: pooledTransport(cfg.PaymentPool),
		},
		healthClient: &http.Client{
			Timeout:   cfg.HealthTimeout,
			Transport: pooledTransport(cfg.HealthPool),
		},
		log: log,
	}
}

func pooledTransport(poolSize int) *http.Transport {
	return &http.Transport{
		MaxIdleConns:        poolSize,
		MaxIdleConnsPerHost: poolSize,
		MaxConnsPerHost:     0, // unbounded; the pool keeps conns warm
		IdleConnTimeout:     90 * time.Second,
	}
}

// SubmitPayment posts the payment to the given processor. Only a 2xx
// acknowledgment returns nil; the caller treats anything else as a failed
// attempt, including timeouts where the upstream may well have processed
// the payment.
func (c *Client) SubmitPayment(ctx context.Context, p domain.ProcessorID, payment domain.EnrichedPayment) error {
	body, err := json.Marshal(paymentPayload{
		CorrelationID: payment.CorrelationID.String(),
		Amount:        payment.Amount,
		RequestedAt:   payment.RequestedAt.UTC().Format(requestedAtLayout),
	})
	if err != nil {
		return fmt.Errorf("processor %s: encoding payment: %w", p, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.urls[p]+"/payments", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("processor %s: building request: %w", p, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.paymentClient.Do(req)
	if err != nil {
		return fmt.Errorf("processor %s: payment request: %w", p, err)
	}
	defer drainAndClose(resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("processor %s: payment rejected with status %d", p, resp.StatusCode)
	}
	return nil
}

// FetchHealth probes the processor's health endpoint. Every failure mode
// collapses to nil, nil: a probe that cannot produce a trustworthy answer
// yields no answer at all, never a guessed one.
func (c *Client) FetchHealth(ctx context.Context, p domain.ProcessorID) (*domain.HealthSnapshot, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.urls[p]+"/payments/service-health", nil)
	if err != nil {
		c.probeMiss(p, "build", err)
		return nil, nil
	}

	resp, err := c.healthClient.Do(req)
	if err != nil {
		c.probeMiss(p, "request", err)
		return nil, nil
	}
	defer drainAndClose(resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.probeMiss(p, fmt.Sprintf("status %d", resp.StatusCode), nil)
		return nil, nil
	}

	var payload healthPayload
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		c.probeMiss(p, "decode", err)
		return nil, nil
	}
	if payload.Failing == nil || payload.MinResponseTime == nil {
		c.probeMiss(p, "missing fields", nil)
		return nil, nil
	}

	metrics.HealthProbeTotal.WithLabelValues(p.String(), "ok").Inc()
	return &domain.HealthSnapshot{
		Failing:         *payload.Failing,
		MinResponseTime: *payload.MinResponseTime,
	}, nil
}

func (c *Client) probeMiss(p domain.ProcessorID, reason string, err error) {
	metrics.HealthProbeTotal.WithLabelValues(p.String(), "unknown").Inc()
	c.log.Debug().Err(err).Str("processor", p.String()).Str("reason", reason).Msg("health probe yielded no answer")
}

// drainAndClose empties the body so the connection returns to the pool.
func drainAndClose(body io.ReadCloser) {
	_, _ = io.Copy(io.Discard, io.LimitReader(body, 4096))
	_ = body.Close()
}
