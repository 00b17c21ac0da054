package redis

import (
	"context"

	goredis "github.com/redis/go-redis/v9"
)

// HealthCheck implements ports.HealthChecker for the coordination store.
type HealthCheck struct {
	client *goredis.Client
}

// NewHealthCheck creates a coordination store health checker.
func NewHealthCheck(client *goredis.Client) *HealthCheck {
	return &HealthCheck{client: client}
}

// Ping checks store connectivity.
func (h *HealthCheck) Ping(ctx context.Context) error {
	return h.client.Ping(ctx).Err()
}

// Name returns the dependency name.
func (h *HealthCheck) Name() string {
	return "redis"
}
