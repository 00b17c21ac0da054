package middleware

import (
	"github.com/brunosilvadev/rinha-2025/config"
	"github.com/brunosilvadev/rinha-2025/pkg/apperror"
	"github.com/brunosilvadev/rinha-2025/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"
)

// Throttle creates a process-local ingress limiter. The gateway sits behind a
// load balancer that already splits traffic between replicas, so a single
// token bucket per process is enough to shed load before it reaches the
// dispatch path. A zero rate disables throttling.
func Throttle(cfg config.ThrottleConfig, log zerolog.Logger) gin.HandlerFunc {
	if cfg.RPS <= 0 {
		return func(c *gin.Context) { c.Next() }
	}

	burst := cfg.Burst
	if burst < 1 {
		burst = 1
	}
	limiter := rate.NewLimiter(rate.Limit(cfg.RPS), burst)

	return func(c *gin.Context) {
		if !limiter.Allow() {
			log.Warn().
				Str("path", c.Request.URL.Path).
				Str("client_ip", c.ClientIP()).
				Msg("request throttled")
			response.Error(c, apperror.ErrRateLimitExceeded())
			c.Abort()
			return
		}
		c.Next()
	}
}
