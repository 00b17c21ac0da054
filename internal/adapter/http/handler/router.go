package handler

import (
	"github.com/brunosilvadev/rinha-2025/config"
	"github.com/brunosilvadev/rinha-2025/internal/adapter/http/middleware"
	"github.com/brunosilvadev/rinha-2025/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
)

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	PaymentSvc     ports.PaymentService
	SummarySvc     ports.SummaryService
	HealthCheckers []ports.HealthChecker
	Throttle       config.ThrottleConfig
	Mode           string // gin mode; empty defaults to release
	Logger         zerolog.Logger
}

// SetupRouter initialises the Gin engine with all routes and middleware.
func SetupRouter(deps RouterDeps) *gin.Engine {
	mode := deps.Mode
	if mode == "" {
		mode = gin.ReleaseMode
	}
	gin.SetMode(mode)
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(middleware.MaxBodySize(1 << 10)) // 1 KiB request body limit
	r.Use(middleware.Throttle(deps.Throttle, deps.Logger))

	// Health check (deep — verifies the coordination store)
	r.GET("/health", HealthCheck(deps.HealthCheckers...))

	// Prometheus scrape endpoint
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	paymentHandler := NewPaymentHandler(deps.PaymentSvc)
	summaryHandler := NewSummaryHandler(deps.SummarySvc)

	r.POST("/payments", paymentHandler.ProcessPayment)
	r.GET("/payments-summary", summaryHandler.GetSummary)
	r.DELETE("/payments-summary", summaryHandler.ResetSummary)

	return r
}
