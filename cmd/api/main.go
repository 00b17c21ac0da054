package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/brunosilvadev/rinha-2025/config"
	httpHandler "github.com/brunosilvadev/rinha-2025/internal/adapter/http/handler"
	"github.com/brunosilvadev/rinha-2025/internal/adapter/processor"
	redisStorage "github.com/brunosilvadev/rinha-2025/internal/adapter/storage/redis"
	"github.com/brunosilvadev/rinha-2025/internal/core/ports"
	"github.com/brunosilvadev/rinha-2025/internal/service"
	"github.com/brunosilvadev/rinha-2025/pkg/async"
	"github.com/brunosilvadev/rinha-2025/pkg/logger"
	"github.com/brunosilvadev/rinha-2025/pkg/metrics"
)

func main() {
	// Load configuration
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "invalid config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.New("payment-gateway", cfg.Log.Level, cfg.Log.Pretty)

	log.Info().
		Str("mode", cfg.Server.Mode).
		Int("port", cfg.Server.Port).
		Msg("Starting payment dispatch gateway")

	ctx := context.Background()

	// Initialize the coordination store client
	rdb, err := redisStorage.NewClient(ctx, cfg.Store, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to coordination store")
	}
	defer rdb.Close()
	log.Info().Msg("Coordination store connected")

	// Initialize shared stores behind the store guard
	guard := redisStorage.NewGuard("coordination-store", log)
	healthStore := redisStorage.NewHealthStore(rdb, guard, cfg.Health.CacheTTL)
	circuitStore := redisStorage.NewCircuitStore(rdb, guard, cfg.Breaker.RecordTTL)
	summaryStore := redisStorage.NewSummaryStore(rdb, guard)

	// Initialize the upstream processor client
	processorClient := processor.NewClient(cfg.Processors, log)

	// Background pool for write-behind store updates
	bg := async.NewGroup(cfg.Async.Workers, log)

	// Initialize core services
	breakerSvc := service.NewCircuitBreakerService(circuitStore, cfg.Breaker, log)
	healthSvc := service.NewHealthService(healthStore, processorClient, bg, log)
	routingSvc := service.NewRoutingService(breakerSvc, healthSvc, cfg.Health, log)
	paymentSvc := service.NewPaymentService(
		routingSvc,
		breakerSvc,
		processorClient,
		summaryStore,
		bg,
		cfg.Dispatch,
		log,
	)
	summarySvc := service.NewSummaryService(summaryStore, log)

	// Prometheus metrics
	metrics.RegisterGatewayMetrics()

	// Initialize health checkers
	storeHealth := redisStorage.NewHealthCheck(rdb)

	// Setup Gin router with all routes
	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		PaymentSvc:     paymentSvc,
		SummarySvc:     summarySvc,
		HealthCheckers: []ports.HealthChecker{storeHealth},
		Throttle:       cfg.Throttle,
		Mode:           cfg.Server.Mode,
		Logger:         log,
	})

	// HTTP Server with graceful shutdown
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	// Start server in goroutine
	go func() {
		log.Info().Str("addr", addr).Msg("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	// Flush write-behind counter and cache updates before exiting so totals
	// survive the restart.
	if err := bg.Drain(cfg.Server.DrainTimeout); err != nil {
		log.Warn().Err(err).Msg("Background tasks did not drain cleanly")
	}

	log.Info().Msg("Server exited")
}
