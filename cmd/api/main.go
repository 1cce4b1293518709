package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"esign-webhook-gateway/config"
	httpHandler "esign-webhook-gateway/internal/adapter/http/handler"
	pgStorage "esign-webhook-gateway/internal/adapter/storage/postgres"
	redisStorage "esign-webhook-gateway/internal/adapter/storage/redis"
	"esign-webhook-gateway/internal/core/ports"
	"esign-webhook-gateway/internal/service"
	"esign-webhook-gateway/pkg/logger"
)

func main() {
	// Load configuration
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.New(cfg.Log.Level, cfg.Log.Pretty)

	log.Info().
		Str("mode", cfg.Server.Mode).
		Int("port", cfg.Server.Port).
		Msg("Starting ZapSign Webhook Gateway")

	ctx := context.Background()

	// Initialize PostgreSQL pool
	pool, err := pgStorage.NewPool(ctx, cfg.Database, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()
	log.Info().Msg("PostgreSQL connected")

	// Initialize Redis client
	rdb, err := redisStorage.NewClient(ctx, cfg.Redis, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	defer rdb.Close()
	log.Info().Msg("Redis connected")

	// Initialize repositories
	webhookLogRepo := pgStorage.NewWebhookLogRepo(pool)
	contractRepo := pgStorage.NewContractRepo(pool)
	signerRepo := pgStorage.NewSignerRepo(pool)
	clientRepo := pgStorage.NewClientRepo(pool)
	profileRepo := pgStorage.NewProfileRepo(pool)
	historyRepo := pgStorage.NewHistoryRepo(pool)

	// Initialize Redis stores
	workspaceCache := redisStorage.NewWorkspaceCache(rdb)

	// Initialize business services
	matcherSvc := service.NewMatcherService(clientRepo, log)
	webhookSvc := service.NewWebhookService(
		webhookLogRepo,
		profileRepo,
		contractRepo,
		signerRepo,
		historyRepo,
		matcherSvc,
		workspaceCache,
		cfg.Webhook.WorkspaceCacheTTL,
		log,
	)

	// Initialize health checkers
	pgHealth := pgStorage.NewHealthCheck(pool)
	redisHealth := redisStorage.NewHealthCheck(rdb)

	// Setup Gin router with all routes
	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		WebhookSvc:     webhookSvc,
		HealthCheckers: []ports.HealthChecker{pgHealth, redisHealth},
		MaxBodyBytes:   cfg.Webhook.MaxBodyBytes,
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

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited")
}
