package handler

import (
	"esign-webhook-gateway/internal/adapter/http/middleware"
	"esign-webhook-gateway/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	WebhookSvc     ports.WebhookService
	HealthCheckers []ports.HealthChecker
	MaxBodyBytes   int64
	Logger         zerolog.Logger
}

// SetupRouter initialises the Gin engine with all routes and middleware.
func SetupRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(middleware.CORS())
	r.Use(middleware.MaxBodySize(deps.MaxBodyBytes))

	// Health check (deep, verifies PostgreSQL + Redis)
	r.GET("/health", HealthCheck(deps.HealthCheckers...))

	webhookHandler := NewWebhookHandler(deps.WebhookSvc, deps.Logger)

	// ZapSign posts to whatever URL the account was configured with; some
	// deployments register the bare root, so both routes accept deliveries.
	r.POST("/webhooks/zapsign", webhookHandler.Receive)
	r.POST("/", webhookHandler.Receive)

	return r
}
