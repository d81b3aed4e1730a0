package handler

import (
	"github.com/RuslanName/P2PBot-sub000/internal/adapter/http/middleware"
	"github.com/RuslanName/P2PBot-sub000/internal/core/ports"
	"github.com/RuslanName/P2PBot-sub000/pkg/metrics"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
)

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	DealSvc        ports.DealService
	OfferSvc       ports.OfferService
	BalanceSvc     ports.BalanceService
	ReservationSvc ports.ReservationService
	ComplianceSvc  ports.ComplianceService
	HealthCheckers []ports.HealthChecker
	Registry       *prometheus.Registry // nil = /metrics disabled
	Logger         zerolog.Logger
}

// SetupRouter initialises the Gin engine with all routes and middleware.
func SetupRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(middleware.Metrics())
	r.Use(middleware.MaxBodySize(1 << 20)) // 1 MB request body limit

	// Health check (deep, verifies PostgreSQL + Redis)
	r.GET("/health", HealthCheck(deps.HealthCheckers...))

	if deps.Registry != nil {
		r.GET("/metrics", gin.WrapH(metrics.Handler(deps.Registry)))
	}

	// API v1 routes. The actor header identifies the acting user;
	// authentication happens upstream of this boundary.
	v1 := r.Group("/api/v1")
	actor := middleware.ActorID()

	offerHandler := NewOfferHandler(deps.OfferSvc)
	offers := v1.Group("/offers")
	{
		offers.GET("", offerHandler.List)
		offers.GET("/:id", offerHandler.Get)
		offers.GET("/:id/quote", offerHandler.Quote)
		offers.POST("", actor, offerHandler.Create)
		offers.PUT("/:id", actor, offerHandler.Edit)
		offers.POST("/:id/close", actor, offerHandler.Close)
	}

	dealHandler := NewDealHandler(deps.DealSvc)
	deals := v1.Group("/deals", actor)
	{
		deals.POST("", dealHandler.Create)
		deals.POST("/:id/confirm", dealHandler.Confirm)
		deals.PUT("/:id/details", dealHandler.SetDetails)
		deals.POST("/:id/acknowledge", dealHandler.Acknowledge)
		deals.POST("/:id/cancel", dealHandler.Cancel)
	}

	balanceHandler := NewBalanceHandler(deps.BalanceSvc, deps.ReservationSvc)
	v1.GET("/balances/:currency", actor, balanceHandler.Get)

	complianceHandler := NewComplianceHandler(deps.ComplianceSvc)
	v1.POST("/compliance/resubmit", actor, complianceHandler.Resubmit)

	adminHandler := NewAdminHandler(deps.DealSvc, deps.ComplianceSvc)
	admin := v1.Group("/admin")
	{
		admin.POST("/deals/:id/block", adminHandler.BlockDeal)
		admin.POST("/deals/:id/unblock", adminHandler.UnblockDeal)
		admin.POST("/deals/:id/force-complete", adminHandler.ForceComplete)
		admin.POST("/issuers/:id/block", adminHandler.BlockIssuer)
		admin.POST("/issuers/:id/unblock", adminHandler.UnblockIssuer)
		admin.POST("/cases/:id/resolve", adminHandler.ResolveCase)
	}

	return r
}
