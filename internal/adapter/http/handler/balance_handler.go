package handler

import (
	"net/http"

	"github.com/RuslanName/P2PBot-sub000/internal/adapter/http/dto"
	"github.com/RuslanName/P2PBot-sub000/internal/adapter/http/middleware"
	"github.com/RuslanName/P2PBot-sub000/internal/core/ports"
	"github.com/RuslanName/P2PBot-sub000/pkg/apperror"
	"github.com/RuslanName/P2PBot-sub000/pkg/response"

	"github.com/gin-gonic/gin"
)

// BalanceHandler exposes the balance oracle plus the derived held and
// available amounts for the acting user.
type BalanceHandler struct {
	balanceSvc     ports.BalanceService
	reservationSvc ports.ReservationService
}

// NewBalanceHandler creates a new BalanceHandler.
func NewBalanceHandler(balanceSvc ports.BalanceService, reservationSvc ports.ReservationService) *BalanceHandler {
	return &BalanceHandler{balanceSvc: balanceSvc, reservationSvc: reservationSvc}
}

// Get handles GET /api/v1/balances/:currency. The refresh query flag
// bypasses the cache.
func (h *BalanceHandler) Get(c *gin.Context) {
	actorID, ok := middleware.Actor(c)
	if !ok {
		response.Error(c, apperror.ErrUnauthorizedActor())
		return
	}

	currency := c.Param("currency")
	forceRefresh := c.Query("refresh") == "true"

	balance, err := h.balanceSvc.GetBalance(c.Request.Context(), actorID, currency, forceRefresh)
	if err != nil {
		response.Error(c, err)
		return
	}

	held, err := h.reservationSvc.HeldAmount(c.Request.Context(), actorID, currency)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.BalanceResponse{
		Currency:    currency,
		Confirmed:   balance.Confirmed,
		Unconfirmed: balance.Unconfirmed,
		Held:        held,
		Available:   balance.Available(held),
	})
}

// ComplianceHandler exposes the user-facing side of the compliance gate.
type ComplianceHandler struct {
	complianceSvc ports.ComplianceService
}

// NewComplianceHandler creates a new ComplianceHandler.
func NewComplianceHandler(complianceSvc ports.ComplianceService) *ComplianceHandler {
	return &ComplianceHandler{complianceSvc: complianceSvc}
}

// Resubmit handles POST /api/v1/compliance/resubmit. A user whose case was
// rejected submits fresh evidence, opening a new case.
func (h *ComplianceHandler) Resubmit(c *gin.Context) {
	actorID, ok := middleware.Actor(c)
	if !ok {
		response.Error(c, apperror.ErrUnauthorizedActor())
		return
	}

	var req dto.ResubmitCaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	kase, err := h.complianceSvc.Resubmit(c.Request.Context(), actorID, req.Evidence)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, kase)
}

// HealthCheck handles GET /health, verifying each external dependency.
func HealthCheck(checkers ...ports.HealthChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		type depStatus struct {
			Status string `json:"status"`
			Error  string `json:"error,omitempty"`
		}

		deps := make(map[string]depStatus)
		allHealthy := true

		for _, checker := range checkers {
			if err := checker.Ping(c.Request.Context()); err != nil {
				deps[checker.Name()] = depStatus{Status: "unhealthy", Error: err.Error()}
				allHealthy = false
			} else {
				deps[checker.Name()] = depStatus{Status: "healthy"}
			}
		}

		status := "healthy"
		httpCode := http.StatusOK
		if !allHealthy {
			status = "degraded"
			httpCode = http.StatusServiceUnavailable
		}

		c.JSON(httpCode, gin.H{
			"status":       status,
			"dependencies": deps,
		})
	}
}
