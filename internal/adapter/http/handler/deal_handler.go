package handler

import (
	"github.com/RuslanName/P2PBot-sub000/internal/adapter/http/dto"
	"github.com/RuslanName/P2PBot-sub000/internal/adapter/http/middleware"
	"github.com/RuslanName/P2PBot-sub000/internal/core/ports"
	"github.com/RuslanName/P2PBot-sub000/pkg/apperror"
	"github.com/RuslanName/P2PBot-sub000/pkg/response"

	"github.com/gin-gonic/gin"
)

// DealHandler handles deal lifecycle endpoints.
type DealHandler struct {
	dealSvc ports.DealService
}

// NewDealHandler creates a new DealHandler.
func NewDealHandler(dealSvc ports.DealService) *DealHandler {
	return &DealHandler{dealSvc: dealSvc}
}

// Create handles POST /api/v1/deals.
func (h *DealHandler) Create(c *gin.Context) {
	actorID, ok := middleware.Actor(c)
	if !ok {
		response.Error(c, apperror.ErrUnauthorizedActor())
		return
	}

	var req dto.CreateDealRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	deal, err := h.dealSvc.Create(c.Request.Context(), ports.CreateDealRequest{
		OfferID:        req.OfferID,
		CounterpartyID: actorID,
		Amount:         req.Amount,
		FiatCurrency:   req.FiatCurrency,
		ReferrerID:     req.ReferrerID,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, deal)
}

// Confirm handles POST /api/v1/deals/:id/confirm.
func (h *DealHandler) Confirm(c *gin.Context) {
	actorID, ok := middleware.Actor(c)
	if !ok {
		response.Error(c, apperror.ErrUnauthorizedActor())
		return
	}

	id, err := pathID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	deal, err := h.dealSvc.CounterpartyConfirm(c.Request.Context(), id, actorID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, deal)
}

// SetDetails handles PUT /api/v1/deals/:id/details.
func (h *DealHandler) SetDetails(c *gin.Context) {
	actorID, ok := middleware.Actor(c)
	if !ok {
		response.Error(c, apperror.ErrUnauthorizedActor())
		return
	}

	id, err := pathID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	var req dto.DealDetailsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	if err := h.dealSvc.SetCounterpartyDetails(c.Request.Context(), id, actorID, req.Details); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, gin.H{"deal_id": id})
}

// Acknowledge handles POST /api/v1/deals/:id/acknowledge. The issuer
// confirms receipt, which triggers settlement.
func (h *DealHandler) Acknowledge(c *gin.Context) {
	actorID, ok := middleware.Actor(c)
	if !ok {
		response.Error(c, apperror.ErrUnauthorizedActor())
		return
	}

	id, err := pathID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	deal, err := h.dealSvc.IssuerAcknowledge(c.Request.Context(), id, actorID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, deal)
}

// Cancel handles POST /api/v1/deals/:id/cancel.
func (h *DealHandler) Cancel(c *gin.Context) {
	actorID, ok := middleware.Actor(c)
	if !ok {
		response.Error(c, apperror.ErrUnauthorizedActor())
		return
	}

	id, err := pathID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	deal, err := h.dealSvc.Cancel(c.Request.Context(), id, actorID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, deal)
}
