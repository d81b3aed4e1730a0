package handler

import (
	"strconv"

	"github.com/RuslanName/P2PBot-sub000/internal/adapter/http/dto"
	"github.com/RuslanName/P2PBot-sub000/internal/adapter/http/middleware"
	"github.com/RuslanName/P2PBot-sub000/internal/core/domain"
	"github.com/RuslanName/P2PBot-sub000/internal/core/ports"
	"github.com/RuslanName/P2PBot-sub000/pkg/apperror"
	"github.com/RuslanName/P2PBot-sub000/pkg/response"

	"github.com/gin-gonic/gin"
)

// OfferHandler handles offer book endpoints.
type OfferHandler struct {
	offerSvc ports.OfferService
}

// NewOfferHandler creates a new OfferHandler.
func NewOfferHandler(offerSvc ports.OfferService) *OfferHandler {
	return &OfferHandler{offerSvc: offerSvc}
}

// Create handles POST /api/v1/offers.
func (h *OfferHandler) Create(c *gin.Context) {
	actorID, ok := middleware.Actor(c)
	if !ok {
		response.Error(c, apperror.ErrUnauthorizedActor())
		return
	}

	var req dto.CreateOfferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	offer, err := h.offerSvc.Create(c.Request.Context(), &domain.Offer{
		IssuerID:       actorID,
		Direction:      domain.OfferDirection(req.Direction),
		Currency:       req.Currency,
		FiatCurrencies: req.FiatCurrencies,
		PaymentDetails: req.PaymentDetails,
		MinDealAmount:  req.MinDealAmount,
		MaxDealAmount:  req.MaxDealAmount,
		MarkupPercent:  req.MarkupPercent,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, offer)
}

// Get handles GET /api/v1/offers/:id.
func (h *OfferHandler) Get(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	offer, err := h.offerSvc.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, offer)
}

// List handles GET /api/v1/offers.
func (h *OfferHandler) List(c *gin.Context) {
	direction := domain.OfferDirection(c.Query("direction"))
	if direction != "" && direction != domain.OfferDirectionBuy && direction != domain.OfferDirectionSell {
		response.Error(c, apperror.Validation("direction must be BUY or SELL"))
		return
	}

	offers, err := h.offerSvc.ListOpen(c.Request.Context(), direction, c.Query("currency"), c.Query("fiat"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, offers)
}

// Edit handles PUT /api/v1/offers/:id.
func (h *OfferHandler) Edit(c *gin.Context) {
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

	var req dto.EditOfferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	offer, err := h.offerSvc.Edit(c.Request.Context(), actorID, &domain.Offer{
		ID:             id,
		FiatCurrencies: req.FiatCurrencies,
		PaymentDetails: req.PaymentDetails,
		MinDealAmount:  req.MinDealAmount,
		MaxDealAmount:  req.MaxDealAmount,
		MarkupPercent:  req.MarkupPercent,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, offer)
}

// Close handles POST /api/v1/offers/:id/close.
func (h *OfferHandler) Close(c *gin.Context) {
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

	if err := h.offerSvc.Close(c.Request.Context(), actorID, id); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, gin.H{"status": string(domain.OfferStatusClosed)})
}

// Quote handles GET /api/v1/offers/:id/quote.
func (h *OfferHandler) Quote(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	fiat := c.Query("fiat")
	if fiat == "" {
		response.Error(c, apperror.Validation("fiat query parameter is required"))
		return
	}

	price, err := h.offerSvc.Quote(c.Request.Context(), id, fiat)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.QuoteResponse{OfferID: id, Fiat: fiat, Price: price})
}

// pathID parses a positive integer path parameter.
func pathID(c *gin.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, apperror.Validation("invalid " + name + " path parameter")
	}
	return id, nil
}
