package handler

import (
	"github.com/RuslanName/P2PBot-sub000/internal/adapter/http/dto"
	"github.com/RuslanName/P2PBot-sub000/internal/core/ports"
	"github.com/RuslanName/P2PBot-sub000/pkg/apperror"
	"github.com/RuslanName/P2PBot-sub000/pkg/response"

	"github.com/gin-gonic/gin"
)

// AdminHandler handles the administrative state-machine actions: deal and
// issuer blocks, forced completion, and compliance case verdicts.
type AdminHandler struct {
	dealSvc       ports.DealService
	complianceSvc ports.ComplianceService
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(dealSvc ports.DealService, complianceSvc ports.ComplianceService) *AdminHandler {
	return &AdminHandler{dealSvc: dealSvc, complianceSvc: complianceSvc}
}

// BlockDeal handles POST /api/v1/admin/deals/:id/block.
func (h *AdminHandler) BlockDeal(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	deal, err := h.dealSvc.AdminBlock(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, deal)
}

// UnblockDeal handles POST /api/v1/admin/deals/:id/unblock.
func (h *AdminHandler) UnblockDeal(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	deal, err := h.dealSvc.AdminUnblock(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, deal)
}

// ForceComplete handles POST /api/v1/admin/deals/:id/force-complete.
func (h *AdminHandler) ForceComplete(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	deal, err := h.dealSvc.AdminForceComplete(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, deal)
}

// BlockIssuer handles POST /api/v1/admin/issuers/:id/block.
func (h *AdminHandler) BlockIssuer(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.dealSvc.AdminBlockIssuer(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, gin.H{"issuer_id": id, "blocked": true})
}

// UnblockIssuer handles POST /api/v1/admin/issuers/:id/unblock.
func (h *AdminHandler) UnblockIssuer(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.dealSvc.AdminUnblockIssuer(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, gin.H{"issuer_id": id, "blocked": false})
}

// ResolveCase handles POST /api/v1/admin/cases/:id/resolve.
func (h *AdminHandler) ResolveCase(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	var req dto.ResolveCaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	if err := h.complianceSvc.Resolve(c.Request.Context(), id, req.Approve); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, gin.H{"case_id": id, "approved": req.Approve})
}
