package handlers

import (
	"errors"
	"net/http"

	proposalRepo "tripforge/database/repository/proposal"
	"tripforge/middleware"
	"tripforge/models"
	proposalSvc "tripforge/services/proposal"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ProposalHandler serves the proposal CRUD endpoints.
type ProposalHandler struct {
	Service proposalSvc.ProposalService
}

// ListProposalsHandler handles GET /api/proposals.
// Listing is scoped to the authenticated user's role; storage failures
// surface as an empty list rather than an error.
func (h *ProposalHandler) ListProposalsHandler(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Missing authenticated user"})
		return
	}
	proposals, err := h.Service.List(user)
	if err != nil {
		getLogger(c).Error("Failed to list proposals", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list proposals"})
		return
	}
	c.JSON(http.StatusOK, proposals)
}

// SaveProposalHandler handles POST /api/proposals. New proposals get an
// identity and ownership stamped from the authenticated user; existing
// ones are replaced wholesale.
func (h *ProposalHandler) SaveProposalHandler(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Missing authenticated user"})
		return
	}

	var p models.Proposal
	if err := c.ShouldBindJSON(&p); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	saved, err := h.Service.Save(&p, user)
	if err != nil {
		var pErr *proposalSvc.ProposalError
		if errors.As(err, &pErr) {
			c.JSON(http.StatusBadRequest, gin.H{"error": pErr.Message, "code": pErr.Code})
			return
		}
		getLogger(c).Error("Failed to save proposal", zap.String("id", p.ID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save proposal"})
		return
	}
	c.JSON(http.StatusOK, saved)
}

// GetProposalHandler handles GET /api/proposals/:id.
func (h *ProposalHandler) GetProposalHandler(c *gin.Context) {
	id := c.Param("id")
	p, err := h.Service.Get(id)
	if err != nil {
		if errors.Is(err, proposalRepo.ErrProposalNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Proposal not found"})
			return
		}
		getLogger(c).Error("Failed to fetch proposal", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch proposal"})
		return
	}
	c.JSON(http.StatusOK, p)
}

// DeleteProposalHandler handles DELETE /api/proposals/:id. Deletion is a
// soft delete; the document stays in storage but leaves every listing.
func (h *ProposalHandler) DeleteProposalHandler(c *gin.Context) {
	id := c.Param("id")
	if err := h.Service.Delete(id); err != nil {
		if errors.Is(err, proposalRepo.ErrProposalNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Proposal not found"})
			return
		}
		var pErr *proposalSvc.ProposalError
		if errors.As(err, &pErr) {
			c.JSON(http.StatusBadRequest, gin.H{"error": pErr.Message, "code": pErr.Code})
			return
		}
		getLogger(c).Error("Failed to delete proposal", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete proposal"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Proposal deleted"})
}
