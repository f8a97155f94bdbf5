package handlers

import (
	"errors"
	"net/http"

	"tripforge/models"
	proposalSvc "tripforge/services/proposal"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// OpenDraftHandler handles POST /api/proposals/drafts. It caches the
// submitted proposal as an editable draft session and returns the session ID.
func (h *ProposalHandler) OpenDraftHandler(c *gin.Context) {
	var p models.Proposal
	if err := c.ShouldBindJSON(&p); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	sessionID, err := h.Service.OpenDraft(&p)
	if err != nil {
		getLogger(c).Error("Failed to open draft session", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to open draft session"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"sessionID": sessionID})
}

// GetDraftHandler handles GET /api/proposals/drafts/:sessionID.
func (h *ProposalHandler) GetDraftHandler(c *gin.Context) {
	sessionID := c.Param("sessionID")
	p, err := h.Service.GetDraft(sessionID)
	if err != nil {
		if isDraftNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Draft session not found or expired"})
			return
		}
		getLogger(c).Error("Failed to read draft session", zap.String("sessionID", sessionID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read draft session"})
		return
	}
	c.JSON(http.StatusOK, p)
}

// UpdateDraftHandler handles PUT /api/proposals/drafts/:sessionID. The
// cached draft is replaced and its expiry window restarts.
func (h *ProposalHandler) UpdateDraftHandler(c *gin.Context) {
	sessionID := c.Param("sessionID")
	var p models.Proposal
	if err := c.ShouldBindJSON(&p); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	if err := h.Service.UpdateDraft(sessionID, &p); err != nil {
		if isDraftNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Draft session not found or expired"})
			return
		}
		getLogger(c).Error("Failed to update draft session", zap.String("sessionID", sessionID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update draft session"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"sessionID": sessionID})
}

// DiscardDraftHandler handles DELETE /api/proposals/drafts/:sessionID.
func (h *ProposalHandler) DiscardDraftHandler(c *gin.Context) {
	sessionID := c.Param("sessionID")
	if err := h.Service.DiscardDraft(sessionID); err != nil {
		getLogger(c).Error("Failed to discard draft session", zap.String("sessionID", sessionID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to discard draft session"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Draft discarded"})
}

func isDraftNotFound(err error) bool {
	var pErr *proposalSvc.ProposalError
	return errors.As(err, &pErr) && pErr.Code == "draftNotFound"
}
