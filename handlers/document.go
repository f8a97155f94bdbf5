package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	proposalRepo "tripforge/database/repository/proposal"
	"tripforge/models"
	"tripforge/services/document"
	proposalSvc "tripforge/services/proposal"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const documentCacheTTL = 30 * time.Minute

// DocumentHandler renders stored proposals into client-facing sales documents.
type DocumentHandler struct {
	Service proposalSvc.ProposalService
	Cache   *redis.Client
}

// GetDocumentHandler handles GET /api/proposals/:id/document. Rendered
// documents are cached keyed by the proposal's last-modified stamp, so a
// re-save invalidates the cache entry naturally.
func (h *DocumentHandler) GetDocumentHandler(c *gin.Context) {
	id := c.Param("id")
	p, err := h.Service.Get(id)
	if err != nil {
		if errors.Is(err, proposalRepo.ErrProposalNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Proposal not found"})
			return
		}
		getLogger(c).Error("Failed to fetch proposal for document", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch proposal"})
		return
	}

	ctx := context.Background()
	cacheKey := documentCacheKey(p)

	if h.Cache != nil {
		if cached, err := h.Cache.Get(ctx, cacheKey).Result(); err == nil {
			var doc document.Document
			if err := json.Unmarshal([]byte(cached), &doc); err == nil {
				c.JSON(http.StatusOK, doc)
				return
			}
		}
	}

	doc := document.BuildFor(p)
	if h.Cache != nil {
		if data, err := json.Marshal(doc); err == nil {
			if err := h.Cache.Set(ctx, cacheKey, data, documentCacheTTL).Err(); err != nil {
				getLogger(c).Warn("Failed to cache rendered document", zap.String("id", id), zap.Error(err))
			}
		}
	}
	c.JSON(http.StatusOK, doc)
}

// PreviewDocumentHandler handles POST /api/proposals/preview. The submitted
// proposal is rendered directly without touching storage or cache.
func (h *DocumentHandler) PreviewDocumentHandler(c *gin.Context) {
	var p models.Proposal
	if err := c.ShouldBindJSON(&p); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, document.BuildFor(&p))
}

func documentCacheKey(p *models.Proposal) string {
	return fmt.Sprintf("proposal:doc:%s:%d", p.ID, p.LastModified.UnixNano())
}
