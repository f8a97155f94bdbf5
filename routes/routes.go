package routes

import (
	"net/http"
	"time"

	"tripforge/handlers"
	"tripforge/middleware"
	"tripforge/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterProposalRoutes registers proposal CRUD, draft and document endpoints.
func RegisterProposalRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/proposals")
	{
		api.Use(middleware.JWTAuthMiddleware())
		api.GET("", hb.Proposal.ListProposalsHandler)
		api.POST("", hb.Proposal.SaveProposalHandler)
		api.POST("/preview", hb.Document.PreviewDocumentHandler)

		// Draft sessions live in cache until saved or expired.
		api.POST("/drafts", hb.Proposal.OpenDraftHandler)
		api.GET("/drafts/:sessionID", hb.Proposal.GetDraftHandler)
		api.PUT("/drafts/:sessionID", hb.Proposal.UpdateDraftHandler)
		api.DELETE("/drafts/:sessionID", hb.Proposal.DiscardDraftHandler)

		api.GET("/:id", hb.Proposal.GetProposalHandler)
		api.DELETE("/:id", hb.Proposal.DeleteProposalHandler)
		api.GET("/:id/document", hb.Document.GetDocumentHandler)
	}
}

// RegisterPricingRoutes registers the stateless pricing endpoints.
func RegisterPricingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/pricing")
	{
		api.Use(middleware.JWTAuthMiddleware())
		api.POST("/breakdown", hb.Pricing.BreakdownHandler)
		api.POST("/flights", hb.Pricing.FlightTotalHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "services": utils.GetHealthStatus()})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterProposalRoutes(r, hb)
	RegisterPricingRoutes(r, hb)
	RegisterHealthRoute(r)
}
