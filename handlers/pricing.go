package handlers

import (
	"net/http"

	"tripforge/models"
	"tripforge/services/pricing"

	"github.com/gin-gonic/gin"
)

// PricingHandler serves the stateless pricing endpoints. Nothing here
// touches storage; callers get the same numbers the document builder uses.
type PricingHandler struct{}

// BreakdownHandler handles POST /api/pricing/breakdown.
func (h *PricingHandler) BreakdownHandler(c *gin.Context) {
	var input struct {
		NetPrice   float64             `json:"netPrice"`
		Markup     models.MarkupConfig `json:"markup"`
		VatRule    models.VatRule      `json:"vatRule"`
		VatPercent float64             `json:"vatPercent"`
		Quantity   int                 `json:"quantity"`
		Duration   int                 `json:"duration"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	breakdown := pricing.CalculateBreakdown(
		input.NetPrice, input.Markup, input.VatRule,
		input.VatPercent, input.Quantity, input.Duration,
	)
	c.JSON(http.StatusOK, breakdown)
}

// FlightTotalHandler handles POST /api/pricing/flights.
func (h *PricingHandler) FlightTotalHandler(c *gin.Context) {
	var input struct {
		Quotes     []models.FlightQuote `json:"quotes"`
		Markup     models.MarkupConfig  `json:"markup"`
		VatRule    models.VatRule       `json:"vatRule"`
		VatPercent float64              `json:"vatPercent"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	breakdown := pricing.CalculateFlightTotal(input.Quotes, input.Markup, input.VatRule, input.VatPercent)
	c.JSON(http.StatusOK, breakdown)
}
