package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"tripforge/services/pricing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pricingRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := &PricingHandler{}
	r.POST("/breakdown", h.BreakdownHandler)
	r.POST("/flights", h.FlightTotalHandler)
	return r
}

func postJSON(t *testing.T, r *gin.Engine, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	data, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestBreakdownHandler(t *testing.T) {
	r := pricingRouter()

	w := postJSON(t, r, "/breakdown", gin.H{
		"netPrice":   100.0,
		"markup":     gin.H{"type": "percentage", "value": 10.0},
		"vatRule":    "domestic",
		"vatPercent": 15.0,
		"quantity":   2,
		"duration":   3,
	})
	require.Equal(t, http.StatusOK, w.Code)

	var b pricing.Breakdown
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &b))
	assert.InDelta(t, 660.0, b.SubTotal, 1e-9)
	assert.InDelta(t, 99.0, b.VatAmount, 1e-9)
	assert.InDelta(t, 759.0, b.GrandTotal, 1e-9)
}

func TestBreakdownHandlerRejectsBadJSON(t *testing.T) {
	r := pricingRouter()

	req := httptest.NewRequest(http.MethodPost, "/breakdown", bytes.NewBufferString("{not json"))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestFlightTotalHandler(t *testing.T) {
	r := pricingRouter()

	w := postJSON(t, r, "/flights", gin.H{
		"quotes": []gin.H{
			{"class": "Economy", "price": 500.0, "quantity": 2},
			{"class": "Business", "price": 1500.0, "quantity": 1},
		},
		"markup":     gin.H{"type": "fixed", "value": 50.0},
		"vatRule":    "international",
		"vatPercent": 10.0,
	})
	require.Equal(t, http.StatusOK, w.Code)

	var b pricing.Breakdown
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &b))
	// 1000+100 and 1500+50 sell, VAT on markup only.
	assert.InDelta(t, 2650.0, b.SubTotal, 1e-9)
	assert.InDelta(t, 15.0, b.VatAmount, 1e-9)
	assert.InDelta(t, 2665.0, b.GrandTotal, 1e-9)
}

func TestFlightTotalHandlerEmptyQuotes(t *testing.T) {
	r := pricingRouter()

	w := postJSON(t, r, "/flights", gin.H{
		"quotes":     []gin.H{},
		"markup":     gin.H{"type": "percentage", "value": 10.0},
		"vatRule":    "domestic",
		"vatPercent": 15.0,
	})
	require.Equal(t, http.StatusOK, w.Code)

	var b pricing.Breakdown
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &b))
	assert.Zero(t, b.SubTotal)
	assert.Zero(t, b.VatAmount)
	assert.Zero(t, b.GrandTotal)
}
