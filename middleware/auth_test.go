package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"tripforge/config"
	"tripforge/models"
	"tripforge/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func authRouter() (*gin.Engine, *models.User) {
	gin.SetMode(gin.TestMode)
	var seen models.User
	r := gin.New()
	r.Use(JWTAuthMiddleware())
	r.GET("/protected", func(c *gin.Context) {
		if user, ok := CurrentUser(c); ok {
			seen = user
		}
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	return r, &seen
}

func TestJWTAuthMiddleware(t *testing.T) {
	config.AppConfig.JWTSecret = "test-secret"

	user := models.User{ID: "u1", Email: "agent@acme.travel", CompanyID: "acme", Role: models.RoleAdmin}
	token, err := utils.GenerateToken(user, time.Hour)
	require.NoError(t, err)

	r, seen := authRouter()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, user, *seen)
}

func TestJWTAuthMiddlewareMissingHeader(t *testing.T) {
	config.AppConfig.JWTSecret = "test-secret"

	r, _ := authRouter()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestJWTAuthMiddlewareBadToken(t *testing.T) {
	config.AppConfig.JWTSecret = "test-secret"

	r, _ := authRouter()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer not.a.token")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestJWTAuthMiddlewareExpiredToken(t *testing.T) {
	config.AppConfig.JWTSecret = "test-secret"

	user := models.User{ID: "u1", Email: "agent@acme.travel", Role: models.RoleAgent}
	token, err := utils.GenerateToken(user, -time.Minute)
	require.NoError(t, err)

	r, _ := authRouter()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
