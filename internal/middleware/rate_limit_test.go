package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/redroute/bus-reservation-backend/internal/config"
	"github.com/stretchr/testify/assert"
)

func TestRateLimit(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.Use(RateLimit(config.RateLimitConfig{
		Enabled:       true,
		Requests:      2,
		WindowSeconds: 60,
	}))
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	perform := func() int {
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w.Code
	}

	// Same client IP for every httptest request, so the third call trips
	// the two-per-window limit
	assert.Equal(t, http.StatusOK, perform())
	assert.Equal(t, http.StatusOK, perform())
	assert.Equal(t, http.StatusTooManyRequests, perform())
}
