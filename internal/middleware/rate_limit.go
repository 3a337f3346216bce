package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redroute/bus-reservation-backend/internal/config"
	"github.com/ulule/limiter/v3"
	mgin "github.com/ulule/limiter/v3/drivers/middleware/gin"
	memorystore "github.com/ulule/limiter/v3/drivers/store/memory"
)

// RateLimit returns a per-client-IP rate limiting middleware. The store is
// in-memory: this service runs as a single process, so a shared store would
// only add an infrastructure dependency.
func RateLimit(cfg config.RateLimitConfig) gin.HandlerFunc {
	rate := limiter.Rate{
		Period: time.Duration(cfg.WindowSeconds) * time.Second,
		Limit:  int64(cfg.Requests),
	}

	store := memorystore.NewStore()

	return mgin.NewMiddleware(limiter.New(store, rate))
}
