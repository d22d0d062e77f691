package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rmancero11/club-dashboard-realtime/pkg/types"
	"golang.org/x/time/rate"
)

// RateLimitMiddleware rejects requests beyond a token bucket of rps refill and
// burst capacity with 429. The bucket is shared by every route it guards.
func RateLimitMiddleware(rps float64, burst int) gin.HandlerFunc {
	limiter := rate.NewLimiter(rate.Limit(rps), burst)
	return func(c *gin.Context) {
		if !limiter.Allow() {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, types.ErrorResponse{Error: "too many requests"})
			return
		}
		c.Next()
	}
}
