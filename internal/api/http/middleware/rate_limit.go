package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// RateLimitMiddleware rejects requests with 429 once the shared token bucket is empty.
// metrics may be nil.
func RateLimitMiddleware(rps float64, burst int, metrics *Metrics) gin.HandlerFunc {
	limiter := rate.NewLimiter(rate.Limit(rps), burst)

	return func(c *gin.Context) {
		if !limiter.Allow() {
			if metrics != nil {
				metrics.RateLimitedTotal.Inc()
			}
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error": "rate limit exceeded",
			})
			return
		}

		c.Next()
	}
}
