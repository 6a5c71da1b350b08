package middleware

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"funkdesk/backend/pkg/redis"
	"funkdesk/backend/pkg/response"
)

// RateLimit limits requests per client IP and route within a window.
// Degrades to a pass-through when rdb is nil or redis errors.
func RateLimit(rdb *redis.Client, limit int, window time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		if rdb == nil {
			c.Next()
			return
		}

		key := fmt.Sprintf("rate_limit:%s:%s", c.ClientIP(), c.FullPath())
		allowed, err := rdb.CheckRateLimit(c.Request.Context(), key, limit, window)
		if err != nil {
			c.Next()
			return
		}

		if !allowed {
			response.Error(c, http.StatusTooManyRequests, 10004, "Zu viele Anfragen. Bitte versuchen Sie es später erneut.")
			c.Abort()
			return
		}

		c.Next()
	}
}
