package middleware

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"

	"library-catalog/internal/shared/response"
	"library-catalog/pkg/cache"
	"library-catalog/pkg/logger"
)

// RateLimit enforces a fixed-window request limit per caller IP.
// Counters live in the cache (Redis in production): INCR the window key,
// set its expiry on first hit, reject once the count exceeds the limit.
// Requests over the limit are rejected, never queued.
func RateLimit(store cache.Cache, limit int, window time.Duration, scope string) gin.HandlerFunc {
	return func(c *gin.Context) {
		ip := c.GetString("client_ip")
		if ip == "" {
			ip = c.ClientIP()
		}

		key := fmt.Sprintf("ratelimit:%s:%s", scope, ip)

		count, err := store.Increment(c.Request.Context(), key)
		if err != nil {
			// A broken cache must not take the API down with it.
			logger.Error("rate limiter unavailable, allowing request", err)
			c.Next()
			return
		}

		if count == 1 {
			if err := store.Expire(c.Request.Context(), key, window); err != nil {
				logger.Error("rate limiter expire failed", err)
			}
		}

		if count > int64(limit) {
			response.TooManyRequests(c, "too many requests, try again later")
			c.Abort()
			return
		}

		c.Next()
	}
}
