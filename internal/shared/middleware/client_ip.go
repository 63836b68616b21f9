package middleware

import (
	"github.com/gin-gonic/gin"

	"library-catalog/internal/shared/utils"
)

// ClientIP extracts the caller's IP and stores it in the gin context.
// The rate limiter and the request logger key off it, so this must run
// before both.
func ClientIP() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("client_ip", utils.ExtractClientIP(c))
		c.Next()
	}
}
