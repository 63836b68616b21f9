package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"library-catalog/internal/shared/response"
)

// CSRFHeader is the custom header every state-changing API request must
// carry. Browsers cannot attach custom headers cross-site without a CORS
// preflight, which is what makes this check effective.
const CSRFHeader = "X-Requested-With"

// CSRF rejects non-GET/HEAD/OPTIONS requests missing the custom header.
func CSRF() gin.HandlerFunc {
	return func(c *gin.Context) {
		switch c.Request.Method {
		case http.MethodGet, http.MethodHead, http.MethodOptions:
			c.Next()
			return
		}

		if c.GetHeader(CSRFHeader) == "" {
			response.Forbidden(c, "missing "+CSRFHeader+" header")
			c.Abort()
			return
		}

		c.Next()
	}
}
