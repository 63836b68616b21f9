package middleware

import (
	"github.com/gin-gonic/gin"

	"library-catalog/internal/domains/user"
	"library-catalog/internal/shared/response"
)

const currentUserKey = "currentUser"

// RequireAuth resolves the session cookie to a user identity before the
// handler runs. On any failure it short-circuits with 401. The resolved
// identity is set into the gin context; handlers read it back through
// CurrentUser instead of re-resolving the cookie.
func RequireAuth(auth user.Service, cookieName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(cookieName)
		if err != nil || token == "" {
			response.Unauthorized(c, "Not logged in")
			c.Abort()
			return
		}

		identity, err := auth.Resolve(c.Request.Context(), token)
		if err != nil {
			response.Unauthorized(c, "Not logged in")
			c.Abort()
			return
		}

		c.Set(currentUserKey, *identity)
		c.Next()
	}
}

// CurrentUser returns the identity RequireAuth put into the context.
func CurrentUser(c *gin.Context) (user.UserDTO, bool) {
	v, ok := c.Get(currentUserKey)
	if !ok {
		return user.UserDTO{}, false
	}
	dto, ok := v.(user.UserDTO)
	return dto, ok
}
