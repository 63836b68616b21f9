package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"library-catalog/internal/config"
	"library-catalog/internal/domains/user"
	"library-catalog/internal/shared/middleware"
	"library-catalog/internal/shared/response"
)

type AuthHandler struct {
	service user.Service
	session config.SessionConfig
}

func NewAuthHandler(svc user.Service, session config.SessionConfig) *AuthHandler {
	return &AuthHandler{
		service: svc,
		session: session,
	}
}

// Register - POST /api/auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var req user.RegisterRequest
	if err := c.BindJSON(&req); err != nil {
		response.BadRequest(c, "invalid JSON body")
		return
	}

	created, err := h.service.Register(c.Request.Context(), req)
	if err != nil {
		var verrs validation.Errors
		switch {
		case errors.Is(err, user.ErrUsernameTaken):
			response.Conflict(c, err.Error())
		case errors.As(err, &verrs):
			response.ValidationError(c, err)
		default:
			response.InternalServerError(c, "failed to register")
		}
		return
	}

	c.JSON(http.StatusCreated, created)
}

// Login - POST /api/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req user.LoginRequest
	if err := c.BindJSON(&req); err != nil {
		response.BadRequest(c, "invalid JSON body")
		return
	}

	identity, token, err := h.service.Login(c.Request.Context(), req)
	if err != nil {
		var verrs validation.Errors
		switch {
		case errors.Is(err, user.ErrInvalidCredentials):
			response.Unauthorized(c, err.Error())
		case errors.As(err, &verrs):
			response.ValidationError(c, err)
		default:
			response.InternalServerError(c, "failed to log in")
		}
		return
	}

	h.setSessionCookie(c, token, int(h.session.TTL.Seconds()))
	c.JSON(http.StatusOK, identity)
}

// Logout - POST /api/auth/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	token, _ := c.Cookie(h.session.CookieName)

	if err := h.service.Logout(c.Request.Context(), token); err != nil {
		response.InternalServerError(c, "failed to log out")
		return
	}

	// Expire the cookie regardless of whether a session existed.
	h.setSessionCookie(c, "", -1)
	c.Status(http.StatusNoContent)
}

// Me - GET /api/auth/me (auth required)
func (h *AuthHandler) Me(c *gin.Context) {
	identity, ok := middleware.CurrentUser(c)
	if !ok {
		response.Unauthorized(c, "Not logged in")
		return
	}

	c.JSON(http.StatusOK, identity)
}

func (h *AuthHandler) setSessionCookie(c *gin.Context, token string, maxAge int) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(h.session.CookieName, token, maxAge, "/", "", h.session.Secure, true)
}
