package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"library-catalog/internal/domains/user"
)

type resolverStub struct{}

func (resolverStub) Register(_ context.Context, _ user.RegisterRequest) (*user.UserDTO, error) {
	return nil, nil
}

func (resolverStub) Login(_ context.Context, _ user.LoginRequest) (*user.UserDTO, string, error) {
	return nil, "", nil
}

func (resolverStub) Logout(_ context.Context, _ string) error {
	return nil
}

func (resolverStub) Resolve(_ context.Context, token string) (*user.UserDTO, error) {
	if token != "good" {
		return nil, user.ErrSessionNotFound
	}
	return &user.UserDTO{ID: 9, Username: "carol"}, nil
}

func setupAuthRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected", RequireAuth(resolverStub{}, "session"), func(c *gin.Context) {
		identity, ok := CurrentUser(c)
		if !ok {
			c.Status(http.StatusInternalServerError)
			return
		}
		c.JSON(http.StatusOK, identity)
	})
	return r
}

func TestRequireAuthNoCookie(t *testing.T) {
	r := setupAuthRouter()

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"error":"Not logged in"}`, w.Body.String())
}

func TestRequireAuthBadToken(t *testing.T) {
	r := setupAuthRouter()

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(&http.Cookie{Name: "session", Value: "stale"})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireAuthSetsCurrentUser(t *testing.T) {
	r := setupAuthRouter()

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(&http.Cookie{Name: "session", Value: "good"})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"id":9,"username":"carol"}`, w.Body.String())
}
