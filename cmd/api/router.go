package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"library-catalog/internal/shared/middleware"
	"library-catalog/pkg/container"
)

func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	// Global middlewares
	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		middleware.CORS(),
		middleware.ClientIP(),
	)

	cfg := c.Config

	api := router.Group("/api")
	api.Use(
		middleware.RateLimit(c.Cache, cfg.RateLimit.Max, cfg.RateLimit.Window, "api"),
		middleware.CSRF(),
	)
	{
		api.GET("/health", healthCheckHandler(c))

		setupAuthRoutes(api, c)
		setupAuthorRoutes(api, c)
		setupBookRoutes(api, c)
	}

	return router
}

func setupAuthRoutes(api *gin.RouterGroup, c *container.Container) {
	cfg := c.Config
	requireAuth := middleware.RequireAuth(c.AuthService, cfg.Session.CookieName)

	// Register and login carry a tighter rate limit than the rest of the API.
	authLimiter := middleware.RateLimit(c.Cache, cfg.RateLimit.AuthMax, cfg.RateLimit.Window, "auth")

	auth := api.Group("/auth")
	{
		auth.POST("/register", authLimiter, c.AuthHandler.Register)
		auth.POST("/login", authLimiter, c.AuthHandler.Login)
		auth.POST("/logout", c.AuthHandler.Logout)
		auth.GET("/me", requireAuth, c.AuthHandler.Me)
	}
}

func setupAuthorRoutes(api *gin.RouterGroup, c *container.Container) {
	requireAuth := middleware.RequireAuth(c.AuthService, c.Config.Session.CookieName)

	authors := api.Group("/authors")
	{
		authors.GET("", c.AuthorHandler.List)
		authors.GET("/:id", c.AuthorHandler.GetByID)
		authors.POST("", requireAuth, c.AuthorHandler.Create)
		authors.DELETE("/:id", requireAuth, c.AuthorHandler.Delete)
	}
}

func setupBookRoutes(api *gin.RouterGroup, c *container.Container) {
	requireAuth := middleware.RequireAuth(c.AuthService, c.Config.Session.CookieName)

	books := api.Group("/books")
	{
		books.GET("", c.BookHandler.List)
		books.GET("/:id", c.BookHandler.GetByID)
		books.POST("", requireAuth, c.BookHandler.Create)
		books.PUT("/:id", requireAuth, c.BookHandler.Update)
		books.DELETE("/:id", requireAuth, c.BookHandler.Delete)
	}
}

func healthCheckHandler(appCtx *container.Container) gin.HandlerFunc {
	return func(c *gin.Context) {
		dbStatus := "ok"
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		if appCtx.DB == nil || appCtx.DB.Pool == nil {
			dbStatus = "disconnected"
		} else if err := appCtx.DB.HealthCheck(ctx); err != nil {
			dbStatus = "error"
		}

		cacheStatus := "ok"
		if appCtx.Cache == nil {
			cacheStatus = "disconnected"
		} else if err := appCtx.Cache.Ping(ctx); err != nil {
			cacheStatus = "error"
		}

		statusCode := http.StatusOK
		status := "ok"
		if dbStatus != "ok" {
			statusCode = http.StatusServiceUnavailable
			status = "degraded"
		}

		c.JSON(statusCode, gin.H{
			"status":    status,
			"timestamp": time.Now().Format(time.RFC3339),
			"version":   appCtx.Config.App.Version,
			"services": gin.H{
				"database": dbStatus,
				"cache":    cacheStatus,
			},
		})
	}
}
