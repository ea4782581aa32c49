package server

import (
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/nitinmeharia/rule-engine/internal/auth"
	"github.com/nitinmeharia/rule-engine/internal/config"
	"github.com/nitinmeharia/rule-engine/internal/handler"
	"github.com/nitinmeharia/rule-engine/internal/middleware"
	"github.com/nitinmeharia/rule-engine/internal/repository"
)

// SetupRouter creates and configures the Gin router.
func SetupRouter(cfg *config.Config, store repository.NamespaceStore, redisClient *redis.Client) *gin.Engine {
	if cfg.DevMode {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	router.Use(middleware.Recovery())
	router.Use(middleware.Logging())

	healthHandler := handler.NewHealthHandler(store, redisClient)
	namespaceHandler := handler.NewNamespaceHandler(store)
	authHandler := handler.NewAuthHandler(cfg.JWTSecret, cfg.DevMode)

	// Health check endpoints (no auth required)
	router.GET("/health", healthHandler.Liveness)
	router.GET("/health/ready", healthHandler.Readiness)

	// Dev-only auth endpoint (only available in DEV_MODE)
	if cfg.DevMode {
		router.POST("/auth/dev/token", authHandler.GenerateDevToken)
	}

	// API v1 routes (auth required)
	v1 := router.Group("/v1")
	{
		v1.Use(middleware.Auth(cfg.JWTSecret))

		if redisClient != nil {
			rateLimiter := middleware.NewRateLimiter(redisClient, cfg.RateLimitRPS, cfg.RateLimitBurst)
			v1.Use(rateLimiter.Middleware())
		}

		namespaces := v1.Group("/namespaces")
		{
			namespaces.GET("", middleware.RequireAnyRole(auth.RoleViewer, auth.RoleExecutor), namespaceHandler.List)
			namespaces.GET("/:id", middleware.RequireAnyRole(auth.RoleViewer, auth.RoleExecutor), namespaceHandler.Get)
			namespaces.POST("", middleware.RequireRole(auth.RoleAdmin), namespaceHandler.Create)
		}
	}

	return router
}
