package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/windoze95/saltybytes-picks/internal/cache"
	"github.com/windoze95/saltybytes-picks/internal/config"
	"github.com/windoze95/saltybytes-picks/internal/handlers"
	"github.com/windoze95/saltybytes-picks/internal/logger"
	"github.com/windoze95/saltybytes-picks/internal/middleware"
	"github.com/windoze95/saltybytes-picks/internal/search"
	"github.com/windoze95/saltybytes-picks/internal/service"
)

// SetupRouter sets up the Gin router.
func SetupRouter(cfg *config.Config) *gin.Engine {
	// Search provider setup; without credentials the gateway reports
	// not-configured and every request takes the fallback path
	var provider search.Provider
	if cfg.HasSearchCredentials() {
		provider = search.NewGoogleProvider(cfg.EnvVars.GoogleSearchKey, cfg.EnvVars.GoogleSearchCX)
	}
	gateway := search.NewGateway(provider,
		search.WithQueryTimeout(cfg.EnvVars.SearchTimeout),
		search.WithContentFilter(cfg.EnvVars.ContentFilter),
	)

	// Recommendation setup
	responseCache := cache.New(cache.NewMemoryStore(), cfg.EnvVars.CacheTTL)
	recommendService := service.NewRecommendService(cfg, gateway, responseCache, service.NewScorer(cfg.Scoring))
	recommendHandler := handlers.NewRecommendHandler(recommendService)

	return NewEngine(cfg, recommendHandler)
}

// NewEngine wires middleware and routes around an existing handler.
func NewEngine(cfg *config.Config, recommendHandler *handlers.RecommendHandler) *gin.Engine {
	r := gin.New()

	// Request ID first so recovery and access logs can use it
	r.Use(logger.RequestIDMiddleware())
	r.Use(logger.AccessLogMiddleware())
	r.Use(middleware.JSONRecovery())

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowMethods = []string{http.MethodGet, http.MethodOptions}
	corsConfig.ExposeHeaders = []string{logger.RequestIDHeader}
	if len(cfg.EnvVars.AllowedOrigins) > 0 {
		corsConfig.AllowOrigins = cfg.EnvVars.AllowedOrigins
	} else {
		corsConfig.AllowAllOrigins = true
	}
	r.Use(cors.New(corsConfig))

	// Liveness
	r.GET("/", handlers.Health)
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
		})
	})

	// Recommendations
	r.GET("/recommend",
		middleware.RateLimitByIP(cfg.EnvVars.RateLimitRPS, time.Minute, 10*time.Minute),
		recommendHandler.Recommend,
	)

	return r
}
