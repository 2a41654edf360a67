package main

import (
	"os"
	"runtime"

	"github.com/gin-gonic/gin"
	"github.com/windoze95/saltybytes-picks/internal/config"
	"github.com/windoze95/saltybytes-picks/internal/logger"
	"github.com/windoze95/saltybytes-picks/internal/router"
	"go.uber.org/zap"
)

// init is called before the main function.
func init() {
	// Initialize structured logger (dev mode if GIN_MODE != release)
	isDev := os.Getenv("GIN_MODE") != "release"
	logger.Init(isDev)

	// Configure the runtime
	ConfigureRuntime()
}

// Entry point for the API.
func main() {
	defer logger.Sync()

	// Load the config
	var cfg *config.Config
	if c, err := config.LoadConfig(); err != nil {
		logger.Get().Fatal("failed to load config", zap.Error(err))
	} else {
		cfg = c
	}

	// Check that all required ENV variables are set
	if err := cfg.CheckConfigEnvFields(); err != nil {
		logger.Get().Fatal("missing required config fields", zap.Error(err))
	}

	// Load the scoring vocabulary, falling back to the built-in lists
	cfg.Scoring = config.DefaultScoring()
	if path := cfg.EnvVars.ScoringFile; path != "" {
		scoring, err := config.LoadScoring(path)
		if err != nil {
			logger.Get().Fatal("failed to load scoring vocabulary", zap.String("path", path), zap.Error(err))
		}
		cfg.Scoring = scoring
	}

	if !cfg.HasSearchCredentials() {
		logger.Get().Warn("google search credentials not set, serving fallback picks only")
	}

	// Create a new gin router
	gin.SetMode(gin.ReleaseMode)
	r := router.SetupRouter(cfg)

	// Run the server
	logger.Get().Info("starting server", zap.String("port", cfg.EnvVars.Port))
	if err := r.Run(":" + cfg.EnvVars.Port); err != nil {
		logger.Get().Fatal("server stopped", zap.Error(err))
	}
}

// ConfigureRuntime sets the number of operating system threads.
func ConfigureRuntime() {
	nuCPU := runtime.NumCPU()
	runtime.GOMAXPROCS(nuCPU)
	logger.Get().Info("runtime configured", zap.Int("cpus", nuCPU))
}
