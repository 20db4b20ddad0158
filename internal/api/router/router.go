package router

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/denisAlshanov/ytgrab/internal/api/handlers"
	"github.com/denisAlshanov/ytgrab/internal/api/middleware"
	"github.com/denisAlshanov/ytgrab/internal/config"
)

type Router struct {
	engine *gin.Engine
	config *config.Config
}

func NewRouter(cfg *config.Config, videoHandler *handlers.VideoHandler, healthHandler *handlers.HealthHandler) *Router {
	// Set Gin mode
	if cfg.Server.Host == "0.0.0.0" {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()

	engine.Use(middleware.CorrelationIDMiddleware())
	engine.Use(middleware.RecoveryMiddleware())
	engine.Use(middleware.CORSMiddleware(&cfg.CORS))

	// Health endpoints
	health := engine.Group("/")
	{
		health.GET("/health", healthHandler.Health)
		health.GET("/ready", healthHandler.Readiness)
		health.GET("/live", healthHandler.Liveness)
		health.GET("/ping", healthHandler.Liveness)
	}
	engine.GET("/", healthHandler.Health)

	// Swagger documentation
	engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// One limiter shared by the versioned and legacy routes
	rateLimit := middleware.RateLimitMiddleware(&cfg.API)

	// API endpoints with rate limiting
	api := engine.Group("/api/v1")
	api.Use(rateLimit)
	{
		video := api.Group("/video")
		{
			video.GET("/info", videoHandler.Info)                 // /api/v1/video/info
			video.GET("/download", videoHandler.Download)         // /api/v1/video/download
			video.GET("/stream", videoHandler.Stream)             // /api/v1/video/stream
			video.GET("/direct", videoHandler.Direct)             // /api/v1/video/direct
			video.GET("/alternatives", videoHandler.Alternatives) // /api/v1/video/alternatives
		}
	}

	// Legacy root aliases kept for pre-versioned clients
	legacy := engine.Group("/")
	legacy.Use(rateLimit)
	{
		legacy.GET("/info", videoHandler.Info)
		legacy.GET("/download", videoHandler.Download)
		legacy.GET("/stream", videoHandler.Stream)
		legacy.GET("/direct", videoHandler.Direct)
		legacy.GET("/alternatives", videoHandler.Alternatives)
	}

	return &Router{
		engine: engine,
		config: cfg,
	}
}

func (r *Router) Start() error {
	addr := r.config.Server.Host + ":" + r.config.Server.Port
	return r.engine.Run(addr)
}

func (r *Router) Engine() *gin.Engine {
	return r.engine
}
