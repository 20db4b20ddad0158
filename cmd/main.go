// Package main provides the entry point for the YouTube media grabber service.
// @title YouTube Media Grabber API
// @version 1.0
// @description A Go-based microservice that fetches YouTube video metadata and streams downloadable media.
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.url http://www.example.com/support
// @contact.email support@example.com

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /

package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/denisAlshanov/ytgrab/docs" // Import for swagger docs
	"github.com/denisAlshanov/ytgrab/internal/api/handlers"
	"github.com/denisAlshanov/ytgrab/internal/api/router"
	"github.com/denisAlshanov/ytgrab/internal/cache"
	"github.com/denisAlshanov/ytgrab/internal/config"
	"github.com/denisAlshanov/ytgrab/internal/services/alternatives"
	"github.com/denisAlshanov/ytgrab/internal/services/extractor"
	"github.com/denisAlshanov/ytgrab/internal/services/video"
	"github.com/denisAlshanov/ytgrab/internal/utils"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger := utils.GetLogger()
	logger.Info("Starting YouTube media grabber service")

	// Initialize metadata cache
	videoCache := cache.New(cfg.Cache.SweepInterval)

	// Build the source chain: library client first, then the yt-dlp
	// binary, then plain web scraping for metadata
	librarySource := extractor.NewLibrarySource(cfg.Extractor.HTTPTimeout)
	ytdlpSource := extractor.NewYtdlpSource(cfg.Extractor.YtdlpPath, cfg.Extractor.YtdlpTimeout)
	webSource := extractor.NewWebSource(cfg.Extractor.HTTPTimeout)

	if !ytdlpSource.Available() {
		logger.Warnf("yt-dlp binary not found at %q - running with library and web sources only", cfg.Extractor.YtdlpPath)
	}

	chain := extractor.NewChain(librarySource, ytdlpSource, webSource)

	// Initialize video service
	videoService := video.NewService(chain, videoCache, &cfg.Cache)

	// Initialize handlers
	videoHandler := handlers.NewVideoHandler(videoService, alternatives.NewRegistry(cfg.Alternatives.Services), &cfg.Extractor)
	healthHandler := handlers.NewHealthHandler(ytdlpSource, chain, videoCache)

	// Initialize router
	r := router.NewRouter(cfg, videoHandler, healthHandler)

	// Start server
	go func() {
		logger.Infof("Starting server on %s:%s", cfg.Server.Host, cfg.Server.Port)
		if err := r.Start(); err != nil {
			logger.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	// Stop the cache sweeper
	videoCache.Close()

	logger.Info("Server shutdown complete")
}
