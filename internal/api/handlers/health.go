package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/denisAlshanov/ytgrab/internal/cache"
	"github.com/denisAlshanov/ytgrab/internal/services/extractor"
)

type HealthHandler struct {
	ytdlp *extractor.YtdlpSource
	chain *extractor.Chain
	cache *cache.Cache
}

type HealthResponse struct {
	Status    string                   `json:"status"`
	Timestamp string                   `json:"timestamp"`
	Version   string                   `json:"version"`
	Services  map[string]ServiceHealth `json:"services"`
	Cache     cache.Stats              `json:"cache"`
}

type ServiceHealth struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

func NewHealthHandler(ytdlp *extractor.YtdlpSource, chain *extractor.Chain, c *cache.Cache) *HealthHandler {
	return &HealthHandler{
		ytdlp: ytdlp,
		chain: chain,
		cache: c,
	}
}

// Health godoc
// @Summary Health check endpoint
// @Description Check the health of the service and its extraction sources
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Success 503 {object} HealthResponse
// @Router /health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	response := HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now().Format(time.RFC3339),
		Version:   "1.0.0",
		Services:  make(map[string]ServiceHealth),
		Cache:     h.cache.Stats(),
	}

	// The library and web sources need only outbound HTTP, which cannot be
	// probed cheaply; report configuration instead
	for _, name := range h.chain.SourceNames() {
		response.Services[name] = ServiceHealth{Status: "healthy"}
	}

	if h.ytdlp != nil && !h.ytdlp.Available() {
		response.Services[h.ytdlp.Name()] = ServiceHealth{
			Status: "degraded",
			Error:  "yt-dlp binary not found in PATH",
		}
	}

	// Degraded sources do not fail the check while any source remains
	healthyCount := 0
	for _, service := range response.Services {
		if service.Status == "healthy" {
			healthyCount++
		}
	}
	if healthyCount == 0 {
		response.Status = "unhealthy"
		c.JSON(http.StatusServiceUnavailable, response)
		return
	}

	c.JSON(http.StatusOK, response)
}

// Readiness godoc
// @Summary Readiness check endpoint
// @Description Check if the service is ready to accept requests
// @Tags health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /ready [get]
func (h *HealthHandler) Readiness(c *gin.Context) {
	checks := map[string]interface{}{
		"sources": h.chain.SourceNames(),
	}
	if h.ytdlp != nil {
		checks["ytdlp"] = map[string]interface{}{
			"available": h.ytdlp.Available(),
		}
	}

	// No durable dependencies to wait for; ready once the chain is built
	c.JSON(http.StatusOK, map[string]interface{}{
		"ready":     true,
		"timestamp": time.Now().Format(time.RFC3339),
		"checks":    checks,
	})
}

// Liveness godoc
// @Summary Liveness check endpoint
// @Description Check if the service is alive
// @Tags health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /live [get]
func (h *HealthHandler) Liveness(c *gin.Context) {
	c.JSON(http.StatusOK, map[string]interface{}{
		"alive":     true,
		"timestamp": time.Now().Format(time.RFC3339),
	})
}
