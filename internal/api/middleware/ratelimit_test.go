package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/denisAlshanov/ytgrab/internal/config"
)

func TestRateLimitAllowsWithinBudget(t *testing.T) {
	gin.SetMode(gin.TestMode)

	engine := gin.New()
	engine.Use(RateLimitMiddleware(&config.APIConfig{
		RateLimitRequests: 5,
		RateLimitWindow:   time.Minute,
	}))
	engine.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	for i := 0; i < 5; i++ {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		engine.ServeHTTP(w, req)
		if w.Code != http.StatusOK {
			t.Fatalf("Request %d: expected 200, got %d", i+1, w.Code)
		}
	}
}

func TestRateLimitBlocksOverBudget(t *testing.T) {
	gin.SetMode(gin.TestMode)

	engine := gin.New()
	engine.Use(RateLimitMiddleware(&config.APIConfig{
		RateLimitRequests: 2,
		RateLimitWindow:   time.Minute,
	}))
	engine.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	var lastCode int
	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		engine.ServeHTTP(w, req)
		lastCode = w.Code
	}

	if lastCode != http.StatusTooManyRequests {
		t.Errorf("Expected 429 after exceeding the limit, got %d", lastCode)
	}
}

func TestRateLimiterPerClient(t *testing.T) {
	rl := newRateLimiter(1, time.Minute)

	if !rl.allow("1.1.1.1") {
		t.Error("First request should pass")
	}
	if rl.allow("1.1.1.1") {
		t.Error("Second request from the same client should be limited")
	}
	if !rl.allow("2.2.2.2") {
		t.Error("A different client has its own budget")
	}
}
