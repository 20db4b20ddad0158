package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server       ServerConfig
	API          APIConfig
	Extractor    ExtractorConfig
	Cache        CacheConfig
	Alternatives AlternativesConfig
	CORS         CORSConfig
}

type ServerConfig struct {
	Port string
	Host string
}

type APIConfig struct {
	RateLimitRequests int
	RateLimitWindow   time.Duration
}

type ExtractorConfig struct {
	YtdlpPath       string
	YtdlpTimeout    time.Duration
	HTTPTimeout     time.Duration
	StreamTimeout   time.Duration
	StreamBufferLen int
}

type CacheConfig struct {
	InfoTTL       time.Duration
	DirectURLTTL  time.Duration
	SweepInterval time.Duration
}

type AlternativesConfig struct {
	Services []string
}

type CORSConfig struct {
	Enabled          bool
	AllowedOrigins   []string
	AllowedMethods   []string
	AllowedHeaders   []string
	ExposedHeaders   []string
	AllowCredentials bool
	MaxAge           int
	Profile          string
}

func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		fmt.Println("Warning: .env file not found, using environment variables")
	}

	cfg := &Config{}

	// Server configuration
	cfg.Server.Port = getEnv("SERVER_PORT", "8080")
	cfg.Server.Host = getEnv("SERVER_HOST", "0.0.0.0")

	// API configuration
	cfg.API.RateLimitRequests = getEnvInt("RATE_LIMIT_REQUESTS", 100)
	rateLimitWindow, err := time.ParseDuration(getEnv("RATE_LIMIT_WINDOW", "1m"))
	if err != nil {
		return nil, fmt.Errorf("invalid RATE_LIMIT_WINDOW: %w", err)
	}
	cfg.API.RateLimitWindow = rateLimitWindow

	// Extractor configuration
	cfg.Extractor.YtdlpPath = getEnv("YTDLP_PATH", "yt-dlp")
	ytdlpTimeout, err := time.ParseDuration(getEnv("YTDLP_TIMEOUT", "45s"))
	if err != nil {
		return nil, fmt.Errorf("invalid YTDLP_TIMEOUT: %w", err)
	}
	cfg.Extractor.YtdlpTimeout = ytdlpTimeout
	httpTimeout, err := time.ParseDuration(getEnv("EXTRACTOR_HTTP_TIMEOUT", "30s"))
	if err != nil {
		return nil, fmt.Errorf("invalid EXTRACTOR_HTTP_TIMEOUT: %w", err)
	}
	cfg.Extractor.HTTPTimeout = httpTimeout
	streamTimeout, err := time.ParseDuration(getEnv("STREAM_TIMEOUT", "10m"))
	if err != nil {
		return nil, fmt.Errorf("invalid STREAM_TIMEOUT: %w", err)
	}
	cfg.Extractor.StreamTimeout = streamTimeout
	cfg.Extractor.StreamBufferLen = getEnvInt("STREAM_BUFFER_BYTES", 64*1024)

	// Cache configuration
	infoTTL, err := time.ParseDuration(getEnv("CACHE_INFO_TTL", "30m"))
	if err != nil {
		return nil, fmt.Errorf("invalid CACHE_INFO_TTL: %w", err)
	}
	cfg.Cache.InfoTTL = infoTTL
	directTTL, err := time.ParseDuration(getEnv("CACHE_DIRECT_URL_TTL", "5m"))
	if err != nil {
		return nil, fmt.Errorf("invalid CACHE_DIRECT_URL_TTL: %w", err)
	}
	cfg.Cache.DirectURLTTL = directTTL
	sweepInterval, err := time.ParseDuration(getEnv("CACHE_SWEEP_INTERVAL", "1m"))
	if err != nil {
		return nil, fmt.Errorf("invalid CACHE_SWEEP_INTERVAL: %w", err)
	}
	cfg.Cache.SweepInterval = sweepInterval

	// Alternatives configuration; empty means every known service
	cfg.Alternatives.Services = getEnvStringSlice("ALTERNATIVES_SERVICES", nil)

	// CORS configuration
	cfg.CORS = loadCORSConfig()

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

func getEnvStringSlice(key string, defaultValue []string) []string {
	if value := os.Getenv(key); value != "" {
		return strings.Split(strings.TrimSpace(value), ",")
	}
	return defaultValue
}

// loadCORSConfig loads CORS configuration based on profile or custom settings
func loadCORSConfig() CORSConfig {
	profile := getEnv("CORS_PROFILE", "custom")

	switch profile {
	case "development":
		return getDevelopmentCORSConfig()
	case "production":
		return getProductionCORSConfig()
	default:
		return getCustomCORSConfig()
	}
}

// getDevelopmentCORSConfig returns permissive CORS settings for development
func getDevelopmentCORSConfig() CORSConfig {
	return CORSConfig{
		Enabled: getEnvBool("CORS_ENABLED", true),
		AllowedOrigins: getEnvStringSlice("CORS_ALLOWED_ORIGINS", []string{
			"http://localhost:3000",
			"http://localhost:8080",
			"http://127.0.0.1:3000",
			"http://127.0.0.1:8080",
		}),
		AllowedMethods: getEnvStringSlice("CORS_ALLOWED_METHODS", []string{
			"GET", "HEAD", "OPTIONS",
		}),
		AllowedHeaders: getEnvStringSlice("CORS_ALLOWED_HEADERS", []string{
			"Origin", "Content-Type", "Accept", "Range", "X-Requested-With",
		}),
		ExposedHeaders: getEnvStringSlice("CORS_EXPOSED_HEADERS", []string{
			"Content-Disposition", "Content-Length", "X-Correlation-ID",
		}),
		AllowCredentials: getEnvBool("CORS_ALLOW_CREDENTIALS", false),
		MaxAge:           getEnvInt("CORS_MAX_AGE", 86400),
		Profile:          "development",
	}
}

// getProductionCORSConfig returns restrictive CORS settings for production
func getProductionCORSConfig() CORSConfig {
	return CORSConfig{
		Enabled: getEnvBool("CORS_ENABLED", true),
		AllowedOrigins: getEnvStringSlice("CORS_ALLOWED_ORIGINS", []string{
			"https://app.ytgrab.dev",
		}),
		AllowedMethods: getEnvStringSlice("CORS_ALLOWED_METHODS", []string{
			"GET", "HEAD", "OPTIONS",
		}),
		AllowedHeaders: getEnvStringSlice("CORS_ALLOWED_HEADERS", []string{
			"Origin", "Content-Type", "Accept", "Range",
		}),
		ExposedHeaders: getEnvStringSlice("CORS_EXPOSED_HEADERS", []string{
			"Content-Disposition",
		}),
		AllowCredentials: getEnvBool("CORS_ALLOW_CREDENTIALS", false),
		MaxAge:           getEnvInt("CORS_MAX_AGE", 3600),
		Profile:          "production",
	}
}

// getCustomCORSConfig returns CORS settings from individual environment variables
func getCustomCORSConfig() CORSConfig {
	return CORSConfig{
		Enabled: getEnvBool("CORS_ENABLED", true),
		AllowedOrigins: getEnvStringSlice("CORS_ALLOWED_ORIGINS", []string{
			"*",
		}),
		AllowedMethods: getEnvStringSlice("CORS_ALLOWED_METHODS", []string{
			"GET", "HEAD", "OPTIONS",
		}),
		AllowedHeaders: getEnvStringSlice("CORS_ALLOWED_HEADERS", []string{
			"Origin", "Content-Type", "Accept", "Range",
		}),
		ExposedHeaders:   getEnvStringSlice("CORS_EXPOSED_HEADERS", []string{}),
		AllowCredentials: getEnvBool("CORS_ALLOW_CREDENTIALS", false),
		MaxAge:           getEnvInt("CORS_MAX_AGE", 3600),
		Profile:          "custom",
	}
}
