// Package config provides centralized configuration loaded from environment
// variables. Shared by cmd/api and cmd/fetch.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Known provider names.
const (
	ProviderAPIFootball = "apifootball"
	ProviderSoccersAPI  = "soccersapi"
)

// Config struct — populated from environment variables.
type Config struct {
	// Active provider. Exactly one adapter backs the facade and the proxy;
	// switching providers is this one setting.
	Provider string

	// Provider credentials. API-Football authenticates with a header key,
	// SoccersAPI with a user/token query pair.
	APIFootballKey  string
	SoccersAPIUser  string
	SoccersAPIToken string

	// Upstream request budget shared by adapter clients.
	UpstreamRequestsPerMinute int

	// API server
	APIHost     string
	APIPort     int
	Environment string // development, staging, production
	Debug       bool

	// CORS
	CORSAllowOrigins []string

	// Rate limiting (inbound, per client IP)
	RateLimitEnabled  bool
	RateLimitRequests int
	RateLimitWindow   time.Duration

	// Cache
	CacheEnabled bool
}

// Load reads configuration from environment variables with sensible defaults.
func Load() (*Config, error) {
	cfg := &Config{
		Provider: strings.ToLower(envOr("PROVIDER", ProviderAPIFootball)),

		APIFootballKey:  envOr("API_FOOTBALL_KEY", ""),
		SoccersAPIUser:  envOr("SOCCERSAPI_USER", ""),
		SoccersAPIToken: envOr("SOCCERSAPI_TOKEN", ""),

		UpstreamRequestsPerMinute: envInt("UPSTREAM_REQUESTS_PER_MINUTE", 60),

		APIHost:     envOr("API_HOST", "0.0.0.0"),
		APIPort:     envInt("API_PORT", envInt("PORT", 8000)),
		Environment: envOr("ENVIRONMENT", "development"),
		Debug:       envBool("DEBUG", false),

		CORSAllowOrigins: envList("CORS_ALLOW_ORIGINS", []string{"*"}),

		RateLimitEnabled:  envBool("RATE_LIMIT_ENABLED", true),
		RateLimitRequests: envInt("RATE_LIMIT_REQUESTS", 100),
		RateLimitWindow:   time.Duration(envInt("RATE_LIMIT_WINDOW", 60)) * time.Second,

		CacheEnabled: envBool("CACHE_ENABLED", true),
	}

	switch cfg.Provider {
	case ProviderAPIFootball:
		if cfg.APIFootballKey == "" {
			return nil, fmt.Errorf("API_FOOTBALL_KEY must be set when PROVIDER=%s", cfg.Provider)
		}
	case ProviderSoccersAPI:
		if cfg.SoccersAPIUser == "" || cfg.SoccersAPIToken == "" {
			return nil, fmt.Errorf("SOCCERSAPI_USER and SOCCERSAPI_TOKEN must be set when PROVIDER=%s", cfg.Provider)
		}
	default:
		return nil, fmt.Errorf("unknown PROVIDER %q (expected %s or %s)", cfg.Provider, ProviderAPIFootball, ProviderSoccersAPI)
	}

	return cfg, nil
}

// IsProduction returns true if running in production environment.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// --------------------------------------------------------------------------
// Env helpers
// --------------------------------------------------------------------------

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return fallback
}

func envList(key string, fallback []string) []string {
	if v := os.Getenv(key); v != "" {
		parts := strings.Split(v, ",")
		result := make([]string, 0, len(parts))
		for _, p := range parts {
			if trimmed := strings.TrimSpace(p); trimmed != "" {
				result = append(result, trimmed)
			}
		}
		if len(result) > 0 {
			return result
		}
	}
	return fallback
}
