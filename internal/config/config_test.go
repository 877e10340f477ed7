package config

import (
	"testing"
	"time"
)

// clearProviderEnv blanks every variable Load reads so ambient shell state
// never leaks into a test.
func clearProviderEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"PROVIDER", "API_FOOTBALL_KEY", "SOCCERSAPI_USER", "SOCCERSAPI_TOKEN",
		"UPSTREAM_REQUESTS_PER_MINUTE", "API_HOST", "API_PORT", "PORT",
		"ENVIRONMENT", "DEBUG", "CORS_ALLOW_ORIGINS",
		"RATE_LIMIT_ENABLED", "RATE_LIMIT_REQUESTS", "RATE_LIMIT_WINDOW",
		"CACHE_ENABLED",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadDefaultsToAPIFootball(t *testing.T) {
	clearProviderEnv(t)
	t.Setenv("API_FOOTBALL_KEY", "k")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Provider != ProviderAPIFootball {
		t.Fatalf("unexpected provider %q", cfg.Provider)
	}
	if cfg.APIPort != 8000 || cfg.APIHost != "0.0.0.0" {
		t.Fatalf("unexpected server defaults %s:%d", cfg.APIHost, cfg.APIPort)
	}
	if !cfg.CacheEnabled || !cfg.RateLimitEnabled {
		t.Fatal("cache and rate limiting default on")
	}
	if cfg.RateLimitWindow != 60*time.Second {
		t.Fatalf("unexpected rate limit window %v", cfg.RateLimitWindow)
	}
	if len(cfg.CORSAllowOrigins) != 1 || cfg.CORSAllowOrigins[0] != "*" {
		t.Fatalf("unexpected CORS default %v", cfg.CORSAllowOrigins)
	}
}

func TestLoadRequiresAPIFootballKey(t *testing.T) {
	clearProviderEnv(t)
	t.Setenv("PROVIDER", "apifootball")

	if _, err := Load(); err == nil {
		t.Fatal("expected an error without API_FOOTBALL_KEY")
	}
}

func TestLoadRequiresSoccersAPICredentialPair(t *testing.T) {
	clearProviderEnv(t)
	t.Setenv("PROVIDER", "soccersapi")
	t.Setenv("SOCCERSAPI_USER", "u")

	if _, err := Load(); err == nil {
		t.Fatal("expected an error with only half the credential pair")
	}

	t.Setenv("SOCCERSAPI_TOKEN", "tok")
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Provider != ProviderSoccersAPI || cfg.SoccersAPIToken != "tok" {
		t.Fatalf("unexpected config %+v", cfg)
	}
}

func TestLoadRejectsUnknownProvider(t *testing.T) {
	clearProviderEnv(t)
	t.Setenv("PROVIDER", "espn")

	if _, err := Load(); err == nil {
		t.Fatal("expected an error for an unknown provider")
	}
}

func TestLoadNormalizesProviderCase(t *testing.T) {
	clearProviderEnv(t)
	t.Setenv("PROVIDER", "SoccersAPI")
	t.Setenv("SOCCERSAPI_USER", "u")
	t.Setenv("SOCCERSAPI_TOKEN", "tok")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Provider != ProviderSoccersAPI {
		t.Fatalf("provider name should be lowercased, got %q", cfg.Provider)
	}
}

func TestLoadReadsOverrides(t *testing.T) {
	clearProviderEnv(t)
	t.Setenv("API_FOOTBALL_KEY", "k")
	t.Setenv("PORT", "9090")
	t.Setenv("ENVIRONMENT", "production")
	t.Setenv("CACHE_ENABLED", "false")
	t.Setenv("CORS_ALLOW_ORIGINS", "https://a.example, https://b.example")
	t.Setenv("UPSTREAM_REQUESTS_PER_MINUTE", "300")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.APIPort != 9090 {
		t.Fatalf("PORT fallback not honored, got %d", cfg.APIPort)
	}
	if !cfg.IsProduction() {
		t.Fatal("ENVIRONMENT=production should flag IsProduction")
	}
	if cfg.CacheEnabled {
		t.Fatal("CACHE_ENABLED=false should disable the cache")
	}
	if len(cfg.CORSAllowOrigins) != 2 || cfg.CORSAllowOrigins[1] != "https://b.example" {
		t.Fatalf("unexpected CORS origins %v", cfg.CORSAllowOrigins)
	}
	if cfg.UpstreamRequestsPerMinute != 300 {
		t.Fatalf("unexpected upstream budget %d", cfg.UpstreamRequestsPerMinute)
	}
}
