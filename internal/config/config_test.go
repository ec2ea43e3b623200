package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := LoadForTests(map[string]string{
		"APP_ENV":           "",
		"PORT":              "",
		"REDIS_URL":         "",
		"CALC_CACHE_TTL":    "",
		"RATE_LIMIT_WINDOW": "",
		"RATE_LIMIT_MAX":    "",
	})
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.AppEnv != "development" {
		t.Fatalf("unexpected env %q", cfg.AppEnv)
	}
	if cfg.HTTPAddr() != ":8080" {
		t.Fatalf("unexpected addr %q", cfg.HTTPAddr())
	}
	if cfg.CacheEnabled() {
		t.Fatal("cache must be disabled without REDIS_URL")
	}
	if cfg.RateLimitMax != 120 || cfg.RateLimitWindow != time.Minute {
		t.Fatalf("unexpected rate limit defaults: %d / %v", cfg.RateLimitMax, cfg.RateLimitWindow)
	}
}

func TestLoadOverrides(t *testing.T) {
	cfg, err := LoadForTests(map[string]string{
		"PORT":                 "9090",
		"REDIS_URL":            "redis://localhost:6379/0",
		"CALC_CACHE_TTL":       "30m",
		"CORS_ALLOWED_ORIGINS": "https://a.example, https://b.example",
	})
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.HTTPAddr() != ":9090" {
		t.Fatalf("unexpected addr %q", cfg.HTTPAddr())
	}
	if !cfg.CacheEnabled() {
		t.Fatal("cache should be enabled")
	}
	if cfg.CalcCacheTTL != 30*time.Minute {
		t.Fatalf("unexpected TTL %v", cfg.CalcCacheTTL)
	}
	if len(cfg.CORSAllowedOrigins) != 2 || cfg.CORSAllowedOrigins[1] != "https://b.example" {
		t.Fatalf("unexpected origins %v", cfg.CORSAllowedOrigins)
	}
}
