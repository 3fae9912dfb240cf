package config

import (
	"testing"
	"time"

	"autokeep/api/internal/middleware"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("API_PORT", "")
	t.Setenv("TOKEN_TTL_HOURS", "")
	t.Setenv("RATE_LIMIT_ENABLED", "")

	cfg := Load()
	if cfg.APIPort != 3000 {
		t.Errorf("APIPort = %d, want 3000", cfg.APIPort)
	}
	if cfg.TokenTTL != 72*time.Hour {
		t.Errorf("TokenTTL = %v, want 72h", cfg.TokenTTL)
	}
	if !cfg.RateLimit.Enabled {
		t.Errorf("expected rate limiting enabled by default")
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("API_PORT", "8080")
	t.Setenv("TOKEN_TTL_HOURS", "24")
	t.Setenv("JWT_SECRET", "override-secret")

	cfg := Load()
	if cfg.APIPort != 8080 {
		t.Errorf("APIPort = %d, want 8080", cfg.APIPort)
	}
	if cfg.TokenTTL != 24*time.Hour {
		t.Errorf("TokenTTL = %v, want 24h", cfg.TokenTTL)
	}
	if cfg.JWTSecret != "override-secret" {
		t.Errorf("JWTSecret = %q", cfg.JWTSecret)
	}
}

func TestLoadIgnoresInvalidInt(t *testing.T) {
	t.Setenv("API_PORT", "not-a-number")

	cfg := Load()
	if cfg.APIPort != 3000 {
		t.Errorf("APIPort = %d, want default 3000", cfg.APIPort)
	}
}

func TestGetRateLimitRuleForPath(t *testing.T) {
	t.Setenv("RATE_LIMIT_AUTH_LIMIT", "")
	cfg := Load()

	auth := cfg.GetRateLimitRuleForPath("/api/v1/auth/login")
	if auth.Type != middleware.RateLimitByIP {
		t.Errorf("auth rule type = %q, want ip", auth.Type)
	}
	if auth.Algorithm != middleware.FixedWindow {
		t.Errorf("auth rule algorithm = %q, want fixed_window", auth.Algorithm)
	}
	if auth.Limit >= cfg.RateLimit.DefaultRule.Limit {
		t.Errorf("auth limit %d should be tighter than default %d", auth.Limit, cfg.RateLimit.DefaultRule.Limit)
	}

	def := cfg.GetRateLimitRuleForPath("/health")
	if def.Path != "*" {
		t.Errorf("expected default rule for /health, got %q", def.Path)
	}
}
