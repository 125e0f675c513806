package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("REDIS_HOST", "")
	t.Setenv("JWT_EXPIRATION", "")
	t.Setenv("TRIAL_BUDGET_SECONDS", "")
	t.Setenv("CORS_ALLOWED_ORIGIN", "")

	cfg := Load()

	assert.Equal(t, "8080", cfg.Port)
	assert.Empty(t, cfg.RedisAddr)
	assert.Equal(t, 24*time.Hour, cfg.JWTExpiration)
	assert.Zero(t, cfg.TrialBudgetSeconds)
	assert.Empty(t, cfg.AllowedOrigins)
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("REDIS_HOST", "cache.internal")
	t.Setenv("REDIS_PORT", "6380")
	t.Setenv("JWT_EXPIRATION", "12h")
	t.Setenv("TRIAL_BUDGET_SECONDS", "600")
	t.Setenv("CORS_ALLOWED_ORIGIN", "https://app.example.com")

	cfg := Load()

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "cache.internal:6380", cfg.RedisAddr)
	assert.Equal(t, 12*time.Hour, cfg.JWTExpiration)
	assert.Equal(t, 600, cfg.TrialBudgetSeconds)
	assert.Equal(t, []string{"https://app.example.com"}, cfg.AllowedOrigins)
}

func TestLoad_InvalidValuesFallBack(t *testing.T) {
	t.Setenv("JWT_EXPIRATION", "not-a-duration")
	t.Setenv("TRIAL_BUDGET_SECONDS", "-5")

	cfg := Load()

	assert.Equal(t, 24*time.Hour, cfg.JWTExpiration)
	assert.Zero(t, cfg.TrialBudgetSeconds)
}
