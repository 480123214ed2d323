package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func unsetEnv(t *testing.T, key string) {
	t.Helper()
	t.Setenv(key, "")
	require.NoError(t, os.Unsetenv(key))
}

func TestLoadDefaults(t *testing.T) {
	unsetEnv(t, "ENVIRONMENT")
	t.Setenv("CLIENT_URL", "http://localhost:3000/")
	t.Setenv("CORS_ORIGINS", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "production", cfg.Environment)
	assert.False(t, cfg.IsDevelopment())

	assert.Equal(t, "http://localhost:3000", cfg.ClientURL)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.CORSOrigins)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("ENVIRONMENT", "production")
	t.Setenv("SERVER_PORT", "8080")
	t.Setenv("CORS_ORIGINS", "https://picklrzone.com, https://www.picklrzone.com ,")
	t.Setenv("CACHE_TTL_SECONDS", "120")
	t.Setenv("RATE_LIMIT_MESSAGES", "not-a-number")
	t.Setenv("RATE_LIMIT_CONVERSATIONS_WINDOW_SECONDS", "600")

	cfg, err := Load()
	require.NoError(t, err)

	assert.False(t, cfg.IsDevelopment())
	assert.Equal(t, "8080", cfg.ServerPort)
	assert.Equal(t, []string{"https://picklrzone.com", "https://www.picklrzone.com"}, cfg.CORSOrigins)
	assert.Equal(t, 2*time.Minute, cfg.CacheTTL)
	assert.Equal(t, 10, cfg.RateLimitMessages)
	assert.Equal(t, 10*time.Minute, cfg.RateLimitConvWindow)
}

func TestDevelopmentIsOptIn(t *testing.T) {
	t.Setenv("ENVIRONMENT", "development")

	cfg, err := Load()
	require.NoError(t, err)
	assert.True(t, cfg.IsDevelopment())
}
