package config

import (
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stock_dashboard/internal/platform/externalapi/a1pro"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"PORT", "API_URL", "API_TIMEOUT", "CORS_ALLOWED_ORIGINS", "LOG_FORMAT", "LOG_LEVEL", "API_RATE_LIMIT", "API_RATE_INTERVAL"} {
		t.Setenv(k, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.Server.Addr)
	assert.Equal(t, a1pro.DefaultBaseURL, cfg.API.BaseURL)
	assert.Equal(t, a1pro.DefaultTimeout, cfg.API.Timeout)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.CORS.AllowedOrigins)
	assert.Equal(t, "text", cfg.Log.Format)
	assert.Equal(t, slog.LevelInfo, cfg.Log.Level)
	assert.Equal(t, 0, cfg.RateLimit.Limit)
	assert.Equal(t, time.Minute, cfg.RateLimit.Interval)
}

func TestLoad_FromEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "9090")
	t.Setenv("API_URL", "http://backend:8000/")
	t.Setenv("API_TIMEOUT", "10s")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://localhost:3000, https://dashboard.example.com ,")
	t.Setenv("LOG_FORMAT", "JSON")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("API_RATE_LIMIT", "60")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ":9090", cfg.Server.Addr)
	assert.Equal(t, "http://backend:8000", cfg.API.BaseURL)
	assert.Equal(t, 10*time.Second, cfg.API.Timeout)
	assert.Equal(t, []string{"http://localhost:3000", "https://dashboard.example.com"}, cfg.CORS.AllowedOrigins)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, slog.LevelDebug, cfg.Log.Level)
	assert.Equal(t, 60, cfg.RateLimit.Limit)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  string
	}{
		{"log format", "LOG_FORMAT", "xml"},
		{"log level", "LOG_LEVEL", "verbose"},
		{"rate limit", "API_RATE_LIMIT", "-1"},
		{"rate interval", "API_RATE_INTERVAL", "0s"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(tt.key, tt.val)
			_, err := Load()
			assert.Error(t, err)
		})
	}
}
