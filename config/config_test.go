package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var configKeys = []string{
	"HOST", "PORT", "STATIC_DIR", "CORS_ALLOWED_ORIGINS", "METRICS_ENABLED",
	"STORE_BACKEND", "REDIS_ADDR", "REDIS_PASSWORD", "REDIS_DB",
	"RATE_LIMIT_RPS", "RATE_LIMIT_BURST", "SERVICE_NAME", "APP_ENV", "APP_VERSION",
}

func clearEnv(t *testing.T) {
	t.Helper()
	// keep a developer's .env out of the test
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(wd) })
	for _, key := range configKeys {
		t.Setenv(key, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0:3000", cfg.Server.Addr())
	assert.Equal(t, "dist", cfg.Server.StaticDir)
	assert.Empty(t, cfg.Server.CORSAllowedOrigins)
	assert.True(t, cfg.Server.MetricsEnabled)
	assert.Equal(t, StoreBackendMemory, cfg.Store.Backend)
	assert.Equal(t, "localhost:6379", cfg.Redis.Addr)
	assert.Equal(t, 0.0, cfg.RateLimit.RPS)
	assert.Equal(t, 20, cfg.RateLimit.Burst)
	assert.Equal(t, "todo-backend", cfg.App.ServiceName)
	assert.Equal(t, "development", cfg.App.Environment)
}

func TestLoad_FromEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "8081")
	t.Setenv("HOST", "127.0.0.1")
	t.Setenv("STORE_BACKEND", "Redis")
	t.Setenv("REDIS_ADDR", "redis:6379")
	t.Setenv("REDIS_DB", "2")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://localhost:5173, http://example.com,")
	t.Setenv("RATE_LIMIT_RPS", "12.5")
	t.Setenv("METRICS_ENABLED", "false")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:8081", cfg.Server.Addr())
	assert.Equal(t, StoreBackendRedis, cfg.Store.Backend)
	assert.Equal(t, "redis:6379", cfg.Redis.Addr)
	assert.Equal(t, 2, cfg.Redis.DB)
	assert.Equal(t, []string{"http://localhost:5173", "http://example.com"}, cfg.Server.CORSAllowedOrigins)
	assert.Equal(t, 12.5, cfg.RateLimit.RPS)
	assert.False(t, cfg.Server.MetricsEnabled)
}

func TestLoad_InvalidNumbersFallBack(t *testing.T) {
	clearEnv(t)
	t.Setenv("REDIS_DB", "abc")
	t.Setenv("RATE_LIMIT_RPS", "fast")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 0, cfg.Redis.DB)
	assert.Equal(t, 0.0, cfg.RateLimit.RPS)
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Server:    ServerConfig{Port: "3000"},
			Store:     StoreConfig{Backend: StoreBackendMemory},
			RateLimit: RateLimitConfig{Burst: 20},
		}
	}

	t.Run("valid", func(t *testing.T) {
		assert.NoError(t, valid().Validate())
	})

	t.Run("missing port", func(t *testing.T) {
		cfg := valid()
		cfg.Server.Port = ""
		assert.Error(t, cfg.Validate())
	})

	t.Run("unknown backend", func(t *testing.T) {
		cfg := valid()
		cfg.Store.Backend = "postgres"
		assert.Error(t, cfg.Validate())
	})

	t.Run("redis without addr", func(t *testing.T) {
		cfg := valid()
		cfg.Store.Backend = StoreBackendRedis
		assert.Error(t, cfg.Validate())
	})

	t.Run("negative rate", func(t *testing.T) {
		cfg := valid()
		cfg.RateLimit.RPS = -1
		assert.Error(t, cfg.Validate())
	})

	t.Run("rate without burst", func(t *testing.T) {
		cfg := valid()
		cfg.RateLimit.RPS = 5
		cfg.RateLimit.Burst = 0
		assert.Error(t, cfg.Validate())
	})
}
