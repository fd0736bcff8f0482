package config

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, StoreDriverPostgres, cfg.StoreDriver)
	assert.Equal(t, "localhost", cfg.DB.Host)
	assert.Equal(t, "5432", cfg.DB.Port)
	assert.Equal(t, 25, cfg.DB.MaxOpenConns)
	assert.Equal(t, 5*time.Minute, cfg.DB.ConnMaxLifetime)
	assert.Equal(t, "localhost:6379", cfg.Redis.Addr())
	assert.Equal(t, 30*time.Second, cfg.Redis.CacheTTL)
	assert.Equal(t, ":8080", cfg.HTTP.Addr)
	assert.Equal(t, []string{"*"}, cfg.HTTP.AllowedOrigins)
	assert.True(t, decimal.NewFromInt(59).Equal(cfg.Taxes))
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("STORE_DRIVER", "memory")
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("DB_NAME", "bookings")
	t.Setenv("REDIS_ENABLED", "false")
	t.Setenv("HTTP_CORS_ALLOWED_ORIGINS", "https://a.example,https://b.example")
	t.Setenv("TAXES", "12.5")
	t.Setenv("LOG_FORMAT", "json")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, StoreDriverMemory, cfg.StoreDriver)
	assert.False(t, cfg.Redis.Enabled)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.HTTP.AllowedOrigins)
	assert.True(t, decimal.RequireFromString("12.5").Equal(cfg.Taxes))

	db := cfg.Database()
	assert.Equal(t, "db.internal", db.Host)
	assert.Equal(t, "bookings", db.DBName)
}

func TestLoad_RejectsUnknownDriver(t *testing.T) {
	t.Setenv("STORE_DRIVER", "sqlite")

	_, err := Load()
	assert.ErrorContains(t, err, "STORE_DRIVER")
}

func TestCacheEnabled(t *testing.T) {
	tests := []struct {
		driver  string
		enabled bool
		want    bool
	}{
		{StoreDriverPostgres, true, true},
		{StoreDriverPostgres, false, false},
		{StoreDriverMemory, true, false},
		{StoreDriverMemory, false, false},
	}

	for _, tt := range tests {
		cfg := Config{StoreDriver: tt.driver, Redis: Redis{Enabled: tt.enabled}}
		assert.Equal(t, tt.want, cfg.CacheEnabled(), "%s redis=%v", tt.driver, tt.enabled)
	}
}

func TestLoad_MemoryDriverSkipsRedisByDefault(t *testing.T) {
	t.Setenv("STORE_DRIVER", "memory")

	cfg, err := Load()
	require.NoError(t, err)

	assert.True(t, cfg.Redis.Enabled)
	assert.False(t, cfg.CacheEnabled())
}
