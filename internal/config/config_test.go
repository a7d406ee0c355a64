package config

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := load(viper.New())
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Empty(t, cfg.DBDSN)
	assert.True(t, cfg.AutoMigrate)
	assert.False(t, cfg.IsProduction)
	assert.Equal(t, 366, cfg.MaxRangeDays)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("APP_ENV", "prod")
	t.Setenv("JWT_SECRET", "0123456789abcdef0123")
	t.Setenv("PROD_ORIGINS", "https://a.example.com, https://b.example.com")
	t.Setenv("MAX_RANGE_DAYS", "90")
	t.Setenv("AUTO_MIGRATE", "false")
	t.Setenv("RATE_LIMIT", "10-S")

	cfg, err := load(viper.New())
	require.NoError(t, err)

	assert.True(t, cfg.IsProduction)
	assert.Equal(t, []string{"https://a.example.com", "https://b.example.com"}, cfg.ProdOrigins)
	assert.Equal(t, 90, cfg.MaxRangeDays)
	assert.False(t, cfg.AutoMigrate)
	assert.Equal(t, "10-S", cfg.RateLimit)
}

func TestValidate(t *testing.T) {
	t.Run("short secret", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "short")
		_, err := load(viper.New())
		assert.ErrorContains(t, err, "JWT_SECRET")
	})

	t.Run("production requires secret", func(t *testing.T) {
		t.Setenv("APP_ENV", "prod")
		_, err := load(viper.New())
		assert.ErrorContains(t, err, "JWT_SECRET is required")
	})

	t.Run("non-positive range", func(t *testing.T) {
		t.Setenv("MAX_RANGE_DAYS", "0")
		_, err := load(viper.New())
		assert.ErrorContains(t, err, "MAX_RANGE_DAYS")
	})
}
