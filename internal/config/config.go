package config

import (
	"fmt"
	"log"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const PROD_STRING = "prod"

// Config holds all application configuration loaded from environment.
type Config struct {
	IsProduction bool
	ProdOrigins  []string
	HTTPAddr     string

	// DBDSN selects the Postgres backend; when empty the in-memory store is used.
	DBDSN       string
	AutoMigrate bool

	// JWTSecret enables bearer-token authentication on the API when set.
	JWTSecret string

	LogLevel  string
	LogFormat string

	// RateLimit uses the ulule/limiter formatted rate, e.g. "100-M". Empty disables it.
	RateLimit string

	// MaxRangeDays bounds schedule and report windows.
	MaxRangeDays int
}

// Load loads configuration from .env (optional) and environment variables.
func Load() (*Config, error) {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Printf("failed to load .env file: %v", err)
	}
	return load(viper.New())
}

func load(v *viper.Viper) (*Config, error) {
	v.SetDefault("APP_ENV", "dev")
	v.SetDefault("HTTP_ADDR", ":8080")
	v.SetDefault("DB_DSN", "")
	v.SetDefault("AUTO_MIGRATE", true)
	v.SetDefault("JWT_SECRET", "")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "text")
	v.SetDefault("PROD_ORIGINS", "")
	v.SetDefault("RATE_LIMIT", "")
	v.SetDefault("MAX_RANGE_DAYS", 366)
	v.AutomaticEnv()

	cfg := &Config{
		IsProduction: v.GetString("APP_ENV") == PROD_STRING,
		HTTPAddr:     v.GetString("HTTP_ADDR"),
		DBDSN:        v.GetString("DB_DSN"),
		AutoMigrate:  v.GetBool("AUTO_MIGRATE"),
		JWTSecret:    v.GetString("JWT_SECRET"),
		LogLevel:     v.GetString("LOG_LEVEL"),
		LogFormat:    v.GetString("LOG_FORMAT"),
		RateLimit:    v.GetString("RATE_LIMIT"),
		MaxRangeDays: v.GetInt("MAX_RANGE_DAYS"),
	}

	for _, o := range strings.Split(v.GetString("PROD_ORIGINS"), ",") {
		if o = strings.TrimSpace(o); o != "" {
			cfg.ProdOrigins = append(cfg.ProdOrigins, o)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks settings that would otherwise fail later at runtime.
func (c *Config) Validate() error {
	if c.HTTPAddr == "" {
		return fmt.Errorf("HTTP_ADDR is required")
	}
	if c.MaxRangeDays < 1 {
		return fmt.Errorf("MAX_RANGE_DAYS must be positive, got %d", c.MaxRangeDays)
	}
	if c.JWTSecret != "" && len(c.JWTSecret) < 16 {
		return fmt.Errorf("JWT_SECRET must be at least 16 characters")
	}
	if c.IsProduction && c.JWTSecret == "" {
		return fmt.Errorf("JWT_SECRET is required when APP_ENV=%s", PROD_STRING)
	}
	return nil
}
