// Package config provides application configuration management.
// Configuration is loaded from environment variables following 12-factor principles.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v10"
)

// Config holds all application configuration.
// All fields are populated from environment variables.
type Config struct {
	// Application settings
	AppEnv  string `env:"APP_ENV" envDefault:"development"`
	AppPort int    `env:"APP_PORT" envDefault:"8080"`

	// Database (PostgreSQL)
	DatabaseURL string `env:"DATABASE_URL,required"`

	// Cache (Redis)
	RedisURL string `env:"REDIS_URL,required"`

	// Logging
	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"json"`

	// Server timeouts
	ReadTimeout     time.Duration `env:"READ_TIMEOUT" envDefault:"30s"`
	WriteTimeout    time.Duration `env:"WRITE_TIMEOUT" envDefault:"60s"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"30s"`

	// OCR settings. The page segmentation mode is passed to Tesseract;
	// mode 6 assumes a single uniform block of text.
	OCRLanguages   string `env:"OCR_LANGUAGES" envDefault:"eng"`
	OCRPageSegMode int    `env:"OCR_PAGE_SEG_MODE" envDefault:"6"`

	// Upload limits
	MaxUploadBytes int64 `env:"MAX_UPLOAD_BYTES" envDefault:"33554432"` // 32MB per batch
	MaxBatchImages int   `env:"MAX_BATCH_IMAGES" envDefault:"50"`

	// Rate limiting
	RateLimitUploadEnabled bool `env:"RATE_LIMIT_UPLOAD_ENABLED" envDefault:"true"`
	RateLimitUploadRPS     int  `env:"RATE_LIMIT_UPLOAD_RPS" envDefault:"5"`
	RateLimitUploadBurst   int  `env:"RATE_LIMIT_UPLOAD_BURST" envDefault:"10"`
}

// IsDevelopment returns true if running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.AppEnv == "development"
}

// IsProduction returns true if running in production mode.
func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}

// GetOCRLanguages parses the comma-separated language list into a slice.
func (c *Config) GetOCRLanguages() []string {
	if c.OCRLanguages == "" {
		return nil
	}

	langs := strings.Split(c.OCRLanguages, ",")
	result := make([]string, 0, len(langs))

	for _, lang := range langs {
		trimmed := strings.TrimSpace(lang)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}

	return result
}

// Load parses environment variables and returns a Config.
// Returns an error if required variables are missing.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return cfg, nil
}
