package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	HttpPort string `env:"PORT" envDefault:"3001"`
	AppEnv   string `env:"APP_ENV" envDefault:"dev"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	// cors
	AllowOrigins string `env:"ALLOWORIGINS" envDefault:"*"`

	// gemini
	GeminiAPIKey    string        `env:"GEMINI_API_KEY,required,notEmpty"`
	GeminiBaseURL   string        `env:"GEMINI_BASE_URL" envDefault:"https://generativelanguage.googleapis.com/v1beta"`
	GeminiModel     string        `env:"GEMINI_MODEL" envDefault:"gemini-2.5-flash-preview-05-20"`
	UpstreamTimeout time.Duration `env:"UPSTREAM_TIMEOUT" envDefault:"60s"`

	// others
	MaxFileSize     int           `env:"MAX_FILE_SIZE" envDefault:"52428800"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

func LoadConfig() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if cfg.MaxFileSize <= 0 {
		return nil, fmt.Errorf("MAX_FILE_SIZE must be positive, got %d", cfg.MaxFileSize)
	}
	return cfg, nil
}

func (c *Config) IsProd() bool {
	return c.AppEnv == "prod"
}
