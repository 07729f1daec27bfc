// Package config loads process settings from the environment.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	OWMAPIKey       string        `env:"OWM_API_KEY"`
	WeatherCity     string        `env:"WEATHER_LOCATION_CITY" envDefault:"Kuala Lumpur"`
	WeatherCountry  string        `env:"WEATHER_LOCATION_COUNTRY" envDefault:"MY"`
	WeatherCacheTTL time.Duration `env:"WEATHER_CACHE_TTL" envDefault:"10m"`

	GeminiAPIKey string `env:"GEMINI_API_KEY"`
	GeminiModel  string `env:"GEMINI_MODEL_NAME" envDefault:"gemini-1.5-flash"`

	HTTPTimeout time.Duration `env:"STORMFRONT_HTTP_TIMEOUT" envDefault:"10s"`
	Seed        int64         `env:"STORMFRONT_SEED"`

	OTelEndpoint string `env:"STORMFRONT_OTEL_ENDPOINT"`
	OTelEnabled  bool   `env:"STORMFRONT_OTEL_ENABLED" envDefault:"true"`
}

// Load reads Config from the environment.
func Load() (Config, error) {
	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// ParseEnv fills target from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

func (c Config) Validate() error {
	if strings.TrimSpace(c.WeatherCity) == "" {
		return fmt.Errorf("weather location city is required")
	}
	if c.WeatherCacheTTL <= 0 {
		return fmt.Errorf("weather cache ttl must be positive, got %s", c.WeatherCacheTTL)
	}
	if c.HTTPTimeout <= 0 {
		return fmt.Errorf("http timeout must be positive, got %s", c.HTTPTimeout)
	}
	return nil
}

// Tracing reports whether spans should be exported.
func (c Config) Tracing() bool {
	return c.OTelEnabled && strings.TrimSpace(c.OTelEndpoint) != ""
}
