// Package config loads settings from environment variables. Everything has
// a working default; the app runs fully offline with no configuration.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	// DBPath overrides the default database location (~/.rainythoughts.db).
	DBPath string `env:"RT_DB_PATH"`

	// OpenRouter credentials for generated taunts and mentor letters.
	// Leave the key empty to use the built-in static message pools.
	OpenRouterAPIKey string        `env:"RT_OPENROUTER_API_KEY"`
	OpenRouterModel  string        `env:"RT_OPENROUTER_MODEL" envDefault:"anthropic/claude-3.5-haiku"`
	RequestTimeout   time.Duration `env:"RT_REQUEST_TIMEOUT" envDefault:"15s"`

	// LogPath overrides where the debug log is written. Empty disables
	// file logging entirely.
	LogPath string `env:"RT_LOG_PATH"`
}

// Load parses the environment into a Config.
func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	return &cfg, nil
}
