// Package config loads game configuration from the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/samdwyer/guesstheflag/internal/quiz"
)

// Config holds game configuration options.
type Config struct {
	// Seed for random number generation. A seed of 0 means a time-based seed.
	Seed int64 `env:"GUESSTHEFLAG_SEED" envDefault:"0"`
	// EndRule is "rounds" (8 taps of any kind) or "correct" (8 correct taps).
	EndRule quiz.EndRule `env:"GUESSTHEFLAG_END_RULE" envDefault:"rounds"`
	// ShowLabels draws each flag's accessibility description under it.
	ShowLabels bool `env:"GUESSTHEFLAG_SHOW_LABELS" envDefault:"false"`

	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
	// LogFile receives the logs; the terminal is owned by the game screen.
	// Empty disables logging.
	LogFile string `env:"LOG_FILE" envDefault:"guesstheflag.log"`

	Telemetry Telemetry
}

// Telemetry configures OTLP trace export.
type Telemetry struct {
	Enabled  bool   `env:"TELEMETRY_ENABLED" envDefault:"false"`
	Endpoint string `env:"OTEL_EXPORTER_OTLP_TRACES_ENDPOINT" envDefault:"https://api.honeycomb.io/v1/traces"`
	APIKey   string `env:"HONEYCOMB_API_KEY"`
	Dataset  string `env:"HONEYCOMB_DATASET" envDefault:"guesstheflag"`
}

// Headers returns the exporter headers for the configured Honeycomb key.
func (t Telemetry) Headers() map[string]string {
	if t.APIKey == "" {
		return nil
	}
	return map[string]string{
		"x-honeycomb-team":    t.APIKey,
		"x-honeycomb-dataset": t.Dataset,
	}
}

// Load reads the given .env files, if present, then parses the environment.
// With no files it looks for .env in the working directory.
func Load(files ...string) (Config, error) {
	if err := godotenv.Load(files...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load env file: %w", err)
	}
	return Parse()
}

// Parse loads configuration from environment variables only.
func Parse() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
