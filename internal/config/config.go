// Package config loads dsk defaults from the environment.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds environment-provided defaults. Command-line flags override
// every field.
type Config struct {
	// Strength is the default entropy size in bits; 0 means ask interactively.
	Strength int    `env:"DSK_STRENGTH" envDefault:"0"`
	Format   string `env:"DSK_FORMAT" envDefault:"human"`
	Pause    bool   `env:"DSK_PAUSE" envDefault:"false"`
	Verbose  bool   `env:"DSK_VERBOSE" envDefault:"false"`
}

// ParseEnv loads configuration from environment variables into target.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Load returns the Config read from the environment.
func Load() (Config, error) {
	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
