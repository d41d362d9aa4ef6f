// Package config loads the calculator's settings from the environment.
package config

import (
	"errors"
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

// Prefix is prepended to every environment variable name.
const Prefix = "MATCALC"

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config contains all configuration parameters for the application.
type Config struct {
	Title     string `envconfig:"TITLE" default:"Matrix Calculator"`
	Width     int    `envconfig:"WIDTH" default:"400"`
	Height    int    `envconfig:"HEIGHT" default:"500"`
	Resizable bool   `envconfig:"RESIZABLE" default:"false"`
	Rows      int    `envconfig:"ROWS" default:"2"`
	Cols      int    `envconfig:"COLS" default:"2"`
	Style     Style  `envconfig:"STYLE"`
}

// Load reads MATCALC_* variables, applies defaults and validates the result.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := envconfig.Process(Prefix, cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks sizes are positive and every style color parses.
func (c *Config) Validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return fmt.Errorf("window size %dx%d: %w", c.Width, c.Height, ErrInvalidConfig)
	case c.Rows <= 0 || c.Cols <= 0:
		return fmt.Errorf("grid size %dx%d: %w", c.Rows, c.Cols, ErrInvalidConfig)
	}

	return c.Style.Validate()
}

// Usage prints the recognised environment variables to stdout.
func Usage() error {
	return envconfig.Usage(Prefix, &Config{})
}
