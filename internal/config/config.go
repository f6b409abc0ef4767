// Package config loads the optional config.yaml from the toybox home
// directory. Missing file means defaults; flags override config values.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds all toybox configuration.
type Config struct {
	// Currency symbol used by the money toys.
	Currency string `yaml:"currency"`

	// Grading
	Grading GradingConfig `yaml:"grading"`

	// Logging
	Logging LoggingConfig `yaml:"logging"`
}

// GradingConfig tunes the pass/fail grader.
type GradingConfig struct {
	PassMark float64 `yaml:"pass_mark"`
}

// LoggingConfig controls the debug logger.
type LoggingConfig struct {
	Debug bool `yaml:"debug"`
}

// Default returns the baseline configuration.
func Default() Config {
	return Config{
		Currency: "$",
		Grading:  GradingConfig{PassMark: 50},
		Logging:  LoggingConfig{Debug: false},
	}
}

// Load reads <home>/config.yaml over the defaults. A missing file is fine.
func Load(home string) (Config, error) {
	cfg := Default()

	b, err := os.ReadFile(filepath.Join(home, "config.yaml"))
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config.yaml: %w", err)
	}
	if cfg.Currency == "" {
		cfg.Currency = "$"
	}
	if cfg.Grading.PassMark <= 0 || cfg.Grading.PassMark > 100 {
		return cfg, fmt.Errorf("config: pass_mark %.1f outside (0, 100]", cfg.Grading.PassMark)
	}
	return cfg, nil
}

// Save writes cfg to <home>/config.yaml.
func Save(home string, cfg Config) error {
	b, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(home, "config.yaml"), b, 0o600)
}
