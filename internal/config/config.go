// Package config loads runtime configuration for the indexlab CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/Chebil-Ilef/Indexation-Lab1/internal/analysis"
)

// Config holds all runtime settings. Fields map one-to-one onto the JSON
// config file; INDEXLAB_* environment variables override file values.
type Config struct {
	// Workers is the parallel build worker count. Zero selects GOMAXPROCS.
	Workers int `json:"workers"`

	// Analysis configures the text analysis pipeline.
	Analysis *analysis.Config `json:"analysis"`

	// MetricsAddr is the optional listen address for the Prometheus
	// endpoint. Empty disables the listener.
	MetricsAddr string `json:"metrics_addr"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `json:"log_level"`
}

// Default returns the configuration used when no file or overrides are
// present.
func Default() *Config {
	return &Config{
		Workers:     0,
		Analysis:    analysis.DefaultConfig(),
		MetricsAddr: "",
		LogLevel:    "info",
	}
}

// Load reads configuration from path, falling back to the INDEXLAB_CONFIG
// environment variable and then to defaults. Environment overrides are
// applied last.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path == "" {
		path = os.Getenv("INDEXLAB_CONFIG")
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		if err := json.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	if env := os.Getenv("INDEXLAB_WORKERS"); env != "" {
		n, err := strconv.Atoi(env)
		if err != nil {
			return nil, fmt.Errorf("INDEXLAB_WORKERS: %w", err)
		}
		cfg.Workers = n
	}
	if env := os.Getenv("INDEXLAB_METRICS_ADDR"); env != "" {
		cfg.MetricsAddr = env
	}
	if env := os.Getenv("INDEXLAB_LOG_LEVEL"); env != "" {
		cfg.LogLevel = env
	}
	if env := os.Getenv("INDEXLAB_LANGUAGE"); env != "" {
		cfg.Analysis.Language = env
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the configuration for inconsistencies.
func (c *Config) Validate() error {
	if c.Workers < 0 {
		return fmt.Errorf("workers must be >= 0, got %d", c.Workers)
	}
	if c.Analysis == nil {
		return fmt.Errorf("analysis config missing")
	}
	if err := c.Analysis.Validate(); err != nil {
		return err
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log level: %q", c.LogLevel)
	}
	return nil
}
