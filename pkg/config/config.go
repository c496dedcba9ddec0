// Package config handles estimation run configuration
package config

import (
	"errors"
	"fmt"
)

// Config holds all run settings
type Config struct {
	Estimate EstimateConfig `yaml:"estimate"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// EstimateConfig selects the case and how to estimate it
type EstimateConfig struct {
	Case     string             `yaml:"case"`     // Registered case name
	Params   map[string]float64 `yaml:"params"`   // Overrides of the case's default parameters
	Source   int                `yaml:"source"`   // Emitting surface id, -1 for the case default
	Samples  int                `yaml:"samples"`  // Rays emitted from the source
	Parallel bool               `yaml:"parallel"` // Use the worker pool estimator
	Workers  int                `yaml:"workers"`  // 0 = one per CPU
	Seed     int64              `yaml:"seed"`
}

// LoggingConfig holds logging settings
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values
func Default() *Config {
	return &Config{
		Estimate: EstimateConfig{
			Case:     "sphere-in-cylinder",
			Source:   -1,
			Samples:  1_000_000,
			Parallel: true,
			Workers:  0,
			Seed:     42,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// Validate checks value ranges that do not depend on the selected case
func (c *Config) Validate() error {
	var errs []error
	if c.Estimate.Case == "" {
		errs = append(errs, errors.New("estimate.case must be set"))
	}
	if c.Estimate.Samples <= 0 {
		errs = append(errs, fmt.Errorf("estimate.samples must be positive, got %d", c.Estimate.Samples))
	}
	if c.Estimate.Workers < 0 {
		errs = append(errs, fmt.Errorf("estimate.workers must not be negative, got %d", c.Estimate.Workers))
	}
	if c.Estimate.Source < -1 {
		errs = append(errs, fmt.Errorf("estimate.source must be -1 or a surface id, got %d", c.Estimate.Source))
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, fmt.Errorf("logging.level must be debug, info, warn or error, got %q", c.Logging.Level))
	}
	return errors.Join(errs...)
}
