// Package config holds the batch driver configuration.
//
// Only the driver is configurable: which files are read, how many are
// processed in parallel, result order, timing and logging. The estimator's
// thresholds are fixed.
package config

import (
	"errors"
	"fmt"
	"os"
	"runtime"
	"strings"

	"gopkg.in/yaml.v3"
)

// Result orders.
const (
	OrderDescending = "desc"
	OrderAscending  = "asc"
)

// Config represents the driver configuration file.
type Config struct {
	Extension string    `yaml:"extension"` // file extension without dot
	Workers   int       `yaml:"workers"`   // files estimated in parallel, 0 = number of CPUs
	Order     string    `yaml:"order"`     // desc or asc by frequency
	Timing    bool      `yaml:"timing"`    // print elapsed time
	Log       LogConfig `yaml:"log"`
}

// LogConfig contains logging settings.
type LogConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // console or json
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Extension: "csv",
		Workers:   runtime.NumCPU(),
		Order:     OrderDescending,
		Log: LogConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// Load reads a YAML configuration file. Fields missing from the file keep
// their default values.
func Load(filename string) (Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config file: %w", err)
	}
	cfg.Normalize()
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config file %s: %w", filename, err)
	}
	return cfg, nil
}

// Normalize canonicalizes values that may be spelled loosely, e.g. ".CSV"
// or "DESC". Workers 0 becomes the number of CPUs.
func (c *Config) Normalize() {
	c.Extension = strings.TrimPrefix(strings.TrimSpace(c.Extension), ".")
	c.Order = strings.ToLower(strings.TrimSpace(c.Order))
	if c.Workers == 0 {
		c.Workers = runtime.NumCPU()
	}
}

// Validate checks the configuration for invalid values.
func (c Config) Validate() error {
	var errs []error
	if c.Extension == "" {
		errs = append(errs, errors.New("extension must not be empty"))
	}
	if c.Workers < 1 {
		errs = append(errs, fmt.Errorf("workers must be >= 1: %d", c.Workers))
	}
	if c.Order != OrderDescending && c.Order != OrderAscending {
		errs = append(errs, fmt.Errorf("order must be %q or %q: %q", OrderDescending, OrderAscending, c.Order))
	}
	return errors.Join(errs...)
}
