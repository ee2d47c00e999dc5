// Package config provides configuration management for the backpack manager.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Default configuration values.
const (
	DefaultArrayCapacity   = 10
	DefaultLinkedNodeLimit = 0
	DefaultLogLevel        = "warn"
	DefaultLogOutput       = "stderr"
	DefaultMetricsEnabled  = true
)

// MaxArrayCapacity is the largest backpack the array store supports.
const MaxArrayCapacity = 50

// Environment variable names.
const (
	EnvConfigFile      = "BACKPACK_CONFIG"
	EnvArrayCapacity   = "BACKPACK_ARRAY_CAPACITY"
	EnvLinkedNodeLimit = "BACKPACK_LINKED_NODE_LIMIT"
	EnvLogLevel        = "BACKPACK_LOG_LEVEL"
	EnvLogOutput       = "BACKPACK_LOG_OUTPUT"
	EnvMetricsEnabled  = "BACKPACK_METRICS_ENABLED"
)

// Config holds the application configuration.
type Config struct {
	// Backpack settings.
	ArrayCapacity   int `yaml:"array_capacity"`
	LinkedNodeLimit int `yaml:"linked_node_limit"` // 0 = unlimited.

	// Logging settings. LogOutput is a zap output path: stderr, stdout or a file.
	LogLevel  string `yaml:"log_level"`
	LogOutput string `yaml:"log_output"`

	MetricsEnabled bool `yaml:"metrics_enabled"`
}

// Validation errors.
var (
	ErrInvalidArrayCapacity = errors.New("array capacity must be between 1 and 50")
	ErrInvalidNodeLimit     = errors.New("linked node limit cannot be negative")
	ErrInvalidLogLevel      = errors.New("log level must be one of: debug, info, warn, error")
	ErrEmptyLogOutput       = errors.New("log output cannot be empty")
)

// Default returns a Config populated with default values.
func Default() *Config {
	return &Config{
		ArrayCapacity:   DefaultArrayCapacity,
		LinkedNodeLimit: DefaultLinkedNodeLimit,
		LogLevel:        DefaultLogLevel,
		LogOutput:       DefaultLogOutput,
		MetricsEnabled:  DefaultMetricsEnabled,
	}
}

// Load reads configuration from an optional YAML file and then from
// environment variables. Environment variables have priority over the file,
// and the file over default values. An empty path falls back to
// BACKPACK_CONFIG; if that is unset too, no file is read.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path == "" {
		path = os.Getenv(EnvConfigFile)
	}

	if path != "" {
		if err := cfg.loadFromFile(path); err != nil {
			return nil, fmt.Errorf("loading config file: %w", err)
		}
	}

	if err := cfg.loadFromEnv(); err != nil {
		return nil, fmt.Errorf("loading config from environment: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

// loadFromFile overlays values from a YAML file. Unknown keys are rejected.
func (c *Config) loadFromFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("parsing %s: %w", path, err)
	}

	return nil
}

// loadFromEnv loads configuration values from environment variables.
func (c *Config) loadFromEnv() error {
	if err := c.loadBackpackEnv(); err != nil {
		return err
	}

	return c.loadLoggingEnv()
}

// loadBackpackEnv loads store-related environment variables.
func (c *Config) loadBackpackEnv() error {
	if val := os.Getenv(EnvArrayCapacity); val != "" {
		capacity, err := strconv.Atoi(val)
		if err != nil {
			return fmt.Errorf("parsing %s: %w", EnvArrayCapacity, err)
		}
		c.ArrayCapacity = capacity
	}

	if val := os.Getenv(EnvLinkedNodeLimit); val != "" {
		limit, err := strconv.Atoi(val)
		if err != nil {
			return fmt.Errorf("parsing %s: %w", EnvLinkedNodeLimit, err)
		}
		c.LinkedNodeLimit = limit
	}

	return nil
}

// loadLoggingEnv loads logging and metrics environment variables.
func (c *Config) loadLoggingEnv() error {
	if val := os.Getenv(EnvLogLevel); val != "" {
		c.LogLevel = val
	}

	if val := os.Getenv(EnvLogOutput); val != "" {
		c.LogOutput = val
	}

	if val := os.Getenv(EnvMetricsEnabled); val != "" {
		enabled, err := strconv.ParseBool(val)
		if err != nil {
			return fmt.Errorf("parsing %s: %w", EnvMetricsEnabled, err)
		}
		c.MetricsEnabled = enabled
	}

	return nil
}

// Validate checks if the configuration values are valid.
func (c *Config) Validate() error {
	if c.ArrayCapacity < 1 || c.ArrayCapacity > MaxArrayCapacity {
		return ErrInvalidArrayCapacity
	}

	if c.LinkedNodeLimit < 0 {
		return ErrInvalidNodeLimit
	}

	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLogLevels[c.LogLevel] {
		return ErrInvalidLogLevel
	}

	if c.LogOutput == "" {
		return ErrEmptyLogOutput
	}

	return nil
}
