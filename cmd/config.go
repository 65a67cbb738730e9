package cmd

import (
	"fmt"
	"os"

	"github.com/etnz/inventory"
	"github.com/etnz/inventory/logging"
	"gopkg.in/yaml.v3"
)

// Config holds the application settings read from the YAML configuration file.
type Config struct {
	File         string `yaml:"file"`          // path to the inventory JSON file
	LowThreshold int64  `yaml:"low_threshold"` // stock level below which an item is low
	LogLevel     string `yaml:"log_level"`     // debug, info, warn or error
}

// DefaultConfig returns the settings used when no configuration file is given.
func DefaultConfig() *Config {
	return &Config{
		File:         inventory.DefaultFile,
		LowThreshold: inventory.DefaultLowThreshold,
		LogLevel:     "info",
	}
}

// LoadConfig reads and validates the configuration file at path. An empty
// path returns the defaults. Settings absent from the file keep their
// default value.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read config file %q: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("could not parse config file %q: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config file %q: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the configuration for consistency.
func (c *Config) Validate() error {
	if c.File == "" {
		return fmt.Errorf("file must not be empty")
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}
