// Package config handles the rosterctl configuration file. The roster
// engine itself takes no configuration; everything here shapes the CLI
// surface (output rendering and logging).
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Output formats supported by the CLI.
const (
	FormatTable = "table"
	FormatJSON  = "json"
)

// Config represents the rosterctl configuration
type Config struct {
	Output  Output  `yaml:"output"`
	Logging Logging `yaml:"logging"`
}

// Output contains output rendering configuration
type Output struct {
	Format string `yaml:"format"`
	Quiet  bool   `yaml:"quiet"`
}

// Logging contains logging configuration
type Logging struct {
	Level string `yaml:"level"`
}

// DefaultConfig returns a default configuration
func DefaultConfig() *Config {
	return &Config{
		Output: Output{
			Format: FormatTable,
			Quiet:  false,
		},
		Logging: Logging{
			Level: "info",
		},
	}
}

// Validate checks that the configuration values are usable.
func (c *Config) Validate() error {
	if c.Output.Format != FormatTable && c.Output.Format != FormatJSON {
		return fmt.Errorf("invalid output format: %s", c.Output.Format)
	}
	return nil
}

// LoadConfig loads configuration from the specified path. A missing
// file is not an error; defaults are returned instead so the CLI works
// without any setup.
func LoadConfig(configPath string) (*Config, error) {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return DefaultConfig(), nil
	}

	if !filepath.IsAbs(configPath) {
		absPath, err := filepath.Abs(configPath)
		if err != nil {
			return nil, fmt.Errorf("invalid config path: %w", err)
		}
		configPath = absPath
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// SaveConfig saves the configuration to the specified path
func SaveConfig(config *Config, configPath string) error {
	configDir := filepath.Dir(configPath)
	if err := os.MkdirAll(configDir, 0750); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}
