// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jonathan/resume-schema/internal/primitives"
)

// Config represents the CLI configuration that can be loaded from a JSON
// file. All fields are optional; missing values use defaults or must be
// provided via CLI flags.
type Config struct {
	// Paths
	Schema string `json:"schema,omitempty"` // Path to the resume JSON Schema file

	// Behavior
	Locale  string `json:"locale,omitempty"`  // Default locale for the transform stage
	Verbose bool   `json:"verbose,omitempty"` // Print detailed validation reports

	// Server
	Port int `json:"port,omitempty"` // HTTP API port
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' must be a valid TCP port")
	}

	if c.Locale != "" {
		if v := primitives.LocaleLanguageOption.Check("locale", c.Locale); v != nil {
			return fmt.Errorf("config error: %s", v.Message)
		}
	}

	if c.Schema != "" {
		if _, err := os.Stat(c.Schema); os.IsNotExist(err) {
			return fmt.Errorf("config error: schema file not found: %s", c.Schema)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from
// defaults. This is used to apply config file values as defaults for CLI
// flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.Schema == "" {
		result.Schema = defaults.Schema
	}
	if result.Locale == "" {
		result.Locale = defaults.Locale
	}
	if result.Port == 0 {
		result.Port = defaults.Port
	}
	if !result.Verbose {
		result.Verbose = defaults.Verbose
	}

	return result
}
