// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config represents the application configuration that can be loaded from a
// JSON file. All fields are optional; missing values use defaults or must be
// provided via CLI flags.
type Config struct {
	// Connections
	DatabaseURL string `json:"database_url,omitempty"` // PostgreSQL connection URL
	APIKey      string `json:"api_key,omitempty"`      // Gemini API key

	// Server
	Port int `json:"port,omitempty"` // HTTP listen port

	// Pipeline
	BatchLimit int    `json:"batch_limit,omitempty"` // Max concurrent interview pipelines
	ModelTier  string `json:"model_tier,omitempty"`  // Generation model tier (lite/standard/advanced)

	// Behavior
	Verbose bool `json:"verbose,omitempty"` // Print detailed debug information
}

// Default values applied by MergeWithDefaults
const (
	DefaultPort       = 8080
	DefaultBatchLimit = 4
	DefaultModelTier  = "standard"
)

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
// Note: This doesn't check for required fields since those are handled
// by CLI flag validation after merging.
func (c *Config) Validate() error {
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' must be between 0 and 65535")
	}
	if c.BatchLimit < 0 {
		return fmt.Errorf("config error: 'batch_limit' must be non-negative")
	}

	switch c.ModelTier {
	case "", "lite", "standard", "advanced":
	default:
		return fmt.Errorf("config error: unknown 'model_tier': %s", c.ModelTier)
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from
// defaults, then from the built-in defaults. This is used to apply config
// file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	// String fields: use default if empty
	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}
	if result.APIKey == "" {
		result.APIKey = defaults.APIKey
	}
	if result.ModelTier == "" {
		result.ModelTier = defaults.ModelTier
	}
	if result.ModelTier == "" {
		result.ModelTier = DefaultModelTier
	}

	// Int fields: use default if zero
	if result.Port == 0 {
		result.Port = defaults.Port
	}
	if result.Port == 0 {
		result.Port = DefaultPort
	}
	if result.BatchLimit == 0 {
		result.BatchLimit = defaults.BatchLimit
	}
	if result.BatchLimit == 0 {
		result.BatchLimit = DefaultBatchLimit
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}
