// Package config provides configuration loading and validation for the CLI
// and the HTTP server.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Config represents the application configuration that can be loaded from a
// JSON file. All fields are optional; missing values use defaults or must be
// provided via CLI flags.
type Config struct {
	// Server
	Port            int `json:"port,omitempty"`              // HTTP listen port
	ShutdownTimeout int `json:"shutdown_timeout,omitempty"`  // Graceful shutdown timeout in seconds
	RateLimitRPM    int `json:"rate_limit_rpm,omitempty"`    // Requests per minute per client (0 disables)
	RateLimitBurst  int `json:"rate_limit_burst,omitempty"`  // Burst allowance per client

	// Storage
	DatabaseURL string `json:"database_url,omitempty"` // PostgreSQL connection URL (empty disables persistence)

	// Grammar correction
	GrammarEnabled  bool   `json:"grammar_enabled,omitempty"`  // Run the improved draft through a grammar API
	GrammarAPIURL   string `json:"grammar_api_url,omitempty"`  // LanguageTool-compatible endpoint
	GrammarLanguage string `json:"grammar_language,omitempty"` // Check language, e.g. "en-US"

	// Behavior
	Verbose bool `json:"verbose,omitempty"` // Print detailed scan output
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

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
		return fmt.Errorf("config error: 'port' must be between 0 and 65535")
	}
	if c.ShutdownTimeout < 0 {
		return fmt.Errorf("config error: 'shutdown_timeout' must be non-negative")
	}
	if c.RateLimitRPM < 0 {
		return fmt.Errorf("config error: 'rate_limit_rpm' must be non-negative")
	}
	if c.RateLimitBurst < 0 {
		return fmt.Errorf("config error: 'rate_limit_burst' must be non-negative")
	}
	return nil
}

// MergeWithDefaults returns a new Config with unset fields filled from
// defaults. This is used to apply config file values as defaults for CLI
// flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.Port == 0 {
		result.Port = defaults.Port
	}
	if result.ShutdownTimeout == 0 {
		result.ShutdownTimeout = defaults.ShutdownTimeout
	}
	if result.RateLimitRPM == 0 {
		result.RateLimitRPM = defaults.RateLimitRPM
	}
	if result.RateLimitBurst == 0 {
		result.RateLimitBurst = defaults.RateLimitBurst
	}
	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}
	if result.GrammarAPIURL == "" {
		result.GrammarAPIURL = defaults.GrammarAPIURL
	}
	if result.GrammarLanguage == "" {
		result.GrammarLanguage = defaults.GrammarLanguage
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}

// ShutdownTimeoutDuration returns the graceful shutdown timeout, defaulting
// to 10 seconds when unset.
func (c *Config) ShutdownTimeoutDuration() time.Duration {
	if c.ShutdownTimeout <= 0 {
		return 10 * time.Second
	}
	return time.Duration(c.ShutdownTimeout) * time.Second
}
