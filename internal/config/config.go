// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
)

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	// Server
	Port int `json:"port,omitempty"` // HTTP port for the editor API

	// Export
	ChromePath       string `json:"chrome_path,omitempty"`        // Path to the Chrome/Chromium binary used for PDF export
	ExportTimeoutSec int    `json:"export_timeout_sec,omitempty"` // PDF export timeout in seconds
	OutputDir        string `json:"output_dir,omitempty"`         // Directory for exported files

	// Document
	Document string `json:"document,omitempty"` // Path to a CV JSON file to load on startup
	Template string `json:"template,omitempty"` // Template id selected on startup

	// Behavior
	Verbose bool `json:"verbose,omitempty"` // Print detailed debug information
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

// FromEnv reads overrides from the environment. Values set in the
// environment win over the config file; main loads .env via godotenv
// before this runs.
func (c *Config) FromEnv() {
	if v := os.Getenv("CV_BUILDER_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			c.Port = port
		}
	}
	if v := os.Getenv("CV_BUILDER_CHROME_PATH"); v != "" {
		c.ChromePath = v
	}
	if v := os.Getenv("CV_BUILDER_EXPORT_TIMEOUT_SEC"); v != "" {
		if sec, err := strconv.Atoi(v); err == nil {
			c.ExportTimeoutSec = sec
		}
	}
	if v := os.Getenv("CV_BUILDER_OUTPUT_DIR"); v != "" {
		c.OutputDir = v
	}
	if v := os.Getenv("CV_BUILDER_DOCUMENT"); v != "" {
		c.Document = v
	}
	if v := os.Getenv("CV_BUILDER_TEMPLATE"); v != "" {
		c.Template = v
	}
	if v := os.Getenv("CV_BUILDER_VERBOSE"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c.Verbose = b
		}
	}
}

// Validate checks that the configuration has valid values.
// Note: This doesn't check for required fields since those are handled
// by CLI flag validation after merging.
func (c *Config) Validate() error {
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' must be between 0 and 65535")
	}
	if c.ExportTimeoutSec < 0 {
		return fmt.Errorf("config error: 'export_timeout_sec' must be non-negative")
	}

	// Validate file paths exist (if specified)
	if c.Document != "" {
		if _, err := os.Stat(c.Document); os.IsNotExist(err) {
			return fmt.Errorf("config error: document file not found: %s", c.Document)
		}
	}

	if c.ChromePath != "" {
		if _, err := os.Stat(c.ChromePath); os.IsNotExist(err) {
			return fmt.Errorf("config error: chrome binary not found: %s", c.ChromePath)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	// String fields: use default if empty
	if result.ChromePath == "" {
		result.ChromePath = defaults.ChromePath
	}
	if result.OutputDir == "" {
		result.OutputDir = defaults.OutputDir
	}
	if result.Document == "" {
		result.Document = defaults.Document
	}
	if result.Template == "" {
		result.Template = defaults.Template
	}

	// Int fields: use default if zero
	if result.Port == 0 {
		result.Port = defaults.Port
	}
	if result.ExportTimeoutSec == 0 {
		if defaults.ExportTimeoutSec > 0 {
			result.ExportTimeoutSec = defaults.ExportTimeoutSec
		} else {
			result.ExportTimeoutSec = 60 // Matches the print engine default
		}
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}
