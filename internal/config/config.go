// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	// Paths
	ProfileDir string `json:"profile_dir,omitempty"` // Directory holding the profile's stored values
	OutDir     string `json:"out_dir,omitempty"`     // Directory export artifacts are written to

	// Profile
	Profile  string `json:"profile,omitempty"`  // Profile namespace, defaults to "default"
	Template string `json:"template,omitempty"` // Visual skin name (Classic, Modern, Onyx, Pikachu)

	// Behavior
	APIKey  string `json:"api_key,omitempty"` // Gemini API key
	Model   string `json:"model,omitempty"`   // Gemini model name
	Port    int    `json:"port,omitempty"`    // Preview server port
	Verbose bool   `json:"verbose,omitempty"` // Print detailed debug information
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
// Note: This doesn't check for required fields since those are handled
// by CLI flag validation after merging.
func (c *Config) Validate() error {
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' must be between 0 and 65535")
	}

	if c.ProfileDir != "" {
		if info, err := os.Stat(c.ProfileDir); err == nil && !info.IsDir() {
			return fmt.Errorf("config error: profile_dir is not a directory: %s", c.ProfileDir)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	// String fields: use default if empty
	if result.ProfileDir == "" {
		result.ProfileDir = defaults.ProfileDir
	}
	if result.OutDir == "" {
		result.OutDir = defaults.OutDir
	}
	if result.Profile == "" {
		result.Profile = defaults.Profile
	}
	if result.Template == "" {
		result.Template = defaults.Template
	}
	if result.APIKey == "" {
		result.APIKey = defaults.APIKey
	}
	if result.Model == "" {
		result.Model = defaults.Model
	}

	// Int fields: use default if zero
	if result.Port == 0 {
		result.Port = defaults.Port
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}

// DefaultProfileDir returns the conventional on-disk location for
// profile data, honoring RESUME_STUDIO_HOME when set.
func DefaultProfileDir() string {
	if dir := os.Getenv("RESUME_STUDIO_HOME"); dir != "" {
		return dir
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".resume-studio"
	}
	return filepath.Join(home, ".resume-studio")
}
