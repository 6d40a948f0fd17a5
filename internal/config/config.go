// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/go-playground/validator/v10"
)

// envPrefix namespaces the environment variables the CLI reads.
const envPrefix = "RESUME_FILLER_"

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	ListJoin   string `json:"list_join,omitempty"`                          // Delimiter for joining list values into one placeholder
	SchemaPath string `json:"schema,omitempty" validate:"omitempty,file"`   // Path to the résumé JSON Schema
	Output     string `json:"output,omitempty"`                             // Default output path for filled documents
	Verbose    bool   `json:"verbose,omitempty"`                            // Print detailed substitution information
	Hyperlinks *bool  `json:"hyperlinks,omitempty"`                         // Render link placeholders as real hyperlinks
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		ListJoin: ", ",
	}
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

// ApplyEnv overlays RESUME_FILLER_* environment variables on top of c.
// Set variables always win over file values.
func (c *Config) ApplyEnv() {
	if v, ok := os.LookupEnv(envPrefix + "LIST_JOIN"); ok {
		c.ListJoin = v
	}
	if v, ok := os.LookupEnv(envPrefix + "SCHEMA"); ok {
		c.SchemaPath = v
	}
	if v, ok := os.LookupEnv(envPrefix + "OUTPUT"); ok {
		c.Output = v
	}
	if v, ok := os.LookupEnv(envPrefix + "VERBOSE"); ok {
		if b, err := strconv.ParseBool(v); err == nil {
			c.Verbose = b
		}
	}
	if v, ok := os.LookupEnv(envPrefix + "HYPERLINKS"); ok {
		if b, err := strconv.ParseBool(v); err == nil {
			c.Hyperlinks = &b
		}
	}
}

// Validate checks that the configuration has valid values.
// Note: This doesn't check for required fields since those are handled
// by CLI flag validation after merging.
func (c *Config) Validate() error {
	err := validator.New().Struct(c)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) {
		for _, fieldErr := range fieldErrs {
			if fieldErr.Field() == "SchemaPath" {
				return fmt.Errorf("config error: schema file not found: %s", c.SchemaPath)
			}
		}
	}
	return fmt.Errorf("config error: %w", err)
}

// MergeWithDefaults returns a new Config with unset fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	// String fields: use default if empty
	if result.ListJoin == "" {
		result.ListJoin = defaults.ListJoin
	}
	if result.SchemaPath == "" {
		result.SchemaPath = defaults.SchemaPath
	}
	if result.Output == "" {
		result.Output = defaults.Output
	}

	if result.Hyperlinks == nil {
		result.Hyperlinks = defaults.Hyperlinks
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}

// HyperlinksEnabled reports the effective hyperlink setting; unset means on.
func (c *Config) HyperlinksEnabled() bool {
	return c.Hyperlinks == nil || *c.Hyperlinks
}
