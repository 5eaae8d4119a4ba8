// Package config loads the tidy configuration file.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/wizzomafizzo/tidy/internal/category"
)

// Config is the full tidy configuration.
type Config struct {
	// Source pins a default source directory, used when no positional
	// argument is given. Empty means the user's download directory.
	Source string `yaml:"source,omitempty"`

	// Categories maps category folder names to extension lists. Entries
	// are merged over the built-in table; listing an extension here
	// reassigns it from its default category.
	Categories map[string][]string `yaml:"categories,omitempty"`

	// Fallback overrides the category for unmatched extensions.
	Fallback string `yaml:"fallback,omitempty"`

	Logging LoggingConfig `yaml:"logging,omitempty"`
	History HistoryConfig `yaml:"history,omitempty"`
}

// LoggingConfig controls the per-run log file.
type LoggingConfig struct {
	// Level is the minimum record level: debug, info or error.
	Level string `yaml:"level,omitempty"`
	// MaxSize enables rotation of the log file at the given size in MB.
	// Zero keeps a single append-only file.
	MaxSize    int `yaml:"max_size,omitempty"`
	MaxBackups int `yaml:"max_backups,omitempty"`
	MaxAge     int `yaml:"max_age,omitempty"`
}

// HistoryConfig controls the sqlite move journal.
type HistoryConfig struct {
	Enabled *bool `yaml:"enabled,omitempty"`
}

// HistoryEnabled reports whether the move journal should be written.
// Unset means enabled.
func (c *Config) HistoryEnabled() bool {
	return c.History.Enabled == nil || *c.History.Enabled
}

// DefaultConfig returns the default tidy configuration.
func DefaultConfig() *Config {
	return &Config{
		Categories: category.DefaultTable(),
		Fallback:   category.Fallback,
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// DefaultConfigYAML returns the default configuration as YAML bytes.
func DefaultConfigYAML() ([]byte, error) {
	data, err := yaml.Marshal(DefaultConfig())
	if err != nil {
		return nil, fmt.Errorf("failed to marshal default config to YAML: %w", err)
	}
	return data, nil
}

// Load reads the config file at path and merges it over the defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path comes from the user
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	return LoadFromYAML(data)
}

// LoadOrDefault behaves like Load, but a missing file yields the default
// configuration instead of an error.
func LoadOrDefault(path string) (*Config, error) {
	config, err := Load(path)
	if err != nil && errors.Is(err, os.ErrNotExist) {
		return DefaultConfig(), nil
	}
	return config, err
}

// LoadFromYAML loads config from YAML bytes, merged over the defaults.
func LoadFromYAML(data []byte) (*Config, error) {
	config := DefaultConfig()

	var overlay Config
	if err := yaml.Unmarshal(data, &overlay); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	config.merge(&overlay)

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return config, nil
}

func (c *Config) merge(overlay *Config) {
	if overlay.Source != "" {
		c.Source = overlay.Source
	}
	if overlay.Fallback != "" {
		c.Fallback = overlay.Fallback
	}
	if overlay.Logging.Level != "" {
		c.Logging.Level = overlay.Logging.Level
	}
	if overlay.Logging.MaxSize > 0 {
		c.Logging.MaxSize = overlay.Logging.MaxSize
		c.Logging.MaxBackups = overlay.Logging.MaxBackups
		c.Logging.MaxAge = overlay.Logging.MaxAge
	}
	if overlay.History.Enabled != nil {
		c.History.Enabled = overlay.History.Enabled
	}

	// Category overlays reassign extensions rather than replacing whole
	// categories: an extension named under one category is removed from
	// any default category that claimed it.
	for name, exts := range overlay.Categories {
		for _, ext := range exts {
			c.removeExtension(ext)
			c.Categories[name] = append(c.Categories[name], ext)
		}
	}
}

func (c *Config) removeExtension(ext string) {
	ext = strings.ToLower(strings.TrimPrefix(ext, "."))
	for name, exts := range c.Categories {
		kept := exts[:0]
		for _, e := range exts {
			if strings.ToLower(strings.TrimPrefix(e, ".")) != ext {
				kept = append(kept, e)
			}
		}
		c.Categories[name] = kept
	}
}

// Validate performs config validation.
func (c *Config) Validate() error {
	for name := range c.Categories {
		if err := validateCategoryName(name); err != nil {
			return err
		}
	}
	if err := validateCategoryName(c.Fallback); err != nil {
		return err
	}

	switch c.Logging.Level {
	case "debug", "info", "error":
	default:
		return fmt.Errorf("invalid logging level %q (want debug, info or error)", c.Logging.Level)
	}

	return nil
}

func validateCategoryName(name string) error {
	if name == "" {
		return errors.New("category name cannot be empty")
	}
	if strings.ContainsAny(name, `/\`) {
		return fmt.Errorf("category name %q cannot contain path separators", name)
	}
	if name == "." || name == ".." {
		return fmt.Errorf("category name %q is not a valid folder name", name)
	}
	return nil
}

// CategoryMap builds the effective category map from the config.
func (c *Config) CategoryMap() *category.Map {
	return category.New(c.Categories, c.Fallback)
}
