// Package config loads application configuration from a YAML file with
// environment variable expansion.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"gopkg.in/yaml.v3"
)

// Config holds application configuration
type Config struct {
	DataDir         string `yaml:"data_dir"`
	DBPath          string `yaml:"db_path"`
	Theme           string `yaml:"theme"`
	AutosaveDelayMs int    `yaml:"autosave_delay_ms"`
	Notifications   bool   `yaml:"notifications"`
}

// DefaultDataDir returns the default data directory path
func DefaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".tack"
	}
	return filepath.Join(home, ".local", "share", "tack")
}

// DefaultPath returns the default config file path
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "tack.yaml"
	}
	return filepath.Join(home, ".config", "tack", "config.yaml")
}

// Default returns the built-in configuration
func Default() *Config {
	dataDir := DefaultDataDir()
	return &Config{
		DataDir:         dataDir,
		DBPath:          filepath.Join(dataDir, "tack.db"),
		Theme:           "nord",
		AutosaveDelayMs: 750,
		Notifications:   true,
	}
}

// Load reads the config file at path, expanding ${VAR} references. A
// missing file is not an error; defaults are returned instead.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	if err := yaml.Unmarshal([]byte(os.ExpandEnv(string(data))), cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return cfg, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.DataDir, validation.Required),
		validation.Field(&c.DBPath, validation.Required),
		validation.Field(&c.Theme, validation.In("nord", "dracula")),
		validation.Field(&c.AutosaveDelayMs, validation.Min(100), validation.Max(60000)),
	)
}
