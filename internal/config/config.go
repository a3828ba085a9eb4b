// Package config loads CLI defaults from a YAML file.
//
// Config file locations (priority order):
//  1. $PLANFIT_CONFIG
//  2. ./planfit.yaml
//  3. ~/.planfit/config.yaml
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds user defaults applied when the corresponding CLI flags are
// not given. None of these affect algorithm semantics, only defaults.
type Config struct {
	// DefaultClearance is the placement area margin in mm.
	DefaultClearance float64 `yaml:"default_clearance"`
	// LibraryPath overrides the fixture library location.
	LibraryPath string `yaml:"library_path,omitempty"`
	// ExportDir is where export commands write files by default.
	ExportDir string `yaml:"export_dir,omitempty"`
}

// DefaultConfig returns sensible defaults for a new installation.
func DefaultConfig() *Config {
	return &Config{
		DefaultClearance: 0,
		ExportDir:        ".",
	}
}

// FindConfigPath returns the first existing config file location, or ""
// when none exists.
func FindConfigPath() string {
	if env := os.Getenv("PLANFIT_CONFIG"); env != "" {
		return env
	}
	candidates := []string{"planfit.yaml"}
	if home, err := os.UserHomeDir(); err == nil {
		candidates = append(candidates, filepath.Join(home, ".planfit", "config.yaml"))
	}
	for _, c := range candidates {
		if _, err := os.Stat(c); err == nil {
			return c
		}
	}
	return ""
}

// Load finds and loads the config file, or returns defaults if none found.
func Load() (*Config, string, error) {
	path := FindConfigPath()
	if path == "" {
		return DefaultConfig(), "", nil
	}
	return LoadFromPath(path)
}

// LoadFromPath loads config from a specific path.
func LoadFromPath(path string) (*Config, string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, path, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, path, fmt.Errorf("parse config: %w", err)
	}
	cfg.applyDefaults()
	return &cfg, path, nil
}

// Save writes config to the specified path, creating parent directories.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	return os.WriteFile(path, data, 0644)
}

func (c *Config) applyDefaults() {
	if c.ExportDir == "" {
		c.ExportDir = "."
	}
	if c.DefaultClearance < 0 {
		c.DefaultClearance = 0
	}
}
