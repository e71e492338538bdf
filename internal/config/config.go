// Package config provides configuration management.
package config

import (
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"storage-cost/internal/errors"
	"storage-cost/internal/logging"
)

// Config is the main application configuration
type Config struct {
	// Version is the configuration version
	Version string `yaml:"version"`

	// Catalog contains provider catalog configuration
	Catalog CatalogConfig `yaml:"catalog"`

	// Output contains output configuration
	Output OutputConfig `yaml:"output"`

	// Server contains HTTP API configuration
	Server ServerConfig `yaml:"server"`

	// Logging contains logging configuration
	Logging logging.Config `yaml:"logging"`
}

// CatalogConfig selects where provider plans come from
type CatalogConfig struct {
	// Path is an HCL, YAML or JSON catalog file; empty uses the built-in catalog
	Path string `yaml:"path"`
}

// OutputConfig contains output-related settings
type OutputConfig struct {
	// DefaultFormat is the default output format
	DefaultFormat string `yaml:"default_format"`

	// ShowStorage prints the projected monthly storage
	ShowStorage bool `yaml:"show_storage"`

	// ShowLinks prints provider links next to results
	ShowLinks bool `yaml:"show_links"`
}

// ServerConfig contains HTTP API settings
type ServerConfig struct {
	// Addr is the listen address
	Addr string `yaml:"addr"`

	// ReadTimeout bounds reading a request, e.g. "10s"
	ReadTimeout string `yaml:"read_timeout"`

	// MaxMonths rejects requests with a longer horizon
	MaxMonths int `yaml:"max_months"`
}

// ReadTimeoutDuration parses the read timeout, falling back to 10s
func (s ServerConfig) ReadTimeoutDuration() time.Duration {
	d, err := time.ParseDuration(s.ReadTimeout)
	if err != nil || d <= 0 {
		return 10 * time.Second
	}
	return d
}

// Default returns a default configuration
func Default() *Config {
	return &Config{
		Version: "1.0",
		Output: OutputConfig{
			DefaultFormat: "cli",
			ShowStorage:   false,
			ShowLinks:     true,
		},
		Server: ServerConfig{
			Addr:        ":8080",
			ReadTimeout: "10s",
			MaxMonths:   1200,
		},
		Logging: logging.DefaultConfig(),
	}
}

// DefaultPath returns $HOME/.storage-cost.yaml
func DefaultPath() string {
	homeDir, _ := os.UserHomeDir()
	return filepath.Join(homeDir, ".storage-cost.yaml")
}

// Load loads configuration from a YAML or JSON file.
// A missing file yields the defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, errors.Config("read config "+path, err)
	}

	config := Default()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, errors.Config("parse config "+path, err)
	}

	return config, nil
}

// Save saves configuration to a file
func (c *Config) Save(path string) error {
	// Ensure directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return errors.Config("create config directory", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return errors.Config("encode config", err)
	}

	return os.WriteFile(path, data, 0644)
}

// Global configuration instance
var globalConfig = Default()

// Get returns the global configuration
func Get() *Config {
	return globalConfig
}

// Set sets the global configuration
func Set(config *Config) {
	globalConfig = config
}
