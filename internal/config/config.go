// Package config loads sqlrepl settings from a YAML file.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds all application configuration.
type Config struct {
	Theme        string            `yaml:"theme"`
	Format       string            `yaml:"format"` // "table" or "csv"
	HistoryLimit int               `yaml:"history_limit"`
	Connections  []SavedConnection `yaml:"connections"`
}

// SavedConnection is a named connection the user can select with --connection.
type SavedConnection struct {
	Name    string `yaml:"name"`
	Adapter string `yaml:"adapter"`
	DSN     string `yaml:"dsn"`
}

// DefaultConfig returns a Config populated with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Theme:        "default",
		Format:       "table",
		HistoryLimit: 500,
	}
}

// ConfigDir returns the sqlrepl configuration directory, typically
// ~/.config/sqlrepl/.
func ConfigDir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("config dir: %w", err)
	}
	return filepath.Join(base, "sqlrepl"), nil
}

// Load reads a Config from the YAML file at path. A missing file yields
// DefaultConfig without error.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}

// LoadDefault loads configuration from ConfigDir()/config.yaml.
func LoadDefault() (*Config, error) {
	dir, err := ConfigDir()
	if err != nil {
		return nil, err
	}
	return Load(filepath.Join(dir, "config.yaml"))
}

// Connection returns the saved connection with the given name.
func (c *Config) Connection(name string) (SavedConnection, bool) {
	for _, conn := range c.Connections {
		if conn.Name == name {
			return conn, true
		}
	}
	return SavedConnection{}, false
}
