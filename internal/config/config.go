// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 The Glider Authors

// Package config loads gliderctl preferences from a YAML file.
//
// The file is optional; a missing file yields defaults. It stores
// connection preferences only. Nothing protocol-level lives here, and
// credentials are never written to it.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config is the on-disk preference file for gliderctl.
type Config struct {
	Version    int         `yaml:"version"`
	Connection *Connection `yaml:"connection,omitempty"`
	LogLevel   string      `yaml:"log_level,omitempty"`
}

// Connection holds default connection settings, overridable by flags.
type Connection struct {
	// Port selects the serial debug-header transport (e.g. /dev/ttyACM0).
	Port string `yaml:"port,omitempty"`
	Baud int    `yaml:"baud,omitempty"`

	// URL selects the WebSocket bridge transport (ws:// or wss://).
	URL      string `yaml:"url,omitempty"`
	Username string `yaml:"username,omitempty"`
	// Password is never stored; it is prompted or read from the
	// environment.
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{
		Version: 1,
		Connection: &Connection{
			Baud: 115200,
		},
	}
}

// DefaultPath returns the preferred config file location,
// $XDG_CONFIG_HOME/gliderctl/config.yaml or the OS equivalent.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve config dir: %w", err)
	}
	return filepath.Join(dir, "gliderctl", "config.yaml"), nil
}

// Load reads the config at path. An empty path means DefaultPath. A
// missing file is not an error; defaults are returned.
func Load(path string) (*Config, error) {
	if path == "" {
		var err error
		path, err = DefaultPath()
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if cfg.Connection == nil {
		cfg.Connection = &Connection{Baud: 115200}
	}
	if cfg.Connection.Baud == 0 {
		cfg.Connection.Baud = 115200
	}
	return cfg, nil
}

// Save writes the config to path, creating parent directories as needed.
// An empty path means DefaultPath.
func Save(cfg *Config, path string) error {
	if path == "" {
		var err error
		path, err = DefaultPath()
		if err != nil {
			return err
		}
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write config %s: %w", path, err)
	}
	return nil
}
