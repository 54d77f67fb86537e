// Package config provides configuration helpers and TOML parsing.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// FileConfig represents the TOML configuration file.
type FileConfig struct {
	Shell ShellConfig `toml:"shell"`
	Auth  AuthConfig  `toml:"auth"`
	Sync  SyncConfig  `toml:"sync"`
}

// ShellConfig maps shell-related settings.
type ShellConfig struct {
	Lang         *string `toml:"lang"`
	TimerMinutes *int    `toml:"timer-minutes"`
}

// AuthConfig selects the identity provider.
type AuthConfig struct {
	Provider *string `toml:"provider"`
}

// SyncConfig controls the remote stats mirror.
type SyncConfig struct {
	Enabled *bool `toml:"enabled"`
}

// LoadConfig reads a TOML config from the given path. Missing file is not an error.
func LoadConfig(path string) (FileConfig, error) {
	if path == "" {
		return FileConfig{}, fmt.Errorf("config path is empty")
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return FileConfig{}, nil
		}
		return FileConfig{}, fmt.Errorf("failed to stat config: %w", err)
	}
	var cfg FileConfig
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return FileConfig{}, fmt.Errorf("failed to decode config: %w", err)
	}
	return cfg, nil
}
