// Package config provides configuration helpers and TOML parsing.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// FileConfig represents the TOML configuration file.
type FileConfig struct {
	Render RenderConfig `toml:"render"`
	Git    GitConfig    `toml:"git"`
}

// RenderConfig maps rendering settings.
type RenderConfig struct {
	BDFFont       *string `toml:"bdf-font"`
	LetterSpacing *int    `toml:"letter-spacing"`
	SpaceSpacing  *int    `toml:"space-spacing"`
	PreviewScale  *int    `toml:"preview-scale"`
}

// GitConfig maps commit sink settings.
type GitConfig struct {
	Base   *string `toml:"base"`
	Branch *string `toml:"branch"`
	Remote *string `toml:"remote"`
	Readme *string `toml:"readme"`
	NoPush *bool   `toml:"no-push"`
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
