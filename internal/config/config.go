// DS3-ModLocalizationExtractor: split and merge tool for FMG text JSON
// Copyright (C) 2026  Null993
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package config loads the CLI defaults with layered precedence: built-in
// defaults, then the user config, then the project config in the working
// directory. Command-line flags override all of it.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const (
	// ProjectConfigFile is the per-directory config file name.
	ProjectConfigFile = "fmgsplit.yaml"
	// UserConfigDir is the user-level config directory under $HOME.
	UserConfigDir = ".config/fmgsplit"
	// UserConfigFile is the user-level config file name.
	UserConfigFile = "config.yaml"
)

// Config holds the tool defaults a flag can override.
type Config struct {
	Split  SplitConfig  `yaml:"split"`
	Output OutputConfig `yaml:"output"`
}

// SplitConfig mirrors the extract options.
type SplitConfig struct {
	// Enabled toggles chunking by default.
	Enabled bool `yaml:"enabled"`
	// MaxEntries is the default chunk size.
	MaxEntries int `yaml:"max_entries"`
}

// OutputConfig mirrors the merge options.
type OutputConfig struct {
	// Compress writes merged documents as lz4 containers by default.
	Compress bool `yaml:"compress"`
}

// Default returns the built-in defaults.
func Default() *Config {
	return &Config{
		Split: SplitConfig{
			Enabled:    true,
			MaxEntries: 500,
		},
	}
}

// fileConfig is the on-disk shape; pointer fields distinguish "absent"
// from "set to the zero value" when layering.
type fileConfig struct {
	Split struct {
		Enabled    *bool `yaml:"enabled"`
		MaxEntries *int  `yaml:"max_entries"`
	} `yaml:"split"`
	Output struct {
		Compress *bool `yaml:"compress"`
	} `yaml:"output"`
}

// Load builds the effective configuration.
func Load(logger *slog.Logger) (*Config, error) {
	if logger == nil {
		logger = slog.Default()
	}
	cfg := Default()

	if path := userConfigPath(); path != "" {
		if err := cfg.mergeFile(path); err == nil {
			logger.Debug("loaded user config", slog.String("path", path))
		} else if !os.IsNotExist(err) {
			return nil, err
		}
	}

	path := filepath.Join(".", ProjectConfigFile)
	if err := cfg.mergeFile(path); err == nil {
		logger.Debug("loaded project config", slog.String("path", path))
	} else if !os.IsNotExist(err) {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects values no operation could accept.
func (c *Config) Validate() error {
	if c.Split.MaxEntries <= 0 {
		return fmt.Errorf("config: split.max_entries must be positive, got %d", c.Split.MaxEntries)
	}
	return nil
}

func (c *Config) mergeFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return fmt.Errorf("config %s: %w", path, err)
	}
	if fc.Split.Enabled != nil {
		c.Split.Enabled = *fc.Split.Enabled
	}
	if fc.Split.MaxEntries != nil {
		c.Split.MaxEntries = *fc.Split.MaxEntries
	}
	if fc.Output.Compress != nil {
		c.Output.Compress = *fc.Output.Compress
	}
	return nil
}

func userConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, UserConfigDir, UserConfigFile)
}
