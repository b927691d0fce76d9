// Copyright 2025 Plaintab Authors
//
// Licensed under the Business Source License 1.1 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     https://mariadb.com/bsl11
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package config provides configuration management for plaintab with support
// for multiple configuration sources and a well-defined precedence order.
//
// Configuration sources (in precedence order, highest to lowest):
//  1. Command-line flags
//  2. Environment variables
//  3. Configuration file
//  4. Built-in defaults
//
// The package supports YAML configuration files and provides automatic
// discovery of configuration in standard locations.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	pterrors "github.com/plaintabhq/plaintab/internal/errors"
)

// LoadConfig loads configuration from multiple sources and applies them in
// the correct precedence order. If configPath is provided, it loads from
// that specific file. Otherwise, it searches standard locations:
//   - .plaintab.yaml (current directory)
//   - .plaintab.yml (current directory)
//   - ~/.plaintab/config.yaml
//   - ~/.plaintab/config.yml
//
// Environment variables are applied after loading the config file, allowing
// runtime overrides.
//
// Returns an error if the specified config file cannot be loaded, but will
// succeed with defaults if no config file is found in standard locations.
func LoadConfig(configPath string) (*Config, error) {
	// Start with defaults
	cfg := DefaultConfig()

	// Try to load config file if path is provided
	if configPath != "" {
		if err := loadConfigFile(configPath, cfg); err != nil {
			return nil, fmt.Errorf("failed to load config file: %w", err)
		}
	} else {
		// Try default locations
		defaultPaths := []string{
			".plaintab.yaml",
			".plaintab.yml",
			filepath.Join(os.Getenv("HOME"), ".plaintab", "config.yaml"),
			filepath.Join(os.Getenv("HOME"), ".plaintab", "config.yml"),
		}

		for _, path := range defaultPaths {
			if _, err := os.Stat(path); err == nil {
				if err := loadConfigFile(path, cfg); err != nil {
					return nil, fmt.Errorf("failed to load config from %s: %w", path, err)
				}
				break
			}
		}
	}

	// Apply environment variable overrides
	applyEnvOverrides(cfg)

	return cfg, nil
}

// loadConfigFile reads and parses a YAML config file
func loadConfigFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	return nil
}

// applyEnvOverrides applies environment variable overrides to config
func applyEnvOverrides(cfg *Config) {
	if batchSize := os.Getenv("PLAINTAB_BATCH_SIZE"); batchSize != "" {
		if size, err := parsePositiveInt(batchSize); err == nil {
			cfg.Render.BatchSize = size
		}
	}
	if minWidth := os.Getenv("PLAINTAB_MIN_WIDTH"); minWidth != "" {
		if w, err := parsePositiveInt(minWidth); err == nil {
			cfg.Render.MinWidth = w
		}
	}
	if maxWidth := os.Getenv("PLAINTAB_MAX_WIDTH"); maxWidth != "" {
		if w, err := parsePositiveInt(maxWidth); err == nil {
			cfg.Render.MaxWidth = w
		}
	}
	if delim := os.Getenv("PLAINTAB_DELIMITER"); delim != "" {
		cfg.Render.Delimiter = delim
	}
	if enc := os.Getenv("PLAINTAB_ENCODING"); enc != "" {
		cfg.Render.Encoding = enc
	}
	if maxBytes := os.Getenv("PLAINTAB_MAX_INPUT_BYTES"); maxBytes != "" {
		var n int64
		if _, err := fmt.Sscanf(maxBytes, "%d", &n); err == nil && n >= 0 {
			cfg.Limits.MaxInputBytes = n
		}
	}
	if level := os.Getenv("PLAINTAB_LOG_LEVEL"); level != "" {
		cfg.Logging.Level = level
	}
}

// parsePositiveInt parses a string to a positive integer
func parsePositiveInt(s string) (int, error) {
	var i int
	_, err := fmt.Sscanf(s, "%d", &i)
	if err != nil {
		return 0, fmt.Errorf("failed to parse integer from '%s': %w", s, err)
	}
	if i <= 0 {
		return 0, fmt.Errorf("value must be positive, got: %d", i)
	}
	return i, nil
}

// Validate checks if the configuration contains valid values. It ensures
// batch size is positive, width bounds are ordered, and the percentile is
// within (0, 1]. This should be called after loading configuration to catch
// invalid settings before any input is read.
func (c *Config) Validate() error {
	if c.Render.BatchSize <= 0 {
		return fmt.Errorf("batch size must be positive, got %d: %w", c.Render.BatchSize, pterrors.ErrInvalidConfig)
	}
	if c.Render.MinWidth < 1 {
		return fmt.Errorf("min width must be at least 1, got %d: %w", c.Render.MinWidth, pterrors.ErrInvalidConfig)
	}
	if c.Render.MaxWidth < c.Render.MinWidth {
		return fmt.Errorf("max width %d is below min width %d: %w", c.Render.MaxWidth, c.Render.MinWidth, pterrors.ErrInvalidConfig)
	}
	if c.Render.WidthPercentile <= 0 || c.Render.WidthPercentile > 1 {
		return fmt.Errorf("width percentile must be in (0, 1], got %g: %w", c.Render.WidthPercentile, pterrors.ErrInvalidConfig)
	}
	if c.Render.SampleSize <= 0 {
		return fmt.Errorf("sample size must be positive, got %d: %w", c.Render.SampleSize, pterrors.ErrInvalidConfig)
	}
	if strings.TrimSpace(c.Render.Encoding) == "" {
		return fmt.Errorf("encoding cannot be empty: %w", pterrors.ErrInvalidConfig)
	}
	if c.Limits.MaxInputBytes < 0 {
		return fmt.Errorf("max input bytes cannot be negative, got %d: %w", c.Limits.MaxInputBytes, pterrors.ErrInvalidConfig)
	}
	return nil
}
