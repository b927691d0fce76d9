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

// Package config types define the configuration structures used throughout
// plaintab. These types represent settings that can be loaded from YAML
// configuration files, environment variables, or command-line flags.
package config

// Config represents the complete configuration for plaintab. It consolidates
// settings from various sources and provides a unified interface for
// accessing configuration values throughout the application.
type Config struct {
	Render  RenderConfig  `yaml:"render"`
	Limits  LimitsConfig  `yaml:"limits"`
	Logging LoggingConfig `yaml:"logging"`
}

// RenderConfig contains the settings that control the reformatting engine:
// how many records each batch holds, the bounds on computed column widths,
// the content-length percentile used for width estimation, and the defaults
// for the output delimiter and input encoding.
type RenderConfig struct {
	// BatchSize is the number of records processed per batch. Column
	// widths are recomputed for every batch, so this bounds memory at
	// the cost of width consistency across very large inputs.
	BatchSize int `yaml:"batch_size"`

	// MinWidth and MaxWidth bound the computed display width of a column.
	// Headers longer than MaxWidth are never clipped; cell content wider
	// than the column wraps onto continuation lines.
	MinWidth int `yaml:"min_width"`
	MaxWidth int `yaml:"max_width"`

	// WidthPercentile is the content-length percentile a column width is
	// derived from. Using a percentile rather than the maximum keeps one
	// pathological value from inflating every row.
	WidthPercentile float64 `yaml:"width_percentile"`

	// SampleSize is the number of bytes inspected when auto-detecting the
	// input field delimiter.
	SampleSize int `yaml:"sample_size"`

	// Delimiter is the default output delimiter. Accepts the same aliases
	// as the --delimiter flag (tab, space, comma, semicolon, pipe, or a
	// single literal character).
	Delimiter string `yaml:"delimiter"`

	// Encoding is the default input encoding (an IANA character set name).
	Encoding string `yaml:"encoding"`
}

// LimitsConfig contains resource limits applied before and during a render.
type LimitsConfig struct {
	// MaxInputBytes is the maximum accepted input size in bytes.
	// Zero disables the limit.
	MaxInputBytes int64 `yaml:"max_input_bytes"`
}

// LoggingConfig controls diagnostic output. The report itself always goes
// to the selected output; logs go to stderr.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// DefaultConfig returns a Config with sensible defaults suitable for most
// use cases: 1000-record batches, column widths between 15 and 30 cells
// derived from the 90th percentile of content lengths, a 1 KiB detection
// sample, tab-delimited output, UTF-8 input, and a 10 MiB input cap.
func DefaultConfig() *Config {
	return &Config{
		Render: RenderConfig{
			BatchSize:       1000,
			MinWidth:        15,
			MaxWidth:        30,
			WidthPercentile: 0.90,
			SampleSize:      1024,
			Delimiter:       "tab",
			Encoding:        "utf-8",
		},
		Limits: LimitsConfig{
			MaxInputBytes: 10 << 20,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
	}
}
