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

package report

import (
	"fmt"
	"log/slog"

	pterrors "github.com/plaintabhq/plaintab/internal/errors"
	"github.com/plaintabhq/plaintab/internal/sniff"
)

// Record is one logical row of input data, one cell per column. The column
// set is fixed for the whole input by the header row; an empty cell is the
// absent/null value. All values are text: the engine never interprets
// numeric or date semantics.
type Record []string

// Batch is a bounded group of consecutive records processed together for
// width estimation. Batches exist only to bound memory; batch boundaries
// are not observable in the formatted output beyond the per-batch width
// recomputation documented in Options.
type Batch struct {
	// Columns is the shared header, identical across all batches.
	Columns []string
	// Records holds up to the configured batch size of rows, in input order.
	Records []Record
}

// Options configures a Formatter. The zero value of any field is replaced
// by the corresponding default, so callers only set what they need.
type Options struct {
	// OutputDelimiter is the single character placed between columns on the
	// first line of each record. Required.
	OutputDelimiter rune

	// InputDelimiter is the field separator of the source data. When zero
	// it is auto-detected from a sample prefix of the input.
	InputDelimiter rune

	// BatchSize is the number of records per batch. Default 1000.
	BatchSize int

	// MinWidth and MaxWidth bound computed column widths.
	// Defaults 15 and 30.
	MinWidth int
	MaxWidth int

	// WidthPercentile is the content-length percentile used for width
	// estimation, in (0, 1]. Default 0.90.
	WidthPercentile float64

	// SampleSize is the number of bytes inspected for delimiter detection.
	// Default sniff.DefaultSampleSize.
	SampleSize int

	// Logger receives warnings about skipped malformed records.
	// Defaults to slog.Default().
	Logger *slog.Logger
}

// DefaultOptions returns the engine defaults. OutputDelimiter is left unset
// because there is no sensible universal default at this layer; the CLI
// supplies one.
func DefaultOptions() Options {
	return Options{
		BatchSize:       1000,
		MinWidth:        15,
		MaxWidth:        30,
		WidthPercentile: 0.90,
		SampleSize:      sniff.DefaultSampleSize,
	}
}

// withDefaults fills zero-valued fields from DefaultOptions.
func (o Options) withDefaults() Options {
	def := DefaultOptions()
	if o.BatchSize == 0 {
		o.BatchSize = def.BatchSize
	}
	if o.MinWidth == 0 {
		o.MinWidth = def.MinWidth
	}
	if o.MaxWidth == 0 {
		o.MaxWidth = def.MaxWidth
	}
	if o.WidthPercentile == 0 {
		o.WidthPercentile = def.WidthPercentile
	}
	if o.SampleSize == 0 {
		o.SampleSize = def.SampleSize
	}
	if o.Logger == nil {
		o.Logger = slog.Default()
	}
	return o
}

// validate rejects out-of-range options before any input is read.
func (o Options) validate() error {
	if o.OutputDelimiter == 0 {
		return fmt.Errorf("output delimiter is required: %w", pterrors.ErrInvalidConfig)
	}
	if o.OutputDelimiter == '\n' || o.OutputDelimiter == '\r' {
		return fmt.Errorf("output delimiter cannot be a line break: %w", pterrors.ErrInvalidConfig)
	}
	if o.BatchSize < 1 {
		return fmt.Errorf("batch size must be positive, got %d: %w", o.BatchSize, pterrors.ErrInvalidConfig)
	}
	if o.MinWidth < 1 {
		return fmt.Errorf("min width must be at least 1, got %d: %w", o.MinWidth, pterrors.ErrInvalidConfig)
	}
	if o.MaxWidth < o.MinWidth {
		return fmt.Errorf("max width %d is below min width %d: %w", o.MaxWidth, o.MinWidth, pterrors.ErrInvalidConfig)
	}
	if o.WidthPercentile <= 0 || o.WidthPercentile > 1 {
		return fmt.Errorf("width percentile must be in (0, 1], got %g: %w", o.WidthPercentile, pterrors.ErrInvalidConfig)
	}
	if o.SampleSize < 1 {
		return fmt.Errorf("sample size must be positive, got %d: %w", o.SampleSize, pterrors.ErrInvalidConfig)
	}
	return nil
}
