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
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	pterrors "github.com/plaintabhq/plaintab/internal/errors"
)

// Source parses a decoded character stream into a lazy, forward-only
// sequence of batches. Row order is preserved within and across batches.
//
// Parsing rules: leading whitespace in a field is trimmed, fully blank lines
// are skipped, and rows whose field count does not match the header are
// logged as warnings and skipped. A read error from the underlying stream
// (typically a decode failure) terminates the sequence at the point of
// failure; no partial record is ever returned.
type Source struct {
	csv       *csv.Reader
	columns   []string
	batchSize int
	logger    *slog.Logger

	rows      int
	malformed int
	err       error
}

// NewSource reads the header row and prepares batch iteration. An input
// that ends before a header row fails with ErrEmptyInput.
func NewSource(r io.Reader, delimiter rune, batchSize int, logger *slog.Logger) (*Source, error) {
	if logger == nil {
		logger = slog.Default()
	}

	cr := csv.NewReader(r)
	cr.Comma = delimiter
	cr.TrimLeadingSpace = true
	cr.LazyQuotes = true
	// After the header, every row must match its field count. Mismatches
	// surface as csv.ErrFieldCount and are skipped, not fatal.
	cr.FieldsPerRecord = 0

	header, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("no header row: %w", pterrors.ErrEmptyInput)
		}
		return nil, fmt.Errorf("reading header: %w", err)
	}

	columns := make([]string, len(header))
	for i, col := range header {
		columns[i] = strings.TrimSpace(col)
	}

	return &Source{
		csv:       cr,
		columns:   columns,
		batchSize: batchSize,
		logger:    logger,
	}, nil
}

// Columns returns the header established from the first input row.
func (s *Source) Columns() []string {
	return s.columns
}

// Rows returns the number of well-formed records produced so far.
func (s *Source) Rows() int {
	return s.rows
}

// Malformed returns the number of rows skipped for a wrong field count or
// other per-line parse problems.
func (s *Source) Malformed() int {
	return s.malformed
}

// NextBatch returns the next batch of up to the configured number of
// records. It returns io.EOF when the input is exhausted. Any other error
// is terminal: the stream stops at the failure point and subsequent calls
// return the same error.
func (s *Source) NextBatch() (*Batch, error) {
	if s.err != nil {
		return nil, s.err
	}

	records := make([]Record, 0, s.batchSize)
	for len(records) < s.batchSize {
		row, err := s.csv.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				s.err = io.EOF
				break
			}

			var parseErr *csv.ParseError
			if errors.As(err, &parseErr) {
				// A whitespace-only line parses as a single empty field and
				// trips the field-count check; treat it as blank, not broken.
				if len(row) > 0 && isBlankRow(row) {
					continue
				}
				s.malformed++
				s.logger.Warn("skipping malformed record",
					"line", parseErr.Line,
					"error", parseErr.Err.Error())
				continue
			}

			// Not a per-line parse problem: the stream itself failed.
			if errors.Is(err, pterrors.ErrDecodeFailure) {
				s.err = err
			} else {
				s.err = fmt.Errorf("reading input: %w", err)
			}
			return nil, s.err
		}

		// A row of all-empty cells that matched the header's field count is
		// a valid record of nulls, not a blank line, and is kept.
		records = append(records, Record(row))
	}

	if len(records) == 0 {
		return nil, io.EOF
	}
	s.rows += len(records)
	return &Batch{Columns: s.columns, Records: records}, nil
}

// isBlankRow reports whether every field of the row is empty after trimming.
func isBlankRow(row []string) bool {
	for _, field := range row {
		if strings.TrimSpace(field) != "" {
			return false
		}
	}
	return true
}
