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
	"bufio"
	"errors"
	"fmt"
	"io"

	"github.com/plaintabhq/plaintab/internal/sniff"

	pterrors "github.com/plaintabhq/plaintab/internal/errors"
)

// Formatter streams aligned report lines from delimited input. It follows
// the bufio.Scanner idiom: call Next until it returns false, read each line
// with Line, then check Err.
//
// A Formatter holds no state across invocations and produces lines one at a
// time on demand, so the caller can interleave writing without the whole
// output ever being materialized. It is not safe for concurrent use; create
// one Formatter per render.
type Formatter struct {
	src  *Source
	opts Options

	batch  *Batch
	recIdx int
	widths []int

	pending    []string
	pendingIdx int

	headerDone bool
	line       string
	err        error
}

// New constructs a Formatter over a decoded character stream. Options are
// validated up front: a bad configuration fails here, before any input is
// read. When no input delimiter is given, one is detected from a sample
// prefix of the stream (detection never fails; an inconclusive sample falls
// back to comma).
//
// The caller retains ownership of the input stream and is responsible for
// closing it, whether the render completes, fails, or is abandoned early.
func New(r io.Reader, opts Options) (*Formatter, error) {
	opts = opts.withDefaults()
	if err := opts.validate(); err != nil {
		return nil, err
	}

	bufSize := opts.SampleSize
	if bufSize < 4096 {
		bufSize = 4096
	}
	br := bufio.NewReaderSize(r, bufSize)

	delimiter := opts.InputDelimiter
	if delimiter == 0 {
		// Peek does not consume, so the source below re-reads the sampled
		// prefix. Peek errors are deliberately ignored: a short or failing
		// sample resolves to the fallback and the real read path reports
		// the underlying problem with full context.
		sample, _ := br.Peek(opts.SampleSize)
		delimiter = sniff.Detect(sample)
	}

	src, err := NewSource(br, delimiter, opts.BatchSize, opts.Logger)
	if err != nil {
		return nil, err
	}

	return &Formatter{src: src, opts: opts}, nil
}

// Next advances to the next output line. It returns false when the input is
// exhausted or a terminal error occurred; Err distinguishes the two.
func (f *Formatter) Next() bool {
	if f.err != nil {
		return false
	}

	for {
		if f.pendingIdx < len(f.pending) {
			f.line = f.pending[f.pendingIdx]
			f.pendingIdx++
			return true
		}

		if f.batch == nil || f.recIdx >= len(f.batch.Records) {
			batch, err := f.src.NextBatch()
			if err != nil {
				if errors.Is(err, io.EOF) {
					if !f.headerDone {
						f.err = fmt.Errorf("no records after header: %w", pterrors.ErrEmptyInput)
					}
					return false
				}
				f.err = err
				return false
			}

			f.batch = batch
			f.recIdx = 0
			f.widths = EstimateWidths(batch, f.opts.MinWidth, f.opts.MaxWidth, f.opts.WidthPercentile)

			if !f.headerDone {
				f.headerDone = true
				f.pending = []string{headerLine(batch.Columns, f.widths, f.opts.OutputDelimiter)}
				f.pendingIdx = 0
				continue
			}
		}

		rec := f.batch.Records[f.recIdx]
		f.recIdx++
		f.pending = formatRecord(rec, f.widths, f.opts.OutputDelimiter)
		f.pendingIdx = 0
	}
}

// Line returns the current output line. Valid only after Next returned true,
// until the following Next call.
func (f *Formatter) Line() string {
	return f.line
}

// Err returns the terminal error, if any, once Next has returned false.
// A fully consumed input yields nil.
func (f *Formatter) Err() error {
	return f.err
}

// Columns returns the column names established from the header row.
func (f *Formatter) Columns() []string {
	return f.src.Columns()
}

// Records returns the number of well-formed records consumed so far.
func (f *Formatter) Records() int {
	return f.src.Rows()
}

// Malformed returns the number of input rows skipped as malformed so far.
func (f *Formatter) Malformed() int {
	return f.src.Malformed()
}
