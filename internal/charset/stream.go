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

package charset

import (
	"fmt"
	"io"

	pterrors "github.com/plaintabhq/plaintab/internal/errors"
)

// MaxBytesReader wraps r so that reading more than limit bytes fails with
// ErrInputTooLarge. Unlike a plain io.LimitReader it distinguishes "input
// ended" from "input too big", which matters for streams whose size cannot
// be checked up front (stdin, pipes). A limit of zero disables the guard.
func MaxBytesReader(r io.Reader, limit int64) io.Reader {
	if limit <= 0 {
		return r
	}
	return &maxBytesReader{reader: r, remaining: limit}
}

type maxBytesReader struct {
	reader    io.Reader
	remaining int64
}

func (m *maxBytesReader) Read(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	if int64(len(p)) > m.remaining+1 {
		// Read one byte past the limit so the overflow is detected on this
		// call instead of the next.
		p = p[:m.remaining+1]
	}
	n, err := m.reader.Read(p)
	m.remaining -= int64(n)
	if m.remaining < 0 {
		return n, fmt.Errorf("read limit reached: %w", pterrors.ErrInputTooLarge)
	}
	return n, err
}

// CountingReader wraps an io.Reader to track bytes read. Used for progress
// reporting and the render summary.
type CountingReader struct {
	reader    io.Reader
	bytesRead int64
}

// NewCountingReader creates a counting reader.
func NewCountingReader(r io.Reader) *CountingReader {
	return &CountingReader{reader: r}
}

// Read implements io.Reader.
func (c *CountingReader) Read(p []byte) (int, error) {
	n, err := c.reader.Read(p)
	c.bytesRead += int64(n)
	return n, err
}

// BytesRead returns the number of bytes read so far.
func (c *CountingReader) BytesRead() int64 {
	return c.bytesRead
}
