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

package metadata

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/google/uuid"
)

// Tracker collects statistics during a render operation and generates a
// metadata record at the end. Create a new tracker at the start of each
// render and call its methods to record activity.
type Tracker struct {
	startTime time.Time
	records   int
	malformed int
	lines     int
	bytesRead int64
}

// New creates a new metadata tracker and initializes it with the current
// time. Call this at the beginning of a render operation.
func New() *Tracker {
	return &Tracker{
		startTime: time.Now(),
	}
}

// AddRecords records how many input records were formatted.
func (t *Tracker) AddRecords(n int) {
	t.records += n
}

// AddMalformed records how many input rows were skipped as malformed.
func (t *Tracker) AddMalformed(n int) {
	t.malformed += n
}

// IncrementLine records that one output line was written.
func (t *Tracker) IncrementLine() {
	t.lines++
}

// SetBytesRead records the total number of input bytes consumed.
func (t *Tracker) SetBytesRead(n int64) {
	t.bytesRead = n
}

// Generate creates a RenderMetadata instance capturing the complete
// render operation statistics. Call this once the render has finished.
func (t *Tracker) Generate(toolVersion string, params RenderParams) *RenderMetadata {
	completedAt := time.Now()
	duration := completedAt.Sub(t.startTime)

	return &RenderMetadata{
		ToolVersion: toolVersion,
		RenderID:    uuid.NewString(),
		Parameters:  params,
		Results: RenderResults{
			Records:          t.records,
			MalformedSkipped: t.malformed,
			LinesWritten:     t.lines,
			BytesRead:        t.bytesRead,
			StartedAt:        t.startTime,
			CompletedAt:      completedAt,
			DurationSeconds:  duration.Seconds(),
		},
	}
}

// Save persists a metadata record to a JSON file at the given path. The
// file is written to a temporary location first and renamed into place to
// prevent partial writes.
func Save(metadata *RenderMetadata, path string) error {
	tmpPath := path + ".tmp"
	file, err := os.Create(tmpPath)
	if err != nil {
		return fmt.Errorf("failed to create metadata file: %w", err)
	}

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(metadata); err != nil {
		_ = file.Close()
		_ = os.Remove(tmpPath)
		return fmt.Errorf("failed to write metadata: %w", err)
	}

	if err := file.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("failed to close metadata file: %w", err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("failed to save metadata file: %w", err)
	}

	return nil
}

// WriteTo serializes a metadata record to JSON and writes it to the
// provided io.Writer. The output is indented for readability.
func WriteTo(metadata *RenderMetadata, w io.Writer) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(metadata)
}
