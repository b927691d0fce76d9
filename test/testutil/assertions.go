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

package testutil

import (
	"encoding/json"
	"os"
	"strings"
	"testing"

	"github.com/mattn/go-runewidth"
)

// AssertAlignedReport validates the structural invariants of a rendered
// report: every record line contains the same number of delimiters as
// the header, continuation lines contain none, and all lines share the
// same display width. Widths are recomputed per batch, so the width
// check assumes the input fit in a single batch.
func AssertAlignedReport(t *testing.T, lines []string, delimiter string) {
	t.Helper()

	if len(lines) == 0 {
		t.Fatal("report has no lines")
	}

	headerDelims := strings.Count(lines[0], delimiter)
	if headerDelims == 0 {
		t.Fatalf("header line contains no delimiter %q: %q", delimiter, lines[0])
	}

	width := runewidth.StringWidth(lines[0])
	for i, line := range lines {
		delims := strings.Count(line, delimiter)
		if delims != 0 && delims != headerDelims {
			t.Errorf("line %d has %d delimiters, header has %d: %q", i+1, delims, headerDelims, line)
		}
		if got := runewidth.StringWidth(line); got != width {
			t.Errorf("line %d display width = %d, want %d: %q", i+1, got, width, line)
		}
	}
}

// CountRecordLines returns how many lines after the header are record
// first-lines (contain the delimiter) versus continuation lines.
func CountRecordLines(t *testing.T, lines []string, delimiter string) (records, continuations int) {
	t.Helper()

	for _, line := range lines[1:] {
		if strings.Contains(line, delimiter) {
			records++
		} else {
			continuations++
		}
	}
	return records, continuations
}

// AssertMetadataFile validates that a metadata file exists, parses as
// JSON, and records the expected number of formatted records.
func AssertMetadataFile(t *testing.T, path string, wantRecords int) {
	t.Helper()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read metadata file: %v", err)
	}

	var meta struct {
		RenderID string `json:"render_id"`
		Results  struct {
			Records int `json:"records"`
		} `json:"results"`
	}
	if err := json.Unmarshal(data, &meta); err != nil {
		t.Fatalf("Metadata file is not valid JSON: %v", err)
	}

	if meta.RenderID == "" {
		t.Error("Metadata is missing render_id")
	}
	if meta.Results.Records != wantRecords {
		t.Errorf("Metadata records = %d, want %d", meta.Results.Records, wantRecords)
	}
}
