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
	"strings"

	"github.com/mattn/go-runewidth"
)

// formatRecord renders one record against the current column widths. The
// first line carries every column's first wrapped segment, left-justified to
// the column width and joined by the output delimiter. Wrapped overflow
// follows on continuation lines, joined by single spaces with no delimiter,
// so downstream consumers can distinguish a new record from a continuation
// by delimiter presence alone. Always returns at least one line.
func formatRecord(rec Record, widths []int, delimiter rune) []string {
	wrapped := make([][]string, len(widths))
	depth := 1
	for i, w := range widths {
		cell := ""
		if i < len(rec) {
			cell = rec[i]
		}
		wrapped[i] = wrapCell(cell, w)
		if len(wrapped[i]) > depth {
			depth = len(wrapped[i])
		}
	}

	lines := make([]string, 0, depth)
	var b strings.Builder

	for i, w := range widths {
		if i > 0 {
			b.WriteRune(delimiter)
		}
		b.WriteString(runewidth.FillRight(wrapped[i][0], w))
	}
	lines = append(lines, b.String())

	for row := 1; row < depth; row++ {
		b.Reset()
		for i, w := range widths {
			if i > 0 {
				b.WriteByte(' ')
			}
			segment := ""
			if row < len(wrapped[i]) {
				segment = wrapped[i][row]
			}
			b.WriteString(runewidth.FillRight(segment, w))
		}
		lines = append(lines, b.String())
	}
	return lines
}

// headerLine renders the column names once, padded to the first batch's
// widths and joined with the output delimiter.
func headerLine(columns []string, widths []int, delimiter rune) string {
	var b strings.Builder
	for i, w := range widths {
		if i > 0 {
			b.WriteRune(delimiter)
		}
		b.WriteString(runewidth.FillRight(columns[i], w))
	}
	return b.String()
}
