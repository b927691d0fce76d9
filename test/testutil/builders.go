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

// Package testutil provides shared helpers for building delimited test
// inputs and inspecting rendered output.
package testutil

import (
	"strconv"
	"strings"
)

// TableBuilder provides a fluent API for constructing delimited test
// input. It keeps rows as cell slices until Build so the same table can
// be serialized with different delimiters.
type TableBuilder struct {
	delimiter  string
	terminator string
	columns    []string
	rows       [][]string
	rawLines   []string
}

// NewTableBuilder creates a table builder with comma delimiters and
// Unix line endings.
func NewTableBuilder(columns ...string) *TableBuilder {
	return &TableBuilder{
		delimiter:  ",",
		terminator: "\n",
		columns:    columns,
	}
}

// WithDelimiter sets the field delimiter used when serializing.
func (b *TableBuilder) WithDelimiter(delim string) *TableBuilder {
	b.delimiter = delim
	return b
}

// WithCRLF switches line endings to \r\n.
func (b *TableBuilder) WithCRLF() *TableBuilder {
	b.terminator = "\r\n"
	return b
}

// Row appends one data row. Cell counts are not checked, so short and
// long rows can be built deliberately.
func (b *TableBuilder) Row(cells ...string) *TableBuilder {
	b.rows = append(b.rows, cells)
	return b
}

// Rows appends n generated rows of the form "r<row>c<col>". Useful for
// batch boundary tests where cell content does not matter.
func (b *TableBuilder) Rows(n int) *TableBuilder {
	for i := 0; i < n; i++ {
		cells := make([]string, len(b.columns))
		for j := range cells {
			cells[j] = cellValue(len(b.rows), j)
		}
		b.rows = append(b.rows, cells)
	}
	return b
}

// RawLine appends a line verbatim, bypassing cell serialization. Used to
// inject malformed rows.
func (b *TableBuilder) RawLine(line string) *TableBuilder {
	b.rows = append(b.rows, nil)
	b.rawLines = append(b.rawLines, line)
	return b
}

// Build serializes the table with the configured delimiter and line
// terminator.
func (b *TableBuilder) Build() string {
	var sb strings.Builder
	sb.WriteString(strings.Join(b.columns, b.delimiter))
	sb.WriteString(b.terminator)

	raw := 0
	for _, row := range b.rows {
		if row == nil {
			sb.WriteString(b.rawLines[raw])
			raw++
		} else {
			sb.WriteString(strings.Join(row, b.delimiter))
		}
		sb.WriteString(b.terminator)
	}
	return sb.String()
}

func cellValue(row, col int) string {
	return "r" + strconv.Itoa(row+1) + "c" + strconv.Itoa(col+1)
}
