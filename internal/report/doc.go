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

// Package report implements the streaming reformatting engine: it reads
// delimited tabular text and emits a column-aligned plain-text report, one
// line at a time.
//
// The pipeline runs in a single pass. The input delimiter is detected once
// from a bounded sample prefix, records are parsed into fixed-size batches,
// each batch gets its own column-width estimate, and every record is
// rendered as a delimited first line plus space-joined continuation lines
// for wrapped cell overflow. Per-batch width computation is a deliberate
// memory/consistency trade-off, inherited from the chunked design: it
// bounds memory by the batch size but allows the same column to take
// different widths in different parts of a very large output.
//
// Example:
//
//	f, err := report.New(input, report.Options{OutputDelimiter: '|'})
//	if err != nil {
//	    return err
//	}
//	for f.Next() {
//	    fmt.Println(f.Line())
//	}
//	if err := f.Err(); err != nil {
//	    return err
//	}
package report
