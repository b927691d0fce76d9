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

// Package main implements the plaintab command-line interface.
// This tool reformats delimited tabular data (CSV, TSV, and similar)
// into aligned plain-text reports with wrapped cell content.
//
// The CLI supports:
//   - Automatic input delimiter detection with a comma fallback
//   - Configurable output delimiter, batch size, and column width bounds
//   - Input decoding from any IANA-registered character encoding
//   - Customizable output destinations (stdout or file)
//   - Optional JSON metadata records for each render
//   - Graceful error handling with appropriate exit codes
//
// Usage:
//
//	plaintab render <input> [flags]
//
// Example:
//
//	plaintab render data.csv --delimiter pipe --output report.txt
//	cat data.tsv | plaintab render - --encoding latin-1
//
// Exit codes:
//   - 0: Success
//   - 1: General error
//   - 2: Configuration error (invalid flags, unknown encoding)
//   - 3: Input decoding failure
//   - 4: Input rejected (empty or over the size limit)
package main
