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

// Package errors defines sentinel errors for consistent error handling across the application.
// These errors map to specific exit codes in the CLI for proper scripting support.
package errors

import "errors"

// Sentinel errors for consistent error handling and exit code mapping
var (
	// ErrInvalidConfig indicates a configuration value is outside its
	// accepted range. Rejected before any input is read.
	// Maps to exit code 2.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrUnknownEncoding indicates the declared input encoding is not a
	// recognized character set name.
	// Maps to exit code 2.
	ErrUnknownEncoding = errors.New("unknown input encoding")

	// ErrDecodeFailure indicates the input byte stream could not be decoded
	// under the declared encoding. Any output already produced must be
	// treated as partial.
	// Maps to exit code 3.
	ErrDecodeFailure = errors.New("input could not be decoded")

	// ErrEmptyInput indicates the input contained no usable data rows
	// after the header.
	// Maps to exit code 4.
	ErrEmptyInput = errors.New("input contains no data rows")

	// ErrInputTooLarge indicates the input exceeded the configured
	// maximum size.
	// Maps to exit code 4.
	ErrInputTooLarge = errors.New("input exceeds maximum allowed size")
)
