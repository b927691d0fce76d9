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

package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestSentinelErrors(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		sentinel error
		want     bool
	}{
		{
			name:     "direct empty input error",
			err:      ErrEmptyInput,
			sentinel: ErrEmptyInput,
			want:     true,
		},
		{
			name:     "wrapped decode failure",
			err:      fmt.Errorf("reading input: %w", ErrDecodeFailure),
			sentinel: ErrDecodeFailure,
			want:     true,
		},
		{
			name:     "wrapped invalid config",
			err:      fmt.Errorf("batch size must be positive: %w", ErrInvalidConfig),
			sentinel: ErrInvalidConfig,
			want:     true,
		},
		{
			name:     "different error type",
			err:      ErrEmptyInput,
			sentinel: ErrDecodeFailure,
			want:     false,
		},
		{
			name:     "nil error",
			err:      nil,
			sentinel: ErrEmptyInput,
			want:     false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := errors.Is(tt.err, tt.sentinel)
			if got != tt.want {
				t.Errorf("errors.Is(%v, %v) = %v, want %v", tt.err, tt.sentinel, got, tt.want)
			}
		})
	}
}

func TestErrorMessages(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{ErrInvalidConfig, "invalid configuration"},
		{ErrUnknownEncoding, "unknown input encoding"},
		{ErrDecodeFailure, "input could not be decoded"},
		{ErrEmptyInput, "input contains no data rows"},
		{ErrInputTooLarge, "input exceeds maximum allowed size"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}
