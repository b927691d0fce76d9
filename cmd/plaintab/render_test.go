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

package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	pterrors "github.com/plaintabhq/plaintab/internal/errors"
)

func TestParseDelimiter(t *testing.T) {
	tests := []struct {
		input   string
		want    rune
		wantErr bool
	}{
		{input: "", want: '\t'},
		{input: "tab", want: '\t'},
		{input: "\\t", want: '\t'},
		{input: "\t", want: '\t'},
		{input: "space", want: ' '},
		{input: "comma", want: ','},
		{input: "semicolon", want: ';'},
		{input: "pipe", want: '|'},
		{input: "|", want: '|'},
		{input: ":", want: ':'},
		{input: "§", want: '§'},
		{input: "\n", wantErr: true},
		{input: "ab", wantErr: true},
		{input: "delimiter", wantErr: true},
	}

	for _, tt := range tests {
		got, err := parseDelimiter(tt.input)
		if (err != nil) != tt.wantErr {
			t.Errorf("parseDelimiter(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			continue
		}
		if tt.wantErr {
			if !errors.Is(err, pterrors.ErrInvalidConfig) {
				t.Errorf("parseDelimiter(%q) error = %v, want ErrInvalidConfig", tt.input, err)
			}
			continue
		}
		if got != tt.want {
			t.Errorf("parseDelimiter(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestMapErrorToExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "nil error", err: nil, want: 0},
		{name: "generic error", err: errors.New("something broke"), want: 1},
		{name: "invalid config", err: pterrors.ErrInvalidConfig, want: 2},
		{name: "unknown encoding", err: pterrors.ErrUnknownEncoding, want: 2},
		{name: "decode failure", err: pterrors.ErrDecodeFailure, want: 3},
		{name: "empty input", err: pterrors.ErrEmptyInput, want: 4},
		{name: "input too large", err: pterrors.ErrInputTooLarge, want: 4},
		{
			name: "wrapped invalid config",
			err:  fmt.Errorf("batch size must be positive: %w", pterrors.ErrInvalidConfig),
			want: 2,
		},
		{
			name: "wrapped decode failure",
			err:  fmt.Errorf("at byte 42: %w", pterrors.ErrDecodeFailure),
			want: 3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := mapErrorToExitCode(tt.err); got != tt.want {
				t.Errorf("mapErrorToExitCode(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}

func TestOpenInputFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.csv")
	if err := os.WriteFile(path, []byte("a,b\n1,2\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	r, name, err := openInput(path, 0)
	if err != nil {
		t.Fatalf("openInput() error = %v", err)
	}
	defer r.Close()

	if name != path {
		t.Errorf("input name = %q, want %q", name, path)
	}
}

func TestOpenInputMissingFile(t *testing.T) {
	_, _, err := openInput(filepath.Join(t.TempDir(), "absent.csv"), 0)
	if err == nil {
		t.Fatal("openInput() should fail for a missing file")
	}
}

func TestOpenInputFileTooLarge(t *testing.T) {
	path := filepath.Join(t.TempDir(), "big.csv")
	if err := os.WriteFile(path, []byte("a,b\n1,2\n3,4\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	_, _, err := openInput(path, 4)
	if !errors.Is(err, pterrors.ErrInputTooLarge) {
		t.Errorf("openInput() error = %v, want ErrInputTooLarge", err)
	}
}

func TestOpenInputFileWithinLimit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "small.csv")
	content := []byte("a,b\n1,2\n")
	if err := os.WriteFile(path, content, 0o644); err != nil {
		t.Fatal(err)
	}

	r, _, err := openInput(path, int64(len(content)))
	if err != nil {
		t.Fatalf("openInput() error = %v for input exactly at the limit", err)
	}
	r.Close()
}

func TestOpenInputStdin(t *testing.T) {
	r, name, err := openInput("-", 1024)
	if err != nil {
		t.Fatalf("openInput(-) error = %v", err)
	}
	defer r.Close()

	if name != "stdin" {
		t.Errorf("input name = %q, want %q", name, "stdin")
	}
}
