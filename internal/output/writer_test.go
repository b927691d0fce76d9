package output

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNewWriter(t *testing.T) {
	var buf bytes.Buffer
	writer := NewWriter(&buf, "\n")

	if writer == nil {
		t.Fatal("NewWriter returned nil")
	}
	if writer.output != &buf {
		t.Error("Writer output doesn't match provided buffer")
	}
	if writer.count != 0 {
		t.Errorf("Initial count should be 0, got %d", writer.count)
	}
}

func TestWriter_WriteLine(t *testing.T) {
	tests := []struct {
		name       string
		terminator string
		lines      []string
		want       string
	}{
		{
			name:       "single line",
			terminator: "\n",
			lines:      []string{"name           |age            "},
			want:       "name           |age            \n",
		},
		{
			name:       "multiple lines",
			terminator: "\n",
			lines:      []string{"first", "second", "third"},
			want:       "first\nsecond\nthird\n",
		},
		{
			name:       "crlf terminator",
			terminator: "\r\n",
			lines:      []string{"a", "b"},
			want:       "a\r\nb\r\n",
		},
		{
			name:       "empty terminator defaults to newline",
			terminator: "",
			lines:      []string{"x"},
			want:       "x\n",
		},
		{
			name:       "no lines",
			terminator: "\n",
			lines:      nil,
			want:       "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			writer := NewWriter(&buf, tt.terminator)

			for _, line := range tt.lines {
				if err := writer.WriteLine(line); err != nil {
					t.Fatalf("WriteLine failed: %v", err)
				}
			}

			if got := buf.String(); got != tt.want {
				t.Errorf("output = %q, want %q", got, tt.want)
			}
			if writer.Count() != len(tt.lines) {
				t.Errorf("Count = %d, want %d", writer.Count(), len(tt.lines))
			}
		})
	}
}

func TestNewFileWriter(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.txt")

	writer, err := NewFileWriter(path, "\n")
	if err != nil {
		t.Fatalf("NewFileWriter failed: %v", err)
	}

	lines := []string{"header line", "record line"}
	for _, line := range lines {
		if err := writer.WriteLine(line); err != nil {
			t.Fatalf("WriteLine failed: %v", err)
		}
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
	if err := writer.Close(); err != nil {
		t.Errorf("second Close returned %v, want nil", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	want := strings.Join(lines, "\n") + "\n"
	if string(data) != want {
		t.Errorf("file contents = %q, want %q", data, want)
	}
}

func TestNewFileWriterBadPath(t *testing.T) {
	_, err := NewFileWriter(filepath.Join(t.TempDir(), "missing", "report.txt"), "\n")
	if err == nil {
		t.Fatal("expected error for unwritable path")
	}
}

func TestWriterCloseWithoutFile(t *testing.T) {
	var buf bytes.Buffer
	writer := NewWriter(&buf, "\n")
	if err := writer.Close(); err != nil {
		t.Errorf("Close on non-file writer returned %v", err)
	}
}
