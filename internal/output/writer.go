package output

import (
	"fmt"
	"io"
	"os"
	"sync"
)

// Writer handles streaming report lines to a file or io.Writer. Lines are
// written as they arrive; the full report is never held in memory.
type Writer struct {
	mu         sync.Mutex
	output     io.Writer
	terminator string
	count      int
	closeFunc  func() error
}

// NewWriter creates a line writer that writes to the specified output.
// An empty terminator defaults to "\n".
func NewWriter(w io.Writer, terminator string) *Writer {
	if terminator == "" {
		terminator = "\n"
	}
	return &Writer{
		output:     w,
		terminator: terminator,
	}
}

// NewFileWriter creates a line writer that writes to a file.
// The caller must call Close() when done to ensure the file is properly closed.
func NewFileWriter(filename, terminator string) (*Writer, error) {
	file, err := os.Create(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to create output file: %w", err)
	}

	w := NewWriter(file, terminator)
	w.closeFunc = file.Close
	return w, nil
}

// WriteLine writes a single line followed by the terminator.
// Each line is immediately flushed to the output.
func (w *Writer) WriteLine(line string) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if _, err := io.WriteString(w.output, line); err != nil {
		return fmt.Errorf("failed to write line: %w", err)
	}
	if _, err := io.WriteString(w.output, w.terminator); err != nil {
		return fmt.Errorf("failed to write line terminator: %w", err)
	}

	w.count++
	return nil
}

// Count returns the number of lines written.
func (w *Writer) Count() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.count
}

// Close closes the underlying writer if it's a file. Close is idempotent;
// calls after the first are no-ops.
func (w *Writer) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closeFunc != nil {
		fn := w.closeFunc
		w.closeFunc = nil
		return fn()
	}
	return nil
}
