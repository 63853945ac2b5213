package testhelpers

import (
	"io"
	"strings"
	"sync"
	"testing"
)

// Writer implements io.Writer and writes to t.Log so that logs are only shown for failed tests.
// Writes arriving after the test finished are dropped; concurrent plan builds in tests may still be logging
// when t.Cleanup runs.
type Writer struct {
	t    testing.TB
	mu   sync.Mutex
	done bool
}

// NewWriter creates a new Writer that writes to t.Log.
func NewWriter(t testing.TB) io.Writer {
	w := &Writer{t: t, mu: sync.Mutex{}, done: false}
	t.Cleanup(func() {
		w.mu.Lock()
		w.done = true
		w.mu.Unlock()
	})
	return w
}

// Write implements io.Writer by writing to t.Log.
func (w *Writer) Write(p []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.done {
		return len(p), nil
	}
	// Remove trailing newlines to avoid double-spacing in test output.
	output := strings.TrimSuffix(string(p), "\n")
	if output != "" {
		w.t.Log(output)
	}
	return len(p), nil
}
