// Package rotatetest provides an in-memory rotate.Opener for tests that
// exercise handler construction without touching the filesystem.
package rotatetest

import (
	"bytes"
	"sync"

	"github.com/philipp01105/csplog/rotate"
)

// OpenCall records one call to MemoryOpener.Open.
type OpenCall struct {
	Pattern string
	Policy  rotate.Policy
}

// MemoryOpener hands out MemoryWriters keyed by the active file name.
// When Err is set every Open fails with it.
type MemoryOpener struct {
	Err error

	mu      sync.Mutex
	calls   []OpenCall
	writers map[string]*MemoryWriter
}

// NewMemoryOpener creates an empty MemoryOpener.
func NewMemoryOpener() *MemoryOpener {
	return &MemoryOpener{writers: make(map[string]*MemoryWriter)}
}

// Open implements rotate.Opener.
func (o *MemoryOpener) Open(pattern string, policy rotate.Policy) (rotate.Writer, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	o.calls = append(o.calls, OpenCall{Pattern: pattern, Policy: policy})
	if o.Err != nil {
		return nil, o.Err
	}

	name := rotate.FileName(pattern, 0)
	w := &MemoryWriter{name: name}
	if prev, ok := o.writers[name]; ok && policy.Append {
		w.buf.Write(prev.Bytes())
	}
	o.writers[name] = w
	return w, nil
}

// Calls returns the recorded Open calls in order.
func (o *MemoryOpener) Calls() []OpenCall {
	o.mu.Lock()
	defer o.mu.Unlock()
	return append([]OpenCall(nil), o.calls...)
}

// Writer returns the last writer opened for the active file name.
func (o *MemoryOpener) Writer(name string) (*MemoryWriter, bool) {
	o.mu.Lock()
	defer o.mu.Unlock()
	w, ok := o.writers[name]
	return w, ok
}

// MemoryWriter is a rotate.Writer that keeps everything in memory.
type MemoryWriter struct {
	mu     sync.Mutex
	name   string
	buf    bytes.Buffer
	closed bool
}

// Name returns the active file name the writer stands for.
func (w *MemoryWriter) Name() string {
	return w.name
}

// Write appends p unless the writer is closed.
func (w *MemoryWriter) Write(p []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return 0, rotate.ErrClosed
	}
	return w.buf.Write(p)
}

// Close marks the writer closed.
func (w *MemoryWriter) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return rotate.ErrClosed
	}
	w.closed = true
	return nil
}

// Closed reports whether Close was called.
func (w *MemoryWriter) Closed() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.closed
}

// Bytes returns a copy of everything written so far.
func (w *MemoryWriter) Bytes() []byte {
	w.mu.Lock()
	defer w.mu.Unlock()
	return append([]byte(nil), w.buf.Bytes()...)
}

// String returns everything written so far.
func (w *MemoryWriter) String() string {
	return string(w.Bytes())
}
