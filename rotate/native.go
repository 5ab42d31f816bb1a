package rotate

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sync"
)

// NativeOpener opens NativeWriters.
type NativeOpener struct{}

// Open opens FileName(pattern, 0) as the active file. The directory must
// already exist.
func (NativeOpener) Open(pattern string, policy Policy) (Writer, error) {
	path := FileName(pattern, 0)

	flags := os.O_CREATE | os.O_WRONLY
	if policy.Append {
		flags |= os.O_APPEND
	} else {
		flags |= os.O_TRUNC
	}

	file, err := os.OpenFile(path, flags, 0644)
	if err != nil {
		return nil, err
	}

	info, err := file.Stat()
	if err != nil {
		closeErr := file.Close()
		if closeErr != nil {
			return nil, closeErr
		}
		return nil, err
	}

	return &NativeWriter{
		pattern: pattern,
		policy:  policy,
		file:    file,
		size:    info.Size(),
	}, nil
}

// NativeWriter is a size-rotating file writer with index-numbered backups:
// the active file is index 0 and rotation shifts index i to i+1, dropping
// anything beyond MaxBackups.
type NativeWriter struct {
	mu      sync.Mutex
	pattern string
	policy  Policy
	file    *os.File
	size    int64
	closed  bool
}

// Path returns the name of the active file.
func (w *NativeWriter) Path() string {
	return FileName(w.pattern, 0)
}

// Write writes p to the active file, rotating first when p would push the
// file past MaxSize. A record larger than MaxSize still lands in a fresh file.
func (w *NativeWriter) Write(p []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return 0, ErrClosed
	}

	if w.policy.MaxSize > 0 && w.size > 0 && w.size+int64(len(p)) > w.policy.MaxSize {
		if err := w.rotate(); err != nil {
			return 0, err
		}
	}

	n, err := w.file.Write(p)
	w.size += int64(n)
	return n, err
}

// Rotate forces a rotation regardless of the current size.
func (w *NativeWriter) Rotate() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return ErrClosed
	}
	return w.rotate()
}

func (w *NativeWriter) rotate() error {
	if err := w.file.Sync(); err != nil {
		return err
	}
	if err := w.file.Close(); err != nil {
		return err
	}

	active := FileName(w.pattern, 0)
	if err := w.shiftBackups(); err != nil {
		// Shift failed: reopen the active file and keep appending.
		file, openErr := os.OpenFile(active, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if openErr != nil {
			return fmt.Errorf("rotation failed: %v, reopen failed: %w", err, openErr)
		}
		w.file = file
		return err
	}

	file, err := os.OpenFile(active, os.O_CREATE|os.O_WRONLY|os.O_TRUNC|os.O_APPEND, 0644)
	if err != nil {
		w.closed = true
		return err
	}

	w.file = file
	w.size = 0
	return nil
}

// shiftBackups renames index i to i+1 from the oldest kept backup down to
// the active file. With no backups the active file is simply discarded.
func (w *NativeWriter) shiftBackups() error {
	if w.policy.MaxBackups <= 0 {
		return removeIfExists(FileName(w.pattern, 0))
	}

	if err := removeIfExists(FileName(w.pattern, w.policy.MaxBackups)); err != nil {
		return err
	}
	for i := w.policy.MaxBackups; i >= 1; i-- {
		src := FileName(w.pattern, i-1)
		dst := FileName(w.pattern, i)
		if err := os.Rename(src, dst); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return err
		}
	}
	return nil
}

// Close syncs and closes the active file. Closing twice returns ErrClosed.
func (w *NativeWriter) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return ErrClosed
	}
	w.closed = true

	if syncErr := w.file.Sync(); syncErr != nil {
		w.file.Close()
		return syncErr
	}
	return w.file.Close()
}

func removeIfExists(path string) error {
	if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}
