package logging

import (
	"os"
	"path/filepath"
	"sync"
)

// RingBuffer is a fixed-size in-memory log sink that keeps the most recent
// bytes written to it.
type RingBuffer struct {
	mu   sync.Mutex
	buf  []byte
	pos  int
	full bool
}

// NewRingBuffer creates a ring buffer holding at most size bytes.
func NewRingBuffer(size int) *RingBuffer {
	return &RingBuffer{buf: make([]byte, max(1, size))}
}

// Write implements io.Writer. It never fails; old data is overwritten.
func (r *RingBuffer) Write(p []byte) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	n := len(p)
	if n >= len(r.buf) {
		copy(r.buf, p[n-len(r.buf):])
		r.pos = 0
		r.full = true
		return n, nil
	}

	written := copy(r.buf[r.pos:], p)
	if written < n {
		copy(r.buf, p[written:])
		r.full = true
	}
	r.pos = (r.pos + n) % len(r.buf)
	if r.pos == 0 && n > 0 {
		r.full = true
	}
	return n, nil
}

// Bytes returns the buffered data, oldest first.
func (r *RingBuffer) Bytes() []byte {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.full {
		return append([]byte(nil), r.buf[:r.pos]...)
	}
	out := make([]byte, 0, len(r.buf))
	out = append(out, r.buf[r.pos:]...)
	return append(out, r.buf[:r.pos]...)
}

// DumpToFile writes the buffered data to path, creating parent directories.
func (r *RingBuffer) DumpToFile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, r.Bytes(), 0o644)
}
