package hostfuncs

import (
	"bytes"
	"sync"
)

// DefaultMaxOutputSize is the default cap on captured script console output (10MB).
const DefaultMaxOutputSize = 10 * 1024 * 1024

// BoundedBuffer is a bytes.Buffer wrapper that limits the size of written data.
// It implements io.Writer and is meant as the target of ConsoleBundle when
// script output is captured. Writes are serialized.
type BoundedBuffer struct {
	buffer    bytes.Buffer
	mu        sync.Mutex
	limit     int
	truncated bool
}

// NewBoundedBuffer creates a new BoundedBuffer with the specified limit.
// A non-positive limit uses DefaultMaxOutputSize.
func NewBoundedBuffer(limit int) *BoundedBuffer {
	if limit <= 0 {
		limit = DefaultMaxOutputSize
	}
	return &BoundedBuffer{limit: limit}
}

// Write implements io.Writer.
// It writes data up to the limit and then silently discards any additional data.
func (b *BoundedBuffer) Write(p []byte) (n int, err error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	remaining := b.limit - b.buffer.Len()
	if remaining <= 0 {
		b.truncated = len(p) > 0 || b.truncated
		return len(p), nil // Pretend we wrote it all to satisfy io.Writer contract
	}

	if len(p) > remaining {
		b.truncated = true
		if _, err = b.buffer.Write(p[:remaining]); err != nil {
			return 0, err
		}
		return len(p), nil
	}

	return b.buffer.Write(p)
}

// Truncated reports whether any written data was discarded.
func (b *BoundedBuffer) Truncated() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.truncated
}

// String returns the buffer contents as a string.
func (b *BoundedBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buffer.String()
}

// Len returns the current length of the buffer.
func (b *BoundedBuffer) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buffer.Len()
}

// Reset clears the buffer and the truncation flag.
func (b *BoundedBuffer) Reset() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.buffer.Reset()
	b.truncated = false
}
