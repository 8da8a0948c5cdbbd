package rjson

// Buffer is the growable output buffer behind one encode call. Growth is
// geometric so amortized append cost stays constant. A Buffer is owned by
// exactly one encode operation at a time; see pool.go for reuse.
type Buffer struct {
	buf []byte
}

const minBufferCap = 64

// NewBuffer returns a buffer with at least the given capacity.
func NewBuffer(capacity int) *Buffer {
	if capacity < minBufferCap {
		capacity = minBufferCap
	}
	return &Buffer{buf: make([]byte, 0, capacity)}
}

// Len returns the number of bytes written so far.
func (b *Buffer) Len() int { return len(b.buf) }

// Cap returns the current capacity.
func (b *Buffer) Cap() int { return cap(b.buf) }

// Reset truncates the buffer, keeping its backing array.
func (b *Buffer) Reset() { b.buf = b.buf[:0] }

// Grow ensures room for n more bytes, at least doubling the backing array
// when it must reallocate.
func (b *Buffer) Grow(n int) {
	need := len(b.buf) + n
	if need <= cap(b.buf) {
		return
	}
	newCap := cap(b.buf) * 2
	if newCap < need {
		newCap = need
	}
	if newCap < minBufferCap {
		newCap = minBufferCap
	}
	next := make([]byte, len(b.buf), newCap)
	copy(next, b.buf)
	b.buf = next
}

// Bytes transfers the accumulated bytes to the caller without copying.
// After Bytes the buffer must not be written to or returned to a pool;
// ownership of the backing array has moved out.
func (b *Buffer) Bytes() []byte {
	out := b.buf
	b.buf = nil
	return out
}

// String copies the accumulated bytes into an owned string, leaving the
// buffer reusable.
func (b *Buffer) String() string {
	return string(b.buf)
}
