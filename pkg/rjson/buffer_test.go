package rjson

import (
	"bytes"
	"testing"
)

func TestBufferGrowth(t *testing.T) {
	b := NewBuffer(0)
	if b.Cap() < minBufferCap {
		t.Errorf("Cap() = %d, want at least %d", b.Cap(), minBufferCap)
	}
	prevCap := b.Cap()
	for i := 0; i < 4096; i++ {
		b.Grow(1)
		b.buf = append(b.buf, byte('a'+i%26))
		// geometric growth: capacity never increases by less than double
		if c := b.Cap(); c != prevCap {
			if c < prevCap*2 {
				t.Fatalf("capacity grew %d -> %d, want at least double", prevCap, c)
			}
			prevCap = c
		}
	}
	if b.Len() != 4096 {
		t.Errorf("Len() = %d, want 4096", b.Len())
	}
}

func TestBufferBytesTransfersOwnership(t *testing.T) {
	b := NewBuffer(16)
	b.buf = append(b.buf, "payload"...)
	out := b.Bytes()
	if !bytes.Equal(out, []byte("payload")) {
		t.Errorf("Bytes() = %q, want payload", out)
	}
	if b.buf != nil {
		t.Error("buffer retained its backing array after Bytes()")
	}
	// the caller may mutate freely now
	out[0] = 'P'
}

func TestBufferStringCopies(t *testing.T) {
	b := NewBuffer(16)
	b.buf = append(b.buf, "abc"...)
	s := b.String()
	b.buf[0] = 'x'
	if s != "abc" {
		t.Errorf("String() = %q after buffer mutation, want abc", s)
	}
}

func TestBufferReset(t *testing.T) {
	b := NewBuffer(16)
	b.buf = append(b.buf, "abc"...)
	c := b.Cap()
	b.Reset()
	if b.Len() != 0 {
		t.Errorf("Len() = %d after Reset, want 0", b.Len())
	}
	if b.Cap() != c {
		t.Errorf("Cap() = %d after Reset, want %d", b.Cap(), c)
	}
}

func TestBufferPoolReuse(t *testing.T) {
	var p bufferPool

	b1 := p.acquire(128)
	if got := p.misses.Load(); got != 1 {
		t.Fatalf("misses = %d after first acquire, want 1", got)
	}
	p.release(b1)
	b2 := p.acquire(128)
	if got := p.hits.Load(); got != 1 {
		// sync.Pool may drop entries under GC pressure, but not in a
		// tight acquire/release pair on one goroutine
		t.Fatalf("hits = %d after release+acquire, want 1", got)
	}
	if b2.Len() != 0 {
		t.Errorf("reacquired buffer Len() = %d, want 0", b2.Len())
	}
}

func TestBufferPoolSkipsTransferredBuffers(t *testing.T) {
	var p bufferPool
	b := p.acquire(128)
	b.buf = append(b.buf, "data"...)
	_ = b.Bytes()
	p.release(b) // no-op: backing array is gone
	b2 := p.acquire(128)
	if b2.buf == nil {
		t.Error("acquire returned a buffer with no backing array")
	}
}

func TestBufferPoolStats(t *testing.T) {
	before := BufferPoolStats()
	if _, err := Encode(StringValue("stats probe")); err != nil {
		t.Fatalf("Encode() error: %v", err)
	}
	after := BufferPoolStats()
	if after.Hits+after.Misses <= before.Hits+before.Misses {
		t.Error("encode did not touch the buffer pool counters")
	}
}
