package rjson

import (
	"sync"
	"sync/atomic"
)

// Size-stratified buffer pool for encode scratch space. Buffers are kept
// in three classes so a burst of tiny encodes does not pin large arrays,
// and anything above maxPooledCap is left for the garbage collector.
const (
	smallBufferCap  = 1 << 10 // 1 KiB
	mediumBufferCap = 1 << 16 // 64 KiB
	maxPooledCap    = 1 << 20 // 1 MiB
)

type bufferPool struct {
	small  sync.Pool
	medium sync.Pool
	large  sync.Pool

	hits   atomic.Uint64
	misses atomic.Uint64
}

var encodeBuffers bufferPool

func (p *bufferPool) class(capacity int) *sync.Pool {
	switch {
	case capacity < smallBufferCap:
		return &p.small
	case capacity < mediumBufferCap:
		return &p.medium
	default:
		return &p.large
	}
}

// acquire returns a reset buffer with at least the hinted capacity,
// reusing a pooled one when available.
func (p *bufferPool) acquire(capHint int) *Buffer {
	if b, ok := p.class(capHint).Get().(*Buffer); ok && b != nil {
		p.hits.Add(1)
		b.Reset()
		return b
	}
	p.misses.Add(1)
	return NewBuffer(capHint)
}

// release returns a buffer to its size class. Buffers whose backing array
// was transferred out, and buffers beyond the pooling cap, are dropped.
func (p *bufferPool) release(b *Buffer) {
	if b == nil || b.buf == nil || b.Cap() > maxPooledCap {
		return
	}
	p.class(b.Cap()).Put(b)
}

// PoolStats is a snapshot of the encode buffer pool counters.
type PoolStats struct {
	Hits   uint64
	Misses uint64
}

// BufferPoolStats reports how often encode calls reused a pooled buffer
// versus allocating a fresh one.
func BufferPoolStats() PoolStats {
	return PoolStats{
		Hits:   encodeBuffers.hits.Load(),
		Misses: encodeBuffers.misses.Load(),
	}
}
