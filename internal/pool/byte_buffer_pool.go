// Package pool provides pooled byte buffers for building strings and encoded
// streams.
package pool

import (
	"encoding/binary"
	"sync"
	"unicode/utf8"
)

const (
	TextBufferDefaultSize    = 256       // initial capacity for string builders
	TextBufferMaxThreshold   = 64 * 1024 // larger text buffers are not pooled
	StreamBufferDefaultSize  = 16 * 1024 // initial capacity for stream encoders
	StreamBufferMaxThreshold = 1024 * 1024
)

// ByteBuffer is a growable byte slice. Callers validate what they append, the
// buffer only stores bytes.
type ByteBuffer struct {
	// B is the underlying byte slice.
	B []byte
}

// NewByteBuffer creates a ByteBuffer with the given capacity.
func NewByteBuffer(capacity int) *ByteBuffer {
	return &ByteBuffer{B: make([]byte, 0, capacity)}
}

// Bytes returns the accumulated bytes. The slice aliases the buffer.
func (bb *ByteBuffer) Bytes() []byte {
	return bb.B
}

// Reset empties the buffer and keeps its capacity.
func (bb *ByteBuffer) Reset() {
	bb.B = bb.B[:0]
}

func (bb *ByteBuffer) Len() int {
	return len(bb.B)
}

func (bb *ByteBuffer) Cap() int {
	return cap(bb.B)
}

// Append appends raw bytes.
func (bb *ByteBuffer) Append(p []byte) {
	bb.B = append(bb.B, p...)
}

// AppendString appends the bytes of s.
func (bb *ByteBuffer) AppendString(s string) {
	bb.B = append(bb.B, s...)
}

// AppendRune appends the UTF-8 encoding of r.
func (bb *ByteBuffer) AppendRune(r rune) {
	bb.B = utf8.AppendRune(bb.B, r)
}

// AppendUvarint appends v as an unsigned LEB128 varint.
func (bb *ByteBuffer) AppendUvarint(v uint64) {
	bb.B = binary.AppendUvarint(bb.B, v)
}

// Grow makes room for n more bytes.
//
// Buffers below StreamBufferDefaultSize at least double. Larger ones grow by a
// quarter of their capacity, or by n when that is more.
func (bb *ByteBuffer) Grow(n int) {
	if cap(bb.B)-len(bb.B) >= n {
		return
	}

	extra := max(cap(bb.B), TextBufferDefaultSize)
	if cap(bb.B) > StreamBufferDefaultSize {
		extra = cap(bb.B) / 4
	}
	extra = max(extra, n)

	grown := make([]byte, len(bb.B), len(bb.B)+extra)
	copy(grown, bb.B)
	bb.B = grown
}

// ByteBufferPool recycles ByteBuffers. Buffers that grew past maxCap are dropped
// on Put.
type ByteBufferPool struct {
	pool   sync.Pool
	maxCap int
}

// NewByteBufferPool creates a pool of buffers with initial capacity size. A maxCap
// of zero pools buffers of any size.
func NewByteBufferPool(size, maxCap int) *ByteBufferPool {
	return &ByteBufferPool{
		pool:   sync.Pool{New: func() any { return NewByteBuffer(size) }},
		maxCap: maxCap,
	}
}

// Get returns an empty buffer.
func (p *ByteBufferPool) Get() *ByteBuffer {
	bb, _ := p.pool.Get().(*ByteBuffer)
	return bb
}

// Put resets bb and returns it to the pool. Nil buffers are ignored.
func (p *ByteBufferPool) Put(bb *ByteBuffer) {
	if bb == nil || (p.maxCap > 0 && cap(bb.B) > p.maxCap) {
		return
	}
	bb.Reset()
	p.pool.Put(bb)
}

var (
	textPool   = NewByteBufferPool(TextBufferDefaultSize, TextBufferMaxThreshold)
	streamPool = NewByteBufferPool(StreamBufferDefaultSize, StreamBufferMaxThreshold)
)

// GetTextBuffer returns a buffer for building a single string.
func GetTextBuffer() *ByteBuffer { return textPool.Get() }

// PutTextBuffer recycles a buffer from GetTextBuffer.
func PutTextBuffer(bb *ByteBuffer) { textPool.Put(bb) }

// GetStreamBuffer returns a buffer for encoding a stream of strings.
func GetStreamBuffer() *ByteBuffer { return streamPool.Get() }

// PutStreamBuffer recycles a buffer from GetStreamBuffer.
func PutStreamBuffer(bb *ByteBuffer) { streamPool.Put(bb) }
