package ustr

import "github.com/arloliu/unistr/internal/pool"

// Builder assembles a String from many pieces without re-copying the accumulated
// text on every append.
//
// The zero value is ready to use. Every write is validated, so the built String
// always satisfies the same invariants as one produced by New. Call Release when done
// to return the internal buffer to the pool.
//
// Note: Builder is NOT thread-safe.
type Builder struct {
	buf    *pool.ByteBuffer
	length int
}

// NewBuilder returns a Builder with room for at least sizeHint bytes.
func NewBuilder(sizeHint int) *Builder {
	b := &Builder{buf: pool.GetTextBuffer()}
	b.buf.Grow(sizeHint)

	return b
}

func (b *Builder) ensure() {
	if b.buf == nil {
		b.buf = pool.GetTextBuffer()
	}
}

// WriteString appends s. It cannot fail.
func (b *Builder) WriteString(s String) {
	if s.data == "" {
		return
	}
	b.ensure()
	b.buf.AppendString(s.data)
	b.length += s.length
}

// WriteRune appends the UTF-8 encoding of r.
//
// Returns:
//   - error: *errs.DataError if r is not a Unicode scalar value
func (b *Builder) WriteRune(r rune) error {
	if !isScalar(r) {
		return codepointError(b.ByteLen(), r)
	}
	b.ensure()
	b.buf.AppendRune(r)
	b.length++

	return nil
}

// WriteBytes validates p as UTF-8 and appends it.
//
// On failure nothing is appended and the error offset is relative to p.
func (b *Builder) WriteBytes(p []byte) error {
	return b.WriteText(string(p))
}

// WriteText validates the Go string t as UTF-8 and appends it.
func (b *Builder) WriteText(t string) error {
	n, err := validate(t)
	if err != nil {
		return err
	}
	if t == "" {
		return nil
	}
	b.ensure()
	b.buf.AppendString(t)
	b.length += n

	return nil
}

// Len returns the number of codepoints written.
func (b *Builder) Len() int {
	return b.length
}

// ByteLen returns the number of bytes written.
func (b *Builder) ByteLen() int {
	if b.buf == nil {
		return 0
	}

	return b.buf.Len()
}

// String returns the accumulated text. The Builder remains usable and later writes
// do not affect the returned value.
func (b *Builder) String() String {
	if b.buf == nil || b.buf.Len() == 0 {
		return String{}
	}

	return fromValid(string(b.buf.Bytes()), b.length)
}

// Reset discards the accumulated text and keeps the buffer.
func (b *Builder) Reset() {
	if b.buf != nil {
		b.buf.Reset()
	}
	b.length = 0
}

// Release returns the buffer to the pool. The Builder may be reused afterwards and
// will acquire a new buffer on the next write.
func (b *Builder) Release() {
	if b.buf != nil {
		pool.PutTextBuffer(b.buf)
		b.buf = nil
	}
	b.length = 0
}
