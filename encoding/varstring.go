package encoding

import (
	"encoding/binary"
	"fmt"
	"io"
	"iter"

	"github.com/arloliu/unistr/endian"
	"github.com/arloliu/unistr/errs"
	"github.com/arloliu/unistr/format"
	"github.com/arloliu/unistr/internal/pool"
	"github.com/arloliu/unistr/ustr"
)

// MaxStringBytes is the largest encoded string the decoder accepts.
const MaxStringBytes = 1<<31 - 1

var (
	_ StreamEncoder[ustr.String] = (*StringEncoder)(nil)
	_ StreamDecoder[ustr.String] = (*StringDecoder)(nil)
)

// StringEncoder encodes Strings with a uvarint byte length prefix.
//
// Each string is encoded as:
//   - uvarint: encoded length in bytes
//   - N bytes: code units in the stream's text encoding
//
// Note: The StringEncoder is NOT thread-safe.
type StringEncoder struct {
	buf     *pool.ByteBuffer
	engine  endian.EndianEngine
	enc     format.TextEncoding
	scratch []byte
	count   int
}

// NewStringEncoder creates a stream encoder for the given text encoding.
//
// The encoder uses a pooled byte buffer with an amortized growth strategy. Call
// Reset when done to return the buffer to the pool.
//
// Parameters:
//   - enc: Text encoding of the stream
//   - engine: Byte order for UTF-16 and UTF-32 code units (ignored for UTF-8)
//
// Returns:
//   - *StringEncoder: A new encoder
//   - error: errs.ErrValue if enc is not a known text encoding
func NewStringEncoder(enc format.TextEncoding, engine endian.EndianEngine) (*StringEncoder, error) {
	if !enc.IsValid() {
		return nil, fmt.Errorf("%w: unknown text encoding %d", errs.ErrValue, enc)
	}

	return &StringEncoder{
		buf:    pool.GetStreamBuffer(),
		engine: engine,
		enc:    enc,
	}, nil
}

// Encoding returns the text encoding of the stream.
func (e *StringEncoder) Encoding() format.TextEncoding {
	return e.enc
}

// Write encodes a single String.
func (e *StringEncoder) Write(s ustr.String) {
	e.ensure()
	n := s.EncodedLen(e.enc)
	e.buf.Grow(binary.MaxVarintLen64 + n)
	e.WriteUvarint(uint64(n))

	if e.enc == format.EncodingUTF8 {
		e.buf.AppendString(s.String())
	} else {
		// enc was validated in the constructor
		e.scratch, _ = s.AppendEncoded(e.scratch[:0], e.enc, e.engine)
		e.buf.Append(e.scratch)
	}
	e.count++
}

// WriteSlice encodes values with a single buffer growth.
func (e *StringEncoder) WriteSlice(values []ustr.String) {
	e.ensure()
	total := 0
	for _, s := range values {
		total += binary.MaxVarintLen32 + s.EncodedLen(e.enc)
	}
	e.buf.Grow(total)

	for _, s := range values {
		e.Write(s)
	}
}

// WriteUvarint appends v as an unsigned varint. It does not count as a string.
func (e *StringEncoder) WriteUvarint(v uint64) {
	e.ensure()
	e.buf.AppendUvarint(v)
}

// Bytes returns the encoded data.
//
// The returned slice shares the underlying buffer with the encoder.
// Do not modify the returned slice.
func (e *StringEncoder) Bytes() []byte {
	if e.buf == nil {
		return nil
	}

	return e.buf.Bytes()
}

// Len returns the number of strings encoded.
func (e *StringEncoder) Len() int {
	return e.count
}

// Size returns the total size of encoded data in bytes.
func (e *StringEncoder) Size() int {
	if e.buf == nil {
		return 0
	}

	return e.buf.Len()
}

// Reset clears the encoder state and returns the buffer to the pool.
//
// The encoder may be reused after Reset; it acquires a new buffer on the next write.
func (e *StringEncoder) Reset() {
	if e.buf != nil {
		pool.PutStreamBuffer(e.buf)
		e.buf = nil
	}
	e.count = 0
}

func (e *StringEncoder) ensure() {
	if e.buf == nil {
		e.buf = pool.GetStreamBuffer()
	}
}

// StringDecoder reads Strings written by StringEncoder.
//
// Every string is validated; decoding errors carry the stream offset of the
// failing string.
type StringDecoder struct {
	data   []byte
	engine endian.EndianEngine
	enc    format.TextEncoding
	offset int
}

// NewStringDecoder creates a decoder over data.
//
// Returns:
//   - *StringDecoder: A decoder positioned at the start of data
//   - error: errs.ErrValue if enc is not a known text encoding
func NewStringDecoder(data []byte, enc format.TextEncoding, engine endian.EndianEngine) (*StringDecoder, error) {
	if !enc.IsValid() {
		return nil, fmt.Errorf("%w: unknown text encoding %d", errs.ErrValue, enc)
	}

	return &StringDecoder{data: data, engine: engine, enc: enc}, nil
}

// ReadUvarint decodes an unsigned varint.
//
// Returns:
//   - uint64: The decoded value
//   - error: io.EOF at the end of the stream, errs.ErrInvalidPayload if the varint
//     is truncated or overflows
func (d *StringDecoder) ReadUvarint() (uint64, error) {
	if d.offset >= len(d.data) {
		return 0, io.EOF
	}

	v, n := binary.Uvarint(d.data[d.offset:])
	if n <= 0 {
		return 0, fmt.Errorf("%w: malformed varint at offset %d", errs.ErrInvalidPayload, d.offset)
	}
	d.offset += n

	return v, nil
}

// Next decodes the next String.
//
// Returns:
//   - ustr.String: The decoded string
//   - error: io.EOF when no data remains; errs.ErrInvalidPayload for a truncated
//     stream; a wrapped *errs.DataError for malformed text
func (d *StringDecoder) Next() (ustr.String, error) {
	start := d.offset
	n, err := d.ReadUvarint()
	if err != nil {
		return ustr.String{}, err
	}
	if avail := len(d.data) - d.offset; n > MaxStringBytes || int(n) > avail {
		d.offset = start
		return ustr.String{}, fmt.Errorf("%w: string at offset %d needs %d bytes, %d available",
			errs.ErrInvalidPayload, start, n, avail)
	}

	raw := d.data[d.offset : d.offset+int(n)]
	s, err := ustr.Decode(raw, d.enc, d.engine)
	if err != nil {
		d.offset = start
		return ustr.String{}, fmt.Errorf("string at offset %d: %w", start, err)
	}
	d.offset += int(n)

	return s, nil
}

// All iterates the remaining strings until the stream is exhausted.
//
// A decoding error is yielded once with a zero String and ends the iteration.
func (d *StringDecoder) All() iter.Seq2[ustr.String, error] {
	return func(yield func(ustr.String, error) bool) {
		for {
			s, err := d.Next()
			if err == io.EOF {
				return
			}
			if !yield(s, err) || err != nil {
				return
			}
		}
	}
}

// Remaining returns the number of undecoded bytes.
func (d *StringDecoder) Remaining() int {
	return len(d.data) - d.offset
}

// Offset returns the current read position.
func (d *StringDecoder) Offset() int {
	return d.offset
}
