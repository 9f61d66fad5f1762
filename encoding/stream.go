package encoding

import "iter"

// StreamEncoder appends values of type T to an in-memory stream.
type StreamEncoder[T any] interface {
	// Bytes returns the encoded stream. The slice is only valid until the next write
	// or Reset.
	Bytes() []byte

	// Len returns the number of values written.
	Len() int

	// Size returns the number of bytes written.
	Size() int

	// Reset clears the encoder and releases its buffer.
	Reset()

	// Write encodes a single value.
	Write(value T)

	// WriteSlice encodes values in order.
	WriteSlice(values []T)
}

// StreamDecoder reads values of type T back from a stream.
type StreamDecoder[T any] interface {
	// Next decodes the next value. It returns io.EOF once the stream is exhausted.
	Next() (T, error)

	// All iterates the remaining values. Iteration stops after the first error.
	All() iter.Seq2[T, error]

	// Remaining returns the number of undecoded bytes.
	Remaining() int
}
