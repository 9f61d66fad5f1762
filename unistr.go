// Package unistr provides a validated UTF-8 string value type and the pieces built
// on it: a binary container for string sequences, filesystem paths made of Unicode
// components and codepoint-width padding.
//
// # Core Features
//
//   - ustr.String: immutable-backed, comparable, always well-formed UTF-8
//   - Codepoint indexing, slicing, search and mutation with typed errors
//   - Conversion to and from UTF-16, UTF-32 and the platform wide form
//   - pack: self-describing container with optional dedup, checksum and compression
//     (None, Zstd, S2, LZ4)
//   - syspath: paths as Unicode components with Unix and Windows renderings
//   - textfmt: centring and padding by codepoint count
//
// # Basic Usage
//
//	s, err := unistr.FromString("café")
//	if err != nil {
//	    return err
//	}
//	fmt.Println(s.Len(), s.ByteLen()) // 4 5
//
// Packing strings:
//
//	enc, _ := unistr.NewDefaultPackEncoder()
//	_ = enc.Add(s)
//	data, _ := enc.Finish()
//
//	p, _ := unistr.DecodePack(data)
//	first, _ := p.At(0)
//
// # Package Structure
//
// This package provides top-level wrappers for the most common calls. Use the
// ustr, pack, syspath and textfmt packages directly for everything else.
package unistr

import (
	"github.com/arloliu/unistr/format"
	"github.com/arloliu/unistr/pack"
	"github.com/arloliu/unistr/syspath"
	"github.com/arloliu/unistr/ustr"
)

var defaultPackOptions = []pack.EncoderOption{
	pack.WithTextEncoding(format.EncodingUTF8),
	pack.WithCompression(format.CompressionZstd),
	pack.WithLittleEndian(),
	pack.WithDedup(true),
	pack.WithChecksum(true),
}

// New validates b as UTF-8 and returns it as a String. b is copied.
//
// Returns:
//   - ustr.String: The validated text
//   - error: errs.ErrConversionData with the offending offset if b is malformed
func New(b []byte) (ustr.String, error) {
	return ustr.New(b)
}

// FromString validates s as UTF-8 and returns it as a String.
func FromString(s string) (ustr.String, error) {
	return ustr.FromString(s)
}

// FromCodepoints encodes a sequence of Unicode scalar values.
//
// Returns:
//   - error: errs.ErrConversionData if any value is a surrogate or above U+10FFFF
func FromCodepoints(cps ...rune) (ustr.String, error) {
	return ustr.FromCodepoints(cps...)
}

// NewPackEncoder creates a pack encoder with the given options. Without options the
// pack uses UTF-8 entries, Zstd compression and little-endian byte order, with
// deduplication and checksum disabled.
//
// Parameters:
//   - opts: Encoding options (text encoding, compression, byte order, dedup, checksum)
//
// Returns:
//   - *pack.Encoder: Encoder ready for Add calls
//   - error: errs.ErrValue if an option is invalid
func NewPackEncoder(opts ...pack.EncoderOption) (*pack.Encoder, error) {
	return pack.NewEncoder(opts...)
}

// NewDefaultPackEncoder creates a pack encoder that writes UTF-8 entries with Zstd
// compression, deduplication and an xxHash64 payload checksum.
//
// Example:
//
//	enc, _ := unistr.NewDefaultPackEncoder()
//	_ = enc.AddSlice(values)
//	data, _ := enc.Finish()
func NewDefaultPackEncoder() (*pack.Encoder, error) {
	return pack.NewEncoder(defaultPackOptions...)
}

// DecodePack validates and decodes a pack produced by a pack encoder.
//
// Returns:
//   - pack.Pack: The decoded strings
//   - error: A header, checksum, payload or conversion error
func DecodePack(data []byte) (pack.Pack, error) {
	return pack.Decode(data)
}

// ParsePath validates s and splits it into path components using the host
// separator.
func ParsePath(s string) (syspath.Path, error) {
	return syspath.FromNative([]byte(s))
}
