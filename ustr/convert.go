package ustr

import (
	"fmt"
	"runtime"
	"unicode/utf16"
	"unicode/utf8"

	"github.com/arloliu/unistr/endian"
	"github.com/arloliu/unistr/errs"
	"github.com/arloliu/unistr/format"
)

const (
	surrHighLo = 0xD800
	surrHighHi = 0xDBFF
	surrLowLo  = 0xDC00
	surrLowHi  = 0xDFFF
)

// ToUTF16 returns s as UTF-16 code units. Codepoints above U+FFFF become a high
// surrogate followed by a low surrogate.
func (s String) ToUTF16() []uint16 {
	units := make([]uint16, 0, s.length)
	for _, r := range s.data {
		units = utf16.AppendRune(units, r)
	}

	return units
}

// FromUTF16 decodes UTF-16 code units.
//
// A high surrogate must be immediately followed by a low surrogate; any other
// surrogate is unpaired and rejected.
//
// Returns:
//   - error: *errs.DataError with the code unit index of the unpaired surrogate
func FromUTF16(units []uint16) (String, error) {
	return decodeUTF16(len(units), 1, func(i int) uint16 { return units[i] })
}

// ToUTF32 returns the scalar values of s.
func (s String) ToUTF32() []uint32 {
	out := make([]uint32, 0, s.length)
	for _, r := range s.data {
		out = append(out, uint32(r))
	}

	return out
}

// FromUTF32 encodes scalar values given as UTF-32 code units.
//
// Returns:
//   - error: *errs.DataError with the index of the first surrogate or out-of-range value
func FromUTF32(units []uint32) (String, error) {
	return decodeUTF32(len(units), 1, func(i int) uint32 { return units[i] })
}

// Runes returns the codepoints of s as a slice.
func (s String) Runes() []rune {
	out := make([]rune, 0, s.length)
	for _, r := range s.data {
		out = append(out, r)
	}

	return out
}

// Encode serializes s in the given text encoding, writing UTF-16 and UTF-32 code
// units with engine's byte order. engine is ignored for UTF-8.
//
// Returns:
//   - []byte: The serialized text
//   - error: errs.ErrValue for an unknown encoding
func (s String) Encode(enc format.TextEncoding, engine endian.EndianEngine) ([]byte, error) {
	return s.AppendEncoded(nil, enc, engine)
}

// AppendEncoded appends the serialized form of s to dst. See Encode.
func (s String) AppendEncoded(dst []byte, enc format.TextEncoding, engine endian.EndianEngine) ([]byte, error) {
	switch enc {
	case format.EncodingUTF8:
		return append(dst, s.data...), nil
	case format.EncodingUTF16:
		for _, r := range s.data {
			if r > 0xFFFF {
				hi, lo := utf16.EncodeRune(r)
				dst = engine.AppendUint16(dst, uint16(hi))
				dst = engine.AppendUint16(dst, uint16(lo))

				continue
			}
			dst = engine.AppendUint16(dst, uint16(r))
		}

		return dst, nil
	case format.EncodingUTF32:
		for _, r := range s.data {
			dst = engine.AppendUint32(dst, uint32(r))
		}

		return dst, nil
	default:
		return dst, fmt.Errorf("%w: unknown text encoding %d", errs.ErrValue, enc)
	}
}

// EncodedLen returns the number of bytes Encode would produce.
func (s String) EncodedLen(enc format.TextEncoding) int {
	switch enc {
	case format.EncodingUTF8:
		return len(s.data)
	case format.EncodingUTF16:
		n := 0
		for _, r := range s.data {
			if r > 0xFFFF {
				n += 4
			} else {
				n += 2
			}
		}

		return n
	case format.EncodingUTF32:
		return 4 * s.length
	default:
		return 0
	}
}

// Decode parses data produced by Encode with the same encoding and byte order.
//
// Returns:
//   - String: The decoded text
//   - error: *errs.DataError (byte offset) for malformed data, including a trailing
//     partial code unit; errs.ErrValue for an unknown encoding
func Decode(data []byte, enc format.TextEncoding, engine endian.EndianEngine) (String, error) {
	switch enc {
	case format.EncodingUTF8:
		return New(data)
	case format.EncodingUTF16:
		if len(data)%2 != 0 {
			return String{}, errs.NewDataError(len(data)-1, "trailing partial UTF-16 code unit")
		}

		return decodeUTF16(len(data)/2, 2, func(i int) uint16 { return engine.Uint16(data[2*i:]) })
	case format.EncodingUTF32:
		if len(data)%4 != 0 {
			return String{}, errs.NewDataError(len(data)-len(data)%4, "trailing partial UTF-32 code unit")
		}

		return decodeUTF32(len(data)/4, 4, func(i int) uint32 { return engine.Uint32(data[4*i:]) })
	default:
		return String{}, fmt.Errorf("%w: unknown text encoding %d", errs.ErrValue, enc)
	}
}

// WideEncoding returns the encoding of the platform wide form: UTF-16 on Windows and
// UTF-32 elsewhere.
func WideEncoding() format.TextEncoding {
	if runtime.GOOS == "windows" {
		return format.EncodingUTF16
	}

	return format.EncodingUTF32
}

// ToWide returns s in the platform wide form using the host byte order.
func (s String) ToWide() []byte {
	out, _ := s.Encode(WideEncoding(), endian.NativeEngine())
	return out
}

// FromWide decodes the platform wide form produced by ToWide.
func FromWide(data []byte) (String, error) {
	return Decode(data, WideEncoding(), endian.NativeEngine())
}

// decodeUTF16 decodes n code units read through unit. scale converts a unit index to
// the offset reported in errors.
func decodeUTF16(n, scale int, unit func(int) uint16) (String, error) {
	buf := make([]byte, 0, n)
	count := 0
	for i := 0; i < n; i++ {
		u := unit(i)
		switch {
		case u < surrHighLo || u > surrLowHi:
			buf = utf8.AppendRune(buf, rune(u))
		case u <= surrHighHi:
			if i+1 >= n {
				return String{}, errs.NewDataError(i*scale, "unpaired high surrogate")
			}
			lo := unit(i + 1)
			if lo < surrLowLo || lo > surrLowHi {
				return String{}, errs.NewDataError(i*scale, "unpaired high surrogate")
			}
			buf = utf8.AppendRune(buf, utf16.DecodeRune(rune(u), rune(lo)))
			i++
		default:
			return String{}, errs.NewDataError(i*scale, "unpaired low surrogate")
		}
		count++
	}

	return fromValid(string(buf), count), nil
}

func decodeUTF32(n, scale int, unit func(int) uint32) (String, error) {
	buf := make([]byte, 0, n)
	for i := 0; i < n; i++ {
		u := unit(i)
		if u > utf8.MaxRune || !isScalar(rune(u)) {
			return String{}, codepointError(i*scale, rune(u))
		}
		buf = utf8.AppendRune(buf, rune(u))
	}

	return fromValid(string(buf), n), nil
}
