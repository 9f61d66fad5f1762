package ustr

import (
	"fmt"

	"github.com/arloliu/unistr/errs"
)

// Lead byte classes. The low nibble is the sequence width (0 means the byte can never
// start a sequence), the high nibble selects the accepted range of the second byte.
const (
	xx = 0x00 // continuation byte, overlong lead (C0, C1) or above U+10FFFF (F5..FF)
	a1 = 0x01 // ASCII
	c2 = 0x02 // C2..DF
	e0 = 0x13 // E0, second byte A0..BF
	e1 = 0x03 // E1..EC, EE..EF
	ed = 0x23 // ED, second byte 80..9F
	f0 = 0x34 // F0, second byte 90..BF
	f1 = 0x04 // F1..F3
	f4 = 0x44 // F4, second byte 80..8F
)

// leadClass is indexed by the first byte of a sequence.
var leadClass = [256]uint8{
	//   0   1   2   3   4   5   6   7   8   9   A   B   C   D   E   F
	a1, a1, a1, a1, a1, a1, a1, a1, a1, a1, a1, a1, a1, a1, a1, a1, // 0x00
	a1, a1, a1, a1, a1, a1, a1, a1, a1, a1, a1, a1, a1, a1, a1, a1, // 0x10
	a1, a1, a1, a1, a1, a1, a1, a1, a1, a1, a1, a1, a1, a1, a1, a1, // 0x20
	a1, a1, a1, a1, a1, a1, a1, a1, a1, a1, a1, a1, a1, a1, a1, a1, // 0x30
	a1, a1, a1, a1, a1, a1, a1, a1, a1, a1, a1, a1, a1, a1, a1, a1, // 0x40
	a1, a1, a1, a1, a1, a1, a1, a1, a1, a1, a1, a1, a1, a1, a1, a1, // 0x50
	a1, a1, a1, a1, a1, a1, a1, a1, a1, a1, a1, a1, a1, a1, a1, a1, // 0x60
	a1, a1, a1, a1, a1, a1, a1, a1, a1, a1, a1, a1, a1, a1, a1, a1, // 0x70
	xx, xx, xx, xx, xx, xx, xx, xx, xx, xx, xx, xx, xx, xx, xx, xx, // 0x80
	xx, xx, xx, xx, xx, xx, xx, xx, xx, xx, xx, xx, xx, xx, xx, xx, // 0x90
	xx, xx, xx, xx, xx, xx, xx, xx, xx, xx, xx, xx, xx, xx, xx, xx, // 0xA0
	xx, xx, xx, xx, xx, xx, xx, xx, xx, xx, xx, xx, xx, xx, xx, xx, // 0xB0
	xx, xx, c2, c2, c2, c2, c2, c2, c2, c2, c2, c2, c2, c2, c2, c2, // 0xC0
	c2, c2, c2, c2, c2, c2, c2, c2, c2, c2, c2, c2, c2, c2, c2, c2, // 0xD0
	e0, e1, e1, e1, e1, e1, e1, e1, e1, e1, e1, e1, e1, ed, e1, e1, // 0xE0
	f0, f1, f1, f1, f4, xx, xx, xx, xx, xx, xx, xx, xx, xx, xx, xx, // 0xF0
}

type acceptRange struct {
	lo, hi uint8
	reason string
}

// secondByte holds the accepted range for the byte following a lead byte.
var secondByte = [5]acceptRange{
	{0x80, 0xBF, "invalid continuation byte"},
	{0xA0, 0xBF, "overlong encoding"},
	{0x80, 0x9F, "encoded surrogate"},
	{0x90, 0xBF, "overlong encoding"},
	{0x80, 0x8F, "codepoint above U+10FFFF"},
}

const (
	contLo = 0x80
	contHi = 0xBF
)

// validate checks that s is well-formed UTF-8 and returns its codepoint count.
//
// The returned error is a *errs.DataError whose offset is the first byte of the
// offending sequence, or the offending byte itself for a bad continuation byte past
// the second position.
func validate(s string) (int, error) {
	n := len(s)
	count := 0
	for i := 0; i < n; {
		b := s[i]
		if b < 0x80 {
			i++
			count++

			continue
		}

		class := leadClass[b]
		width := int(class & 0x0F)
		if width == 0 {
			return 0, errs.NewDataError(i, leadReason(b))
		}

		accept := secondByte[class>>4]
		if i+1 >= n {
			return 0, errs.NewDataError(i, "truncated sequence")
		}
		if c := s[i+1]; c < accept.lo || c > accept.hi {
			if c < contLo || c > contHi {
				return 0, errs.NewDataError(i+1, "invalid continuation byte")
			}

			return 0, errs.NewDataError(i, accept.reason)
		}
		for k := 2; k < width; k++ {
			if i+k >= n {
				return 0, errs.NewDataError(i, "truncated sequence")
			}
			if c := s[i+k]; c < contLo || c > contHi {
				return 0, errs.NewDataError(i+k, "invalid continuation byte")
			}
		}

		i += width
		count++
	}

	return count, nil
}

func leadReason(b byte) string {
	switch {
	case b >= contLo && b <= contHi:
		return "continuation byte without lead byte"
	case b == 0xC0 || b == 0xC1:
		return "overlong encoding"
	case b <= 0xF7:
		return "codepoint above U+10FFFF"
	default:
		return fmt.Sprintf("byte 0x%02X not allowed in UTF-8", b)
	}
}

// isScalar reports whether r is a Unicode scalar value.
func isScalar(r rune) bool {
	return (r >= 0 && r < 0xD800) || (r > 0xDFFF && r <= 0x10FFFF)
}

func codepointError(offset int, r rune) error {
	switch {
	case r >= 0xD800 && r <= 0xDFFF:
		return errs.NewDataError(offset, fmt.Sprintf("surrogate U+%04X is not a scalar value", r))
	default:
		return errs.NewDataError(offset, fmt.Sprintf("codepoint 0x%X out of range", uint32(r)))
	}
}
