package ustr

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/arloliu/unistr/errs"
	"github.com/arloliu/unistr/internal/hash"
)

// String is an immutable-storage UTF-8 text value with a cached codepoint count.
//
// The zero value is the empty string.
type String struct {
	data   string
	length int
}

// New validates b as UTF-8 and returns a String holding a copy of it.
//
// Validation rejects continuation bytes without a lead byte, truncated sequences,
// overlong encodings, encoded surrogates (U+D800..U+DFFF), codepoints above U+10FFFF
// and bytes that never appear in UTF-8.
//
// Parameters:
//   - b: Raw bytes to validate (not retained)
//
// Returns:
//   - String: The validated string
//   - error: *errs.DataError wrapping errs.ErrConversionData, naming the byte offset
func New(b []byte) (String, error) {
	return FromString(string(b))
}

// FromString validates s as UTF-8 and returns it as a String.
func FromString(s string) (String, error) {
	n, err := validate(s)
	if err != nil {
		return String{}, err
	}

	return String{data: s, length: n}, nil
}

// MustFromString is like FromString but panics if s is not valid UTF-8.
// It is intended for literals and tests.
func MustFromString(s string) String {
	str, err := FromString(s)
	if err != nil {
		panic(fmt.Sprintf("ustr: MustFromString(%q): %v", s, err))
	}

	return str
}

// Empty returns the empty String. It is identical to the zero value.
func Empty() String {
	return String{}
}

// FromCodepoints encodes the given scalar values as UTF-8.
//
// Each scalar takes 1 byte (U+0000..U+007F), 2 bytes (U+0080..U+07FF), 3 bytes
// (U+0800..U+FFFF) or 4 bytes (U+10000..U+10FFFF). A Go rune may hold a value that is
// not a scalar, so surrogates, negative values and values above U+10FFFF are rejected
// with a *errs.DataError whose offset is the index into cps.
func FromCodepoints(cps ...rune) (String, error) {
	size := 0
	for i, r := range cps {
		if !isScalar(r) {
			return String{}, codepointError(i, r)
		}
		size += utf8.RuneLen(r)
	}

	buf := make([]byte, 0, size)
	for _, r := range cps {
		buf = utf8.AppendRune(buf, r)
	}

	return String{data: string(buf), length: len(cps)}, nil
}

// fromValid wraps data that is already known to be valid UTF-8.
func fromValid(data string, length int) String {
	return String{data: data, length: length}
}

// Len returns the number of codepoints in constant time.
func (s String) Len() int {
	return s.length
}

// ByteLen returns the number of bytes in constant time.
func (s String) ByteLen() int {
	return len(s.data)
}

// IsEmpty reports whether s has no codepoints.
func (s String) IsEmpty() bool {
	return s.length == 0
}

// IsASCII reports whether every codepoint of s is in U+0000..U+007F.
func (s String) IsASCII() bool {
	return s.length == len(s.data)
}

// At returns the codepoint at index i.
//
// Complexity is O(n) in the byte length, O(1) for ASCII-only strings.
//
// Returns:
//   - rune: The scalar value at index i
//   - error: *errs.IndexError wrapping errs.ErrOutOfBounds if i < 0 or i >= Len()
func (s String) At(i int) (rune, error) {
	if i < 0 || i >= s.length {
		return 0, errs.NewIndexError(i, s.length, "codepoint")
	}

	off := s.byteOffset(i)
	r, _ := utf8.DecodeRuneInString(s.data[off:])

	return r, nil
}

// Symbol returns the single-codepoint String at index i.
func (s String) Symbol(i int) (String, error) {
	if i < 0 || i >= s.length {
		return String{}, errs.NewIndexError(i, s.length, "codepoint")
	}

	off := s.byteOffset(i)
	_, w := utf8.DecodeRuneInString(s.data[off:])

	return fromValid(s.data[off:off+w], 1), nil
}

// Slice returns the codepoints in [start, end) as a new String.
//
// The result is carved along codepoint boundaries and is therefore valid without
// re-validation.
//
// Returns:
//   - String: The substring
//   - error: *errs.RangeError wrapping errs.ErrOutOfBounds if start < 0, start > end
//     or end > Len()
func (s String) Slice(start, end int) (String, error) {
	if err := s.checkRange(start, end); err != nil {
		return String{}, err
	}

	b0, b1 := s.byteRange(start, end)

	return fromValid(s.data[b0:b1], end-start), nil
}

// Equal reports whether s and other hold the same bytes, which for valid UTF-8 is the
// same as holding the same codepoint sequence.
func (s String) Equal(other String) bool {
	return s.data == other.data
}

// Compare returns -1, 0 or +1 ordering s against other by bytes. For valid UTF-8 the
// byte order is the codepoint order.
func (s String) Compare(other String) int {
	return strings.Compare(s.data, other.data)
}

// Less reports whether s sorts before other.
func (s String) Less(other String) bool {
	return s.data < other.data
}

// Hash returns the xxHash64 of the UTF-8 bytes.
func (s String) Hash() uint64 {
	return hash.ID(s.data)
}

// Bytes returns an independent copy of the UTF-8 bytes.
func (s String) Bytes() []byte {
	return []byte(s.data)
}

// String returns the text as a Go string.
func (s String) String() string {
	return s.data
}

// GoString implements fmt.GoStringer.
func (s String) GoString() string {
	return fmt.Sprintf("ustr.MustFromString(%q)", s.data)
}

// byteOffset returns the byte offset of codepoint index i, for 0 <= i <= Len().
func (s String) byteOffset(i int) int {
	if s.IsASCII() {
		return i
	}
	if i == s.length {
		return len(s.data)
	}

	n := 0
	for off := range s.data {
		if n == i {
			return off
		}
		n++
	}

	return len(s.data)
}

// byteRange returns the byte offsets of codepoint indices start and end in one scan.
func (s String) byteRange(start, end int) (int, int) {
	if s.IsASCII() {
		return start, end
	}

	b0 := s.byteOffset(start)
	b1 := b0
	for n := start; n < end; n++ {
		_, w := utf8.DecodeRuneInString(s.data[b1:])
		b1 += w
	}

	return b0, b1
}

func (s String) checkRange(start, end int) error {
	if start < 0 || start > end || end > s.length {
		return &errs.RangeError{Start: start, End: end, Limit: s.length}
	}

	return nil
}
