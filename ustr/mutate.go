package ustr

import (
	"fmt"
	"strings"

	"github.com/arloliu/unistr/errs"
)

// Concat appends others to s in order.
//
// Concatenating well-formed UTF-8 always yields well-formed UTF-8, so Concat cannot
// fail. The codepoint count is updated by addition rather than by rescanning.
func (s *String) Concat(others ...String) {
	switch len(others) {
	case 0:
		return
	case 1:
		if others[0].data == "" {
			return
		}
		s.data += others[0].data
		s.length += others[0].length

		return
	}

	size := len(s.data)
	for _, o := range others {
		size += len(o.data)
	}

	var sb strings.Builder
	sb.Grow(size)
	sb.WriteString(s.data)
	for _, o := range others {
		sb.WriteString(o.data)
		s.length += o.length
	}
	s.data = sb.String()
}

// Concatenated returns s followed by other, leaving s unchanged.
func (s String) Concatenated(other String) String {
	s.Concat(other)
	return s
}

// Clear resets s to the empty string. s remains usable afterwards.
func (s *String) Clear() {
	*s = String{}
}

// Insert inserts other before the codepoint at index.
//
// index may equal Len(), which appends.
//
// Returns:
//   - error: *errs.IndexError wrapping errs.ErrOutOfBounds if index < 0 or index > Len()
func (s *String) Insert(index int, other String) error {
	if index < 0 || index > s.length {
		return errs.NewIndexError(index, s.length+1, "insertion")
	}
	if other.data == "" {
		return nil
	}

	off := s.byteOffset(index)
	s.data = s.data[:off] + other.data + s.data[off:]
	s.length += other.length

	return nil
}

// Remove deletes the codepoints in [start, end).
//
// Returns:
//   - error: *errs.RangeError wrapping errs.ErrOutOfBounds under the same rules as Slice
func (s *String) Remove(start, end int) error {
	if err := s.checkRange(start, end); err != nil {
		return err
	}
	if start == end {
		return nil
	}

	b0, b1 := s.byteRange(start, end)
	s.data = s.data[:b0] + s.data[b1:]
	s.length -= end - start

	return nil
}

// MaxRepeatBytes caps the byte length Repeat may produce.
const MaxRepeatBytes = 1<<31 - 1

// Repeat replaces s with count consecutive copies of itself.
// A count of zero leaves s empty.
//
// Returns:
//   - error: errs.ErrValue if count is negative or the result would exceed
//     MaxRepeatBytes
func (s *String) Repeat(count int) error {
	if count < 0 {
		return fmt.Errorf("%w: negative repeat count %d", errs.ErrValue, count)
	}
	if count > 0 && len(s.data) > MaxRepeatBytes/count {
		return fmt.Errorf("%w: repeating %d bytes %d times exceeds %d bytes",
			errs.ErrValue, len(s.data), count, MaxRepeatBytes)
	}

	s.data = strings.Repeat(s.data, count)
	s.length *= count

	return nil
}

// Repeated returns count copies of s, leaving s unchanged.
func (s String) Repeated(count int) (String, error) {
	err := s.Repeat(count)
	return s, err
}

// RemoveDuplicates collapses every run of consecutive occurrences of sub into a
// single occurrence. It does nothing when sub is empty.
//
// Example:
//
//	p := ustr.MustFromString("a//b///c")
//	p.RemoveDuplicates(ustr.MustFromString("/")) // "a/b/c"
func (s *String) RemoveDuplicates(sub String) {
	if sub.data == "" || !strings.Contains(s.data, sub.data) {
		return
	}

	var sb strings.Builder
	sb.Grow(len(s.data))

	rest := s.data
	removed := 0
	for {
		i := strings.Index(rest, sub.data)
		if i < 0 {
			break
		}
		sb.WriteString(rest[:i+len(sub.data)])
		rest = rest[i+len(sub.data):]
		for strings.HasPrefix(rest, sub.data) {
			rest = rest[len(sub.data):]
			removed++
		}
	}
	sb.WriteString(rest)

	s.data = sb.String()
	s.length -= removed * sub.length
}
