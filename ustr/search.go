package ustr

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/arloliu/unistr/errs"
)

// Byte-level search is exact for valid UTF-8: a valid needle can only match at a
// codepoint boundary of a valid haystack, because no lead byte equals a continuation
// byte.

// StartsWith reports whether s begins with prefix.
func (s String) StartsWith(prefix String) bool {
	return strings.HasPrefix(s.data, prefix.data)
}

// EndsWith reports whether s ends with suffix.
func (s String) EndsWith(suffix String) bool {
	return strings.HasSuffix(s.data, suffix.data)
}

// Contains reports whether sub occurs within s.
func (s String) Contains(sub String) bool {
	return strings.Contains(s.data, sub.data)
}

// Index returns the codepoint index of the first occurrence of sub, or -1.
// An empty sub matches at index 0.
func (s String) Index(sub String) int {
	b := strings.Index(s.data, sub.data)
	if b < 0 {
		return -1
	}

	return s.codepointIndex(b)
}

// LastIndex returns the codepoint index of the last occurrence of sub, or -1.
// An empty sub matches at index Len().
func (s String) LastIndex(sub String) int {
	b := strings.LastIndex(s.data, sub.data)
	if b < 0 {
		return -1
	}

	return s.codepointIndex(b)
}

// Count returns the number of non-overlapping occurrences of sub.
func (s String) Count(sub String) int {
	if sub.data == "" {
		return s.length + 1
	}

	return strings.Count(s.data, sub.data)
}

// Split slices s into the substrings separated by delim.
//
// Empty fields are kept: "a,,b," split on "," yields "a", "", "b", "". Splitting the
// empty string yields a single empty element.
//
// Returns:
//   - []String: The fields, at least one
//   - error: errs.ErrValue if delim is empty
func (s String) Split(delim String) ([]String, error) {
	if delim.data == "" {
		return nil, fmt.Errorf("%w: split delimiter is empty", errs.ErrValue)
	}

	parts := strings.Split(s.data, delim.data)
	out := make([]String, len(parts))
	for i, p := range parts {
		out[i] = fromValid(p, utf8.RuneCountInString(p))
	}

	return out, nil
}

// Join concatenates elems with sep between consecutive elements.
func Join(elems []String, sep String) String {
	switch len(elems) {
	case 0:
		return String{}
	case 1:
		return elems[0]
	}

	size := len(sep.data) * (len(elems) - 1)
	length := sep.length * (len(elems) - 1)
	for _, e := range elems {
		size += len(e.data)
		length += e.length
	}

	var sb strings.Builder
	sb.Grow(size)
	sb.WriteString(elems[0].data)
	for _, e := range elems[1:] {
		sb.WriteString(sep.data)
		sb.WriteString(e.data)
	}

	return fromValid(sb.String(), length)
}

// codepointIndex converts a byte offset on a codepoint boundary to a codepoint index.
func (s String) codepointIndex(byteOff int) int {
	if s.IsASCII() {
		return byteOff
	}

	return utf8.RuneCountInString(s.data[:byteOff])
}
