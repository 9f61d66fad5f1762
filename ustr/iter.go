package ustr

import "iter"

// All returns an iterator over (codepoint index, codepoint) pairs.
//
// The iterator is lazy and restartable: every range over it starts at index 0.
//
// Example:
//
//	for i, r := range s.All() {
//	    fmt.Printf("%d: %c\n", i, r)
//	}
func (s String) All() iter.Seq2[int, rune] {
	return func(yield func(int, rune) bool) {
		i := 0
		for _, r := range s.data {
			if !yield(i, r) {
				return
			}
			i++
		}
	}
}

// Codepoints returns an iterator over the codepoints of s.
func (s String) Codepoints() iter.Seq[rune] {
	return func(yield func(rune) bool) {
		for _, r := range s.data {
			if !yield(r) {
				return
			}
		}
	}
}

// Symbols returns an iterator over the single-codepoint substrings of s.
func (s String) Symbols() iter.Seq[String] {
	return func(yield func(String) bool) {
		prev := -1
		for off := range s.data {
			if prev >= 0 && !yield(fromValid(s.data[prev:off], 1)) {
				return
			}
			prev = off
		}
		if prev >= 0 {
			yield(fromValid(s.data[prev:], 1))
		}
	}
}
