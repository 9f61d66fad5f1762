// Package ustr provides String, a validated UTF-8 text value with codepoint-oriented
// operations.
//
// A String owns a well-formed UTF-8 byte sequence and a cached codepoint count. Every
// public operation keeps both invariants: the bytes are always valid UTF-8 and Len
// always equals the number of Unicode scalar values they encode. Malformed input is
// rejected where it enters the type, never later.
//
// # Construction
//
//	s, err := ustr.New([]byte{0x63, 0x61, 0x66, 0xC3, 0xA9}) // "café"
//	if err != nil {
//	    // errors.Is(err, errs.ErrConversionData)
//	}
//	s.Len()     // 4 codepoints
//	s.ByteLen() // 5 bytes
//
// The zero value is the empty string and is ready to use.
//
// # Indexing
//
// All indices are codepoint indices. Byte offsets are an internal detail and are never
// accepted by the API. Because UTF-8 is variable width, At, Symbol, Slice, Insert and
// Remove scan from the start of the string and are O(n) in the byte length. Strings
// made only of ASCII take an O(1) path since codepoint and byte indices coincide.
//
// # Value Semantics
//
// String is a small struct over an immutable Go string. Assigning or passing a String
// copies the header and shares the bytes; mutating methods (Concat, Clear, Insert,
// Remove, Repeat, RemoveDuplicates) always install new storage, so a copy taken before
// a mutation never observes it. Shared values may be read from many goroutines;
// mutating one variable concurrently with any other access to that same variable is a
// data race, as for any Go value.
//
// Two Strings are equal exactly when their bytes are equal, which for valid UTF-8 is
// the same as having identical codepoint sequences, so == works. Compare orders by
// bytes, which for valid UTF-8 matches codepoint order.
//
// # Conversion
//
// ToUTF16/FromUTF16 and ToUTF32/FromUTF32 convert to and from code unit slices.
// Encode/Decode serialize code units with an explicit byte order, and ToWide/FromWide
// use the platform wide form (UTF-16 on Windows, UTF-32 elsewhere, host byte order).
// Unpaired surrogates and out-of-range values fail with errs.ErrConversionData.
package ustr
