// Package errs defines the error taxonomy shared by every unistr package.
//
// All errors returned by the library wrap ErrBase, so callers may catch broadly:
//
//	if errors.Is(err, errs.ErrBase) { ... }
//
// or narrowly on a specific kind:
//
//	if errors.Is(err, errs.ErrConversionData) { ... }
//
// Structured details (byte offsets, indices) are available through errors.As with
// *DataError and *IndexError.
package errs

import (
	"errors"
	"fmt"
)

// ErrBase is the root of the error hierarchy.
var ErrBase = errors.New("unistr")

// Kinds.
var (
	// ErrConversionData reports malformed input: invalid UTF-8, an invalid codepoint,
	// an unpaired surrogate, or text that cannot be converted to the requested type.
	ErrConversionData = fmt.Errorf("%w: conversion data error", ErrBase)
	// ErrOutOfBounds reports an index or range argument outside the valid bounds.
	ErrOutOfBounds = fmt.Errorf("%w: index out of bounds", ErrBase)
	// ErrValue reports an invalid argument value, such as an empty split delimiter.
	ErrValue = fmt.Errorf("%w: invalid value", ErrBase)
)

// Pack format errors.
var (
	ErrInvalidHeaderSize  = fmt.Errorf("%w: invalid header size", ErrBase)
	ErrInvalidHeaderFlags = fmt.Errorf("%w: invalid header flags", ErrBase)
	ErrChecksumMismatch   = fmt.Errorf("%w: payload checksum mismatch", ErrBase)
	ErrInvalidPayload     = fmt.Errorf("%w: invalid payload", ErrBase)
	ErrTooManyStrings     = fmt.Errorf("%w: too many strings", ErrBase)
	ErrEncoderFinished    = fmt.Errorf("%w: encoder already finished", ErrBase)
)

// ErrAmbiguousPath reports a path that exists but is not of the kind an operation
// requires, such as a file where a directory should be created.
var ErrAmbiguousPath = fmt.Errorf("%w: ambiguous path", ErrBase)

// DataError describes malformed input at a specific position.
//
// Offset is expressed in the units of the input being decoded: bytes for UTF-8 and
// serialized forms, code units for []uint16 / []uint32 input.
type DataError struct {
	Offset int
	Reason string
}

// NewDataError creates a DataError for the given offset and reason.
func NewDataError(offset int, reason string) *DataError {
	return &DataError{Offset: offset, Reason: reason}
}

func (e *DataError) Error() string {
	return fmt.Sprintf("%s: %s at offset %d", ErrConversionData.Error(), e.Reason, e.Offset)
}

// Unwrap returns ErrConversionData.
func (e *DataError) Unwrap() error {
	return ErrConversionData
}

// IndexError describes an index that falls outside [0, Limit).
type IndexError struct {
	Index int
	Limit int
	What  string
}

// NewIndexError creates an IndexError. what names the indexed unit, e.g. "codepoint".
func NewIndexError(index, limit int, what string) *IndexError {
	return &IndexError{Index: index, Limit: limit, What: what}
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("%s: %s index %d not in range [0, %d)", ErrOutOfBounds.Error(), e.What, e.Index, e.Limit)
}

// Unwrap returns ErrOutOfBounds.
func (e *IndexError) Unwrap() error {
	return ErrOutOfBounds
}

// RangeError describes an invalid [Start, End) range over a sequence of length Limit.
type RangeError struct {
	Start int
	End   int
	Limit int
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("%s: range [%d, %d) invalid for length %d", ErrOutOfBounds.Error(), e.Start, e.End, e.Limit)
}

// Unwrap returns ErrOutOfBounds.
func (e *RangeError) Unwrap() error {
	return ErrOutOfBounds
}
