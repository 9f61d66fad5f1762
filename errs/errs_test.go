package errs

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestKindsWrapBase(t *testing.T) {
	kinds := []error{
		ErrConversionData,
		ErrOutOfBounds,
		ErrValue,
		ErrInvalidHeaderSize,
		ErrInvalidHeaderFlags,
		ErrChecksumMismatch,
		ErrInvalidPayload,
		ErrTooManyStrings,
		ErrEncoderFinished,
		ErrAmbiguousPath,
	}
	for _, k := range kinds {
		require.ErrorIs(t, k, ErrBase, k.Error())
	}

	require.NotErrorIs(t, ErrConversionData, ErrOutOfBounds)
	require.NotErrorIs(t, ErrOutOfBounds, ErrConversionData)
}

func TestDataError(t *testing.T) {
	err := fmt.Errorf("decode: %w", NewDataError(7, "truncated sequence"))

	require.ErrorIs(t, err, ErrConversionData)
	require.ErrorIs(t, err, ErrBase)
	require.NotErrorIs(t, err, ErrOutOfBounds)

	var de *DataError
	require.True(t, errors.As(err, &de))
	require.Equal(t, 7, de.Offset)
	require.Contains(t, err.Error(), "truncated sequence at offset 7")
}

func TestIndexError(t *testing.T) {
	err := NewIndexError(5, 3, "codepoint")

	require.ErrorIs(t, err, ErrOutOfBounds)
	require.ErrorIs(t, err, ErrBase)
	require.Contains(t, err.Error(), "codepoint index 5 not in range [0, 3)")
}

func TestRangeError(t *testing.T) {
	var err error = &RangeError{Start: 4, End: 2, Limit: 10}

	require.ErrorIs(t, err, ErrOutOfBounds)

	var re *RangeError
	require.True(t, errors.As(err, &re))
	require.Equal(t, 4, re.Start)
	require.Contains(t, err.Error(), "range [4, 2) invalid for length 10")
}
