package ustr

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/unistr/errs"
)

func TestNumericPredicates(t *testing.T) {
	tests := []struct {
		input                   string
		isInt, isUint, isFloat bool
	}{
		{"0", true, true, true},
		{"42", true, true, true},
		{"-42", true, false, true},
		{"-", false, false, false},
		{"", false, false, false},
		{"3.14", false, false, true},
		{"-0.5", false, false, true},
		{".5", false, false, true},
		{"5.", false, false, true},
		{".", false, false, false},
		{"1.2.3", false, false, false},
		{"+1", false, false, false},
		{"1e5", false, false, false},
		{" 1", false, false, false},
		{"١٢", false, false, false},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			s := MustFromString(tt.input)
			require.Equal(t, tt.isInt, s.IsInt(), "IsInt")
			require.Equal(t, tt.isUint, s.IsUint(), "IsUint")
			require.Equal(t, tt.isFloat, s.IsFloat(), "IsFloat")
		})
	}
}

func TestToBool(t *testing.T) {
	tests := []struct {
		input    string
		expected bool
	}{
		{"0", false},
		{"000", false},
		{"-0", false},
		{"1", true},
		{"0010", true},
		{"-7", true},
	}
	for _, tt := range tests {
		v, err := MustFromString(tt.input).ToBool()
		require.NoError(t, err, tt.input)
		require.Equal(t, tt.expected, v, tt.input)
	}

	for _, bad := range []string{"", "true", "1.0", "-"} {
		_, err := MustFromString(bad).ToBool()
		require.ErrorIs(t, err, errs.ErrConversionData, bad)
	}
}

func TestToInt(t *testing.T) {
	v32, err := MustFromString("-2147483648").ToInt32()
	require.NoError(t, err)
	require.Equal(t, int32(math.MinInt32), v32)

	_, err = MustFromString("2147483648").ToInt32()
	require.ErrorIs(t, err, errs.ErrConversionData)

	v64, err := MustFromString("9223372036854775807").ToInt64()
	require.NoError(t, err)
	require.Equal(t, int64(math.MaxInt64), v64)

	_, err = MustFromString("9223372036854775808").ToInt64()
	require.ErrorIs(t, err, errs.ErrConversionData)

	_, err = MustFromString("12a").ToInt64()
	require.ErrorIs(t, err, errs.ErrConversionData)
}

func TestToUint(t *testing.T) {
	v32, err := MustFromString("4294967295").ToUint32()
	require.NoError(t, err)
	require.Equal(t, uint32(math.MaxUint32), v32)

	_, err = MustFromString("4294967296").ToUint32()
	require.ErrorIs(t, err, errs.ErrConversionData)

	v64, err := MustFromString("18446744073709551615").ToUint64()
	require.NoError(t, err)
	require.Equal(t, uint64(math.MaxUint64), v64)

	_, err = MustFromString("-1").ToUint64()
	require.ErrorIs(t, err, errs.ErrConversionData)
}

func TestToFloat64(t *testing.T) {
	v, err := MustFromString("-12.5").ToFloat64()
	require.NoError(t, err)
	require.InDelta(t, -12.5, v, 1e-12)

	v, err = MustFromString("7").ToFloat64()
	require.NoError(t, err)
	require.InDelta(t, 7.0, v, 1e-12)

	for _, bad := range []string{"1e3", "NaN", "Inf", "", "1..2"} {
		_, err := MustFromString(bad).ToFloat64()
		require.ErrorIs(t, err, errs.ErrConversionData, bad)
	}
}

func TestFormat(t *testing.T) {
	require.Equal(t, "-42", FormatInt(-42).String())
	require.Equal(t, 3, FormatInt(-42).Len())
	require.Equal(t, "18446744073709551615", FormatUint(math.MaxUint64).String())
	require.Equal(t, "0.25", FormatFloat(0.25).String())
	require.Equal(t, "true", FormatBool(true).String())
	require.Equal(t, "false", FormatBool(false).String())

	n, err := FormatInt(math.MinInt64).ToInt64()
	require.NoError(t, err)
	require.Equal(t, int64(math.MinInt64), n)
}

func TestConcatNumbers(t *testing.T) {
	s := MustFromString("n=")
	s.Concat(FormatInt(3), MustFromString(", ok="), FormatBool(true))
	require.Equal(t, "n=3, ok=true", s.String())
}
