package ustr

import (
	"fmt"
	"strconv"

	"github.com/arloliu/unistr/errs"
)

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// IsInt reports whether s is an optional '-' followed by one or more ASCII digits.
func (s String) IsInt() bool {
	d := s.data
	if len(d) > 0 && d[0] == '-' {
		d = d[1:]
	}

	return allDigits(d)
}

// IsUint reports whether s is one or more ASCII digits.
func (s String) IsUint() bool {
	return allDigits(s.data)
}

// IsFloat reports whether s is an optional '-' followed by ASCII digits containing
// at most one '.', with at least one digit overall.
func (s String) IsFloat() bool {
	d := s.data
	if len(d) > 0 && d[0] == '-' {
		d = d[1:]
	}

	point := false
	digits := 0
	for i := 0; i < len(d); i++ {
		switch {
		case isDigit(d[i]):
			digits++
		case d[i] == '.' && !point:
			point = true
		default:
			return false
		}
	}

	return digits > 0
}

func allDigits(d string) bool {
	if d == "" {
		return false
	}
	for i := 0; i < len(d); i++ {
		if !isDigit(d[i]) {
			return false
		}
	}

	return true
}

func (s String) convErr(target string, cause error) error {
	if cause != nil {
		return fmt.Errorf("%w: cannot convert %q to %s: %v", errs.ErrConversionData, s.data, target, cause)
	}

	return fmt.Errorf("%w: cannot convert %q to %s", errs.ErrConversionData, s.data, target)
}

// ToBool interprets an integer string: any non-zero digit makes it true.
//
// Returns:
//   - error: errs.ErrConversionData if s is not an integer string
func (s String) ToBool() (bool, error) {
	if !s.IsInt() {
		return false, s.convErr("bool", nil)
	}
	for i := 0; i < len(s.data); i++ {
		if isDigit(s.data[i]) && s.data[i] != '0' {
			return true, nil
		}
	}

	return false, nil
}

// ToInt32 parses s as a decimal int32.
func (s String) ToInt32() (int32, error) {
	v, err := s.parseInt("int32", 32)
	return int32(v), err
}

// ToInt64 parses s as a decimal int64.
func (s String) ToInt64() (int64, error) {
	return s.parseInt("int64", 64)
}

// ToUint32 parses s as a decimal uint32.
func (s String) ToUint32() (uint32, error) {
	v, err := s.parseUint("uint32", 32)
	return uint32(v), err
}

// ToUint64 parses s as a decimal uint64.
func (s String) ToUint64() (uint64, error) {
	return s.parseUint("uint64", 64)
}

// ToFloat64 parses s as a decimal float64 in the form accepted by IsFloat.
func (s String) ToFloat64() (float64, error) {
	if !s.IsFloat() {
		return 0, s.convErr("float64", nil)
	}

	v, err := strconv.ParseFloat(s.data, 64)
	if err != nil {
		return 0, s.convErr("float64", err)
	}

	return v, nil
}

func (s String) parseInt(target string, bits int) (int64, error) {
	if !s.IsInt() {
		return 0, s.convErr(target, nil)
	}

	v, err := strconv.ParseInt(s.data, 10, bits)
	if err != nil {
		return 0, s.convErr(target, err)
	}

	return v, nil
}

func (s String) parseUint(target string, bits int) (uint64, error) {
	if !s.IsUint() {
		return 0, s.convErr(target, nil)
	}

	v, err := strconv.ParseUint(s.data, 10, bits)
	if err != nil {
		return 0, s.convErr(target, err)
	}

	return v, nil
}

// FormatInt returns the decimal representation of v.
func FormatInt(v int64) String {
	d := strconv.FormatInt(v, 10)
	return fromValid(d, len(d))
}

// FormatUint returns the decimal representation of v.
func FormatUint(v uint64) String {
	d := strconv.FormatUint(v, 10)
	return fromValid(d, len(d))
}

// FormatFloat returns the shortest representation of v that round-trips.
func FormatFloat(v float64) String {
	d := strconv.FormatFloat(v, 'g', -1, 64)
	return fromValid(d, len(d))
}

// FormatBool returns "true" or "false".
func FormatBool(v bool) String {
	d := strconv.FormatBool(v)
	return fromValid(d, len(d))
}
