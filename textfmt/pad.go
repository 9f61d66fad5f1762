// Package textfmt pads text to a display width measured in codepoints.
//
// Widths are codepoint counts of ustr.String values, never byte lengths, so
// non-ASCII text lines up with ASCII text of the same length.
package textfmt

import (
	"github.com/arloliu/unistr/ustr"
)

// Centre pads text on both sides with fill until it is width codepoints long.
// When the padding is odd the extra fill goes on the right. Text that is already
// at least width codepoints long is returned unchanged.
//
// Parameters:
//   - text: Text to centre
//   - width: Target width in codepoints
//   - fill: Padding codepoint
//
// Returns:
//   - ustr.String: The padded text
//   - error: errs.ErrConversionData if fill is not a Unicode scalar value
//
// Example:
//
//	s, _ := textfmt.Centre(ustr.MustFromString("né"), 7, '*') // "**né***"
func Centre(text ustr.String, width int, fill rune) (ustr.String, error) {
	total := width - text.Len()
	left := total / 2

	return pad(text, left, total-left, fill)
}

// PadLeft right-aligns text by adding fill on the left until it is width
// codepoints long.
//
// Returns:
//   - error: errs.ErrConversionData if fill is not a Unicode scalar value
func PadLeft(text ustr.String, width int, fill rune) (ustr.String, error) {
	return pad(text, width-text.Len(), 0, fill)
}

// PadRight left-aligns text by adding fill on the right until it is width
// codepoints long.
//
// Returns:
//   - error: errs.ErrConversionData if fill is not a Unicode scalar value
func PadRight(text ustr.String, width int, fill rune) (ustr.String, error) {
	return pad(text, 0, width-text.Len(), fill)
}

func pad(text ustr.String, left, right int, fill rune) (ustr.String, error) {
	unit, err := ustr.FromCodepoints(fill)
	if err != nil {
		return ustr.String{}, err
	}
	if left <= 0 && right <= 0 {
		return text, nil
	}
	left, right = max(left, 0), max(right, 0)

	b := ustr.NewBuilder(text.ByteLen() + (left+right)*unit.ByteLen())
	defer b.Release()

	for range left {
		b.WriteString(unit)
	}
	b.WriteString(text)
	for range right {
		b.WriteString(unit)
	}

	return b.String(), nil
}
