package ustr

import (
	"fmt"

	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	"github.com/arloliu/unistr/errs"
)

// MarshalText implements encoding.TextMarshaler.
func (s String) MarshalText() ([]byte, error) {
	return []byte(s.data), nil
}

// UnmarshalText implements encoding.TextUnmarshaler with strict UTF-8 validation.
func (s *String) UnmarshalText(text []byte) error {
	v, err := New(text)
	if err != nil {
		return err
	}
	*s = v

	return nil
}

// MarshalJSON encodes s as a JSON string.
func (s String) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.data)
}

// UnmarshalJSON decodes a JSON string into s.
//
// The raw document must be valid UTF-8 and every \uD800-\uDFFF escape must be half
// of a high-low pair. Neither is replaced by U+FFFD. JSON null leaves s unchanged.
func (s *String) UnmarshalJSON(data []byte) error {
	if _, err := validate(string(data)); err != nil {
		return err
	}
	if err := checkSurrogateEscapes(data); err != nil {
		return err
	}

	var raw *string
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("%w: %v", errs.ErrConversionData, err)
	}
	if raw == nil {
		return nil
	}

	v, err := FromString(*raw)
	if err != nil {
		return err
	}
	*s = v

	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (s String) MarshalYAML() (any, error) {
	return s.data, nil
}

// UnmarshalYAML implements yaml.Unmarshaler. Only scalar nodes are accepted.
func (s *String) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("%w: yaml node at line %d is not a scalar", errs.ErrConversionData, value.Line)
	}

	v, err := FromString(value.Value)
	if err != nil {
		return err
	}
	*s = v

	return nil
}

// checkSurrogateEscapes rejects \u escapes that encode an unpaired surrogate. A high
// surrogate escape must be immediately followed by a low surrogate escape. Offsets
// are byte positions of the backslash in data.
func checkSurrogateEscapes(data []byte) error {
	pendingHigh := -1
	for i := 0; i < len(data); i++ {
		if data[i] != '\\' {
			if pendingHigh >= 0 {
				return errs.NewDataError(pendingHigh, "unpaired surrogate escape")
			}
			continue
		}
		if i+1 >= len(data) {
			break
		}
		if data[i+1] != 'u' {
			if pendingHigh >= 0 {
				return errs.NewDataError(pendingHigh, "unpaired surrogate escape")
			}
			i++ // skip the escaped byte, it may be a backslash or quote

			continue
		}

		unit, ok := hexUnit(data[i+2:])
		if !ok {
			// malformed escapes are left to the JSON decoder
			i++
			continue
		}

		switch {
		case unit >= 0xD800 && unit <= 0xDBFF:
			if pendingHigh >= 0 {
				return errs.NewDataError(pendingHigh, "unpaired surrogate escape")
			}
			pendingHigh = i
		case unit >= 0xDC00 && unit <= 0xDFFF:
			if pendingHigh < 0 {
				return errs.NewDataError(i, "unpaired surrogate escape")
			}
			pendingHigh = -1
		default:
			if pendingHigh >= 0 {
				return errs.NewDataError(pendingHigh, "unpaired surrogate escape")
			}
		}
		i += 5
	}
	if pendingHigh >= 0 {
		return errs.NewDataError(pendingHigh, "unpaired surrogate escape")
	}

	return nil
}

func hexUnit(b []byte) (uint16, bool) {
	if len(b) < 4 {
		return 0, false
	}

	var v uint16
	for _, c := range b[:4] {
		switch {
		case c >= '0' && c <= '9':
			c -= '0'
		case c >= 'a' && c <= 'f':
			c = c - 'a' + 10
		case c >= 'A' && c <= 'F':
			c = c - 'A' + 10
		default:
			return 0, false
		}
		v = v<<4 | uint16(c)
	}

	return v, true
}
