// Package syspath models filesystem paths as sequences of Unicode components.
//
// A Path keeps its components as ustr.String values, so every component is
// well-formed UTF-8 and can be rendered with either Unix or Windows separators.
// The root of an absolute Unix path is kept as a single "/" component.
package syspath

import (
	"runtime"
	"slices"

	"github.com/arloliu/unistr/errs"
	"github.com/arloliu/unistr/ustr"
)

var (
	unixSep    = ustr.MustFromString("/")
	windowsSep = ustr.MustFromString(`\`)
)

// Path is an ordered list of path components.
//
// The zero value is an empty path. Mutating methods require exclusive access.
type Path struct {
	components []ustr.String
}

// New creates a path from components. The slice is copied.
func New(components ...ustr.String) Path {
	return Path{components: slices.Clone(components)}
}

// Parse splits s with the separator of the host platform.
func Parse(s ustr.String) Path {
	if runtime.GOOS == "windows" {
		return ParseWindows(s)
	}

	return ParseUnix(s)
}

// ParseUnix splits s on '/'. Repeated separators collapse, a trailing separator is
// dropped and a leading separator becomes the "/" root component.
//
// Example:
//
//	ParseUnix(ustr.MustFromString("/usr//lib/")) // ["/", "usr", "lib"]
func ParseUnix(s ustr.String) Path {
	p := parse(s, unixSep)
	if len(p.components) > 0 && p.components[0].IsEmpty() {
		p.components[0] = unixSep
	}

	return p
}

// ParseWindows splits s on '\'. Repeated separators collapse and a trailing
// separator is dropped.
func ParseWindows(s ustr.String) Path {
	return parse(s, windowsSep)
}

func parse(s, sep ustr.String) Path {
	if s.IsEmpty() {
		return Path{}
	}

	s.RemoveDuplicates(sep)
	parts, _ := s.Split(sep) // sep is never empty
	if n := len(parts); n > 1 && parts[n-1].IsEmpty() {
		parts = parts[:n-1]
	}

	return Path{components: parts}
}

// FromNative validates raw bytes, such as a name returned by the operating system,
// and parses them with the host separator.
//
// Returns:
//   - error: errs.ErrConversionData if b is not valid UTF-8
func FromNative(b []byte) (Path, error) {
	s, err := ustr.New(b)
	if err != nil {
		return Path{}, err
	}

	return Parse(s), nil
}

// Join appends component and returns p for chaining. Copies of p taken earlier
// are not affected.
func (p *Path) Join(component ustr.String) *Path {
	p.components = append(slices.Clip(p.components), component)
	return p
}

// Extend appends every component of other.
func (p *Path) Extend(other Path) {
	p.components = append(slices.Clip(p.components), other.components...)
}

// Joined returns a new path made of p followed by other. p is unchanged.
func (p Path) Joined(other Path) Path {
	out := make([]ustr.String, 0, len(p.components)+len(other.components))
	out = append(out, p.components...)

	return Path{components: append(out, other.components...)}
}

// Insert inserts component before index. index may equal Len(), which appends.
//
// Returns:
//   - error: *errs.IndexError wrapping errs.ErrOutOfBounds if index > Len()
func (p *Path) Insert(index int, component ustr.String) error {
	if index < 0 || index > len(p.components) {
		return errs.NewIndexError(index, len(p.components)+1, "path insertion")
	}
	p.components = slices.Insert(slices.Clip(p.components), index, component)

	return nil
}

// Remove deletes the component at index.
//
// Returns:
//   - error: *errs.IndexError wrapping errs.ErrOutOfBounds if index >= Len()
func (p *Path) Remove(index int) error {
	if index < 0 || index >= len(p.components) {
		return errs.NewIndexError(index, len(p.components), "path component")
	}
	p.components = slices.Delete(slices.Clone(p.components), index, index+1)

	return nil
}

// Clear removes every component.
func (p *Path) Clear() {
	p.components = nil
}

// Len returns the number of components.
func (p Path) Len() int {
	return len(p.components)
}

// IsEmpty reports whether p has no components.
func (p Path) IsEmpty() bool {
	return len(p.components) == 0
}

// Components returns a copy of the components.
func (p Path) Components() []ustr.String {
	return slices.Clone(p.components)
}

// At returns the component at index i.
func (p Path) At(i int) (ustr.String, error) {
	if i < 0 || i >= len(p.components) {
		return ustr.String{}, errs.NewIndexError(i, len(p.components), "path component")
	}

	return p.components[i], nil
}

// Front returns the first component.
//
// Returns:
//   - error: errs.ErrOutOfBounds if p is empty
func (p Path) Front() (ustr.String, error) {
	return p.At(0)
}

// Back returns the last component.
//
// Returns:
//   - error: errs.ErrOutOfBounds if p is empty
func (p Path) Back() (ustr.String, error) {
	return p.At(len(p.components) - 1)
}

// Extension returns the text after the last '.' of the final component, or the
// empty string if there is none.
func (p Path) Extension() ustr.String {
	if len(p.components) == 0 {
		return ustr.String{}
	}

	last := p.components[len(p.components)-1]
	dot := last.LastIndex(ustr.MustFromString("."))
	if dot < 0 {
		return ustr.String{}
	}
	ext, _ := last.Slice(dot+1, last.Len())

	return ext
}

// Equal reports whether p and other have identical components.
func (p Path) Equal(other Path) bool {
	return slices.Equal(p.components, other.components)
}

// Compare orders shorter paths first and paths of equal length by their
// components.
func (p Path) Compare(other Path) int {
	if d := len(p.components) - len(other.components); d != 0 {
		if d < 0 {
			return -1
		}

		return 1
	}

	return slices.CompareFunc(p.components, other.components, ustr.String.Compare)
}

// Less reports whether p sorts before other.
func (p Path) Less(other Path) bool {
	return p.Compare(other) < 0
}

// ToUnix joins the components with '/'. A leading "/" root component is not
// doubled.
func (p Path) ToUnix() ustr.String {
	if len(p.components) > 0 && p.components[0].Equal(unixSep) {
		return unixSep.Concatenated(ustr.Join(p.components[1:], unixSep))
	}

	return ustr.Join(p.components, unixSep)
}

// ToWindows joins the components with '\'.
func (p Path) ToWindows() ustr.String {
	return ustr.Join(p.components, windowsSep)
}

// ToNative renders p with the separator of the host platform.
func (p Path) ToNative() ustr.String {
	if runtime.GOOS == "windows" {
		return p.ToWindows()
	}

	return p.ToUnix()
}

// String returns the native rendering of p.
func (p Path) String() string {
	return p.ToNative().String()
}
