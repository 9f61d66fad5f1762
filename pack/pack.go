package pack

import (
	"iter"
	"slices"

	"github.com/arloliu/unistr/errs"
	"github.com/arloliu/unistr/ustr"
)

// Pack is a decoded, read-only sequence of Strings.
//
// A deduplicated pack shares one String value per distinct entry; since Strings
// are immutable values this sharing is not observable.
type Pack struct {
	table []ustr.String
	refs  []uint32 // nil unless deduplicated
}

// Len returns the number of strings in the pack.
func (p Pack) Len() int {
	if p.refs != nil {
		return len(p.refs)
	}

	return len(p.table)
}

// Distinct returns the number of table entries.
func (p Pack) Distinct() int {
	return len(p.table)
}

// At returns the string at index i.
//
// Returns:
//   - error: *errs.IndexError wrapping errs.ErrOutOfBounds if i is outside [0, Len())
func (p Pack) At(i int) (ustr.String, error) {
	if i < 0 || i >= p.Len() {
		return ustr.String{}, errs.NewIndexError(i, p.Len(), "pack")
	}

	return p.at(i), nil
}

func (p Pack) at(i int) ustr.String {
	if p.refs != nil {
		return p.table[p.refs[i]]
	}

	return p.table[i]
}

// All iterates (index, String) pairs in insertion order.
func (p Pack) All() iter.Seq2[int, ustr.String] {
	return func(yield func(int, ustr.String) bool) {
		for i := range p.Len() {
			if !yield(i, p.at(i)) {
				return
			}
		}
	}
}

// Strings returns a new slice holding every string in insertion order.
func (p Pack) Strings() []ustr.String {
	if p.refs == nil {
		return slices.Clone(p.table)
	}

	out := make([]ustr.String, len(p.refs))
	for i, ref := range p.refs {
		out[i] = p.table[ref]
	}

	return out
}
