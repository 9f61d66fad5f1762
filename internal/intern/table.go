// Package intern deduplicates Strings while a pack is being encoded.
package intern

import "github.com/arloliu/unistr/ustr"

// Table assigns a dense index to every distinct String it sees.
//
// Strings are bucketed by their xxHash64. Distinct strings that share a hash are
// kept in the same bucket and told apart by comparing bytes, so a collision costs
// one extra comparison and never merges two different strings.
//
// Note: Table is NOT thread-safe.
type Table struct {
	buckets    map[uint64][]uint32 // hash → entry indices
	entries    []ustr.String       // insertion order
	collisions int
}

// NewTable creates an empty table with room for sizeHint distinct strings.
func NewTable(sizeHint int) *Table {
	return &Table{
		buckets: make(map[uint64][]uint32, sizeHint),
		entries: make([]ustr.String, 0, sizeHint),
	}
}

// Add returns the index of s, inserting it if it has not been seen.
//
// Returns:
//   - uint32: Index of s in Entries
//   - bool: true if s was inserted by this call
func (t *Table) Add(s ustr.String) (uint32, bool) {
	return t.add(s, s.Hash())
}

func (t *Table) add(s ustr.String, h uint64) (uint32, bool) {
	bucket := t.buckets[h]
	for _, idx := range bucket {
		if t.entries[idx].Equal(s) {
			return idx, false
		}
	}
	if len(bucket) > 0 {
		t.collisions++
	}

	idx := uint32(len(t.entries)) //nolint:gosec
	t.entries = append(t.entries, s)
	t.buckets[h] = append(bucket, idx)

	return idx, true
}

// Entries returns the distinct strings in insertion order. The slice is owned by
// the table.
func (t *Table) Entries() []ustr.String {
	return t.entries
}

// Len returns the number of distinct strings.
func (t *Table) Len() int {
	return len(t.entries)
}

// Collisions returns how many inserted strings shared a hash with an earlier,
// different string.
func (t *Table) Collisions() int {
	return t.collisions
}
