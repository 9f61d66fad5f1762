// Package hash computes content hashes for text values.
package hash

import "github.com/cespare/xxhash/v2"

// ID computes the xxHash64 of the given string.
func ID(data string) uint64 {
	return xxhash.Sum64String(data)
}

// Bytes computes the xxHash64 of the given byte slice.
func Bytes(data []byte) uint64 {
	return xxhash.Sum64(data)
}

// Digest accumulates an xxHash64 over multiple writes.
type Digest struct {
	d *xxhash.Digest
}

// NewDigest returns an empty Digest.
func NewDigest() Digest {
	return Digest{d: xxhash.New()}
}

// WriteString adds s to the digest.
func (d Digest) WriteString(s string) {
	_, _ = d.d.WriteString(s)
}

// Write adds b to the digest.
func (d Digest) Write(b []byte) {
	_, _ = d.d.Write(b)
}

// Sum64 returns the current hash.
func (d Digest) Sum64() uint64 {
	return d.d.Sum64()
}
