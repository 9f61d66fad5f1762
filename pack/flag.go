package pack

import (
	"fmt"

	"github.com/arloliu/unistr/errs"
	"github.com/arloliu/unistr/format"
)

// Flag is the packed leading part of the pack header.
type Flag struct {
	// Options is a packed field for various options.
	// Bit 0 is the dedup flag, 1 means a distinct-string table plus per-string references.
	// Bit 1 is the endianness flag, 0 means little-endian, 1 means big-endian.
	// Bit 2 is the checksum flag, 1 means an xxHash64 digest follows the header.
	// Bit 3 is reserved for future use, must be set to 0.
	// Bits 4-15 are the magic number 0xEC10 (0b1110_1100_0001_0000).
	Options uint16

	// TextEncoding is the format.TextEncoding of every table entry.
	TextEncoding uint8

	// Compression is the format.CompressionType applied to the payload.
	Compression uint8
}

// NewFlag creates a Flag with default settings: UTF-8, Zstd, little-endian, no
// dedup, no checksum.
func NewFlag() Flag {
	return Flag{
		Options:      MagicPackV1Opt,
		TextEncoding: uint8(format.EncodingUTF8),
		Compression:  uint8(format.CompressionZstd),
	}
}

// HasDedup returns whether the payload is deduplicated.
func (f Flag) HasDedup() bool {
	return f.Options&DedupMask != 0
}

// SetDedup enables or disables deduplication.
func (f *Flag) SetDedup(enabled bool) {
	if enabled {
		f.Options |= DedupMask
	} else {
		f.Options &^= DedupMask
	}
}

// HasChecksum returns whether a payload checksum follows the header.
func (f Flag) HasChecksum() bool {
	return f.Options&ChecksumMask != 0
}

// SetChecksum enables or disables the payload checksum.
func (f *Flag) SetChecksum(enabled bool) {
	if enabled {
		f.Options |= ChecksumMask
	} else {
		f.Options &^= ChecksumMask
	}
}

// IsBigEndian returns whether multi-byte fields and code units are big-endian.
func (f Flag) IsBigEndian() bool {
	return f.Options&EndiannessMask != 0
}

// WithLittleEndian sets little-endian byte order.
func (f *Flag) WithLittleEndian() {
	f.Options &^= EndiannessMask
}

// WithBigEndian sets big-endian byte order.
func (f *Flag) WithBigEndian() {
	f.Options |= EndiannessMask
}

// MagicNumber returns the magic number bits of Options.
func (f Flag) MagicNumber() uint16 {
	return f.Options & MagicNumberMask
}

// GetTextEncoding returns the text encoding of the table entries.
func (f Flag) GetTextEncoding() format.TextEncoding {
	return format.TextEncoding(f.TextEncoding)
}

// SetTextEncoding sets the text encoding of the table entries.
func (f *Flag) SetTextEncoding(enc format.TextEncoding) {
	f.TextEncoding = uint8(enc)
}

// GetCompression returns the payload compression type.
func (f Flag) GetCompression() format.CompressionType {
	return format.CompressionType(f.Compression)
}

// SetCompression sets the payload compression type.
func (f *Flag) SetCompression(ct format.CompressionType) {
	f.Compression = uint8(ct)
}

// Validate checks the magic number, reserved bits, text encoding and compression.
func (f Flag) Validate() error {
	if f.MagicNumber() != MagicPackV1Opt {
		return fmt.Errorf("%w: magic 0x%04X", errs.ErrInvalidHeaderFlags, f.MagicNumber())
	}
	if f.Options&ReservedBitsMask != 0 {
		return fmt.Errorf("%w: reserved bit set", errs.ErrInvalidHeaderFlags)
	}
	if !f.GetTextEncoding().IsValid() {
		return fmt.Errorf("%w: text encoding %d", errs.ErrInvalidHeaderFlags, f.TextEncoding)
	}
	if !f.GetCompression().IsValid() {
		return fmt.Errorf("%w: compression %d", errs.ErrInvalidHeaderFlags, f.Compression)
	}

	return nil
}
