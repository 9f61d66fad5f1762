package pack

import (
	"fmt"

	"github.com/arloliu/unistr/endian"
	"github.com/arloliu/unistr/errs"
)

// Header is the fixed 16-byte pack header.
//
// Layout:
//
//	offset 0-1   Options       (always little-endian)
//	offset 2     TextEncoding
//	offset 3     Compression
//	offset 4-7   Count         number of strings in the pack
//	offset 8-11  TableSize     number of table entries
//	offset 12-15 PayloadSize   uncompressed payload size in bytes
//
// Count, TableSize and PayloadSize use the byte order selected by the flag.
type Header struct {
	Flag        Flag
	Count       uint32
	TableSize   uint32
	PayloadSize uint32
}

// NewHeader creates a header with default flags and zero counts.
func NewHeader() *Header {
	return &Header{Flag: NewFlag()}
}

// Parse parses the header from exactly HeaderSize bytes.
//
// Returns:
//   - error: errs.ErrInvalidHeaderSize for a wrong length, errs.ErrInvalidHeaderFlags
//     if the flag fails validation or the counts are inconsistent
func (h *Header) Parse(data []byte) error {
	if len(data) != HeaderSize {
		return fmt.Errorf("%w: got %d bytes, want %d", errs.ErrInvalidHeaderSize, len(data), HeaderSize)
	}

	// Options first: it decides the byte order of the remaining fields.
	h.Flag.Options = uint16(data[0]) | uint16(data[1])<<8
	h.Flag.TextEncoding = data[2]
	h.Flag.Compression = data[3]

	if err := h.Flag.Validate(); err != nil {
		return err
	}

	engine := h.EndianEngine()
	h.Count = engine.Uint32(data[4:8])
	h.TableSize = engine.Uint32(data[8:12])
	h.PayloadSize = engine.Uint32(data[12:16])

	if h.TableSize > h.Count {
		return fmt.Errorf("%w: table size %d exceeds count %d", errs.ErrInvalidHeaderFlags, h.TableSize, h.Count)
	}
	if !h.Flag.HasDedup() && h.TableSize != h.Count {
		return fmt.Errorf("%w: table size %d differs from count %d without dedup",
			errs.ErrInvalidHeaderFlags, h.TableSize, h.Count)
	}

	return nil
}

// Bytes serializes the header into HeaderSize bytes.
func (h *Header) Bytes() []byte {
	b := make([]byte, HeaderSize)

	b[0] = byte(h.Flag.Options)
	b[1] = byte(h.Flag.Options >> 8)
	b[2] = h.Flag.TextEncoding
	b[3] = h.Flag.Compression

	engine := h.EndianEngine()
	engine.PutUint32(b[4:8], h.Count)
	engine.PutUint32(b[8:12], h.TableSize)
	engine.PutUint32(b[12:16], h.PayloadSize)

	return b
}

// EndianEngine returns the engine matching the header's byte order flag.
func (h *Header) EndianEngine() endian.EndianEngine {
	return endian.EngineFor(h.Flag.IsBigEndian())
}

// DataOffset returns the offset of the payload within the pack.
func (h *Header) DataOffset() int {
	if h.Flag.HasChecksum() {
		return HeaderSize + ChecksumSize
	}

	return HeaderSize
}
