package pack

import (
	"errors"
	"fmt"
	"io"

	"github.com/arloliu/unistr/compress"
	"github.com/arloliu/unistr/encoding"
	"github.com/arloliu/unistr/errs"
	"github.com/arloliu/unistr/internal/hash"
	"github.com/arloliu/unistr/ustr"
)

// Decoder parses a pack produced by Encoder.
type Decoder struct {
	data   []byte
	header Header
}

// NewDecoder parses and validates the pack header.
//
// The data slice is retained but never modified; decoded Strings do not alias it.
//
// Returns:
//   - *Decoder: A decoder ready for Decode
//   - error: errs.ErrInvalidHeaderSize if data is too short, errs.ErrInvalidHeaderFlags
//     for a bad magic number, reserved bit, encoding or compression
func NewDecoder(data []byte) (*Decoder, error) {
	if len(data) < HeaderSize {
		return nil, fmt.Errorf("%w: got %d bytes, need at least %d", errs.ErrInvalidHeaderSize, len(data), HeaderSize)
	}

	d := &Decoder{data: data}
	if err := d.header.Parse(data[:HeaderSize]); err != nil {
		return nil, err
	}
	if len(data) < d.header.DataOffset() {
		return nil, fmt.Errorf("%w: missing payload checksum", errs.ErrInvalidHeaderSize)
	}

	return d, nil
}

// Header returns a copy of the parsed header.
func (d *Decoder) Header() Header {
	return d.header
}

// Decode decompresses, verifies and decodes the payload.
//
// Returns:
//   - Pack: The decoded strings
//   - error: errs.ErrChecksumMismatch, errs.ErrInvalidPayload for a structurally
//     broken payload, or errs.ErrConversionData for invalid text
func (d *Decoder) Decode() (Pack, error) {
	h := d.header

	codec, err := compress.GetCodec(h.Flag.GetCompression())
	if err != nil {
		return Pack{}, err
	}

	if int64(h.PayloadSize) > int64(maxPayloadSize) {
		return Pack{}, fmt.Errorf("%w: header claims %d payload bytes, limit is %d",
			errs.ErrInvalidPayload, h.PayloadSize, maxPayloadSize)
	}

	payload, err := codec.Decompress(d.data[h.DataOffset():])
	if err != nil {
		return Pack{}, fmt.Errorf("failed to decompress payload: %w", err)
	}
	if len(payload) != int(h.PayloadSize) {
		return Pack{}, fmt.Errorf("%w: payload is %d bytes, header says %d", errs.ErrInvalidPayload, len(payload), h.PayloadSize)
	}

	engine := h.EndianEngine()
	if h.Flag.HasChecksum() {
		want := engine.Uint64(d.data[HeaderSize:])
		if got := hash.Bytes(payload); got != want {
			return Pack{}, fmt.Errorf("%w: got %016x, want %016x", errs.ErrChecksumMismatch, got, want)
		}
	}

	sd, err := encoding.NewStringDecoder(payload, h.Flag.GetTextEncoding(), engine)
	if err != nil {
		return Pack{}, err
	}

	// Every entry and reference takes at least one byte, which bounds preallocation.
	table := make([]ustr.String, 0, min(int(h.TableSize), len(payload)))
	for i := range int(h.TableSize) {
		s, err := sd.Next()
		if errors.Is(err, io.EOF) {
			return Pack{}, fmt.Errorf("%w: table ends after %d of %d entries", errs.ErrInvalidPayload, i, h.TableSize)
		}
		if err != nil {
			return Pack{}, fmt.Errorf("table entry %d: %w", i, err)
		}
		table = append(table, s)
	}

	var refs []uint32
	if h.Flag.HasDedup() {
		refs = make([]uint32, 0, min(int(h.Count), sd.Remaining()))
		for i := range int(h.Count) {
			ref, err := sd.ReadUvarint()
			if errors.Is(err, io.EOF) {
				return Pack{}, fmt.Errorf("%w: references end after %d of %d", errs.ErrInvalidPayload, i, h.Count)
			}
			if err != nil {
				return Pack{}, err
			}
			if ref >= uint64(h.TableSize) {
				return Pack{}, fmt.Errorf("%w: reference %d to entry %d outside table of %d",
					errs.ErrInvalidPayload, i, ref, h.TableSize)
			}
			refs = append(refs, uint32(ref)) //nolint:gosec
		}
	}

	if sd.Remaining() != 0 {
		return Pack{}, fmt.Errorf("%w: %d trailing bytes", errs.ErrInvalidPayload, sd.Remaining())
	}

	return Pack{table: table, refs: refs}, nil
}

// Decode parses a pack in one call.
func Decode(data []byte) (Pack, error) {
	d, err := NewDecoder(data)
	if err != nil {
		return Pack{}, err
	}

	return d.Decode()
}
