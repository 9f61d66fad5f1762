package pack

import (
	"fmt"

	"github.com/arloliu/unistr/encoding"
	"github.com/arloliu/unistr/errs"
	"github.com/arloliu/unistr/internal/hash"
	"github.com/arloliu/unistr/internal/intern"
	"github.com/arloliu/unistr/internal/options"
	"github.com/arloliu/unistr/ustr"
)

// Encoder accumulates Strings and serializes them into a pack.
//
// Without dedup every string is streamed into the table as it is added. With dedup
// the encoder keeps a distinct-string table and one reference per added string,
// and writes both on Finish.
//
// Note: Encoder is NOT thread-safe. After Finish the encoder cannot be reused.
type Encoder struct {
	cfg      *EncoderConfig
	stream   *encoding.StringEncoder
	table    *intern.Table
	refs     []uint32
	count    int
	finished bool
}

// NewEncoder creates a pack encoder.
//
// Parameters:
//   - opts: Encoder options (WithTextEncoding, WithCompression, WithBigEndian, ...)
//
// Returns:
//   - *Encoder: A new encoder
//   - error: The first option that failed to apply
//
// Example:
//
//	enc, err := pack.NewEncoder(
//	    pack.WithCompression(format.CompressionS2),
//	    pack.WithDedup(true),
//	)
func NewEncoder(opts ...EncoderOption) (*Encoder, error) {
	cfg := newEncoderConfig()
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}
	if err := cfg.resolve(); err != nil {
		return nil, err
	}

	stream, err := encoding.NewStringEncoder(cfg.header.Flag.GetTextEncoding(), cfg.engine)
	if err != nil {
		return nil, err
	}

	e := &Encoder{cfg: cfg, stream: stream}
	if cfg.header.Flag.HasDedup() {
		e.table = intern.NewTable(64)
	}

	return e, nil
}

// Add appends s to the pack.
//
// Returns:
//   - error: errs.ErrEncoderFinished after Finish, errs.ErrTooManyStrings once the
//     pack holds MaxStrings strings
func (e *Encoder) Add(s ustr.String) error {
	if e.finished {
		return errs.ErrEncoderFinished
	}
	if uint64(e.count) >= MaxStrings {
		return fmt.Errorf("%w: max %d", errs.ErrTooManyStrings, uint64(MaxStrings))
	}

	if e.table != nil {
		idx, _ := e.table.Add(s)
		e.refs = append(e.refs, idx)
	} else {
		e.stream.Write(s)
	}
	e.count++

	return nil
}

// AddSlice appends values in order. It stops at the first failure.
func (e *Encoder) AddSlice(values []ustr.String) error {
	for _, s := range values {
		if err := e.Add(s); err != nil {
			return err
		}
	}

	return nil
}

// Len returns the number of strings added.
func (e *Encoder) Len() int {
	return e.count
}

// Distinct returns the number of table entries the pack will hold.
func (e *Encoder) Distinct() int {
	if e.table != nil {
		return e.table.Len()
	}

	return e.count
}

// Collisions returns how many distinct strings shared a 64-bit hash with an earlier
// entry of the dedup table. It is always zero without dedup.
func (e *Encoder) Collisions() int {
	if e.table != nil {
		return e.table.Collisions()
	}

	return 0
}

// Finish completes the encoding and returns the pack bytes.
//
// An empty encoder produces a valid pack with zero strings. The internal buffers
// are released even on failure.
//
// Returns:
//   - []byte: The serialized pack, owned by the caller
//   - error: errs.ErrEncoderFinished on a second call, errs.ErrInvalidPayload if the
//     payload exceeds compress.MaxDecompressedSize, or a compression failure
func (e *Encoder) Finish() ([]byte, error) {
	if e.finished {
		return nil, errs.ErrEncoderFinished
	}
	e.finished = true
	defer e.stream.Reset()

	header := *e.cfg.header
	header.Count = uint32(e.count) //nolint:gosec
	header.TableSize = uint32(e.Distinct()) //nolint:gosec

	if e.table != nil {
		e.stream.WriteSlice(e.table.Entries())
		for _, ref := range e.refs {
			e.stream.WriteUvarint(uint64(ref))
		}
	}

	payload := e.stream.Bytes()
	if len(payload) > maxPayloadSize {
		return nil, fmt.Errorf("%w: payload of %d bytes exceeds the %d byte limit",
			errs.ErrInvalidPayload, len(payload), maxPayloadSize)
	}
	header.PayloadSize = uint32(len(payload)) //nolint:gosec

	compressed, err := e.cfg.codec.Compress(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to compress payload: %w", err)
	}

	out := make([]byte, header.DataOffset()+len(compressed))
	offset := copy(out, header.Bytes())
	if header.Flag.HasChecksum() {
		e.cfg.engine.PutUint64(out[offset:], hash.Bytes(payload))
		offset += ChecksumSize
	}
	copy(out[offset:], compressed)

	return out, nil
}

// Encode serializes values into a pack in one call.
func Encode(values []ustr.String, opts ...EncoderOption) ([]byte, error) {
	enc, err := NewEncoder(opts...)
	if err != nil {
		return nil, err
	}
	if err := enc.AddSlice(values); err != nil {
		return nil, err
	}

	return enc.Finish()
}
