package compress

import (
	"encoding/binary"
	"fmt"
	"sync"

	"github.com/pierrec/lz4/v4"

	"github.com/arloliu/unistr/errs"
)

// lz4CompressorPool pools lz4.Compressor instances for reuse.
// The lz4.Compressor maintains a hash table that benefits from reuse.
var lz4CompressorPool = sync.Pool{
	New: func() any {
		return &lz4.Compressor{}
	},
}

// LZ4Compressor writes a raw LZ4 block prefixed with the uncompressed size as a
// uvarint, so decompression allocates the exact output size up front.
//
// Block layout:
//
//	+------------------+-----------+----------------+
//	| uvarint raw size | mode byte | block data     |
//	+------------------+-----------+----------------+
//
// Mode lz4BlockStored keeps incompressible input as is; lz4BlockCompressed holds an
// LZ4 block.
type LZ4Compressor struct{}

const (
	lz4BlockStored     byte = 0
	lz4BlockCompressed byte = 1
)

var _ Codec = (*LZ4Compressor)(nil)

// NewLZ4Compressor creates a new LZ4 compressor.
func NewLZ4Compressor() LZ4Compressor {
	return LZ4Compressor{}
}

// Compress compresses the input data using a pooled lz4.Compressor.
//
// Returns:
//   - []byte: Size-prefixed block (nil if input is empty)
//   - error: Compression error if any
func (c LZ4Compressor) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	var hdr [binary.MaxVarintLen64]byte
	hn := binary.PutUvarint(hdr[:], uint64(len(data)))

	dst := make([]byte, hn+1+lz4.CompressBlockBound(len(data)))
	copy(dst, hdr[:hn])

	lc, _ := lz4CompressorPool.Get().(*lz4.Compressor)
	defer lz4CompressorPool.Put(lc)

	n, err := lc.CompressBlock(data, dst[hn+1:])
	if err != nil {
		return nil, err
	}
	if n == 0 || n >= len(data) {
		dst[hn] = lz4BlockStored
		n = copy(dst[hn+1:], data)
	} else {
		dst[hn] = lz4BlockCompressed
	}

	return dst[:hn+1+n], nil
}

// Decompress decodes a block produced by Compress.
func (c LZ4Compressor) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	size, hn := binary.Uvarint(data)
	if hn <= 0 {
		return nil, fmt.Errorf("%w: lz4: malformed size prefix", errs.ErrInvalidPayload)
	}
	if size > MaxDecompressedSize {
		return nil, checkDecodedSize("lz4", MaxDecompressedSize+1)
	}
	if hn >= len(data) {
		return nil, fmt.Errorf("%w: lz4: missing block mode", errs.ErrInvalidPayload)
	}
	mode, body := data[hn], data[hn+1:]

	out := make([]byte, size)
	switch mode {
	case lz4BlockStored:
		if len(body) != int(size) {
			return nil, fmt.Errorf("%w: lz4: stored block has %d bytes, expected %d", errs.ErrInvalidPayload, len(body), size)
		}
		copy(out, body)

		return out, nil
	case lz4BlockCompressed:
	default:
		return nil, fmt.Errorf("%w: lz4: unknown block mode %d", errs.ErrInvalidPayload, mode)
	}

	n, err := lz4.UncompressBlock(body, out)
	if err != nil {
		return nil, fmt.Errorf("%w: lz4: %v", errs.ErrInvalidPayload, err)
	}
	if n != int(size) {
		return nil, fmt.Errorf("%w: lz4: decoded %d bytes, expected %d", errs.ErrInvalidPayload, n, size)
	}

	return out, nil
}
