package compress

import (
	"fmt"

	"github.com/klauspost/compress/s2"

	"github.com/arloliu/unistr/errs"
)

// S2Compressor uses S2, the Snappy-compatible block format from klauspost/compress.
// String tables with repeated prefixes compress well at S2's "better" level.
type S2Compressor struct{}

var _ Codec = (*S2Compressor)(nil)

// NewS2Compressor creates a new S2 compressor.
func NewS2Compressor() S2Compressor {
	return S2Compressor{}
}

// Compress compresses data as a single S2 block.
func (c S2Compressor) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	return s2.EncodeBetter(nil, data), nil
}

// Decompress decodes an S2 block after checking its declared length.
func (c S2Compressor) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	n, err := s2.DecodedLen(data)
	if err != nil {
		return nil, fmt.Errorf("%w: s2: %v", errs.ErrInvalidPayload, err)
	}
	if err := checkDecodedSize("s2", n); err != nil {
		return nil, err
	}

	out, err := s2.Decode(make([]byte, n), data)
	if err != nil {
		return nil, fmt.Errorf("%w: s2: %v", errs.ErrInvalidPayload, err)
	}

	return out, nil
}
