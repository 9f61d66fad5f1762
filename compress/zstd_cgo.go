//go:build cgo && gozstd

package compress

import (
	"fmt"

	"github.com/valyala/gozstd"

	"github.com/arloliu/unistr/errs"
)

const gozstdLevel = 7

// Compress compresses data into a single zstd frame using libzstd.
func (c ZstdCompressor) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	return gozstd.CompressLevel(nil, data, gozstdLevel), nil
}

// Decompress decodes a zstd frame using libzstd.
func (c ZstdCompressor) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	out, err := gozstd.Decompress(nil, data)
	if err != nil {
		return nil, fmt.Errorf("%w: zstd: %v", errs.ErrInvalidPayload, err)
	}
	if err := checkDecodedSize("zstd", len(out)); err != nil {
		return nil, err
	}

	return out, nil
}
