package compress

import (
	"fmt"
	"time"

	"github.com/arloliu/unistr/errs"
	"github.com/arloliu/unistr/format"
)

// MaxDecompressedSize bounds the output of every Decompress call. Payloads claiming a
// larger size are rejected as corrupt rather than allocated.
const MaxDecompressedSize = 256 << 20

// Compressor compresses a serialized string table.
//
// Memory management:
//   - Returned slice is owned by the caller unless the codec documents otherwise
//   - Input slice is not modified
type Compressor interface {
	Compress(data []byte) ([]byte, error)
}

// Decompressor restores data produced by the matching Compressor.
//
// Implementations must be safe for concurrent use.
type Decompressor interface {
	// Decompress returns an error if data is corrupted, was produced by another
	// algorithm, or would expand beyond MaxDecompressedSize.
	Decompress(data []byte) ([]byte, error)
}

// Codec combines both compression and decompression capabilities.
type Codec interface {
	Compressor
	Decompressor
}

// Stats describes one compression round trip.
type Stats struct {
	Algorithm         format.CompressionType
	OriginalSize      int
	CompressedSize    int
	CompressionTime   time.Duration
	DecompressionTime time.Duration
}

// Ratio returns compressed size / original size, or 0 for empty input.
func (s Stats) Ratio() float64 {
	if s.OriginalSize == 0 {
		return 0
	}

	return float64(s.CompressedSize) / float64(s.OriginalSize)
}

// SpaceSavings returns the space saved as a percentage.
func (s Stats) SpaceSavings() float64 {
	if s.OriginalSize == 0 {
		return 0
	}

	return (1.0 - s.Ratio()) * 100.0
}

// Measure compresses and decompresses data with the built-in codec for ct and
// reports sizes and timings. The round trip is verified byte for byte.
//
// Returns:
//   - Stats: Sizes and timings of the round trip
//   - error: Unknown compression type, codec failure, or round trip mismatch
func Measure(ct format.CompressionType, data []byte) (Stats, error) {
	codec, err := GetCodec(ct)
	if err != nil {
		return Stats{}, err
	}

	stats := Stats{Algorithm: ct, OriginalSize: len(data)}

	start := time.Now()
	compressed, err := codec.Compress(data)
	if err != nil {
		return stats, err
	}
	stats.CompressionTime = time.Since(start)
	stats.CompressedSize = len(compressed)

	start = time.Now()
	restored, err := codec.Decompress(compressed)
	if err != nil {
		return stats, err
	}
	stats.DecompressionTime = time.Since(start)

	if string(restored) != string(data) {
		return stats, fmt.Errorf("%w: %s round trip altered the data", errs.ErrInvalidPayload, ct)
	}

	return stats, nil
}

var builtinCodecs = map[format.CompressionType]Codec{
	format.CompressionNone: NewNoOpCompressor(),
	format.CompressionZstd: NewZstdCompressor(),
	format.CompressionS2:   NewS2Compressor(),
	format.CompressionLZ4:  NewLZ4Compressor(),
}

// GetCodec returns the shared built-in Codec for the compression type.
//
// Built-in codecs are stateless and safe for concurrent use.
//
// Returns:
//   - Codec: The codec instance
//   - error: errs.ErrValue for an unknown compression type
func GetCodec(ct format.CompressionType) (Codec, error) {
	if codec, ok := builtinCodecs[ct]; ok {
		return codec, nil
	}

	return nil, fmt.Errorf("%w: unsupported compression type %s", errs.ErrValue, ct)
}

func checkDecodedSize(algo string, n int) error {
	if n < 0 || n > MaxDecompressedSize {
		return fmt.Errorf("%w: %s payload claims %d decompressed bytes", errs.ErrInvalidPayload, algo, n)
	}

	return nil
}
