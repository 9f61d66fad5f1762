package compress

// ZstdCompressor provides Zstandard compression. It gives the best ratio of the
// built-in codecs and suits packs that are written once and read rarely.
//
// The pure Go klauspost/compress implementation is used by default. Building with
// the gozstd tag on a cgo-enabled toolchain switches to the libzstd binding from
// valyala/gozstd; both produce standard zstd frames and interoperate.
type ZstdCompressor struct{}

var _ Codec = (*ZstdCompressor)(nil)

// NewZstdCompressor creates a new Zstd compressor with default settings.
//
// Example:
//
//	compressor := NewZstdCompressor()
//	compressed, err := compressor.Compress(data)
//	if err != nil {
//		return err
//	}
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}
