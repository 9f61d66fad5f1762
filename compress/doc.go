// Package compress provides the compression codecs applied to serialized string
// tables in a text pack.
//
// A pack first lays out its strings with the length-prefixed stream codec and then
// compresses the whole table in one call. Natural-language text and identifiers
// compress well, so a pack usually shrinks by a factor of two or more.
//
// # Supported Algorithms
//
//   - format.CompressionNone: pass-through, no CPU cost
//   - format.CompressionZstd: best ratio, moderate speed
//   - format.CompressionS2: fast with a good ratio
//   - format.CompressionLZ4: fastest decompression
//
// All codecs implement the same interface:
//
//	type Codec interface {
//	    Compress(data []byte) ([]byte, error)
//	    Decompress(data []byte) ([]byte, error)
//	}
//
// Retrieve the shared instance for a compression type with GetCodec:
//
//	codec, err := compress.GetCodec(format.CompressionZstd)
//	compressed, err := codec.Compress(table)
//
// Measure runs a verified round trip and reports sizes and timings, which is handy
// when picking a codec for a given corpus:
//
//	stats, err := compress.Measure(format.CompressionS2, table)
//	fmt.Printf("%.1f%% saved\n", stats.SpaceSavings())
//
// # Zstd Backends
//
// Zstd uses the pure Go github.com/klauspost/compress/zstd by default. Building with
// both cgo and the gozstd tag selects the libzstd binding github.com/valyala/gozstd:
//
//	go build -tags gozstd ./...
//
// # Safety
//
// Every Decompress call rejects payloads that would expand beyond
// MaxDecompressedSize, so a corrupt or hostile pack cannot trigger an unbounded
// allocation. Corruption is reported as errs.ErrInvalidPayload.
//
// # Thread Safety
//
// All built-in codecs are stateless values backed by sync.Pool and are safe for
// concurrent use.
package compress
