package compress

// NoOpCompressor passes data through unchanged. It backs format.CompressionNone.
type NoOpCompressor struct{}

var _ Codec = (*NoOpCompressor)(nil)

// NewNoOpCompressor creates a pass-through codec.
func NewNoOpCompressor() NoOpCompressor {
	return NoOpCompressor{}
}

// Compress returns data itself.
//
// Note: The returned slice shares memory with the input.
func (c NoOpCompressor) Compress(data []byte) ([]byte, error) {
	return data, nil
}

// Decompress returns data itself, subject to MaxDecompressedSize.
func (c NoOpCompressor) Decompress(data []byte) ([]byte, error) {
	if err := checkDecodedSize("none", len(data)); err != nil {
		return nil, err
	}

	return data, nil
}
