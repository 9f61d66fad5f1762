package pack

import (
	"fmt"

	"github.com/arloliu/unistr/compress"
	"github.com/arloliu/unistr/endian"
	"github.com/arloliu/unistr/errs"
	"github.com/arloliu/unistr/format"
	"github.com/arloliu/unistr/internal/options"
)

// EncoderConfig holds the header template and resolved collaborators of an Encoder.
type EncoderConfig struct {
	header *Header
	engine endian.EndianEngine
	codec  compress.Codec
}

func newEncoderConfig() *EncoderConfig {
	header := NewHeader()

	return &EncoderConfig{
		header: header,
		engine: header.EndianEngine(),
	}
}

func (c *EncoderConfig) setTextEncoding(enc format.TextEncoding) error {
	if !enc.IsValid() {
		return fmt.Errorf("%w: invalid text encoding %d", errs.ErrValue, enc)
	}
	c.header.Flag.SetTextEncoding(enc)

	return nil
}

func (c *EncoderConfig) setCompression(ct format.CompressionType) error {
	if !ct.IsValid() {
		return fmt.Errorf("%w: invalid compression %d", errs.ErrValue, ct)
	}
	c.header.Flag.SetCompression(ct)

	return nil
}

func (c *EncoderConfig) setBigEndian(big bool) {
	if big {
		c.header.Flag.WithBigEndian()
	} else {
		c.header.Flag.WithLittleEndian()
	}
	c.engine = c.header.EndianEngine()
}

// resolve looks up the codec after all options have been applied.
func (c *EncoderConfig) resolve() error {
	codec, err := compress.GetCodec(c.header.Flag.GetCompression())
	if err != nil {
		return fmt.Errorf("failed to create payload codec: %w", err)
	}
	c.codec = codec

	return nil
}

// EncoderOption is a functional option for configuring an Encoder.
type EncoderOption = options.Option[*EncoderConfig]

// WithTextEncoding selects how table entries are stored: format.EncodingUTF8,
// format.EncodingUTF16 or format.EncodingUTF32. Default is UTF-8.
func WithTextEncoding(enc format.TextEncoding) EncoderOption {
	return options.New(func(c *EncoderConfig) error {
		return c.setTextEncoding(enc)
	})
}

// WithCompression selects the payload compression. Default is format.CompressionZstd.
func WithCompression(ct format.CompressionType) EncoderOption {
	return options.New(func(c *EncoderConfig) error {
		return c.setCompression(ct)
	})
}

// WithLittleEndian writes counts and code units little-endian. This is the default.
func WithLittleEndian() EncoderOption {
	return options.NoError(func(c *EncoderConfig) {
		c.setBigEndian(false)
	})
}

// WithBigEndian writes counts and code units big-endian.
func WithBigEndian() EncoderOption {
	return options.NoError(func(c *EncoderConfig) {
		c.setBigEndian(true)
	})
}

// WithDedup stores each distinct string once and refers to it by index.
// Default is false.
func WithDedup(enabled bool) EncoderOption {
	return options.NoError(func(c *EncoderConfig) {
		c.header.Flag.SetDedup(enabled)
	})
}

// WithChecksum appends an xxHash64 digest of the uncompressed payload, verified on
// decode. Default is false.
func WithChecksum(enabled bool) EncoderOption {
	return options.NoError(func(c *EncoderConfig) {
		c.header.Flag.SetChecksum(enabled)
	})
}
