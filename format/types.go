package format

type (
	TextEncoding    uint8
	CompressionType uint8
)

const (
	EncodingUTF8  TextEncoding = 0x1 // EncodingUTF8 stores text as UTF-8 bytes.
	EncodingUTF16 TextEncoding = 0x2 // EncodingUTF16 stores text as 16-bit code units with surrogate pairs.
	EncodingUTF32 TextEncoding = 0x3 // EncodingUTF32 stores text as 32-bit scalar values.

	CompressionNone CompressionType = 0x1 // CompressionNone represents no compression.
	CompressionZstd CompressionType = 0x2 // CompressionZstd represents Zstandard compression.
	CompressionS2   CompressionType = 0x3 // CompressionS2 represents S2 compression.
	CompressionLZ4  CompressionType = 0x4 // CompressionLZ4 represents LZ4 compression.
)

func (e TextEncoding) String() string {
	switch e {
	case EncodingUTF8:
		return "UTF-8"
	case EncodingUTF16:
		return "UTF-16"
	case EncodingUTF32:
		return "UTF-32"
	default:
		return "Unknown"
	}
}

// UnitSize returns the size in bytes of one code unit, or 0 for an unknown encoding.
func (e TextEncoding) UnitSize() int {
	switch e {
	case EncodingUTF8:
		return 1
	case EncodingUTF16:
		return 2
	case EncodingUTF32:
		return 4
	default:
		return 0
	}
}

// IsValid reports whether e is a known text encoding.
func (e TextEncoding) IsValid() bool {
	return e.UnitSize() != 0
}

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}

// IsValid reports whether c is a known compression type.
func (c CompressionType) IsValid() bool {
	switch c {
	case CompressionNone, CompressionZstd, CompressionS2, CompressionLZ4:
		return true
	default:
		return false
	}
}
