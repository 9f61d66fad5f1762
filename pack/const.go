package pack

import (
	"math"

	"github.com/arloliu/unistr/compress"
)

const (
	// Bit masks for Flag.Options
	DedupMask        = 0x0001 // bit 0: payload holds a distinct table plus references
	EndiannessMask   = 0x0002 // bit 1: 0 little-endian, 1 big-endian
	ChecksumMask     = 0x0004 // bit 2: an xxHash64 of the payload follows the header
	ReservedBitsMask = 0x0008 // bit 3: must be zero
	MagicNumberMask  = 0xFFF0 // bits 4-15

	// MagicPackV1Opt identifies version 1 of the pack format.
	MagicPackV1Opt = 0xEC10
)

const (
	HeaderSize   = 16 // fixed header size in bytes
	ChecksumSize = 8  // xxHash64 digest size in bytes

	// MaxStrings is the largest number of strings a pack can hold.
	MaxStrings = math.MaxUint32
)

// maxPayloadSize is the largest uncompressed payload Finish writes. It matches what
// every codec will decompress, so an encoded pack can always be decoded.
var maxPayloadSize = compress.MaxDecompressedSize
