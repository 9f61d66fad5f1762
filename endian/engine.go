// Package endian provides byte order engines for serializing text code units.
//
// UTF-16 and UTF-32 text has no single byte representation: each 16-bit or 32-bit
// code unit must be written in some byte order. This package combines the
// encoding/binary ByteOrder and AppendByteOrder interfaces into one EndianEngine so
// that encoders can both append and read code units through a single value.
//
// # Basic Usage
//
//	engine := endian.GetLittleEndianEngine()
//	data, err := s.Encode(format.EncodingUTF16, engine)
//
// The platform "wide" representation uses the host byte order:
//
//	engine := endian.NativeEngine()
//
// # Thread Safety
//
// All functions are safe for concurrent use. Engines are immutable and stateless.
package endian

import (
	"encoding/binary"
	"unsafe"
)

// EndianEngine combines ByteOrder and AppendByteOrder from encoding/binary.
//
// binary.LittleEndian and binary.BigEndian both satisfy it.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// CheckEndianness inspects the in-memory layout of a fixed value to determine the
// host byte order.
func CheckEndianness() binary.ByteOrder {
	var probe uint32 = 0x01020304
	first := *(*byte)(unsafe.Pointer(&probe))
	if first == 0x01 {
		return binary.BigEndian
	}

	return binary.LittleEndian
}

// NativeEngine returns the engine matching the host byte order.
func NativeEngine() EndianEngine {
	return EngineFor(CheckEndianness() == binary.BigEndian)
}

// GetLittleEndianEngine returns the little-endian engine.
func GetLittleEndianEngine() EndianEngine {
	return binary.LittleEndian
}

// GetBigEndianEngine returns the big-endian engine.
func GetBigEndianEngine() EndianEngine {
	return binary.BigEndian
}

// EngineFor returns the big-endian engine when bigEndian is true and the
// little-endian engine otherwise.
func EngineFor(bigEndian bool) EndianEngine {
	if bigEndian {
		return GetBigEndianEngine()
	}

	return GetLittleEndianEngine()
}
