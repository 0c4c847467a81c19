// Package endian provides byte order utilities for serializing fixed
// string buffers.
//
// The package combines the ByteOrder and AppendByteOrder interfaces from
// encoding/binary into a single EndianEngine interface so the buffer
// codec can both write into pre-sized slices and append to growing ones
// through one value.
//
// # Basic Usage
//
// Most callers should use GetLittleEndianEngine(), the standard byte
// order for fixstr binary images:
//
//	import "github.com/arloliu/fixstr/endian"
//
//	engine := endian.GetLittleEndianEngine()
//	data := str.Bytes(engine)
//
// For interoperability with big-endian producers:
//
//	engine := endian.GetBigEndianEngine()
//	err := str.Parse(engine, data)
//
// # Thread Safety
//
// All functions in this package are safe for concurrent use. The
// returned EndianEngine instances are immutable and stateless.
package endian

import (
	"encoding/binary"
	"unsafe"
)

// EndianEngine combines ByteOrder and AppendByteOrder from encoding/binary
// into a single interface for convenient byte order operations.
//
// This interface is satisfied by binary.LittleEndian and binary.BigEndian
// from the standard library, making it fully compatible with existing Go
// code while providing access to both read/write and append operations.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// NativeEndianness uses a fixed integer value to determine the host's byte order.
func NativeEndianness() binary.ByteOrder {
	// 0x0100 is 256. A little-endian host stores the LSB (0x00) first,
	// a big-endian host stores the MSB (0x01) first.
	var i uint16 = 0x0100

	b := (*[2]byte)(unsafe.Pointer(&i))
	if b[0] == 0x01 {
		return binary.BigEndian
	}

	return binary.LittleEndian
}

// IsNativeLittleEndian reports whether the host stores integers little-endian.
func IsNativeLittleEndian() bool {
	return NativeEndianness() == binary.LittleEndian
}

// GetLittleEndianEngine returns the little-endian engine.
func GetLittleEndianEngine() EndianEngine {
	return binary.LittleEndian
}

// GetBigEndianEngine returns the big-endian engine.
func GetBigEndianEngine() EndianEngine {
	return binary.BigEndian
}
