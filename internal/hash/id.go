// Package hash provides the hashing primitives for fixed string buffers:
// a 32-bit FNV-1a content hash and a 64-bit xxHash identity.
package hash

import (
	"unsafe"

	"github.com/cespare/xxhash/v2"

	"github.com/arloliu/fixstr/endian"
)

const (
	fnvOffset32 = 2166136261
	fnvPrime32  = 16777619
)

// Hash computes the 32-bit FNV-1a hash of the given code units.
//
// Each 16-bit unit contributes one xor/multiply step using its numeric
// value directly, not its byte decomposition, so the hash of ASCII
// content matches byte-wise FNV-1a while non-ASCII content hashes by
// whole units.
func Hash(units []uint16) uint32 {
	h := uint32(fnvOffset32)
	for _, c := range units {
		h = (h ^ uint32(c)) * fnvPrime32
	}

	return h
}

// ID computes the xxHash64 of the little-endian byte image of the given
// code units.
//
// The byte image is endian-stable, so IDs are comparable across hosts.
// Use ID for 64-bit map keys and dedup identity; use Hash for the
// 32-bit content hash contract.
func ID(units []uint16) uint64 {
	if len(units) == 0 {
		return xxhash.Sum64(nil)
	}

	if endian.IsNativeLittleEndian() {
		// Reinterpret the units in place; the in-memory image already is
		// the little-endian byte image on this host.
		b := unsafe.Slice((*byte)(unsafe.Pointer(&units[0])), len(units)*2)

		return xxhash.Sum64(b)
	}

	b := make([]byte, len(units)*2)
	for i, c := range units {
		b[2*i] = byte(c)
		b[2*i+1] = byte(c >> 8)
	}

	return xxhash.Sum64(b)
}
