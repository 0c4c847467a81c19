// Package fixstr provides fixed-capacity, stack-allocated UTF-16 string
// buffers for hot-path text composition.
//
// A fixed string holds its characters inline in a value of exact,
// compile-time-known size and never allocates while being built. Four
// capacities are available, named by their total storage in uint16
// units (one unit for the length field plus the character cells):
//
//   - String8:  up to 7 code units in 16 bytes
//   - String16: up to 15 code units in 32 bytes
//   - String32: up to 31 code units in 64 bytes
//   - String64: up to 63 code units in 128 bytes
//
// # Core Features
//
//   - Zero heap allocation while composing (only String() allocates)
//   - Silent truncation on overflow instead of errors, for hot paths
//   - Literal, formatted, and width-aligned append operations
//   - Content equality and FNV-1a hashing across capacities
//   - 64-bit xxHash identity for map keys (StringID)
//   - Deterministic fixed-size binary images for embedding
//
// # Basic Usage
//
// Composing a string from mixed literal and formatted segments:
//
//	import (
//	    "github.com/arloliu/fixstr"
//	    "github.com/arloliu/fixstr/spanfmt"
//	)
//
//	s := fixstr.NewString32("load=")
//	s.AppendFormatAligned(spanfmt.Float(0.75), 6, "f2")
//	s.AppendString(" host=")
//	s.AppendFormat(spanfmt.Int(42), "")
//	fmt.Println(s.String()) // "load=  0.75 host=42"
//
// # Package Structure
//
// This package provides convenient top-level wrappers around the buffer
// package. For the full API, the FixedString capability interface, and
// the binary codec, use the buffer package directly; the spanfmt package
// defines the formatting capability and its value adapters.
package fixstr

import (
	"github.com/arloliu/fixstr/buffer"
	"github.com/arloliu/fixstr/internal/hash"
)

// NewString8 creates a buffer holding up to 7 code units from s,
// silently truncating longer input.
func NewString8(s string) buffer.String8 {
	return buffer.NewString8(s)
}

// NewString16 creates a buffer holding up to 15 code units from s,
// silently truncating longer input.
func NewString16(s string) buffer.String16 {
	return buffer.NewString16(s)
}

// NewString32 creates a buffer holding up to 31 code units from s,
// silently truncating longer input.
func NewString32(s string) buffer.String32 {
	return buffer.NewString32(s)
}

// NewString64 creates a buffer holding up to 63 code units from s,
// silently truncating longer input.
func NewString64(s string) buffer.String64 {
	return buffer.NewString64(s)
}

// StringID computes the 64-bit xxHash identity of a fixed string's
// content.
//
// The hash is taken over the little-endian byte image of the code units,
// so it is deterministic across hosts and capacities: two buffers with
// equal content produce the same ID regardless of variant. Use it for
// O(1) map lookups and dedup keys where the 32-bit content hash is too
// narrow.
//
// Example:
//
//	key := fixstr.StringID(&name)
//	cache[key] = value
func StringID(s buffer.FixedString) uint64 {
	return hash.ID(s.Cells())
}
