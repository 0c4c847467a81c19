package buffer

import (
	"github.com/arloliu/fixstr/internal/cells"
	"github.com/arloliu/fixstr/spanfmt"
)

// Usable capacities of the fixed string variants, in UTF-16 code units.
// Each variant stores one additional unit for its length field, so total
// storage is a power-of-two unit count (8, 16, 32, 64).
const (
	Cap8  = 7
	Cap16 = 15
	Cap32 = 31
	Cap64 = 63
)

// FixedString is the capability shared by every fixed string variant: a
// bounded-capacity, formattable, equatable text buffer with a known
// maximum length.
//
// Generic code constrains itself to this interface to stay
// capacity-agnostic; capacity-specific code uses the concrete types and
// the CapN constants. The interface embeds spanfmt.Formatter, so any
// fixed string can be formatted into another one.
type FixedString interface {
	spanfmt.Formatter

	// Len returns the current length in code units.
	Len() int
	// Cap returns the maximum length in code units.
	Cap() int
	// Cells returns a zero-copy view of the content, valid until the
	// next mutating call.
	Cells() []uint16
	// String materializes the content as an owned UTF-8 string.
	String() string
	// Hash returns the 32-bit FNV-1a hash of the content.
	Hash() uint32
	// Clear resets the length to zero.
	Clear()

	// AppendString appends a literal, truncating silently at capacity.
	AppendString(s string)
	// AppendCells appends raw code units, truncating silently at capacity.
	AppendCells(units []uint16)
	// AppendFormat renders v into the remaining span.
	AppendFormat(v spanfmt.Formatter, spec string)
	// AppendStringAligned appends a literal and pads it to width.
	AppendStringAligned(s string, width int)
	// AppendCellsAligned appends raw code units and pads them to width.
	AppendCellsAligned(units []uint16, width int)
	// AppendFormatAligned renders v and pads the rendering to width.
	AppendFormatAligned(v spanfmt.Formatter, width int, spec string)

	// Equal reports content equality with another fixed string of any
	// capacity. A nil argument compares unequal.
	Equal(o FixedString) bool
}

var (
	_ FixedString = (*String8)(nil)
	_ FixedString = (*String16)(nil)
	_ FixedString = (*String32)(nil)
	_ FixedString = (*String64)(nil)
)

// appendValue lets the formatter render into the remaining span and
// accounts for the reported count. The count is clamped to the span
// before use, so a misbehaving formatter cannot push the length past
// capacity. A full buffer still hands the formatter an empty span.
func appendValue(dst []uint16, n int, v spanfmt.Formatter, spec string) int {
	w, _ := v.FormatInto(dst[n:], spec)
	if w < 0 {
		w = 0
	}
	if w > len(dst)-n {
		w = len(dst) - n
	}

	return n + w
}

func appendValueAligned(dst []uint16, n int, v spanfmt.Formatter, width int, spec string) int {
	start := n
	n = appendValue(dst, n, v, spec)

	return cells.Align(dst, n, start, width)
}

func appendStringAligned(dst []uint16, n int, s string, width int) int {
	start := n
	n = cells.AppendString(dst, n, s)

	return cells.Align(dst, n, start, width)
}

func appendCellsAligned(dst []uint16, n int, units []uint16, width int) int {
	start := n
	n = cells.Append(dst, n, units)

	return cells.Align(dst, n, start, width)
}

func contentEqual(a []uint16, o FixedString) bool {
	if o == nil {
		return false
	}

	// A typed-nil variant slips past the interface nil check; an invalid
	// comparand compares unequal rather than panicking.
	switch v := o.(type) {
	case *String8:
		if v == nil {
			return false
		}
	case *String16:
		if v == nil {
			return false
		}
	case *String32:
		if v == nil {
			return false
		}
	case *String64:
		if v == nil {
			return false
		}
	}

	return cells.Equal(a, o.Cells())
}
