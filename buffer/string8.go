package buffer

import (
	"github.com/arloliu/fixstr/endian"
	"github.com/arloliu/fixstr/internal/cells"
	"github.com/arloliu/fixstr/internal/hash"
	"github.com/arloliu/fixstr/spanfmt"
)

// String8 is a fixed-capacity string buffer holding up to Cap8 (7) UTF-16
// code units inline, in exactly 8 uint16 storage units (16 bytes): one
// unit for the length field and Cap8 for the character cells.
//
// The zero value is an empty buffer ready for use. String8 is a plain
// value type: assignment copies the content, there is no shared
// ownership, and no operation other than String() allocates. Appends
// beyond capacity truncate silently; see the package documentation for
// the overflow policy.
//
// Cells beyond Len() hold unspecified stale content. Compare buffers
// with Equal, never with ==.
type String8 struct {
	n     uint16
	cells [Cap8]uint16
}

// NewString8 creates a String8 from the UTF-16 expansion of s.
//
// Input beyond Cap8 code units is silently dropped. A supplementary
// plane rune straddling the capacity boundary is split after its high
// surrogate, matching literal append semantics.
//
// Parameters:
//   - s: Source text to seed the buffer with
//
// Returns:
//   - String8: A buffer containing the (possibly truncated) expansion of s
func NewString8(s string) String8 {
	var b String8
	b.AppendString(s)

	return b
}

// Len returns the current length in code units.
func (s *String8) Len() int { return int(s.n) }

// Cap returns the maximum length in code units.
func (s *String8) Cap() int { return Cap8 }

// Cells returns a zero-copy read-only view of the current content.
//
// The view aliases the buffer's inline storage and stays valid only
// until the next mutating call. The caller must not modify it.
func (s *String8) Cells() []uint16 { return s.cells[:s.n] }

// Clear resets the length to zero. Stale cell content is not erased;
// only cells below Len() are ever observable.
func (s *String8) Clear() { s.n = 0 }

// AppendString appends the UTF-16 expansion of str, silently truncating
// once the buffer is full.
func (s *String8) AppendString(str string) {
	s.n = uint16(cells.AppendString(s.cells[:], int(s.n), str))
}

// AppendCells appends raw code units, silently truncating once full.
func (s *String8) AppendCells(units []uint16) {
	s.n = uint16(cells.Append(s.cells[:], int(s.n), units))
}

// AppendFormat renders v into the remaining span.
//
// The formatter decides its own overflow policy: the buffer never
// retries with a shorter rendering, it just grows by the count the
// formatter reports. All spanfmt adapters write nothing when the full
// rendering does not fit. A full buffer still invokes the formatter
// with an empty span.
func (s *String8) AppendFormat(v spanfmt.Formatter, spec string) {
	s.n = uint16(appendValue(s.cells[:], int(s.n), v, spec))
}

// AppendStringAligned appends the UTF-16 expansion of str and pads it to
// the given field width.
//
// Width semantics follow conventional formatting rules: a negative width
// left-aligns (spaces appended after the new content), a positive width
// right-aligns (content shifted right, spaces inserted before it), and
// content already at or past abs(width) is left untouched. Padding that
// would overflow is clamped so the length never exceeds Cap8.
func (s *String8) AppendStringAligned(str string, width int) {
	s.n = uint16(appendStringAligned(s.cells[:], int(s.n), str, width))
}

// AppendCellsAligned appends raw code units and pads them to the given
// field width. See AppendStringAligned for width semantics.
func (s *String8) AppendCellsAligned(units []uint16, width int) {
	s.n = uint16(appendCellsAligned(s.cells[:], int(s.n), units, width))
}

// AppendFormatAligned renders v into the remaining span and pads the
// rendering to the given field width. See AppendStringAligned for width
// semantics.
func (s *String8) AppendFormatAligned(v spanfmt.Formatter, width int, spec string) {
	s.n = uint16(appendValueAligned(s.cells[:], int(s.n), v, width, spec))
}

// String materializes the content as an owned UTF-8 string. This is the
// one allocating operation on the type.
func (s *String8) String() string { return cells.String(s.Cells()) }

// Hash returns the 32-bit FNV-1a hash of the content, computed with one
// xor/multiply step per code unit. Buffers of different capacities with
// equal content hash equal.
func (s *String8) Hash() uint32 { return hash.Hash(s.Cells()) }

// Equal reports content equality with another fixed string of any
// capacity. No case folding or normalization is applied. A nil argument
// compares unequal.
func (s *String8) Equal(o FixedString) bool { return contentEqual(s.Cells(), o) }

// FormatInto implements spanfmt.Formatter, letting a String8 be appended
// to another fixed string buffer.
//
// The copy is all-or-nothing: when dst is shorter than Len(), nothing is
// written and the call reports (0, false). The spec is ignored.
func (s *String8) FormatInto(dst []uint16, _ string) (int, bool) {
	return cells.CopyInto(dst, s.Cells())
}

// Bytes serializes the buffer into a deterministic fixed-size binary
// image: the length unit followed by all Cap8 cell units, stale cells
// zeroed, each encoded with the given engine. The image is always
// 2*(Cap8+1) bytes.
func (s *String8) Bytes(engine endian.EndianEngine) []byte {
	return marshalCells(engine, s.n, s.cells[:])
}

// Parse decodes a binary image produced by Bytes with the same engine.
//
// Returns:
//   - error: errs.ErrInvalidDataSize if data is not exactly 2*(Cap8+1)
//     bytes, errs.ErrLengthOutOfRange if the length field exceeds Cap8
func (s *String8) Parse(engine endian.EndianEngine, data []byte) error {
	n, err := parseCells(engine, data, s.cells[:])
	if err != nil {
		return err
	}
	s.n = n

	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (s *String8) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler. Text beyond Cap8
// code units truncates silently, matching the append policy.
func (s *String8) UnmarshalText(text []byte) error {
	s.Clear()
	s.AppendString(string(text))

	return nil
}
