package buffer

import (
	"github.com/arloliu/fixstr/endian"
	"github.com/arloliu/fixstr/internal/cells"
	"github.com/arloliu/fixstr/internal/hash"
	"github.com/arloliu/fixstr/spanfmt"
)

// String64 is a fixed-capacity string buffer holding up to Cap64 (63)
// UTF-16 code units inline, in exactly 64 uint16 storage units
// (128 bytes). The zero value is empty and ready for use. See String8
// for the semantics shared by all variants.
type String64 struct {
	n     uint16
	cells [Cap64]uint16
}

// NewString64 creates a String64 from the UTF-16 expansion of s,
// silently dropping input beyond Cap64 code units.
func NewString64(s string) String64 {
	var b String64
	b.AppendString(s)

	return b
}

// Len returns the current length in code units.
func (s *String64) Len() int { return int(s.n) }

// Cap returns the maximum length in code units.
func (s *String64) Cap() int { return Cap64 }

// Cells returns a zero-copy view of the content, valid until the next
// mutating call.
func (s *String64) Cells() []uint16 { return s.cells[:s.n] }

// Clear resets the length to zero without erasing stale cells.
func (s *String64) Clear() { s.n = 0 }

// AppendString appends the UTF-16 expansion of str, truncating silently.
func (s *String64) AppendString(str string) {
	s.n = uint16(cells.AppendString(s.cells[:], int(s.n), str))
}

// AppendCells appends raw code units, truncating silently.
func (s *String64) AppendCells(units []uint16) {
	s.n = uint16(cells.Append(s.cells[:], int(s.n), units))
}

// AppendFormat renders v into the remaining span; the formatter decides
// its own overflow policy.
func (s *String64) AppendFormat(v spanfmt.Formatter, spec string) {
	s.n = uint16(appendValue(s.cells[:], int(s.n), v, spec))
}

// AppendStringAligned appends str and pads it to the given field width.
func (s *String64) AppendStringAligned(str string, width int) {
	s.n = uint16(appendStringAligned(s.cells[:], int(s.n), str, width))
}

// AppendCellsAligned appends raw code units and pads them to width.
func (s *String64) AppendCellsAligned(units []uint16, width int) {
	s.n = uint16(appendCellsAligned(s.cells[:], int(s.n), units, width))
}

// AppendFormatAligned renders v and pads the rendering to width.
func (s *String64) AppendFormatAligned(v spanfmt.Formatter, width int, spec string) {
	s.n = uint16(appendValueAligned(s.cells[:], int(s.n), v, width, spec))
}

// String materializes the content as an owned UTF-8 string.
func (s *String64) String() string { return cells.String(s.Cells()) }

// Hash returns the 32-bit FNV-1a hash of the content.
func (s *String64) Hash() uint32 { return hash.Hash(s.Cells()) }

// Equal reports content equality with another fixed string of any capacity.
func (s *String64) Equal(o FixedString) bool { return contentEqual(s.Cells(), o) }

// FormatInto implements spanfmt.Formatter with an all-or-nothing copy of
// the content. The spec is ignored.
func (s *String64) FormatInto(dst []uint16, _ string) (int, bool) {
	return cells.CopyInto(dst, s.Cells())
}

// Bytes serializes the buffer into its deterministic 2*(Cap64+1)-byte image.
func (s *String64) Bytes(engine endian.EndianEngine) []byte {
	return marshalCells(engine, s.n, s.cells[:])
}

// Parse decodes a binary image produced by Bytes with the same engine.
func (s *String64) Parse(engine endian.EndianEngine, data []byte) error {
	n, err := parseCells(engine, data, s.cells[:])
	if err != nil {
		return err
	}
	s.n = n

	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (s *String64) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler with silent truncation.
func (s *String64) UnmarshalText(text []byte) error {
	s.Clear()
	s.AppendString(string(text))

	return nil
}
