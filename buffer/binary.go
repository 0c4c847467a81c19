package buffer

import (
	"github.com/arloliu/fixstr/endian"
	"github.com/arloliu/fixstr/errs"
)

// marshalCells serializes the length field followed by the full cell
// array. Stale cells beyond the length serialize as zero so the image is
// deterministic regardless of prior buffer content.
func marshalCells(engine endian.EndianEngine, n uint16, units []uint16) []byte {
	b := make([]byte, 0, 2*(len(units)+1))
	b = engine.AppendUint16(b, n)
	for i, c := range units {
		if i >= int(n) {
			c = 0
		}
		b = engine.AppendUint16(b, c)
	}

	return b
}

// parseCells decodes a fixed-size image produced by marshalCells into
// the given cell array and returns the decoded length.
//
// Returns errs.ErrInvalidDataSize when data is not exactly
// 2*(len(units)+1) bytes, and errs.ErrLengthOutOfRange when the decoded
// length field exceeds the capacity. The cell array is only written on
// success.
func parseCells(engine endian.EndianEngine, data []byte, units []uint16) (uint16, error) {
	if len(data) != 2*(len(units)+1) {
		return 0, errs.ErrInvalidDataSize
	}

	n := engine.Uint16(data[0:2])
	if int(n) > len(units) {
		return 0, errs.ErrLengthOutOfRange
	}

	for i := range units {
		units[i] = engine.Uint16(data[2+2*i : 4+2*i])
	}

	return n, nil
}
