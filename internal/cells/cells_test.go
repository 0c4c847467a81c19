package cells

import (
	"math"
	"testing"
	"unicode/utf16"

	"github.com/stretchr/testify/require"
)

func units(s string) []uint16 {
	return utf16.Encode([]rune(s))
}

// TestAppend verifies literal appends truncate at capacity.
func TestAppend(t *testing.T) {
	dst := make([]uint16, 7)

	n := Append(dst, 0, units("Hi"))
	require.Equal(t, 2, n)
	require.Equal(t, units("Hi"), dst[:n])

	n = Append(dst, n, units("thereabouts"))
	require.Equal(t, 7, n)
	require.Equal(t, units("Hithere"), dst[:n])

	// A full buffer drops further appends entirely.
	n = Append(dst, n, units("more"))
	require.Equal(t, 7, n)
	require.Equal(t, units("Hithere"), dst[:n])
}

// TestAppendEmpty verifies appending nothing is a no-op.
func TestAppendEmpty(t *testing.T) {
	dst := make([]uint16, 7)

	n := Append(dst, 0, nil)
	require.Equal(t, 0, n)

	n = AppendString(dst, 0, "")
	require.Equal(t, 0, n)
}

// TestAppendString verifies UTF-16 expansion of BMP and supplementary runes.
func TestAppendString(t *testing.T) {
	dst := make([]uint16, 15)

	n := AppendString(dst, 0, "héllo")
	require.Equal(t, 5, n)
	require.Equal(t, units("héllo"), dst[:n])

	// U+1F600 expands to a surrogate pair.
	n = AppendString(dst, n, "😀")
	require.Equal(t, 7, n)
	require.Equal(t, units("héllo😀"), dst[:n])
}

// TestAppendStringSplitsSurrogatePair verifies truncation may split a pair
// when only one unit of space remains.
func TestAppendStringSplitsSurrogatePair(t *testing.T) {
	dst := make([]uint16, 7)

	n := AppendString(dst, 0, "abcdef")
	require.Equal(t, 6, n)

	n = AppendString(dst, n, "😀")
	require.Equal(t, 7, n)

	hi, _ := utf16.EncodeRune('😀')
	require.Equal(t, uint16(hi), dst[6])
}

// TestAlignPadAfter verifies left alignment appends spaces.
func TestAlignPadAfter(t *testing.T) {
	dst := make([]uint16, 7)

	n := AppendString(dst, 0, "Hello")
	n = Align(dst, n, 0, -7)
	require.Equal(t, 7, n)
	require.Equal(t, units("Hello  "), dst[:n])
}

// TestAlignPadAfterClamped verifies left alignment clamps to remaining capacity.
func TestAlignPadAfterClamped(t *testing.T) {
	dst := make([]uint16, 7)

	n := AppendString(dst, 0, "Hello")
	n = Align(dst, n, 0, -100)
	require.Equal(t, 7, n)
	require.Equal(t, units("Hello  "), dst[:n])
}

// TestAlignPadBefore verifies right alignment shifts content and inserts spaces.
func TestAlignPadBefore(t *testing.T) {
	dst := make([]uint16, 7)

	n := AppendString(dst, 0, "Hi")
	n = Align(dst, n, 0, 5)
	require.Equal(t, 5, n)
	require.Equal(t, units("   Hi"), dst[:n])
}

// TestAlignPadBeforeMidBuffer verifies right alignment over a region that
// does not start at zero.
func TestAlignPadBeforeMidBuffer(t *testing.T) {
	dst := make([]uint16, 7)

	n := AppendString(dst, 0, "ab")
	start := n
	n = AppendString(dst, n, "cd")
	n = Align(dst, n, start, 4)
	require.Equal(t, 6, n)
	require.Equal(t, units("ab  cd"), dst[:n])
}

// TestAlignPadBeforeExceedsCapacity verifies the shift clamps: the tail of
// the written content that no longer fits is dropped.
func TestAlignPadBeforeExceedsCapacity(t *testing.T) {
	dst := make([]uint16, 7)

	n := AppendString(dst, 0, "Hello")
	n = Align(dst, n, 0, 10)
	require.Equal(t, 7, n)
	require.Equal(t, units("     He"), dst[:n])
}

// TestAlignPadBeforePushesContentOut verifies content starting near the end
// can be replaced entirely by padding.
func TestAlignPadBeforePushesContentOut(t *testing.T) {
	dst := make([]uint16, 7)

	n := AppendString(dst, 0, "abcde")
	start := n
	n = AppendString(dst, n, "xy")
	n = Align(dst, n, start, 4)
	require.Equal(t, 7, n)
	require.Equal(t, units("abcde  "), dst[:n])
}

// TestAlignNoOps verifies zero width and width at or below the written
// count leave the buffer untouched.
func TestAlignNoOps(t *testing.T) {
	dst := make([]uint16, 7)

	n := AppendString(dst, 0, "Hello")
	require.Equal(t, n, Align(dst, n, 0, 0))
	require.Equal(t, n, Align(dst, n, 0, 5))
	require.Equal(t, n, Align(dst, n, 0, 3))
	require.Equal(t, n, Align(dst, n, 0, -5))
	require.Equal(t, units("Hello"), dst[:n])
}

// TestAlignPathologicalWidths verifies extreme widths clamp instead of
// corrupting offsets.
func TestAlignPathologicalWidths(t *testing.T) {
	dst := make([]uint16, 7)

	n := AppendString(dst, 0, "Hi")
	n = Align(dst, n, 0, math.MinInt)
	require.Equal(t, 7, n)
	require.Equal(t, units("Hi     "), dst[:n])

	// The shift clamps to capacity-start, so an over-wide right-align
	// pushes the content out entirely and leaves only padding.
	dst2 := make([]uint16, 7)
	n = AppendString(dst2, 0, "Hi")
	n = Align(dst2, n, 0, math.MaxInt)
	require.Equal(t, 7, n)
	require.Equal(t, units("       "), dst2[:n])
}

// TestEqual verifies element-wise equality.
func TestEqual(t *testing.T) {
	require.True(t, Equal(units("abc"), units("abc")))
	require.True(t, Equal(nil, nil))
	require.True(t, Equal(nil, []uint16{}))
	require.False(t, Equal(units("abc"), units("abd")))
	require.False(t, Equal(units("abc"), units("ab")))
}

// TestCopyInto verifies the all-or-nothing copy contract.
func TestCopyInto(t *testing.T) {
	src := units("Hello")

	dst := make([]uint16, 5)
	w, ok := CopyInto(dst, src)
	require.True(t, ok)
	require.Equal(t, 5, w)
	require.Equal(t, src, dst)

	short := []uint16{0xFFFF, 0xFFFF, 0xFFFF, 0xFFFF}
	w, ok = CopyInto(short, src)
	require.False(t, ok)
	require.Equal(t, 0, w)
	require.Equal(t, []uint16{0xFFFF, 0xFFFF, 0xFFFF, 0xFFFF}, short)
}

// TestString verifies UTF-8 materialization round-trips through UTF-16.
func TestString(t *testing.T) {
	require.Equal(t, "", String(nil))
	require.Equal(t, "Hello", String(units("Hello")))
	require.Equal(t, "héllo😀", String(units("héllo😀")))
}
