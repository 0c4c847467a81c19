// Package cells implements the shared append/align/truncate engine that
// backs every fixed string variant.
//
// All functions operate on a full-capacity cell slice plus the current
// length and return the new length. No function ever writes outside the
// given slice; overflow is handled by silent truncation, and all width
// and offset arithmetic is clamped before use.
package cells

import "unicode/utf16"

// Space is the UTF-16 code unit used for alignment padding.
const Space = 0x0020

const maxInt = int(^uint(0) >> 1)

// Append copies as many units from src as fit into the remaining
// capacity of dst and returns the new length. Excess units are dropped.
func Append(dst []uint16, n int, src []uint16) int {
	return n + copy(dst[n:], src)
}

// AppendString appends the UTF-16 expansion of s, truncating by code
// unit once dst is full. A supplementary-plane rune that only has room
// for one of its two surrogate units is split; the spare unit is dropped.
func AppendString(dst []uint16, n int, s string) int {
	for _, r := range s {
		if n >= len(dst) {
			break
		}
		if r < 0x10000 {
			dst[n] = uint16(r)
			n++
			continue
		}

		hi, lo := utf16.EncodeRune(r)
		dst[n] = uint16(hi)
		n++
		if n < len(dst) {
			dst[n] = uint16(lo)
			n++
		}
	}

	return n
}

// Align applies field-width padding over the region dst[start:n] and
// returns the new length.
//
// A width of 0 is a no-op. A negative width left-aligns: up to
// abs(width)-written spaces are appended after the region, clamped to the
// remaining capacity. A positive width right-aligns: the region is
// shifted right by width-written positions (clamped so nothing lands past
// capacity) and the freed cells are filled with spaces. Content longer
// than abs(width) is left untouched; width is a minimum, never a maximum.
//
// The shift and the space fill overlap, so the surviving tail is moved
// first with overlap-safe copy semantics before the gap is overwritten.
func Align(dst []uint16, n, start, width int) int {
	if width == 0 {
		return n
	}

	capacity := len(dst)
	written := n - start

	padAfter := width < 0
	if padAfter {
		width = -width
		if width < 0 {
			// negating MinInt overflows; anything past capacity clamps the same
			width = maxInt
		}
	}

	pad := width - written
	if pad <= 0 {
		return n
	}

	if padAfter {
		if pad > capacity-n {
			pad = capacity - n
		}
		for i := 0; i < pad; i++ {
			dst[n+i] = Space
		}

		return n + pad
	}

	// Pad before: shift the written region right, clamped to capacity.
	if pad > capacity-start {
		pad = capacity - start
	}
	endFill := start + pad
	if endFill < capacity {
		copyLen := written
		if copyLen > capacity-endFill {
			copyLen = capacity - endFill
		}
		copy(dst[endFill:endFill+copyLen], dst[start:start+copyLen])
	}
	for i := start; i < endFill; i++ {
		dst[i] = Space
	}

	n = endFill + written
	if n > capacity {
		n = capacity
	}

	return n
}

// Equal reports whether two code unit sequences are element-wise equal.
// No case folding and no Unicode normalization is applied.
func Equal(a, b []uint16) bool {
	if len(a) != len(b) {
		return false
	}
	for i, c := range a {
		if c != b[i] {
			return false
		}
	}

	return true
}

// CopyInto copies src into dst in full, or not at all.
//
// Returns (len(src), true) on success. If dst is shorter than src it
// returns (0, false) and leaves dst untouched.
func CopyInto(dst, src []uint16) (int, bool) {
	if len(dst) < len(src) {
		return 0, false
	}

	return copy(dst, src), true
}

// String materializes the code units as an owned UTF-8 string. This is
// the one allocating operation in the package.
func String(units []uint16) string {
	if len(units) == 0 {
		return ""
	}

	return string(utf16.Decode(units))
}
