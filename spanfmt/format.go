package spanfmt

import (
	"strconv"
	"unicode/utf16"
	"unicode/utf8"
)

// Formatter renders a value into a span of UTF-16 code units.
//
// Implementations must never write outside dst and must report exactly
// how many units were written. On failure they report (0, false) and
// leave dst untouched. An empty dst is a valid span; a formatter given
// one simply reports that nothing was written.
type Formatter interface {
	FormatInto(dst []uint16, spec string) (written int, ok bool)
}

// Adapters giving ordinary values the Formatter capability.
type (
	// Int formats a signed integer. Specs: "" or "d" decimal, "b" binary,
	// "o" octal, "x"/"X" lower/upper hexadecimal.
	Int int64
	// Uint formats an unsigned integer. Specs as for Int.
	Uint uint64
	// Float formats a float64. Specs: "" for shortest 'g', or a strconv
	// verb with optional precision such as "f2", "e3", "g".
	Float float64
	// Bool formats as "true" or "false". The spec is ignored.
	Bool bool
	// String formats a Go string as its UTF-16 expansion. The spec is
	// ignored. Unlike a literal append, it writes nothing unless the
	// whole expansion fits.
	String string
	// Rune formats a single rune as one or two code units. Invalid runes
	// render as U+FFFD. The spec is ignored.
	Rune rune
)

// FormatInto renders the integer in the base selected by spec.
func (v Int) FormatInto(dst []uint16, spec string) (int, bool) {
	base, upper := intBase(spec)

	// Worst case is base 2 of MinInt64: sign plus 64 digits.
	var scratch [65]byte
	out := strconv.AppendInt(scratch[:0], int64(v), base)

	return putASCII(dst, out, upper)
}

// FormatInto renders the unsigned integer in the base selected by spec.
func (v Uint) FormatInto(dst []uint16, spec string) (int, bool) {
	base, upper := intBase(spec)

	// Worst case is base 2 of MaxUint64: 64 digits.
	var scratch [65]byte
	out := strconv.AppendUint(scratch[:0], uint64(v), base)

	return putASCII(dst, out, upper)
}

// FormatInto renders the float with the verb and precision selected by spec.
func (v Float) FormatInto(dst []uint16, spec string) (int, bool) {
	verb, prec := floatSpec(spec)

	var scratch [32]byte
	out := strconv.AppendFloat(scratch[:0], float64(v), verb, prec, 64)

	return putASCII(dst, out, false)
}

// FormatInto renders "true" or "false".
func (v Bool) FormatInto(dst []uint16, _ string) (int, bool) {
	var scratch [8]byte
	out := strconv.AppendBool(scratch[:0], bool(v))

	return putASCII(dst, out, false)
}

// FormatInto renders the string's UTF-16 expansion, all or nothing.
func (v String) FormatInto(dst []uint16, _ string) (int, bool) {
	need := 0
	for _, r := range string(v) {
		need++
		if r >= 0x10000 {
			need++
		}
	}
	if need > len(dst) {
		return 0, false
	}

	n := 0
	for _, r := range string(v) {
		if r < 0x10000 {
			dst[n] = uint16(r)
			n++
			continue
		}
		hi, lo := utf16.EncodeRune(r)
		dst[n] = uint16(hi)
		dst[n+1] = uint16(lo)
		n += 2
	}

	return n, true
}

// FormatInto renders the rune as one or two code units, all or nothing.
func (v Rune) FormatInto(dst []uint16, _ string) (int, bool) {
	r := rune(v)
	if !utf8.ValidRune(r) {
		r = utf8.RuneError
	}

	if r < 0x10000 {
		if len(dst) < 1 {
			return 0, false
		}
		dst[0] = uint16(r)

		return 1, true
	}

	if len(dst) < 2 {
		return 0, false
	}
	hi, lo := utf16.EncodeRune(r)
	dst[0] = uint16(hi)
	dst[1] = uint16(lo)

	return 2, true
}

// intBase maps an integer format spec to a strconv base. Unrecognized
// specs fall back to decimal.
func intBase(spec string) (base int, upper bool) {
	switch spec {
	case "", "d":
		return 10, false
	case "b":
		return 2, false
	case "o":
		return 8, false
	case "x":
		return 16, false
	case "X":
		return 16, true
	default:
		return 10, false
	}
}

// floatSpec maps a float format spec to a strconv verb and precision.
// The spec is a verb byte optionally followed by decimal precision
// digits, e.g. "f2" or "e". Unrecognized specs fall back to shortest 'g'.
func floatSpec(spec string) (verb byte, prec int) {
	if spec == "" {
		return 'g', -1
	}

	switch spec[0] {
	case 'f', 'F', 'e', 'E', 'g', 'G':
		verb = spec[0]
	default:
		return 'g', -1
	}

	prec = -1
	if len(spec) > 1 {
		p, err := strconv.Atoi(spec[1:])
		if err != nil || p < 0 {
			return 'g', -1
		}
		prec = p
	}

	return verb, prec
}

// putASCII widens an ASCII rendering into dst, all or nothing.
func putASCII(dst []uint16, out []byte, upper bool) (int, bool) {
	if len(out) > len(dst) {
		return 0, false
	}

	for i, b := range out {
		if upper && b >= 'a' && b <= 'z' {
			b -= 'a' - 'A'
		}
		dst[i] = uint16(b)
	}

	return len(out), true
}
