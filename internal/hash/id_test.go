package hash

import (
	stdfnv "hash/fnv"
	"testing"
	"unicode/utf16"

	"github.com/stretchr/testify/require"
)

func units(s string) []uint16 {
	return utf16.Encode([]rune(s))
}

// TestHashKnownVectors pins the FNV-1a offset basis and a published vector.
func TestHashKnownVectors(t *testing.T) {
	require.Equal(t, uint32(2166136261), Hash(nil))
	require.Equal(t, uint32(0xe40c292c), Hash(units("a")))
}

// TestHashMatchesByteFNVForASCII verifies that for ASCII content the
// per-unit hash equals standard byte-wise FNV-1a, since every unit's
// numeric value fits in one byte.
func TestHashMatchesByteFNVForASCII(t *testing.T) {
	for _, s := range []string{"", "a", "Hello", "metric.name-01"} {
		h := stdfnv.New32a()
		_, err := h.Write([]byte(s))
		require.NoError(t, err)
		require.Equal(t, h.Sum32(), Hash(units(s)), "input %q", s)
	}
}

// TestHashUsesUnitValues verifies non-ASCII units hash by whole value,
// not by byte decomposition.
func TestHashUsesUnitValues(t *testing.T) {
	u := units("é") // single unit 0x00E9

	h := uint32(2166136261)
	h = (h ^ 0x00E9) * 16777619
	require.Equal(t, h, Hash(u))

	// Byte-wise FNV-1a of the UTF-8 encoding would differ.
	b := stdfnv.New32a()
	_, _ = b.Write([]byte("é"))
	require.NotEqual(t, b.Sum32(), Hash(u))
}

// TestID verifies determinism and content sensitivity of the 64-bit identity.
func TestID(t *testing.T) {
	a := ID(units("cpu.usage"))
	require.Equal(t, a, ID(units("cpu.usage")))
	require.NotEqual(t, a, ID(units("cpu.usag")))
	require.NotEqual(t, ID(nil), a)

	// Identity covers the full unit value, including non-ASCII content.
	require.NotEqual(t, ID(units("héllo")), ID(units("hello")))
}
