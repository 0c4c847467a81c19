package fixstr

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/fixstr/buffer"
	"github.com/arloliu/fixstr/spanfmt"
)

// TestConstructors verifies each wrapper builds the matching variant with
// the truncation policy applied.
func TestConstructors(t *testing.T) {
	s8 := NewString8("Hello, world!")
	require.Equal(t, 7, s8.Len())
	require.Equal(t, "Hello, ", s8.String())

	s16 := NewString16("Hello, world!")
	require.Equal(t, "Hello, world!", s16.String())

	s32 := NewString32("Hello, world!")
	require.Equal(t, "Hello, world!", s32.String())

	s64 := NewString64("Hello, world!")
	require.Equal(t, "Hello, world!", s64.String())
}

// TestStringID verifies the 64-bit identity is capacity-independent and
// content-sensitive.
func TestStringID(t *testing.T) {
	a := NewString8("metric")
	b := NewString64("metric")
	c := NewString8("metrix")

	require.Equal(t, StringID(&a), StringID(&b))
	require.NotEqual(t, StringID(&a), StringID(&c))
}

// TestComposition exercises the interpolation pattern end to end through
// the public API.
func TestComposition(t *testing.T) {
	s := NewString32("load=")
	s.AppendFormatAligned(spanfmt.Float(0.75), 6, "f2")
	s.AppendString(" host=")
	s.AppendFormat(spanfmt.Int(42), "")
	require.Equal(t, "load=  0.75 host=42", s.String())

	var agnostic buffer.FixedString = &s
	require.Equal(t, 19, agnostic.Len())
}
