package buffer

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/fixstr/endian"
	"github.com/arloliu/fixstr/errs"
)

// TestBinaryRoundTrip verifies Bytes/Parse round-trips with both byte orders.
func TestBinaryRoundTrip(t *testing.T) {
	engines := []endian.EndianEngine{
		endian.GetLittleEndianEngine(),
		endian.GetBigEndianEngine(),
	}

	for _, engine := range engines {
		s := NewString8("héllo")
		data := s.Bytes(engine)
		require.Len(t, data, 2*(Cap8+1))

		var back String8
		require.NoError(t, back.Parse(engine, data))
		require.True(t, s.Equal(&back))

		b := NewString64("a longer payload with spaces")
		data = b.Bytes(engine)
		require.Len(t, data, 2*(Cap64+1))

		var back64 String64
		require.NoError(t, back64.Parse(engine, data))
		require.Equal(t, b.String(), back64.String())
	}
}

// TestBinaryDeterministic verifies stale cells do not leak into the image:
// two buffers with equal content serialize identically regardless of history.
func TestBinaryDeterministic(t *testing.T) {
	engine := endian.GetLittleEndianEngine()

	dirty := NewString8("AAAAAAA")
	dirty.Clear()
	dirty.AppendString("Hi")

	fresh := NewString8("Hi")

	require.Equal(t, fresh.Bytes(engine), dirty.Bytes(engine))
}

// TestParseInvalidSize verifies the size check rejects short and long input.
func TestParseInvalidSize(t *testing.T) {
	engine := endian.GetLittleEndianEngine()

	var s String8
	require.ErrorIs(t, s.Parse(engine, make([]byte, 15)), errs.ErrInvalidDataSize)
	require.ErrorIs(t, s.Parse(engine, make([]byte, 17)), errs.ErrInvalidDataSize)
	require.ErrorIs(t, s.Parse(engine, nil), errs.ErrInvalidDataSize)
}

// TestParseLengthOutOfRange verifies a length field past capacity is rejected
// and the buffer is left unchanged.
func TestParseLengthOutOfRange(t *testing.T) {
	engine := endian.GetLittleEndianEngine()

	data := make([]byte, 2*(Cap8+1))
	engine.PutUint16(data[0:2], Cap8+1)

	s := NewString8("keep")
	require.ErrorIs(t, s.Parse(engine, data), errs.ErrLengthOutOfRange)
	require.Equal(t, "keep", s.String())
}

// TestParseEndianMismatch documents that the caller must use the producing
// engine: a byte-order mismatch surfaces as an out-of-range length for any
// non-trivial length value.
func TestParseEndianMismatch(t *testing.T) {
	src := NewString8("Hello")
	data := src.Bytes(endian.GetLittleEndianEngine())

	var s String8
	err := s.Parse(endian.GetBigEndianEngine(), data)
	require.ErrorIs(t, err, errs.ErrLengthOutOfRange)
}
