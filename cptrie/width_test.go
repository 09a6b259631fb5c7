package cptrie

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type scriptCode uint16

func TestWidthFor(t *testing.T) {
	require.Equal(t, Width8, WidthFor(0))
	require.Equal(t, Width8, WidthFor(0xFF))
	require.Equal(t, Width16, WidthFor(0x100))
	require.Equal(t, Width16, WidthFor(0xFFFF))
	require.Equal(t, Width32, WidthFor(0x10000))
	require.Equal(t, Width32, WidthFor(0xFFFFFFFF))
}

func TestWidthOfValueType(t *testing.T) {
	require.Equal(t, Width8, widthOf[uint8]())
	require.Equal(t, Width16, widthOf[uint16]())
	require.Equal(t, Width32, widthOf[uint32]())
	require.Equal(t, Width16, widthOf[scriptCode]())
}

func TestWidthSizes(t *testing.T) {
	require.Equal(t, 1, Width8.Bytes())
	require.Equal(t, 2, Width16.Bytes())
	require.Equal(t, 4, Width32.Bytes())
	require.Equal(t, 16, Width16.Bits())
	require.True(t, Width16.Fits(0xFFFF))
	require.False(t, Width16.Fits(0x10000))
	require.Equal(t, "8-bit", Width8.String())
	require.Equal(t, "ValueWidth(9)", ValueWidth(9).String())
}

func TestElemCodecs(t *testing.T) {
	for _, w := range []ValueWidth{Width8, Width16, Width32} {
		codec := codecFor(w)
		b := make([]byte, 4*w.Bytes())
		codec.put(b, 3, w.Max())
		codec.put(b, 1, 0x5A)
		require.Equal(t, w.Max(), codec.at(b, 3), w.String())
		require.Equal(t, uint32(0x5A), codec.at(b, 1), w.String())
		require.Equal(t, uint32(0), codec.at(b, 2), w.String())
		// little-endian, low byte first
		require.Equal(t, byte(0x5A), b[w.Bytes()])
	}
}
