package cptrie

import (
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/require"
)

type runeValue struct {
	r rune
	v uint8
}

func collect2(seq func(func(rune, uint8) bool)) []runeValue {
	var out []runeValue
	for r, v := range seq {
		out = append(out, runeValue{r, v})
	}
	return out
}

func TestValuesPlanes(t *testing.T) {
	s := "abäαあ🥳𧉧"
	want := []runeValue{
		{'a', 0}, {'b', 0}, {'ä', 0}, {'α', 0}, {'あ', 0}, {'🥳', 1}, {'𧉧', 2},
	}
	require.Equal(t, want, collect2(Planes().Values(s)))
	require.Equal(t, want, collect2(Planes().ValuesBytes([]byte(s))))
}

func TestValuesIllFormed(t *testing.T) {
	b := NewBuilder[uint8](1, 0xEE)
	require.NoError(t, b.Set(0xFFFD, 5))
	tr, err := b.Build()
	require.NoError(t, err)

	// an encoded U+FFFD is a real code point, a stray byte is not
	s := "a\xff�\xe2\x82"
	want := []runeValue{
		{'a', 1},
		{utf8.RuneError, 0xEE},
		{0xFFFD, 5},
		{utf8.RuneError, 0xEE},
		{utf8.RuneError, 0xEE},
	}
	require.Equal(t, want, collect2(tr.Values(s)))
	require.Equal(t, want, collect2(tr.ValuesBytes([]byte(s))))
}

func TestLatin1Values(t *testing.T) {
	b := NewBuilder[uint8](0, 0)
	require.NoError(t, b.SetRange(0xC0, 0xFF, 2))
	tr, err := b.Build()
	require.NoError(t, err)

	got := collect2(tr.Latin1Values([]byte{'A', 0xE4, 0xFF}))
	require.Equal(t, []runeValue{{'A', 0}, {'ä', 2}, {'ÿ', 2}}, got)
}

type offsetValue struct {
	off int
	rv  RuneValue[uint8]
}

func collectIndexed(seq func(func(int, RuneValue[uint8]) bool)) []offsetValue {
	var out []offsetValue
	for off, rv := range seq {
		out = append(out, offsetValue{off, rv})
	}
	return out
}

func TestIndexedValues(t *testing.T) {
	b := NewBuilder[uint8](1, 0xEE)
	require.NoError(t, b.Set('α', 3))
	require.NoError(t, b.Set(0x1F973, 4))
	tr, err := b.Build()
	require.NoError(t, err)

	// stray continuation and truncated sequence bytes each advance by one
	s := "aα\x80🥳\xe2\x82b"
	want := []offsetValue{
		{0, RuneValue[uint8]{'a', 1}},
		{1, RuneValue[uint8]{'α', 3}},
		{3, RuneValue[uint8]{utf8.RuneError, 0xEE}},
		{4, RuneValue[uint8]{'🥳', 4}},
		{8, RuneValue[uint8]{utf8.RuneError, 0xEE}},
		{9, RuneValue[uint8]{utf8.RuneError, 0xEE}},
		{10, RuneValue[uint8]{'b', 1}},
	}
	require.Equal(t, want, collectIndexed(tr.IndexedValues(s)))
	require.Equal(t, want, collectIndexed(tr.IndexedValuesBytes([]byte(s))))

	// offsets agree with the unindexed iterator
	var plain []runeValue
	for _, ov := range want {
		plain = append(plain, runeValue{ov.rv.Rune, ov.rv.Value})
	}
	require.Equal(t, plain, collect2(tr.Values(s)))
}

func TestIndexedLatin1Values(t *testing.T) {
	b := NewBuilder[uint8](0, 0)
	require.NoError(t, b.SetRange(0xC0, 0xFF, 2))
	tr, err := b.Build()
	require.NoError(t, err)

	got := collectIndexed(tr.IndexedLatin1Values([]byte{'A', 0xE4, 0xFF}))
	require.Equal(t, []offsetValue{
		{0, RuneValue[uint8]{'A', 0}},
		{1, RuneValue[uint8]{'ä', 2}},
		{2, RuneValue[uint8]{'ÿ', 2}},
	}, got)

	n := 0
	for range tr.IndexedLatin1Values([]byte("abc")) {
		n++
		break
	}
	require.Equal(t, 1, n)
}

func TestValuesStopEarly(t *testing.T) {
	n := 0
	for range Planes().Values("abc") {
		n++
		break
	}
	require.Equal(t, 1, n)
}
