package cptrie

import (
	"math/rand"
	"slices"
	"testing"

	"github.com/stretchr/testify/require"
)

func requireFormatError(t *testing.T, err error, sentinel error) {
	t.Helper()
	require.ErrorIs(t, err, sentinel)
	var fe *FormatError
	require.ErrorAs(t, err, &fe)
}

func TestLoadRejectsTruncation(t *testing.T) {
	for _, tr := range []*Trie[uint8]{buildDigits(t), buildDigits(t, WithType(TypeSmall)), Planes()} {
		buf := tr.Bytes()
		for n := 0; n < len(buf); n++ {
			got, err := Load[uint8](buf[:n])
			require.Error(t, err, "length %d", n)
			require.Nil(t, got)
			var fe *FormatError
			require.ErrorAs(t, err, &fe)
		}

		_, err := Load[uint8](append(slices.Clone(buf), 0))
		requireFormatError(t, err, ErrBufferSize)
	}
}

func TestLoadRejectsHighStart(t *testing.T) {
	buf := slices.Clone(buildDigits(t, WithType(TypeSmall)).Bytes())
	require.Equal(t, uint32(BlockSize), readU32LE(buf[offHighStart:]))

	writeU32LE(buf[offHighStart:], BlockSize+1)
	_, err := Load[uint8](buf)
	requireFormatError(t, err, ErrHighStartUnaligned)

	writeU32LE(buf[offHighStart:], DomainSize+BlockSize)
	_, err = Load[uint8](buf)
	requireFormatError(t, err, ErrHighStartRange)

	// aligned, but the index length no longer matches
	writeU32LE(buf[offHighStart:], 2*BlockSize)
	_, err = Load[uint8](buf)
	requireFormatError(t, err, ErrIndexLength)
}

func TestLoadRejectsTags(t *testing.T) {
	buf := slices.Clone(buildDigits(t).Bytes())
	buf[offTrieType] = 2
	_, err := Load[uint8](buf)
	requireFormatError(t, err, ErrBadTrieType)

	buf = slices.Clone(buildDigits(t).Bytes())
	buf[offWidth] = 3
	_, err = Load[uint8](buf)
	requireFormatError(t, err, ErrBadValueWidth)

	// switching fast to small changes the declared size
	buf = slices.Clone(buildDigits(t).Bytes())
	buf[offTrieType] = byte(TypeSmall)
	_, err = Load[uint8](buf)
	requireFormatError(t, err, ErrBufferSize)
}

func TestLoadRejectsIndexOffset(t *testing.T) {
	tr := buildDigits(t, WithType(TypeSmall))
	hdr := HeaderBytes(tr.Width())

	buf := slices.Clone(tr.Bytes())
	writeU32LE(buf[hdr:], tr.DataLen()-BlockSize+1)
	_, err := Load[uint8](buf)
	requireFormatError(t, err, ErrIndexOffset)

	writeU32LE(buf[hdr:], 0xFFFFFFFF)
	_, err = Load[uint8](buf)
	requireFormatError(t, err, ErrIndexOffset)

	writeU32LE(buf[hdr:], tr.DataLen()-BlockSize)
	_, err = Load[uint8](buf)
	require.NoError(t, err)
}

func TestLoadRejectsWiderStoredWidth(t *testing.T) {
	b := NewBuilder[uint16](0, 0)
	require.NoError(t, b.SetRange(0x41, 0x5A, 0x1234))
	tr, err := b.Build()
	require.NoError(t, err)

	_, err = Load[uint8](tr.Bytes())
	requireFormatError(t, err, ErrWidthExceedsType)
}

func TestLoadRandomCorruptionNeverPanics(t *testing.T) {
	rng := rand.New(rand.NewSource(99))
	for _, tr := range []*Trie[uint8]{buildDigits(t), buildDigits(t, WithType(TypeSmall))} {
		orig := tr.Bytes()
		for i := 0; i < 2000; i++ {
			buf := slices.Clone(orig)
			for k := 1 + rng.Intn(3); k > 0; k-- {
				buf[rng.Intn(len(buf))] = byte(rng.Intn(256))
			}
			if rng.Intn(4) == 0 {
				buf = buf[:rng.Intn(len(buf))]
			}

			require.NotPanics(t, func() {
				got, err := Load[uint8](buf)
				if err != nil {
					require.Nil(t, got)
					return
				}
				// a trie that passed validation must be fully readable
				for c := rune(-1); c <= 0x200; c++ {
					got.Get(c)
				}
				got.Get(MaxCodePoint)
				requirePartition(t, slices.Collect(got.Ranges()))
			})
		}
	}
}
