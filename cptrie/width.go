package cptrie

import "fmt"

// Value is the set of unsigned integer types a trie can map code points to.
type Value interface {
	~uint8 | ~uint16 | ~uint32
}

// ValueWidth is the storage width of one data array element.
type ValueWidth uint8

const (
	Width8  ValueWidth = 0
	Width16 ValueWidth = 1
	Width32 ValueWidth = 2
)

func (w ValueWidth) valid() bool { return w <= Width32 }

// Bytes returns the number of bytes one element occupies.
func (w ValueWidth) Bytes() int { return 1 << w }

// Bits returns the number of bits one element occupies.
func (w ValueWidth) Bits() int { return 8 << w }

// Max returns the largest value representable in w.
func (w ValueWidth) Max() uint32 {
	switch w {
	case Width8:
		return 0xFF
	case Width16:
		return 0xFFFF
	default:
		return 0xFFFFFFFF
	}
}

// Fits reports whether v is representable in w.
func (w ValueWidth) Fits(v uint32) bool { return v <= w.Max() }

func (w ValueWidth) String() string {
	if !w.valid() {
		return fmt.Sprintf("ValueWidth(%d)", uint8(w))
	}
	return fmt.Sprintf("%d-bit", w.Bits())
}

// WidthFor returns the narrowest width that can hold v.
func WidthFor(v uint32) ValueWidth {
	switch {
	case v <= 0xFF:
		return Width8
	case v <= 0xFFFF:
		return Width16
	default:
		return Width32
	}
}

// widthOf returns the width of the value type V.
func widthOf[V Value]() ValueWidth {
	return WidthFor(uint32(^V(0)))
}

// elemCodec reads and writes little-endian elements of one fixed width in a
// flat byte slice. i is an element index, not a byte offset.
type elemCodec interface {
	at(b []byte, i uint32) uint32
	put(b []byte, i uint32, v uint32)
}

type codec8 struct{}

func (codec8) at(b []byte, i uint32) uint32     { return uint32(b[i]) }
func (codec8) put(b []byte, i uint32, v uint32) { b[i] = byte(v) }

type codec16 struct{}

func (codec16) at(b []byte, i uint32) uint32     { return uint32(readU16LE(b[i*2:])) }
func (codec16) put(b []byte, i uint32, v uint32) { writeU16LE(b[i*2:], uint16(v)) }

type codec32 struct{}

func (codec32) at(b []byte, i uint32) uint32     { return readU32LE(b[i*4:]) }
func (codec32) put(b []byte, i uint32, v uint32) { writeU32LE(b[i*4:], v) }

// codecFor returns the element codec for w. w must be valid.
func codecFor(w ValueWidth) elemCodec {
	switch w {
	case Width8:
		return codec8{}
	case Width16:
		return codec16{}
	default:
		return codec32{}
	}
}
