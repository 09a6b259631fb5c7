package cptrie

import (
	"fmt"
	"io"

	"github.com/dolthub/swiss"
	"github.com/dustin/go-humanize"
)

// Trie is an immutable map from every code point to a value of type V.
//
// A Trie is a view over a validated serialized buffer. The only ways to get
// one are Builder.Build and Load, both of which run the same validation.
// Nothing mutates a Trie after construction, so it is safe for concurrent
// use by any number of readers.
type Trie[V Value] struct {
	typ        TrieType
	width      ValueWidth
	codec      elemCodec
	highStart  uint32
	highValue  uint32
	errorValue uint32

	index []byte
	data  []byte
	ascii []byte // nil unless typ == TypeFast
	buf   []byte
}

// Get returns the value for c. Out of domain input, including negative
// runes, returns ErrorValue.
func (t *Trie[V]) Get(c rune) V {
	return V(t.get32(uint32(c)))
}

// GetU32 returns the value for c widened to uint32.
func (t *Trie[V]) GetU32(c rune) uint32 {
	return t.get32(uint32(c))
}

func (t *Trie[V]) get32(c uint32) uint32 {
	if c > MaxCodePoint {
		return t.errorValue
	}
	if c < ASCIILimit && t.ascii != nil {
		return t.codec.at(t.ascii, c)
	}
	if c >= t.highStart {
		return t.highValue
	}
	return t.indexed(c)
}

// indexed resolves c through the index and data arrays. c must be below
// HighStart.
func (t *Trie[V]) indexed(c uint32) uint32 {
	off := readU32LE(t.index[(c>>blockShift)*4:])
	return t.codec.at(t.data, off+c&blockMask)
}

// Type returns the layout of the trie.
func (t *Trie[V]) Type() TrieType { return t.typ }

// Width returns the stored value width, which may be narrower than V.
func (t *Trie[V]) Width() ValueWidth { return t.width }

// HighStart returns the first code point of the constant tail.
func (t *Trie[V]) HighStart() uint32 { return t.highStart }

// HighValue returns the value of every code point at or above HighStart.
func (t *Trie[V]) HighValue() V { return V(t.highValue) }

// ErrorValue returns the value Get returns for out of domain input.
func (t *Trie[V]) ErrorValue() V { return V(t.errorValue) }

// IndexLen returns the number of index entries, one per block below HighStart.
func (t *Trie[V]) IndexLen() uint32 { return uint32(len(t.index) / 4) }

// DataLen returns the number of stored values in the data array.
func (t *Trie[V]) DataLen() uint32 { return uint32(len(t.data) / t.width.Bytes()) }

// Header returns the decoded header of the serialized form.
func (t *Trie[V]) Header() Header {
	return Header{
		Type:       t.typ,
		Width:      t.width,
		HighStart:  t.highStart,
		HighValue:  t.highValue,
		ErrorValue: t.errorValue,
		IndexLen:   t.IndexLen(),
		DataLen:    t.DataLen(),
	}
}

// Bytes returns the serialized form. For a loaded trie this is the buffer
// passed to Load. The caller must not modify it.
func (t *Trie[V]) Bytes() []byte { return t.buf }

// Size returns the length of the serialized form in bytes.
func (t *Trie[V]) Size() int { return len(t.buf) }

// MarshalBinary returns a copy of the serialized form.
func (t *Trie[V]) MarshalBinary() ([]byte, error) {
	return append([]byte(nil), t.buf...), nil
}

// WriteTo writes the serialized form to w.
func (t *Trie[V]) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(t.buf)
	return int64(n), err
}

func (t *Trie[V]) String() string {
	return fmt.Sprintf("cptrie(%s, %s, high_start=U+%04X, index=%d, data=%d, %s)",
		t.typ, t.width, t.highStart, t.IndexLen(), t.DataLen(), humanize.Bytes(uint64(len(t.buf))))
}

// Stats describes how well a trie compacted.
type Stats struct {
	Type       TrieType
	Width      ValueWidth
	HighStart  uint32
	IndexLen   uint32
	DataLen    uint32
	DataBlocks int // distinct index offsets
	Bytes      uint64
	DenseBytes uint64
}

// Ratio returns the serialized size as a fraction of a dense array.
func (s Stats) Ratio() float64 {
	if s.DenseBytes == 0 {
		return 0
	}
	return float64(s.Bytes) / float64(s.DenseBytes)
}

func (s Stats) String() string {
	return fmt.Sprintf("%s %s high_start=U+%04X blocks=%d/%d data=%d size=%s dense=%s (%.2f%%)",
		s.Type, s.Width, s.HighStart, s.DataBlocks, s.IndexLen, s.DataLen,
		humanize.Bytes(s.Bytes), humanize.Bytes(s.DenseBytes), 100*s.Ratio())
}

// Stats reports the compaction outcome of t.
func (t *Trie[V]) Stats() Stats {
	n := t.IndexLen()
	offsets := swiss.NewMap[uint32, struct{}](n)
	for i := uint32(0); i < n; i++ {
		offsets.Put(readU32LE(t.index[i*4:]), struct{}{})
	}
	return Stats{
		Type:       t.typ,
		Width:      t.width,
		HighStart:  t.highStart,
		IndexLen:   n,
		DataLen:    t.DataLen(),
		DataBlocks: offsets.Count(),
		Bytes:      uint64(len(t.buf)),
		DenseBytes: DenseBytes(t.width),
	}
}
