package cptrie

import (
	"iter"
	"math"
)

// Range is a maximal run of consecutive code points [Start, End] mapping to
// Value.
type Range[V Value] struct {
	Start rune
	End   rune
	Value V
}

// Len returns the number of code points in r.
func (r Range[V]) Len() int { return int(r.End-r.Start) + 1 }

// Contains reports whether c lies in r.
func (r Range[V]) Contains(c rune) bool { return r.Start <= c && c <= r.End }

// Ranges returns the partition of the domain into maximal runs, in
// ascending order. The runs cover [0, MaxCodePoint] exactly and no two
// consecutive runs share a value. Each call starts from code point 0.
func (t *Trie[V]) Ranges() iter.Seq[Range[V]] {
	return func(yield func(Range[V]) bool) {
		for c := uint32(0); c <= MaxCodePoint; {
			r := t.rangeFrom(c)
			if !yield(r) {
				return
			}
			c = uint32(r.End) + 1
		}
	}
}

// GetRange returns the maximal run of code points starting at start that
// share the value of start. It returns false if start is out of domain.
func (t *Trie[V]) GetRange(start rune) (Range[V], bool) {
	if uint32(start) > MaxCodePoint {
		return Range[V]{}, false
	}
	return t.rangeFrom(uint32(start)), true
}

// RangesForValue returns the runs whose value is v, in ascending order.
func (t *Trie[V]) RangesForValue(v V) iter.Seq[Range[V]] {
	return func(yield func(Range[V]) bool) {
		for r := range t.Ranges() {
			if r.Value == v && !yield(r) {
				return
			}
		}
	}
}

// RangesMapped returns the runs of the mapping c -> fn(Get(c)). Adjacent
// runs that fn maps to the same value are merged.
func (t *Trie[V]) RangesMapped(fn func(V) V) iter.Seq[Range[V]] {
	return func(yield func(Range[V]) bool) {
		var cur Range[V]
		open := false
		for r := range t.Ranges() {
			v := fn(r.Value)
			if open && v == cur.Value {
				cur.End = r.End
				continue
			}
			if open && !yield(cur) {
				return
			}
			cur = Range[V]{Start: r.Start, End: r.End, Value: v}
			open = true
		}
		if open {
			yield(cur)
		}
	}
}

// limit returns the first code point that is neither served by the ASCII
// table nor by the index.
func (t *Trie[V]) limit() uint32 {
	if t.ascii != nil && t.highStart < ASCIILimit {
		return ASCIILimit
	}
	return t.highStart
}

// rangeFrom returns the maximal run starting at start. start must be in the
// domain.
//
// Blocks are compared whole where possible. A block whose index entry is the
// same as that of the last block found to be entirely equal to the run value
// is skipped without reading it.
func (t *Trie[V]) rangeFrom(start uint32) Range[V] {
	want := t.get32(start)
	limit := t.limit()
	sameOff := uint32(math.MaxUint32)

	c := start + 1
	for c < limit {
		n := BlockSize - c&blockMask
		if c < ASCIILimit && t.ascii != nil {
			if i := t.matchRun(t.ascii, c, n, want); i < n {
				return t.makeRange(start, c+i-1, want)
			}
			c += n
			continue
		}
		off := readU32LE(t.index[(c>>blockShift)*4:])
		aligned := c&blockMask == 0
		if aligned && off == sameOff {
			c += BlockSize
			continue
		}
		if i := t.matchRun(t.data, off+c&blockMask, n, want); i < n {
			return t.makeRange(start, c+i-1, want)
		}
		if aligned {
			sameOff = off
		}
		c += n
	}

	if want == t.highValue {
		return t.makeRange(start, MaxCodePoint, want)
	}
	return t.makeRange(start, limit-1, want)
}

// matchRun returns how many of the n elements of b starting at i equal want.
func (t *Trie[V]) matchRun(b []byte, i, n, want uint32) uint32 {
	for k := uint32(0); k < n; k++ {
		if t.codec.at(b, i+k) != want {
			return k
		}
	}
	return n
}

func (t *Trie[V]) makeRange(start, end, v uint32) Range[V] {
	return Range[V]{Start: rune(start), End: rune(end), Value: V(v)}
}
