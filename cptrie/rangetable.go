package cptrie

import (
	"unicode"

	"golang.org/x/text/unicode/rangetable"
)

// ToRangeTable returns the set of code points whose value satisfies pred as
// a unicode.RangeTable, so a trie can be used with unicode.Is.
func (t *Trie[V]) ToRangeTable(pred func(V) bool) *unicode.RangeTable {
	var rt unicode.RangeTable
	for r := range t.Ranges() {
		if !pred(r.Value) {
			continue
		}
		lo, hi := uint32(r.Start), uint32(r.End)
		if lo <= 0xFFFF {
			hi16 := min(hi, 0xFFFF)
			rt.R16 = append(rt.R16, unicode.Range16{Lo: uint16(lo), Hi: uint16(hi16), Stride: 1})
			lo = hi16 + 1
		}
		if lo <= hi {
			rt.R32 = append(rt.R32, unicode.Range32{Lo: lo, Hi: hi, Stride: 1})
		}
	}
	return rangetable.Merge(&rt)
}

// RangeTableForValue is ToRangeTable for a single value.
func (t *Trie[V]) RangeTableForValue(v V) *unicode.RangeTable {
	return t.ToRangeTable(func(x V) bool { return x == v })
}
