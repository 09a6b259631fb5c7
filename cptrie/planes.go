package cptrie

import "sync"

// PlaneCount is the number of Unicode planes.
const PlaneCount = DomainSize >> 16

// Planes returns a trie mapping every code point to its plane number,
// c >> 16. Out of domain input maps to 0. The trie is built once and shared.
var Planes = sync.OnceValue(func() *Trie[uint8] {
	b := NewBuilder[uint8](0, 0)
	for p := uint32(1); p < PlaneCount; p++ {
		if err := b.SetRange(p<<16, p<<16|0xFFFF, uint8(p)); err != nil {
			panic(err)
		}
	}
	t, err := b.Build(WithType(TypeSmall))
	if err != nil {
		panic(err)
	}
	return t
})
