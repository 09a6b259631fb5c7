package cptrie

// stagedBlock holds the builder's view of one block. A block that has only
// ever been assigned whole is kept as a single uniform value; values is
// allocated the first time part of the block is assigned.
type stagedBlock[V Value] struct {
	values  *[BlockSize]V
	uniform V
}

func (b *stagedBlock[V]) get(i uint32) V {
	if b.values == nil {
		return b.uniform
	}
	return b.values[i]
}

// fill assigns v to the block elements [lo, hi].
func (b *stagedBlock[V]) fill(lo, hi uint32, v V) {
	if lo == 0 && hi == blockMask {
		b.values = nil
		b.uniform = v
		return
	}
	if b.values == nil {
		b.values = new([BlockSize]V)
		for i := range b.values {
			b.values[i] = b.uniform
		}
	}
	for i := lo; i <= hi; i++ {
		b.values[i] = v
	}
}

// uniformValue returns the block's value if every element has it.
func (b *stagedBlock[V]) uniformValue() (V, bool) {
	if b.values == nil {
		return b.uniform, true
	}
	v := b.values[0]
	for _, x := range b.values[1:] {
		if x != v {
			return v, false
		}
	}
	return v, true
}

// content writes the block's values into dst, which must have BlockSize
// elements.
func (b *stagedBlock[V]) content(dst []uint32) {
	if b.values == nil {
		for i := range dst[:BlockSize] {
			dst[i] = uint32(b.uniform)
		}
		return
	}
	for i, x := range b.values {
		dst[i] = uint32(x)
	}
}

// blockStore stages values for the whole domain as one stagedBlock per
// block.
type blockStore[V Value] struct {
	blocks []stagedBlock[V]
}

func newBlockStore[V Value](initial V) *blockStore[V] {
	s := &blockStore[V]{blocks: make([]stagedBlock[V], blockCount)}
	for i := range s.blocks {
		s.blocks[i].uniform = initial
	}
	return s
}

// get returns the staged value for c. c must be in the domain.
func (s *blockStore[V]) get(c uint32) V {
	return s.blocks[c>>blockShift].get(c & blockMask)
}

// fill assigns v to [start, end]. Both bounds must be in the domain and
// start <= end.
func (s *blockStore[V]) fill(start, end uint32, v V) {
	first, last := start>>blockShift, end>>blockShift
	for i := first; i <= last; i++ {
		lo, hi := uint32(0), uint32(blockMask)
		if i == first {
			lo = start & blockMask
		}
		if i == last {
			hi = end & blockMask
		}
		s.blocks[i].fill(lo, hi, v)
	}
}

// highStart finds the lowest block aligned code point from which every code
// point up to MaxCodePoint has one value, and returns it with that value.
// If the last block is not uniform the result is DomainSize and the value
// of MaxCodePoint.
func (s *blockStore[V]) highStart() (uint32, V) {
	i := uint32(blockCount - 1)
	hv, ok := s.blocks[i].uniformValue()
	if !ok {
		return DomainSize, s.get(MaxCodePoint)
	}
	for i > 0 {
		v, ok := s.blocks[i-1].uniformValue()
		if !ok || v != hv {
			break
		}
		i--
	}
	return i << blockShift, hv
}
