package cptrie

import (
	"slices"

	"github.com/cespare/xxhash/v2"
	"github.com/colega/zeropool"
	"github.com/dolthub/swiss"
)

var (
	blockPool = zeropool.New(func() []uint32 { return make([]uint32, BlockSize) })
	hashPool  = zeropool.New(func() []byte { return make([]byte, 0, BlockSize*4) })
)

// compactor appends blocks to a data array, sharing storage between blocks
// with equal content and overlapping each new block with the tail of the
// array where a suffix of the array equals a prefix of the block.
type compactor struct {
	data []uint32

	// byHash maps a block content digest to the data offsets of every
	// emitted block with that digest. Candidates are compared by content
	// before being reused.
	byHash *swiss.Map[uint64, []uint32]

	scratch []byte
}

func newCompactor(blocks uint32) *compactor {
	return &compactor{
		data:   make([]uint32, 0, blocks*BlockSize/4),
		byHash: swiss.NewMap[uint64, []uint32](blocks),
	}
}

func (cp *compactor) release() {
	if cp.scratch != nil {
		hashPool.Put(cp.scratch)
		cp.scratch = nil
	}
}

func (cp *compactor) digest(block []uint32) uint64 {
	if cp.scratch == nil {
		cp.scratch = hashPool.Get()
	}
	b := cp.scratch[:0]
	for _, v := range block {
		b = appendU32LE(b, v)
	}
	cp.scratch = b
	return xxhash.Sum64(b)
}

// add returns the data offset at which block's BlockSize values can be
// read, appending to the data array only when no existing copy is found.
func (cp *compactor) add(block []uint32) uint32 {
	h := cp.digest(block)
	candidates, _ := cp.byHash.Get(h)
	for _, off := range candidates {
		if slices.Equal(cp.data[off:off+BlockSize], block) {
			return off
		}
	}

	n := cp.overlap(block)
	off := uint32(len(cp.data) - n)
	cp.data = append(cp.data, block[n:]...)
	cp.byHash.Put(h, append(candidates, off))
	return off
}

// overlap returns the length of the longest proper prefix of block that is
// also a suffix of the data array.
func (cp *compactor) overlap(block []uint32) int {
	for n := min(len(cp.data), BlockSize-1); n > 0; n-- {
		if slices.Equal(cp.data[len(cp.data)-n:], block[:n]) {
			return n
		}
	}
	return 0
}

// compact resolves the blocks of s below highStart into an index and a
// data array. When highStart is 0 the data array holds one block of
// filler so that it is never empty.
func compact[V Value](s *blockStore[V], highStart uint32, filler uint32) (index, data []uint32) {
	nblocks := highStart >> blockShift
	cp := newCompactor(nblocks)
	defer cp.release()

	block := blockPool.Get()
	defer blockPool.Put(block)

	index = make([]uint32, nblocks)
	for i := uint32(0); i < nblocks; i++ {
		s.blocks[i].content(block)
		index[i] = cp.add(block)
	}
	if len(cp.data) == 0 {
		for i := range block {
			block[i] = filler
		}
		cp.add(block)
	}
	return index, cp.data
}
