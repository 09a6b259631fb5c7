package cptrie

import (
	"slices"
	"unicode"
)

// Builder stages assignments of values to code point ranges and builds an
// immutable Trie from them.
//
// A Builder is not safe for concurrent use. After a successful Build every
// method that would change it returns ErrBuilderConsumed.
type Builder[V Value] struct {
	store        *blockStore[V]
	defaultValue V
	errorValue   V
}

// NewBuilder returns a builder in which every code point maps to
// defaultValue. errorValue is what the built trie returns for out of domain
// input. It is fixed here and no assignment changes it.
func NewBuilder[V Value](defaultValue, errorValue V) *Builder[V] {
	return &Builder[V]{
		store:        newBlockStore(defaultValue),
		defaultValue: defaultValue,
		errorValue:   errorValue,
	}
}

func (b *Builder[V]) DefaultValue() V { return b.defaultValue }
func (b *Builder[V]) ErrorValue() V   { return b.errorValue }

// SetRange assigns v to every code point in [start, end]. Later assignments
// override earlier ones where they overlap.
func (b *Builder[V]) SetRange(start, end uint32, v V) error {
	if b.store == nil {
		return ErrBuilderConsumed
	}
	if start > end || end > MaxCodePoint {
		return buildErrorf(ErrRangeOutOfDomain, "[0x%X, 0x%X]", start, end)
	}
	b.store.fill(start, end, v)
	return nil
}

// Set assigns v to the single code point c.
func (b *Builder[V]) Set(c uint32, v V) error {
	return b.SetRange(c, c, v)
}

// SetRangeTable assigns v to every code point in rt.
func (b *Builder[V]) SetRangeTable(rt *unicode.RangeTable, v V) error {
	for _, r := range rt.R16 {
		if err := b.setStrided(uint32(r.Lo), uint32(r.Hi), uint32(r.Stride), v); err != nil {
			return err
		}
	}
	for _, r := range rt.R32 {
		if err := b.setStrided(r.Lo, r.Hi, r.Stride, v); err != nil {
			return err
		}
	}
	return nil
}

func (b *Builder[V]) setStrided(lo, hi, stride uint32, v V) error {
	if stride <= 1 {
		return b.SetRange(lo, hi, v)
	}
	if lo > hi || hi > MaxCodePoint {
		return buildErrorf(ErrRangeOutOfDomain, "[0x%X, 0x%X] stride %d", lo, hi, stride)
	}
	for c := lo; c <= hi; c += stride {
		if err := b.SetRange(c, c, v); err != nil {
			return err
		}
	}
	return nil
}

// Get returns the value currently staged for c, or the error value if c is
// out of domain. It returns the error value after Build.
func (b *Builder[V]) Get(c uint32) V {
	if b.store == nil || c > MaxCodePoint {
		return b.errorValue
	}
	return b.store.get(c)
}

// Build compacts the staged assignments into a Trie.
//
// On success the builder is consumed. On error nothing is built and the
// builder is left as it was, so the caller may correct the options and
// retry.
func (b *Builder[V]) Build(opts ...BuildOption) (*Trie[V], error) {
	if b.store == nil {
		return nil, ErrBuilderConsumed
	}
	o := NewBuildOptions(opts...)
	if err := o.check(widthOf[V]()); err != nil {
		return nil, err
	}

	highStart, highValue := b.store.highStart()
	typ := TypeSmall
	if highStart > 0 {
		typ = TypeFast
	}
	if o.Type != nil {
		typ = *o.Type
	}
	if typ == TypeFast && highStart <= ASCIILimit {
		highStart = 0
	}

	index, data := compact(b.store, highStart, uint32(highValue))
	var ascii []uint32
	if typ == TypeFast {
		ascii = make([]uint32, ASCIILimit)
		for c := range ascii {
			ascii[c] = uint32(b.store.get(uint32(c)))
		}
	}

	maxValue := max(uint32(highValue), uint32(b.errorValue), slices.Max(data))
	if len(ascii) > 0 {
		maxValue = max(maxValue, slices.Max(ascii))
	}
	width := WidthFor(maxValue)
	if o.Width != nil {
		if !o.Width.Fits(maxValue) {
			return nil, buildErrorf(ErrValueTooWide, "value %d exceeds %s", maxValue, *o.Width)
		}
		width = *o.Width
	}

	buf, err := encodeTrie(Header{
		Type:       typ,
		Width:      width,
		HighStart:  highStart,
		HighValue:  uint32(highValue),
		ErrorValue: uint32(b.errorValue),
	}, index, data, ascii)
	if err != nil {
		return nil, err
	}
	t, err := Load[V](buf)
	if err != nil {
		return nil, err
	}
	b.store = nil
	return t, nil
}
