package cptrietesting

// Oracle evaluates assignments pointwise over a dense array of the whole
// domain. It is slow and obviously correct.
type Oracle struct {
	values []uint32
}

// NewOracle returns an oracle mapping every code point to defaultValue.
func NewOracle(defaultValue uint32) *Oracle {
	o := &Oracle{values: make([]uint32, DomainSize)}
	for i := range o.values {
		o.values[i] = defaultValue
	}
	return o
}

// Apply assigns each range in order, later assignments winning.
func (o *Oracle) Apply(as ...Assignment) {
	for _, a := range as {
		for c := a.Start; c <= a.End; c++ {
			o.values[c] = a.Value
		}
	}
}

func (o *Oracle) Get(c uint32) uint32 { return o.values[c] }

// Range is a maximal run in the oracle's partition of the domain.
type Range struct {
	Start uint32
	End   uint32
	Value uint32
}

// Ranges returns the partition of the domain into maximal runs.
func (o *Oracle) Ranges() []Range {
	var out []Range
	start := uint32(0)
	for c := uint32(1); c <= DomainSize; c++ {
		if c == DomainSize || o.values[c] != o.values[start] {
			out = append(out, Range{Start: start, End: c - 1, Value: o.values[start]})
			start = c
		}
	}
	return out
}

// HighStart returns the lowest block aligned code point from which the
// oracle is constant to the end of the domain.
func (o *Oracle) HighStart() uint32 {
	last := o.values[MaxCodePoint]
	c := uint32(MaxCodePoint)
	for c > 0 && o.values[c-1] == last {
		c--
	}
	return (c + BlockSize - 1) &^ (BlockSize - 1)
}
