package cptrietesting

// Assignment assigns Value to every code point in [Start, End].
type Assignment struct {
	Start uint32
	End   uint32
	Value uint32
}

// GenerateAssignments returns n random assignments. The mix favours the
// shapes real property data has: short runs, runs that end on block
// boundaries, long spans over whole planes, and isolated points.
func (c *TestContext) GenerateAssignments(n int) []Assignment {
	out := make([]Assignment, 0, n)
	for i := 0; i < n; i++ {
		var start, length uint32
		switch c.Rand.Intn(5) {
		case 0: // point
			start, length = c.codePoint(), 1
		case 1: // short run, mostly in the BMP
			start, length = uint32(c.Rand.Intn(0x3000)), 1+uint32(c.Rand.Intn(40))
		case 2: // whole blocks
			start = uint32(c.Rand.Intn(DomainSize/BlockSize)) * BlockSize
			length = BlockSize * (1 + uint32(c.Rand.Intn(8)))
		case 3: // long span
			start, length = c.codePoint(), 1+uint32(c.Rand.Intn(0x20000))
		default: // ascii
			start, length = uint32(c.Rand.Intn(ASCIILimit)), 1+uint32(c.Rand.Intn(16))
		}
		end := min(start+length-1, MaxCodePoint)
		out = append(out, Assignment{Start: start, End: end, Value: c.value()})
	}
	return out
}

func (c *TestContext) codePoint() uint32 {
	return uint32(c.Rand.Intn(DomainSize))
}

func (c *TestContext) value() uint32 {
	return uint32(c.Rand.Int63n(int64(c.Cfg.MaxValue) + 1))
}
