package cptrie

// IndexLenFor returns ceil(highStart/BlockSize), the number of index entries
// a trie with the given high start carries.
func IndexLenFor(highStart uint32) uint32 {
	return uint32((uint64(highStart) + blockMask) >> blockShift)
}

// IndexBytes returns the byte length of an index with indexLen entries.
func IndexBytes(indexLen uint32) uint64 {
	return uint64(indexLen) * 4
}

// DataBytes returns the byte length of a data array of dataLen elements.
func DataBytes(w ValueWidth, dataLen uint32) uint64 {
	return uint64(dataLen) * uint64(w.Bytes())
}

// ASCIIBytes returns the byte length of the ASCII table, zero for TypeSmall.
func ASCIIBytes(t TrieType, w ValueWidth) uint64 {
	if t != TypeFast {
		return 0
	}
	return ASCIILimit * uint64(w.Bytes())
}

// TrieBytes returns the exact serialized size declared by h:
//
//	header + index + data + ascii
//
// The arithmetic is done in uint64 so hostile header fields cannot overflow.
func TrieBytes(h Header) uint64 {
	return uint64(HeaderBytes(h.Width)) +
		IndexBytes(h.IndexLen) +
		DataBytes(h.Width, h.DataLen) +
		ASCIIBytes(h.Type, h.Width)
}

// DenseBytes returns the size of a naive array holding every code point at
// width w. Used to report compaction ratios.
func DenseBytes(w ValueWidth) uint64 {
	return DomainSize * uint64(w.Bytes())
}
