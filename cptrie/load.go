package cptrie

// Load validates buf as a serialized trie and returns a Trie that reads
// directly from buf. Nothing is copied: buf must not be modified while the
// Trie is in use.
//
// Every field that is later used to index into buf is checked first, so a
// Trie returned from Load can never read out of bounds. Any inconsistency is
// reported as a *FormatError wrapping one of the format sentinels and no
// Trie is returned.
func Load[V Value](buf []byte) (*Trie[V], error) {
	h, err := DecodeHeader(buf)
	if err != nil {
		return nil, err
	}
	if err := checkHeader[V](h, len(buf)); err != nil {
		return nil, err
	}

	hdrLen := uint64(HeaderBytes(h.Width))
	idxEnd := hdrLen + IndexBytes(h.IndexLen)
	dataEnd := idxEnd + DataBytes(h.Width, h.DataLen)

	index := buf[hdrLen:idxEnd]
	for i := uint32(0); i < h.IndexLen; i++ {
		off := readU32LE(index[i*4:])
		if uint64(off)+BlockSize > uint64(h.DataLen) {
			return nil, formatErrorf(ErrIndexOffset, "block %d offset %d, data length %d", i, off, h.DataLen)
		}
	}

	t := &Trie[V]{
		typ:        h.Type,
		width:      h.Width,
		codec:      codecFor(h.Width),
		highStart:  h.HighStart,
		highValue:  h.HighValue,
		errorValue: h.ErrorValue,
		index:      index,
		data:       buf[idxEnd:dataEnd],
		buf:        buf,
	}
	if h.Type == TypeFast {
		t.ascii = buf[dataEnd:]
	}
	return t, nil
}

// checkHeader checks the header fields against each other and against the
// buffer length n. It never touches the index or data sections.
func checkHeader[V Value](h Header, n int) error {
	if vw := widthOf[V](); h.Width > vw {
		return formatErrorf(ErrWidthExceedsType, "stored %s, value type holds %s", h.Width, vw)
	}
	if h.HighStart > DomainSize {
		return formatErrorf(ErrHighStartRange, "high start 0x%X", h.HighStart)
	}
	if h.HighStart&blockMask != 0 {
		return formatErrorf(ErrHighStartUnaligned, "high start 0x%X", h.HighStart)
	}
	if want := IndexLenFor(h.HighStart); h.IndexLen != want {
		return formatErrorf(ErrIndexLength, "want %d entries for high start 0x%X, got %d", want, h.HighStart, h.IndexLen)
	}
	if want := TrieBytes(h); uint64(n) != want {
		return formatErrorf(ErrBufferSize, "header declares %d bytes, buffer has %d", want, n)
	}
	return nil
}
