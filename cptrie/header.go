package cptrie

const (
	offTrieType  = 0
	offWidth     = 1
	offHighStart = 2
	offValues    = 6 // high value, then error value, each width bytes

	// minHeaderBytes is the size of the tags every header starts with.
	minHeaderBytes = 2
)

// Header holds the fixed fields at the front of a serialized trie.
type Header struct {
	Type       TrieType
	Width      ValueWidth
	HighStart  uint32
	HighValue  uint32
	ErrorValue uint32
	IndexLen   uint32
	DataLen    uint32
}

// HeaderBytes returns the encoded header size for width w.
func HeaderBytes(w ValueWidth) int {
	return offValues + 2*w.Bytes() + 4 + 4
}

// DecodeHeader decodes the header at the front of buf.
//
// Only the tags and the header length are checked here; the consistency of
// the fields with each other and with len(buf) is checked by Load.
func DecodeHeader(buf []byte) (Header, error) {
	if len(buf) < minHeaderBytes {
		return Header{}, formatErrorf(ErrBufferSize, "want at least %d header bytes, got %d", minHeaderBytes, len(buf))
	}
	var h Header
	h.Type = TrieType(buf[offTrieType])
	h.Width = ValueWidth(buf[offWidth])
	if !h.Type.valid() {
		return Header{}, formatErrorf(ErrBadTrieType, "tag %d", buf[offTrieType])
	}
	if !h.Width.valid() {
		return Header{}, formatErrorf(ErrBadValueWidth, "tag %d", buf[offWidth])
	}
	n := HeaderBytes(h.Width)
	if len(buf) < n {
		return Header{}, formatErrorf(ErrBufferSize, "want at least %d header bytes, got %d", n, len(buf))
	}

	codec := codecFor(h.Width)
	values := buf[offValues:]
	h.HighStart = readU32LE(buf[offHighStart:])
	h.HighValue = codec.at(values, 0)
	h.ErrorValue = codec.at(values, 1)
	lens := buf[offValues+2*h.Width.Bytes():]
	h.IndexLen = readU32LE(lens[0:4])
	h.DataLen = readU32LE(lens[4:8])
	return h, nil
}

// EncodeHeader writes h into the front of dst.
func EncodeHeader(dst []byte, h Header) error {
	if !h.Type.valid() {
		return formatErrorf(ErrBadTrieType, "tag %d", uint8(h.Type))
	}
	if !h.Width.valid() {
		return formatErrorf(ErrBadValueWidth, "tag %d", uint8(h.Width))
	}
	if !h.Width.Fits(h.HighValue) || !h.Width.Fits(h.ErrorValue) {
		return buildErrorf(ErrValueTooWide, "high value %d or error value %d exceeds %s", h.HighValue, h.ErrorValue, h.Width)
	}
	n := HeaderBytes(h.Width)
	if len(dst) < n {
		return formatErrorf(ErrBufferSize, "want at least %d header bytes, got %d", n, len(dst))
	}

	codec := codecFor(h.Width)
	dst[offTrieType] = byte(h.Type)
	dst[offWidth] = byte(h.Width)
	writeU32LE(dst[offHighStart:], h.HighStart)
	values := dst[offValues:]
	codec.put(values, 0, h.HighValue)
	codec.put(values, 1, h.ErrorValue)
	lens := dst[offValues+2*h.Width.Bytes():]
	writeU32LE(lens[0:4], h.IndexLen)
	writeU32LE(lens[4:8], h.DataLen)
	return nil
}

// encodeTrie serializes a trie from its resolved parts. h.IndexLen and
// h.DataLen are taken from index and data. ascii must hold ASCIILimit values
// for TypeFast and be empty for TypeSmall.
func encodeTrie(h Header, index, data, ascii []uint32) ([]byte, error) {
	h.IndexLen = uint32(len(index))
	h.DataLen = uint32(len(data))
	buf := make([]byte, TrieBytes(h))
	if err := EncodeHeader(buf, h); err != nil {
		return nil, err
	}

	codec := codecFor(h.Width)
	b := buf[HeaderBytes(h.Width):]
	for i, off := range index {
		writeU32LE(b[i*4:], off)
	}
	b = b[IndexBytes(h.IndexLen):]
	for i, v := range data {
		codec.put(b, uint32(i), v)
	}
	b = b[DataBytes(h.Width, h.DataLen):]
	for i, v := range ascii {
		codec.put(b, uint32(i), v)
	}
	return buf, nil
}
