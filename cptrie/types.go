package cptrie

import (
	"errors"
	"fmt"
)

const (
	// BlockSize is the number of consecutive code points sharing one index
	// entry. It is the unit of deduplication.
	BlockSize = 1 << blockShift

	blockShift = 6
	blockMask  = BlockSize - 1

	// MaxCodePoint is the largest code point in the domain.
	MaxCodePoint = 0x10FFFF

	// DomainSize is the number of code points in the domain (0x110000).
	DomainSize = MaxCodePoint + 1

	// ASCIILimit is the first code point not covered by the ASCII table of a
	// TypeFast trie.
	ASCIILimit = 0x80

	blockCount = DomainSize >> blockShift
)

// TrieType selects the layout of a trie. It never changes the mapping, only
// the lookup path and the serialized size.
type TrieType uint8

const (
	// TypeFast adds a direct 128 entry ASCII table in front of the index.
	TypeFast TrieType = 0
	// TypeSmall resolves every code point below HighStart through the index.
	TypeSmall TrieType = 1
)

func (t TrieType) valid() bool { return t == TypeFast || t == TypeSmall }

func (t TrieType) String() string {
	switch t {
	case TypeFast:
		return "fast"
	case TypeSmall:
		return "small"
	default:
		return fmt.Sprintf("TrieType(%d)", uint8(t))
	}
}

var (
	ErrRangeOutOfDomain = errors.New("cptrie: range bounds outside 0..0x10FFFF or start > end")
	ErrValueTooWide     = errors.New("cptrie: value does not fit the configured width")
	ErrWidthExceedsType = errors.New("cptrie: value width is wider than the value type")
	ErrBuilderConsumed  = errors.New("cptrie: builder already built")
	ErrBadOption        = errors.New("cptrie: invalid build option")

	ErrBadTrieType        = errors.New("cptrie: header trie type invalid")
	ErrBadValueWidth      = errors.New("cptrie: header value width invalid")
	ErrBufferSize         = errors.New("cptrie: buffer size does not match the header")
	ErrHighStartUnaligned = errors.New("cptrie: header high start not block aligned")
	ErrHighStartRange     = errors.New("cptrie: header high start beyond the domain")
	ErrIndexLength        = errors.New("cptrie: header index length inconsistent with high start")
	ErrIndexOffset        = errors.New("cptrie: index entry out of data bounds")
)

// BuildError reports a caller mistake detected while staging or building a
// trie. It wraps ErrRangeOutOfDomain, ErrValueTooWide, ErrWidthExceedsType
// or ErrBadOption.
type BuildError struct {
	Err error
}

func (e *BuildError) Error() string { return e.Err.Error() }
func (e *BuildError) Unwrap() error { return e.Err }

// FormatError reports a malformed, truncated or inconsistent serialized
// trie. No trie is ever returned together with a FormatError. Load reports
// a stored width wider than the value type as ErrWidthExceedsType.
type FormatError struct {
	Err error
}

func (e *FormatError) Error() string { return e.Err.Error() }
func (e *FormatError) Unwrap() error { return e.Err }

func buildErrorf(sentinel error, format string, args ...any) error {
	return &BuildError{Err: fmt.Errorf("%w: "+format, append([]any{sentinel}, args...)...)}
}

func formatErrorf(sentinel error, format string, args ...any) error {
	return &FormatError{Err: fmt.Errorf("%w: "+format, append([]any{sentinel}, args...)...)}
}
