package provider

import (
	"context"
	"errors"
	"fmt"

	"github.com/forestrie/go-codepointtrie/cptrie"
)

var (
	ErrNotFound           = errors.New("provider: no trie data for identifier")
	ErrBadIdentifier      = errors.New("provider: identifier is empty or escapes the store root")
	ErrCacheSize          = errors.New("provider: cache size must be positive")
	ErrStoreNotProvided   = errors.New("provider: a blob store was not provided")
	ErrFetcherNotProvided = errors.New("provider: an upstream fetcher was not provided")
)

// Fetcher resolves an identifier, such as "gc" or "script/latn", to the bytes
// of a serialized trie. Implementations never parse the bytes.
//
// The returned slice may be shared with other callers and must not be
// modified.
type Fetcher interface {
	Fetch(ctx context.Context, identifier string) ([]byte, error)
}

// LoadTrie fetches identifier from f and loads it as a trie of V.
func LoadTrie[V cptrie.Value](ctx context.Context, f Fetcher, identifier string) (*cptrie.Trie[V], error) {
	data, err := f.Fetch(ctx, identifier)
	if err != nil {
		return nil, err
	}
	t, err := cptrie.Load[V](data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", identifier, err)
	}
	return t, nil
}
