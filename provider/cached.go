package provider

import (
	"context"

	"github.com/datatrails/go-datatrails-common/logger"
	lru "github.com/hashicorp/golang-lru/v2"
)

// Cached keeps the most recently fetched buffers of an upstream Fetcher.
// Failed fetches are not cached.
type Cached struct {
	log   logger.Logger
	next  Fetcher
	cache *lru.Cache[string, []byte]
}

func NewCached(log logger.Logger, next Fetcher, size int) (*Cached, error) {
	if next == nil {
		return nil, ErrFetcherNotProvided
	}
	if size <= 0 {
		return nil, ErrCacheSize
	}
	cache, err := lru.New[string, []byte](size)
	if err != nil {
		return nil, err
	}
	return &Cached{log: log, next: next, cache: cache}, nil
}

func (c *Cached) Fetch(ctx context.Context, identifier string) ([]byte, error) {
	if data, ok := c.cache.Get(identifier); ok {
		return data, nil
	}
	data, err := c.next.Fetch(ctx, identifier)
	if err != nil {
		return nil, err
	}
	if evicted := c.cache.Add(identifier, data); evicted {
		c.log.Debugf("cache full, evicted oldest entry for %s", identifier)
	}
	return data, nil
}

// Len returns the number of cached buffers.
func (c *Cached) Len() int { return c.cache.Len() }

// Purge drops every cached buffer.
func (c *Cached) Purge() { c.cache.Purge() }
