package provider

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"path"

	"github.com/datatrails/go-datatrails-common/azblob"
	"github.com/datatrails/go-datatrails-common/logger"
)

// BlobReader is the subset of azblob.Storer that Blob needs.
type BlobReader interface {
	Reader(
		ctx context.Context,
		identity string,
		opts ...azblob.Option,
	) (*azblob.ReaderResponse, error)
}

// Blob serves tries stored one per blob. The identifier "script/latn"
// resolves to the blob <prefix>/script/latn.cpt.
type Blob struct {
	log   logger.Logger
	store BlobReader
	opts  Options
}

// NewBlob returns a Blob reading from store.
func NewBlob(log logger.Logger, store BlobReader, opts ...Option) (*Blob, error) {
	if store == nil {
		return nil, ErrStoreNotProvided
	}
	return &Blob{log: log, store: store, opts: NewOptions(opts...)}, nil
}

// BlobPath returns the blob an identifier resolves to.
func (b *Blob) BlobPath(identifier string) (string, error) {
	if !fs.ValidPath(identifier) || identifier == "." {
		return "", fmt.Errorf("%w: %q", ErrBadIdentifier, identifier)
	}
	return path.Join(b.opts.prefix, identifier+b.opts.extension), nil
}

func (b *Blob) Fetch(ctx context.Context, identifier string) ([]byte, error) {
	blobPath, err := b.BlobPath(identifier)
	if err != nil {
		return nil, err
	}

	rr, err := b.store.Reader(ctx, blobPath, b.opts.remoteReadOpts...)
	if err != nil {
		return nil, wrapBlobNotFound(blobPath, err)
	}
	data, err := readBlob(rr)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", blobPath, err)
	}
	b.log.Debugf("fetched blob %s: %d bytes", blobPath, len(data))
	return data, nil
}

// readBlob drains and closes the response body.
func readBlob(rr *azblob.ReaderResponse) ([]byte, error) {
	if c, ok := rr.Reader.(io.Closer); ok {
		defer c.Close()
	}
	if rr.ContentLength > 0 {
		data := make([]byte, rr.ContentLength)
		if _, err := io.ReadFull(rr.Reader, data); err != nil {
			return nil, err
		}
		return data, nil
	}
	return io.ReadAll(rr.Reader)
}
