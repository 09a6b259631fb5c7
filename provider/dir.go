package provider

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/datatrails/go-datatrails-common/logger"
)

type Opener interface {
	Open(string) (io.ReadCloser, error)
}

type osOpener struct{}

func (osOpener) Open(name string) (io.ReadCloser, error) { return os.Open(name) }

// Dir serves tries stored one per file under a root directory. The
// identifier "script/latn" resolves to <root>/script/latn.cpt.
type Dir struct {
	log  logger.Logger
	root string
	opts Options
}

func NewDir(log logger.Logger, root string, opts ...Option) (*Dir, error) {
	if root == "" {
		return nil, fmt.Errorf("%w: empty root directory", ErrBadIdentifier)
	}
	o := NewOptions(opts...)
	if o.opener == nil {
		o.opener = osOpener{}
	}
	return &Dir{log: log, root: root, opts: o}, nil
}

// Path returns the file an identifier resolves to.
func (d *Dir) Path(identifier string) (string, error) {
	name := filepath.FromSlash(identifier + d.opts.extension)
	if identifier == "" || !filepath.IsLocal(name) {
		return "", fmt.Errorf("%w: %q", ErrBadIdentifier, identifier)
	}
	return filepath.Join(d.root, name), nil
}

func (d *Dir) Fetch(ctx context.Context, identifier string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	fileName, err := d.Path(identifier)
	if err != nil {
		return nil, err
	}

	f, err := d.opts.opener.Open(fileName)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, fileName)
	}
	if err != nil {
		return nil, err
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", fileName, err)
	}
	d.log.Debugf("fetched %s: %d bytes", fileName, len(data))
	return data, nil
}

// Identifiers lists the identifiers available under the root, in lexical
// order.
func (d *Dir) Identifiers() ([]string, error) {
	var ids []string
	err := filepath.WalkDir(d.root, func(p string, e fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if e.IsDir() || !strings.HasSuffix(p, d.opts.extension) {
			return nil
		}
		rel, err := filepath.Rel(d.root, p)
		if err != nil {
			return err
		}
		ids = append(ids, filepath.ToSlash(strings.TrimSuffix(rel, d.opts.extension)))
		return nil
	})
	if err != nil {
		return nil, err
	}
	return ids, nil
}
