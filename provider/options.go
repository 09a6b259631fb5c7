package provider

import (
	"github.com/datatrails/go-datatrails-common/azblob"
)

const DefaultExtension = ".cpt"

// Options are shared by the adapters. Each adapter ignores the options it
// has no use for.
type Options struct {
	extension string
	prefix    string
	opener    Opener

	// options that are forwarded when issuing a read blob call
	remoteReadOpts []azblob.Option
}

type Option func(*Options)

func NewOptions(opts ...Option) Options {
	o := Options{extension: DefaultExtension}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithExtension sets the suffix appended to an identifier to form a file or
// blob name. The default is DefaultExtension.
func WithExtension(ext string) Option {
	return func(o *Options) {
		o.extension = ext
	}
}

// WithPrefix sets the blob path prefix identifiers are resolved under.
func WithPrefix(prefix string) Option {
	return func(o *Options) {
		o.prefix = prefix
	}
}

// WithOpener replaces the file opener used by Dir.
func WithOpener(opener Opener) Option {
	return func(o *Options) {
		o.opener = opener
	}
}

// WithReadOptions sets options forwarded on every blob read.
func WithReadOptions(opts ...azblob.Option) Option {
	return func(o *Options) {
		o.remoteReadOpts = append(o.remoteReadOpts, opts...)
	}
}
