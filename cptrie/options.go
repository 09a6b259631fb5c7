package cptrie

// BuildOptions controls the layout Build produces. The mapping never
// depends on it.
type BuildOptions struct {
	// Type is the requested layout. Nil selects TypeFast unless every code
	// point has the same value, in which case TypeSmall is used as the ASCII
	// table would only add size.
	Type *TrieType

	// Width pins the stored value width. Nil selects the narrowest width
	// holding every stored value.
	Width *ValueWidth
}

// BuildOption configures Build.
type BuildOption func(*BuildOptions)

// WithType requests a layout instead of letting Build choose.
func WithType(t TrieType) BuildOption {
	return func(o *BuildOptions) {
		o.Type = &t
	}
}

// WithWidth pins the stored value width.
func WithWidth(w ValueWidth) BuildOption {
	return func(o *BuildOptions) {
		o.Width = &w
	}
}

// NewBuildOptions applies opts over the zero options.
func NewBuildOptions(opts ...BuildOption) BuildOptions {
	var o BuildOptions
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

func (o BuildOptions) check(vw ValueWidth) error {
	if o.Type != nil && !o.Type.valid() {
		return buildErrorf(ErrBadOption, "trie type %s", *o.Type)
	}
	if o.Width != nil {
		if !o.Width.valid() {
			return buildErrorf(ErrBadOption, "value width %s", *o.Width)
		}
		if *o.Width > vw {
			return buildErrorf(ErrWidthExceedsType, "pinned %s, value type holds %s", *o.Width, vw)
		}
	}
	return nil
}
