package checkers

type EmptyOptions struct {
	TrimStr bool
}

type EmptyOption func(*EmptyOptions)

// WithTrimStr strips leading and trailing whitespace from strings before
// they are classified.
func WithTrimStr() EmptyOption {
	return func(o *EmptyOptions) { o.TrimStr = true }
}

type BoolOptions struct {
	CoerceValue bool
}

type BoolOption func(*BoolOptions)

// WithCoerce also accepts values from the truthy/falsy vocabulary.
func WithCoerce() BoolOption {
	return func(o *BoolOptions) { o.CoerceValue = true }
}

func resolveEmpty(opts []EmptyOption) EmptyOptions {
	var o EmptyOptions
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}

func resolveBool(opts []BoolOption) BoolOptions {
	var o BoolOptions
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}
