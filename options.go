package tdf

import "github.com/globalmentor/go-urf/internal/libtdf"

// Re-export the option-holding structs, for callers that want to apply a
// set of options once and reuse the result (e.g. across many Write calls).
type (
	ParseOptions     = libtdf.ParseOptions
	SerializeOptions = libtdf.SerializeOptions
)

// NewParseOptions applies opts over the documented defaults.
func NewParseOptions(opts ...ParseOption) ParseOptions {
	return libtdf.NewParseOptions(opts...)
}

// NewSerializeOptions applies opts over the documented defaults.
func NewSerializeOptions(opts ...SerializeOption) SerializeOptions {
	return libtdf.NewSerializeOptions(opts...)
}

// ParseOptionSet combines multiple ParseOptions into one, the way a caller
// builds a reusable preset.
func ParseOptionSet(opts ...ParseOption) ParseOption {
	return func(o *ParseOptions) {
		for _, opt := range opts {
			opt(o)
		}
	}
}

// SerializeOptionSet combines multiple SerializeOptions into one, the way a
// caller builds a reusable preset.
func SerializeOptionSet(opts ...SerializeOption) SerializeOption {
	return func(o *SerializeOptions) {
		for _, opt := range opts {
			opt(o)
		}
	}
}
