package txtpb

import (
	"txtpb/internal/parser"
)

// EmptyListPolicy decides how `name: []` is classified: an empty list after
// a colon has no element that tells scalar and message lists apart.
type EmptyListPolicy = parser.EmptyListPolicy

const (
	// EmptyListScalar treats `name: []` as an empty scalar list (default).
	EmptyListScalar = parser.EmptyListScalar
	// EmptyListMessage treats `name: []` as an empty message list.
	EmptyListMessage = parser.EmptyListMessage
)

type options struct {
	name      string
	emptyList EmptyListPolicy
}

// Option configures Parse.
type Option func(*options)

func newOptions(opts []Option) options {
	cfg := options{name: "<input>"}
	for _, o := range opts {
		o(&cfg)
	}
	return cfg
}

// WithName sets the file name reported in errors.
func WithName(name string) Option {
	return func(o *options) { o.name = name }
}

// WithEmptyList selects the classification of `name: []`.
func WithEmptyList(p EmptyListPolicy) Option {
	return func(o *options) { o.emptyList = p }
}
