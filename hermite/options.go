// Copyright (c) 2023 Colin McRae

package hermite

// DefaultVerify controls whether Compute checks H = U A and |det U| = 1
// before returning.
const DefaultVerify = false

// Option mutates Options. Safe to apply repeatedly.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	verify bool
}

// WithVerify makes Compute check its postconditions exactly and fail with
// ErrVerification if they do not hold.
func WithVerify(verify bool) Option {
	return func(o *Options) {
		o.verify = verify
	}
}

func gatherOptions(opts ...Option) Options {
	o := Options{verify: DefaultVerify}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
