// Copyright (c) 2023 Colin McRae

package smith

const (
	// DefaultVerify controls whether Compute checks S = E U P A Q F and the
	// unimodularity of every transform before returning.
	DefaultVerify = false

	// DefaultStabilization controls whether the diagonalization phases move
	// gcds onto the pivots with stabilizing multiples before the extended
	// gcd combinations. The Smith form is the same either way; the
	// transforms usually have smaller entries with stabilization on.
	DefaultStabilization = true
)

// Option mutates Options. Safe to apply repeatedly.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	verify    bool
	stabilize bool
}

// WithVerify makes Compute check its postconditions exactly and fail with
// ErrVerification if they do not hold.
func WithVerify(verify bool) Option {
	return func(o *Options) {
		o.verify = verify
	}
}

// WithStabilization turns the stabilization sweeps on or off.
func WithStabilization(stabilize bool) Option {
	return func(o *Options) {
		o.stabilize = stabilize
	}
}

func gatherOptions(opts ...Option) Options {
	o := Options{verify: DefaultVerify, stabilize: DefaultStabilization}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
