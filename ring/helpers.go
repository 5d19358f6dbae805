// Copyright (c) 2023 Colin McRae

package ring

import "fmt"

// IsZero reports whether x is 0
func IsZero[T any](r Ring[T], x T) bool {
	return r.Sign(x) == 0
}

// IsOne reports whether x is 1
func IsOne[T any](r Ring[T], x T) bool {
	return r.Cmp(x, r.One()) == 0
}

// IsUnit reports whether x is 1 or -1
func IsUnit[T any](r Ring[T], x T) bool {
	return r.Cmp(r.Abs(x), r.One()) == 0
}

// Equal reports whether x and y have the same value
func Equal[T any](r Ring[T], x, y T) bool {
	return r.Cmp(x, y) == 0
}

// DivExact returns x / y. If y does not divide x, an error wrapping
// ErrInexactDivision is returned; if y is 0, an error wrapping
// ErrDivisionByZero is returned.
func DivExact[T any](r Ring[T], x, y T) (T, error) {
	q, rem, err := r.DivMod(x, y)
	if err != nil {
		return r.Zero(), fmt.Errorf("DivExact: %w", err)
	}
	if !IsZero(r, rem) {
		return r.Zero(), fmt.Errorf(
			"DivExact: %s / %s: %w", r.String(x), r.String(y), ErrInexactDivision,
		)
	}
	return q, nil
}

// Mod returns the representative of x modulo n in {0,...,|n|-1}
func Mod[T any](r Ring[T], x, n T) (T, error) {
	_, rem, err := r.DivMod(x, n)
	if err != nil {
		return r.Zero(), fmt.Errorf("Mod: %w", err)
	}
	return rem, nil
}

// Divides reports whether a divides b. 0 divides only 0.
func Divides[T any](r Ring[T], a, b T) bool {
	if IsZero(r, a) {
		return IsZero(r, b)
	}
	_, rem, err := r.DivMod(b, a)
	return err == nil && IsZero(r, rem)
}

// mustDiv divides x by y where y is known to divide x and be non-zero.
// Violations indicate a bug in this package, so they panic.
func mustDiv[T any](r Ring[T], x, y T) T {
	q, err := DivExact(r, x, y)
	if err != nil {
		panic(err)
	}
	return q
}
