// Copyright (c) 2023 Colin McRae

// Package ring defines the exact integer arithmetic that the elimination,
// Hermite and Smith algorithms are written against, together with the
// gcd-based helpers (Bezout quadruples, stabilization, canonical units)
// those algorithms share.
package ring

// Ring is an ordered exact integral domain with Euclidean division. Values
// of T are never modified by a Ring; every operation returns a fresh value,
// so callers may share values between matrices freely.
type Ring[T any] interface {
	Zero() T
	One() T
	FromInt64(x int64) T

	// FromString parses a decimal integer, optionally preceded by a sign.
	FromString(s string) (T, error)

	Add(x, y T) T
	Sub(x, y T) T
	Mul(x, y T) T
	Neg(x T) T
	Abs(x T) T

	// Cmp returns -1, 0 or +1 as x is less than, equal to or greater than y
	Cmp(x, y T) int
	Sign(x T) int

	// DivMod returns q and r with x = q*y + r and 0 <= r < |y| (Euclidean
	// division). If y is 0, an error wrapping ErrDivisionByZero is returned.
	DivMod(x, y T) (T, T, error)

	// GCD returns the non-negative greatest common divisor of x and y, with
	// GCD(0, 0) = 0.
	GCD(x, y T) T

	Float64(x T) float64
	String(x T) string
}

// BezoutRing is a Ring with a native extended gcd. Bezout returns g, u, v
// with u*a + v*b = g = GCD(a, b). Rings that do not implement it get the
// generic extended Euclidean algorithm.
type BezoutRing[T any] interface {
	Ring[T]
	Bezout(a, b T) (T, T, T)
}
