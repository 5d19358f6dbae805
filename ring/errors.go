// Copyright (c) 2023 Colin McRae

package ring

import "errors"

var (
	// ErrDivisionByZero is returned when a divisor is 0.
	ErrDivisionByZero = errors.New("ring: division by zero")

	// ErrInexactDivision is returned by DivExact when the divisor does not
	// divide the dividend. Inside the algorithms it signals a broken
	// invariant rather than bad input.
	ErrInexactDivision = errors.New("ring: inexact division")

	// ErrOverflow is the panic value (wrapped) of the Int64 ring when a
	// result does not fit in an int64.
	ErrOverflow = errors.New("ring: int64 overflow")
)
