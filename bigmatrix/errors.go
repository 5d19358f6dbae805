// Copyright (c) 2023 Colin McRae

package bigmatrix

import "errors"

var (
	// ErrBadShape is returned when dimensions are negative or do not match
	// the number of values supplied.
	ErrBadShape = errors.New("bigmatrix: bad shape")

	// ErrOutOfRange is returned when a row or column index is outside the matrix.
	ErrOutOfRange = errors.New("bigmatrix: index out of range")

	// ErrDimensionMismatch is returned when operands of a binary operation
	// have incompatible dimensions.
	ErrDimensionMismatch = errors.New("bigmatrix: dimension mismatch")

	// ErrNonSquare is returned when a square matrix is required.
	ErrNonSquare = errors.New("bigmatrix: matrix is not square")

	// ErrNotInteger is returned when a floating point matrix has an entry
	// that is not an integer representable without loss.
	ErrNotInteger = errors.New("bigmatrix: value is not an integer")
)
