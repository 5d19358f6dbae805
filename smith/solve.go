// Copyright (c) 2023 Colin McRae

package smith

import (
	"fmt"

	"github.com/predrag3141/canonform/bigmatrix"
	"github.com/predrag3141/canonform/ring"
)

// Solve returns an integer solution x of a x = b, where b has one column
// per right-hand side. If some column of b has no integer solution, an
// error wrapping ErrNoIntegerSolution is returned.
//
// With S = L a R from Compute, a x = b is equivalent to S y = L b with
// x = R y. Row i < rank of S y is d_i y_i, which must equal (L b)_i, and
// rows past the rank must already be 0 in L b. The free entries of y are
// set to 0.
func Solve[T any](a, b *bigmatrix.BigMatrix[T]) (*bigmatrix.BigMatrix[T], error) {
	r := a.Ring()
	if a.NumRows() != b.NumRows() {
		return nil, fmt.Errorf(
			"smith.Solve: %d x %d system with %d right-hand rows: %w",
			a.NumRows(), a.NumCols(), b.NumRows(), bigmatrix.ErrDimensionMismatch,
		)
	}
	res, err := Compute(a)
	if err != nil {
		return nil, fmt.Errorf("smith.Solve: %w", err)
	}
	left, err := res.Left()
	if err != nil {
		return nil, fmt.Errorf("smith.Solve: %w", err)
	}
	right, err := res.Right()
	if err != nil {
		return nil, fmt.Errorf("smith.Solve: %w", err)
	}
	c, err := new(bigmatrix.BigMatrix[T]).Mul(left, b)
	if err != nil {
		return nil, fmt.Errorf("smith.Solve: %w", err)
	}

	y, err := bigmatrix.New(r, a.NumCols(), b.NumCols())
	if err != nil {
		return nil, fmt.Errorf("smith.Solve: %w", err)
	}
	for k := 0; k < b.NumCols(); k++ {
		for i := 0; i < res.Rank; i++ {
			yi, err := ring.DivExact(r, c.At(i, k), res.S.At(i, i))
			if err != nil {
				return nil, fmt.Errorf(
					"smith.Solve: column %d, invariant factor %d: %w", k, i, ErrNoIntegerSolution,
				)
			}
			y.SetAt(i, k, yi)
		}
		if !c.ColIsZero(k, res.Rank) {
			return nil, fmt.Errorf("smith.Solve: column %d is inconsistent: %w", k, ErrNoIntegerSolution)
		}
	}
	return new(bigmatrix.BigMatrix[T]).Mul(right, y)
}
