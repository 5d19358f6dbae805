// Copyright (c) 2023 Colin McRae

// Package smith computes the Smith normal form of an integer matrix by
// Storjohann's method.
//
// The Smith normal form of an m x n matrix A of rank r is the unique m x n
// matrix S that is 0 except for positive diagonal entries d_0,...,d_{r-1}
// with d_i dividing d_{i+1}, such that S = L A R for unimodular L and R.
//
// Compute first permutes A so that its leading r x r minor is non-singular,
// takes the Hermite normal form of the leading r columns and then
// diagonalizes the triangular result in phases. Each phase accumulates its
// own pair of transforms, and the phases are composed by multiplication at
// the end.
package smith

import (
	"fmt"

	logging "github.com/ipfs/go-log/v2"

	"github.com/predrag3141/canonform/bareiss"
	"github.com/predrag3141/canonform/bigmatrix"
	"github.com/predrag3141/canonform/hermite"
	"github.com/predrag3141/canonform/ring"
)

var log = logging.Logger("smith")

// Result is the output of Compute, with S = E U P A Q F.
//
// P and Q are the permutations found by elimination, U is the transform
// of the Hermite step and E and F are the row and column transforms of the
// diagonalization. All of them are unimodular. Det is the signed
// determinant of the leading Rank x Rank minor of P A Q.
type Result[T any] struct {
	S    *bigmatrix.BigMatrix[T]
	P    *bigmatrix.BigMatrix[T]
	Q    *bigmatrix.BigMatrix[T]
	U    *bigmatrix.BigMatrix[T]
	E    *bigmatrix.BigMatrix[T]
	F    *bigmatrix.BigMatrix[T]
	Rank int
	Det  T
}

// Left returns the combined row transform E U P.
func (res *Result[T]) Left() (*bigmatrix.BigMatrix[T], error) {
	return bigmatrix.Product(res.E, res.U, res.P)
}

// Right returns the combined column transform Q F.
func (res *Result[T]) Right() (*bigmatrix.BigMatrix[T], error) {
	return bigmatrix.Product(res.Q, res.F)
}

// Compute returns the Smith normal form of a with its transforms.
func Compute[T any](a *bigmatrix.BigMatrix[T], opts ...Option) (*Result[T], error) {
	o := gatherOptions(opts...)
	numRows, numCols := a.Dimensions()

	perm, err := bareiss.Permute(a)
	if err != nil {
		return nil, fmt.Errorf("smith.Compute: %w", err)
	}
	paq, err := bigmatrix.Product(perm.P, a, perm.Q)
	if err != nil {
		return nil, fmt.Errorf("smith.Compute: %w", err)
	}
	res := &Result[T]{P: perm.P, Q: perm.Q, Rank: perm.Rank, Det: perm.Det}
	log.Debugf("Compute: %d x %d, rank %d", numRows, numCols, perm.Rank)

	if perm.Rank == 0 {
		res.S = paq
		res.U = a.Identity(numRows)
		res.E = a.Identity(numRows)
		res.F = a.Identity(numCols)
		return finish(a, res, o)
	}

	// The leading rank columns of P A Q have full column rank, and the
	// remaining columns are rational combinations of them, so U P A Q is 0
	// below row rank.
	lead, err := paq.Submatrix(0, numRows, 0, perm.Rank)
	if err != nil {
		return nil, fmt.Errorf("smith.Compute: %w", err)
	}
	herm, err := hermite.Compute(lead)
	if err != nil {
		return nil, fmt.Errorf("smith.Compute: %w", err)
	}
	h, err := new(bigmatrix.BigMatrix[T]).Mul(herm.U, paq)
	if err != nil {
		return nil, fmt.Errorf("smith.Compute: %w", err)
	}

	rd := newReducer(h, perm.Rank)
	if err = rd.phase("reduceColumns", rd.reduceColumns); err != nil {
		return nil, fmt.Errorf("smith.Compute: %w", err)
	}
	corner := rd.unitCorner()
	log.Debugf("Compute: unit corner %d of rank %d", corner, perm.Rank)
	for _, p := range []struct {
		name string
		run  func() error
	}{
		{"diagonalizeRows", func() error { return rd.diagonalizeRows(corner, o.stabilize) }},
		{"clearTrailingColumns", func() error { return rd.clearTrailingColumns(corner) }},
		{"diagonalizeCols", func() error { return rd.diagonalizeCols(corner, o.stabilize) }},
	} {
		if err = rd.phase(p.name, p.run); err != nil {
			return nil, fmt.Errorf("smith.Compute: %w", err)
		}
	}
	e, f, err := rd.transforms()
	if err != nil {
		return nil, fmt.Errorf("smith.Compute: %w", err)
	}
	res.S = h
	res.U = herm.U
	res.E = e
	res.F = f
	return finish(a, res, o)
}

func finish[T any](a *bigmatrix.BigMatrix[T], res *Result[T], o Options) (*Result[T], error) {
	if !o.verify {
		return res, nil
	}
	if err := Verify(a, res); err != nil {
		log.Warnf("Compute: %v", err)
		return nil, err
	}
	return res, nil
}

// Invariants returns the non-zero diagonal entries d_0,...,d_{r-1} of the
// Smith normal form of a, the invariant factors of a.
func Invariants[T any](a *bigmatrix.BigMatrix[T]) ([]T, error) {
	res, err := Compute(a)
	if err != nil {
		return nil, err
	}
	retVal := make([]T, res.Rank)
	for i := range retVal {
		retVal[i] = res.S.At(i, i)
	}
	return retVal, nil
}

// Verify checks that res.S = E U P a Q F exactly, that every transform is
// unimodular and that res.S is in Smith normal form with res.Rank non-zero
// diagonal entries. A failure wraps ErrVerification.
func Verify[T any](a *bigmatrix.BigMatrix[T], res *Result[T]) error {
	r := a.Ring()
	product, err := bigmatrix.Product(res.E, res.U, res.P, a, res.Q, res.F)
	if err != nil {
		return fmt.Errorf("smith.Verify: %w", err)
	}
	if !product.Equals(res.S) {
		return fmt.Errorf("smith.Verify: S != E U P A Q F: %w", ErrVerification)
	}
	for _, x := range []struct {
		name string
		m    *bigmatrix.BigMatrix[T]
	}{{"P", res.P}, {"Q", res.Q}, {"U", res.U}, {"E", res.E}, {"F", res.F}} {
		det, err := bareiss.Det(x.m)
		if err != nil {
			return fmt.Errorf("smith.Verify: %s: %w", x.name, err)
		}
		if !ring.IsUnit(r, det) {
			return fmt.Errorf("smith.Verify: det %s = %s: %w", x.name, r.String(det), ErrVerification)
		}
	}
	if !IsNormalForm(res.S) {
		return fmt.Errorf("smith.Verify: S is not in Smith normal form: %w", ErrVerification)
	}
	rank := 0
	for rank < min(res.S.NumRows(), res.S.NumCols()) && !res.S.IsZeroAt(rank, rank) {
		rank++
	}
	if rank != res.Rank {
		return fmt.Errorf("smith.Verify: %d invariant factors for rank %d: %w", rank, res.Rank, ErrVerification)
	}
	return nil
}

// IsNormalForm reports whether s is in Smith normal form: 0 off the
// diagonal, with non-negative diagonal entries each dividing the next and
// all zeros at the end.
func IsNormalForm[T any](s *bigmatrix.BigMatrix[T]) bool {
	r := s.Ring()
	numRows, numCols := s.Dimensions()
	for i := 0; i < numRows; i++ {
		for j := 0; j < numCols; j++ {
			if i != j && !s.IsZeroAt(i, j) {
				return false
			}
		}
	}
	diagLen := min(numRows, numCols)
	for i := 0; i < diagLen; i++ {
		if r.Sign(s.At(i, i)) < 0 {
			return false
		}
		if i > 0 && !ring.Divides(r, s.At(i-1, i-1), s.At(i, i)) {
			return false
		}
	}
	return true
}
