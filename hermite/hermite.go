// Copyright (c) 2023 Colin McRae

// Package hermite computes the Hermite normal form of an integer matrix
// with full column rank by Domich's modular method.
//
// The Hermite normal form H of an m x n matrix A is the unique upper
// triangular matrix with positive pivots, entries above each pivot in
// {0,...,pivot-1} and rows n,...,m-1 equal to 0, such that H = U A for a
// unimodular U.
//
// All row combinations are done modulo a multiple of the determinant of the
// lattice spanned by the rows, so intermediate entries stay below det^2. The
// unimodular transform is then recovered exactly from the adjugate.
package hermite

import (
	"fmt"

	logging "github.com/ipfs/go-log/v2"

	"github.com/predrag3141/canonform/bareiss"
	"github.com/predrag3141/canonform/bigmatrix"
	"github.com/predrag3141/canonform/ring"
)

var log = logging.Logger("hermite")

// Result is the output of Compute. H = U A, U is unimodular, Basis lists
// the pivot columns of H and Det is the signed determinant of the basis
// minor found by elimination.
type Result[T any] struct {
	H     *bigmatrix.BigMatrix[T]
	U     *bigmatrix.BigMatrix[T]
	Basis []int
	Det   T
}

// Compute returns the Hermite normal form of a, which must have full column
// rank; otherwise an error wrapping ErrRankDeficient is returned. A matrix
// with no columns is already in Hermite normal form, with U the identity.
func Compute[T any](a *bigmatrix.BigMatrix[T], opts ...Option) (*Result[T], error) {
	o := gatherOptions(opts...)
	r := a.Ring()
	numRows, numCols := a.Dimensions()
	if numCols == 0 {
		return &Result[T]{H: a.Clone(), U: a.Identity(numRows), Basis: []int{}, Det: r.One()}, nil
	}

	perm, err := bareiss.Permute(a)
	if err != nil {
		return nil, fmt.Errorf("hermite.Compute: %w", err)
	}
	if perm.Rank < numCols {
		return nil, fmt.Errorf(
			"hermite.Compute: rank %d < %d columns: %w", perm.Rank, numCols, ErrRankDeficient,
		)
	}

	// The leading numCols rows of PA are independent, so padding PA with
	// the trailing identity columns makes it square and non-singular with
	// the same determinant up to sign.
	pa, err := new(bigmatrix.BigMatrix[T]).Mul(perm.P, a)
	if err != nil {
		return nil, fmt.Errorf("hermite.Compute: %w", err)
	}
	padded := pa.Clone()
	if err = padded.InsertCols(numCols, numRows-numCols); err != nil {
		return nil, fmt.Errorf("hermite.Compute: %w", err)
	}
	for i := numCols; i < numRows; i++ {
		padded.SetAt(i, i, r.One())
	}

	modulus := r.Mul(perm.Det, perm.Det)
	log.Debugf("Compute: %d x %d, det %s, modulus %s", numRows, numCols, r.String(perm.Det), r.String(modulus))
	h, err := modularForm(padded, modulus)
	if err != nil {
		return nil, fmt.Errorf("hermite.Compute: %w", err)
	}

	// U of the padded matrix is H times its inverse
	adj, det, err := bareiss.Adjoint(padded)
	if err != nil {
		return nil, fmt.Errorf("hermite.Compute: %w", err)
	}
	u, err := new(bigmatrix.BigMatrix[T]).Mul(h, adj)
	if err != nil {
		return nil, fmt.Errorf("hermite.Compute: %w", err)
	}
	for i := 0; i < numRows; i++ {
		if err = u.DivRow(i, det); err != nil {
			return nil, fmt.Errorf("hermite.Compute: recovering the transform: %w", err)
		}
	}
	if _, err = u.Mul(u, perm.P); err != nil {
		return nil, fmt.Errorf("hermite.Compute: %w", err)
	}
	if err = h.EraseCols(numCols, numRows-numCols); err != nil {
		return nil, fmt.Errorf("hermite.Compute: %w", err)
	}

	basis := make([]int, numCols)
	for j := range basis {
		basis[j] = j
	}
	res := &Result[T]{H: h, U: u, Basis: basis, Det: perm.Det}
	if o.verify {
		if err = Verify(a, res); err != nil {
			log.Warnf("Compute: %v", err)
			return nil, err
		}
	}
	return res, nil
}

// modularForm returns the Hermite normal form of the non-singular square
// matrix m, given a positive multiple of |det m| as the modulus.
//
// The first pass triangularizes modulo a modulus that shrinks by the gcd
// found on each diagonal, since the rows below pivot r only need to span
// the part of the lattice that is 0 in columns 0,...,r. The second pass
// normalizes each pivot to that gcd and reduces the entries above it.
func modularForm[T any](m *bigmatrix.BigMatrix[T], modulus T) (*bigmatrix.BigMatrix[T], error) {
	r := m.Ring()
	dim := m.NumRows()
	h := m.Clone()
	moduli := make([]T, dim)
	current := r.Abs(modulus)
	for k := 0; k < dim; k++ {
		for i := k; i < dim; i++ {
			if err := h.ModRow(i, current); err != nil {
				return nil, fmt.Errorf("modularForm: %w", err)
			}
		}
		for i := k + 1; i < dim; i++ {
			if h.IsZeroAt(i, k) {
				continue
			}
			q, err := ring.GCDExMod(r, h.At(k, k), h.At(i, k), current)
			if err != nil {
				return nil, fmt.Errorf("modularForm: %w", err)
			}
			h.CombineRows(k, i, q)
			if err = h.ModRow(k, current); err != nil {
				return nil, fmt.Errorf("modularForm: %w", err)
			}
			if err = h.ModRow(i, current); err != nil {
				return nil, fmt.Errorf("modularForm: %w", err)
			}
		}
		moduli[k] = current
		g := r.GCD(h.At(k, k), current)
		next, err := ring.DivExact(r, current, g)
		if err != nil {
			return nil, fmt.Errorf("modularForm: shrinking the modulus at row %d: %w", k, err)
		}
		current = next
	}

	for k := 0; k < dim; k++ {
		c, err := ring.UnitMod(r, h.At(k, k), moduli[k])
		if err != nil {
			return nil, fmt.Errorf("modularForm: %w", err)
		}
		h.MulRow(k, c)
		if err = h.ModRow(k, moduli[k]); err != nil {
			return nil, fmt.Errorf("modularForm: %w", err)
		}
		if h.IsZeroAt(k, k) {
			h.SetAt(k, k, moduli[k])
		}
		pivot := h.At(k, k)
		for j := 0; j < k; j++ {
			q, _, err := r.DivMod(h.At(j, k), pivot)
			if err != nil {
				return nil, fmt.Errorf("modularForm: %w", err)
			}
			h.AddMulRows(j, k, r.Neg(q))
		}
	}
	return h, nil
}

// Verify checks that res.H = res.U a exactly, that res.U is unimodular
// and that res.H is in Hermite normal form. A failure wraps ErrVerification.
func Verify[T any](a *bigmatrix.BigMatrix[T], res *Result[T]) error {
	r := a.Ring()
	ua, err := new(bigmatrix.BigMatrix[T]).Mul(res.U, a)
	if err != nil {
		return fmt.Errorf("hermite.Verify: %w", err)
	}
	if !ua.Equals(res.H) {
		return fmt.Errorf("hermite.Verify: H != U A: %w", ErrVerification)
	}
	det, err := bareiss.Det(res.U)
	if err != nil {
		return fmt.Errorf("hermite.Verify: %w", err)
	}
	if !ring.IsUnit(r, det) {
		return fmt.Errorf("hermite.Verify: det U = %s: %w", r.String(det), ErrVerification)
	}
	if !IsNormalForm(res.H) {
		return fmt.Errorf("hermite.Verify: H is not in Hermite normal form: %w", ErrVerification)
	}
	return nil
}

// IsNormalForm reports whether h is in Hermite normal form with full column
// rank: upper triangular with positive diagonal, entries above the diagonal
// reduced modulo the diagonal entry of their column, and 0 below row
// NumCols.
func IsNormalForm[T any](h *bigmatrix.BigMatrix[T]) bool {
	r := h.Ring()
	numRows, numCols := h.Dimensions()
	if numRows < numCols {
		return false
	}
	for j := 0; j < numCols; j++ {
		pivot := h.At(j, j)
		if r.Sign(pivot) <= 0 {
			return false
		}
		for i := 0; i < j; i++ {
			v := h.At(i, j)
			if r.Sign(v) < 0 || r.Cmp(v, pivot) >= 0 {
				return false
			}
		}
		if !h.ColIsZero(j, j+1) {
			return false
		}
	}
	return true
}
