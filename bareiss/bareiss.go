// Copyright (c) 2023 Colin McRae

// Package bareiss implements fraction-free Gaussian elimination of integer
// matrices. Every intermediate entry is a minor of the input, so divisions
// are exact and coefficients grow no faster than the determinant.
package bareiss

import (
	"errors"
	"fmt"

	logging "github.com/ipfs/go-log/v2"

	"github.com/predrag3141/canonform/bigmatrix"
	"github.com/predrag3141/canonform/ring"
)

var log = logging.Logger("bareiss")

// ErrSingular is returned by Adjoint for a singular matrix.
var ErrSingular = errors.New("bareiss: matrix is singular")

// RowsResult is the output of Rows.
//
// B = Q A. Row k < len(Basis) of B holds |Det| in column Basis[k] and 0 in
// the other basis columns; rows from len(Basis) on are 0. For a
// non-singular square A this makes B = |Det| I and Q = |Det| A^-1.
type RowsResult[T any] struct {
	B     *bigmatrix.BigMatrix[T]
	Q     *bigmatrix.BigMatrix[T]
	Basis []int
	Det   T
}

// PermuteResult is the output of Permute. P is a signed permutation of
// the rows and Q a permutation of the columns such that the leading
// Rank x Rank minor of P A Q is non-singular with determinant Det.
type PermuteResult[T any] struct {
	P    *bigmatrix.BigMatrix[T]
	Q    *bigmatrix.BigMatrix[T]
	Rank int
	Det  T
}

// Rows eliminates a by fraction-free Gauss-Jordan row operations.
//
// Columns are scanned left to right. A column with no non-zero entry at or
// below the current row is skipped; otherwise the entry of largest absolute
// value becomes the pivot, is moved into the current row and made positive,
// and every other row r is replaced by (pivot * r - alpha * pivotRow) / d,
// where alpha is the entry of r in the pivot column and d is the previous
// pivot. The same operations are applied to Q, which starts as the identity.
//
// Running out of pivots is not an error; the basis is then shorter than
// min(m, n) and Det is the signed determinant of the basis minor.
func Rows[T any](a *bigmatrix.BigMatrix[T]) (*RowsResult[T], error) {
	r := a.Ring()
	numRows, numCols := a.Dimensions()
	b := a.Clone()
	q := a.Identity(numRows)
	basis := []int{}
	sign := r.One()
	d := r.One()
	i := 0
	for j := 0; j < numCols && i < numRows; j++ {
		pivotRow, found := maxAbsInColumn(b, j, i)
		if !found {
			log.Debugf("Rows: column %d has no pivot at or below row %d", j, i)
			continue
		}
		if pivotRow != i {
			b.SwapRows(i, pivotRow)
			q.SwapRows(i, pivotRow)
			sign = r.Neg(sign)
		}
		if r.Sign(b.At(i, j)) < 0 {
			b.NegateRow(i)
			q.NegateRow(i)
			sign = r.Neg(sign)
		}
		pivot := b.At(i, j)
		log.Debugf("Rows: pivot %s at (%d,%d)", r.String(pivot), i, j)
		for ii := 0; ii < numRows; ii++ {
			if ii == i {
				continue
			}
			alpha := b.At(ii, j)
			if err := eliminate(b, ii, i, pivot, alpha, d); err != nil {
				return nil, fmt.Errorf("Rows: eliminating row %d of B with pivot (%d,%d): %w", ii, i, j, err)
			}
			if err := eliminate(q, ii, i, pivot, alpha, d); err != nil {
				return nil, fmt.Errorf("Rows: eliminating row %d of Q with pivot (%d,%d): %w", ii, i, j, err)
			}
		}
		basis = append(basis, j)
		d = pivot
		i++
	}
	return &RowsResult[T]{B: b, Q: q, Basis: basis, Det: r.Mul(sign, d)}, nil
}

// Permute finds a non-singular leading minor of a by moving the largest
// remaining entry to the diagonal at each step.
//
// At step k, columns k, k+1, ... are searched in order for a non-zero entry
// in rows k and below; the search stops at the first such column, and its
// entry of largest absolute value is the pivot. The pivot is brought to
// (k,k) by a row swap (recorded in P) and a column swap (recorded in Q),
// made positive by negating its row (recorded in P), and entries below it
// are eliminated with the fraction-free step. Only P and Q are returned;
// the eliminated matrix is discarded.
func Permute[T any](a *bigmatrix.BigMatrix[T]) (*PermuteResult[T], error) {
	r := a.Ring()
	numRows, numCols := a.Dimensions()
	b := a.Clone()
	p := a.Identity(numRows)
	q := a.Identity(numCols)
	sign := r.One()
	d := r.One()
	rank := 0
	for rank < numRows && rank < numCols {
		pivotRow, pivotCol, found := findPivot(b, rank)
		if !found {
			log.Debugf("Permute: no non-zero entry left after rank %d", rank)
			break
		}
		if pivotRow != rank {
			b.SwapRows(rank, pivotRow)
			p.SwapRows(rank, pivotRow)
			sign = r.Neg(sign)
		}
		if pivotCol != rank {
			b.SwapCols(rank, pivotCol)
			q.SwapCols(rank, pivotCol)
			sign = r.Neg(sign)
		}
		if r.Sign(b.At(rank, rank)) < 0 {
			b.NegateRow(rank)
			p.NegateRow(rank)
			sign = r.Neg(sign)
		}
		pivot := b.At(rank, rank)
		for ii := rank + 1; ii < numRows; ii++ {
			if err := eliminate(b, ii, rank, pivot, b.At(ii, rank), d); err != nil {
				return nil, fmt.Errorf("Permute: eliminating row %d with pivot %d: %w", ii, rank, err)
			}
		}
		d = pivot
		rank++
	}
	return &PermuteResult[T]{P: p, Q: q, Rank: rank, Det: r.Mul(sign, d)}, nil
}

// Det returns the determinant of a square matrix.
func Det[T any](a *bigmatrix.BigMatrix[T]) (T, error) {
	r := a.Ring()
	if !a.IsSquare() {
		return r.Zero(), fmt.Errorf("Det: %d x %d: %w", a.NumRows(), a.NumCols(), bigmatrix.ErrNonSquare)
	}
	res, err := Permute(a)
	if err != nil {
		return r.Zero(), err
	}
	if res.Rank < a.NumRows() {
		return r.Zero(), nil
	}
	return res.Det, nil
}

// Rank returns the rank of a.
func Rank[T any](a *bigmatrix.BigMatrix[T]) (int, error) {
	res, err := Permute(a)
	if err != nil {
		return 0, err
	}
	return res.Rank, nil
}

// Adjoint returns the adjugate of a non-singular square matrix a together
// with det(a), so that adj * a = a * adj = det(a) * I. A singular matrix
// gives an error wrapping ErrSingular.
func Adjoint[T any](a *bigmatrix.BigMatrix[T]) (*bigmatrix.BigMatrix[T], T, error) {
	r := a.Ring()
	if !a.IsSquare() {
		return nil, r.Zero(), fmt.Errorf("Adjoint: %d x %d: %w", a.NumRows(), a.NumCols(), bigmatrix.ErrNonSquare)
	}
	res, err := Rows(a)
	if err != nil {
		return nil, r.Zero(), fmt.Errorf("Adjoint: %w", err)
	}
	if len(res.Basis) < a.NumRows() {
		return nil, r.Zero(), fmt.Errorf("Adjoint: rank %d < %d: %w", len(res.Basis), a.NumRows(), ErrSingular)
	}

	// Q a = |det| I, so adj = sign(det) Q
	adj := res.Q
	if r.Sign(res.Det) < 0 {
		for i := 0; i < adj.NumRows(); i++ {
			adj.NegateRow(i)
		}
	}
	return adj, res.Det, nil
}

// eliminate replaces row target of m with (pivot * target - alpha * source) / d
func eliminate[T any](m *bigmatrix.BigMatrix[T], target, source int, pivot, alpha, d T) error {
	r := m.Ring()
	for k := 0; k < m.NumCols(); k++ {
		v := r.Sub(r.Mul(pivot, m.At(target, k)), r.Mul(alpha, m.At(source, k)))
		if !ring.IsOne(r, d) {
			var err error
			if v, err = ring.DivExact(r, v, d); err != nil {
				return fmt.Errorf("column %d: %w", k, err)
			}
		}
		m.SetAt(target, k, v)
	}
	return nil
}

// maxAbsInColumn returns the row at or below from holding the entry of
// column j with the largest absolute value, or false if all are 0.
func maxAbsInColumn[T any](m *bigmatrix.BigMatrix[T], j, from int) (int, bool) {
	r := m.Ring()
	best := -1
	var bestAbs T
	for i := from; i < m.NumRows(); i++ {
		if m.IsZeroAt(i, j) {
			continue
		}
		v := r.Abs(m.At(i, j))
		if best < 0 || r.Cmp(v, bestAbs) > 0 {
			best, bestAbs = i, v
		}
	}
	return best, best >= 0
}

// findPivot searches columns k, k+1, ... for the first one with a non-zero
// entry in rows k and below, and returns the position of its largest entry.
func findPivot[T any](m *bigmatrix.BigMatrix[T], k int) (int, int, bool) {
	for j := k; j < m.NumCols(); j++ {
		if i, found := maxAbsInColumn(m, j, k); found {
			return i, j, true
		}
	}
	return 0, 0, false
}
