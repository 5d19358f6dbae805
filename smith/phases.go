// Copyright (c) 2023 Colin McRae

package smith

import (
	"fmt"

	"github.com/predrag3141/canonform/bigmatrix"
	"github.com/predrag3141/canonform/ring"
)

// reducer holds the matrix being diagonalized together with the row and
// column transforms of the current phase. Every row operation on h is
// repeated on e and every column operation on f, so that at the end of a
// phase h_after = e * h_before * f.
type reducer[T any] struct {
	r    ring.Ring[T]
	h    *bigmatrix.BigMatrix[T]
	e    *bigmatrix.BigMatrix[T]
	f    *bigmatrix.BigMatrix[T]
	rank int

	// Transforms of the finished phases, in the order they were applied
	rowTransforms []*bigmatrix.BigMatrix[T]
	colTransforms []*bigmatrix.BigMatrix[T]
}

func newReducer[T any](h *bigmatrix.BigMatrix[T], rank int) *reducer[T] {
	return &reducer[T]{r: h.Ring(), h: h, rank: rank}
}

// phase runs run with fresh identity transforms and records them when it
// succeeds.
func (rd *reducer[T]) phase(name string, run func() error) error {
	rd.e = rd.h.Identity(rd.h.NumRows())
	rd.f = rd.h.Identity(rd.h.NumCols())
	if err := run(); err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	rd.rowTransforms = append(rd.rowTransforms, rd.e)
	rd.colTransforms = append(rd.colTransforms, rd.f)
	log.Debugf("%s: done", name)
	return nil
}

// transforms composes the recorded phases into E and F with
// h_final = E h_initial F.
func (rd *reducer[T]) transforms() (*bigmatrix.BigMatrix[T], *bigmatrix.BigMatrix[T], error) {
	e := rd.h.Identity(rd.h.NumRows())
	f := rd.h.Identity(rd.h.NumCols())
	for k := range rd.rowTransforms {
		if _, err := e.Mul(rd.rowTransforms[k], e); err != nil {
			return nil, nil, err
		}
		if _, err := f.Mul(f, rd.colTransforms[k]); err != nil {
			return nil, nil, err
		}
	}
	return e, f, nil
}

func (rd *reducer[T]) addRows(dest, src int, c T) {
	rd.h.AddMulRows(dest, src, c)
	rd.e.AddMulRows(dest, src, c)
}

func (rd *reducer[T]) addCols(dest, src int, c T) {
	rd.h.AddMulCols(dest, src, c)
	rd.f.AddMulCols(dest, src, c)
}

func (rd *reducer[T]) combineRows(i, j int, q ring.Quadruple[T]) {
	rd.h.CombineRows(i, j, q)
	rd.e.CombineRows(i, j, q)
}

func (rd *reducer[T]) combineCols(i, j int, q ring.Quadruple[T]) {
	rd.h.CombineCols(i, j, q)
	rd.f.CombineCols(i, j, q)
}

func (rd *reducer[T]) negateRow(i int) {
	rd.h.NegateRow(i)
	rd.e.NegateRow(i)
}

// quotient returns floor(x / d) for d > 0
func (rd *reducer[T]) quotient(x, d T) (T, error) {
	q, _, err := rd.r.DivMod(x, d)
	return q, err
}

// reduceColumns reduces every entry right of the diagonal of the upper
// triangular leading rank x rank block modulo the diagonal entry of its
// row. Rows are processed bottom up because reducing with column t changes
// the rows above t.
func (rd *reducer[T]) reduceColumns() error {
	numCols := rd.h.NumCols()
	for t := rd.rank - 1; t >= 0; t-- {
		d := rd.h.At(t, t)
		for j := t + 1; j < numCols; j++ {
			q, err := rd.quotient(rd.h.At(t, j), d)
			if err != nil {
				return fmt.Errorf("reducing (%d,%d): %w", t, j, err)
			}
			rd.addCols(j, t, rd.r.Neg(q))
		}
	}
	return nil
}

// unitCorner returns the number of leading diagonal entries equal to 1.
// After reduceColumns the rows and columns of these entries are 0 off the
// diagonal, so the corner is already in Smith form.
func (rd *reducer[T]) unitCorner() int {
	corner := 0
	for corner < rd.rank && ring.IsOne(rd.r, rd.h.At(corner, corner)) {
		corner++
	}
	return corner
}

// diagonalizeBlock makes the square block of rows and columns
// {lo,...,hi} diagonal with positive entries each dividing the next. Only
// rows and columns of the block are combined; entries of those rows and
// columns outside the block are carried along but not cleared.
func (rd *reducer[T]) diagonalizeBlock(lo, hi int) error {
	h := rd.h
	for t := lo; t <= hi; t++ {
		for {
			for i := t + 1; i <= hi; i++ {
				if !h.IsZeroAt(i, t) {
					rd.combineRows(t, i, ring.GCDEx(rd.r, h.At(t, t), h.At(i, t)))
				}
			}
			for j := t + 1; j <= hi; j++ {
				if !h.IsZeroAt(t, j) {
					rd.combineCols(t, j, ring.GCDEx(rd.r, h.At(t, t), h.At(t, j)))
				}
			}
			if !rd.blockColIsZero(t, hi) {
				continue
			}
			if h.IsZeroAt(t, t) {
				return fmt.Errorf("diagonal entry %d of block [%d,%d] is 0: %w", t, lo, hi, ErrInconsistent)
			}
			i, found := rd.nonMultipleRow(t, hi)
			if !found {
				break
			}

			// Bringing in a row with an entry the pivot does not divide
			// strictly decreases the pivot on the next pass
			rd.addRows(t, i, rd.r.One())
		}
		if rd.r.Sign(h.At(t, t)) < 0 {
			rd.negateRow(t)
		}
	}
	return nil
}

// blockColIsZero reports whether column t is 0 in rows {t+1,...,hi}
func (rd *reducer[T]) blockColIsZero(t, hi int) bool {
	for i := t + 1; i <= hi; i++ {
		if !rd.h.IsZeroAt(i, t) {
			return false
		}
	}
	return true
}

// nonMultipleRow returns a row i in {t+1,...,hi} with an entry in columns
// {t+1,...,hi} that is not a multiple of the pivot at (t,t).
func (rd *reducer[T]) nonMultipleRow(t, hi int) (int, bool) {
	d := rd.h.At(t, t)
	for i := t + 1; i <= hi; i++ {
		for j := t + 1; j <= hi; j++ {
			if !ring.Divides(rd.r, d, rd.h.At(i, j)) {
				return i, true
			}
		}
	}
	return 0, false
}

// diagonalizeRows processes the upper triangular leading block one column
// at a time. Before column k is added to the diagonal block {corner,...,k-1},
// a sweep of stabilizing row additions from the bottom up moves the gcd of
// column k towards row corner. Each addition puts a multiple of d_i above
// the diagonal, which the next column of the chain cancels exactly. The
// block is then diagonalized and the columns right of it are reduced
// modulo its diagonal.
func (rd *reducer[T]) diagonalizeRows(corner int, stabilize bool) error {
	r, h := rd.r, rd.h
	for k := corner + 1; k < rd.rank; k++ {
		if stabilize {
			for i := k; i > corner; i-- {
				c := ring.Stab(r, h.At(i-1, k), h.At(i, k), h.At(i-1, i-1))
				if ring.IsZero(r, c) {
					continue
				}
				rd.addRows(i-1, i, c)
				if i < k {
					alpha, err := ring.DivExact(r, h.At(i-1, i), h.At(i-1, i-1))
					if err != nil {
						return fmt.Errorf("restoring (%d,%d): %w", i-1, i, err)
					}
					rd.addCols(i, i-1, r.Neg(alpha))
				}
			}
		}
		if err := rd.diagonalizeBlock(corner, k); err != nil {
			return err
		}
		for t := corner; t <= k; t++ {
			d := h.At(t, t)
			for j := k + 1; j < h.NumCols(); j++ {
				q, err := rd.quotient(h.At(t, j), d)
				if err != nil {
					return err
				}
				rd.addCols(j, t, r.Neg(q))
			}
		}
	}
	return nil
}

// clearTrailingColumns folds the columns right of the rank into the
// diagonal with column gcd combinations. Each combination leaves residues
// below the diagonal in column i, which are reduced modulo the diagonal
// entries of their rows. The result is lower triangular in the leading
// rank columns and 0 elsewhere.
func (rd *reducer[T]) clearTrailingColumns(corner int) error {
	r, h := rd.r, rd.h
	numCols := h.NumCols()
	for i := corner; i < rd.rank; i++ {
		for j := rd.rank; j < numCols; j++ {
			if h.IsZeroAt(i, j) {
				continue
			}
			rd.combineCols(i, j, ring.GCDEx(r, h.At(i, i), h.At(i, j)))
			for ii := i + 1; ii < rd.rank; ii++ {
				d := h.At(ii, ii)
				for _, col := range []int{i, j} {
					q, err := rd.quotient(h.At(ii, col), d)
					if err != nil {
						return err
					}
					rd.addCols(col, ii, r.Neg(q))
				}
			}
		}
	}
	return nil
}

// diagonalizeCols mirrors diagonalizeRows on the lower triangular block
// left by clearTrailingColumns: the stabilizing sweep runs over columns,
// restoring with row operations, and the residues below the diagonal block
// are reduced with row operations.
func (rd *reducer[T]) diagonalizeCols(corner int, stabilize bool) error {
	r, h := rd.r, rd.h
	for k := corner + 1; k < rd.rank; k++ {
		if stabilize {
			for j := k; j > corner; j-- {
				c := ring.Stab(r, h.At(k, j-1), h.At(k, j), h.At(j-1, j-1))
				if ring.IsZero(r, c) {
					continue
				}
				rd.addCols(j-1, j, c)
				if j < k {
					alpha, err := ring.DivExact(r, h.At(j, j-1), h.At(j-1, j-1))
					if err != nil {
						return fmt.Errorf("restoring (%d,%d): %w", j, j-1, err)
					}
					rd.addRows(j, j-1, r.Neg(alpha))
				}
			}
		}
		if err := rd.diagonalizeBlock(corner, k); err != nil {
			return err
		}
		for t := corner; t <= k; t++ {
			d := h.At(t, t)
			for i := k + 1; i < rd.rank; i++ {
				q, err := rd.quotient(h.At(i, t), d)
				if err != nil {
					return err
				}
				rd.addRows(i, t, r.Neg(q))
			}
		}
	}
	return nil
}
