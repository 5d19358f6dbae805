// Copyright (c) 2023 Colin McRae

package bigmatrix

import (
	"fmt"

	"github.com/predrag3141/canonform/ring"
)

// The elementary operations below trust their indices. They are the
// building blocks of the elimination algorithms, which only ever pass
// indices inside the matrix.

// SwapRows exchanges rows i and j
func (bm *BigMatrix[T]) SwapRows(i, j int) {
	if i == j {
		return
	}
	for k := 0; k < bm.numCols; k++ {
		bm.values[i*bm.numCols+k], bm.values[j*bm.numCols+k] = bm.values[j*bm.numCols+k], bm.values[i*bm.numCols+k]
	}
}

// SwapCols exchanges columns i and j
func (bm *BigMatrix[T]) SwapCols(i, j int) {
	if i == j {
		return
	}
	for k := 0; k < bm.numRows; k++ {
		bm.values[k*bm.numCols+i], bm.values[k*bm.numCols+j] = bm.values[k*bm.numCols+j], bm.values[k*bm.numCols+i]
	}
}

// NegateRow replaces row i with its negative
func (bm *BigMatrix[T]) NegateRow(i int) {
	for k := 0; k < bm.numCols; k++ {
		bm.values[i*bm.numCols+k] = bm.r.Neg(bm.values[i*bm.numCols+k])
	}
}

// NegateCol replaces column j with its negative
func (bm *BigMatrix[T]) NegateCol(j int) {
	for k := 0; k < bm.numRows; k++ {
		bm.values[k*bm.numCols+j] = bm.r.Neg(bm.values[k*bm.numCols+j])
	}
}

// MulRow multiplies row i by c
func (bm *BigMatrix[T]) MulRow(i int, c T) {
	for k := 0; k < bm.numCols; k++ {
		bm.values[i*bm.numCols+k] = bm.r.Mul(c, bm.values[i*bm.numCols+k])
	}
}

// MulCol multiplies column j by c
func (bm *BigMatrix[T]) MulCol(j int, c T) {
	for k := 0; k < bm.numRows; k++ {
		bm.values[k*bm.numCols+j] = bm.r.Mul(c, bm.values[k*bm.numCols+j])
	}
}

// AddMulRows performs row dest <- row dest + c * row src
func (bm *BigMatrix[T]) AddMulRows(dest, src int, c T) {
	if bm.r.Sign(c) == 0 {
		return
	}
	for k := 0; k < bm.numCols; k++ {
		s := bm.values[src*bm.numCols+k]
		if bm.r.Sign(s) == 0 {
			continue
		}
		bm.values[dest*bm.numCols+k] = bm.r.Add(bm.values[dest*bm.numCols+k], bm.r.Mul(c, s))
	}
}

// AddMulCols performs column dest <- column dest + c * column src
func (bm *BigMatrix[T]) AddMulCols(dest, src int, c T) {
	if bm.r.Sign(c) == 0 {
		return
	}
	for k := 0; k < bm.numRows; k++ {
		s := bm.values[k*bm.numCols+src]
		if bm.r.Sign(s) == 0 {
			continue
		}
		bm.values[k*bm.numCols+dest] = bm.r.Add(bm.values[k*bm.numCols+dest], bm.r.Mul(c, s))
	}
}

// CombineRows applies q to rows i and j:
// row i <- q.U * row i + q.V * row j, row j <- q.W * row i + q.Z * row j
func (bm *BigMatrix[T]) CombineRows(i, j int, q ring.Quadruple[T]) {
	r := bm.r
	for k := 0; k < bm.numCols; k++ {
		x, y := bm.values[i*bm.numCols+k], bm.values[j*bm.numCols+k]
		bm.values[i*bm.numCols+k] = r.Add(r.Mul(q.U, x), r.Mul(q.V, y))
		bm.values[j*bm.numCols+k] = r.Add(r.Mul(q.W, x), r.Mul(q.Z, y))
	}
}

// CombineCols applies q to columns i and j:
// col i <- q.U * col i + q.V * col j, col j <- q.W * col i + q.Z * col j
func (bm *BigMatrix[T]) CombineCols(i, j int, q ring.Quadruple[T]) {
	r := bm.r
	for k := 0; k < bm.numRows; k++ {
		x, y := bm.values[k*bm.numCols+i], bm.values[k*bm.numCols+j]
		bm.values[k*bm.numCols+i] = r.Add(r.Mul(q.U, x), r.Mul(q.V, y))
		bm.values[k*bm.numCols+j] = r.Add(r.Mul(q.W, x), r.Mul(q.Z, y))
	}
}

// DivRow divides row i by d. Every entry must be divisible by d; otherwise
// an error wrapping ring.ErrInexactDivision is returned and the row is
// left unchanged.
func (bm *BigMatrix[T]) DivRow(i int, d T) error {
	quotients := make([]T, bm.numCols)
	for k := 0; k < bm.numCols; k++ {
		q, err := ring.DivExact(bm.r, bm.values[i*bm.numCols+k], d)
		if err != nil {
			return fmt.Errorf("BigMatrix.DivRow: row %d, column %d: %w", i, k, err)
		}
		quotients[k] = q
	}
	copy(bm.values[i*bm.numCols:(i+1)*bm.numCols], quotients)
	return nil
}

// DivCol divides column j by d, with the same contract as DivRow.
func (bm *BigMatrix[T]) DivCol(j int, d T) error {
	quotients := make([]T, bm.numRows)
	for k := 0; k < bm.numRows; k++ {
		q, err := ring.DivExact(bm.r, bm.values[k*bm.numCols+j], d)
		if err != nil {
			return fmt.Errorf("BigMatrix.DivCol: row %d, column %d: %w", k, j, err)
		}
		quotients[k] = q
	}
	for k, q := range quotients {
		bm.values[k*bm.numCols+j] = q
	}
	return nil
}

// ModRow reduces every entry of row i into {0,...,|n|-1}
func (bm *BigMatrix[T]) ModRow(i int, n T) error {
	for k := 0; k < bm.numCols; k++ {
		m, err := ring.Mod(bm.r, bm.values[i*bm.numCols+k], n)
		if err != nil {
			return fmt.Errorf("BigMatrix.ModRow: row %d: %w", i, err)
		}
		bm.values[i*bm.numCols+k] = m
	}
	return nil
}

// RowIsZero reports whether every entry of row i in columns {from,...} is 0
func (bm *BigMatrix[T]) RowIsZero(i, from int) bool {
	for k := from; k < bm.numCols; k++ {
		if bm.r.Sign(bm.values[i*bm.numCols+k]) != 0 {
			return false
		}
	}
	return true
}

// ColIsZero reports whether every entry of column j in rows {from,...} is 0
func (bm *BigMatrix[T]) ColIsZero(j, from int) bool {
	for k := from; k < bm.numRows; k++ {
		if bm.r.Sign(bm.values[k*bm.numCols+j]) != 0 {
			return false
		}
	}
	return true
}
