// Copyright (c) 2023 Colin McRae

package bigmatrix

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/predrag3141/canonform/ring"
)

// maxExactFloat is the largest magnitude below which every integer is a float64
const maxExactFloat = 1 << 53

// NewFromDense creates a matrix from a gonum matrix whose entries are all
// integers of magnitude below 2^53. Any other entry (fractional, infinite,
// NaN or too large to be exact) gives an error wrapping ErrNotInteger.
func NewFromDense[T any](r ring.Ring[T], m mat.Matrix) (*BigMatrix[T], error) {
	numRows, numCols := m.Dims()
	retVal := newZero(r, numRows, numCols)
	for i := 0; i < numRows; i++ {
		for j := 0; j < numCols; j++ {
			v := m.At(i, j)
			if math.IsNaN(v) || math.IsInf(v, 0) || v != math.Trunc(v) || math.Abs(v) >= maxExactFloat {
				return nil, fmt.Errorf("BigMatrix.NewFromDense: entry (%d,%d) = %v: %w", i, j, v, ErrNotInteger)
			}
			retVal.values[i*numCols+j] = r.FromInt64(int64(v))
		}
	}
	return retVal, nil
}

// ToDense returns bm as a gonum matrix. Entries are rounded to the nearest
// float64, so the conversion is exact only for entries below 2^53 in
// magnitude. A matrix with no rows or no columns gives an empty mat.Dense.
func (bm *BigMatrix[T]) ToDense() *mat.Dense {
	if bm.numRows == 0 || bm.numCols == 0 {
		return &mat.Dense{}
	}
	data := make([]float64, len(bm.values))
	for i, v := range bm.values {
		data[i] = bm.r.Float64(v)
	}
	return mat.NewDense(bm.numRows, bm.numCols, data)
}
