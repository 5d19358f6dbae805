// Copyright (c) 2023 Colin McRae

// Package bigmatrix represents a dense matrix of exact integers
package bigmatrix

import (
	"fmt"
	"strings"

	"github.com/predrag3141/canonform/ring"
)

// BigMatrix is a dense, row-major matrix over a ring.Ring. Values are
// immutable, so copies share them; only the slice holding them is private
// to each matrix. Matrices with zero rows or zero columns keep their
// dimensions (a 0 x 3 matrix is not a 0 x 0 matrix).
type BigMatrix[T any] struct {
	r       ring.Ring[T]
	values  []T
	numRows int
	numCols int
}

// New returns a numRows x numCols matrix with 0s in each value. If numRows
// or numCols is negative, an error is returned.
func New[T any](r ring.Ring[T], numRows, numCols int) (*BigMatrix[T], error) {
	if numRows < 0 || numCols < 0 {
		return nil, fmt.Errorf(
			"BigMatrix.New: illegal number of rows %d or columns %d: %w", numRows, numCols, ErrBadShape,
		)
	}
	return newZero(r, numRows, numCols), nil
}

func newZero[T any](r ring.Ring[T], numRows, numCols int) *BigMatrix[T] {
	retVal := &BigMatrix[T]{
		r:       r,
		values:  make([]T, numRows*numCols),
		numRows: numRows,
		numCols: numCols,
	}
	zero := r.Zero()
	for i := range retVal.values {
		retVal.values[i] = zero
	}
	return retVal
}

// NewFromInt64Array creates a matrix from input, in row-major order, with
// dimensions numRows x numCols. If the dimensions are negative or do not
// match the length of the input, an error is returned.
func NewFromInt64Array[T any](r ring.Ring[T], input []int64, numRows, numCols int) (*BigMatrix[T], error) {
	if numRows < 0 || numCols < 0 || len(input) != numRows*numCols {
		return nil, fmt.Errorf(
			"BigMatrix.NewFromInt64Array: %d values do not fill %d x %d: %w",
			len(input), numRows, numCols, ErrBadShape,
		)
	}
	retVal := &BigMatrix[T]{
		r:       r,
		values:  make([]T, numRows*numCols),
		numRows: numRows,
		numCols: numCols,
	}
	for index, value := range input {
		retVal.values[index] = r.FromInt64(value)
	}
	return retVal, nil
}

// NewFromDecimalStringArray creates a matrix from decimal integers in input,
// in row-major order, with dimensions numRows x numCols
func NewFromDecimalStringArray[T any](r ring.Ring[T], input []string, numRows, numCols int) (*BigMatrix[T], error) {
	if numRows < 0 || numCols < 0 || len(input) != numRows*numCols {
		return nil, fmt.Errorf(
			"BigMatrix.NewFromDecimalStringArray: %d values do not fill %d x %d: %w",
			len(input), numRows, numCols, ErrBadShape,
		)
	}
	retVal := &BigMatrix[T]{
		r:       r,
		values:  make([]T, numRows*numCols),
		numRows: numRows,
		numCols: numCols,
	}
	for index, value := range input {
		x, err := r.FromString(value)
		if err != nil {
			return nil, fmt.Errorf(
				"BigMatrix.NewFromDecimalStringArray: could not parse %q: %w", value, err,
			)
		}
		retVal.values[index] = x
	}
	return retVal, nil
}

// NewIdentity returns a dim x dim identity matrix. If dim < 0, an error is
// returned. dim == 0 gives the empty 0 x 0 matrix.
func NewIdentity[T any](r ring.Ring[T], dim int) (*BigMatrix[T], error) {
	if dim < 0 {
		return nil, fmt.Errorf("BigMatrix.NewIdentity: dimension %d < 0: %w", dim, ErrBadShape)
	}
	retVal := newZero(r, dim, dim)
	one := r.One()
	for i := 0; i < dim; i++ {
		retVal.values[i*dim+i] = one
	}
	return retVal, nil
}

// Identity returns the dim x dim identity matrix over the ring of bm.
// dim must be non-negative.
func (bm *BigMatrix[T]) Identity(dim int) *BigMatrix[T] {
	retVal, err := NewIdentity(bm.r, dim)
	if err != nil {
		panic(err)
	}
	return retVal
}

// Ring returns the ring the entries of bm belong to
func (bm *BigMatrix[T]) Ring() ring.Ring[T] {
	return bm.r
}

// Dimensions returns the number of rows and columns in bm, in that order.
func (bm *BigMatrix[T]) Dimensions() (int, int) {
	return bm.numRows, bm.numCols
}

// NumRows returns the number of rows in bm
func (bm *BigMatrix[T]) NumRows() int {
	return bm.numRows
}

// NumCols returns the number of columns in bm
func (bm *BigMatrix[T]) NumCols() int {
	return bm.numCols
}

// IsSquare reports whether bm has as many rows as columns
func (bm *BigMatrix[T]) IsSquare() bool {
	return bm.numRows == bm.numCols
}

// Get returns the value in row i, column j of bm.
func (bm *BigMatrix[T]) Get(i int, j int) (T, error) {
	if i < 0 || bm.numRows <= i {
		var zero T
		return zero, fmt.Errorf(
			"BigMatrix.Get: index i = %d outside range {0, ... %d}: %w", i, bm.numRows-1, ErrOutOfRange,
		)
	}
	if j < 0 || bm.numCols <= j {
		var zero T
		return zero, fmt.Errorf(
			"BigMatrix.Get: index j = %d outside range {0, ... %d}: %w", j, bm.numCols-1, ErrOutOfRange,
		)
	}
	return bm.values[i*bm.numCols+j], nil
}

// Set sets the value in row i, column j to x.
func (bm *BigMatrix[T]) Set(i int, j int, x T) error {
	if i < 0 || bm.numRows <= i {
		return fmt.Errorf(
			"BigMatrix.Set: index i = %d outside range {0, ... %d}: %w", i, bm.numRows-1, ErrOutOfRange,
		)
	}
	if j < 0 || bm.numCols <= j {
		return fmt.Errorf(
			"BigMatrix.Set: index j = %d outside range {0, ... %d}: %w", j, bm.numCols-1, ErrOutOfRange,
		)
	}
	bm.values[i*bm.numCols+j] = x
	return nil
}

// At is Get for indices the caller has already validated.
func (bm *BigMatrix[T]) At(i, j int) T {
	return bm.values[i*bm.numCols+j]
}

// SetAt is Set for indices the caller has already validated.
func (bm *BigMatrix[T]) SetAt(i, j int, x T) {
	bm.values[i*bm.numCols+j] = x
}

// IsZeroAt reports whether the entry in row i, column j is 0
func (bm *BigMatrix[T]) IsZeroAt(i, j int) bool {
	return bm.r.Sign(bm.values[i*bm.numCols+j]) == 0
}

// Copy copies x to bm and returns bm.
func (bm *BigMatrix[T]) Copy(x *BigMatrix[T]) *BigMatrix[T] {
	bm.r = x.r
	bm.numRows = x.numRows
	bm.numCols = x.numCols
	bm.values = make([]T, len(x.values))
	copy(bm.values, x.values)
	return bm
}

// Clone returns a copy of bm
func (bm *BigMatrix[T]) Clone() *BigMatrix[T] {
	return new(BigMatrix[T]).Copy(bm)
}

// Add replaces the contents of bm with x+y and returns bm.
func (bm *BigMatrix[T]) Add(x *BigMatrix[T], y *BigMatrix[T]) (*BigMatrix[T], error) {
	return bm.addOrSub(x, y, "Add")
}

// Sub replaces the contents of bm with x-y and returns bm.
func (bm *BigMatrix[T]) Sub(x *BigMatrix[T], y *BigMatrix[T]) (*BigMatrix[T], error) {
	return bm.addOrSub(x, y, "Sub")
}

func (bm *BigMatrix[T]) addOrSub(x *BigMatrix[T], y *BigMatrix[T], whichFunc string) (*BigMatrix[T], error) {
	if x.numRows != y.numRows || x.numCols != y.numCols {
		return nil, fmt.Errorf(
			"BigMatrix.%s: operands x (%d x %d) and y (%d x %d): %w",
			whichFunc, x.numRows, x.numCols, y.numRows, y.numCols, ErrDimensionMismatch,
		)
	}
	r := x.r
	values := make([]T, len(x.values))
	for i := range values {
		if whichFunc == "Add" {
			values[i] = r.Add(x.values[i], y.values[i])
		} else {
			values[i] = r.Sub(x.values[i], y.values[i])
		}
	}
	bm.r, bm.numRows, bm.numCols, bm.values = r, x.numRows, x.numCols, values
	return bm, nil
}

// DotProduct returns sum(x[row][k] y[k][column]) over k in {start,...,end-1}.
// DotProduct trusts its inputs.
func DotProduct[T any](x *BigMatrix[T], y *BigMatrix[T], row, column, start, end int) T {
	r := x.r
	retVal := r.Zero()
	for k := start; k < end; k++ {
		xk := x.values[row*x.numCols+k]
		if r.Sign(xk) == 0 {
			continue
		}
		retVal = r.Add(retVal, r.Mul(xk, y.values[k*y.numCols+column]))
	}
	return retVal
}

// Mul replaces the contents of bm with the matrix xy and returns bm. If the
// number of columns of x differs from the number of rows of y, an error is
// returned. Inner dimension 0 gives a zero matrix.
func (bm *BigMatrix[T]) Mul(x *BigMatrix[T], y *BigMatrix[T]) (*BigMatrix[T], error) {
	if x.numCols != y.numRows {
		return nil, fmt.Errorf(
			"BigMatrix.Mul: mismatched dimensions for operands x (%d x %d) and y (%d x %d): %w",
			x.numRows, x.numCols, y.numRows, y.numCols, ErrDimensionMismatch,
		)
	}
	retVal := newZero(x.r, x.numRows, y.numCols)
	for i := 0; i < x.numRows; i++ {
		for j := 0; j < y.numCols; j++ {
			retVal.values[i*retVal.numCols+j] = DotProduct(x, y, i, j, 0, x.numCols)
		}
	}
	bm.Copy(retVal)
	return bm, nil
}

// Product returns the product of the given matrices, left to right.
func Product[T any](factors ...*BigMatrix[T]) (*BigMatrix[T], error) {
	if len(factors) == 0 {
		return nil, fmt.Errorf("BigMatrix.Product: no factors: %w", ErrBadShape)
	}
	retVal := factors[0].Clone()
	for i := 1; i < len(factors); i++ {
		if _, err := retVal.Mul(retVal, factors[i]); err != nil {
			return nil, fmt.Errorf("BigMatrix.Product: factor %d: %w", i, err)
		}
	}
	return retVal, nil
}

// Transpose replaces the contents of bm with the transpose of matrix x.
func (bm *BigMatrix[T]) Transpose(x *BigMatrix[T]) *BigMatrix[T] {
	retVal := newZero(x.r, x.numCols, x.numRows)
	for i := 0; i < retVal.numRows; i++ {
		for j := 0; j < retVal.numCols; j++ {
			retVal.values[i*retVal.numCols+j] = x.values[j*x.numCols+i]
		}
	}
	return bm.Copy(retVal)
}

// Submatrix returns a copy of rows {rowStart,...,rowEnd-1} and columns
// {colStart,...,colEnd-1} of bm.
func (bm *BigMatrix[T]) Submatrix(rowStart, rowEnd, colStart, colEnd int) (*BigMatrix[T], error) {
	if rowStart < 0 || rowEnd < rowStart || bm.numRows < rowEnd ||
		colStart < 0 || colEnd < colStart || bm.numCols < colEnd {
		return nil, fmt.Errorf(
			"BigMatrix.Submatrix: rows [%d,%d) columns [%d,%d) of a %d x %d matrix: %w",
			rowStart, rowEnd, colStart, colEnd, bm.numRows, bm.numCols, ErrOutOfRange,
		)
	}
	retVal := newZero(bm.r, rowEnd-rowStart, colEnd-colStart)
	for i := rowStart; i < rowEnd; i++ {
		copy(
			retVal.values[(i-rowStart)*retVal.numCols:(i-rowStart+1)*retVal.numCols],
			bm.values[i*bm.numCols+colStart:i*bm.numCols+colEnd],
		)
	}
	return retVal, nil
}

// InsertCols inserts count zero columns before column at, so that the first
// new column has index at.
func (bm *BigMatrix[T]) InsertCols(at, count int) error {
	if at < 0 || bm.numCols < at || count < 0 {
		return fmt.Errorf(
			"BigMatrix.InsertCols: %d columns at %d in a matrix with %d columns: %w",
			count, at, bm.numCols, ErrOutOfRange,
		)
	}
	retVal := newZero(bm.r, bm.numRows, bm.numCols+count)
	for i := 0; i < bm.numRows; i++ {
		for j := 0; j < bm.numCols; j++ {
			dest := j
			if j >= at {
				dest += count
			}
			retVal.values[i*retVal.numCols+dest] = bm.values[i*bm.numCols+j]
		}
	}
	bm.Copy(retVal)
	return nil
}

// EraseCols removes columns {at,...,at+count-1}.
func (bm *BigMatrix[T]) EraseCols(at, count int) error {
	if at < 0 || count < 0 || bm.numCols < at+count {
		return fmt.Errorf(
			"BigMatrix.EraseCols: %d columns at %d in a matrix with %d columns: %w",
			count, at, bm.numCols, ErrOutOfRange,
		)
	}
	retVal := newZero(bm.r, bm.numRows, bm.numCols-count)
	for i := 0; i < bm.numRows; i++ {
		for j := 0; j < retVal.numCols; j++ {
			src := j
			if j >= at {
				src += count
			}
			retVal.values[i*retVal.numCols+j] = bm.values[i*bm.numCols+src]
		}
	}
	bm.Copy(retVal)
	return nil
}

// PermuteRows performs the row operation on bm:
// row cycles[i][0] -> row cycles[i][1], row cycles[i][1] -> row cycles[i][2], etc.
// for i in {0,...,len(cycles)-1}.
//
// Each cycles[i][j] must contain a valid row number for bm, or an error is returned
// and bm is unchanged. PermuteRows does not verify that cycles represents a valid
// permutation of the rows of bm.
func (bm *BigMatrix[T]) PermuteRows(cycles [][]int) error {
	if err := checkCycles(cycles, bm.numRows, "PermuteRows"); err != nil {
		return err
	}
	for _, cycle := range cycles {
		// Walking the cycle backwards, each row is overwritten by its predecessor
		last := cycle[len(cycle)-1]
		saved := make([]T, bm.numCols)
		copy(saved, bm.values[last*bm.numCols:(last+1)*bm.numCols])
		for j := len(cycle) - 1; j > 0; j-- {
			dest, src := cycle[j], cycle[j-1]
			copy(bm.values[dest*bm.numCols:(dest+1)*bm.numCols], bm.values[src*bm.numCols:(src+1)*bm.numCols])
		}
		copy(bm.values[cycle[0]*bm.numCols:(cycle[0]+1)*bm.numCols], saved)
	}
	return nil
}

// PermuteColumns performs the column operation on bm:
// column cycles[i][0] -> column cycles[i][1], column cycles[i][1] -> column cycles[i][2], etc.
// for i in {0,...,len(cycles)-1}.
//
// Each cycles[i][j] must contain a valid column number for bm, or an error is
// returned and bm is unchanged.
func (bm *BigMatrix[T]) PermuteColumns(cycles [][]int) error {
	if err := checkCycles(cycles, bm.numCols, "PermuteColumns"); err != nil {
		return err
	}
	for _, cycle := range cycles {
		last := cycle[len(cycle)-1]
		for k := 0; k < bm.numRows; k++ {
			row := bm.values[k*bm.numCols : (k+1)*bm.numCols]
			saved := row[last]
			for j := len(cycle) - 1; j > 0; j-- {
				row[cycle[j]] = row[cycle[j-1]]
			}
			row[cycle[0]] = saved
		}
	}
	return nil
}

func checkCycles(cycles [][]int, limit int, caller string) error {
	if len(cycles) == 0 {
		return fmt.Errorf("%s: permutation was empty: %w", caller, ErrBadShape)
	}
	for _, cycle := range cycles {
		if len(cycle) == 0 {
			return fmt.Errorf("%s: empty cycle: %w", caller, ErrBadShape)
		}
		for _, index := range cycle {
			if index < 0 || limit <= index {
				return fmt.Errorf(
					"%s: cycle contains %d not in {0,...,%d}: %w", caller, index, limit-1, ErrOutOfRange,
				)
			}
		}
	}
	return nil
}

// Equals returns whether bm and x have the same dimensions and entries.
func (bm *BigMatrix[T]) Equals(x *BigMatrix[T]) bool {
	if bm.numRows != x.numRows || bm.numCols != x.numCols {
		return false
	}
	for i := range bm.values {
		if bm.r.Cmp(bm.values[i], x.values[i]) != 0 {
			return false
		}
	}
	return true
}

// IsZero reports whether every entry of bm is 0
func (bm *BigMatrix[T]) IsZero() bool {
	for _, v := range bm.values {
		if bm.r.Sign(v) != 0 {
			return false
		}
	}
	return true
}

// IsIdentity reports whether bm is a square identity matrix
func (bm *BigMatrix[T]) IsIdentity() bool {
	if !bm.IsSquare() {
		return false
	}
	return bm.Equals(bm.Identity(bm.numRows))
}

// String returns a string representing bm with rows separated by newlines.
func (bm *BigMatrix[T]) String() string {
	var sb strings.Builder
	for i := 0; i < bm.numRows; i++ {
		for j := 0; j < bm.numCols; j++ {
			sb.WriteString(fmt.Sprintf("%s, ", bm.r.String(bm.values[i*bm.numCols+j])))
		}
		sb.WriteString("\n")
	}
	return sb.String()
}
