package util

import (
	"fmt"
	"math/rand"

	"github.com/predrag3141/canonform/bigmatrix"
	"github.com/predrag3141/canonform/ring"
)

// CreateInversePair creates a pair of dim x dim inverse matrices with integer
// entries and determinant 1, in row-major order, built from random row
// operations drawn from rng.
func CreateInversePair(rng *rand.Rand, dim int) ([]int64, []int64, error) {
	const maxRowOpEntry = 10
	const maxRowOps = 10
	const maxMatrixEntry = 100
	retValA := make([]int64, dim*dim)
	retValB := make([]int64, dim*dim)
	for j := 0; j < dim; j++ {
		retValA[j*dim+j] = 1
		retValB[j*dim+j] = 1
	}
	if dim < 2 {
		return retValA, retValB, nil
	}

	// The inverse operation to adding c times row i to row j is to add −c times row i to
	// row j
	for i := 0; i < maxRowOps; i++ {
		srcRow := rng.Intn(dim)
		destRow := rng.Intn(dim)
		multiple := int64(rng.Intn(maxRowOpEntry) - (maxRowOpEntry / 2))
		if multiple == 0 {
			multiple = 1
		}
		if srcRow == destRow {
			destRow = (destRow + 1 + rng.Intn(dim-1)) % dim
		}
		rowOpMatrixA := make([]int64, dim*dim)
		rowOpMatrixB := make([]int64, dim*dim)
		for j := 0; j < dim; j++ {
			rowOpMatrixA[j*dim+j] = 1
			rowOpMatrixB[j*dim+j] = 1
		}
		rowOpMatrixA[destRow*dim+srcRow] = multiple
		rowOpMatrixB[destRow*dim+srcRow] = -multiple
		tmpA, err := MultiplyIntInt(rowOpMatrixA, retValA, dim)
		if err != nil {
			return nil, nil, fmt.Errorf(
				"CreateInversePair: could not multiply retValA by rowOpMatrixA: %w", err,
			)
		}
		tmpB, err := MultiplyIntInt(retValB, rowOpMatrixB, dim)
		if err != nil {
			return nil, nil, fmt.Errorf(
				"CreateInversePair: could not multiply retValB by rowOpMatrixB: %w", err,
			)
		}

		// An entry in tmpA or tmpB may exceed the maximum desired
		for j := 0; j < dim*dim; j++ {
			if (tmpA[j] > maxMatrixEntry) || (tmpA[j] < -maxMatrixEntry) ||
				(tmpB[j] > maxMatrixEntry) || (tmpB[j] < -maxMatrixEntry) {
				return retValA, retValB, nil
			}
		}
		retValA = tmpA
		retValB = tmpB
	}

	// The maximum number of iterations has been reached
	return retValA, retValB, nil
}

// NewInversePair returns CreateInversePair as matrices over r
func NewInversePair[T any](r ring.Ring[T], rng *rand.Rand, dim int) (*bigmatrix.BigMatrix[T], *bigmatrix.BigMatrix[T], error) {
	a, b, err := CreateInversePair(rng, dim)
	if err != nil {
		return nil, nil, err
	}
	ma, err := bigmatrix.NewFromInt64Array(r, a, dim, dim)
	if err != nil {
		return nil, nil, err
	}
	mb, err := bigmatrix.NewFromInt64Array(r, b, dim, dim)
	if err != nil {
		return nil, nil, err
	}
	return ma, mb, nil
}

// IsInversePair returns whether x and y are inverses of each other
func IsInversePair(x, y []int64, dim int) (bool, error) {
	shouldBeIdentity, err := MultiplyIntInt(x, y, dim)
	if err != nil {
		return false, fmt.Errorf(
			"could not multiply x (%d-long) by y (%d-long): %w", len(x), len(y), err,
		)
	}
	for i := 0; i < dim; i++ {
		for j := 0; j < dim; j++ {
			if (i == j) && (shouldBeIdentity[i*dim+j] != 1) {
				return false, nil
			} else if (i != j) && (shouldBeIdentity[i*dim+j] != 0) {
				return false, nil
			}
		}
	}
	return true, nil
}

// GetPermutation returns a random permutation of {0,...,size-1} that is
// not the identity, for size >= 2.
func GetPermutation(rng *rand.Rand, size int) []int {
	permutation := rng.Perm(size)
	if size < 2 {
		return permutation
	}

	// Return the random permutation if it is not the identity
	for i := 0; i < size; i++ {
		if permutation[i] != i {
			return permutation
		}
	}

	// The random permutation is the identity. Return a random swap.
	src := rng.Intn(size)
	dest := (src + 1 + rng.Intn(size-1)) % size
	permutation[src] = dest
	permutation[dest] = src
	return permutation
}

// PermutationCycles returns the cycles of permutation, which maps i to
// permutation[i], in the form taken by BigMatrix.PermuteRows: each cycle
// {c0, c1, ...} sends c0 to c1, c1 to c2 and so on. Fixed points are
// omitted unless permutation is the identity, which gives {{0}}.
func PermutationCycles(permutation []int) [][]int {
	visited := make([]bool, len(permutation))
	cycles := [][]int{}
	for start := range permutation {
		if visited[start] || permutation[start] == start {
			continue
		}
		cycle := []int{}
		for i := start; !visited[i]; i = permutation[i] {
			visited[i] = true
			cycle = append(cycle, i)
		}
		cycles = append(cycles, cycle)
	}
	if len(cycles) == 0 && len(permutation) > 0 {
		cycles = append(cycles, []int{0})
	}
	return cycles
}

// RandomMatrix returns a numRows x numCols matrix of rank at most rank with
// entries drawn from rng, formed as the product of a numRows x rank and a
// rank x numCols matrix with entries in {-maxEntry,...,maxEntry}.
func RandomMatrix[T any](r ring.Ring[T], rng *rand.Rand, numRows, numCols, rank int, maxEntry int64) (*bigmatrix.BigMatrix[T], error) {
	randomEntries := func(n int) []int64 {
		retVal := make([]int64, n)
		for i := range retVal {
			retVal[i] = rng.Int63n(2*maxEntry+1) - maxEntry
		}
		return retVal
	}
	left, err := bigmatrix.NewFromInt64Array(r, randomEntries(numRows*rank), numRows, rank)
	if err != nil {
		return nil, fmt.Errorf("RandomMatrix: %w", err)
	}
	right, err := bigmatrix.NewFromInt64Array(r, randomEntries(rank*numCols), rank, numCols)
	if err != nil {
		return nil, fmt.Errorf("RandomMatrix: %w", err)
	}
	return new(bigmatrix.BigMatrix[T]).Mul(left, right)
}
