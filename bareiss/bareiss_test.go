// Copyright (c) 2023 Colin McRae

package bareiss

import (
	"errors"
	"math/big"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/predrag3141/canonform/bigmatrix"
	"github.com/predrag3141/canonform/bignumber"
	"github.com/predrag3141/canonform/ring"
	"github.com/predrag3141/canonform/util"
)

type bigMatrix = bigmatrix.BigMatrix[*bignumber.BigNumber]

var br = bignumber.Ring{}

func newBig(t *testing.T, input []int64, numRows, numCols int) *bigMatrix {
	bm, err := bigmatrix.NewFromInt64Array[*bignumber.BigNumber](br, input, numRows, numCols)
	require.NoError(t, err)
	return bm
}

func mul(t *testing.T, factors ...*bigMatrix) *bigMatrix {
	product, err := bigmatrix.Product(factors...)
	require.NoError(t, err)
	return product
}

func checkRows(t *testing.T, a *bigMatrix) *RowsResult[*bignumber.BigNumber] {
	res, err := Rows(a)
	require.NoError(t, err)
	assert.Truef(t, res.B.Equals(mul(t, res.Q, a)), "B != QA for\n%s", a.String())

	rank, err := util.RationalRank(a)
	require.NoError(t, err)
	assert.Equal(t, rank, len(res.Basis))

	// Basis columns of B hold |det| on the diagonal, rows past the rank are 0
	absDet := br.Abs(res.Det)
	for k, j := range res.Basis {
		for i := 0; i < a.NumRows(); i++ {
			if i == k {
				assert.Equal(t, 0, res.B.At(i, j).Cmp(absDet))
			} else {
				assert.True(t, res.B.IsZeroAt(i, j))
			}
		}
	}
	for i := len(res.Basis); i < a.NumRows(); i++ {
		assert.True(t, res.B.RowIsZero(i, 0))
	}
	return res
}

func checkPermute(t *testing.T, a *bigMatrix) *PermuteResult[*bignumber.BigNumber] {
	res, err := Permute(a)
	require.NoError(t, err)
	assert.True(t, util.IsUnimodular(res.P))
	assert.True(t, util.IsUnimodular(res.Q))

	rank, err := util.RationalRank(a)
	require.NoError(t, err)
	assert.Equal(t, rank, res.Rank)

	// The leading rank x rank minor of PAQ is non-singular with determinant |Det|
	paq := mul(t, res.P, a, res.Q)
	minor, err := paq.Submatrix(0, res.Rank, 0, res.Rank)
	require.NoError(t, err)
	det, err := util.RationalDet(minor)
	require.NoError(t, err)
	assert.Equal(t, 0, det.Cmp(new(big.Rat).SetInt(br.Abs(res.Det).Int())))

	// For a non-singular square matrix, Det is det(A)
	if a.IsSquare() && res.Rank == a.NumRows() {
		detA, err := util.RationalDet(a)
		require.NoError(t, err)
		assert.Equal(t, 0, detA.Cmp(new(big.Rat).SetInt(res.Det.Int())))
	}
	return res
}

func TestRows_Scenario(t *testing.T) {
	a := newBig(t, []int64{1, 2, 3, 3, 2, 3, 0, 1, 3}, 3, 3)
	res := checkRows(t, a)
	assert.Equal(t, []int{0, 1, 2}, res.Basis)
	assert.Equal(t, "-6", res.Det.String())
	assert.True(t, res.B.Equals(newBig(t, []int64{6, 0, 0, 0, 6, 0, 0, 0, 6}, 3, 3)))
}

func TestRows_RankDeficient(t *testing.T) {
	// The second column is twice the first
	a := newBig(t, []int64{1, 2, 2, 4, 3, 6}, 3, 2)
	res := checkRows(t, a)
	assert.Equal(t, []int{0}, res.Basis)
	assert.Equal(t, "3", br.Abs(res.Det).String())

	// A zero column is skipped without advancing the row
	b := newBig(t, []int64{0, 1, 2, 0, 3, 4}, 2, 3)
	res = checkRows(t, b)
	assert.Equal(t, []int{1, 2}, res.Basis)
}

func TestRows_Degenerate(t *testing.T) {
	for _, dims := range [][2]int{{0, 3}, {3, 0}, {0, 0}} {
		a := newBig(t, []int64{}, dims[0], dims[1])
		res, err := Rows(a)
		require.NoError(t, err)
		assert.Empty(t, res.Basis)
		assert.Equal(t, "1", res.Det.String())
		assert.True(t, res.Q.IsIdentity())
		assert.Equal(t, dims[0], res.Q.NumRows())
	}
	zero := newBig(t, []int64{0, 0, 0, 0}, 2, 2)
	res := checkRows(t, zero)
	assert.Equal(t, "1", res.Det.String())
	assert.True(t, res.Q.IsIdentity())
}

func TestRows_Random(t *testing.T) {
	rng := rand.New(rand.NewSource(21))
	for trial := 0; trial < 40; trial++ {
		numRows, numCols := 1+rng.Intn(5), 1+rng.Intn(5)
		rank := rng.Intn(min(numRows, numCols) + 1)
		a, err := util.RandomMatrix[*bignumber.BigNumber](br, rng, numRows, numCols, rank, 9)
		require.NoError(t, err)
		checkRows(t, a)
	}
}

func TestPermute_Scenario(t *testing.T) {
	a := newBig(t, []int64{1, 2, 3, 3, 2, 3, 0, 1, 3}, 3, 3)
	res := checkPermute(t, a)
	assert.Equal(t, 3, res.Rank)
	assert.Equal(t, "-6", res.Det.String())
}

func TestPermute_RankDeficient(t *testing.T) {
	a := newBig(t, []int64{1, 2, 2, 4, 3, 6}, 3, 2)
	res := checkPermute(t, a)
	assert.Equal(t, 1, res.Rank)

	// The first column with a non-zero entry supplies the pivot, which is
	// its largest entry
	paq := mul(t, res.P, a, res.Q)
	assert.Equal(t, "3", paq.At(0, 0).String())
}

func TestPermute_Degenerate(t *testing.T) {
	for _, dims := range [][2]int{{0, 3}, {3, 0}} {
		a := newBig(t, []int64{}, dims[0], dims[1])
		res, err := Permute(a)
		require.NoError(t, err)
		assert.Equal(t, 0, res.Rank)
		assert.Equal(t, "1", res.Det.String())
		assert.True(t, res.P.IsIdentity())
		assert.True(t, res.Q.IsIdentity())
		assert.Equal(t, dims[0], res.P.NumRows())
		assert.Equal(t, dims[1], res.Q.NumRows())
	}
}

func TestPermute_Random(t *testing.T) {
	rng := rand.New(rand.NewSource(22))
	for trial := 0; trial < 40; trial++ {
		numRows, numCols := 1+rng.Intn(5), 1+rng.Intn(5)
		rank := rng.Intn(min(numRows, numCols) + 1)
		a, err := util.RandomMatrix[*bignumber.BigNumber](br, rng, numRows, numCols, rank, 9)
		require.NoError(t, err)
		checkPermute(t, a)
	}
}

func TestDet(t *testing.T) {
	rng := rand.New(rand.NewSource(23))
	for trial := 0; trial < 30; trial++ {
		dim := 1 + rng.Intn(5)
		a, err := util.RandomMatrix[*bignumber.BigNumber](br, rng, dim, dim, dim, 6)
		require.NoError(t, err)
		det, err := Det(a)
		require.NoError(t, err)

		// Cross-check against gonum's floating point determinant
		assert.InDelta(t, mat.Det(a.ToDense()), br.Float64(det), 1e-6*(1+absFloat(br.Float64(det))))
	}
	singular := newBig(t, []int64{1, 2, 2, 4}, 2, 2)
	det, err := Det(singular)
	assert.NoError(t, err)
	assert.True(t, det.IsZero())

	_, err = Det(newBig(t, []int64{1, 2}, 1, 2))
	assert.True(t, errors.Is(err, bigmatrix.ErrNonSquare))
}

func absFloat(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}

func TestRank(t *testing.T) {
	rank, err := Rank(newBig(t, []int64{1, 2, 2, 4, 3, 6}, 3, 2))
	assert.NoError(t, err)
	assert.Equal(t, 1, rank)
}

func TestAdjoint(t *testing.T) {
	a := newBig(t, []int64{1, 2, 3, 3, 2, 3, 0, 1, 3}, 3, 3)
	adj, det, err := Adjoint(a)
	require.NoError(t, err)
	assert.Equal(t, "-6", det.String())
	scaled := a.Identity(3)
	for i := 0; i < 3; i++ {
		scaled.MulRow(i, det)
	}
	assert.True(t, mul(t, adj, a).Equals(scaled))
	assert.True(t, mul(t, a, adj).Equals(scaled))

	_, _, err = Adjoint(newBig(t, []int64{1, 2, 2, 4}, 2, 2))
	assert.True(t, errors.Is(err, ErrSingular))
}

func TestRows_Int64Ring(t *testing.T) {
	a, err := bigmatrix.NewFromInt64Array[int64](ring.Int64{}, []int64{1, 2, 3, 3, 2, 3, 0, 1, 3}, 3, 3)
	require.NoError(t, err)
	res, err := Rows(a)
	require.NoError(t, err)
	assert.Equal(t, int64(-6), res.Det)
	qa, err := new(bigmatrix.BigMatrix[int64]).Mul(res.Q, a)
	require.NoError(t, err)
	assert.True(t, res.B.Equals(qa))
}
