// Copyright (c) 2023 Colin McRae

package smith

import (
	"errors"
	"math/big"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

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

func checkCompute(t *testing.T, a *bigMatrix, opts ...Option) *Result[*bignumber.BigNumber] {
	res, err := Compute(a, opts...)
	require.NoError(t, err)
	require.NoError(t, Verify(a, res))
	for _, m := range []*bigMatrix{res.P, res.Q, res.U, res.E, res.F} {
		assert.True(t, util.IsUnimodular(m))
	}
	rank, err := util.RationalRank(a)
	require.NoError(t, err)
	assert.Equal(t, rank, res.Rank)
	return res
}

func TestCompute_Scenario(t *testing.T) {
	a := newBig(t, []int64{1, 2, 3, 3, 2, 3, 0, 1, 3}, 3, 3)
	res := checkCompute(t, a)
	assert.Equal(t, 3, res.Rank)
	assert.True(t, res.S.Equals(newBig(t, []int64{1, 0, 0, 0, 1, 0, 0, 0, 6}, 3, 3)))

	// The product of the invariant factors is |det A|
	det, err := util.RationalDet(a)
	require.NoError(t, err)
	product := br.One()
	for i := 0; i < res.Rank; i++ {
		product = br.Mul(product, res.S.At(i, i))
	}
	assert.Equal(t, 0, new(big.Rat).Abs(det).Cmp(new(big.Rat).SetInt(product.Int())))
}

func TestCompute_RankDeficient(t *testing.T) {
	a := newBig(t, []int64{1, 2, 2, 4, 3, 6}, 3, 2)
	res := checkCompute(t, a)
	assert.Equal(t, 1, res.Rank)
	assert.True(t, res.S.Equals(newBig(t, []int64{1, 0, 0, 0, 0, 0}, 3, 2)))

	b := newBig(t, []int64{2, 4, 6, 4, 8, 12}, 2, 3)
	res = checkCompute(t, b)
	assert.Equal(t, 1, res.Rank)
	assert.True(t, res.S.Equals(newBig(t, []int64{2, 0, 0, 0, 0, 0}, 2, 3)))
}

func TestCompute_Degenerate(t *testing.T) {
	for _, dims := range [][2]int{{0, 3}, {3, 0}, {0, 0}} {
		a := newBig(t, []int64{}, dims[0], dims[1])
		res := checkCompute(t, a)
		assert.Equal(t, 0, res.Rank)
		assert.Equal(t, "1", res.Det.String())
		assert.Equal(t, dims[0], res.S.NumRows())
		assert.Equal(t, dims[1], res.S.NumCols())
		assert.Equal(t, dims[0], res.E.NumRows())
		assert.Equal(t, dims[1], res.F.NumRows())
		assert.True(t, res.E.IsIdentity())
		assert.True(t, res.F.IsIdentity())
	}
	zero := newBig(t, []int64{0, 0, 0, 0, 0, 0}, 2, 3)
	res := checkCompute(t, zero)
	assert.Equal(t, 0, res.Rank)
	assert.True(t, res.S.IsZero())
}

func TestCompute_AlreadyNormal(t *testing.T) {
	a := newBig(t, []int64{1, 0, 0, 0, 2, 0, 0, 0, 6}, 3, 3)
	res := checkCompute(t, a)
	assert.True(t, res.S.Equals(a))
	for _, m := range []*bigMatrix{res.P, res.Q, res.U, res.E, res.F} {
		assert.True(t, m.IsIdentity())
	}
}

func TestCompute_WideAndTall(t *testing.T) {
	// 2 x 4 with invariant factors 1 and 2
	a := newBig(t, []int64{2, 4, 6, 8, 1, 3, 5, 7}, 2, 4)
	res := checkCompute(t, a)
	assert.True(t, res.S.Equals(newBig(t, []int64{1, 0, 0, 0, 0, 2, 0, 0}, 2, 4)))

	// The transpose has the transposed Smith form
	at := new(bigMatrix).Transpose(a)
	res = checkCompute(t, at)
	assert.True(t, res.S.Equals(newBig(t, []int64{1, 0, 0, 2, 0, 0, 0, 0}, 4, 2)))
}

func TestCompute_KnownInvariants(t *testing.T) {
	// A = L D R with unimodular L and R has Smith form D
	rng := rand.New(rand.NewSource(41))
	for _, tc := range []struct {
		numRows, numCols int
		diag             []int64
	}{
		{3, 3, []int64{1, 2, 6}},
		{3, 3, []int64{2, 4, 0}},
		{4, 3, []int64{1, 3, 9}},
		{3, 5, []int64{2, 2, 12}},
		{4, 4, []int64{1, 1, 5, 10}},
		{4, 4, []int64{3, 3, 0, 0}},
	} {
		d, err := bigmatrix.New[*bignumber.BigNumber](br, tc.numRows, tc.numCols)
		require.NoError(t, err)
		for i, v := range tc.diag {
			d.SetAt(i, i, br.FromInt64(v))
		}
		for trial := 0; trial < 3; trial++ {
			l, _, err := util.NewInversePair[*bignumber.BigNumber](br, rng, tc.numRows)
			require.NoError(t, err)
			r, _, err := util.NewInversePair[*bignumber.BigNumber](br, rng, tc.numCols)
			require.NoError(t, err)
			res := checkCompute(t, mul(t, l, d, r))
			assert.Truef(t, res.S.Equals(d), "expected\n%s\ngot\n%s", d.String(), res.S.String())
		}
	}
}

func TestCompute_Random(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for trial := 0; trial < 30; trial++ {
		numRows, numCols := 1+rng.Intn(5), 1+rng.Intn(5)
		rank := rng.Intn(min(numRows, numCols) + 1)
		a, err := util.RandomMatrix[*bignumber.BigNumber](br, rng, numRows, numCols, rank, 9)
		require.NoError(t, err)
		stabilized := checkCompute(t, a)
		plain := checkCompute(t, a, WithStabilization(false))
		assert.True(t, stabilized.S.Equals(plain.S))

		// Permuting the rows does not change the Smith form
		if numRows > 1 {
			pa := a.Clone()
			require.NoError(t, pa.PermuteRows(util.PermutationCycles(util.GetPermutation(rng, numRows))))
			assert.True(t, checkCompute(t, pa).S.Equals(stabilized.S))
		}
	}
}

func TestCompute_WithVerify(t *testing.T) {
	a := newBig(t, []int64{4, 6, 2, 8, 10, 14, 6, 0, 12}, 3, 3)
	res, err := Compute(a, WithVerify(true))
	require.NoError(t, err)
	assert.True(t, IsNormalForm(res.S))

	res.E.SetAt(0, 0, br.Add(res.E.At(0, 0), br.One()))
	assert.True(t, errors.Is(Verify(a, res), ErrVerification))
}

func TestCompute_Int64Ring(t *testing.T) {
	z := ring.Int64{}
	a, err := bigmatrix.NewFromInt64Array[int64](z, []int64{1, 2, 3, 3, 2, 3, 0, 1, 3}, 3, 3)
	require.NoError(t, err)
	res, err := Compute(a, WithVerify(true))
	require.NoError(t, err)
	want, err := bigmatrix.NewFromInt64Array[int64](z, []int64{1, 0, 0, 0, 1, 0, 0, 0, 6}, 3, 3)
	require.NoError(t, err)
	assert.True(t, res.S.Equals(want))
}

func TestInvariants(t *testing.T) {
	factors, err := Invariants(newBig(t, []int64{2, 4, 4, -6, 6, 12, 10, -4, -16}, 3, 3))
	require.NoError(t, err)
	got := make([]string, len(factors))
	for i, f := range factors {
		got[i] = f.String()
	}
	assert.Equal(t, []string{"2", "6", "12"}, got)
}

func TestIsNormalForm(t *testing.T) {
	assert.True(t, IsNormalForm(newBig(t, []int64{2, 0, 0, 0, 4, 0}, 2, 3)))
	assert.True(t, IsNormalForm(newBig(t, []int64{3, 0, 0, 0}, 2, 2)))
	assert.False(t, IsNormalForm(newBig(t, []int64{2, 0, 0, 3}, 2, 2)))
	assert.False(t, IsNormalForm(newBig(t, []int64{0, 0, 0, 3}, 2, 2)))
	assert.False(t, IsNormalForm(newBig(t, []int64{-1, 0, 0, 3}, 2, 2)))
	assert.False(t, IsNormalForm(newBig(t, []int64{1, 1, 0, 3}, 2, 2)))
}
