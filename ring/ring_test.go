// Copyright (c) 2023 Colin McRae

package ring

import (
	"errors"
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var z = Int64{}

func TestInt64_DivMod(t *testing.T) {
	for _, tc := range []struct{ x, y, q, m int64 }{
		{7, 2, 3, 1},
		{-7, 2, -4, 1},
		{7, -2, -3, 1},
		{-7, -2, 4, 1},
		{6, -3, -2, 0},
		{0, 5, 0, 0},
	} {
		q, m, err := z.DivMod(tc.x, tc.y)
		assert.NoError(t, err)
		assert.Equalf(t, tc.q, q, "quotient of %d / %d", tc.x, tc.y)
		assert.Equalf(t, tc.m, m, "remainder of %d / %d", tc.x, tc.y)
	}
	_, _, err := z.DivMod(1, 0)
	assert.True(t, errors.Is(err, ErrDivisionByZero))
}

func TestInt64_Overflow(t *testing.T) {
	assertOverflow := func(f func()) {
		defer func() {
			p := recover()
			require.NotNil(t, p)
			err, ok := p.(error)
			require.True(t, ok)
			assert.True(t, errors.Is(err, ErrOverflow))
		}()
		f()
	}
	assertOverflow(func() { z.Add(math.MaxInt64, 1) })
	assertOverflow(func() { z.Sub(math.MinInt64, 1) })
	assertOverflow(func() { z.Mul(math.MaxInt64/2+1, 2) })
	assertOverflow(func() { z.Mul(-1, math.MinInt64) })
	assertOverflow(func() { z.Neg(math.MinInt64) })
	assert.Equal(t, int64(math.MinInt64), z.Mul(math.MinInt64/2, 2))
}

func TestInt64_FromString(t *testing.T) {
	x, err := z.FromString("-42")
	assert.NoError(t, err)
	assert.Equal(t, int64(-42), x)
	_, err = z.FromString("4.2")
	assert.Error(t, err)
}

func TestDivExact(t *testing.T) {
	q, err := DivExact[int64](z, -12, 4)
	assert.NoError(t, err)
	assert.Equal(t, int64(-3), q)
	_, err = DivExact[int64](z, 13, 4)
	assert.True(t, errors.Is(err, ErrInexactDivision))
	_, err = DivExact[int64](z, 13, 0)
	assert.True(t, errors.Is(err, ErrDivisionByZero))
}

func TestBezout(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 500; i++ {
		a, b := rng.Int63n(2001)-1000, rng.Int63n(2001)-1000
		g, u, v := Bezout[int64](z, a, b)
		assert.Equal(t, z.GCD(a, b), g)
		assert.Equalf(t, g, u*a+v*b, "u*a + v*b for a = %d, b = %d", a, b)
	}
}

func checkQuadruple(t *testing.T, a, b int64, q Quadruple[int64]) {
	assert.Equalf(t, z.GCD(a, b), q.G, "gcd of %d, %d", a, b)
	assert.Equalf(t, q.G, q.U*a+q.V*b, "first row applied to (%d, %d)", a, b)
	assert.Equalf(t, int64(0), q.W*a+q.Z*b, "second row applied to (%d, %d)", a, b)
	assert.Equalf(t, int64(1), q.U*q.Z-q.V*q.W, "determinant for (%d, %d)", a, b)
}

func TestGCDEx(t *testing.T) {
	q := GCDEx[int64](z, 0, 0)
	assert.Equal(t, Quadruple[int64]{G: 0, U: 1, V: 0, W: 0, Z: 1}, q)

	// a divides b: no fill-in in the first row
	q = GCDEx[int64](z, -3, 12)
	assert.Equal(t, Quadruple[int64]{G: 3, U: -1, V: 0, W: -4, Z: -1}, q)
	checkQuadruple(t, -3, 12, q)

	for _, ab := range [][2]int64{{0, 5}, {0, -5}, {5, 0}, {-5, 0}, {4, 6}, {-4, 6}, {9, -6}, {1, 1}, {-1, -1}} {
		checkQuadruple(t, ab[0], ab[1], GCDEx[int64](z, ab[0], ab[1]))
	}

	rng := rand.New(rand.NewSource(11))
	for i := 0; i < 500; i++ {
		a, b := rng.Int63n(201)-100, rng.Int63n(201)-100
		checkQuadruple(t, a, b, GCDEx[int64](z, a, b))
	}
}

func TestGCDExMod(t *testing.T) {
	q, err := GCDExMod[int64](z, -5, 27, 12)
	assert.NoError(t, err)
	checkQuadruple(t, 7, 3, q)
	_, err = GCDExMod[int64](z, 1, 2, 0)
	assert.Error(t, err)
}

func TestSplit(t *testing.T) {
	assert.Equal(t, int64(5), Split[int64](z, 6, 60))
	assert.Equal(t, int64(1), Split[int64](z, 30, 60))
	assert.Equal(t, int64(60), Split[int64](z, 7, 60))
	assert.Equal(t, int64(9), Split[int64](z, -4, 36))
}

func TestStab(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for i := 0; i < 2000; i++ {
		a, b, n := rng.Int63n(121)-60, rng.Int63n(121)-60, rng.Int63n(120)+1
		c := Stab[int64](z, a, b, n)
		want := z.GCD(z.GCD(a, b), n)
		assert.Equalf(t, want, z.GCD(a+c*b, n), "stab(%d, %d, %d) = %d", a, b, n, c)
	}
	assert.Equal(t, int64(0), Stab[int64](z, 4, 0, 6))
	assert.Equal(t, int64(1), Stab[int64](z, 0, 4, 6))
	assert.Equal(t, int64(0), Stab[int64](z, 0, 12, 6))
}

func TestUnitMod(t *testing.T) {
	for n := int64(1); n <= 60; n++ {
		for a := int64(-70); a <= 70; a++ {
			c, err := UnitMod[int64](z, a, n)
			require.NoError(t, err)
			if n == 1 {
				continue
			}
			assert.Equalf(t, int64(1), z.GCD(c, n), "unit(%d, %d) = %d is not a unit", a, n, c)
			got, _ := Mod[int64](z, c*a, n)
			want, _ := Mod[int64](z, z.GCD(a, n), n)
			assert.Equalf(t, want, got, "unit(%d, %d) = %d", a, n, c)
		}
	}
}
