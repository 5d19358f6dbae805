// Copyright (c) 2023 Colin McRae

package util

import (
	"fmt"
	"math/big"

	"github.com/predrag3141/canonform/bigmatrix"
)

// toRat converts the entries of a to big.Rat through their decimal form,
// so the result does not depend on the ring a is defined over.
func toRat[T any](a *bigmatrix.BigMatrix[T]) ([][]*big.Rat, error) {
	r := a.Ring()
	numRows, numCols := a.Dimensions()
	retVal := make([][]*big.Rat, numRows)
	for i := 0; i < numRows; i++ {
		retVal[i] = make([]*big.Rat, numCols)
		for j := 0; j < numCols; j++ {
			s := r.String(a.At(i, j))
			v, ok := new(big.Rat).SetString(s)
			if !ok {
				return nil, fmt.Errorf("toRat: could not parse entry (%d,%d) = %q", i, j, s)
			}
			retVal[i][j] = v
		}
	}
	return retVal, nil
}

// eliminateRat reduces rows to echelon form over the rationals and returns
// the rank and the determinant of the pivot minor, including the sign of
// the row swaps.
func eliminateRat(rows [][]*big.Rat, numCols int) (int, *big.Rat) {
	det := big.NewRat(1, 1)
	rank := 0
	for j := 0; j < numCols && rank < len(rows); j++ {
		pivot := -1
		for i := rank; i < len(rows); i++ {
			if rows[i][j].Sign() != 0 {
				pivot = i
				break
			}
		}
		if pivot < 0 {
			continue
		}
		if pivot != rank {
			rows[pivot], rows[rank] = rows[rank], rows[pivot]
			det.Neg(det)
		}
		det.Mul(det, rows[rank][j])
		for i := rank + 1; i < len(rows); i++ {
			if rows[i][j].Sign() == 0 {
				continue
			}
			factor := new(big.Rat).Quo(rows[i][j], rows[rank][j])
			for k := j; k < numCols; k++ {
				rows[i][k] = new(big.Rat).Sub(rows[i][k], new(big.Rat).Mul(factor, rows[rank][k]))
			}
		}
		rank++
	}
	return rank, det
}

// RationalRank returns the rank of a, computed by Gaussian elimination over
// the rationals. It is independent of the fraction-free algorithms and
// serves as a reference for them.
func RationalRank[T any](a *bigmatrix.BigMatrix[T]) (int, error) {
	rows, err := toRat(a)
	if err != nil {
		return 0, err
	}
	rank, _ := eliminateRat(rows, a.NumCols())
	return rank, nil
}

// RationalDet returns the determinant of the square matrix a, computed over
// the rationals. The determinant of a 0 x 0 matrix is 1.
func RationalDet[T any](a *bigmatrix.BigMatrix[T]) (*big.Rat, error) {
	if !a.IsSquare() {
		return nil, fmt.Errorf("RationalDet: %d x %d: %w", a.NumRows(), a.NumCols(), bigmatrix.ErrNonSquare)
	}
	rows, err := toRat(a)
	if err != nil {
		return nil, err
	}
	rank, det := eliminateRat(rows, a.NumCols())
	if rank < a.NumRows() {
		return new(big.Rat), nil
	}
	return det, nil
}

// IsUnimodular reports whether a is square with determinant 1 or -1
func IsUnimodular[T any](a *bigmatrix.BigMatrix[T]) bool {
	det, err := RationalDet(a)
	if err != nil {
		return false
	}
	return new(big.Rat).Abs(det).Cmp(big.NewRat(1, 1)) == 0
}
