// Copyright (c) 2023 Colin McRae

package hermite

import "errors"

var (
	// ErrRankDeficient is returned when the input does not have full column
	// rank. Callers can check the rank first with bareiss.Rank.
	ErrRankDeficient = errors.New("hermite: matrix does not have full column rank")

	// ErrVerification is returned by a verifying Compute whose result does
	// not satisfy H = U A with |det U| = 1.
	ErrVerification = errors.New("hermite: verification failed")
)
