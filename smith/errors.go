// Copyright (c) 2023 Colin McRae

package smith

import "errors"

var (
	// ErrVerification is returned by a verifying Compute whose result does
	// not reconstruct S or whose transforms are not unimodular.
	ErrVerification = errors.New("smith: verification failed")

	// ErrInconsistent is returned when a pivot that must be non-zero turns
	// out to be 0 during diagonalization.
	ErrInconsistent = errors.New("smith: inconsistent elimination")

	// ErrNoIntegerSolution is returned by Solve when A x = b has no integer
	// solution.
	ErrNoIntegerSolution = errors.New("smith: no integer solution")
)
