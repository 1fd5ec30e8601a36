// SPDX-License-Identifier: MIT

// Package matrix: canonical validators.
//
// Purpose:
//   - Provide a single source of truth for common guard checks.
//   - Keep kernels minimal by delegating nil/shape/length checks here.
//   - Return plain sentinel errors so call sites can wrap uniformly.
//
// All checks are pure, deterministic and allocate nothing on success.

package matrix

import "fmt"

// validatorErrorf wraps an underlying sentinel with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
// Returns ErrNilMatrix if m == nil. Complexity: O(1).
func ValidateNotNil(m *Dense) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSquare checks that m is square (Rows == Cols).
// Assumes m is not nil (compose with ValidateNotNil first).
// Returns ErrNonSquare when the shape is rectangular. Complexity: O(1).
func ValidateSquare(m *Dense) error {
	if m.r != m.c {
		return validatorErrorf("ValidateSquare", ErrNonSquare)
	}

	return nil
}

// ValidateVecLen checks that x has exactly want elements, for MatVec-like
// operations pairing a matrix dimension with a vector.
// Returns ErrDimensionMismatch on any length difference. Complexity: O(1).
func ValidateVecLen(x []float64, want int) error {
	if len(x) != want {
		return validatorErrorf(fmt.Sprintf("ValidateVecLen: len=%d want=%d", len(x), want), ErrDimensionMismatch)
	}

	return nil
}
