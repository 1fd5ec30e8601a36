// SPDX-License-Identifier: MIT

// Package matrix: matrix-vector product.

package matrix

// MatVec computes y = m·x into a freshly allocated slice; neither operand is
// mutated. Solver tests use it to verify residuals (A_original·x ≈ b_original).
//
// Stage 1 (Validate): non-nil matrix, len(x) == Cols.
// Stage 2 (Execute): fixed i→j loops over contiguous rows, scalar accumulator.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(r*c) time, O(r) memory.
func MatVec(m *Dense, x []float64) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, err
	}
	if err := ValidateVecLen(x, m.c); err != nil {
		return nil, err
	}

	y := make([]float64, m.r)
	for i := 0; i < m.r; i++ {
		base := i * m.c
		sum := 0.0
		for j := 0; j < m.c; j++ { // deterministic column order
			sum += m.data[base+j] * x[j]
		}
		y[i] = sum
	}

	return y, nil
}
