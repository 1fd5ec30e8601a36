// SPDX-License-Identifier: MIT

// Package matrix provides the dense storage primitives used by the linsolve
// solvers: a row-major Dense matrix with bounds-checked accessors, contiguous
// row views, row swapping, and matrix-vector multiplication.
//
// Design:
//   - Dense stores elements in one flat []float64 with the explicit index
//     formula i*cols + j; every row is a contiguous subslice, which keeps
//     elimination loops sequential and cache-friendly.
//   - The public surface never panics on user input. At/Set/Row/SwapRows
//     return sentinel errors (errors.go) that callers match via errors.Is.
//   - Central validators (validators.go) keep guard logic in one place; they
//     return plain sentinels so call sites can wrap them uniformly.
//
// Ownership: Dense owns its backing slice. Row returns a live view into that
// slice; mutations through the view are visible in the matrix. Use Clone for
// an independent copy.
//
// Complexity quicksheet:
//
//	NewDense: O(r*c) zero-init; At/Set/Row: O(1); SwapRows: O(c);
//	Clone: O(r*c); MatVec: O(r*c).
package matrix
