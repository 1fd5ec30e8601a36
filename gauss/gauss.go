package gauss

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/linsolve/matrix"
)

// Solve — Gaussian elimination with partial pivoting
//
// Algorithm Outline (for pivot step p = 0..n-1):
//  1. Pivot selection: scan rows p..n-1 in column p and pick the row with
//     the largest |A[i][p]|. The comparison is strict `>`, so the lowest
//     row index wins ties (stable scan order).
//  2. Singularity check: if the selected pivot magnitude is below
//     PivotTolerance, abort with ErrSingular. No partial solution is
//     reported.
//  3. Row swap: exchange the full rows of A (all n columns) and the
//     matching entries of b. A full logical swap keeps column access
//     simple and cache-sequential; no permutation index is maintained.
//  4. Elimination: for each row i below p compute
//     factor = A[i][p] / A[p][p], then update b[i] -= factor*b[p] and
//     A[i][j] -= factor*A[p][j] for j = p+1..n-1. A[i][p] is explicitly
//     written as 0 (the column is never read again; the write is for
//     clarity when inspecting the scratch matrix).
//
// Back substitution (i = n-1 down to 0): subtract A[i][j]*b[j] for j > i,
// then divide by the diagonal A[i][i]. The diagonal is nonzero by the pivot
// check, so no further zero guard is needed.
//
// Errors:
//   - ErrBadTolerance       — Options.PivotTolerance is not positive/finite.
//   - matrix.ErrNilMatrix   — a is nil.
//   - matrix.ErrNonSquare   — a is rectangular.
//   - matrix.ErrDimensionMismatch — len(b) != a.Rows().
//   - ErrSingular           — a near-zero pivot was selected at some step.
var (
	// ErrSingular indicates no unique solution exists: at some elimination
	// step every remaining candidate pivot was below the tolerance. The
	// condition is a property of the input, not transient; retrying with
	// the same system fails identically.
	ErrSingular = errors.New("gauss: singular or near-singular matrix")

	// ErrBadTolerance indicates Options.PivotTolerance is zero, negative,
	// NaN or infinite.
	ErrBadTolerance = errors.New("gauss: pivot tolerance must be positive and finite")
)

// opSolve tags wrapped errors for uniform reporting.
const opSolve = "Solve"

// solveErrorf wraps err with the Solve operation tag, preserving the
// sentinel for errors.Is.
func solveErrorf(err error) error {
	return fmt.Errorf("%s: %w", opSolve, err)
}

// Solve solves A·x = b in place for a square Dense a and right-hand side b.
//
// On success b has been overwritten with the solution x and a holds the
// upper-triangular remnant of elimination (scratch, undefined for further
// use). On failure the contents of both buffers carry no defined meaning
// beyond "partially eliminated"; re-solving consumed buffers is unspecified.
// With Options.PreserveMatrix the caller's a is left untouched (an internal
// clone is eliminated instead); b is consumed either way.
//
// A nil opts selects DefaultOptions. Validation happens before any mutation,
// so a boundary error never corrupts the inputs.
//
// Complexity: O(n³) time, O(1) extra memory (O(n²) with PreserveMatrix).
func Solve(a *matrix.Dense, b []float64, opts *Options) error {
	// Apply options or defaults.
	tol := DefaultPivotTolerance
	preserve := false
	if opts != nil {
		tol = opts.PivotTolerance
		preserve = opts.PreserveMatrix
	}
	if tol <= 0 || math.IsNaN(tol) || math.IsInf(tol, 0) {
		return solveErrorf(ErrBadTolerance)
	}

	// Boundary validation, before any mutation.
	if err := matrix.ValidateNotNil(a); err != nil {
		return solveErrorf(err)
	}
	if err := matrix.ValidateSquare(a); err != nil {
		return solveErrorf(err)
	}
	if err := matrix.ValidateVecLen(b, a.Rows()); err != nil {
		return solveErrorf(err)
	}

	if preserve {
		a = a.Clone() // eliminate the clone; caller keeps the original
	}

	if err := forwardEliminate(a, b, tol); err != nil {
		return err
	}
	backSubstitute(a, b)

	return nil
}

// forwardEliminate reduces (a, b) to an upper-triangular system using
// partial pivoting. Inputs are mutated in place. Returns ErrSingular
// (wrapped with the failing column) when no usable pivot remains.
func forwardEliminate(a *matrix.Dense, b []float64, tol float64) error {
	n := a.Rows()

	// Materialize row views once; every view aliases a contiguous physical
	// row, so SwapRows keeps them valid.
	rows := make([][]float64, n)
	for i := 0; i < n; i++ {
		rows[i], _ = a.Row(i) // index is in range by construction
	}

	for p := 0; p < n; p++ {
		// 1. Partial pivoting: largest |A[i][p]| for i in p..n-1,
		// strict `>` so the first maximum wins.
		maxRow := p
		maxAbs := math.Abs(rows[p][p])
		for i := p + 1; i < n; i++ {
			if v := math.Abs(rows[i][p]); v > maxAbs {
				maxAbs = v
				maxRow = i
			}
		}

		// 2. Near-zero pivot ⇒ singular or too ill-conditioned.
		if maxAbs < tol {
			return solveErrorf(fmt.Errorf("pivot column %d: %w", p, ErrSingular))
		}

		// 3. Full row swap in both a and b.
		if maxRow != p {
			_ = a.SwapRows(p, maxRow) // indices validated above
			b[p], b[maxRow] = b[maxRow], b[p]
		}

		// 4. Eliminate column p from every row below the pivot.
		pivRow := rows[p]
		piv := pivRow[p]
		for i := p + 1; i < n; i++ {
			row := rows[i]
			factor := row[p] / piv
			b[i] -= factor * b[p]
			for j := p + 1; j < n; j++ {
				row[j] -= factor * pivRow[j]
			}
			row[p] = 0 // algebraically zero; written for inspectability
		}
	}

	return nil
}

// backSubstitute solves the upper-triangular system left by
// forwardEliminate, overwriting b with x from the last variable up.
// Diagonal entries are nonzero by the pivot check.
func backSubstitute(a *matrix.Dense, b []float64) {
	n := a.Rows()
	for i := n - 1; i >= 0; i-- {
		row, _ := a.Row(i) // index is in range by construction
		sum := b[i]
		for j := i + 1; j < n; j++ {
			sum -= row[j] * b[j] // fold in already-solved tail
		}
		b[i] = sum / row[i]
	}
}
