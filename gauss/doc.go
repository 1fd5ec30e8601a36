// Package gauss solves dense square linear systems A·x = b by Gaussian
// elimination with partial pivoting, followed by back substitution.
//
// 🚀 What is it?
//
//	A direct solver for small-to-medium dense systems. At every elimination
//	step it picks the remaining row with the largest-magnitude entry in the
//	current column as the divisor row (partial pivoting), which keeps the
//	method numerically stable on matrices a naive elimination would mangle.
//
// ✨ Key properties:
//   - in-place by default: b becomes the solution x, A becomes scratch
//   - Options.PreserveMatrix clones A internally (b is still consumed)
//   - tolerance-gated singularity detection: a pivot below PivotTolerance
//     aborts with ErrSingular; no fabricated solution is ever returned
//   - deterministic: fixed scan orders, strict `>` pivot comparison
//     (lowest row index wins ties), no randomness, no global state
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/linsolve/gauss"
//
//	a, _ := matrix.NewDenseFromRows([][]float64{
//	    {2, 1},
//	    {1, 3},
//	})
//	b := []float64{3, 5}
//
//	opts := gauss.DefaultOptions()
//	if err := gauss.Solve(a, b, &opts); err != nil {
//	    // errors.Is(err, gauss.ErrSingular) ⇒ no unique solution
//	}
//	// b == x
//
// Concurrency: Solve touches nothing but the two buffers it is given, so
// concurrent calls on distinct matrices/vectors need no coordination.
// Sharing one matrix or vector across concurrent calls is undefined; the
// kernel takes no locks.
//
// Performance:
//
//   - Time:   O(n³) elimination + O(n²) back substitution
//   - Memory: O(1) extra (O(n²) when PreserveMatrix clones A)
//
// See examples in example_test.go.
package gauss
