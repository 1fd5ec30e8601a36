// Package linsolve is a compact toolkit for solving dense square linear
// systems A·x = b with direct methods.
//
// 🚀 What is linsolve?
//
//	A small, deterministic library built around one well-tested kernel:
//	Gaussian elimination with partial pivoting plus back substitution.
//	It favors clarity and reproducibility over exotic optimizations:
//		• Row-major dense storage with contiguous, cache-friendly rows
//		• Strict boundary validation: sentinel errors, never panics
//		• Tolerance-gated singularity detection (no fabricated solutions)
//
// Under the hood, everything is organized under two subpackages and a demo:
//
//	matrix/       — Dense row-major matrix primitives, validators, MatVec
//	gauss/        — the partial-pivoting elimination solver
//	cmd/linsolve/ — demo CLI: load a system (TOML or built-in), solve, print
//
// Quick example:
//
//	a, _ := matrix.NewDenseFromRows([][]float64{{2, 1}, {1, 3}})
//	b := []float64{3, 5}
//	opts := gauss.DefaultOptions()
//	if err := gauss.Solve(a, b, &opts); err != nil {
//	    // errors.Is(err, gauss.ErrSingular) ⇒ no unique solution
//	}
//	// b now holds x
//
// See gauss/doc.go for algorithmic details and complexity notes.
package linsolve
