package gauss_test

import (
	"testing"

	"github.com/katalvlaran/linsolve/gauss"
	"github.com/katalvlaran/linsolve/matrix"
)

// benchmarkSolve builds the n×n tridiagonal reference system once and solves
// a fresh copy per iteration (the solver consumes its buffers, so the clone
// is part of every realistic call).
func benchmarkSolve(b *testing.B, n int) {
	a, err := matrix.NewDense(n, n)
	if err != nil {
		b.Fatalf("NewDense failed: %v", err)
	}
	rhs := make([]float64, n)
	for i := 0; i < n; i++ {
		_ = a.Set(i, i, 2)
		if i > 0 {
			_ = a.Set(i, i-1, 1)
		}
		if i < n-1 {
			_ = a.Set(i, i+1, 1)
		}
		rhs[i] = float64(i + 1)
	}
	opts := gauss.DefaultOptions()
	vec := make([]float64, n)

	b.ResetTimer() // ignore setup time
	for i := 0; i < b.N; i++ {
		aa := a.Clone()
		copy(vec, rhs)
		if err = gauss.Solve(aa, vec, &opts); err != nil {
			b.Fatalf("Solve failed: %v", err)
		}
	}
}

// BenchmarkSolve_N10 benchmarks the reference 10×10 system.
func BenchmarkSolve_N10(b *testing.B) { benchmarkSolve(b, 10) }

// BenchmarkSolve_N50 benchmarks a medium 50×50 system.
func BenchmarkSolve_N50(b *testing.B) { benchmarkSolve(b, 50) }

// BenchmarkSolve_N100 benchmarks a larger 100×100 system.
func BenchmarkSolve_N100(b *testing.B) { benchmarkSolve(b, 100) }
