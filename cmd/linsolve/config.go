package main

import (
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/katalvlaran/linsolve/matrix"
)

// fileConfig mirrors the on-disk TOML layout:
//
//	[system]
//	rows = [[2.0, 1.0], [1.0, 3.0]]
//	rhs  = [3.0, 5.0]
type fileConfig struct {
	System systemConfig `toml:"system"`
}

type systemConfig struct {
	Rows [][]float64 `toml:"rows"`
	RHS  []float64   `toml:"rhs"`
}

// loadSystem reads a coefficient matrix and right-hand side from a TOML
// file. Shape problems (ragged rows, rhs length vs. matrix rows) surface
// here, before the solver runs.
func loadSystem(path string) (*matrix.Dense, []float64, error) {
	var raw fileConfig
	if _, err := toml.DecodeFile(path, &raw); err != nil {
		return nil, nil, fmt.Errorf("load system config: %w", err)
	}

	a, err := matrix.NewDenseFromRows(raw.System.Rows)
	if err != nil {
		return nil, nil, fmt.Errorf("system.rows: %w", err)
	}
	if len(raw.System.RHS) != a.Rows() {
		return nil, nil, fmt.Errorf("system.rhs has %d entries, matrix has %d rows: %w",
			len(raw.System.RHS), a.Rows(), matrix.ErrDimensionMismatch)
	}

	return a, raw.System.RHS, nil
}

// demoSize is the dimension of the built-in demonstration system.
const demoSize = 10

// demoSystem returns the built-in tridiagonal system: 2 on the diagonal,
// 1 on both adjacent off-diagonals, b = [1..10]. Diagonally dominant, so it
// always has a unique solution.
func demoSystem() (*matrix.Dense, []float64) {
	a, err := matrix.NewDense(demoSize, demoSize)
	if err != nil {
		panic(err) // demoSize is a positive constant
	}
	b := make([]float64, demoSize)
	for i := 0; i < demoSize; i++ {
		_ = a.Set(i, i, 2)
		if i > 0 {
			_ = a.Set(i, i-1, 1)
		}
		if i < demoSize-1 {
			_ = a.Set(i, i+1, 1)
		}
		b[i] = float64(i + 1)
	}

	return a, b
}
