package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/katalvlaran/linsolve/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeConfig drops a TOML config into a temp dir and returns its path.
func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "system.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	return path
}

// TestLoadSystem_Valid loads a well-formed 2x2 system.
func TestLoadSystem_Valid(t *testing.T) {
	path := writeConfig(t, `
[system]
rows = [[2.0, 1.0], [1.0, 3.0]]
rhs  = [3.0, 5.0]
`)

	a, b, err := loadSystem(path)
	require.NoError(t, err)
	assert.Equal(t, 2, a.Rows())
	assert.Equal(t, 2, a.Cols())
	assert.Equal(t, []float64{3, 5}, b)

	v, err := a.At(1, 0)
	require.NoError(t, err)
	assert.Equal(t, 1.0, v)
}

// TestLoadSystem_RaggedRows rejects rows of unequal length.
func TestLoadSystem_RaggedRows(t *testing.T) {
	path := writeConfig(t, `
[system]
rows = [[2.0, 1.0], [1.0]]
rhs  = [3.0, 5.0]
`)

	_, _, err := loadSystem(path)
	assert.ErrorIs(t, err, matrix.ErrRaggedRows)
}

// TestLoadSystem_RHSMismatch rejects a right-hand side whose length does not
// match the matrix row count.
func TestLoadSystem_RHSMismatch(t *testing.T) {
	path := writeConfig(t, `
[system]
rows = [[2.0, 1.0], [1.0, 3.0]]
rhs  = [3.0]
`)

	_, _, err := loadSystem(path)
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

// TestLoadSystem_MissingFile propagates the decode error.
func TestLoadSystem_MissingFile(t *testing.T) {
	_, _, err := loadSystem(filepath.Join(t.TempDir(), "nope.toml"))
	assert.Error(t, err)
}

// TestDemoSystem sanity-checks the built-in tridiagonal demo.
func TestDemoSystem(t *testing.T) {
	a, b := demoSystem()
	assert.Equal(t, demoSize, a.Rows())
	assert.Equal(t, demoSize, a.Cols())
	assert.Len(t, b, demoSize)

	v, err := a.At(4, 4)
	require.NoError(t, err)
	assert.Equal(t, 2.0, v)
	v, err = a.At(4, 3)
	require.NoError(t, err)
	assert.Equal(t, 1.0, v)
	v, err = a.At(4, 6)
	require.NoError(t, err)
	assert.Equal(t, 0.0, v)
	assert.Equal(t, 10.0, b[9])
}
