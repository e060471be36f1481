// SPDX-License-Identifier: MIT
// Package linalg_test contains shared fixtures.
//
// Purpose:
//   - Small deterministic constructors that fail the test instead of returning errors.
//   - A seeded RNG so property-style tests are reproducible.

package linalg_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/zetaml/linalg"
)

// deltaTol is the absolute tolerance used for floating comparisons in tests.
const deltaTol = 1e-9

// mustRows builds a matrix from literal rows or fails the test.
func mustRows(t *testing.T, rows ...[]float64) *linalg.Matrix {
	t.Helper()
	m, err := linalg.MatrixFromRows(rows...)
	require.NoError(t, err)

	return m
}

// mustIdentity builds an n×n identity or fails the test.
func mustIdentity(t *testing.T, n int) *linalg.Matrix {
	t.Helper()
	m, err := linalg.Identity(n, n)
	require.NoError(t, err)

	return m
}

// requireVec asserts v has exactly the expected elements within deltaTol.
func requireVec(t *testing.T, want []float64, v *linalg.Vector) {
	t.Helper()
	require.Equal(t, len(want), v.Size(), "size of %s", v)
	require.InDeltaSlice(t, want, v.Elements(), deltaTol, "elements of %s", v)
}

// requireMat asserts m has the expected rows within deltaTol.
func requireMat(t *testing.T, want [][]float64, m *linalg.Matrix) {
	t.Helper()
	got := m.RawRows()
	require.Len(t, got, len(want), "rows of %s", m)
	for i := range want {
		require.InDeltaSlice(t, want[i], got[i], deltaTol, "row %d of %s", i, m)
	}
}

// newRand returns a deterministic RNG for property tests.
func newRand() *rand.Rand { return rand.New(rand.NewSource(42)) }

// randVec returns a vector of n values in [-10, 10).
func randVec(r *rand.Rand, n int) *linalg.Vector {
	vals := make([]float64, n)
	for i := range vals {
		vals[i] = r.Float64()*20 - 10
	}

	return linalg.VectorOf(vals...)
}

// randMat returns a rows×cols matrix of values in [-10, 10).
func randMat(t *testing.T, r *rand.Rand, rows, cols int) *linalg.Matrix {
	t.Helper()
	m, err := linalg.NewMatrix(rows, cols)
	require.NoError(t, err)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			require.NoError(t, m.Set(i, j, r.Float64()*20-10))
		}
	}

	return m
}
