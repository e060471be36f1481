// SPDX-License-Identifier: MIT

package transform_test

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/zetaml/linalg"
)

const deltaTol = 1e-9

// requireMat4 asserts that m is 4×4 and matches want elementwise.
// mgl64 stores column-major, so both sides are read through (row, col).
func requireMat4(t *testing.T, want mgl64.Mat4, m *linalg.Matrix) {
	t.Helper()
	require.Equal(t, 4, m.Rows(), "rows of %s", m)
	require.Equal(t, 4, m.Cols(), "cols of %s", m)
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			got, err := m.At(r, c)
			require.NoError(t, err)
			require.InDelta(t, want.At(r, c), got, deltaTol, "(%d,%d) of %s", r, c, m)
		}
	}
}

// requireRows asserts m has exactly the given rows within deltaTol.
func requireRows(t *testing.T, want [][]float64, m *linalg.Matrix) {
	t.Helper()
	got := m.RawRows()
	require.Len(t, got, len(want), "rows of %s", m)
	for i := range want {
		require.InDeltaSlice(t, want[i], got[i], deltaTol, "row %d of %s", i, m)
	}
}

// mustAt reads one element or fails the test.
func mustAt(t *testing.T, m *linalg.Matrix, r, c int) float64 {
	t.Helper()
	v, err := m.At(r, c)
	require.NoError(t, err)

	return v
}

// identity returns a fresh 4×4 identity.
func identity(t *testing.T) *linalg.Matrix {
	t.Helper()
	m, err := linalg.Identity(4, 4)
	require.NoError(t, err)

	return m
}

// vec3 converts an mgl64 vector to a linalg vector.
func vec3(v mgl64.Vec3) *linalg.Vector { return linalg.VectorOf(v[0], v[1], v[2]) }
