// SPDX-License-Identifier: MIT

package transform

import "github.com/katalvlaran/zetaml/linalg"

// Homogeneous matrices are always 4×4.
const dim = 4

// identity4 returns a fresh 4×4 identity.
func identity4() *linalg.Matrix {
	m, _ := linalg.Identity(dim, dim) // fixed, valid shape

	return m
}

// validate4x4 reports linalg.ErrShape unless m is exactly 4×4.
func validate4x4(m *linalg.Matrix) error {
	return linalg.ValidateShape(m, dim, dim)
}

// cell is one (row, col) assignment into a validated 4×4 target.
type cell struct {
	r, c int
	v    float64
}

// assign writes every cell into m. m must already be validated as 4×4, so the
// bounds-checked Set cannot fail.
func assign(m *linalg.Matrix, cells ...cell) {
	for _, e := range cells {
		_ = m.Set(e.r, e.c, e.v)
	}
}

// basis returns the 4×4 matrix whose upper-left 3×3 block is b and whose
// column 3 is (t[0], t[1], t[2], 1).
func basis(b [3][3]float64, t [3]float64) *linalg.Matrix {
	m, _ := linalg.MatrixFromRows(
		[]float64{b[0][0], b[0][1], b[0][2], t[0]},
		[]float64{b[1][0], b[1][1], b[1][2], t[1]},
		[]float64{b[2][0], b[2][1], b[2][2], t[2]},
		[]float64{0, 0, 0, 1},
	)

	return m
}

// components3 validates that v has three elements and unpacks them.
func components3(v *linalg.Vector) ([3]float64, error) {
	if err := linalg.ValidateVecSize(v, 3); err != nil {
		return [3]float64{}, err
	}

	return [3]float64{v.X(), v.Y(), v.Z()}, nil
}
