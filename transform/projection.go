// SPDX-License-Identifier: MIT

package transform

import (
	"math"

	"github.com/katalvlaran/zetaml/linalg"
)

// Z-axis sign of the two coordinate conventions.
const (
	signLH = 1.0
	signRH = -1.0
)

// ---------- orthographic ----------

// OrthoLH returns a left-handed orthographic projection for the box
// [left, right] × [bottom, top] × [near, far].
func OrthoLH(left, right, bottom, top, near, far float64) *linalg.Matrix {
	m := identity4()
	updateOrtho(m, left, right, bottom, top, near, far, signLH)

	return m
}

// OrthoRH returns a right-handed orthographic projection (Z flipped).
func OrthoRH(left, right, bottom, top, near, far float64) *linalg.Matrix {
	m := identity4()
	updateOrtho(m, left, right, bottom, top, near, far, signRH)

	return m
}

// UpdateOrthoLH overwrites the scale and translation entries of m with a
// left-handed orthographic projection. Other entries are kept.
// Returns linalg.ErrShape (m unchanged) unless m is 4×4.
func UpdateOrthoLH(m *linalg.Matrix, left, right, bottom, top, near, far float64) error {
	if err := validate4x4(m); err != nil {
		return transformErrorf(opUpdateOrtho, err)
	}
	updateOrtho(m, left, right, bottom, top, near, far, signLH)

	return nil
}

// UpdateOrthoRH is the right-handed form of UpdateOrthoLH.
func UpdateOrthoRH(m *linalg.Matrix, left, right, bottom, top, near, far float64) error {
	if err := validate4x4(m); err != nil {
		return transformErrorf(opUpdateOrtho, err)
	}
	updateOrtho(m, left, right, bottom, top, near, far, signRH)

	return nil
}

func updateOrtho(m *linalg.Matrix, left, right, bottom, top, near, far, zSign float64) {
	rl, tb, fn := right-left, top-bottom, far-near
	assign(m,
		cell{0, 0, 2 / rl},
		cell{1, 1, 2 / tb},
		cell{2, 2, zSign * 2 / fn},
		cell{0, 3, -(right + left) / rl},
		cell{1, 3, -(top + bottom) / tb},
		cell{2, 3, -(far + near) / fn},
	)
}

// ---------- perspective ----------

// PerspectiveLH returns a left-handed perspective projection.
// fovy is the vertical field of view in radians; aspect is width/height.
// Entry [3][3] is 0, so the bottom row is (0, 0, 1, 0) and w carries z for
// the perspective divide.
func PerspectiveLH(near, far, fovy, aspect float64) *linalg.Matrix {
	m := identity4()
	updatePerspective(m, near, far, fovy, aspect, signLH)
	assign(m, cell{3, 3, 0})

	return m
}

// PerspectiveRH returns a right-handed perspective projection.
func PerspectiveRH(near, far, fovy, aspect float64) *linalg.Matrix {
	m := identity4()
	updatePerspective(m, near, far, fovy, aspect, signRH)
	assign(m, cell{3, 3, 0})

	return m
}

// UpdatePerspectiveLH overwrites the projection entries of m with a
// left-handed perspective projection. Only [0][0], [1][1], [2][2], [3][2] and
// [2][3] are written; every other entry of m, [3][3] included, is kept.
// Returns linalg.ErrShape unless m is 4×4.
func UpdatePerspectiveLH(m *linalg.Matrix, near, far, fovy, aspect float64) error {
	if err := validate4x4(m); err != nil {
		return transformErrorf(opUpdatePerspective, err)
	}
	updatePerspective(m, near, far, fovy, aspect, signLH)

	return nil
}

// UpdatePerspectiveRH is the right-handed form of UpdatePerspectiveLH.
func UpdatePerspectiveRH(m *linalg.Matrix, near, far, fovy, aspect float64) error {
	if err := validate4x4(m); err != nil {
		return transformErrorf(opUpdatePerspective, err)
	}
	updatePerspective(m, near, far, fovy, aspect, signRH)

	return nil
}

// updatePerspective writes the five projection terms.
func updatePerspective(m *linalg.Matrix, near, far, fovy, aspect, zSign float64) {
	t := math.Tan(fovy / 2)
	fn := far - near
	assign(m,
		cell{0, 0, 1 / (aspect * t)},
		cell{1, 1, 1 / t},
		cell{2, 2, zSign * (near + far) / fn},
		cell{3, 2, zSign},
		cell{2, 3, -(2 * far * near) / fn},
	)
}
