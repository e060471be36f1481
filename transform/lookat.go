// SPDX-License-Identifier: MIT

package transform

import "github.com/katalvlaran/zetaml/linalg"

// LookAtLH returns a left-handed view matrix for a camera at pos looking at
// focus, with up giving the world's up direction.
func LookAtLH(pos, focus, up *linalg.Vector) (*linalg.Matrix, error) {
	m := identity4()
	if err := updateLookAt(m, pos, focus, up, signLH); err != nil {
		return linalg.NullMatrix(), transformErrorf(opLookAt, err)
	}

	return m, nil
}

// LookAtRH returns a right-handed view matrix (the camera looks down -Z).
func LookAtRH(pos, focus, up *linalg.Vector) (*linalg.Matrix, error) {
	m := identity4()
	if err := updateLookAt(m, pos, focus, up, signRH); err != nil {
		return linalg.NullMatrix(), transformErrorf(opLookAt, err)
	}

	return m, nil
}

// UpdateLookAtLH overwrites all of m with the left-handed view matrix.
// m must be 4×4 (linalg.ErrShape) and pos, focus, up must have size 3
// (linalg.ErrDimensionMismatch); m is unchanged on error.
func UpdateLookAtLH(m *linalg.Matrix, pos, focus, up *linalg.Vector) error {
	return updateLookAt(m, pos, focus, up, signLH)
}

// UpdateLookAtRH is the right-handed form of UpdateLookAtLH.
func UpdateLookAtRH(m *linalg.Matrix, pos, focus, up *linalg.Vector) error {
	return updateLookAt(m, pos, focus, up, signRH)
}

// updateLookAt builds the camera basis
//
//	dir   = normalize(focus − pos)
//	right = normalize(dir × up)
//	relUp = right × dir
//
// and writes rows right, relUp, zSign·dir with column 3 holding
// −dot(row_k, pos), so the camera position maps to the origin. Row 3 is
// (0, 0, 0, 1).
func updateLookAt(m *linalg.Matrix, pos, focus, up *linalg.Vector, zSign float64) error {
	if err := validate4x4(m); err != nil {
		return transformErrorf(opUpdateLookAt, err)
	}
	for _, v := range []*linalg.Vector{pos, focus, up} {
		if err := linalg.ValidateVecSize(v, 3); err != nil {
			return transformErrorf(opUpdateLookAt, err)
		}
	}

	// sizes are validated above, so none of these can fail
	dir, _ := linalg.SubVec(focus, pos)
	dir.Normalize()
	right, _ := linalg.Cross(dir, up)
	right.Normalize()
	relUp, _ := linalg.Cross(right, dir)
	fwd := linalg.MulVecScalar(dir, zSign)

	for k, axis := range []*linalg.Vector{right, relUp, fwd} {
		d, _ := linalg.Dot(axis, pos)
		_ = m.SetRow(k, linalg.VectorOf(axis.X(), axis.Y(), axis.Z(), -d))
	}
	_ = m.SetRow(3, linalg.VectorOf(0, 0, 0, 1))

	return nil
}
