// SPDX-License-Identifier: MIT
// Package transform - affine transforms (translate, rotate, scale).
//
// Purpose:
//   - Compose a translation, an axis-angle rotation or a per-axis scale onto an
//     existing 4×4 matrix, relative to that matrix's current basis.
//
// Implementation:
//   - Each operation builds the elementary 4×4 matrix E and replaces m with
//     m·E via linalg's Matrix.Mul, so the existing columns are the basis that
//     the new transform is expressed in.
//   - Translation: E = I with column 3 = (v, 1), giving
//     col3' = Σ_{i<3} col_i·v_i + col3.
//   - Rotation: E holds the Rodrigues matrix R in its upper-left block, giving
//     col_i' = Σ_j col_j·R[j][i] for i < 3; column 3 is untouched.
//   - Scale multiplies columns 0..2 in place, which equals m·diag(v0, v1, v2, 1).
//
// Each operation has three forms: the verb mutates m, the past participle
// returns a transformed copy, and *Identity applies it to a fresh identity.

package transform

import (
	"math"

	"github.com/katalvlaran/zetaml/linalg"
)

// ---------- translate ----------

// Translate composes a translation by v (size 3) onto m.
// A zero v is a no-op. Errors: linalg.ErrShape when m is not 4×4,
// linalg.ErrDimensionMismatch when v.Size() != 3; m is unchanged on error.
func Translate(m *linalg.Matrix, v *linalg.Vector) error {
	if err := validate4x4(m); err != nil {
		return transformErrorf(opTranslate, err)
	}
	t, err := components3(v)
	if err != nil {
		return transformErrorf(opTranslate, err)
	}
	if v.IsZero() {
		return nil
	}
	if err = m.Mul(basis([3][3]float64{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}, t)); err != nil {
		return transformErrorf(opTranslate, err)
	}

	return nil
}

// Translated returns a translated copy of m; m itself is not modified.
// On error the copy is returned untranslated.
func Translated(m *linalg.Matrix, v *linalg.Vector) (*linalg.Matrix, error) {
	if err := validate4x4(m); err != nil {
		return m.Clone(), transformErrorf(opTranslated, err)
	}
	out := m.Clone()
	if err := Translate(out, v); err != nil {
		return m.Clone(), transformErrorf(opTranslated, err)
	}

	return out, nil
}

// TranslateIdentity returns the pure translation matrix for v.
func TranslateIdentity(v *linalg.Vector) (*linalg.Matrix, error) {
	out := identity4()
	if err := Translate(out, v); err != nil {
		return linalg.NullMatrix(), transformErrorf(opTranslateIdentity, err)
	}

	return out, nil
}

// ---------- rotate ----------

// rodrigues returns the rotation matrix for angle (radians) about the unit
// axis (x, y, z):
//
//	[c+t·x²     t·x·y−s·z  t·x·z+s·y]
//	[t·x·y+s·z  c+t·y²     t·y·z−s·x]
//	[t·x·z−s·y  t·y·z+s·x  c+t·z²   ]
//
// with c = cos(angle), s = sin(angle) and t = 1 − c.
func rodrigues(angle, x, y, z float64) [3][3]float64 {
	s, c := math.Sincos(angle)
	t := 1 - c

	return [3][3]float64{
		{c + t*x*x, t*x*y - s*z, t*x*z + s*y},
		{t*x*y + s*z, c + t*y*y, t*y*z - s*x},
		{t*x*z - s*y, t*y*z + s*x, c + t*z*z},
	}
}

// Rotate composes a rotation of angle radians about the axis (x, y, z) onto m.
// The axis need not be unit length; it is normalised first. A zero angle or
// a zero axis is a no-op.
//
// With m = I the result is the standard counter-clockwise (right-hand rule)
// rotation: Rotate(I, π/2, 0, 0, 1) maps (1, 0, 0) to (0, 1, 0).
//
// Errors: linalg.ErrShape when m is not 4×4 (m unchanged).
func Rotate(m *linalg.Matrix, angle, x, y, z float64) error {
	if err := validate4x4(m); err != nil {
		return transformErrorf(opRotate, err)
	}
	if angle == 0 || (x == 0 && y == 0 && z == 0) {
		return nil
	}
	n := math.Sqrt(x*x + y*y + z*z)
	r := rodrigues(angle, x/n, y/n, z/n)
	if err := m.Mul(basis(r, [3]float64{})); err != nil {
		return transformErrorf(opRotate, err)
	}

	return nil
}

// Rotated returns a rotated copy of m; m itself is not modified.
// On error the copy is returned unrotated.
func Rotated(m *linalg.Matrix, angle, x, y, z float64) (*linalg.Matrix, error) {
	if err := validate4x4(m); err != nil {
		return m.Clone(), transformErrorf(opRotated, err)
	}
	out := m.Clone()
	if err := Rotate(out, angle, x, y, z); err != nil {
		return m.Clone(), transformErrorf(opRotated, err)
	}

	return out, nil
}

// RotateIdentity returns the pure rotation matrix for angle about (x, y, z).
func RotateIdentity(angle, x, y, z float64) *linalg.Matrix {
	out := identity4()
	_ = Rotate(out, angle, x, y, z) // out is 4×4 by construction

	return out
}

// ---------- scale ----------

// Scale multiplies columns 0..2 of m by v[0..2]; column 3 is untouched.
// A zero v is a no-op (it would collapse the basis).
// Errors: linalg.ErrShape when m is not 4×4, linalg.ErrDimensionMismatch
// when v.Size() != 3; m is unchanged on error.
func Scale(m *linalg.Matrix, v *linalg.Vector) error {
	if err := validate4x4(m); err != nil {
		return transformErrorf(opScale, err)
	}
	s, err := components3(v)
	if err != nil {
		return transformErrorf(opScale, err)
	}
	if v.IsZero() {
		return nil
	}
	// Columns are scaled directly rather than through m·diag(v, 1), so an
	// infinite element never leaks into its neighbours as 0·Inf = NaN.
	var col *linalg.Vector
	for i := 0; i < 3; i++ {
		if col, err = m.Col(i); err != nil {
			return transformErrorf(opScale, err)
		}
		col.MulScalar(s[i])
		if err = m.SetCol(i, col); err != nil {
			return transformErrorf(opScale, err)
		}
	}

	return nil
}

// Scaled returns a scaled copy of m; m itself is not modified.
// On error the copy is returned unscaled.
func Scaled(m *linalg.Matrix, v *linalg.Vector) (*linalg.Matrix, error) {
	if err := validate4x4(m); err != nil {
		return m.Clone(), transformErrorf(opScaled, err)
	}
	out := m.Clone()
	if err := Scale(out, v); err != nil {
		return m.Clone(), transformErrorf(opScaled, err)
	}

	return out, nil
}

// ScaleIdentity returns the pure scale matrix diag(v0, v1, v2, 1).
func ScaleIdentity(v *linalg.Vector) (*linalg.Matrix, error) {
	out := identity4()
	if err := Scale(out, v); err != nil {
		return linalg.NullMatrix(), transformErrorf(opScaleIdentity, err)
	}

	return out, nil
}
