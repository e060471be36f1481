// SPDX-License-Identifier: MIT
// Package: linalg
//
// Purpose:
//   - Single source of truth for nil/size/shape checks.
//   - Return plain sentinels (tagged with the validator name) so call sites can
//     wrap them uniformly with their operation tag.
//
// Note:
//   - Composite validators run in a fixed sequence: NotNil → Shape.
//   - All checks are O(1) and allocate only on failure.

package linalg

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateVector ensures v is non-nil.
func ValidateVector(v *Vector) error {
	if v == nil {
		return validatorErrorf("ValidateVector", ErrNilVector)
	}

	return nil
}

// ValidateMatrix ensures m is non-nil.
func ValidateMatrix(m *Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateMatrix", ErrNilMatrix)
	}

	return nil
}

// ValidateSameSize – Composite: NotNil(a) → NotNil(b) → a.Size() == b.Size().
func ValidateSameSize(a, b *Vector) error {
	if a == nil || b == nil {
		return validatorErrorf("ValidateSameSize", ErrNilVector)
	}
	if a.Size() != b.Size() {
		return validatorErrorf("ValidateSameSize",
			fmt.Errorf("%d != %d: %w", a.Size(), b.Size(), ErrDimensionMismatch))
	}

	return nil
}

// ValidateVecSize ensures v is non-nil and has exactly n elements.
func ValidateVecSize(v *Vector, n int) error {
	if v == nil {
		return validatorErrorf("ValidateVecSize", ErrNilVector)
	}
	if v.Size() != n {
		return validatorErrorf("ValidateVecSize",
			fmt.Errorf("size %d, want %d: %w", v.Size(), n, ErrDimensionMismatch))
	}

	return nil
}

// ValidateSameShape – Composite: NotNil(a) → NotNil(b) → identical rows and cols.
func ValidateSameShape(a, b *Matrix) error {
	if a == nil || b == nil {
		return validatorErrorf("ValidateSameShape", ErrNilMatrix)
	}
	if a.r != b.r || a.c != b.c {
		return validatorErrorf("ValidateSameShape",
			fmt.Errorf("%dx%d vs %dx%d: %w", a.r, a.c, b.r, b.c, ErrDimensionMismatch))
	}

	return nil
}

// ValidateSquare ensures m is non-nil and Rows == Cols.
func ValidateSquare(m *Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateSquare", ErrNilMatrix)
	}
	if m.r != m.c {
		return validatorErrorf("ValidateSquare",
			fmt.Errorf("%dx%d: %w", m.r, m.c, ErrDimensionMismatch))
	}

	return nil
}

// ValidateMulCompatible ensures a.Cols == b.Rows for the matrix product a·b.
func ValidateMulCompatible(a, b *Matrix) error {
	if a == nil || b == nil {
		return validatorErrorf("ValidateMulCompatible", ErrNilMatrix)
	}
	if a.c != b.r {
		return validatorErrorf("ValidateMulCompatible",
			fmt.Errorf("%dx%d · %dx%d: %w", a.r, a.c, b.r, b.c, ErrDimensionMismatch))
	}

	return nil
}

// ValidateShape ensures m is non-nil and exactly rows×cols. A wrong shape is
// reported as ErrShape (not ErrDimensionMismatch): it is a precondition of the
// operation, not an incompatibility between two operands.
func ValidateShape(m *Matrix, rows, cols int) error {
	if m == nil {
		return validatorErrorf("ValidateShape", ErrNilMatrix)
	}
	if m.r != rows || m.c != cols {
		return validatorErrorf("ValidateShape",
			fmt.Errorf("%dx%d, want %dx%d: %w", m.r, m.c, rows, cols, ErrShape))
	}

	return nil
}
