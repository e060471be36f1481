// SPDX-License-Identifier: MIT
// Package linalg - VectorOps.
//
// Purpose:
//   - Elementwise and scalar arithmetic, in place (methods) and copying (functions).
//   - Geometric operations: Dot, Cross, Magnitude, Normalize.
//   - Elementwise comparisons against vectors and broadcast scalars.
//   - The vector·matrix product MulVecMat.
//
// Failure policy:
//   - Size checks run before any write. In-place methods leave the receiver
//     unchanged on error; copying functions return NullVector() with the error.

package linalg

import (
	"fmt"
	"math"
)

// ---------- elementwise, in place ----------

// vecInPlace validates equal sizes then applies op into v.
func (v *Vector) vecInPlace(o *Vector, op binaryOp, tag string) error {
	if err := ValidateSameSize(v, o); err != nil {
		return linalgErrorf(tag, err)
	}
	ewApply(v.data, v.data, o.data, op)

	return nil
}

// Add sets v[i] += o[i]. Sizes must match (ErrDimensionMismatch).
func (v *Vector) Add(o *Vector) error { return v.vecInPlace(o, opAddF, opVecAdd) }

// Sub sets v[i] -= o[i]. Sizes must match (ErrDimensionMismatch).
func (v *Vector) Sub(o *Vector) error { return v.vecInPlace(o, opSubF, opVecSub) }

// Mul sets v[i] *= o[i]. Sizes must match (ErrDimensionMismatch).
func (v *Vector) Mul(o *Vector) error { return v.vecInPlace(o, opMulF, opVecMul) }

// Div sets v[i] /= o[i]. Sizes must match (ErrDimensionMismatch).
// Division by zero elements follows IEEE-754 (±Inf/NaN).
func (v *Vector) Div(o *Vector) error { return v.vecInPlace(o, opDivF, opVecDiv) }

// ---------- elementwise, copying ----------

// vecBinary validates equal sizes then returns op(a, b) in a fresh vector.
func vecBinary(a, b *Vector, op binaryOp, tag string) (*Vector, error) {
	if err := ValidateSameSize(a, b); err != nil {
		return NullVector(), linalgErrorf(tag, err)
	}
	out := newVec(len(a.data))
	ewApply(out.data, a.data, b.data, op)

	return out, nil
}

// AddVec returns a + b.
func AddVec(a, b *Vector) (*Vector, error) { return vecBinary(a, b, opAddF, opAddVec) }

// SubVec returns a - b.
func SubVec(a, b *Vector) (*Vector, error) { return vecBinary(a, b, opSubF, opSubVec) }

// MulVec returns the elementwise product a ⊙ b.
func MulVec(a, b *Vector) (*Vector, error) { return vecBinary(a, b, opMulF, opMulVec) }

// DivVec returns the elementwise quotient a ⊘ b.
func DivVec(a, b *Vector) (*Vector, error) { return vecBinary(a, b, opDivF, opDivVec) }

// ---------- scalar ----------

// AddScalar adds s to every element of v.
func (v *Vector) AddScalar(s float64) { v.scalarInPlace(s, opAddF) }

// SubScalar subtracts s from every element of v.
func (v *Vector) SubScalar(s float64) { v.scalarInPlace(s, opSubF) }

// MulScalar multiplies every element of v by s.
func (v *Vector) MulScalar(s float64) { v.scalarInPlace(s, opMulF) }

// DivScalar divides every element of v by s.
func (v *Vector) DivScalar(s float64) { v.scalarInPlace(s, opDivF) }

func (v *Vector) scalarInPlace(s float64, op binaryOp) {
	if v == nil {
		return
	}
	ewApplyScalar(v.data, v.data, s, op)
}

// vecScalar returns op(v, s) in a fresh vector; nil input yields the null vector.
func vecScalar(v *Vector, s float64, op binaryOp) *Vector {
	out := v.Clone()
	ewApplyScalar(out.data, out.data, s, op)

	return out
}

// AddVecScalar returns v + s (broadcast).
func AddVecScalar(v *Vector, s float64) *Vector { return vecScalar(v, s, opAddF) }

// SubVecScalar returns v - s (broadcast).
func SubVecScalar(v *Vector, s float64) *Vector { return vecScalar(v, s, opSubF) }

// MulVecScalar returns v * s.
func MulVecScalar(v *Vector, s float64) *Vector { return vecScalar(v, s, opMulF) }

// DivVecScalar returns v / s.
func DivVecScalar(v *Vector, s float64) *Vector { return vecScalar(v, s, opDivF) }

// Negated returns -v.
func (v *Vector) Negated() *Vector { return MulVecScalar(v, -1) }

// ---------- geometry ----------

// Dot returns Σ a[i]*b[i].
//
// On a size mismatch Dot returns 0 together with ErrDimensionMismatch. A zero
// result alone therefore does not prove orthogonality; always check the error.
func Dot(a, b *Vector) (float64, error) {
	if err := ValidateSameSize(a, b); err != nil {
		return 0, linalgErrorf(opDot, err)
	}

	return dotKernel(a.data, b.data), nil
}

// Cross returns the 3D cross product a × b.
// Both operands must have size 3; otherwise the null vector and ErrDimensionMismatch.
func Cross(a, b *Vector) (*Vector, error) {
	if err := ValidateVecSize(a, 3); err != nil {
		return NullVector(), linalgErrorf(opCross, err)
	}
	if err := ValidateVecSize(b, 3); err != nil {
		return NullVector(), linalgErrorf(opCross, err)
	}
	x, y := a.data, b.data

	return VectorOf(
		x[1]*y[2]-x[2]*y[1],
		x[2]*y[0]-x[0]*y[2],
		x[0]*y[1]-x[1]*y[0],
	), nil
}

// Magnitude returns the Euclidean norm sqrt(Σ v[i]²). It is never negative:
// the accumulator starts at +0, so even all-(-0) input yields +0.
// NaN elements propagate.
func (v *Vector) Magnitude() float64 {
	if v == nil {
		return 0
	}

	return math.Sqrt(dotKernel(v.data, v.data))
}

// Normalize divides every element by v.Magnitude().
//
// A zero-magnitude vector is NOT special-cased: each element becomes 0/0 = NaN,
// following IEEE-754. Callers that may pass degenerate input should test
// IsZero first.
func (v *Vector) Normalize() {
	v.DivScalar(v.Magnitude())
}

// Normalized returns a normalised copy of v; see Normalize for zero input.
func (v *Vector) Normalized() *Vector {
	out := v.Clone()
	out.Normalize()

	return out
}

// IsZero reports whether every element equals 0 (true for the null vector).
func (v *Vector) IsZero() bool { return v.EqualsScalar(0) }

// ---------- comparisons ----------

// vecCompare validates equal sizes and evaluates pred elementwise.
func (v *Vector) vecCompare(o *Vector, pred predicate) (bool, error) {
	if err := ValidateSameSize(v, o); err != nil {
		return false, linalgErrorf(opVecCompare, err)
	}

	return ewAll(v.data, o.data, pred), nil
}

// Equals reports whether v[i] == o[i] for all i.
func (v *Vector) Equals(o *Vector) (bool, error) { return v.vecCompare(o, cmpEq) }

// GT reports whether v[i] > o[i] for all i.
func (v *Vector) GT(o *Vector) (bool, error) { return v.vecCompare(o, cmpGt) }

// GTE reports whether v[i] >= o[i] for all i.
func (v *Vector) GTE(o *Vector) (bool, error) { return v.vecCompare(o, cmpGte) }

// LT reports whether v[i] < o[i] for all i.
func (v *Vector) LT(o *Vector) (bool, error) { return v.vecCompare(o, cmpLt) }

// LTE reports whether v[i] <= o[i] for all i.
func (v *Vector) LTE(o *Vector) (bool, error) { return v.vecCompare(o, cmpLte) }

// EqualsScalar reports whether every element equals s.
func (v *Vector) EqualsScalar(s float64) bool { return v.scalarCompare(s, cmpEq) }

// GTScalar reports whether every element is > s.
func (v *Vector) GTScalar(s float64) bool { return v.scalarCompare(s, cmpGt) }

// GTEScalar reports whether every element is >= s.
func (v *Vector) GTEScalar(s float64) bool { return v.scalarCompare(s, cmpGte) }

// LTScalar reports whether every element is < s.
func (v *Vector) LTScalar(s float64) bool { return v.scalarCompare(s, cmpLt) }

// LTEScalar reports whether every element is <= s.
func (v *Vector) LTEScalar(s float64) bool { return v.scalarCompare(s, cmpLte) }

func (v *Vector) scalarCompare(s float64, pred predicate) bool {
	if v == nil {
		return true
	}

	return ewAllScalar(v.data, s, pred)
}

// ApproxEqual reports |v[i]-o[i]| <= eps for all i (eps from WithEpsilon,
// DefaultEpsilon otherwise). Sizes must match.
func (v *Vector) ApproxEqual(o *Vector, opts ...Option) (bool, error) {
	if err := ValidateSameSize(v, o); err != nil {
		return false, linalgErrorf(opVecApproxEqual, err)
	}

	return ewClose(v.data, o.data, gatherOptions(opts...).eps), nil
}

// ---------- vector · matrix ----------

// MulVecMat multiplies v by the square matrix m with result[i] = dot(v, row_i(m)),
// i.e. the column-vector product m·v. Requires m square and v.Size() == m.Rows();
// otherwise returns the null vector and ErrDimensionMismatch.
//
// Complexity: O(n²).
func MulVecMat(v *Vector, m *Matrix) (*Vector, error) {
	if err := ValidateVector(v); err != nil {
		return NullVector(), linalgErrorf(opMulVecMat, err)
	}
	if err := ValidateSquare(m); err != nil {
		return NullVector(), linalgErrorf(opMulVecMat, err)
	}
	if v.Size() != m.r {
		return NullVector(), linalgErrorf(opMulVecMat,
			fmt.Errorf("vector %d vs matrix %dx%d: %w", v.Size(), m.r, m.c, ErrDimensionMismatch))
	}

	n := m.r
	out := newVec(n)
	for i := 0; i < n; i++ {
		out.data[i] = dotKernel(v.data, m.data[i*n:(i+1)*n])
	}

	return out, nil
}
