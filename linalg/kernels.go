// SPDX-License-Identifier: MIT
// Package: linalg
//
// Private elementwise kernels (ew*) shared by Vector and Matrix. Both types keep
// their elements in one flat slice, so every elementwise operation reduces to a
// single deterministic 0..n-1 loop over equal-length slices. Callers validate
// lengths; kernels assume len(dst) == len(a) == len(b).

package linalg

import "math"

// binaryOp combines two scalars.
type binaryOp func(x, y float64) float64

// predicate relates two scalars.
type predicate func(x, y float64) bool

func opAddF(x, y float64) float64 { return x + y }
func opSubF(x, y float64) float64 { return x - y }
func opMulF(x, y float64) float64 { return x * y }
func opDivF(x, y float64) float64 { return x / y }

func cmpEq(x, y float64) bool  { return x == y }
func cmpGt(x, y float64) bool  { return x > y }
func cmpGte(x, y float64) bool { return x >= y }
func cmpLt(x, y float64) bool  { return x < y }
func cmpLte(x, y float64) bool { return x <= y }

// ewApply computes dst[i] = op(a[i], b[i]). dst may alias a.
func ewApply(dst, a, b []float64, op binaryOp) {
	for i := range dst {
		dst[i] = op(a[i], b[i])
	}
}

// ewApplyScalar computes dst[i] = op(a[i], s). dst may alias a.
func ewApplyScalar(dst, a []float64, s float64, op binaryOp) {
	for i := range dst {
		dst[i] = op(a[i], s)
	}
}

// ewAll reports whether pred(a[i], b[i]) holds for every i.
// Empty input is vacuously true.
func ewAll(a, b []float64, pred predicate) bool {
	for i := range a {
		if !pred(a[i], b[i]) {
			return false
		}
	}

	return true
}

// ewAllScalar reports whether pred(a[i], s) holds for every i.
func ewAllScalar(a []float64, s float64, pred predicate) bool {
	for i := range a {
		if !pred(a[i], s) {
			return false
		}
	}

	return true
}

// ewClose reports |a[i]-b[i]| <= eps for every i.
// NaN is never close to anything; equal infinities are close.
func ewClose(a, b []float64, eps float64) bool {
	for i := range a {
		if a[i] == b[i] {
			continue // covers equal infinities
		}
		if math.IsNaN(a[i]) || math.IsNaN(b[i]) || math.Abs(a[i]-b[i]) > eps {
			return false
		}
	}

	return true
}

// dotKernel returns Σ a[i]*b[i] with a fixed accumulation order.
func dotKernel(a, b []float64) float64 {
	var sum float64
	for i := range a {
		sum += a[i] * b[i]
	}

	return sum
}

// cloneSlice returns an independent copy of src (nil for empty input).
func cloneSlice(src []float64) []float64 {
	if len(src) == 0 {
		return nil
	}
	out := make([]float64, len(src))
	copy(out, src)

	return out
}
