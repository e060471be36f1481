// SPDX-License-Identifier: MIT

// Package transform builds 4×4 homogeneous transform and projection matrices
// on top of linalg.
//
// Conventions:
//
//   - Column vectors. A point p is transformed as M·p (see linalg.MulVecMat),
//     so translation lives in column 3 and composition is post-multiplication:
//     Rotate(m, ...) replaces m with m·R.
//   - Package-level functions take angles in radians. Handedness is chosen by
//     calling the LH or RH variant; nothing in this package reads global state.
//   - Builder wraps the same functions behind an explicit Config (handedness,
//     angle unit, logger) for callers that want one switch for a whole scene.
//
// Failure policy mirrors linalg: a target that is not 4×4 yields an error
// wrapping linalg.ErrShape, a wrong-sized vector argument yields
// linalg.ErrDimensionMismatch, and the target is left untouched in both cases.
// Functions returning a matrix return linalg.NullMatrix() on error.
//
// Degenerate geometry (zero-width ortho boxes, coincident look-at points, an up
// vector parallel to the view direction) is not rejected; the IEEE-754 result
// (±Inf or NaN) propagates to the caller.
package transform
