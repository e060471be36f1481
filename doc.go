// SPDX-License-Identifier: MIT

// Package zetaml is a small linear-algebra engine for 3D graphics work:
// variable-length vectors, row-major matrices and the homogeneous transforms
// built from them.
//
// The module is organised in three packages:
//
//	linalg/     Vector and Matrix value types, arithmetic, products, comparisons, text form
//	transform/  translate/rotate/scale, orthographic and perspective projection, look-at
//	scalar/     degree/radian conversion, Lerp and the AngleUnit switch
//
// plus cmd/zmldemo, a driver that projects a cube through a camera and can
// plot the result.
//
// Quick example:
//
//	view, _ := transform.LookAtRH(
//		linalg.VectorOf(3, 2, 5), // eye
//		linalg.VectorOf(0, 0, 0), // focus
//		linalg.VectorOf(0, 1, 0), // up
//	)
//	proj := transform.PerspectiveRH(0.1, 100, math.Pi/3, 16.0/9)
//	mvp, _ := linalg.MulMat(proj, view)
//	clip, _ := linalg.MulVecMat(linalg.VectorOf(1, 1, 1, 1), mvp)
//
// Vectors are column vectors: MulVecMat(v, m) computes m·v, and transforms
// compose by post-multiplication. Shape errors never panic; they return the
// null sentinel (or leave an in-place target untouched) together with an
// error that matches linalg.ErrDimensionMismatch or linalg.ErrShape under
// errors.Is.
//
// Handedness and angle units are never global: call the LH or RH variant
// directly, or configure a transform.Builder once with functional options.
//
//	go get github.com/katalvlaran/zetaml
package zetaml
