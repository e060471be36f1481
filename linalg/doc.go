// SPDX-License-Identifier: MIT

// Package linalg provides the value types and arithmetic of the zetaml engine:
// a variable-length Vector and a row-major rows×cols Matrix, both of float64.
//
// The package offers:
//
//   - Vector construction (NewVector, VectorOf, FilledVector), copy and release.
//   - Elementwise and scalar arithmetic, Dot, Cross, Magnitude and normalisation.
//   - Matrix construction (NewMatrix, Identity, Zero, MatrixFromRows), row and
//     column extraction, augmentation and transposition.
//   - The true matrix product (Mul/MulMat) next to the elementwise Hadamard
//     product, and the vector·matrix product MulVecMat.
//   - Elementwise comparisons and a fixed-precision text form.
//
// Naming convention: a verb method mutates its receiver (v.Add(o), m.Transpose()),
// while the package-level function or the past-participle method returns a
// fresh value (AddVec(a, b), m.Transposed()). Operands are never aliased.
//
// Shapes are checked up front. On a mismatch value-returning operations return
// the null sentinel (a zero-size Vector or a 0×0 Matrix) together with an error
// wrapping ErrDimensionMismatch; in-place operations return the error and leave
// the receiver untouched. Nothing panics on user input.
//
// Convention: vectors are column vectors. MulVecMat(v, m) computes m·v, i.e.
// result[i] = dot(v, row_i(m)), and MulMat(a, b)[r][c] = dot(row_r(a), col_c(b)).
//
// Instances are not safe for concurrent mutation; synchronise externally.
package linalg
