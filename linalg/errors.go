// SPDX-License-Identifier: MIT
// Package linalg: sentinel error set.
// Every exported operation returns one of these sentinels, wrapped with the
// operation tag (see linalgErrorf). Match them with errors.Is.

package linalg

import (
	"errors"
	"fmt"
)

var (
	// ErrDimensionMismatch indicates incompatible operand sizes/shapes, e.g. Add on
	// vectors of different length, Cross on non-3D input, or Mul where a.Cols != b.Rows.
	ErrDimensionMismatch = errors.New("linalg: dimension mismatch")

	// ErrShape indicates that an operation requires a specific matrix shape
	// (e.g. 4×4 homogeneous transform) that was not supplied.
	ErrShape = errors.New("linalg: unexpected matrix shape")

	// ErrOutOfRange indicates an element, row or column index outside valid bounds.
	ErrOutOfRange = errors.New("linalg: index out of range")

	// ErrBadShape is returned by constructors for negative sizes or ragged rows.
	ErrBadShape = errors.New("linalg: invalid shape")

	// ErrNilVector indicates that a nil *Vector was used as receiver or argument.
	ErrNilVector = errors.New("linalg: nil vector")

	// ErrNilMatrix indicates that a nil *Matrix was used as receiver or argument.
	ErrNilMatrix = errors.New("linalg: nil matrix")
)

// linalgErrorf wraps err with an operation tag, preserving it for errors.Is.
// Call only with a non-nil err.
func linalgErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Operation tags used in error wrapping. Methods are tagged "Type.Method",
// package functions by their own name.
const (
	opNewVector    = "NewVector"
	opFilledVector = "FilledVector"
	opVecAt        = "Vector.At"
	opVecSet       = "Vector.Set"
	opVecAdd       = "Vector.Add"
	opVecSub       = "Vector.Sub"
	opVecMul       = "Vector.Mul"
	opVecDiv       = "Vector.Div"
	opAddVec       = "AddVec"
	opSubVec       = "SubVec"
	opMulVec       = "MulVec"
	opDivVec       = "DivVec"
	opDot          = "Dot"
	opCross        = "Cross"
	opMulVecMat    = "MulVecMat"
	opVecCompare   = "Vector.Compare"

	opNewMatrix      = "NewMatrix"
	opFromRows       = "MatrixFromRows"
	opIdentity       = "Identity"
	opZero           = "Zero"
	opMatAt          = "Matrix.At"
	opMatSet         = "Matrix.Set"
	opRow            = "Matrix.Row"
	opCol            = "Matrix.Col"
	opSetRow         = "Matrix.SetRow"
	opSetCol         = "Matrix.SetCol"
	opAugmentVec     = "Matrix.AugmentVec"
	opAugmentMat     = "Matrix.AugmentMat"
	opMatAdd         = "Matrix.Add"
	opMatSub         = "Matrix.Sub"
	opMatHadamard    = "Matrix.Hadamard"
	opMatMul         = "Matrix.Mul"
	opAddMat         = "AddMat"
	opSubMat         = "SubMat"
	opHadamardMat    = "HadamardMat"
	opMulMat         = "MulMat"
	opMatCompare     = "Matrix.Compare"
	opAllClose       = "AllClose"
	opVecApproxEqual = "Vector.ApproxEqual"
)
