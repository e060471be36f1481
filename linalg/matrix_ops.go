// SPDX-License-Identifier: MIT
// Package linalg - MatrixOps.
//
// Purpose:
//   - Elementwise add/sub and the elementwise (Hadamard) product.
//   - The true matrix product Mul/MulMat (row·column dot products).
//   - Scalar arithmetic and elementwise comparisons.
//
// Naming:
//   - Hadamard is elementwise; Mul is the matrix product. There is no
//     "elementwise Mul" on matrices, so the two can never be confused.
//   - Methods mutate the receiver; AddMat/SubMat/HadamardMat/MulMat and the
//     *MatScalar functions return fresh matrices.
//
// Determinism:
//   - Fixed loop orders (flat 0..n-1 for elementwise, i→k→j for the product).

package linalg

// ---------- elementwise, in place ----------

func (m *Matrix) matInPlace(o *Matrix, op binaryOp, tag string) error {
	if err := ValidateSameShape(m, o); err != nil {
		return linalgErrorf(tag, err)
	}
	ewApply(m.data, m.data, o.data, op)

	return nil
}

// Add sets m[i,j] += o[i,j]. Shapes must match (ErrDimensionMismatch).
func (m *Matrix) Add(o *Matrix) error { return m.matInPlace(o, opAddF, opMatAdd) }

// Sub sets m[i,j] -= o[i,j]. Shapes must match (ErrDimensionMismatch).
func (m *Matrix) Sub(o *Matrix) error { return m.matInPlace(o, opSubF, opMatSub) }

// Hadamard sets m[i,j] *= o[i,j] (elementwise product). Shapes must match.
func (m *Matrix) Hadamard(o *Matrix) error { return m.matInPlace(o, opMulF, opMatHadamard) }

// ---------- elementwise, copying ----------

func matBinary(a, b *Matrix, op binaryOp, tag string) (*Matrix, error) {
	if err := ValidateSameShape(a, b); err != nil {
		return NullMatrix(), linalgErrorf(tag, err)
	}
	out := &Matrix{r: a.r, c: a.c, data: make([]float64, len(a.data))}
	ewApply(out.data, a.data, b.data, op)

	return out, nil
}

// AddMat returns a + b.
func AddMat(a, b *Matrix) (*Matrix, error) { return matBinary(a, b, opAddF, opAddMat) }

// SubMat returns a - b.
func SubMat(a, b *Matrix) (*Matrix, error) { return matBinary(a, b, opSubF, opSubMat) }

// HadamardMat returns the elementwise product a ⊙ b.
func HadamardMat(a, b *Matrix) (*Matrix, error) { return matBinary(a, b, opMulF, opHadamardMat) }

// ---------- matrix product ----------

// MulMat performs the matrix product C = A × B with C[r][c] = dot(row_r(A), col_c(B)).
//
// Implementation:
//   - Stage 1: validate A.Cols == B.Rows (ErrDimensionMismatch → null matrix).
//   - Stage 2: accumulate into a fresh (A.Rows × B.Cols) buffer with i→k→j strides.
//
// Behavior highlights:
//   - Operands are never mutated and may alias each other (MulMat(a, a)).
//   - Every term is accumulated (no zero skipping), so NaN/Inf propagate exactly
//     as they would through Dot.
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c).
func MulMat(a, b *Matrix) (*Matrix, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return NullMatrix(), linalgErrorf(opMulMat, err)
	}

	aRows, aCols, bCols := a.r, a.c, b.c
	res := &Matrix{r: aRows, c: bCols, data: make([]float64, aRows*bCols)}
	var i, j, k int
	var av float64
	var rowOffsetA, rowOffsetB, rowOffsetR int
	for i = 0; i < aRows; i++ {
		rowOffsetA = i * aCols
		rowOffsetR = i * bCols
		for k = 0; k < aCols; k++ {
			av = a.data[rowOffsetA+k]
			rowOffsetB = k * bCols
			for j = 0; j < bCols; j++ {
				res.data[rowOffsetR+j] += av * b.data[rowOffsetB+j]
			}
		}
	}

	return res, nil
}

// Mul replaces m with the matrix product m × o. The product is computed into a
// fresh buffer and then swapped in, so m is never read after being written and
// m.Mul(m) is safe. The shape becomes m.Rows() × o.Cols().
// On ErrDimensionMismatch m is unchanged.
func (m *Matrix) Mul(o *Matrix) error {
	if err := ValidateMatrix(m); err != nil {
		return linalgErrorf(opMatMul, err)
	}
	res, err := MulMat(m, o)
	if err != nil {
		return linalgErrorf(opMatMul, err)
	}
	m.swap(res)

	return nil
}

// ---------- scalar ----------

func (m *Matrix) scalarInPlace(s float64, op binaryOp) {
	if m == nil {
		return
	}
	ewApplyScalar(m.data, m.data, s, op)
}

// AddScalar adds s to every element.
func (m *Matrix) AddScalar(s float64) { m.scalarInPlace(s, opAddF) }

// SubScalar subtracts s from every element.
func (m *Matrix) SubScalar(s float64) { m.scalarInPlace(s, opSubF) }

// MulScalar multiplies every element by s.
func (m *Matrix) MulScalar(s float64) { m.scalarInPlace(s, opMulF) }

// DivScalar divides every element by s (IEEE-754 semantics for s == 0).
func (m *Matrix) DivScalar(s float64) { m.scalarInPlace(s, opDivF) }

func matScalar(m *Matrix, s float64, op binaryOp) *Matrix {
	out := m.Clone()
	out.scalarInPlace(s, op)

	return out
}

// AddMatScalar returns m + s (broadcast).
func AddMatScalar(m *Matrix, s float64) *Matrix { return matScalar(m, s, opAddF) }

// SubMatScalar returns m - s (broadcast).
func SubMatScalar(m *Matrix, s float64) *Matrix { return matScalar(m, s, opSubF) }

// MulMatScalar returns s·m.
func MulMatScalar(m *Matrix, s float64) *Matrix { return matScalar(m, s, opMulF) }

// DivMatScalar returns m / s.
func DivMatScalar(m *Matrix, s float64) *Matrix { return matScalar(m, s, opDivF) }

// ---------- comparisons ----------

func (m *Matrix) matCompare(o *Matrix, pred predicate) (bool, error) {
	if err := ValidateSameShape(m, o); err != nil {
		return false, linalgErrorf(opMatCompare, err)
	}

	return ewAll(m.data, o.data, pred), nil
}

// Equals reports whether m[i,j] == o[i,j] everywhere. Shapes must match.
func (m *Matrix) Equals(o *Matrix) (bool, error) { return m.matCompare(o, cmpEq) }

// GT reports whether m[i,j] > o[i,j] everywhere.
func (m *Matrix) GT(o *Matrix) (bool, error) { return m.matCompare(o, cmpGt) }

// GTE reports whether m[i,j] >= o[i,j] everywhere.
func (m *Matrix) GTE(o *Matrix) (bool, error) { return m.matCompare(o, cmpGte) }

// LT reports whether m[i,j] < o[i,j] everywhere.
func (m *Matrix) LT(o *Matrix) (bool, error) { return m.matCompare(o, cmpLt) }

// LTE reports whether m[i,j] <= o[i,j] everywhere.
func (m *Matrix) LTE(o *Matrix) (bool, error) { return m.matCompare(o, cmpLte) }

// AllClose reports |a[i,j]-b[i,j]| <= eps everywhere, with eps from WithEpsilon
// (DefaultEpsilon otherwise). NaN is never close; equal infinities are.
// Shapes must match (ErrDimensionMismatch).
func AllClose(a, b *Matrix, opts ...Option) (bool, error) {
	if err := ValidateSameShape(a, b); err != nil {
		return false, linalgErrorf(opAllClose, err)
	}

	return ewClose(a.data, b.data, gatherOptions(opts...).eps), nil
}
