// SPDX-License-Identifier: MIT

// Package linalg - Matrix storage & structural operations.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set/Row/Col return errors instead of panicking.
//   - Row/column extraction and assignment always copy; no Vector ever views Matrix storage.
//   - Structural growth (AugmentVec/AugmentMat) and transposition build a new buffer,
//     then swap it in, so a failure or a self-referencing argument never corrupts the receiver.
//
// Complexity quicksheet:
//   - NewMatrix/Identity/Zero/Clone: O(r*c); At/Set: O(1); Row: O(c); Col: O(r);
//     Transpose: O(r*c); AugmentVec: O((r+1)*c); AugmentMat: O((r+k)*c).

package linalg

import "fmt"

// Matrix is a rows×cols grid of float64 values in row-major order.
// A 0×0 Matrix is the null sentinel.
type Matrix struct {
	r, c int       // row and column counts (>= 0)
	data []float64 // contiguous row-major storage (len == r*c)
}

// NullMatrix returns a fresh null (0×0) matrix.
func NullMatrix() *Matrix { return &Matrix{} }

// NewMatrix allocates a zero-filled rows×cols matrix.
//
// Zero-sized dimensions are legal (0×0 is the null matrix, 0×k is an empty
// matrix that rows can be augmented onto). Negative dimensions fail with
// ErrBadShape and return the null matrix.
func NewMatrix(rows, cols int) (*Matrix, error) {
	if rows < 0 || cols < 0 {
		return NullMatrix(), linalgErrorf(opNewMatrix,
			fmt.Errorf("%dx%d: %w", rows, cols, ErrBadShape))
	}

	return &Matrix{r: rows, c: cols, data: make([]float64, rows*cols)}, nil
}

// Zero returns a rows×cols matrix with every element set to 0.
func Zero(rows, cols int) (*Matrix, error) {
	m, err := NewMatrix(rows, cols)
	if err != nil {
		return m, linalgErrorf(opZero, err)
	}

	return m, nil
}

// Identity returns a rows×cols matrix with 1 where row == col and 0 elsewhere.
// Non-square shapes give a partial identity (ones on the leading diagonal only).
func Identity(rows, cols int) (*Matrix, error) {
	m, err := NewMatrix(rows, cols)
	if err != nil {
		return m, linalgErrorf(opIdentity, err)
	}
	n := min(rows, cols)
	for i := 0; i < n; i++ {
		m.data[i*cols+i] = 1
	}

	return m, nil
}

// MatrixFromRows builds a matrix by copying the given rows. Every row must have
// the same length (ErrBadShape otherwise). No rows yields the null matrix.
func MatrixFromRows(rows ...[]float64) (*Matrix, error) {
	if len(rows) == 0 {
		return NullMatrix(), nil
	}
	cols := len(rows[0])
	m, _ := NewMatrix(len(rows), cols) // shape is non-negative by construction
	for i, row := range rows {
		if len(row) != cols {
			return NullMatrix(), linalgErrorf(opFromRows,
				fmt.Errorf("row %d has %d elements, want %d: %w", i, len(row), cols, ErrBadShape))
		}
		copy(m.data[i*cols:(i+1)*cols], row)
	}

	return m, nil
}

// Rows returns the number of rows (0 for nil).
func (m *Matrix) Rows() int {
	if m == nil {
		return 0
	}

	return m.r
}

// Cols returns the number of columns (0 for nil).
func (m *Matrix) Cols() int {
	if m == nil {
		return 0
	}

	return m.c
}

// Shape packs Rows() and Cols() into a single call.
func (m *Matrix) Shape() (rows, cols int) { return m.Rows(), m.Cols() }

// IsNull reports whether m is the 0×0 sentinel (or nil).
func (m *Matrix) IsNull() bool { return m.Rows() == 0 && m.Cols() == 0 }

// IsSquare reports Rows() == Cols().
func (m *Matrix) IsSquare() bool { return m.Rows() == m.Cols() }

// indexOf bounds-checks (row, col) and returns the row-major offset.
func (m *Matrix) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.Rows() || col < 0 || col >= m.Cols() {
		return 0, fmt.Errorf("(%d,%d): %w", row, col, ErrOutOfRange)
	}

	return row*m.c + col, nil
}

// At returns the element at (row, col) or ErrOutOfRange.
func (m *Matrix) At(row, col int) (float64, error) {
	idx, err := m.indexOf(row, col)
	if err != nil {
		return 0, linalgErrorf(opMatAt, err)
	}

	return m.data[idx], nil
}

// Set assigns val at (row, col) or returns ErrOutOfRange without modifying m.
func (m *Matrix) Set(row, col int, val float64) error {
	idx, err := m.indexOf(row, col)
	if err != nil {
		return linalgErrorf(opMatSet, err)
	}
	m.data[idx] = val

	return nil
}

// RawRows returns a deep copy of the elements as a slice of rows.
func (m *Matrix) RawRows() [][]float64 {
	out := make([][]float64, m.Rows())
	for i := range out {
		out[i] = cloneSlice(m.data[i*m.c : (i+1)*m.c])
	}

	return out
}

// Clone returns a deep copy of m. Cloning nil yields the null matrix.
func (m *Matrix) Clone() *Matrix {
	if m == nil {
		return NullMatrix()
	}

	return &Matrix{r: m.r, c: m.c, data: cloneSlice(m.data)}
}

// Release drops the storage and turns m into the null matrix.
func (m *Matrix) Release() {
	if m == nil {
		return
	}
	m.r, m.c, m.data = 0, 0, nil
}

// swap replaces m's contents with src's. src must not be used afterwards.
func (m *Matrix) swap(src *Matrix) {
	m.r, m.c, m.data = src.r, src.c, src.data
}

// ---------- rows & columns ----------

// Row returns an independent copy of row i (length Cols()).
// An invalid index yields the null vector and ErrOutOfRange.
func (m *Matrix) Row(i int) (*Vector, error) {
	if err := ValidateMatrix(m); err != nil {
		return NullVector(), linalgErrorf(opRow, err)
	}
	if i < 0 || i >= m.r {
		return NullVector(), linalgErrorf(opRow, fmt.Errorf("row %d: %w", i, ErrOutOfRange))
	}

	return VectorOf(m.data[i*m.c : (i+1)*m.c]...), nil
}

// Col returns an independent copy of column j (length Rows()).
// An invalid index yields the null vector and ErrOutOfRange.
func (m *Matrix) Col(j int) (*Vector, error) {
	if err := ValidateMatrix(m); err != nil {
		return NullVector(), linalgErrorf(opCol, err)
	}
	if j < 0 || j >= m.c {
		return NullVector(), linalgErrorf(opCol, fmt.Errorf("col %d: %w", j, ErrOutOfRange))
	}
	out := newVec(m.r)
	for i := 0; i < m.r; i++ {
		out.data[i] = m.data[i*m.c+j]
	}

	return out, nil
}

// SetRow overwrites row i with the values of v.
// Requires v.Size() == Cols() (ErrDimensionMismatch) and a valid i (ErrOutOfRange);
// on error m is unchanged.
func (m *Matrix) SetRow(i int, v *Vector) error {
	if err := ValidateMatrix(m); err != nil {
		return linalgErrorf(opSetRow, err)
	}
	if err := ValidateVecSize(v, m.c); err != nil {
		return linalgErrorf(opSetRow, err)
	}
	if i < 0 || i >= m.r {
		return linalgErrorf(opSetRow, fmt.Errorf("row %d: %w", i, ErrOutOfRange))
	}
	copy(m.data[i*m.c:(i+1)*m.c], v.data)

	return nil
}

// SetCol overwrites column j with the values of v.
// Requires v.Size() == Rows() (ErrDimensionMismatch) and a valid j (ErrOutOfRange);
// on error m is unchanged.
func (m *Matrix) SetCol(j int, v *Vector) error {
	if err := ValidateMatrix(m); err != nil {
		return linalgErrorf(opSetCol, err)
	}
	if err := ValidateVecSize(v, m.r); err != nil {
		return linalgErrorf(opSetCol, err)
	}
	if j < 0 || j >= m.c {
		return linalgErrorf(opSetCol, fmt.Errorf("col %d: %w", j, ErrOutOfRange))
	}
	for i := 0; i < m.r; i++ {
		m.data[i*m.c+j] = v.data[i]
	}

	return nil
}

// ---------- transpose ----------

// Transpose swaps rows and columns of m in place (shape r×c becomes c×r).
// The result is assembled in a separate buffer, since m[r][c] = old[c][r]
// cannot be computed without one.
func (m *Matrix) Transpose() {
	if m == nil {
		return
	}
	m.swap(m.Transposed())
}

// Transposed returns mᵀ as a new matrix.
func (m *Matrix) Transposed() *Matrix {
	if m == nil {
		return NullMatrix()
	}
	rows, cols := m.r, m.c
	out := &Matrix{r: cols, c: rows, data: make([]float64, len(m.data))}
	var base int
	for i := 0; i < rows; i++ {
		base = i * cols
		for j := 0; j < cols; j++ {
			out.data[j*rows+i] = m.data[base+j]
		}
	}

	return out
}

// ---------- augmentation ----------

// AugmentVec appends v as a new final row. Requires v.Size() == Cols();
// otherwise ErrDimensionMismatch and m is unchanged.
func (m *Matrix) AugmentVec(v *Vector) error {
	if err := ValidateMatrix(m); err != nil {
		return linalgErrorf(opAugmentVec, err)
	}
	if err := ValidateVecSize(v, m.c); err != nil {
		return linalgErrorf(opAugmentVec, err)
	}
	buf := make([]float64, (m.r+1)*m.c)
	copy(buf, m.data)
	copy(buf[m.r*m.c:], v.data)
	m.r, m.data = m.r+1, buf

	return nil
}

// AugmentMat appends the rows of o below m's rows. Requires o.Cols() == Cols();
// otherwise ErrDimensionMismatch and m is unchanged. m.AugmentMat(m) is allowed.
func (m *Matrix) AugmentMat(o *Matrix) error {
	if err := ValidateMatrix(m); err != nil {
		return linalgErrorf(opAugmentMat, err)
	}
	if err := ValidateMatrix(o); err != nil {
		return linalgErrorf(opAugmentMat, err)
	}
	if o.c != m.c {
		return linalgErrorf(opAugmentMat,
			fmt.Errorf("cols %d vs %d: %w", o.c, m.c, ErrDimensionMismatch))
	}
	buf := make([]float64, (m.r+o.r)*m.c)
	copy(buf, m.data)
	copy(buf[m.r*m.c:], o.data)
	m.r, m.data = m.r+o.r, buf

	return nil
}
