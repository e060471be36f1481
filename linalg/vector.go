// SPDX-License-Identifier: MIT

// Package linalg - Vector storage & safe accessors.
//
// Purpose:
//   - Own a contiguous []float64 per Vector; never share it with another value.
//   - Represent "undefined" as the zero-size null vector instead of nil.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//
// Complexity quicksheet:
//   - NewVector/FilledVector/VectorOf/Clone: O(n); At/Set/Size: O(1); Release: O(1).

package linalg

import "fmt"

// Vector is an ordered, fixed-length sequence of float64 values.
// A Vector with Size() == 0 is the null sentinel and carries no storage.
type Vector struct {
	data []float64 // owned storage; len(data) is the size
}

// NullVector returns a fresh null (size 0) vector.
func NullVector() *Vector { return &Vector{} }

// NewVector allocates a zero-filled vector of the given size.
// size == 0 yields the null vector; a negative size fails with ErrBadShape.
func NewVector(size int) (*Vector, error) {
	if size < 0 {
		return NullVector(), linalgErrorf(opNewVector, ErrBadShape)
	}
	if size == 0 {
		return NullVector(), nil
	}

	return &Vector{data: make([]float64, size)}, nil
}

// FilledVector allocates a vector of the given size with every element set to val.
func FilledVector(size int, val float64) (*Vector, error) {
	v, err := NewVector(size)
	if err != nil {
		return v, linalgErrorf(opFilledVector, ErrBadShape)
	}
	for i := range v.data {
		v.data[i] = val
	}

	return v, nil
}

// VectorOf builds a vector from the given values. The size is the number of
// values, so it can never disagree with the data. The input is copied.
func VectorOf(vals ...float64) *Vector {
	return &Vector{data: cloneSlice(vals)}
}

// Size returns the element count (0 for nil or null vectors).
func (v *Vector) Size() int {
	if v == nil {
		return 0
	}

	return len(v.data)
}

// IsNull reports whether v is the null sentinel (or nil).
func (v *Vector) IsNull() bool { return v.Size() == 0 }

// At returns element i or ErrOutOfRange.
func (v *Vector) At(i int) (float64, error) {
	if i < 0 || i >= v.Size() {
		return 0, linalgErrorf(opVecAt, fmt.Errorf("%d: %w", i, ErrOutOfRange))
	}

	return v.data[i], nil
}

// Set assigns element i or returns ErrOutOfRange without modifying v.
func (v *Vector) Set(i int, val float64) error {
	if i < 0 || i >= v.Size() {
		return linalgErrorf(opVecSet, fmt.Errorf("%d: %w", i, ErrOutOfRange))
	}
	v.data[i] = val

	return nil
}

// Elements returns a copy of the elements.
func (v *Vector) Elements() []float64 {
	if v == nil {
		return nil
	}

	return cloneSlice(v.data)
}

// Clone returns a deep copy of v. Cloning nil yields the null vector.
func (v *Vector) Clone() *Vector {
	if v == nil {
		return NullVector()
	}

	return &Vector{data: cloneSlice(v.data)}
}

// Release drops the storage and turns v into the null vector.
func (v *Vector) Release() {
	if v == nil {
		return
	}
	v.data = nil
}

// X, Y, Z and W read the first four components; missing ones read as 0.
func (v *Vector) X() float64 { return v.component(0) }

// Y returns element 1 or 0.
func (v *Vector) Y() float64 { return v.component(1) }

// Z returns element 2 or 0.
func (v *Vector) Z() float64 { return v.component(2) }

// W returns element 3 or 0.
func (v *Vector) W() float64 { return v.component(3) }

func (v *Vector) component(i int) float64 {
	if i >= v.Size() {
		return 0
	}

	return v.data[i]
}

// newVec allocates an n-element vector, or the null vector for n == 0.
func newVec(n int) *Vector {
	if n == 0 {
		return NullVector()
	}

	return &Vector{data: make([]float64, n)}
}
