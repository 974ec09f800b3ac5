// SPDX-License-Identifier: MIT

// Package matrix - immutable Vector value type.
//
// Vector is the right-hand side b of A·x ≈ b. Like Dense it is validated once
// (non-empty, finite) and never exposes its backing slice.

package matrix

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// Vector is an immutable, non-empty sequence of finite float64 values.
// The zero value has length 0 and is rejected by every kernel that needs data.
type Vector struct {
	data []float64
}

// NewVector copies data into a Vector.
// Errors: ErrInvalidDimensions (empty), ErrNaNInf (with offending index).
func NewVector(data []float64) (Vector, error) {
	if len(data) == 0 {
		return Vector{}, ErrInvalidDimensions
	}
	buf := make([]float64, len(data))
	for i, v := range data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return Vector{}, fmt.Errorf("NewVector: index %d: %w", i, ErrNaNInf)
		}
		buf[i] = v
	}

	return Vector{data: buf}, nil
}

// Len returns the number of entries.
func (v Vector) Len() int { return len(v.data) }

// At returns entry i or ErrOutOfRange.
func (v Vector) At(i int) (float64, error) {
	if i < 0 || i >= len(v.data) {
		return 0, fmt.Errorf("Vector.At(%d): %w", i, ErrOutOfRange)
	}

	return v.data[i], nil
}

// Values returns a copy of the entries.
func (v Vector) Values() []float64 {
	out := make([]float64, len(v.data))
	copy(out, v.data)

	return out
}

// Norm returns the Euclidean norm ‖v‖₂.
func (v Vector) Norm() float64 {
	if len(v.data) == 0 {
		return NormZero
	}

	return floats.Norm(v.data, 2)
}
