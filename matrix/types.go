// SPDX-License-Identifier: MIT

// Package matrix: domain types shared by dense operations and distance export.
// This file intentionally contains ONLY types; errors and options live in
// dedicated files (errors.go, options.go).
package matrix

// Matrix represents a two-dimensional mutable array of float64 values.
//
// Complexity notes: all methods are expected O(1) except Clone (O(r*c)).
type Matrix interface {
	// Rows returns the number of rows in the matrix.
	Rows() int

	// Cols returns the number of columns in the matrix.
	Cols() int

	// At retrieves the element at position (i, j).
	// Returns ErrOutOfRange if i<0, i>=Rows(), j<0 or j>=Cols().
	At(i, j int) (float64, error)

	// Set assigns the value v at position (i, j).
	// Returns ErrOutOfRange if indices are invalid.
	Set(i, j int, v float64) error

	// Clone returns a deep copy of the matrix.
	Clone() Matrix
}

// Pair is an unordered sample pair (I < J) together with the distance that
// admitted it. ThresholdPairs emits pairs in ascending (I, J) order.
type Pair struct {
	I, J     int     // row indices of the two samples, I < J
	Distance float64 // Euclidean distance between the two rows
}
