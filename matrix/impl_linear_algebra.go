// SPDX-License-Identifier: MIT
// Package matrix provides the matrix-vector kernel used by iterative
// eigen-solvers elsewhere in lvlearn (Newman power iteration).
//
// Notes:
//   - Kernels use the central validators and return sentinels wrapped via matrixErrorf.
//   - Heavy factorizations (Cholesky/LU for ridge systems) are delegated to gonum/mat
//     by the regression package; this package stays storage-oriented.

package matrix

import "fmt"

// ZeroSum is the initial accumulator value for dot products.
const ZeroSum = 0.0

// MatVec computes y = m * x for a column vector x.
//
// Implementation:
//   - Stage 1: validate m non-nil and len(x) == m.Cols().
//   - Stage 2: *Dense fast-path walks each row once with flat indexing;
//     other implementations fall back to At with full error propagation.
//
// Returns:
//   - []float64: freshly allocated y with len == m.Rows().
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (wrapped with "MatVec").
//
// Determinism:
//   - Fixed i→j loop order; identical inputs give bit-identical outputs.
//
// Complexity:
//   - Time O(r*c), Space O(r) for y.
//
// AI-Hints:
//   - For repeated calls on one matrix (power iteration), pass the concrete *Dense.
func MatVec(m Matrix, x []float64) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	if err := ValidateVecLen(x, m.Cols()); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	rows, cols := m.Rows(), m.Cols()
	y := make([]float64, rows)

	// Fast-path: *Dense allows flat, row-major dot-products.
	if d, ok := m.(*Dense); ok {
		var i, j, base int
		var acc float64
		for i = 0; i < d.r; i++ {
			acc = ZeroSum
			base = i * d.c
			for j = 0; j < d.c; j++ {
				acc += d.data[base+j] * x[j]
			}
			y[i] = acc
		}

		return y, nil
	}

	// Fallback: interface-based dot-products via At.
	var i, j int
	var mv float64
	var err error
	for i = 0; i < rows; i++ {
		y[i] = ZeroSum
		for j = 0; j < cols; j++ {
			mv, err = m.At(i, j)
			if err != nil {
				return nil, matrixErrorf(opMatVec, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			y[i] += mv * x[j]
		}
	}

	return y, nil
}
