// SPDX-License-Identifier: MIT
// Package: matrix
//
// impl_distance.go - pairwise Euclidean distances and the thresholded
// distance → edge export used by graph clustering.
//
// Contract:
//   - PairwiseDistances(points) is symmetric with an exact zero diagonal.
//   - ThresholdPairs(dist, opts...) emits (i<j) pairs with dist < threshold,
//     each unordered pair at most once, ascending (i, j).
//
// Determinism:
//   - Fixed i→j order; the lower triangle is mirrored, never recomputed.

package matrix

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// euclidean selects the L2 norm in floats.Distance.
const euclidean = 2

// PairwiseDistances returns the n×n Euclidean distance matrix of the rows of points.
//
// Implementation:
//   - Stage 1: validate points; extract rows once (copy for non-Dense inputs).
//   - Stage 2: fill the strict upper triangle with floats.Distance(·,·,2)
//     and mirror it; the diagonal stays 0.
//
// Errors:
//   - ErrNilMatrix (wrapped with "PairwiseDistances").
//
// Complexity:
//   - Time O(n²·d), Space O(n²).
func PairwiseDistances(points Matrix) (*Dense, error) {
	if err := ValidateNotNil(points); err != nil {
		return nil, matrixErrorf(opPairwise, err)
	}
	n := points.Rows()
	rows, err := rowsOf(points)
	if err != nil {
		return nil, matrixErrorf(opPairwise, err)
	}
	out, err := NewDense(n, n)
	if err != nil {
		return nil, matrixErrorf(opPairwise, err)
	}

	var i, j int
	var d float64
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			d = floats.Distance(rows[i], rows[j], euclidean)
			out.data[i*n+j] = d
			out.data[j*n+i] = d
		}
	}

	return out, nil
}

// ThresholdPairs exports every unordered pair (i<j) whose distance is strictly
// below the edge threshold (DefaultEdgeThreshold unless WithEdgeThreshold).
// Self pairs (i==j) are never exported.
//
// Errors:
//   - ErrNilMatrix / ErrDimensionMismatch (non-square) / ErrAsymmetry (beyond eps).
//
// Complexity:
//   - Time O(n²), Space O(E).
func ThresholdPairs(dist Matrix, opts ...Option) ([]Pair, error) {
	o := gatherOptions(opts...)
	if err := ValidateSymmetric(dist, o.eps); err != nil {
		return nil, matrixErrorf(opThreshold, err)
	}
	n := dist.Rows()
	pairs := make([]Pair, 0, n)

	var i, j int
	var d float64
	var err error
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			d, err = dist.At(i, j)
			if err != nil {
				return nil, matrixErrorf(opThreshold, err)
			}
			if d < o.edgeThreshold {
				pairs = append(pairs, Pair{I: i, J: j, Distance: d})
			}
		}
	}

	return pairs, nil
}

// rowsOf returns per-row slices: views for *Dense, copies otherwise.
func rowsOf(m Matrix) ([][]float64, error) {
	n, c := m.Rows(), m.Cols()
	rows := make([][]float64, n)
	if d, ok := m.(*Dense); ok {
		for i := 0; i < n; i++ {
			rows[i] = d.RowView(i)
		}

		return rows, nil
	}
	var v float64
	var err error
	for i := 0; i < n; i++ {
		rows[i] = make([]float64, c)
		for j := 0; j < c; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, fmt.Errorf("At(%d,%d): %w", i, j, err)
			}
			rows[i][j] = v
		}
	}

	return rows, nil
}
