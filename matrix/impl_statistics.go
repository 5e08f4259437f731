// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide the per-column statistics consumed by feature scaling.
//
// Determinism & Performance:
//   - Fixed i→j traversal; Dense fast-path avoids At on the flat buffer.

package matrix

import "fmt"

// ColumnMinMax returns the per-column minimum and maximum of X.
//
// Implementation:
//   - Stage 1: validate X (non-nil).
//   - Stage 2: seed mins/maxs with row 0, then fold rows 1..r-1 in order.
//
// Returns:
//   - mins, maxs: slices of length Cols().
//
// Errors:
//   - ErrNilMatrix (wrapped with "ColumnMinMax").
//   - Wrapped At errors on the fallback path.
//
// Complexity:
//   - Time O(r*c), Space O(c).
func ColumnMinMax(X Matrix) (mins, maxs []float64, err error) {
	if err = ValidateNotNil(X); err != nil {
		return nil, nil, matrixErrorf(opColumnMinMax, err)
	}
	r, c := X.Rows(), X.Cols()
	mins = make([]float64, c)
	maxs = make([]float64, c)

	at := func(i, j int) (float64, error) { return X.At(i, j) }
	if d, ok := X.(*Dense); ok {
		at = func(i, j int) (float64, error) { return d.data[i*d.c+j], nil }
	}

	var i, j int
	var v float64
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			v, err = at(i, j)
			if err != nil {
				return nil, nil, matrixErrorf(opColumnMinMax, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			if i == 0 || v < mins[j] {
				mins[j] = v
			}
			if i == 0 || v > maxs[j] {
				maxs[j] = v
			}
		}
	}

	return mins, maxs, nil
}
