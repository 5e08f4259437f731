// SPDX-License-Identifier: MIT

package cluster

import (
	"fmt"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/lvlearn/core"
	"github.com/katalvlaran/lvlearn/matrix"
)

// Group collects the coordinates of each cluster; result[c] holds the
// points labeled c in sample order. Clusters without members stay empty.
//
// Errors:
//   - ErrTwoDimensional, ErrAssignmentLength, ErrInvalidLabel.
func Group(points *matrix.Dense, assignment []int) ([][][2]float64, error) {
	if err := matrix.ValidateNotNil(points); err != nil {
		return nil, fmt.Errorf("Group: %w", err)
	}
	if points.Cols() != 2 {
		return nil, fmt.Errorf("Group: %d columns: %w", points.Cols(), ErrTwoDimensional)
	}
	if points.Rows() != len(assignment) {
		return nil, fmt.Errorf("Group: %d points, %d labels: %w", points.Rows(), len(assignment), ErrAssignmentLength)
	}
	k := 0
	for _, c := range assignment {
		if c < 0 {
			return nil, fmt.Errorf("Group: %w", ErrInvalidLabel)
		}
		if c+1 > k {
			k = c + 1
		}
	}
	out := make([][][2]float64, k)
	for i, c := range assignment {
		row := points.RowView(i)
		out[c] = append(out[c], [2]float64{row[0], row[1]})
	}

	return out, nil
}

// Modularity returns Newman's Q = Σ_c [L_c/m - (d_c/2m)²] of labels over g,
// where labels follow g.Vertices() order. An edgeless graph has Q = 0.
func Modularity(g *core.Graph, labels []int) (float64, error) {
	A, ids, err := g.AdjacencyMatrix()
	if err != nil {
		return 0, fmt.Errorf("Modularity: %w", err)
	}
	if len(ids) != len(labels) {
		return 0, fmt.Errorf("Modularity: %w", ErrAssignmentLength)
	}
	n := A.Rows()
	deg := make([]float64, n)
	for i := range deg {
		deg[i] = floats.Sum(A.RowView(i))
	}
	twoM := floats.Sum(deg)
	if twoM == 0 {
		return 0, nil
	}
	var q float64
	for i := 0; i < n; i++ {
		row := A.RowView(i)
		for j := 0; j < n; j++ {
			if labels[i] == labels[j] {
				q += row[j] - deg[i]*deg[j]/twoM
			}
		}
	}

	return q / twoM, nil
}
