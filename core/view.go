// SPDX-License-Identifier: MIT
//
// File: view.go
// Role: dense matrix views of a Graph for spectral algorithms.
// Determinism:
//   - Row/column order is Vertices() order (ascending IDs).

package core

import (
	"fmt"

	"github.com/katalvlaran/lvlearn/matrix"
)

// AdjacencyMatrix returns the symmetric V×V adjacency matrix A together with
// the vertex ID of every row.
//
// Behavior highlights:
//   - Unweighted edges contribute 1, weighted edges their Weight.
//   - Parallel edges accumulate.
//   - A self-loop contributes twice its weight to the diagonal so that row
//     sums equal vertex degrees.
//
// Errors:
//   - ErrEmptyGraph when the graph has no vertices.
//   - matrix.ErrNaNInf when accumulated weights overflow.
//
// Complexity:
//   - Time O(V² + E), Space O(V²).
func (g *Graph) AdjacencyMatrix() (*matrix.Dense, []int, error) {
	ids := g.Vertices()
	if len(ids) == 0 {
		return nil, nil, ErrEmptyGraph
	}
	index := make(map[int]int, len(ids))
	for i, id := range ids {
		index[id] = i
	}
	n := len(ids)
	data := make([]float64, n*n)
	weighted := g.Weighted()
	var i, j int
	var w float64
	for _, e := range g.Edges() {
		w = 1
		if weighted {
			w = e.Weight
		}
		i, j = index[e.From], index[e.To]
		if i == j {
			w *= 2
		}
		data[i*n+j] += w
		if i != j {
			data[j*n+i] += w
		}
	}
	A, err := matrix.NewDenseFrom(n, n, data)
	if err != nil {
		return nil, nil, fmt.Errorf("AdjacencyMatrix: %w", err)
	}

	return A, ids, nil
}
