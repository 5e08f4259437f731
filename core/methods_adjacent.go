// SPDX-License-Identifier: MIT

package core

import "sort"

// Neighbors returns the distinct vertices adjacent to id, ascending.
// A vertex with a self-loop lists itself.
//
// Errors:
//   - ErrVertexNotFound if id is not in the graph.
//
// Complexity: O(d log d).
func (g *Graph) Neighbors(id int) ([]int, error) {
	if !g.HasVertex(id) {
		return nil, ErrVertexNotFound
	}
	g.muEdgeAdj.RLock()
	row := g.adjacency[id]
	out := make([]int, 0, len(row))
	for v, ids := range row {
		if len(ids) > 0 {
			out = append(out, v)
		}
	}
	g.muEdgeAdj.RUnlock()
	sort.Ints(out)

	return out, nil
}

// Degree returns the number of edge endpoints at id; a self-loop counts twice.
//
// Errors:
//   - ErrVertexNotFound if id is not in the graph.
//
// Complexity: O(d).
func (g *Graph) Degree(id int) (int, error) {
	if !g.HasVertex(id) {
		return 0, ErrVertexNotFound
	}
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	deg := 0
	for v, ids := range g.adjacency[id] {
		if v == id {
			deg += 2 * len(ids)
			continue
		}
		deg += len(ids)
	}

	return deg, nil
}

// Isolated returns the vertices with no incident edge, ascending.
func (g *Graph) Isolated() []int {
	verts := g.Vertices()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	out := make([]int, 0)
	for _, id := range verts {
		if len(g.adjacency[id]) == 0 {
			out = append(out, id)
		}
	}

	return out
}
