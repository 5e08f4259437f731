// SPDX-License-Identifier: MIT

package core

import (
	"fmt"
	"math"
)

// AddEdge connects from and to, creating missing endpoints, and returns the new edge ID.
//
// Implementation:
//   - Stage 1: validate IDs, weight policy and loop policy.
//   - Stage 2: under muVert, ensure both endpoints exist.
//   - Stage 3: under muEdgeAdj, reject a parallel edge unless multi-edges are enabled,
//     then append the edge and mirror it in adjacency.
//
// Behavior highlights:
//   - Endpoints are normalized so that Edge.From <= Edge.To.
//   - A rejected edge leaves the graph unchanged apart from endpoint creation.
//
// Errors:
//   - ErrNegativeVertexID, ErrBadWeight, ErrLoopNotAllowed, ErrMultiEdgeNotAllowed.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to int, weight float64) (int, error) {
	if from < 0 || to < 0 {
		return -1, fmt.Errorf("AddEdge(%d,%d): %w", from, to, ErrNegativeVertexID)
	}
	if math.IsNaN(weight) || math.IsInf(weight, 0) || (!g.Weighted() && weight != 0) {
		return -1, fmt.Errorf("AddEdge(%d,%d): weight %v: %w", from, to, weight, ErrBadWeight)
	}
	if from == to && !g.Looped() {
		return -1, fmt.Errorf("AddEdge(%d,%d): %w", from, to, ErrLoopNotAllowed)
	}
	if from > to {
		from, to = to, from
	}

	g.muVert.Lock()
	g.vertices[from] = struct{}{}
	g.vertices[to] = struct{}{}
	allowMulti := g.allowMulti
	g.muVert.Unlock()

	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()
	if !allowMulti && len(g.adjacency[from][to]) > 0 {
		return -1, fmt.Errorf("AddEdge(%d,%d): %w", from, to, ErrMultiEdgeNotAllowed)
	}
	id := len(g.edges)
	g.edges = append(g.edges, Edge{ID: id, From: from, To: to, Weight: weight})
	g.link(from, to, id)
	if from != to {
		g.link(to, from, id)
	}

	return id, nil
}

// link records edge id under adjacency[u][v]. Caller holds muEdgeAdj.
func (g *Graph) link(u, v, id int) {
	row, ok := g.adjacency[u]
	if !ok {
		row = make(map[int][]int)
		g.adjacency[u] = row
	}
	row[v] = append(row[v], id)
}

// HasEdge reports whether at least one edge joins u and v (order-insensitive).
func (g *Graph) HasEdge(u, v int) bool {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return len(g.adjacency[u][v]) > 0
}

// Edges returns a copy of every edge in ascending ID order.
// Complexity: O(E).
func (g *Graph) Edges() []Edge {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	out := make([]Edge, len(g.edges))
	copy(out, g.edges)

	return out
}

// EdgeCount returns |E|.
func (g *Graph) EdgeCount() int {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return len(g.edges)
}
