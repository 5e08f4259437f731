// SPDX-License-Identifier: MIT

package core

import "sort"

// AddVertex inserts id into the graph. Re-adding an existing vertex is a no-op.
//
// Errors:
//   - ErrNegativeVertexID if id < 0.
//
// Complexity: O(1) amortized.
func (g *Graph) AddVertex(id int) error {
	if id < 0 {
		return ErrNegativeVertexID
	}
	g.muVert.Lock()
	defer g.muVert.Unlock()
	g.vertices[id] = struct{}{}

	return nil
}

// AddVertices inserts the vertices 0..n-1, the usual layout for a sample set.
// n <= 0 adds nothing.
// Complexity: O(n).
func (g *Graph) AddVertices(n int) {
	g.muVert.Lock()
	defer g.muVert.Unlock()
	for id := 0; id < n; id++ {
		g.vertices[id] = struct{}{}
	}
}

// HasVertex reports whether id is present.
func (g *Graph) HasVertex(id int) bool {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	_, ok := g.vertices[id]

	return ok
}

// Vertices returns all vertex IDs in ascending order.
// Complexity: O(V log V).
func (g *Graph) Vertices() []int {
	g.muVert.RLock()
	ids := make([]int, 0, len(g.vertices))
	for id := range g.vertices {
		ids = append(ids, id)
	}
	g.muVert.RUnlock()
	sort.Ints(ids)

	return ids
}

// VertexCount returns |V|.
func (g *Graph) VertexCount() int {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return len(g.vertices)
}
