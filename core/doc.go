// Package core provides a thread-safe, undirected in-memory Graph whose
// vertices are sample indices.
//
// The graph carries the connectivity used by graph-based clustering: an
// edge joins two samples that are closer than a distance threshold.
//
//   - Unweighted by default; WithWeighted permits real weights.
//   - No self-loops unless WithLoops.
//   - No parallel edges unless WithMultiEdges, so re-adding a known pair
//     returns ErrMultiEdgeNotAllowed and leaves the graph unchanged.
//   - Separate sync.RWMutex for vertices (muVert) and edges+adjacency
//     (muEdgeAdj).
//
// Deterministic iteration: Vertices, Neighbors and Isolated are ascending,
// Edges follows insertion order, and AdjacencyMatrix rows follow Vertices.
//
// Quick example:
//
//	g := core.NewGraph()
//	g.AddVertices(4)
//	_, _ = g.AddEdge(0, 1, 0)
//	_, err := g.AddEdge(1, 0, 0) // ErrMultiEdgeNotAllowed
//	A, ids, _ := g.AdjacencyMatrix()
package core
