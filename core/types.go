// SPDX-License-Identifier: MIT

// Package core defines the Graph and Edge types used to connect samples,
// and provides thread-safe primitives for building and querying graphs.
//
// All core APIs use separate sync.RWMutex locks internally (muVert for vertices,
// muEdgeAdj for edges and adjacency). Lock order is always muVert → muEdgeAdj.
//
// Errors:
//
//	ErrNegativeVertexID    - vertex ID is below zero.
//	ErrVertexNotFound      - requested vertex does not exist.
//	ErrBadWeight           - non-zero weight on an unweighted graph, or a non-finite weight.
//	ErrLoopNotAllowed      - self-loop when loops are disabled.
//	ErrMultiEdgeNotAllowed - parallel edge when multi-edges are disabled.
//	ErrEmptyGraph          - matrix view requested on a graph without vertices.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrNegativeVertexID indicates a vertex ID below zero; IDs are sample indices.
	ErrNegativeVertexID = errors.New("core: vertex ID must be >= 0")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrBadWeight indicates a non-zero weight on an unweighted graph or a NaN/Inf weight.
	ErrBadWeight = errors.New("core: bad edge weight")

	// ErrLoopNotAllowed indicates a self-loop was attempted when loops are disabled.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a parallel edge was attempted when multi-edges are disabled.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")

	// ErrEmptyGraph indicates a whole-graph view was requested on a graph with no vertices.
	ErrEmptyGraph = errors.New("core: graph has no vertices")
)

// Edge is an undirected connection between two sample vertices.
//
// From < To for every non-loop edge; AddEdge normalizes the endpoint order.
type Edge struct {
	// ID is the insertion index of the edge (0, 1, 2, …).
	ID int

	// From is the smaller endpoint.
	From int

	// To is the larger endpoint.
	To int

	// Weight is the stored weight; unweighted graphs keep 0 and count the edge as 1.
	Weight float64
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithWeighted allows non-zero edge weights in the Graph.
func WithWeighted() GraphOption {
	return func(g *Graph) { g.weighted = true }
}

// WithMultiEdges permits parallel edges between the same vertices.
func WithMultiEdges() GraphOption {
	return func(g *Graph) { g.allowMulti = true }
}

// WithLoops permits self-loops (edges from a vertex to itself).
func WithLoops() GraphOption {
	return func(g *Graph) { g.allowLoops = true }
}

// Graph is an undirected in-memory graph over non-negative integer vertex IDs.
//
// muVert protects vertices; muEdgeAdj protects edges and adjacency.
type Graph struct {
	muVert    sync.RWMutex // guards vertices
	muEdgeAdj sync.RWMutex // guards edges and adjacency

	// Configuration flags
	weighted   bool // allow non-zero weights
	allowMulti bool // allow parallel edges
	allowLoops bool // allow self-loops

	// Storage
	vertices map[int]struct{} // vertex ID set
	edges    []Edge           // edge ID → Edge (IDs are dense insertion indices)

	// adjacency[u][v] lists the IDs of edges joining u and v; mirrored for v→u.
	adjacency map[int]map[int][]int
}

// NewGraph creates an empty Graph with the given options.
// By default, Graph is unweighted, with no loops and no multi-edges.
// Complexity: O(1)
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		vertices:  make(map[int]struct{}),
		adjacency: make(map[int]map[int][]int),
	}
	// Apply options
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// Weighted reports whether non-zero weights are permitted.
func (g *Graph) Weighted() bool {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return g.weighted
}

// Looped reports whether self-loops are permitted.
func (g *Graph) Looped() bool {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return g.allowLoops
}

// Multigraph reports whether parallel edges are permitted.
func (g *Graph) Multigraph() bool {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return g.allowMulti
}
