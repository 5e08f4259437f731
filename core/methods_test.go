// SPDX-License-Identifier: MIT
// Package core_test verifies core.Graph method-level contracts.

package core_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlearn/core"
	"github.com/katalvlaran/lvlearn/matrix"
)

// TestGraph_AddVertex checks ID validation and idempotent insertion.
func TestGraph_AddVertex(t *testing.T) {
	g := core.NewGraph()

	require.ErrorIs(t, g.AddVertex(-1), core.ErrNegativeVertexID)
	require.NoError(t, g.AddVertex(3))
	require.NoError(t, g.AddVertex(3)) // duplicate is a no-op
	require.True(t, g.HasVertex(3))
	require.Equal(t, 1, g.VertexCount())

	g.AddVertices(3)
	require.Equal(t, []int{0, 1, 2, 3}, g.Vertices())
}

// TestGraph_EdgePolicies checks the default loop, weight and multi-edge policies.
func TestGraph_EdgePolicies(t *testing.T) {
	g := core.NewGraph()

	id, err := g.AddEdge(2, 1, 0)
	require.NoError(t, err)
	require.Equal(t, 0, id)

	_, err = g.AddEdge(1, 2, 0)
	require.ErrorIs(t, err, core.ErrMultiEdgeNotAllowed, "reversed pair is the same undirected edge")

	_, err = g.AddEdge(4, 4, 0)
	require.ErrorIs(t, err, core.ErrLoopNotAllowed)

	_, err = g.AddEdge(0, 1, 2.5)
	require.ErrorIs(t, err, core.ErrBadWeight)

	_, err = g.AddEdge(-1, 1, 0)
	require.ErrorIs(t, err, core.ErrNegativeVertexID)

	require.Equal(t, 1, g.EdgeCount())
	require.Equal(t, []core.Edge{{ID: 0, From: 1, To: 2}}, g.Edges())
	require.True(t, g.HasEdge(2, 1))
	require.False(t, g.HasEdge(0, 1))
}

func TestGraph_OptionsRelaxPolicies(t *testing.T) {
	g := core.NewGraph(core.WithWeighted(), core.WithLoops(), core.WithMultiEdges())
	require.True(t, g.Weighted())
	require.True(t, g.Looped())
	require.True(t, g.Multigraph())

	_, err := g.AddEdge(0, 1, 1.5)
	require.NoError(t, err)
	_, err = g.AddEdge(1, 0, 0.5)
	require.NoError(t, err)
	_, err = g.AddEdge(1, 1, 1)
	require.NoError(t, err)
	_, err = g.AddEdge(0, 2, math.Inf(1))
	require.ErrorIs(t, err, core.ErrBadWeight)

	deg, err := g.Degree(1)
	require.NoError(t, err)
	require.Equal(t, 4, deg, "two parallel edges plus a loop counted twice")

	nbs, err := g.Neighbors(1)
	require.NoError(t, err)
	require.Equal(t, []int{0, 1}, nbs)
}

func TestGraph_NeighborsDegreeIsolated(t *testing.T) {
	g := core.NewGraph()
	g.AddVertices(5)
	for _, e := range [][2]int{{0, 1}, {0, 2}, {3, 0}} {
		_, err := g.AddEdge(e[0], e[1], 0)
		require.NoError(t, err)
	}

	nbs, err := g.Neighbors(0)
	require.NoError(t, err)
	require.Equal(t, []int{1, 2, 3}, nbs)

	deg, err := g.Degree(0)
	require.NoError(t, err)
	require.Equal(t, 3, deg)

	require.Equal(t, []int{4}, g.Isolated())

	_, err = g.Neighbors(9)
	require.ErrorIs(t, err, core.ErrVertexNotFound)
	_, err = g.Degree(9)
	require.ErrorIs(t, err, core.ErrVertexNotFound)
}

func TestGraph_AdjacencyMatrix(t *testing.T) {
	_, _, err := core.NewGraph().AdjacencyMatrix()
	require.ErrorIs(t, err, core.ErrEmptyGraph)

	g := core.NewGraph(core.WithWeighted(), core.WithLoops())
	g.AddVertices(3)
	_, err = g.AddEdge(0, 2, 0.5)
	require.NoError(t, err)
	_, err = g.AddEdge(1, 1, 1)
	require.NoError(t, err)

	A, ids, err := g.AdjacencyMatrix()
	require.NoError(t, err)
	require.Equal(t, []int{0, 1, 2}, ids)
	require.Equal(t, "[0, 0, 0.5]\n[0, 2, 0]\n[0.5, 0, 0]\n", A.String())

	huge := core.NewGraph(core.WithWeighted(), core.WithMultiEdges())
	huge.AddVertices(2)
	for k := 0; k < 2; k++ {
		_, err = huge.AddEdge(0, 1, math.MaxFloat64)
		require.NoError(t, err)
	}
	_, _, err = huge.AdjacencyMatrix()
	require.ErrorIs(t, err, matrix.ErrNaNInf)
}
