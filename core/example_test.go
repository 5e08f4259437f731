package core_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvlearn/core"
)

// ExampleGraph_AddEdge builds a small sample graph and shows duplicate rejection.
func ExampleGraph_AddEdge() {
	g := core.NewGraph()
	g.AddVertices(4)

	_, _ = g.AddEdge(0, 1, 0)
	_, _ = g.AddEdge(1, 2, 0)
	_, err := g.AddEdge(2, 1, 0)
	fmt.Println(errors.Is(err, core.ErrMultiEdgeNotAllowed))

	A, ids, _ := g.AdjacencyMatrix()
	fmt.Println(ids)
	fmt.Print(A)
	fmt.Println(g.Isolated())

	// Output:
	// true
	// [0 1 2 3]
	// [0, 1, 0, 0]
	// [1, 0, 1, 0]
	// [0, 1, 0, 0]
	// [0, 0, 0, 0]
	// [3]
}
