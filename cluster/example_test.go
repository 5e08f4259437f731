package cluster_test

import (
	"fmt"

	"github.com/katalvlaran/lvlearn/cluster"
	"github.com/katalvlaran/lvlearn/matrix"
)

// ExampleAgglomerative_Assign clusters two well separated pairs.
func ExampleAgglomerative_Assign() {
	pts, _ := matrix.NewDenseFromRows([][]float64{
		{0, 0}, {5, 5}, {0.2, 0}, {5, 5.3},
	})
	labels, _ := cluster.Agglomerative{K: 2}.Assign(pts)
	fmt.Println(labels)

	// Output:
	// [0 1 0 1]
}

// ExampleGraphNewman_Assign: points closer than 0.5 share an edge.
func ExampleGraphNewman_Assign() {
	pts, _ := matrix.NewDenseFromRows([][]float64{
		{0, 0}, {0.3, 0}, {0, 0.3}, {3, 3}, {3.3, 3}, {3, 3.3}, {9, 9},
	})
	labels, _ := cluster.GraphNewman{}.Assign(pts)
	fmt.Println(labels)

	// Output:
	// [0 0 0 1 1 1 2]
}
