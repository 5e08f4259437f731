package dataset_test

import (
	"fmt"

	"github.com/katalvlaran/lvlearn/dataset"
)

// ExampleLinSpace shows the pinned end point.
func ExampleLinSpace() {
	xs, _ := dataset.LinSpace(0, 10, 5)
	fmt.Println(xs)

	// Output:
	// [0 2 4 6 10]
}

// ExampleClusterCount infers k from a label column.
func ExampleClusterCount() {
	fmt.Println(dataset.ClusterCount([]float64{0, 0, 1, 1}, dataset.DefaultClusterFallback))
	fmt.Println(dataset.ClusterCount([]float64{7, 7}, dataset.DefaultClusterFallback))

	// Output:
	// 2
	// 3
}
