// SPDX-License-Identifier: MIT

package cluster

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/lvlearn/core"
	"github.com/katalvlaran/lvlearn/matrix"
)

const (
	// DefaultNewmanEpsilon is the tolerance below which an eigenvalue or a
	// modularity gain counts as zero.
	DefaultNewmanEpsilon = 1e-9

	// DefaultMaxIterations bounds each power iteration.
	DefaultMaxIterations = 10000

	// powerTolerance is the L2 change between iterates that ends a power iteration.
	powerTolerance = 1e-12
)

// Newman is the leading-eigenvector modularity method with recursive bisection.
type Newman struct {
	Epsilon       float64 // <= 0 means DefaultNewmanEpsilon
	MaxIterations int     // <= 0 means DefaultMaxIterations
}

// Communities partitions the vertices of g. The i-th label belongs to the
// i-th vertex of g.Vertices().
//
// Implementation:
//   - Stage 1: take A and degrees k from g.AdjacencyMatrix; 2m = Σk.
//   - Stage 2: isolated vertices become singletons; the rest start as one group.
//   - Stage 3: split each group by the sign of the leading eigenvector of its
//     generalized modularity matrix B^(g) = B_g - diag(rowsum(B_g)), where
//     B = A - k kᵀ / 2m. A group stays whole when the leading eigenvalue is
//     ≤ ε, the split is one-sided, or the modularity gain is ≤ ε.
//   - Stage 4: renumber labels by first appearance.
//
// Errors:
//   - core.ErrEmptyGraph for a graph without vertices.
//
// Complexity:
//   - Each split costs O(|g|²) per power-iteration step.
func (nw Newman) Communities(g *core.Graph) ([]int, error) {
	A, _, err := g.AdjacencyMatrix()
	if err != nil {
		return nil, fmt.Errorf("Newman.Communities: %w", err)
	}
	n := A.Rows()
	deg := make([]float64, n)
	for i := 0; i < n; i++ {
		deg[i] = floats.Sum(A.RowView(i))
	}
	twoM := floats.Sum(deg)

	labels := make([]int, n)
	next := 0
	var connected []int
	for i := 0; i < n; i++ {
		if deg[i] == 0 {
			labels[i] = next
			next++
			continue
		}
		connected = append(connected, i)
	}

	queue := [][]int{}
	if len(connected) > 0 {
		queue = append(queue, connected)
	}
	for len(queue) > 0 {
		group := queue[0]
		queue = queue[1:]
		left, right, err := nw.bisect(A, deg, twoM, group)
		if err != nil {
			return nil, fmt.Errorf("Newman.Communities: %w", err)
		}
		if right == nil {
			for _, v := range group {
				labels[v] = next
			}
			next++
			continue
		}
		queue = append(queue, left, right)
	}
	Renumber(labels)

	return labels, nil
}

// bisect splits group in two, or returns (group, nil) when it is indivisible.
func (nw Newman) bisect(A *matrix.Dense, deg []float64, twoM float64, group []int) ([]int, []int, error) {
	eps := nw.Epsilon
	if eps <= 0 {
		eps = DefaultNewmanEpsilon
	}
	size := len(group)
	if size < 2 {
		return group, nil, nil
	}

	Bg, err := modularityMatrix(A, deg, twoM, group)
	if err != nil {
		return nil, nil, err
	}
	lambda, v, err := nw.leadingEigen(Bg)
	if err != nil {
		return nil, nil, err
	}
	if lambda <= eps {
		return group, nil, nil
	}

	s := make([]float64, size)
	var left, right []int
	for i, x := range v {
		if x > 0 {
			s[i] = 1
			left = append(left, group[i])
		} else {
			s[i] = -1
			right = append(right, group[i])
		}
	}
	if len(left) == 0 || len(right) == 0 {
		return group, nil, nil
	}
	Bs, err := matrix.MatVec(Bg, s)
	if err != nil {
		return nil, nil, err
	}
	if gain := floats.Dot(s, Bs) / (2 * twoM); gain <= eps {
		return group, nil, nil
	}

	return left, right, nil
}

// modularityMatrix returns B^(g) restricted to group.
//
// Errors: matrix.ErrNaNInf when a degree or 2m makes an entry non-finite.
func modularityMatrix(A *matrix.Dense, deg []float64, twoM float64, group []int) (*matrix.Dense, error) {
	size := len(group)
	data := make([]float64, size*size)
	for a, i := range group {
		row := A.RowView(i)
		out := data[a*size : (a+1)*size]
		var rowSum float64
		for c, j := range group {
			out[c] = row[j] - deg[i]*deg[j]/twoM
			rowSum += out[c]
		}
		out[a] -= rowSum
	}

	return matrix.NewDenseFrom(size, size, data)
}

// leadingEigen returns the largest eigenvalue of the symmetric matrix B and
// its unit eigenvector, by power iteration on B + cI where c is the largest
// absolute row sum (so every shifted eigenvalue is non-negative).
func (nw Newman) leadingEigen(B *matrix.Dense) (float64, []float64, error) {
	maxIter := nw.MaxIterations
	if maxIter <= 0 {
		maxIter = DefaultMaxIterations
	}
	n := B.Rows()
	var shift float64
	for i := 0; i < n; i++ {
		shift = math.Max(shift, floats.Norm(B.RowView(i), 1))
	}

	v := make([]float64, n)
	for i := range v {
		v[i] = 1 + float64(i)/float64(n)
	}
	floats.Scale(1/floats.Norm(v, 2), v)

	var w []float64
	var err error
	for it := 0; it < maxIter; it++ {
		if w, err = matrix.MatVec(B, v); err != nil {
			return 0, nil, err
		}
		floats.AddScaled(w, shift, v)
		norm := floats.Norm(w, 2)
		if norm == 0 {
			break
		}
		floats.Scale(1/norm, w)
		done := floats.Distance(w, v, 2) < powerTolerance
		v = w
		if done {
			break
		}
	}

	Bv, err := matrix.MatVec(B, v)
	if err != nil {
		return 0, nil, err
	}

	return floats.Dot(v, Bv), v, nil
}

// GraphNewman clusters points with Newman's method over the graph joining
// samples closer than Threshold.
type GraphNewman struct {
	Threshold float64 // <= 0 means matrix.DefaultEdgeThreshold
	Newman    Newman
}

var _ Assigner = GraphNewman{}

// Assign builds the threshold graph of points and runs Newman on it.
func (gn GraphNewman) Assign(points *matrix.Dense) ([]int, error) {
	g, err := gn.Graph(points)
	if err != nil {
		return nil, err
	}

	return gn.Newman.Communities(g)
}

// Graph returns the undirected graph over samples 0..n-1 with an edge for
// every pair at distance strictly below the threshold. Repeated pairs are
// dropped by the graph's no-multi-edge policy.
func (gn GraphNewman) Graph(points *matrix.Dense) (*core.Graph, error) {
	thr := gn.Threshold
	if thr <= 0 {
		thr = matrix.DefaultEdgeThreshold
	}
	dist, err := matrix.PairwiseDistances(points)
	if err != nil {
		return nil, fmt.Errorf("GraphNewman.Graph: %w", err)
	}
	pairs, err := matrix.ThresholdPairs(dist, matrix.WithEdgeThreshold(thr))
	if err != nil {
		return nil, fmt.Errorf("GraphNewman.Graph: %w", err)
	}

	g := core.NewGraph()
	g.AddVertices(points.Rows())
	if err = addUnique(g, pairs); err != nil {
		return nil, fmt.Errorf("GraphNewman.Graph: %w", err)
	}

	return g, nil
}

// addUnique adds each pair as an unweighted edge, skipping pairs already present.
func addUnique(g *core.Graph, pairs []matrix.Pair) error {
	for _, p := range pairs {
		if _, err := g.AddEdge(p.I, p.J, 0); err != nil && !errors.Is(err, core.ErrMultiEdgeNotAllowed) {
			return err
		}
	}

	return nil
}
