// SPDX-License-Identifier: MIT

package cluster

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvlearn/matrix"
)

// Agglomerative is bottom-up hierarchical clustering.
type Agglomerative struct {
	K           int     // requested cluster count, >= 1
	Linkage     Linkage // default AverageLinkage
	MaxDistance float64 // > 0 stops merging once the closest pair is farther; 0 disables
}

var _ Assigner = Agglomerative{}

// Assign builds the pairwise Euclidean distance matrix of points and
// clusters it with BottomUp.
func (a Agglomerative) Assign(points *matrix.Dense) ([]int, error) {
	dist, err := matrix.PairwiseDistances(points)
	if err != nil {
		return nil, fmt.Errorf("Agglomerative.Assign: %w", err)
	}

	return a.BottomUp(dist)
}

// BottomUp merges the two closest clusters until K remain.
//
// Implementation:
//   - Stage 1: copy the distance matrix and cache each row's nearest active neighbor.
//   - Stage 2: repeatedly merge the globally closest pair (lowest index wins ties),
//     update distances to the merged cluster with the Lance–Williams rule,
//     and refresh only the neighbor caches that pointed at the merged pair.
//   - Stage 3: renumber the surviving clusters by first appearance.
//
// Behavior highlights:
//   - K >= n returns every sample as its own cluster.
//   - With MaxDistance > 0 more than K clusters may remain.
//
// Errors:
//   - ErrInvalidClusterCount for K < 1.
//   - matrix.ErrDimensionMismatch for a non-square dist.
//
// Complexity:
//   - Time O(n²) per merge in the worst case, typically far less; Space O(n²).
func (a Agglomerative) BottomUp(dist matrix.Matrix) ([]int, error) {
	if a.K < 1 {
		return nil, fmt.Errorf("Agglomerative.BottomUp: k=%d: %w", a.K, ErrInvalidClusterCount)
	}
	if err := matrix.ValidateSquare(dist); err != nil {
		return nil, fmt.Errorf("Agglomerative.BottomUp: %w", err)
	}
	n := dist.Rows()
	labels := make([]int, n)
	for i := range labels {
		labels[i] = i
	}
	if a.K >= n {
		return labels, nil
	}

	d := make([]float64, n*n)
	var err error
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if d[i*n+j], err = dist.At(i, j); err != nil {
				return nil, fmt.Errorf("Agglomerative.BottomUp: %w", err)
			}
		}
	}

	active := make([]bool, n)
	size := make([]int, n)
	nn := make([]int, n)
	nnDist := make([]float64, n)
	members := make([][]int, n)
	for i := 0; i < n; i++ {
		active[i], size[i], members[i] = true, 1, []int{i}
	}
	nearest := func(i int) {
		nn[i], nnDist[i] = -1, math.Inf(1)
		for j := 0; j < n; j++ {
			if j != i && active[j] && d[i*n+j] < nnDist[i] {
				nn[i], nnDist[i] = j, d[i*n+j]
			}
		}
	}
	for i := 0; i < n; i++ {
		nearest(i)
	}

	for clusters := n; clusters > a.K; clusters-- {
		i := -1
		for c := 0; c < n; c++ {
			if active[c] && nn[c] >= 0 && (i < 0 || nnDist[c] < nnDist[i]) {
				i = c
			}
		}
		if i < 0 || (a.MaxDistance > 0 && nnDist[i] > a.MaxDistance) {
			break
		}
		j := nn[i]
		if j < i {
			i, j = j, i
		}

		// Merge j into i.
		for m := 0; m < n; m++ {
			if !active[m] || m == i || m == j {
				continue
			}
			v := a.Linkage.update(d[i*n+m], d[j*n+m], size[i], size[j])
			d[i*n+m], d[m*n+i] = v, v
		}
		active[j] = false
		size[i] += size[j]
		members[i] = append(members[i], members[j]...)
		members[j] = nil

		nearest(i)
		for m := 0; m < n; m++ {
			if !active[m] || m == i {
				continue
			}
			switch {
			case nn[m] == i || nn[m] == j:
				nearest(m)
			case d[m*n+i] < nnDist[m] || (d[m*n+i] == nnDist[m] && i < nn[m]):
				nn[m], nnDist[m] = i, d[m*n+i]
			}
		}
	}

	for c := 0; c < n; c++ {
		for _, s := range members[c] {
			labels[s] = c
		}
	}
	Renumber(labels)

	return labels, nil
}

// update is the Lance–Williams distance from the merge of clusters i and j
// (sizes ni, nj) to a third cluster, given its distances di and dj.
func (l Linkage) update(di, dj float64, ni, nj int) float64 {
	switch l {
	case SingleLinkage:
		return math.Min(di, dj)
	case CompleteLinkage:
		return math.Max(di, dj)
	default:
		wi := float64(ni) / float64(ni+nj)

		return wi*di + (1-wi)*dj
	}
}
