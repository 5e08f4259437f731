// SPDX-License-Identifier: MIT

package cluster

import (
	"errors"

	"github.com/katalvlaran/lvlearn/matrix"
)

// Sentinel errors for clustering.
var (
	// ErrInvalidClusterCount indicates a requested cluster count below 1.
	ErrInvalidClusterCount = errors.New("cluster: cluster count must be >= 1")

	// ErrAssignmentLength indicates an assignment whose length differs from the point count.
	ErrAssignmentLength = errors.New("cluster: assignment length mismatch")

	// ErrInvalidLabel indicates a negative cluster id in an assignment.
	ErrInvalidLabel = errors.New("cluster: negative cluster id")

	// ErrTwoDimensional indicates points that are not n×2.
	ErrTwoDimensional = errors.New("cluster: points must have 2 columns")
)

// Assigner maps each row of points to a cluster id.
type Assigner interface {
	Assign(points *matrix.Dense) ([]int, error)
}

// Linkage selects the inter-cluster distance used by Agglomerative.
type Linkage int

const (
	// AverageLinkage is the size-weighted mean pairwise distance (UPGMA).
	AverageLinkage Linkage = iota
	// SingleLinkage is the closest pairwise distance.
	SingleLinkage
	// CompleteLinkage is the farthest pairwise distance.
	CompleteLinkage
)

// String returns the lower-case linkage name.
func (l Linkage) String() string {
	switch l {
	case SingleLinkage:
		return "single"
	case CompleteLinkage:
		return "complete"
	default:
		return "average"
	}
}

// ParseLinkage maps "average", "single" or "complete" to a Linkage.
func ParseLinkage(s string) (Linkage, bool) {
	switch s {
	case "average", "":
		return AverageLinkage, true
	case "single":
		return SingleLinkage, true
	case "complete":
		return CompleteLinkage, true
	}

	return AverageLinkage, false
}

// Renumber rewrites labels in place so ids are 0..k-1 in order of first
// appearance, and returns k.
func Renumber(labels []int) int {
	next := 0
	seen := make(map[int]int, len(labels))
	for i, l := range labels {
		id, ok := seen[l]
		if !ok {
			id = next
			seen[l] = id
			next++
		}
		labels[i] = id
	}

	return next
}
