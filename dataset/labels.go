// SPDX-License-Identifier: MIT

package dataset

// DefaultClusterFallback is the cluster count used when labels carry no
// usable grouping (fewer than two distinct values).
const DefaultClusterFallback = 3

// DistinctLabels counts the distinct values in labels (exact comparison).
// Complexity: O(n).
func DistinctLabels(labels []float64) int {
	seen := make(map[float64]struct{}, len(labels))
	for _, l := range labels {
		seen[l] = struct{}{}
	}

	return len(seen)
}

// ClusterCount returns DistinctLabels(labels), or fallback when fewer than
// two distinct labels exist.
func ClusterCount(labels []float64, fallback int) int {
	if k := DistinctLabels(labels); k >= 2 {
		return k
	}

	return fallback
}
