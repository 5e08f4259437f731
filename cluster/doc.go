// Package cluster assigns 2-D samples to clusters.
//
// Two algorithms are provided behind the Assigner interface:
//
//   - Agglomerative: bottom-up merging over the full pairwise Euclidean
//     distance matrix until K clusters remain (average, single or complete
//     linkage via Lance–Williams updates).
//   - GraphNewman: Newman's leading-eigenvector modularity method over the
//     graph whose edges join samples closer than a threshold. The number of
//     clusters follows from the data.
//
// Cluster ids are always renumbered 0..k-1 by first appearance in sample
// order, so equal partitions produce equal assignments.
package cluster
