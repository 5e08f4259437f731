// Package bfs provides breadth-first search over a core.Graph.
//
// What
//
//   - BFS explores vertices in non-decreasing edge distance from a start
//     vertex and returns the visit Order, Depth and Parent of each reached
//     vertex.
//   - Components partitions the graph into connected components.
//   - WithMaxDepth limits the search; WithOnVisit observes or aborts it;
//     WithContext cancels it.
//
// Determinism
//
//	core.Graph.Neighbors returns ids ascending and BFS enqueues them in that
//	order, so the visit sequence is reproducible. Components are ordered by
//	their smallest vertex and list their members ascending.
//
// Complexity
//
//	O(V + E log d) time for the sorted neighbor lists, O(V) extra memory.
package bfs
