// Package bfs provides breadth-first discovery over a lazily enumerated
// core.Graph, returning the visit order and hop depths.
//
// What
//
//   - Explore every vertex reachable from a start, in non-decreasing hop count.
//   - The graph is only ever asked for Neighbors(v); no global vertex list is
//     needed, which is exactly what Bellman-Ford requires to know "all
//     vertices" of an implicit graph.
//
// Determinism
//
//	Neighbours are enqueued in the order the graph returns them, so the
//	visit sequence is reproducible whenever Neighbors is.
//
// Complexity (V = reachable vertices, E = their outgoing edges)
//
//   - Time:   O(V + E)
//   - Memory: O(V)
package bfs
