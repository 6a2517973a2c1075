// Package toposort implements the DAG shortest-path backend: order the
// reachable vertices topologically, then relax every edge exactly once in
// that order.
//
// Because every edge u→v is relaxed only after all edges into u, each
// vertex's distance is final when it is swept. This makes it the fastest
// correct backend for acyclic inputs such as seam lattices, whose edges
// all point from one column to the next. Negative weights are fine; cycles
// are not: a cycle reachable from start ends the run with
// dfs.ErrCycleDetected.
//
// Complexity:
//
//   - Time:   O(V + E) (one DFS plus one relaxation sweep)
//   - Memory: O(V)
//
// Neighbors is called twice per vertex (once by the DFS, once by the
// sweep); wrap an expensive graph in a cache if that matters.
package toposort
