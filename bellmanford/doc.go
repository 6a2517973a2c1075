// Package bellmanford implements the Bellman-Ford single-source
// shortest-path algorithm as a shortestpath.Solver.
//
// The graph is only enumerable locally (Neighbors), so the solver first
// discovers the reachable vertex set with a breadth-first traversal
// (bfs.Reachable). It then sweeps every discovered vertex and relaxes all
// its outgoing edges, for at most |V|-1 rounds, stopping early once a
// round changes nothing. A final sweep that still improves a distance
// proves a negative cycle is reachable.
//
// Unlike Dijkstra, negative edge weights are accepted.
//
// Complexity:
//
//   - Time:   O(V·E) worst case; O(k·E) when the distances settle after k rounds
//   - Memory: O(V)
package bellmanford
