// Package dijkstra implements Dijkstra's single-source shortest-path
// algorithm as a shortestpath.Solver over any core.Graph.
//
// Dijkstra computes the minimum-cost path from a start vertex to every
// reachable vertex of a graph with non-negative edge weights. It settles
// vertices in order of increasing distance using an addressable min-heap
// (minpq.HeapMinPQ) and relaxes each settled vertex's outgoing edges once.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Each vertex is removed from the frontier at most once.
//   - Each successful relaxation is one AddOrChangePriority, O(log V).
//   - Space: O(V)
//   - distance/predecessor maps plus at most V frontier entries
//     (decrease-key in place, no stale duplicates).
//
// Notes on implementation choices:
//
//   - The graph is enumerated lazily, so negative weights cannot be found
//     by an upfront scan; the first negative edge met during relaxation
//     aborts the run with shortestpath.ErrNegativeWeight.
//   - Equal-priority frontier entries are served in insertion order.
//
// Example:
//
//	s, err := dijkstra.New[string](g, "A")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	path, err := s.Solution("D")
package dijkstra
