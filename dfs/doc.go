// Package dfs computes depth-first orderings of a lazily enumerated
// core.Graph, starting from a single vertex.
//
// TopologicalOrder returns the vertices reachable from a start in reverse
// DFS postorder: for every edge u→v between reachable vertices, u precedes
// v. It is the first half of the DAG shortest-path backend (see package
// toposort), which then relaxes edges once in this order.
//
// Vertices move through three colours: White (unseen), Gray (on the
// current DFS path), Black (finished). Meeting a Gray vertex again means a
// back edge, i.e. a cycle, and the traversal stops with ErrCycleDetected.
//
// The traversal keeps an explicit stack instead of recursing, so a long
// path (one vertex per image column, say) cannot exhaust the goroutine
// stack.
//
// Complexity:
//
//   - Time:   O(V + E) (each reachable vertex and edge visited once)
//   - Memory: O(V)     (colour map, explicit stack, output)
package dfs
