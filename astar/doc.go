// Package astar implements A* single-pair shortest-path search.
//
// A* is Dijkstra with a goal in mind: the frontier is ordered by
// distTo(v) + EstimatedDistance(v, goal), so vertices that look closer to
// the goal are expanded first. The search stops as soon as the goal leaves
// the frontier.
//
// Correctness requires an admissible heuristic (one that never
// overestimates). Consistency is not required: a vertex that is reached
// again more cheaply after expansion is re-opened. A non-admissible
// heuristic does not raise an error; it may silently yield a
// suboptimal path.
//
// Solver satisfies shortestpath.Solver, but only for its own goal:
// Solution(other) returns ErrGoalMismatch. Factory(goal) adapts New to a
// shortestpath.Factory for reductions whose sink is known in advance; the
// graph passed to it must implement core.AStarGraph.
//
// Complexity:
//
//   - Time:   O((V + E) log V) worst case (heuristic ≡ 0); usually far less
//   - Memory: O(V)
package astar
