// Package spfa implements the Shortest Path Faster Algorithm, a worklist
// variant of Bellman-Ford, as a shortestpath.Solver.
//
// Only vertices whose distance just improved are (re-)examined. The
// worklist is a FIFO queue paired with a membership set (queueSet), so a
// vertex already waiting is never enqueued twice and "is v pending?" is
// O(1). On sparse, DAG-like graphs such as seam lattices this touches far
// fewer edges than full Bellman-Ford rounds while producing the same
// distances once the queue drains.
//
// Negative weights are accepted. The first time one is seen the solver
// counts the reachable vertices (bfs.Reachable) and from then on tracks
// the hop length of every improving walk; a walk of |V| or more hops
// proves a negative cycle and ends the run with
// shortestpath.ErrNegativeCycle. Graphs without negative edges never pay
// for this bookkeeping.
//
// Complexity:
//
//   - Time:   O(V·E) worst case, typically close to O(E)
//   - Memory: O(V)
package spfa
