// Package shortestpath defines the single-source shortest-path contract
// shared by the dijkstra, bellmanford, spfa, toposort and astar backends.
//
// A backend is constructed against a core.Graph and a start vertex and
// runs to completion inside its constructor. Afterwards it answers two
// questions:
//
//	DistTo(v)      – the best distance to v, and whether v was reached.
//	Solution(goal) – the vertices start..goal inclusive on a shortest path,
//	                 or ErrUnreachable when goal was never reached.
//
// Consumers depend only on Solver and Factory, never on a concrete backend:
// a Factory is the constructor closure a seam finder (or any other
// reduction) receives by injection, so swapping Dijkstra for SPFA or the
// DAG solver never touches the reduction.
//
// Tree is the shared predecessor/distance bookkeeping. Its invariant: the
// start has distance 0 and no predecessor edge; every other recorded v has
// EdgeTo(v).To == v and DistTo(v) == DistTo(EdgeTo(v).From) + EdgeTo(v).Weight
// at the moment of its last relaxation.
package shortestpath
