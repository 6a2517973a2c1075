// Package core defines the minimal graph contracts shared by every
// shortest-path backend and by the seam-finding reductions.
//
// A graph here is a capability, not a container: the only thing a solver
// may ask of it is "which edges leave this vertex?". This lets callers
// describe very large or implicit graphs (a pixel grid, a lattice, a state
// space) without ever materialising an adjacency structure.
//
// Contracts:
//
//	Edge[V]        – immutable (From, To, Weight) triple.
//	Graph[V]       – Neighbors(v) []Edge[V]; enumeration is local only.
//	AStarGraph[V]  – Graph plus EstimatedDistance(v, goal), an admissible heuristic.
//	Sized          – optional Order() hint so solvers can pre-size their maps.
//
// Adapters:
//
//	GraphFunc[V]       – turns a closure into a Graph.
//	AStarGraphFunc[V]  – pairs a neighbour closure with a heuristic closure.
//
// For tests, examples and small explicit inputs, Digraph[V] is a
// materialised, thread-safe adjacency list that satisfies AStarGraph.
//
// Vertex identity is any comparable Go type. Vertices are values with no
// lifecycle of their own; two equal values are the same vertex.
package core
