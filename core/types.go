package core

import (
	"errors"
	"fmt"
)

// Sentinel errors for core graph operations.
var (
	// ErrNilGraph indicates that a nil Graph was supplied where one is required.
	ErrNilGraph = errors.New("core: graph is nil")

	// ErrBadWeight indicates a NaN or infinite edge weight.
	ErrBadWeight = errors.New("core: edge weight must be finite")
)

// Edge is a directed, weighted connection From→To.
//
// Edges are values: they are built on demand while enumerating neighbours
// and are never mutated afterwards.
type Edge[V comparable] struct {
	// From is the tail vertex.
	From V

	// To is the head vertex.
	To V

	// Weight is the traversal cost. Seam graphs only produce finite,
	// non-negative weights; Bellman-Ford and SPFA also accept negative ones.
	Weight float64
}

// String renders the edge as "from→to(weight)".
func (e Edge[V]) String() string {
	return fmt.Sprintf("%v→%v(%g)", e.From, e.To, e.Weight)
}

// Graph is the read-only neighbour-enumeration capability consumed by
// every shortest-path backend.
type Graph[V comparable] interface {
	// Neighbors returns the outgoing edges of v. Every returned edge must
	// have From == v. An unknown vertex simply has no neighbours.
	Neighbors(v V) []Edge[V]
}

// AStarGraph extends Graph with a heuristic estimate of the remaining
// distance from v to goal. The estimate must never exceed the true
// shortest distance (admissibility) for A* to return an optimal path.
type AStarGraph[V comparable] interface {
	Graph[V]

	// EstimatedDistance returns a non-negative lower bound on dist(v, goal).
	EstimatedDistance(v, goal V) float64
}

// Sized is an optional capability: a graph that knows (or can bound) its
// vertex count lets solvers allocate their maps once.
type Sized interface {
	// Order returns the number of vertices, or an upper bound on it.
	Order() int
}

// GraphFunc adapts an ordinary function to the Graph interface.
type GraphFunc[V comparable] func(v V) []Edge[V]

// Neighbors calls f(v).
func (f GraphFunc[V]) Neighbors(v V) []Edge[V] { return f(v) }

// AStarGraphFunc pairs a neighbour function with a heuristic function.
// A nil Heuristic estimates zero everywhere, which is always admissible
// for non-negative weights and degrades A* to Dijkstra.
type AStarGraphFunc[V comparable] struct {
	Next      func(v V) []Edge[V]
	Heuristic func(v, goal V) float64
}

// Neighbors calls Next(v).
func (g AStarGraphFunc[V]) Neighbors(v V) []Edge[V] { return g.Next(v) }

// EstimatedDistance calls Heuristic(v, goal), or returns 0 when unset.
func (g AStarGraphFunc[V]) EstimatedDistance(v, goal V) float64 {
	if g.Heuristic == nil {
		return 0
	}

	return g.Heuristic(v, goal)
}

// OrderOf returns g's Order() if g implements Sized, otherwise 0.
func OrderOf[V comparable](g Graph[V]) int {
	if s, ok := g.(Sized); ok {
		if n := s.Order(); n > 0 {
			return n
		}
	}

	return 0
}
