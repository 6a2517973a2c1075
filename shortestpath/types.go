package shortestpath

import (
	"errors"

	"github.com/katalvlaran/seamcarve/core"
)

// Sentinel errors shared by all backends.
var (
	// ErrUnreachable is returned by Solution when no path to goal exists.
	ErrUnreachable = errors.New("shortestpath: goal is unreachable from start")

	// ErrNegativeWeight is returned by backends that require non-negative weights.
	ErrNegativeWeight = errors.New("shortestpath: negative edge weight encountered")

	// ErrNegativeCycle is returned when a negative-weight cycle is reachable from start.
	ErrNegativeCycle = errors.New("shortestpath: negative cycle reachable from start")
)

// Solver answers shortest-path queries from a fixed start vertex.
type Solver[V comparable] interface {
	// Solution returns the vertices of a shortest path start..goal inclusive.
	Solution(goal V) ([]V, error)

	// DistTo returns the shortest distance to v and whether v was reached.
	DistTo(v V) (float64, bool)
}

// Factory builds a Solver by running a backend on g from start.
type Factory[V comparable] func(g core.Graph[V], start V) (Solver[V], error)

// Option configures behaviour common to every backend.
type Option[V comparable] func(*Options[V])

// Options holds the common backend settings.
type Options[V comparable] struct {
	// OnVisit fires whenever a backend settles (Dijkstra, A*), polls (SPFA)
	// or sweeps (Bellman-Ford, toposort) a vertex. Useful for measuring
	// search effort.
	OnVisit func(v V)
}

// DefaultOptions returns Options with a no-op OnVisit.
func DefaultOptions[V comparable]() Options[V] {
	return Options[V]{OnVisit: func(V) {}}
}

// WithOnVisit installs a visit hook. A nil fn is ignored.
func WithOnVisit[V comparable](fn func(v V)) Option[V] {
	return func(o *Options[V]) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// Apply folds opts over DefaultOptions.
func Apply[V comparable](opts []Option[V]) Options[V] {
	o := DefaultOptions[V]()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
