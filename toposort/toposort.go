package toposort

import (
	"fmt"

	"github.com/katalvlaran/seamcarve/core"
	"github.com/katalvlaran/seamcarve/dfs"
	"github.com/katalvlaran/seamcarve/shortestpath"
)

// Solver holds the result of one topological-order relaxation.
type Solver[V comparable] struct {
	tree  *shortestpath.Tree[V]
	order []V
}

var _ shortestpath.Solver[int] = (*Solver[int])(nil)

// New orders g topologically from start and relaxes edges in that order.
// Negative weights are fine; cycles are not.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (core.ErrNilGraph).
//  2. The subgraph reachable from start must be acyclic (a wrapped
//     dfs.ErrCycleDetected).
//
// Options customization:
//   - shortestpath.WithOnVisit: called once per vertex in topological order.
//
// Complexity: O(V + E) time and O(V) space over the reachable subgraph.
func New[V comparable](g core.Graph[V], start V, opts ...shortestpath.Option[V]) (*Solver[V], error) {
	if g == nil {
		return nil, core.ErrNilGraph
	}
	o := shortestpath.Apply(opts)

	order, err := dfs.TopologicalOrder(g, start)
	if err != nil {
		return nil, fmt.Errorf("toposort: %w", err)
	}

	tree := shortestpath.NewTree(start, len(order))
	for _, from := range order {
		o.OnVisit(from)
		for _, e := range g.Neighbors(from) {
			tree.Relax(e)
		}
	}

	return &Solver[V]{tree: tree, order: order}, nil
}

// Factory adapts New to a shortestpath.Factory.
func Factory[V comparable](opts ...shortestpath.Option[V]) shortestpath.Factory[V] {
	return func(g core.Graph[V], start V) (shortestpath.Solver[V], error) {
		s, err := New(g, start, opts...)
		if err != nil {
			return nil, err
		}

		return s, nil
	}
}

// Solution returns the shortest path start..goal inclusive.
func (s *Solver[V]) Solution(goal V) ([]V, error) { return s.tree.Solution(goal) }

// DistTo returns the shortest distance to v and whether v was reached.
func (s *Solver[V]) DistTo(v V) (float64, bool) { return s.tree.DistTo(v) }

// Order returns the topological order the edges were relaxed in.
func (s *Solver[V]) Order() []V {
	out := make([]V, len(s.order))
	copy(out, s.order)

	return out
}
