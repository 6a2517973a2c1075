package dijkstra

import (
	"fmt"

	"github.com/katalvlaran/seamcarve/core"
	"github.com/katalvlaran/seamcarve/minpq"
	"github.com/katalvlaran/seamcarve/shortestpath"
)

// Solver holds the result of one Dijkstra run.
type Solver[V comparable] struct {
	tree *shortestpath.Tree[V]
}

var _ shortestpath.Solver[int] = (*Solver[int])(nil)

// New runs Dijkstra on g from start and returns the settled shortest-path
// tree.
//
// Returns:
//   - A Solver answering DistTo and Solution for every vertex reachable
//     from start.
//   - An error, in which case the Solver is nil.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (core.ErrNilGraph).
//  2. Every edge reached from start must have weight >= 0
//     (shortestpath.ErrNegativeWeight, wrapping the offending edge). The
//     check is lazy: edges never reached are never inspected.
//
// Options customization:
//   - shortestpath.WithOnVisit: called once per vertex, when it is settled,
//     in non-decreasing distance order.
//
// Complexity (V, E = reachable vertices and edges):
//   - Time:  O((V + E) log V) with the indexed binary heap.
//   - Space: O(V) for the tree, the settled set and the heap.
func New[V comparable](g core.Graph[V], start V, opts ...shortestpath.Option[V]) (*Solver[V], error) {
	// 1) Validate the graph.
	if g == nil {
		return nil, core.ErrNilGraph
	}

	// 2) Size the working state from the graph order when it is known.
	n := core.OrderOf(g)
	r := &runner[V]{
		g:       g,
		options: shortestpath.Apply(opts),
		tree:    shortestpath.NewTree(start, n),
		settled: make(map[V]struct{}, n),
		pq:      minpq.NewHeapMinPQ[V](n),
	}

	// 3) Seed the frontier with start and settle until it drains.
	r.pq.AddOrChangePriority(start, 0)
	if err := r.process(); err != nil {
		return nil, err
	}

	return &Solver[V]{tree: r.tree}, nil
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

// runner holds the mutable state for a single Dijkstra execution.
type runner[V comparable] struct {
	g       core.Graph[V]
	options shortestpath.Options[V]
	tree    *shortestpath.Tree[V]
	settled map[V]struct{} // vertices whose distance is final
	pq      *minpq.HeapMinPQ[V]
}

// process is the core loop: settle the closest frontier vertex, relax its
// outgoing edges, repeat until the frontier drains.
func (r *runner[V]) process() error {
	for r.pq.Len() > 0 {
		u, _ := r.pq.RemoveMin()
		r.settled[u] = struct{}{}
		r.options.OnVisit(u)
		if err := r.relax(u); err != nil {
			return err
		}
	}

	return nil
}

// relax examines each edge leaving u and pushes improved heads onto the
// frontier.
func (r *runner[V]) relax(u V) error {
	for _, e := range r.g.Neighbors(u) {
		if e.Weight < 0 {
			return fmt.Errorf("%w: edge %v", shortestpath.ErrNegativeWeight, e)
		}
		if _, done := r.settled[e.To]; done {
			continue
		}
		if r.tree.Relax(e) {
			d, _ := r.tree.DistTo(e.To)
			r.pq.AddOrChangePriority(e.To, d)
		}
	}

	return nil
}
