package spfa

import (
	"fmt"

	"github.com/katalvlaran/seamcarve/bfs"
	"github.com/katalvlaran/seamcarve/core"
	"github.com/katalvlaran/seamcarve/shortestpath"
)

// Solver holds the result of one SPFA run.
type Solver[V comparable] struct {
	tree  *shortestpath.Tree[V]
	polls int
}

var _ shortestpath.Solver[int] = (*Solver[int])(nil)

// New runs SPFA (queue-based Bellman-Ford) on g from start. Negative edge
// weights are allowed.
//
// Returns:
//   - A Solver answering DistTo and Solution for every vertex reachable
//     from start, and Polls for the number of worklist removals.
//   - An error, in which case the Solver is nil.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (core.ErrNilGraph).
//  2. No negative cycle may be reachable from start
//     (shortestpath.ErrNegativeCycle, wrapping the edge that closed it).
//     Detection is armed by the first negative edge seen: the reachable
//     vertices are counted once, and any distance backed by a walk of that
//     many edges or more must contain a cycle.
//
// Options customization:
//   - shortestpath.WithOnVisit: called each time a vertex leaves the
//     worklist; a vertex may be visited more than once.
//
// Complexity (V, E = reachable vertices and edges):
//   - Time:  O(V·E) worst case, typically close to O(E).
//   - Space: O(V) for the worklist, its membership set, the tree and the
//     hop counts.
func New[V comparable](g core.Graph[V], start V, opts ...shortestpath.Option[V]) (*Solver[V], error) {
	// 1) Validate the graph.
	if g == nil {
		return nil, core.ErrNilGraph
	}

	// 2) Build the runner; hop tracking stays off until a negative edge.
	n := core.OrderOf(g)
	r := &runner[V]{
		g:       g,
		start:   start,
		options: shortestpath.Apply(opts),
		tree:    shortestpath.NewTree(start, n),
		queue:   newQueueSet[V](n),
	}

	// 3) Seed the worklist with start and drain it.
	r.queue.offer(start)
	if err := r.process(); err != nil {
		return nil, err
	}

	return &Solver[V]{tree: r.tree, polls: r.polls}, nil
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

// Polls reports how many times a vertex was taken off the worklist.
func (s *Solver[V]) Polls() int { return s.polls }

// runner holds the mutable state for a single SPFA execution.
type runner[V comparable] struct {
	g       core.Graph[V]
	start   V
	options shortestpath.Options[V]
	tree    *shortestpath.Tree[V]
	queue   *queueSet[V]
	polls   int

	// Negative-cycle guard, armed on the first negative edge.
	limit int       // reachable vertex count; 0 while disarmed
	hops  map[V]int // edge count of the walk behind each distance
}

// process drains the worklist.
func (r *runner[V]) process() error {
	for r.queue.len() > 0 {
		u, _ := r.queue.poll()
		r.polls++
		r.options.OnVisit(u)
		for _, e := range r.g.Neighbors(u) {
			if e.Weight < 0 && r.limit == 0 {
				if err := r.arm(); err != nil {
					return err
				}
			}
			if !r.tree.Relax(e) {
				continue
			}
			if r.limit > 0 {
				r.hops[e.To] = r.hops[e.From] + 1
				if r.hops[e.To] >= r.limit {
					return fmt.Errorf("%w: via %v", shortestpath.ErrNegativeCycle, e)
				}
			}
			r.queue.offer(e.To)
		}
	}

	return nil
}

// arm counts the reachable vertices and enables hop tracking.
func (r *runner[V]) arm() error {
	reach, err := bfs.Reachable(r.g, r.start)
	if err != nil {
		return fmt.Errorf("spfa: %w", err)
	}
	r.limit = len(reach)
	r.hops = make(map[V]int, len(reach))

	return nil
}
