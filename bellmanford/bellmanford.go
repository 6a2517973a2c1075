package bellmanford

import (
	"fmt"

	"github.com/katalvlaran/seamcarve/bfs"
	"github.com/katalvlaran/seamcarve/core"
	"github.com/katalvlaran/seamcarve/shortestpath"
)

// Solver holds the result of one Bellman-Ford run.
type Solver[V comparable] struct {
	tree   *shortestpath.Tree[V]
	rounds int
}

var _ shortestpath.Solver[int] = (*Solver[int])(nil)

// New runs Bellman-Ford on g from start. Negative edge weights are
// allowed.
//
// Returns:
//   - A Solver answering DistTo and Solution for every vertex reachable
//     from start, and Rounds for the number of relaxation rounds run.
//   - An error, in which case the Solver is nil.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (core.ErrNilGraph).
//  2. No negative cycle may be reachable from start
//     (shortestpath.ErrNegativeCycle). A negative self-loop counts.
//
// Options customization:
//   - shortestpath.WithOnVisit: called for every vertex on every round, in
//     BFS discovery order.
//
// Complexity (V, E = reachable vertices and edges):
//   - Time:  O(V·E) worst case; stops early once a round changes nothing.
//   - Space: O(V) for the vertex list and the tree.
func New[V comparable](g core.Graph[V], start V, opts ...shortestpath.Option[V]) (*Solver[V], error) {
	// 1) Validate the graph and options.
	if g == nil {
		return nil, core.ErrNilGraph
	}
	o := shortestpath.Apply(opts)

	// 2) Discover the vertex set.
	vertices, err := bfs.Reachable(g, start)
	if err != nil {
		return nil, fmt.Errorf("bellmanford: %w", err)
	}
	tree := shortestpath.NewTree(start, len(vertices))

	// 3) Up to |V|-1 relaxation rounds.
	rounds, converged := 0, false
	for i := 1; i < len(vertices); i++ {
		rounds++
		if !sweep(g, vertices, tree, o.OnVisit) {
			converged = true
			break
		}
	}

	// 4) One more sweep; any improvement means a negative cycle.
	if !converged && sweep(g, vertices, tree, func(V) {}) {
		return nil, shortestpath.ErrNegativeCycle
	}

	return &Solver[V]{tree: tree, rounds: rounds}, nil
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

// sweep relaxes every outgoing edge of every vertex once and reports
// whether any distance improved.
func sweep[V comparable](g core.Graph[V], vertices []V, tree *shortestpath.Tree[V], visit func(V)) bool {
	changed := false
	for _, from := range vertices {
		visit(from)
		for _, e := range g.Neighbors(from) {
			if tree.Relax(e) {
				changed = true
			}
		}
	}

	return changed
}

// Solution returns the shortest path start..goal inclusive.
func (s *Solver[V]) Solution(goal V) ([]V, error) { return s.tree.Solution(goal) }

// DistTo returns the shortest distance to v and whether v was reached.
func (s *Solver[V]) DistTo(v V) (float64, bool) { return s.tree.DistTo(v) }

// Rounds reports how many relaxation rounds ran before distances settled.
func (s *Solver[V]) Rounds() int { return s.rounds }
