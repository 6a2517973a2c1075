package astar

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/seamcarve/core"
	"github.com/katalvlaran/seamcarve/minpq"
	"github.com/katalvlaran/seamcarve/shortestpath"
)

// Sentinel errors for A*.
var (
	// ErrGoalMismatch is returned by Solution for a goal other than the searched one.
	ErrGoalMismatch = errors.New("astar: solution requested for a different goal")

	// ErrNoHeuristic is returned by a Factory whose graph is not a core.AStarGraph.
	ErrNoHeuristic = errors.New("astar: graph does not provide a distance estimate")
)

// Solver holds the result of one A* search.
type Solver[V comparable] struct {
	tree     *shortestpath.Tree[V]
	goal     V
	expanded int
}

var _ shortestpath.Solver[int] = (*Solver[int])(nil)

// New searches g for a shortest path from start to goal.
//
// Returns core.ErrNilGraph for a nil graph and
// shortestpath.ErrNegativeWeight if a negative edge is reached.
func New[V comparable](g core.AStarGraph[V], start, goal V, opts ...shortestpath.Option[V]) (*Solver[V], error) {
	if g == nil {
		return nil, core.ErrNilGraph
	}
	n := core.OrderOf[V](g)
	o := shortestpath.Apply(opts)
	tree := shortestpath.NewTree(start, n)
	pq := minpq.NewHeapMinPQ[V](n)
	pq.AddOrChangePriority(start, g.EstimatedDistance(start, goal))

	expanded := 0
	for pq.Len() > 0 {
		u, _ := pq.RemoveMin()
		expanded++
		o.OnVisit(u)
		if u == goal {
			break
		}
		for _, e := range g.Neighbors(u) {
			if e.Weight < 0 {
				return nil, fmt.Errorf("%w: edge %v", shortestpath.ErrNegativeWeight, e)
			}
			if !tree.Relax(e) {
				continue
			}
			// Expanded vertices are not skipped: a cheaper route re-opens them.
			d, _ := tree.DistTo(e.To)
			pq.AddOrChangePriority(e.To, d+g.EstimatedDistance(e.To, goal))
		}
	}

	return &Solver[V]{tree: tree, goal: goal, expanded: expanded}, nil
}

// Factory returns a shortestpath.Factory that searches toward goal.
// The graph handed to the factory must implement core.AStarGraph.
func Factory[V comparable](goal V, opts ...shortestpath.Option[V]) shortestpath.Factory[V] {
	return func(g core.Graph[V], start V) (shortestpath.Solver[V], error) {
		if g == nil {
			return nil, core.ErrNilGraph
		}
		ag, ok := g.(core.AStarGraph[V])
		if !ok {
			return nil, ErrNoHeuristic
		}
		s, err := New(ag, start, goal, opts...)
		if err != nil {
			return nil, err
		}

		return s, nil
	}
}

// Solution returns the shortest path start..goal inclusive. goal must be
// the vertex the search was run toward.
func (s *Solver[V]) Solution(goal V) ([]V, error) {
	if goal != s.goal {
		return nil, fmt.Errorf("%w: searched %v, asked %v", ErrGoalMismatch, s.goal, goal)
	}

	return s.tree.Solution(goal)
}

// DistTo returns the best distance found to v. It is exact for the goal;
// for other vertices it is an upper bound, since A* stops early.
func (s *Solver[V]) DistTo(v V) (float64, bool) { return s.tree.DistTo(v) }

// Goal returns the vertex the search was run toward.
func (s *Solver[V]) Goal() V { return s.goal }

// Expanded reports how many vertices were removed from the frontier.
func (s *Solver[V]) Expanded() int { return s.expanded }
