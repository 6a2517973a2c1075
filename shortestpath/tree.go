package shortestpath

import (
	"fmt"

	"github.com/katalvlaran/seamcarve/core"
)

// Tree records, for every vertex reached so far, its best known distance
// from the start and the edge that achieved it.
//
// A Tree is owned by exactly one solver run; it is not safe for
// concurrent mutation.
type Tree[V comparable] struct {
	start  V
	edgeTo map[V]core.Edge[V]
	distTo map[V]float64
}

// NewTree returns a Tree containing only start at distance 0.
// capacity is a sizing hint for the maps (0 if unknown).
func NewTree[V comparable](start V, capacity int) *Tree[V] {
	t := &Tree[V]{
		start:  start,
		edgeTo: make(map[V]core.Edge[V], capacity),
		distTo: make(map[V]float64, capacity),
	}
	t.distTo[start] = 0

	return t
}

// Start returns the source vertex.
func (t *Tree[V]) Start() V { return t.start }

// DistTo returns the best known distance to v and whether v was reached.
func (t *Tree[V]) DistTo(v V) (float64, bool) {
	d, ok := t.distTo[v]

	return d, ok
}

// EdgeTo returns the predecessor edge of v. The start has none.
func (t *Tree[V]) EdgeTo(v V) (core.Edge[V], bool) {
	e, ok := t.edgeTo[v]

	return e, ok
}

// Len returns the number of reached vertices, start included.
func (t *Tree[V]) Len() int { return len(t.distTo) }

// Relax applies edge e: if e.From is reached and going through e is
// strictly shorter than the best known distance to e.To, the tree is
// updated and Relax returns true.
func (t *Tree[V]) Relax(e core.Edge[V]) bool {
	from, ok := t.distTo[e.From]
	if !ok {
		return false
	}
	newDist := from + e.Weight
	if old, seen := t.distTo[e.To]; seen && newDist >= old {
		return false
	}
	t.distTo[e.To] = newDist
	t.edgeTo[e.To] = e

	return true
}

// Solution walks predecessor edges back from goal and returns the path
// start..goal inclusive. It returns ErrUnreachable if goal was never
// reached, and ErrNegativeCycle if the predecessor chain loops.
func (t *Tree[V]) Solution(goal V) ([]V, error) {
	if _, ok := t.distTo[goal]; !ok {
		return nil, fmt.Errorf("%w: %v", ErrUnreachable, goal)
	}
	path := []V{goal}
	for cur := goal; cur != t.start; {
		e, ok := t.edgeTo[cur]
		if !ok {
			break
		}
		cur = e.From
		path = append(path, cur)
		if len(path) > len(t.distTo) {
			return nil, ErrNegativeCycle
		}
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
