package dfs

import (
	"fmt"

	"github.com/katalvlaran/seamcarve/core"
)

// frame is one entry of the explicit DFS stack.
type frame[V comparable] struct {
	v     V
	edges []core.Edge[V]
	next  int // index of the next edge to explore
}

// topoSorter encapsulates state for one traversal.
type topoSorter[V comparable] struct {
	graph core.Graph[V]
	state map[V]int // White/Gray/Black; missing == White
	stack []frame[V]
	order []V // postorder
}

// TopologicalOrder returns every vertex reachable from start, ordered so
// that each edge goes from an earlier to a later vertex. start is first.
//
// Returns ErrGraphNil for a nil graph and ErrCycleDetected (wrapped with
// the offending edge) if a cycle is reachable from start.
func TopologicalOrder[V comparable](g core.Graph[V], start V) ([]V, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	n := core.OrderOf(g)
	t := &topoSorter[V]{
		graph: g,
		state: make(map[V]int, n),
		order: make([]V, 0, n),
	}
	if err := t.run(start); err != nil {
		return nil, err
	}

	// Reverse postorder is a topological order.
	for i, j := 0, len(t.order)-1; i < j; i, j = i+1, j-1 {
		t.order[i], t.order[j] = t.order[j], t.order[i]
	}

	return t.order, nil
}

// push marks v Gray and opens its frame.
func (t *topoSorter[V]) push(v V) {
	t.state[v] = Gray
	t.stack = append(t.stack, frame[V]{v: v, edges: t.graph.Neighbors(v)})
}

// run drives the iterative DFS from start.
func (t *topoSorter[V]) run(start V) error {
	t.push(start)
	for len(t.stack) > 0 {
		top := &t.stack[len(t.stack)-1]
		if top.next < len(top.edges) {
			e := top.edges[top.next]
			top.next++
			switch t.state[e.To] {
			case White:
				t.push(e.To)
			case Gray:
				return fmt.Errorf("%w: back edge %v", ErrCycleDetected, e)
			}
			continue
		}

		// All descendants finished.
		t.state[top.v] = Black
		t.order = append(t.order, top.v)
		t.stack = t.stack[:len(t.stack)-1]
	}

	return nil
}
