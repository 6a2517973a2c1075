package bfs

import "github.com/katalvlaran/seamcarve/core"

// queueItem pairs a vertex with its BFS depth.
type queueItem[V comparable] struct {
	v     V
	depth int
}

// walker encapsulates mutable BFS state.
type walker[V comparable] struct {
	graph core.Graph[V]
	queue []queueItem[V]
	head  int
	res   *Result[V]
}

// BFS runs breadth-first search on g from start. The only error is
// ErrGraphNil.
func BFS[V comparable](g core.Graph[V], start V) (*Result[V], error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	n := core.OrderOf(g)
	w := &walker[V]{
		graph: g,
		queue: make([]queueItem[V], 0, n),
		res: &Result[V]{
			Order: make([]V, 0, n),
			Depth: make(map[V]int, n),
		},
	}
	w.res.Depth[start] = 0
	w.queue = append(w.queue, queueItem[V]{v: start})
	w.loop()

	return w.res, nil
}

// Reachable returns every vertex reachable from start, start first, in
// BFS order.
func Reachable[V comparable](g core.Graph[V], start V) ([]V, error) {
	res, err := BFS(g, start)
	if err != nil {
		return nil, err
	}

	return res.Order, nil
}

// loop processes the queue until it drains.
func (w *walker[V]) loop() {
	for w.head < len(w.queue) {
		item := w.queue[w.head]
		w.head++

		w.res.Order = append(w.res.Order, item.v)
		next := item.depth + 1
		for _, e := range w.graph.Neighbors(item.v) {
			if _, seen := w.res.Depth[e.To]; seen {
				continue
			}
			w.res.Depth[e.To] = next
			w.queue = append(w.queue, queueItem[V]{v: e.To, depth: next})
		}
	}
}
