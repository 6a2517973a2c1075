package minpq

import "container/heap"

// node is one heap slot.
type node[E comparable] struct {
	elem     E
	priority float64
	seq      uint64 // arrival rank, breaks priority ties
}

// nodes is the container/heap view of the slots. It keeps index in sync
// on every swap so elements can be found in O(1).
type nodes[E comparable] struct {
	items []node[E]
	index map[E]int
}

func (h *nodes[E]) Len() int { return len(h.items) }

func (h *nodes[E]) Less(i, j int) bool {
	a, b := h.items[i], h.items[j]
	if a.priority != b.priority {
		return a.priority < b.priority
	}

	return a.seq < b.seq
}

func (h *nodes[E]) Swap(i, j int) {
	h.items[i], h.items[j] = h.items[j], h.items[i]
	h.index[h.items[i].elem] = i
	h.index[h.items[j].elem] = j
}

func (h *nodes[E]) Push(x any) {
	n := x.(node[E])
	h.index[n.elem] = len(h.items)
	h.items = append(h.items, n)
}

func (h *nodes[E]) Pop() any {
	last := len(h.items) - 1
	n := h.items[last]
	h.items = h.items[:last]
	delete(h.index, n.elem)

	return n
}

// HeapMinPQ is a MinPQ backed by an indexed binary heap.
type HeapMinPQ[E comparable] struct {
	h   nodes[E]
	seq uint64
}

var _ MinPQ[int] = (*HeapMinPQ[int])(nil)

// NewHeapMinPQ returns an empty queue. capacity is a sizing hint; pass 0
// when unknown.
func NewHeapMinPQ[E comparable](capacity int) *HeapMinPQ[E] {
	if capacity < 0 {
		capacity = 0
	}

	return &HeapMinPQ[E]{h: nodes[E]{
		items: make([]node[E], 0, capacity),
		index: make(map[E]int, capacity),
	}}
}

// Add queues e with the given priority.
// Complexity: O(log n)
func (pq *HeapMinPQ[E]) Add(e E, priority float64) error {
	if pq.Contains(e) {
		return ErrDuplicate
	}
	pq.seq++
	heap.Push(&pq.h, node[E]{elem: e, priority: priority, seq: pq.seq})

	return nil
}

// AddOrChangePriority queues e or re-prioritises it in place.
// Complexity: O(log n)
func (pq *HeapMinPQ[E]) AddOrChangePriority(e E, priority float64) {
	if i, ok := pq.h.index[e]; ok {
		pq.h.items[i].priority = priority
		heap.Fix(&pq.h, i)
		return
	}
	pq.seq++
	heap.Push(&pq.h, node[E]{elem: e, priority: priority, seq: pq.seq})
}

// Contains reports whether e is queued. O(1).
func (pq *HeapMinPQ[E]) Contains(e E) bool {
	_, ok := pq.h.index[e]

	return ok
}

// Priority returns e's current priority. O(1).
func (pq *HeapMinPQ[E]) Priority(e E) (float64, bool) {
	i, ok := pq.h.index[e]
	if !ok {
		return 0, false
	}

	return pq.h.items[i].priority, true
}

// PeekMin returns the minimum element. O(1).
func (pq *HeapMinPQ[E]) PeekMin() (E, error) {
	if pq.h.Len() == 0 {
		var zero E
		return zero, ErrEmpty
	}

	return pq.h.items[0].elem, nil
}

// RemoveMin removes and returns the minimum element.
// Complexity: O(log n)
func (pq *HeapMinPQ[E]) RemoveMin() (E, error) {
	if pq.h.Len() == 0 {
		var zero E
		return zero, ErrEmpty
	}
	n := heap.Pop(&pq.h).(node[E])

	return n.elem, nil
}

// ChangePriority updates a queued element's priority.
// Complexity: O(log n)
func (pq *HeapMinPQ[E]) ChangePriority(e E, priority float64) error {
	i, ok := pq.h.index[e]
	if !ok {
		return ErrNotFound
	}
	pq.h.items[i].priority = priority
	heap.Fix(&pq.h, i)

	return nil
}

// Len returns the number of queued elements.
func (pq *HeapMinPQ[E]) Len() int { return pq.h.Len() }
