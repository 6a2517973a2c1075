package spfa

// queueSet is a FIFO queue that refuses elements already waiting in it.
// The slice and the set are only ever modified together.
type queueSet[E comparable] struct {
	items []E
	head  int
	set   map[E]struct{}
}

func newQueueSet[E comparable](capacity int) *queueSet[E] {
	return &queueSet[E]{
		items: make([]E, 0, capacity),
		set:   make(map[E]struct{}, capacity),
	}
}

// offer enqueues e unless it is already pending. Reports whether e was added.
func (q *queueSet[E]) offer(e E) bool {
	if _, ok := q.set[e]; ok {
		return false
	}
	q.items = append(q.items, e)
	q.set[e] = struct{}{}

	return true
}

// poll dequeues the oldest pending element.
func (q *queueSet[E]) poll() (E, bool) {
	if q.head == len(q.items) {
		var zero E
		return zero, false
	}
	e := q.items[q.head]
	var zero E
	q.items[q.head] = zero
	q.head++
	delete(q.set, e)

	// Reclaim the consumed prefix once it dominates the backing array.
	if q.head > 64 && q.head*2 >= len(q.items) {
		n := copy(q.items, q.items[q.head:])
		q.items = q.items[:n]
		q.head = 0
	}

	return e, true
}

// contains reports whether e is pending.
func (q *queueSet[E]) contains(e E) bool {
	_, ok := q.set[e]

	return ok
}

// len returns the number of pending elements.
func (q *queueSet[E]) len() int { return len(q.items) - q.head }
