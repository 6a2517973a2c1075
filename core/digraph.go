// File: digraph.go
// Role: Digraph, a materialised directed adjacency list satisfying AStarGraph.
// Determinism:
//   - Neighbors(v) returns edges in insertion order.
//   - Vertices() returns vertices in first-seen order.
// Concurrency:
//   - Mutations take mu write lock; queries take mu read lock.

package core

import (
	"math"
	"sync"
)

// Digraph is an explicit, thread-safe directed multigraph keyed by V.
//
// It exists for inputs that are naturally small and explicit (tests,
// examples, hand-built networks). Seam reductions never use it: they
// compute neighbours on demand instead.
type Digraph[V comparable] struct {
	mu        sync.RWMutex
	order     []V             // vertices in first-seen order
	adjacency map[V][]Edge[V] // from → outgoing edges
	heuristic func(v, goal V) float64
	edges     int
}

// NewDigraph returns an empty Digraph.
// Complexity: O(1)
func NewDigraph[V comparable]() *Digraph[V] {
	return &Digraph[V]{adjacency: make(map[V][]Edge[V])}
}

// AddVertex inserts v if absent. Re-adding is a no-op.
// Complexity: O(1)
func (g *Digraph[V]) AddVertex(v V) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.addVertexLocked(v)
}

func (g *Digraph[V]) addVertexLocked(v V) {
	if _, ok := g.adjacency[v]; ok {
		return
	}
	g.adjacency[v] = nil
	g.order = append(g.order, v)
}

// AddEdge appends the edge from→to with the given weight, creating both
// endpoints if needed. Parallel edges and self-loops are allowed.
// Returns ErrBadWeight for NaN or ±Inf weights.
// Complexity: O(1) amortised
func (g *Digraph[V]) AddEdge(from, to V, weight float64) error {
	if math.IsNaN(weight) || math.IsInf(weight, 0) {
		return ErrBadWeight
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	g.addVertexLocked(from)
	g.addVertexLocked(to)
	g.adjacency[from] = append(g.adjacency[from], Edge[V]{From: from, To: to, Weight: weight})
	g.edges++

	return nil
}

// SetHeuristic installs the estimate used by EstimatedDistance.
// Passing nil restores the zero heuristic.
func (g *Digraph[V]) SetHeuristic(h func(v, goal V) float64) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.heuristic = h
}

// HasVertex reports whether v has been added.
func (g *Digraph[V]) HasVertex(v V) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.adjacency[v]

	return ok
}

// Neighbors returns a copy of v's outgoing edges in insertion order.
func (g *Digraph[V]) Neighbors(v V) []Edge[V] {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := g.adjacency[v]
	if len(out) == 0 {
		return nil
	}
	cp := make([]Edge[V], len(out))
	copy(cp, out)

	return cp
}

// EstimatedDistance evaluates the installed heuristic, or 0 if none is set.
func (g *Digraph[V]) EstimatedDistance(v, goal V) float64 {
	g.mu.RLock()
	h := g.heuristic
	g.mu.RUnlock()
	if h == nil {
		return 0
	}

	return h(v, goal)
}

// Order returns the number of vertices.
func (g *Digraph[V]) Order() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.order)
}

// EdgeCount returns the number of edges.
func (g *Digraph[V]) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edges
}

// Vertices returns all vertices in first-seen order.
func (g *Digraph[V]) Vertices() []V {
	g.mu.RLock()
	defer g.mu.RUnlock()
	cp := make([]V, len(g.order))
	copy(cp, g.order)

	return cp
}
