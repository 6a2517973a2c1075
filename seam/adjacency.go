package seam

import (
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/katalvlaran/seamcarve/core"
	"github.com/katalvlaran/seamcarve/shortestpath"
)

// AdjacencyListFinder finds seams by shortest path over a lazy pixel DAG.
//
// Graph, for a W×H picture:
//
//	SourceVertex → (0, y)          weight energy(0, y), for every row y
//	(x, y)       → (x+1, y+d)      weight energy(x+1, y+d), d ∈ {-1,0,1} in bounds
//	(W-1, y)     → SinkVertex      weight 0
//
// A source→sink path therefore costs exactly the energy of its seam.
// Edges are generated on demand from the picture; nothing is stored.
// The graph also implements core.AStarGraph: the estimate from a pixel in
// column x is the sum of the cheapest energy of every column right of x.
//
// That estimate scores every pixel once, on the first EstimatedDistance
// call, so an A* solve always costs at least W·H energy evaluations. On a
// seam graph this is the same work Dijkstra or the topological solver does,
// which is why A* expanding fewer vertices does not make it cheaper here.
type AdjacencyListFinder struct {
	factory shortestpath.Factory[int]
	opts    Options
}

var _ Finder = (*AdjacencyListFinder)(nil)

// NewAdjacencyListFinder returns a finder that solves every call with a
// solver built by factory. Returns ErrNilFactory for a nil factory.
func NewAdjacencyListFinder(factory shortestpath.Factory[int], opts ...Option) (*AdjacencyListFinder, error) {
	if factory == nil {
		return nil, ErrNilFactory
	}

	return &AdjacencyListFinder{factory: factory, opts: applyOptions(opts)}, nil
}

// FindHorizontal implements Finder.
func (a *AdjacencyListFinder) FindHorizontal(p Picture, f EnergyFunction) ([]int, error) {
	if err := check(p, f); err != nil {
		return nil, err
	}
	g, err := newSeamGraph(p, f, a.opts.CacheSize)
	if err != nil {
		return nil, err
	}

	s, err := a.factory(g, SourceVertex)
	if err != nil {
		return nil, fmt.Errorf("seam: solve: %w", err)
	}
	path, err := s.Solution(SinkVertex)
	if err != nil {
		return nil, fmt.Errorf("seam: solve: %w", err)
	}
	if len(path) != g.w+2 {
		return nil, fmt.Errorf("%w: path of %d vertices for width %d", ErrInvalidSeam, len(path), g.w)
	}

	seam := make([]int, g.w)
	for i, v := range path[1 : len(path)-1] {
		seam[i] = v % g.h
	}

	return seam, nil
}

// FindVertical implements Finder on the transposed picture.
func (a *AdjacencyListFinder) FindVertical(p Picture, f EnergyFunction) ([]int, error) {
	return a.FindHorizontal(Transpose(p), f)
}

// seamGraph is the lazy DAG behind AdjacencyListFinder.
type seamGraph struct {
	p    Picture
	f    EnergyFunction
	w, h int

	cache *lru.Cache[int, float64] // nil when disabled

	// after[x+1] is the sum of column minima strictly right of column x;
	// after[0] covers every column and serves SourceVertex.
	after []float64
}

var (
	_ core.AStarGraph[int] = (*seamGraph)(nil)
	_ core.Sized           = (*seamGraph)(nil)
)

func newSeamGraph(p Picture, f EnergyFunction, cacheSize int) (*seamGraph, error) {
	g := &seamGraph{p: p, f: f, w: p.Width(), h: p.Height()}
	if cacheSize > 0 {
		c, err := lru.New[int, float64](cacheSize)
		if err != nil {
			return nil, fmt.Errorf("seam: energy cache: %w", err)
		}
		g.cache = c
	}

	return g, nil
}

// Order implements core.Sized: every pixel plus the two endpoints.
func (g *seamGraph) Order() int { return g.w*g.h + 2 }

func (g *seamGraph) id(x, y int) int { return x*g.h + y }

func (g *seamGraph) energy(x, y int) float64 {
	if g.cache == nil {
		return g.f.Apply(g.p, x, y)
	}
	key := g.id(x, y)
	if e, ok := g.cache.Get(key); ok {
		return e
	}
	e := g.f.Apply(g.p, x, y)
	g.cache.Add(key, e)

	return e
}

// Neighbors implements core.Graph.
func (g *seamGraph) Neighbors(v int) []core.Edge[int] {
	switch {
	case v == SourceVertex:
		out := make([]core.Edge[int], g.h)
		for y := 0; y < g.h; y++ {
			out[y] = core.Edge[int]{From: v, To: g.id(0, y), Weight: g.energy(0, y)}
		}
		return out
	case v < 0 || v >= g.w*g.h:
		return nil
	}

	x, y := v/g.h, v%g.h
	if x == g.w-1 {
		return []core.Edge[int]{{From: v, To: SinkVertex, Weight: 0}}
	}
	out := make([]core.Edge[int], 0, 3)
	for ny := y - 1; ny <= y+1; ny++ {
		if ny < 0 || ny >= g.h {
			continue
		}
		out = append(out, core.Edge[int]{From: v, To: g.id(x+1, ny), Weight: g.energy(x+1, ny)})
	}

	return out
}

// EstimatedDistance implements core.AStarGraph. It is only informative
// toward SinkVertex; any other goal gets 0.
func (g *seamGraph) EstimatedDistance(v, goal int) float64 {
	if goal != SinkVertex || v == SinkVertex {
		return 0
	}
	if g.after == nil {
		g.columnMinima()
	}
	if v == SourceVertex {
		return g.after[0]
	}
	if v < 0 || v >= g.w*g.h {
		return 0
	}

	return g.after[v/g.h+1]
}

// columnMinima fills after on first use, so non-A* solvers never pay for it.
func (g *seamGraph) columnMinima() {
	g.after = make([]float64, g.w+1)
	for x := g.w - 1; x >= 0; x-- {
		lo := g.energy(x, 0)
		for y := 1; y < g.h; y++ {
			if e := g.energy(x, y); e < lo {
				lo = e
			}
		}
		g.after[x] = g.after[x+1] + lo
	}
}
