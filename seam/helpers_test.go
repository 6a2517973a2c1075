package seam_test

import (
	"image/color"
	"math/rand"

	"github.com/katalvlaran/seamcarve/astar"
	"github.com/katalvlaran/seamcarve/bellmanford"
	"github.com/katalvlaran/seamcarve/dijkstra"
	"github.com/katalvlaran/seamcarve/seam"
	"github.com/katalvlaran/seamcarve/spfa"
	"github.com/katalvlaran/seamcarve/toposort"
)

// grid is a plain row-major Picture without a Transposer, so vertical
// searches go through the package's own transposed view.
type grid struct {
	w, h int
	px   []color.RGBA
}

func newGrid(w, h int) *grid { return &grid{w: w, h: h, px: make([]color.RGBA, w*h)} }

func (g *grid) Width() int                 { return g.w }
func (g *grid) Height() int                { return g.h }
func (g *grid) Get(x, y int) color.RGBA    { return g.px[y*g.w+x] }
func (g *grid) Set(x, y int, c color.RGBA) { g.px[y*g.w+x] = c }

// redEnergy reads the energy straight from the red channel, with the
// green channel adding a fractional part.
var redEnergy = seam.EnergyFunc(func(p seam.Picture, x, y int) float64 {
	c := p.Get(x, y)
	return float64(c.R) + float64(c.G)/256
})

// energyGrid builds a picture whose redEnergy equals rows[y][x].
func energyGrid(rows [][]uint8) *grid {
	g := newGrid(len(rows[0]), len(rows))
	for y, row := range rows {
		for x, v := range row {
			g.Set(x, y, color.RGBA{R: v, A: 255})
		}
	}

	return g
}

func randomGrid(rng *rand.Rand, w, h int) *grid {
	g := newGrid(w, h)
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			g.Set(x, y, color.RGBA{R: uint8(rng.Intn(8)), G: uint8(rng.Intn(256)), A: 255})
		}
	}

	return g
}

// finders returns every Finder configuration under test, keyed by name.
func finders() map[string]seam.Finder {
	out := map[string]seam.Finder{
		"dp":         seam.NewDynamicProgrammingFinder(),
		"generative": seam.NewGenerativeFinder(),
	}
	adj := map[string]func() (*seam.AdjacencyListFinder, error){
		"adjacency/dijkstra": func() (*seam.AdjacencyListFinder, error) { return seam.NewAdjacencyListFinder(dijkstra.Factory[int]()) },
		"adjacency/bellmanford": func() (*seam.AdjacencyListFinder, error) {
			return seam.NewAdjacencyListFinder(bellmanford.Factory[int]())
		},
		"adjacency/spfa":     func() (*seam.AdjacencyListFinder, error) { return seam.NewAdjacencyListFinder(spfa.Factory[int]()) },
		"adjacency/toposort": func() (*seam.AdjacencyListFinder, error) { return seam.NewAdjacencyListFinder(toposort.Factory[int]()) },
		"adjacency/astar": func() (*seam.AdjacencyListFinder, error) {
			return seam.NewAdjacencyListFinder(astar.Factory[int](seam.SinkVertex))
		},
		"adjacency/dijkstra+lru": func() (*seam.AdjacencyListFinder, error) {
			return seam.NewAdjacencyListFinder(dijkstra.Factory[int](), seam.WithEnergyCache(16))
		},
	}
	for name, mk := range adj {
		f, err := mk()
		if err != nil {
			panic(err)
		}
		out[name] = f
	}

	return out
}
