package dfs_test

import (
	"testing"

	"github.com/katalvlaran/seamcarve/core"
	"github.com/katalvlaran/seamcarve/dfs"
)

// BenchmarkTopologicalOrder_Lattice measures ordering a 100×100 layered lattice
// where every vertex (x,y) points to (x+1,y-1..y+1), the shape of a seam graph.
func BenchmarkTopologicalOrder_Lattice(b *testing.B) {
	const w, h = 100, 100
	g := core.GraphFunc[int](func(v int) []core.Edge[int] {
		x, y := v/h, v%h
		if x+1 >= w {
			return nil
		}
		var out []core.Edge[int]
		for dy := -1; dy <= 1; dy++ {
			if ny := y + dy; ny >= 0 && ny < h {
				out = append(out, core.Edge[int]{From: v, To: (x+1)*h + ny, Weight: 1})
			}
		}
		return out
	})
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = dfs.TopologicalOrder[int](g, h/2)
	}
}
