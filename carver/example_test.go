package carver_test

import (
	"context"
	"fmt"
	"image/color"

	"github.com/katalvlaran/seamcarve/carver"
	"github.com/katalvlaran/seamcarve/dijkstra"
	"github.com/katalvlaran/seamcarve/energy"
	"github.com/katalvlaran/seamcarve/picture"
	"github.com/katalvlaran/seamcarve/seam"
)

// ExampleCarver_Resize shrinks a striped picture with Dijkstra seams.
func ExampleCarver_Resize() {
	// 1. A 8×6 picture with vertical stripes.
	p, _ := picture.New(8, 6)
	for x := 0; x < 8; x++ {
		for y := 0; y < 6; y++ {
			p.Set(x, y, color.RGBA{R: uint8(x * 30), G: uint8(y * 40), B: 90, A: 255})
		}
	}

	// 2. Wire the dual-gradient energy to a graph-reduction finder.
	finder, _ := seam.NewAdjacencyListFinder(dijkstra.Factory[int]())
	c, err := carver.New(p, energy.DualGradient{}, finder)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	// 3. Carve to 5×4.
	if err := c.Resize(context.Background(), 5, 4); err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("%dx%d\n", c.Picture().Width(), c.Picture().Height())
	// Output: 5x4
}
