package bellmanford_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/seamcarve/bellmanford"
	"github.com/katalvlaran/seamcarve/core"
	"github.com/katalvlaran/seamcarve/shortestpath"
)

// ExampleNew shows a negative rebate edge and a negative cycle.
func ExampleNew() {
	// 1. A route with a rebate on the second leg.
	g := core.NewDigraph[string]()
	_ = g.AddEdge("S", "A", 4)
	_ = g.AddEdge("A", "T", -2)
	_ = g.AddEdge("S", "T", 3)

	s, _ := bellmanford.New[string](g, "S")
	path, _ := s.Solution("T")
	d, _ := s.DistTo("T")
	fmt.Println(path, d)

	// 2. Close a loop with negative total weight.
	_ = g.AddEdge("T", "A", 1)
	_, err := bellmanford.New[string](g, "S")
	fmt.Println(errors.Is(err, shortestpath.ErrNegativeCycle))
	// Output:
	// [S A T] 2
	// true
}
