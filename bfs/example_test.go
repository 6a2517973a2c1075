package bfs_test

import (
	"fmt"

	"github.com/katalvlaran/seamcarve/bfs"
	"github.com/katalvlaran/seamcarve/core"
)

// ExampleReachable discovers the vertices of an implicit graph: every
// integer n < 10 points to n+3 and n+5.
func ExampleReachable() {
	g := core.GraphFunc[int](func(n int) []core.Edge[int] {
		if n >= 10 {
			return nil
		}
		return []core.Edge[int]{{From: n, To: n + 3, Weight: 1}, {From: n, To: n + 5, Weight: 1}}
	})
	order, err := bfs.Reachable[int](g, 0)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(order)
	// Output: [0 3 5 6 8 10 9 11 13 12 14]
}
