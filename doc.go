// Package seamcarve is content-aware image resizing built on a pluggable
// shortest-path framework.
//
// 🚀 What is inside?
//
//   - Contracts:      core (Edge, Graph, AStarGraph), minpq (indexed min-heap)
//   - Traversals:     bfs (reachable set), dfs (topological order)
//   - Shortest paths: dijkstra, bellmanford, spfa, toposort, astar,
//     all behind shortestpath.Solver / shortestpath.Factory
//   - Seam finding:   seam (graph reduction, dynamic programming, exhaustive oracle)
//   - Imaging:        energy (dual gradient), picture (RGB, PNG/JPEG)
//   - Carving:        carver (seam removal loop), cmd/seamcarve (CLI)
//
// Every solver takes a lazy core.Graph, so the seam graph of a picture is
// never materialised: neighbours are computed from pixel coordinates and
// the energy function on demand.
//
// Quick start:
//
//	finder, _ := seam.NewAdjacencyListFinder(toposort.Factory[int]())
//	c, _ := carver.New(pic, energy.DualGradient{}, finder)
//	_ = c.Resize(ctx, 300, 200)
//
// Or from the shell:
//
//	go run ./cmd/seamcarve -in in.png -out out.png -width 300 -height 200
package seamcarve
