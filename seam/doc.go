// Package seam finds minimum-energy seams in a picture.
//
// A horizontal seam is a left-to-right path of pixels, one per column,
// whose rows differ by at most one between neighbouring columns. Its cost
// is the sum of an EnergyFunction over its pixels. Removing the cheapest
// seam shrinks a picture by one row while disturbing as little visible
// content as possible.
//
// Three Finder strategies share one contract:
//
//   - AdjacencyListFinder reduces the picture to a lazy DAG over packed
//     pixel ids plus two virtual endpoints (SourceVertex, SinkVertex) and
//     hands it to any shortestpath.Factory: Dijkstra, Bellman-Ford, SPFA,
//     toposort or A*.
//   - DynamicProgrammingFinder fills a column-by-column table of best
//     accumulated energies and walks the predecessors back. O(W·H).
//   - GenerativeFinder enumerates every staircase seam. It is exponential
//     and exists as a reference for small fixtures.
//
// Vertical seams are horizontal seams of the transposed picture; see
// Transpose. Finders never keep a reference to a Picture between calls.
//
// Pixel ids: (x, y) is packed as x*height + y, so column x occupies ids
// [x*height, (x+1)*height).
package seam
