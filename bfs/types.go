package bfs

import "errors"

// ErrGraphNil is returned if a nil graph is passed.
var ErrGraphNil = errors.New("bfs: graph is nil")

// Result holds the outcome of a traversal.
//   - Order: vertices in visit sequence; Order[0] is the start.
//   - Depth: hop distance from the start.
type Result[V comparable] struct {
	Order []V
	Depth map[V]int
}
