package dfs

import "errors"

// Visitation colours of a vertex.
const (
	White = iota // White: the vertex has not been visited yet.
	Gray         // Gray: the vertex is on the current DFS path.
	Black        // Black: the vertex and all its descendants are finished.
)

var (
	// ErrGraphNil is returned when a nil graph is passed.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrCycleDetected indicates a back edge was found during TopologicalOrder.
	ErrCycleDetected = errors.New("dfs: cycle detected")
)
