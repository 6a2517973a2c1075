package minpq

import "errors"

// Sentinel errors for MinPQ operations.
var (
	// ErrEmpty is returned by PeekMin and RemoveMin on an empty queue.
	ErrEmpty = errors.New("minpq: queue is empty")

	// ErrDuplicate is returned by Add when the element is already queued.
	ErrDuplicate = errors.New("minpq: element already present")

	// ErrNotFound is returned by ChangePriority for an element not in the queue.
	ErrNotFound = errors.New("minpq: element not present")
)

// MinPQ is an addressable min-priority queue over comparable elements.
type MinPQ[E comparable] interface {
	// Add queues e with the given priority. Returns ErrDuplicate if e is queued.
	Add(e E, priority float64) error

	// AddOrChangePriority queues e, or updates its priority if already queued.
	AddOrChangePriority(e E, priority float64)

	// Contains reports whether e is queued.
	Contains(e E) bool

	// Priority returns e's priority and whether e is queued.
	Priority(e E) (float64, bool)

	// PeekMin returns the minimum-priority element without removing it.
	PeekMin() (E, error)

	// RemoveMin removes and returns the minimum-priority element.
	RemoveMin() (E, error)

	// ChangePriority updates the priority of a queued element.
	ChangePriority(e E, priority float64) error

	// Len returns the number of queued elements.
	Len() int
}
