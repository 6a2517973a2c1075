// Package minpq provides the priority frontier used by Dijkstra and A*.
//
// MinPQ is an addressable min-priority queue: besides add/removeMin it can
// answer "is e queued?" and lower (or raise) the priority of a queued
// element in place. HeapMinPQ implements it as a binary heap over
// container/heap plus an element→slot index, so every operation is
// O(log n) and Contains/Priority are O(1).
//
// Ties: elements with equal priority leave the queue in the order they
// were first added. Changing a priority keeps the element's original
// arrival rank.
//
// HeapMinPQ is not safe for concurrent use; each solver owns its own.
package minpq
