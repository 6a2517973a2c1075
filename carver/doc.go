// Package carver shrinks pictures by repeatedly removing minimum-energy
// seams.
//
// A Carver owns its picture. Each RemoveHorizontal or RemoveVertical call
// asks the configured seam.Finder for one seam, copies every other pixel
// into a fresh picture one row or column smaller, and returns the seam.
// Resize repeats that until the target size is reached, vertical seams
// first.
//
// A Carver is not safe for concurrent use.
package carver
