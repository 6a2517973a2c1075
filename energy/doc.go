// Package energy provides pixel energy functions for seam finding.
//
// DualGradient scores a pixel by how sharply its colour changes along
// both axes:
//
//	energy(x, y) = sqrt(Δx²(x, y) + Δy²(x, y))
//
// where Δx² is the sum over R, G and B of the squared colour difference
// along x, and Δy² likewise along y. Interior pixels use the central
// difference f(i+1) − f(i−1). Border pixels use the three-point one-sided
// difference −3f(0) + 4f(1) − f(2), mirrored on the far edge, so the
// picture border is not artificially cheap. An axis of length 2 falls
// back to f(1) − f(0); an axis of length 1 contributes nothing.
package energy
