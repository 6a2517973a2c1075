package energy

import (
	"image/color"
	"math"

	"github.com/katalvlaran/seamcarve/seam"
)

// DualGradient is the dual-gradient energy function. The zero value is
// ready to use.
type DualGradient struct{}

var _ seam.EnergyFunction = DualGradient{}

// Apply implements seam.EnergyFunction.
func (DualGradient) Apply(p seam.Picture, x, y int) float64 {
	dx := gradient(p.Width(), x, func(i int) color.RGBA { return p.Get(i, y) })
	dy := gradient(p.Height(), y, func(i int) color.RGBA { return p.Get(x, i) })

	return math.Sqrt(dx + dy)
}

// gradient returns the squared colour gradient at position i of a line of
// n pixels read through at.
func gradient(n, i int, at func(int) color.RGBA) float64 {
	switch {
	case n < 2:
		return 0
	case n == 2:
		return squared(diff2(at(0), at(1)))
	case i == 0:
		return squared(forward(at(0), at(1), at(2)))
	case i == n-1:
		return squared(forward(at(n-1), at(n-2), at(n-3)))
	default:
		return squared(diff2(at(i-1), at(i+1)))
	}
}

// rgb holds signed per-channel differences.
type rgb [3]float64

func channels(c color.RGBA) rgb {
	return rgb{float64(c.R), float64(c.G), float64(c.B)}
}

// diff2 is b − a per channel.
func diff2(a, b color.RGBA) rgb {
	ca, cb := channels(a), channels(b)

	return rgb{cb[0] - ca[0], cb[1] - ca[1], cb[2] - ca[2]}
}

// forward is −3f0 + 4f1 − f2 per channel. Called with the pixels in
// reverse order it yields the mirrored backward difference up to sign,
// which squaring removes.
func forward(f0, f1, f2 color.RGBA) rgb {
	c0, c1, c2 := channels(f0), channels(f1), channels(f2)
	var d rgb
	for k := range d {
		d[k] = -3*c0[k] + 4*c1[k] - c2[k]
	}

	return d
}

func squared(d rgb) float64 {
	return d[0]*d[0] + d[1]*d[1] + d[2]*d[2]
}
