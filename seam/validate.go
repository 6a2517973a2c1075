package seam

import "fmt"

// Validate reports whether seam is a well-formed horizontal seam of p:
// one entry per column, every entry a valid row, and neighbouring entries
// at most one row apart. Validate a vertical seam with Transpose(p).
func Validate(p Picture, seam []int) error {
	if p == nil {
		return ErrNilPicture
	}
	w, h := p.Width(), p.Height()
	if len(seam) != w {
		return fmt.Errorf("%w: length %d, want %d", ErrInvalidSeam, len(seam), w)
	}
	for x, y := range seam {
		if y < 0 || y >= h {
			return fmt.Errorf("%w: row %d at column %d outside [0,%d)", ErrInvalidSeam, y, x, h)
		}
		if x > 0 && (y-seam[x-1] > 1 || seam[x-1]-y > 1) {
			return fmt.Errorf("%w: jump %d→%d at column %d", ErrInvalidSeam, seam[x-1], y, x)
		}
	}

	return nil
}

// HorizontalEnergy sums f over the pixels of a horizontal seam. The seam
// is assumed valid.
func HorizontalEnergy(p Picture, f EnergyFunction, seam []int) float64 {
	total := 0.0
	for x, y := range seam {
		total += f.Apply(p, x, y)
	}

	return total
}

// VerticalEnergy sums f over the pixels of a vertical seam.
func VerticalEnergy(p Picture, f EnergyFunction, seam []int) float64 {
	return HorizontalEnergy(Transpose(p), f, seam)
}
