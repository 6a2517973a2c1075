package carver

import (
	"context"
	"fmt"
	"time"

	"github.com/katalvlaran/seamcarve/picture"
	"github.com/katalvlaran/seamcarve/seam"
)

// Carver removes seams from a picture it owns.
type Carver struct {
	pic    *picture.RGB
	energy seam.EnergyFunction
	finder seam.Finder
	opts   Options
}

// New returns a Carver over p. A *picture.RGB is used as is; any other
// Picture is copied first. Returns ErrNilArgument for any nil argument.
func New(p seam.Picture, f seam.EnergyFunction, finder seam.Finder, opts ...Option) (*Carver, error) {
	if p == nil || f == nil || finder == nil {
		return nil, ErrNilArgument
	}
	rgb, ok := p.(*picture.RGB)
	if !ok {
		var err error
		if rgb, err = copyOf(p); err != nil {
			return nil, err
		}
	}

	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return &Carver{pic: rgb, energy: f, finder: finder, opts: o}, nil
}

// Picture returns the current picture. It is replaced, not mutated, by
// every removal.
func (c *Carver) Picture() *picture.RGB { return c.pic }

// RemoveHorizontal removes one minimum-energy horizontal seam and returns
// it (one row per column).
func (c *Carver) RemoveHorizontal() ([]int, error) {
	w, h := c.pic.Width(), c.pic.Height()
	if h <= 1 {
		return nil, fmt.Errorf("%w: cannot remove a row from height %d", ErrBadTarget, h)
	}

	s, elapsed, err := c.find(Horizontal)
	if err != nil {
		return nil, err
	}
	e := seam.HorizontalEnergy(c.pic, c.energy, s)

	next, err := picture.New(w, h-1)
	if err != nil {
		return nil, err
	}
	for x := 0; x < w; x++ {
		for y := 0; y < s[x]; y++ {
			next.Set(x, y, c.pic.Get(x, y))
		}
		for y := s[x]; y < h-1; y++ {
			next.Set(x, y, c.pic.Get(x, y+1))
		}
	}
	c.pic = next
	c.removed(Horizontal, elapsed, e)

	return s, nil
}

// RemoveVertical removes one minimum-energy vertical seam and returns it
// (one column per row).
func (c *Carver) RemoveVertical() ([]int, error) {
	w, h := c.pic.Width(), c.pic.Height()
	if w <= 1 {
		return nil, fmt.Errorf("%w: cannot remove a column from width %d", ErrBadTarget, w)
	}

	s, elapsed, err := c.find(Vertical)
	if err != nil {
		return nil, err
	}
	e := seam.VerticalEnergy(c.pic, c.energy, s)

	next, err := picture.New(w-1, h)
	if err != nil {
		return nil, err
	}
	for y := 0; y < h; y++ {
		for x := 0; x < s[y]; x++ {
			next.Set(x, y, c.pic.Get(x, y))
		}
		for x := s[y]; x < w-1; x++ {
			next.Set(x, y, c.pic.Get(x+1, y))
		}
	}
	c.pic = next
	c.removed(Vertical, elapsed, e)

	return s, nil
}

// Resize carves the picture down to width×height, removing vertical seams
// first. ctx is checked before every seam. Each target must lie in
// [MinDimension, current] unless it equals the current size.
func (c *Carver) Resize(ctx context.Context, width, height int) error {
	w, h := c.pic.Width(), c.pic.Height()
	if err := checkTarget("width", width, w); err != nil {
		return err
	}
	if err := checkTarget("height", height, h); err != nil {
		return err
	}

	log := c.opts.Logger
	log.Info().Int("from_width", w).Int("from_height", h).
		Int("to_width", width).Int("to_height", height).Msg("resize started")
	start := time.Now()

	for c.pic.Width() > width {
		if err := ctx.Err(); err != nil {
			return err
		}
		if _, err := c.RemoveVertical(); err != nil {
			return err
		}
	}
	for c.pic.Height() > height {
		if err := ctx.Err(); err != nil {
			return err
		}
		if _, err := c.RemoveHorizontal(); err != nil {
			return err
		}
	}

	log.Info().Int("seams", (w-width)+(h-height)).Dur("elapsed", time.Since(start)).Msg("resize finished")

	return nil
}

// find asks the finder for one seam. Validation of a vertical seam runs
// against the transposed view.
func (c *Carver) find(orientation string) ([]int, time.Duration, error) {
	var (
		s    []int
		err  error
		view seam.Picture = c.pic
	)
	start := time.Now()
	if orientation == Vertical {
		s, err = c.finder.FindVertical(c.pic, c.energy)
		view = c.pic.Transposed()
	} else {
		s, err = c.finder.FindHorizontal(c.pic, c.energy)
	}
	elapsed := time.Since(start)
	if err != nil {
		return nil, 0, fmt.Errorf("carver: %s seam: %w", orientation, err)
	}
	if c.opts.Validate {
		if err := seam.Validate(view, s); err != nil {
			return nil, 0, fmt.Errorf("carver: %s seam: %w", orientation, err)
		}
	}

	return s, elapsed, nil
}

func (c *Carver) removed(orientation string, elapsed time.Duration, energy float64) {
	if c.opts.Observer != nil {
		c.opts.Observer.SeamRemoved(orientation, elapsed, energy)
	}
	c.opts.Logger.Debug().
		Str("orientation", orientation).
		Float64("energy", energy).
		Dur("elapsed", elapsed).
		Int("width", c.pic.Width()).
		Int("height", c.pic.Height()).
		Msg("seam removed")
}

func checkTarget(name string, target, current int) error {
	if target == current {
		return nil
	}
	if target > current || target < MinDimension {
		return fmt.Errorf("%w: %s %d not in [%d, %d]", ErrBadTarget, name, target, MinDimension, current)
	}

	return nil
}

func copyOf(p seam.Picture) (*picture.RGB, error) {
	out, err := picture.New(p.Width(), p.Height())
	if err != nil {
		return nil, fmt.Errorf("carver: %w", err)
	}
	for x := 0; x < p.Width(); x++ {
		for y := 0; y < p.Height(); y++ {
			out.Set(x, y, p.Get(x, y))
		}
	}

	return out, nil
}
