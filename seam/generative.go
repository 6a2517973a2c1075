package seam

import "fmt"

// GenerativeFinder enumerates every staircase seam and keeps the cheapest.
//
// The number of seams grows roughly as H·3^(W-1), so the finder first
// counts them and refuses with ErrTooManySeams above Options.MaxSeams.
// Use it on small fixtures to cross-check the other finders.
type GenerativeFinder struct {
	opts Options
}

var _ Finder = (*GenerativeFinder)(nil)

// NewGenerativeFinder returns a GenerativeFinder. WithMaxSeams is the only
// option it reads.
func NewGenerativeFinder(opts ...Option) *GenerativeFinder {
	return &GenerativeFinder{opts: applyOptions(opts)}
}

// FindHorizontal implements Finder. Among equally cheap seams it returns
// the one that is lexicographically smallest.
func (gf *GenerativeFinder) FindHorizontal(p Picture, f EnergyFunction) ([]int, error) {
	if err := check(p, f); err != nil {
		return nil, err
	}
	w, h := p.Width(), p.Height()

	if limit := gf.opts.MaxSeams; limit > 0 {
		if seamsExceed(w, h, limit) {
			return nil, fmt.Errorf("%w: more than %d seams in %dx%d", ErrTooManySeams, limit, w, h)
		}
	}

	// Each pixel is scored once; enumeration then only sums.
	energy := make([]float64, w*h)
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			energy[x*h+y] = f.Apply(p, x, y)
		}
	}

	e := &enumerator{w: w, h: h, energy: energy, cur: make([]int, w)}
	for y := 0; y < h; y++ {
		e.walk(0, y, 0)
	}

	return e.best, nil
}

// FindVertical implements Finder on the transposed picture.
func (gf *GenerativeFinder) FindVertical(p Picture, f EnergyFunction) ([]int, error) {
	return gf.FindHorizontal(Transpose(p), f)
}

// enumerator carries the state of one depth-first enumeration.
type enumerator struct {
	w, h     int
	energy   []float64
	cur      []int
	best     []int
	bestCost float64
}

// walk extends the seam prefix cur[:x] with row y; sum is the energy of
// the prefix.
func (e *enumerator) walk(x, y int, sum float64) {
	e.cur[x] = y
	sum += e.energy[x*e.h+y]
	if x == e.w-1 {
		if e.best == nil || sum < e.bestCost {
			e.best = append(e.best[:0], e.cur...)
			e.bestCost = sum
		}
		return
	}
	for ny := max(y-1, 0); ny <= min(y+1, e.h-1); ny++ {
		e.walk(x+1, ny, sum)
	}
}

// seamsExceed reports whether a w×h grid holds more than limit staircase
// seams. Partial counts never exceed limit, so any limit up to
// math.MaxUint64 is safe.
func seamsExceed(w, h int, limit uint64) bool {
	cur := make([]uint64, h)
	next := make([]uint64, h)
	for y := range cur {
		cur[y] = 1
	}
	for x := 1; x < w; x++ {
		for y := 0; y < h; y++ {
			var n uint64
			for py := max(y-1, 0); py <= min(y+1, h-1); py++ {
				if cur[py] > limit-n {
					return true
				}
				n += cur[py]
			}
			next[y] = n
		}
		cur, next = next, cur
	}

	var total uint64
	for _, n := range cur {
		if n > limit-total {
			return true
		}
		total += n
	}

	return false
}
