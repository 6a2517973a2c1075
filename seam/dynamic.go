package seam

// DynamicProgrammingFinder finds seams without building a graph.
//
// Algorithm Outline:
//  1. best[0][y] = energy(0, y).
//  2. For x = 1..W-1 and every row y:
//     best[x][y] = energy(x, y) + min(best[x-1][y-1], best[x-1][y], best[x-1][y+1])
//     over in-bounds rows, recording the winning predecessor row.
//  3. Pick the row of the last column with the smallest best value.
//  4. Walk predecessors back to column 0.
//
// Ties go to the smallest row, both between predecessors and in step 3.
//
// Complexity: O(W·H) time and memory.
type DynamicProgrammingFinder struct{}

var _ Finder = (*DynamicProgrammingFinder)(nil)

// NewDynamicProgrammingFinder returns a DynamicProgrammingFinder.
func NewDynamicProgrammingFinder() *DynamicProgrammingFinder {
	return &DynamicProgrammingFinder{}
}

// FindHorizontal implements Finder.
func (DynamicProgrammingFinder) FindHorizontal(p Picture, f EnergyFunction) ([]int, error) {
	if err := check(p, f); err != nil {
		return nil, err
	}
	w, h := p.Width(), p.Height()

	// Flat tables indexed by x*h + y.
	best := make([]float64, w*h)
	from := make([]int, w*h)

	for y := 0; y < h; y++ {
		best[y] = f.Apply(p, 0, y)
	}
	for x := 1; x < w; x++ {
		prev, cur := (x-1)*h, x*h
		for y := 0; y < h; y++ {
			row := max(y-1, 0)
			for ny := row + 1; ny <= min(y+1, h-1); ny++ {
				if best[prev+ny] < best[prev+row] {
					row = ny
				}
			}
			best[cur+y] = f.Apply(p, x, y) + best[prev+row]
			from[cur+y] = row
		}
	}

	last := (w - 1) * h
	end := 0
	for y := 1; y < h; y++ {
		if best[last+y] < best[last+end] {
			end = y
		}
	}

	seam := make([]int, w)
	seam[w-1] = end
	for x := w - 1; x > 0; x-- {
		seam[x-1] = from[x*h+seam[x]]
	}

	return seam, nil
}

// FindVertical implements Finder on the transposed picture.
func (d DynamicProgrammingFinder) FindVertical(p Picture, f EnergyFunction) ([]int, error) {
	return d.FindHorizontal(Transpose(p), f)
}
