package seam

import "image/color"

// Transpose returns p with rows and columns swapped. Pictures that
// implement Transposer supply their own view; any other picture is wrapped
// without copying. Transposing a wrapped view returns the original.
func Transpose(p Picture) Picture {
	if p == nil {
		return nil
	}
	if t, ok := p.(Transposer); ok {
		return t.Transposed()
	}

	return transposed{p: p}
}

// transposed is a coordinate-swapping view over another Picture.
type transposed struct {
	p Picture
}

func (t transposed) Width() int                 { return t.p.Height() }
func (t transposed) Height() int                { return t.p.Width() }
func (t transposed) Get(x, y int) color.RGBA    { return t.p.Get(y, x) }
func (t transposed) Set(x, y int, c color.RGBA) { t.p.Set(y, x, c) }
func (t transposed) Transposed() Picture        { return t.p }
