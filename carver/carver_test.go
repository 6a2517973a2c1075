package carver_test

import (
	"bytes"
	"context"
	"image/color"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/seamcarve/carver"
	"github.com/katalvlaran/seamcarve/energy"
	"github.com/katalvlaran/seamcarve/picture"
	"github.com/katalvlaran/seamcarve/seam"
	"github.com/katalvlaran/seamcarve/toposort"
)

// tagged returns a w×h picture whose pixel (x, y) is R=x, G=y, so every
// pixel remembers where it came from.
func tagged(t *testing.T, w, h int) *picture.RGB {
	t.Helper()
	p, err := picture.New(w, h)
	require.NoError(t, err)
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			p.Set(x, y, color.RGBA{R: uint8(x), G: uint8(y), A: 255})
		}
	}

	return p
}

// zeroRows gives rows listed in cheap zero energy and everything else 10.
func zeroRows(cheap ...uint8) seam.EnergyFunc {
	return func(p seam.Picture, x, y int) float64 {
		g := p.Get(x, y).G
		for _, c := range cheap {
			if g == c {
				return 0
			}
		}
		return 10
	}
}

type recorder struct {
	calls map[string]int
	total float64
}

func (r *recorder) SeamRemoved(o string, _ time.Duration, e float64) {
	if r.calls == nil {
		r.calls = map[string]int{}
	}
	r.calls[o]++
	r.total += e
}

func TestNew_NilArguments(t *testing.T) {
	p := tagged(t, 3, 3)
	dp := seam.NewDynamicProgrammingFinder()
	var f energy.DualGradient

	_, err := carver.New(nil, f, dp)
	assert.ErrorIs(t, err, carver.ErrNilArgument)
	_, err = carver.New(p, nil, dp)
	assert.ErrorIs(t, err, carver.ErrNilArgument)
	_, err = carver.New(p, f, nil)
	assert.ErrorIs(t, err, carver.ErrNilArgument)
}

func TestRemoveHorizontal_TwiceKeepsPixels(t *testing.T) {
	const w, h = 6, 5
	adj, err := seam.NewAdjacencyListFinder(toposort.Factory[int]())
	require.NoError(t, err)

	c, err := carver.New(tagged(t, w, h), zeroRows(1, 3), adj)
	require.NoError(t, err)

	s1, err := c.RemoveHorizontal()
	require.NoError(t, err)
	s2, err := c.RemoveHorizontal()
	require.NoError(t, err)
	assert.Len(t, s1, w)
	assert.Len(t, s2, w)

	p := c.Picture()
	require.Equal(t, w, p.Width())
	require.Equal(t, h-2, p.Height())

	// Each column keeps its own pixels, in order, minus rows 1 and 3.
	for x := 0; x < w; x++ {
		var rows []uint8
		for y := 0; y < p.Height(); y++ {
			px := p.Get(x, y)
			assert.Equal(t, uint8(x), px.R)
			rows = append(rows, px.G)
		}
		assert.Equal(t, []uint8{0, 2, 4}, rows, "column %d", x)
	}
}

func TestRemoveVertical_ShiftsLeft(t *testing.T) {
	p := tagged(t, 4, 3)
	// Column 2 is free.
	free := seam.EnergyFunc(func(p seam.Picture, x, y int) float64 {
		if p.Get(x, y).R == 2 {
			return 0
		}
		return 5
	})
	c, err := carver.New(p, free, seam.NewDynamicProgrammingFinder(), carver.WithValidation())
	require.NoError(t, err)

	s, err := c.RemoveVertical()
	require.NoError(t, err)
	assert.Equal(t, []int{2, 2, 2}, s)

	out := c.Picture()
	require.Equal(t, 3, out.Width())
	for y := 0; y < 3; y++ {
		assert.Equal(t, []uint8{0, 1, 3}, []uint8{out.Get(0, y).R, out.Get(1, y).R, out.Get(2, y).R})
	}
	// The original picture is untouched.
	assert.Equal(t, 4, p.Width())
}

func TestRemove_Exhausted(t *testing.T) {
	c, err := carver.New(tagged(t, 1, 1), energy.DualGradient{}, seam.NewDynamicProgrammingFinder())
	require.NoError(t, err)

	_, err = c.RemoveHorizontal()
	assert.ErrorIs(t, err, carver.ErrBadTarget)
	_, err = c.RemoveVertical()
	assert.ErrorIs(t, err, carver.ErrBadTarget)
}

func TestResize(t *testing.T) {
	var logs bytes.Buffer
	rec := &recorder{}
	c, err := carver.New(tagged(t, 10, 8), energy.DualGradient{}, seam.NewDynamicProgrammingFinder(),
		carver.WithLogger(zerolog.New(&logs).Level(zerolog.DebugLevel)),
		carver.WithRecorder(rec),
	)
	require.NoError(t, err)

	require.NoError(t, c.Resize(context.Background(), 7, 5))
	assert.Equal(t, 7, c.Picture().Width())
	assert.Equal(t, 5, c.Picture().Height())
	assert.Equal(t, map[string]int{carver.Vertical: 3, carver.Horizontal: 3}, rec.calls)
	assert.Contains(t, logs.String(), "resize finished")
	assert.Contains(t, logs.String(), `"orientation":"vertical"`)
}

func TestResize_BadTarget(t *testing.T) {
	c, err := carver.New(tagged(t, 5, 5), energy.DualGradient{}, seam.NewDynamicProgrammingFinder())
	require.NoError(t, err)

	assert.ErrorIs(t, c.Resize(context.Background(), 6, 5), carver.ErrBadTarget)
	assert.ErrorIs(t, c.Resize(context.Background(), 5, carver.MinDimension-1), carver.ErrBadTarget)
	assert.NoError(t, c.Resize(context.Background(), 5, 5))
}

func TestResize_Cancelled(t *testing.T) {
	c, err := carver.New(tagged(t, 6, 6), energy.DualGradient{}, seam.NewDynamicProgrammingFinder())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, c.Resize(ctx, 4, 4), context.Canceled)
	assert.Equal(t, 6, c.Picture().Width())
}

// brokenFinder returns a seam that jumps two rows.
type brokenFinder struct{}

func (brokenFinder) FindHorizontal(p seam.Picture, _ seam.EnergyFunction) ([]int, error) {
	s := make([]int, p.Width())
	if len(s) > 1 {
		s[1] = 2
	}
	return s, nil
}

func (b brokenFinder) FindVertical(p seam.Picture, f seam.EnergyFunction) ([]int, error) {
	return b.FindHorizontal(seam.Transpose(p), f)
}

func TestWithValidation_RejectsBrokenSeam(t *testing.T) {
	c, err := carver.New(tagged(t, 4, 4), energy.DualGradient{}, brokenFinder{}, carver.WithValidation())
	require.NoError(t, err)

	_, err = c.RemoveHorizontal()
	assert.ErrorIs(t, err, seam.ErrInvalidSeam)
	_, err = c.RemoveVertical()
	assert.ErrorIs(t, err, seam.ErrInvalidSeam)
	assert.Equal(t, 4, c.Picture().Height())
}
