package seam

import (
	"errors"
	"image/color"
)

// Sentinel errors for seam finding.
var (
	// ErrNilPicture is returned when a nil Picture is supplied.
	ErrNilPicture = errors.New("seam: picture is nil")

	// ErrNilEnergy is returned when a nil EnergyFunction is supplied.
	ErrNilEnergy = errors.New("seam: energy function is nil")

	// ErrNilFactory is returned by NewAdjacencyListFinder for a nil solver factory.
	ErrNilFactory = errors.New("seam: solver factory is nil")

	// ErrEmptyPicture is returned for a picture with no pixels.
	ErrEmptyPicture = errors.New("seam: picture has no pixels")

	// ErrInvalidSeam is returned by Validate for a malformed seam.
	ErrInvalidSeam = errors.New("seam: invalid seam")

	// ErrTooManySeams is returned by GenerativeFinder when enumeration
	// would exceed the configured limit.
	ErrTooManySeams = errors.New("seam: too many seams to enumerate")
)

// Virtual endpoints of the seam graph. Pixel ids are never negative.
const (
	SourceVertex = -1
	SinkVertex   = -2
)

// DefaultMaxSeams bounds GenerativeFinder enumeration.
const DefaultMaxSeams uint64 = 1 << 20

// Picture is a mutable grid of RGB pixels addressed by (x, y) with
// 0 <= x < Width() and 0 <= y < Height().
type Picture interface {
	Width() int
	Height() int
	Get(x, y int) color.RGBA
	Set(x, y int, c color.RGBA)
}

// Transposer is implemented by pictures that can provide their own
// transposed view.
type Transposer interface {
	// Transposed returns a view with x and y swapped. Writes through the
	// view must reach the original picture.
	Transposed() Picture
}

// EnergyFunction scores the visual importance of the pixel at (x, y).
// Results must be finite and non-negative for every in-bounds pixel.
type EnergyFunction interface {
	Apply(p Picture, x, y int) float64
}

// EnergyFunc adapts a plain function to EnergyFunction.
type EnergyFunc func(p Picture, x, y int) float64

// Apply calls f(p, x, y).
func (f EnergyFunc) Apply(p Picture, x, y int) float64 { return f(p, x, y) }

// Finder locates one minimum-energy seam per call.
type Finder interface {
	// FindHorizontal returns one row index per column.
	FindHorizontal(p Picture, f EnergyFunction) ([]int, error)

	// FindVertical returns one column index per row.
	FindVertical(p Picture, f EnergyFunction) ([]int, error)
}

// Option configures a Finder.
type Option func(*Options)

// Options holds Finder settings. Each Finder reads only the fields it
// understands.
type Options struct {
	// CacheSize, if > 0, memoises energy lookups of one
	// AdjacencyListFinder call in an LRU of that many entries.
	CacheSize int

	// MaxSeams caps GenerativeFinder enumeration; 0 means no cap.
	MaxSeams uint64
}

// DefaultOptions returns Options with no energy cache and
// MaxSeams = DefaultMaxSeams.
func DefaultOptions() Options {
	return Options{
		CacheSize: 0,
		MaxSeams:  DefaultMaxSeams,
	}
}

// WithEnergyCache enables a per-call LRU of size entries. size <= 0
// disables it.
func WithEnergyCache(size int) Option {
	return func(o *Options) {
		if size < 0 {
			size = 0
		}
		o.CacheSize = size
	}
}

// WithMaxSeams sets the enumeration cap of GenerativeFinder; 0 removes it.
func WithMaxSeams(n uint64) Option {
	return func(o *Options) { o.MaxSeams = n }
}

func applyOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// check validates the arguments shared by every Finder.
func check(p Picture, f EnergyFunction) error {
	if p == nil {
		return ErrNilPicture
	}
	if f == nil {
		return ErrNilEnergy
	}
	if p.Width() <= 0 || p.Height() <= 0 {
		return ErrEmptyPicture
	}

	return nil
}
