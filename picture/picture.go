package picture

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	_ "image/jpeg" // register the JPEG decoder
	"image/png"
	"io"
	"os"

	"go.uber.org/multierr"

	"github.com/katalvlaran/seamcarve/seam"
)

// ErrBadDimensions is returned for a non-positive width or height.
var ErrBadDimensions = errors.New("picture: width and height must be positive")

// RGB is a mutable W×H picture.
type RGB struct {
	w, h int
	pix  []color.RGBA // row-major, index y*w + x
}

var (
	_ seam.Picture    = (*RGB)(nil)
	_ seam.Transposer = (*RGB)(nil)
)

// New returns a w×h picture with every pixel zeroed.
func New(w, h int) (*RGB, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrBadDimensions, w, h)
	}

	return &RGB{w: w, h: h, pix: make([]color.RGBA, w*h)}, nil
}

// FromImage copies img into a new RGB. The image's bounds origin maps to (0, 0).
func FromImage(img image.Image) (*RGB, error) {
	b := img.Bounds()
	p, err := New(b.Dx(), b.Dy())
	if err != nil {
		return nil, err
	}
	for y := 0; y < p.h; y++ {
		for x := 0; x < p.w; x++ {
			c := color.RGBAModel.Convert(img.At(b.Min.X+x, b.Min.Y+y)).(color.RGBA)
			p.pix[y*p.w+x] = c
		}
	}

	return p, nil
}

// Decode reads a PNG or JPEG image from r.
func Decode(r io.Reader) (*RGB, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("picture: decode: %w", err)
	}

	return FromImage(img)
}

// Load decodes the image file at path.
func Load(path string) (p *RGB, err error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("picture: %w", err)
	}
	defer func() { err = multierr.Append(err, f.Close()) }()

	return Decode(f)
}

// Width returns the number of columns.
func (p *RGB) Width() int { return p.w }

// Height returns the number of rows.
func (p *RGB) Height() int { return p.h }

// Get returns the pixel at (x, y). It panics when out of range.
func (p *RGB) Get(x, y int) color.RGBA { return p.pix[p.index(x, y)] }

// Set stores c at (x, y). It panics when out of range.
func (p *RGB) Set(x, y int, c color.RGBA) { p.pix[p.index(x, y)] = c }

func (p *RGB) index(x, y int) int {
	if x < 0 || x >= p.w || y < 0 || y >= p.h {
		panic(fmt.Sprintf("picture: (%d,%d) outside %dx%d", x, y, p.w, p.h))
	}

	return y*p.w + x
}

// Transposed implements seam.Transposer.
func (p *RGB) Transposed() seam.Picture { return transposed{p: p} }

// Image copies the picture into a standard *image.RGBA.
func (p *RGB) Image() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, p.w, p.h))
	for y := 0; y < p.h; y++ {
		for x := 0; x < p.w; x++ {
			img.SetRGBA(x, y, p.pix[y*p.w+x])
		}
	}

	return img
}

// Encode writes the picture to w as PNG.
func (p *RGB) Encode(w io.Writer) error {
	if err := png.Encode(w, p.Image()); err != nil {
		return fmt.Errorf("picture: encode: %w", err)
	}

	return nil
}

// Save writes the picture to path as PNG, creating or truncating the file.
func (p *RGB) Save(path string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("picture: %w", err)
	}
	defer func() { err = multierr.Append(err, f.Close()) }()

	return p.Encode(f)
}

// transposed swaps coordinates over an RGB.
type transposed struct {
	p *RGB
}

func (t transposed) Width() int                 { return t.p.h }
func (t transposed) Height() int                { return t.p.w }
func (t transposed) Get(x, y int) color.RGBA    { return t.p.Get(y, x) }
func (t transposed) Set(x, y int, c color.RGBA) { t.p.Set(y, x, c) }
func (t transposed) Transposed() seam.Picture   { return t.p }
