package carver

import (
	"errors"
	"time"

	"github.com/rs/zerolog"
)

// Sentinel errors for carving.
var (
	// ErrNilArgument is returned by New when the picture, energy function
	// or finder is nil.
	ErrNilArgument = errors.New("carver: nil argument")

	// ErrBadTarget is returned for a size that cannot be reached by
	// removing seams.
	ErrBadTarget = errors.New("carver: target size out of range")
)

// MinDimension is the smallest width or height Resize will carve down to.
const MinDimension = 3

// Orientation names used in logs and passed to Observer.
const (
	Horizontal = "horizontal"
	Vertical   = "vertical"
)

// Observer is notified after every removed seam.
type Observer interface {
	SeamRemoved(orientation string, elapsed time.Duration, energy float64)
}

// Option configures a Carver.
type Option func(*Options)

// Options holds Carver settings.
type Options struct {
	Logger   zerolog.Logger
	Observer Observer

	// Validate checks every seam with seam.Validate before removal.
	Validate bool
}

// DefaultOptions returns silent options: no logging, no observer, no
// validation.
func DefaultOptions() Options {
	return Options{Logger: zerolog.Nop()}
}

// WithLogger logs seam removals and resize progress to l.
func WithLogger(l zerolog.Logger) Option {
	return func(o *Options) { o.Logger = l }
}

// WithRecorder reports every removed seam to r, typically a
// *metrics.Recorder.
func WithRecorder(r Observer) Option {
	return func(o *Options) { o.Observer = r }
}

// WithValidation enables seam validation before each removal.
func WithValidation() Option {
	return func(o *Options) { o.Validate = true }
}
