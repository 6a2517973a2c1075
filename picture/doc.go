// Package picture provides RGB, an in-memory seam.Picture backed by a
// row-major pixel slice, with PNG and JPEG decoding and PNG encoding.
//
// RGB.Transposed returns a view, not a copy: writes through the view land
// in the original picture.
package picture
