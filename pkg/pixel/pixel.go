// Package pixel gives read-only access to 8-bit RGBA pixels of a decoded
// image. Every other stage of the cutter reads pixels through it.
package pixel

import (
	"image"
	"image/color"

	"github.com/disintegration/imaging"
)

// TransparentAlpha is the highest alpha value still treated as transparent.
const TransparentAlpha = 10

// Normalize returns img as a non-premultiplied RGBA buffer anchored at (0, 0).
// The result never aliases img.
func Normalize(img image.Image) *image.NRGBA {
	if img == nil {
		return image.NewNRGBA(image.Rectangle{})
	}
	return imaging.Clone(img)
}

// Sampler reads pixels from an NRGBA buffer whose bounds start at (0, 0)
type Sampler struct {
	img *image.NRGBA
}

// NewSampler wraps img. img must already be normalized.
func NewSampler(img *image.NRGBA) Sampler {
	return Sampler{img: img}
}

// Width returns the image width in pixels
func (s Sampler) Width() int {
	return s.img.Rect.Dx()
}

// Height returns the image height in pixels
func (s Sampler) Height() int {
	return s.img.Rect.Dy()
}

// Empty reports whether the sampled image has no pixels
func (s Sampler) Empty() bool {
	return s.img == nil || s.img.Rect.Empty()
}

// At returns the pixel at (x, y). Coordinates outside the image yield the
// zero (fully transparent) color.
func (s Sampler) At(x, y int) color.NRGBA {
	if x < 0 || y < 0 || x >= s.Width() || y >= s.Height() {
		return color.NRGBA{}
	}
	i := y*s.img.Stride + x*4
	p := s.img.Pix[i : i+4 : i+4]
	return color.NRGBA{R: p[0], G: p[1], B: p[2], A: p[3]}
}

// Transparent reports whether c is invisible
func Transparent(c color.NRGBA) bool {
	return c.A <= TransparentAlpha
}
