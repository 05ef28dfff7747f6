// Package renderer crops frames out of a spritesheet and clears their
// background.
package renderer

import (
	"image"
	"image/color"

	"github.com/disintegration/imaging"

	"github.com/menta2k/sprite-cutter/pkg/background"
	"github.com/menta2k/sprite-cutter/pkg/types"
)

// Render copies rect out of src into a new buffer of the rect's size. When
// removeBackground is set and m is non-nil, pixels matched by m become fully
// transparent; every other pixel keeps its original value. src is not modified.
func Render(src *image.NRGBA, rect types.FrameRect, m *background.Matcher, removeBackground bool) *image.NRGBA {
	dst := imaging.Crop(src, rect.Rect().Add(src.Rect.Min))
	if removeBackground && m != nil {
		ClearBackground(dst, m)
	}
	return dst
}

// ClearBackground sets every pixel of img matched by m to (0, 0, 0, 0) in place
func ClearBackground(img *image.NRGBA, m *background.Matcher) {
	b := img.Rect
	for y := b.Min.Y; y < b.Max.Y; y++ {
		i := img.PixOffset(b.Min.X, y)
		for x := b.Min.X; x < b.Max.X; x++ {
			p := img.Pix[i : i+4 : i+4]
			if m.Matches(color.NRGBA{R: p[0], G: p[1], B: p[2], A: p[3]}) {
				p[0], p[1], p[2], p[3] = 0, 0, 0, 0
			}
			i += 4
		}
	}
}
