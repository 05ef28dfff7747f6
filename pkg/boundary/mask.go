package boundary

import (
	"image"

	"github.com/menta2k/sprite-cutter/pkg/background"
	"github.com/menta2k/sprite-cutter/pkg/pixel"
)

// Mask records which pixels of an image are empty: transparent, or matching
// the background when a matcher is known. Counts over any rectangle are
// answered in constant time from a summed-area table.
type Mask struct {
	width  int
	height int
	sum    []int // (width+1) x (height+1)
}

// NewMask classifies every pixel of img. m may be nil.
func NewMask(img *image.NRGBA, m *background.Matcher) *Mask {
	s := pixel.NewSampler(img)
	if s.Empty() {
		return &Mask{}
	}
	w, h := s.Width(), s.Height()
	stride := w + 1
	sum := make([]int, stride*(h+1))
	for y := 0; y < h; y++ {
		row := 0
		for x := 0; x < w; x++ {
			c := s.At(x, y)
			if pixel.Transparent(c) || m.Matches(c) {
				row++
			}
			sum[(y+1)*stride+x+1] = sum[y*stride+x+1] + row
		}
	}
	return &Mask{width: w, height: h, sum: sum}
}

// Width of the masked image
func (k *Mask) Width() int { return k.width }

// Height of the masked image
func (k *Mask) Height() int { return k.height }

// EmptyIn counts empty pixels inside r, clipped to the image
func (k *Mask) EmptyIn(r image.Rectangle) int {
	r = r.Intersect(image.Rect(0, 0, k.width, k.height))
	if r.Empty() {
		return 0
	}
	stride := k.width + 1
	return k.sum[r.Max.Y*stride+r.Max.X] -
		k.sum[r.Min.Y*stride+r.Max.X] -
		k.sum[r.Max.Y*stride+r.Min.X] +
		k.sum[r.Min.Y*stride+r.Min.X]
}

// EmptyRatio is the fraction of empty pixels inside r. An empty rectangle
// counts as fully empty.
func (k *Mask) EmptyRatio(r image.Rectangle) float64 {
	r = r.Intersect(image.Rect(0, 0, k.width, k.height))
	area := r.Dx() * r.Dy()
	if area == 0 {
		return 1
	}
	return float64(k.EmptyIn(r)) / float64(area)
}

// ContentRatio is the fraction of non-empty pixels inside r
func (k *Mask) ContentRatio(r image.Rectangle) float64 {
	return 1 - k.EmptyRatio(r)
}
