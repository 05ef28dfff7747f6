package boundary

import (
	"image"
	"image/color"
	"testing"

	"github.com/menta2k/sprite-cutter/pkg/background"
)

func block(img *image.NRGBA, r image.Rectangle, c color.NRGBA) {
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
}

func TestMaskCounts(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 10, 10))
	sprite := image.Rect(2, 3, 5, 5)
	block(img, sprite, color.NRGBA{200, 0, 0, 255})

	mask := NewMask(img, nil)
	if mask.Width() != 10 || mask.Height() != 10 {
		t.Fatalf("Unexpected mask size %dx%d", mask.Width(), mask.Height())
	}

	if got := mask.EmptyIn(img.Rect); got != 94 {
		t.Errorf("Expected 94 empty pixels, got %d", got)
	}
	if got := mask.ContentRatio(sprite); got != 1 {
		t.Errorf("Expected full content inside the sprite, got %f", got)
	}
	if got := mask.EmptyIn(image.Rect(0, 0, 3, 4)); got != 11 {
		t.Errorf("Expected 11 empty pixels in the corner, got %d", got)
	}
	if got := mask.EmptyIn(image.Rect(-5, -5, 100, 100)); got != 94 {
		t.Errorf("Rectangles should be clipped to the image, got %d", got)
	}
	if got := mask.EmptyRatio(image.Rect(4, 4, 4, 8)); got != 1 {
		t.Errorf("Empty rectangle should be fully empty, got %f", got)
	}
}

func TestMaskUsesMatcher(t *testing.T) {
	bg := color.NRGBA{0, 0, 255, 255}
	img := image.NewNRGBA(image.Rect(0, 0, 8, 8))
	block(img, img.Rect, bg)
	block(img, image.Rect(0, 0, 2, 2), color.NRGBA{255, 255, 0, 255})

	withoutBg := NewMask(img, nil)
	if got := withoutBg.EmptyIn(img.Rect); got != 0 {
		t.Errorf("Opaque pixels are never empty without a matcher, got %d", got)
	}

	withBg := NewMask(img, &background.Matcher{Color: bg, Tolerance: 10})
	if got := withBg.EmptyIn(img.Rect); got != 60 {
		t.Errorf("Expected 60 background pixels, got %d", got)
	}
}

func TestMaskEmptyImage(t *testing.T) {
	mask := NewMask(image.NewNRGBA(image.Rectangle{}), nil)
	if mask.Width() != 0 || mask.Height() != 0 {
		t.Error("Expected an empty mask")
	}
	if mask.EmptyIn(image.Rect(0, 0, 5, 5)) != 0 {
		t.Error("Empty mask should count nothing")
	}
}
