package pixel

import (
	"image"
	"image/color"
	"testing"
)

func TestNormalizeMovesOrigin(t *testing.T) {
	src := image.NewRGBA(image.Rect(5, 5, 15, 10))
	src.Set(5, 5, color.RGBA{255, 0, 0, 255})

	img := Normalize(src)
	if img.Rect.Min != (image.Point{}) {
		t.Fatalf("Expected origin at 0,0, got %v", img.Rect.Min)
	}
	if img.Rect.Dx() != 10 || img.Rect.Dy() != 5 {
		t.Errorf("Expected 10x5, got %dx%d", img.Rect.Dx(), img.Rect.Dy())
	}

	s := NewSampler(img)
	if got := s.At(0, 0); got != (color.NRGBA{255, 0, 0, 255}) {
		t.Errorf("Expected red at origin, got %v", got)
	}
}

func TestNormalizeDoesNotAlias(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	img := Normalize(src)
	img.Pix[0] = 99
	if src.Pix[0] != 0 {
		t.Error("Normalize must copy the source pixels")
	}
}

func TestNormalizeNil(t *testing.T) {
	img := Normalize(nil)
	if img == nil || !img.Rect.Empty() {
		t.Error("Expected an empty image for nil input")
	}
	if !NewSampler(img).Empty() {
		t.Error("Sampler over an empty image should report Empty")
	}
}

func TestSamplerOutOfBounds(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 3, 3))
	for i := range img.Pix {
		img.Pix[i] = 255
	}
	s := NewSampler(img)

	for _, p := range []image.Point{{-1, 0}, {0, -1}, {3, 0}, {0, 3}} {
		if got := s.At(p.X, p.Y); got != (color.NRGBA{}) {
			t.Errorf("At(%d, %d) = %v, expected transparent", p.X, p.Y, got)
		}
	}
	if got := s.At(2, 2); got != (color.NRGBA{255, 255, 255, 255}) {
		t.Errorf("Expected white, got %v", got)
	}
}

func TestTransparent(t *testing.T) {
	if !Transparent(color.NRGBA{255, 255, 255, TransparentAlpha}) {
		t.Error("Alpha at the threshold should be transparent")
	}
	if Transparent(color.NRGBA{0, 0, 0, TransparentAlpha + 1}) {
		t.Error("Alpha above the threshold should be visible")
	}
}
