package background

import (
	"errors"
	"image"
	"image/color"
	"testing"
)

func fill(w, h int, c color.NRGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}

func TestClassifyDominantCornerColor(t *testing.T) {
	bg := color.NRGBA{10, 20, 30, 255}
	img := fill(40, 40, bg)

	// Specks inside the corner regions and a big sprite in the middle.
	img.SetNRGBA(1, 1, color.NRGBA{255, 0, 0, 255})
	img.SetNRGBA(38, 38, color.NRGBA{0, 255, 0, 255})
	for y := 12; y < 28; y++ {
		for x := 12; x < 28; x++ {
			img.SetNRGBA(x, y, color.NRGBA{200, 200, 200, 255})
		}
	}

	m, err := Classify(img, 10, 20)
	if err != nil {
		t.Fatalf("Classify failed: %v", err)
	}
	if m.Color != bg {
		t.Errorf("Expected background %v, got %v", bg, m.Color)
	}
	if m.Tolerance != 20 {
		t.Errorf("Expected tolerance 20, got %d", m.Tolerance)
	}
}

func TestClassifyTransparentSheet(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 32, 32))
	m, err := Classify(img, 10, 20)
	if err != nil {
		t.Fatalf("Classify failed: %v", err)
	}
	if m.Color != (color.NRGBA{}) {
		t.Errorf("Expected transparent background, got %v", m.Color)
	}
}

func TestClassifyTieGoesToFirstSeen(t *testing.T) {
	a := color.NRGBA{1, 1, 1, 255}
	b := color.NRGBA{2, 2, 2, 255}

	// 4x2 with sample size 2: every corner is a 2x1 strip. Row 0 is a a b b,
	// row 1 is b b a a, so both colors appear four times and a comes first.
	img := image.NewNRGBA(image.Rect(0, 0, 4, 2))
	for x := 0; x < 4; x++ {
		top, bottom := a, b
		if x >= 2 {
			top, bottom = b, a
		}
		img.SetNRGBA(x, 0, top)
		img.SetNRGBA(x, 1, bottom)
	}

	for i := 0; i < 20; i++ {
		m, err := Classify(img, 2, 0)
		if err != nil {
			t.Fatalf("Classify failed: %v", err)
		}
		if m.Color != a {
			t.Fatalf("Run %d: expected %v, got %v", i, a, m.Color)
		}
	}
}

func TestClassifyTooSmall(t *testing.T) {
	tests := []*image.NRGBA{
		image.NewNRGBA(image.Rectangle{}),
		image.NewNRGBA(image.Rect(0, 0, 1, 1)),
		image.NewNRGBA(image.Rect(0, 0, 100, 1)),
	}
	for _, img := range tests {
		if _, err := Classify(img, 10, 20); !errors.Is(err, ErrNoBackground) {
			t.Errorf("Classify(%v) error = %v, expected ErrNoBackground", img.Rect, err)
		}
	}
	if _, err := Classify(image.NewNRGBA(image.Rect(0, 0, 10, 10)), 0, 20); !errors.Is(err, ErrNoBackground) {
		t.Errorf("Zero sample size should fail, got %v", err)
	}
}

func TestMatcherTolerance(t *testing.T) {
	m := &Matcher{Color: color.NRGBA{100, 100, 100, 255}, Tolerance: 20}

	tests := []struct {
		c        color.NRGBA
		expected bool
	}{
		{color.NRGBA{100, 100, 100, 255}, true},
		{color.NRGBA{120, 80, 100, 255}, true},
		{color.NRGBA{121, 100, 100, 255}, false},
		{color.NRGBA{100, 100, 79, 255}, false},
		{color.NRGBA{100, 100, 100, 235}, true},
		{color.NRGBA{100, 100, 100, 234}, false},
	}
	for _, test := range tests {
		if got := m.Matches(test.c); got != test.expected {
			t.Errorf("Matches(%v) = %v, expected %v", test.c, got, test.expected)
		}
	}

	var none *Matcher
	if none.Matches(color.NRGBA{}) {
		t.Error("A nil matcher should match nothing")
	}
}
