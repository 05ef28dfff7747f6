package types

import "testing"

func TestFrameName(t *testing.T) {
	cfg := DefaultCutterConfig()

	tests := []struct {
		name     string
		index    int
		expected string
	}{
		{"hero", 1, "hero_frame_001.png"},
		{"hero", 12, "hero_frame_012.png"},
		{"ship", 1000, "ship_frame_1000.png"},
	}

	for _, test := range tests {
		result := cfg.FrameName(test.name, test.index)
		if result != test.expected {
			t.Errorf("FrameName(%s, %d) = %s, expected %s",
				test.name, test.index, result, test.expected)
		}
	}
}

func TestFrameNameCustomTemplate(t *testing.T) {
	cfg := CutterConfig{NameTemplate: "{index}-{name}.png"}
	if got := cfg.FrameName("tile", 7); got != "007-tile.png" {
		t.Errorf("Expected 007-tile.png, got %s", got)
	}

	cfg.NameTemplate = ""
	if got := cfg.FrameName("tile", 7); got != "tile_frame_007.png" {
		t.Errorf("Empty template should fall back to the default, got %s", got)
	}
}

func TestFrameRect(t *testing.T) {
	r := FrameRect{X: 10, Y: 20, Width: 30, Height: 40}

	if r.Area() != 1200 {
		t.Errorf("Expected area 1200, got %d", r.Area())
	}
	if got := r.Rect(); got.Min.X != 10 || got.Min.Y != 20 || got.Max.X != 40 || got.Max.Y != 60 {
		t.Errorf("Unexpected rectangle %v", got)
	}
	if r.String() != "30x40@10,20" {
		t.Errorf("Unexpected string %s", r.String())
	}

	if !r.Within(40, 60) {
		t.Error("Frame touching the image edge should be within bounds")
	}
	if r.Within(39, 60) {
		t.Error("Frame past the right edge should not be within bounds")
	}
	if (FrameRect{X: 0, Y: 0, Width: 0, Height: 5}).Within(10, 10) {
		t.Error("Zero width frame should not be within bounds")
	}
}

func TestSplitKindString(t *testing.T) {
	if SplitTransparent.String() != "transparent" {
		t.Errorf("Unexpected %s", SplitTransparent)
	}
	if (SplitTransparent | SplitEdge).String() != "transparent+edge" {
		t.Errorf("Unexpected %s", SplitTransparent|SplitEdge)
	}
	if Horizontal.String() != "horizontal" || Vertical.String() != "vertical" {
		t.Error("Unexpected axis names")
	}
}

func TestDefaultCutterConfig(t *testing.T) {
	cfg := DefaultCutterConfig()

	if cfg.MinSpriteSize != 8 || cfg.MaxSpriteSize != 1024 {
		t.Errorf("Unexpected size limits %d..%d", cfg.MinSpriteSize, cfg.MaxSpriteSize)
	}
	if cfg.BackgroundTolerance != 20 {
		t.Errorf("Expected tolerance 20, got %d", cfg.BackgroundTolerance)
	}
	if !cfg.RemoveBackground {
		t.Error("Expected background removal to be on by default")
	}
	if cfg.OutputDir != "assets2" {
		t.Errorf("Expected output dir assets2, got %s", cfg.OutputDir)
	}
}
