package boundary

import (
	"image"
	"image/color"
	"sort"
	"testing"

	"github.com/menta2k/sprite-cutter/pkg/types"
)

func TestScanTransparentGapsCollapseToMidpoints(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 30, 10))
	dark := color.NRGBA{30, 30, 30, 255}
	block(img, image.Rect(5, 0, 10, 10), dark)
	block(img, image.Rect(20, 0, 25, 10), dark)

	splits := New().Scan(img, NewMask(img, nil))

	got := splits.Coords(types.Vertical)
	expected := []int{2, 14, 27}
	if len(got) != len(expected) {
		t.Fatalf("Expected vertical splits %v, got %v", expected, got)
	}
	for i := range expected {
		if got[i] != expected[i] {
			t.Errorf("Split %d: expected %d, got %d", i, expected[i], got[i])
		}
	}
	for _, l := range splits.Vertical {
		if l.Axis != types.Vertical {
			t.Errorf("Split %d has axis %s", l.Coord, l.Axis)
		}
		if l.Kind != types.SplitTransparent {
			t.Errorf("Split %d has kind %s, expected transparent", l.Coord, l.Kind)
		}
	}

	// Every row crosses both sprites.
	if len(splits.Horizontal) != 0 {
		t.Errorf("Expected no horizontal splits, got %v", splits.Coords(types.Horizontal))
	}
}

func TestScanEdgeSplit(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 40, 10))
	block(img, image.Rect(0, 0, 20, 10), color.NRGBA{0, 0, 0, 255})
	block(img, image.Rect(20, 0, 40, 10), color.NRGBA{255, 255, 255, 255})

	splits := New().Scan(img, NewMask(img, nil))

	if len(splits.Vertical) != 1 {
		t.Fatalf("Expected one vertical split, got %v", splits.Coords(types.Vertical))
	}
	l := splits.Vertical[0]
	if l.Coord != 20 || l.Kind != types.SplitEdge {
		t.Errorf("Expected edge split at 20, got %s split at %d", l.Kind, l.Coord)
	}
	if len(splits.Horizontal) != 0 {
		t.Errorf("Expected no horizontal splits, got %v", splits.Coords(types.Horizontal))
	}
}

func TestScanEdgeThresholdConfigurable(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 40, 10))
	block(img, image.Rect(0, 0, 20, 10), color.NRGBA{0, 0, 0, 255})
	block(img, image.Rect(20, 0, 40, 10), color.NRGBA{255, 255, 255, 255})

	scanner := NewWithConfig(Config{EmptyRatio: 0.8, EdgeThreshold: 255})
	if splits := scanner.Scan(img, NewMask(img, nil)); len(splits.Vertical) != 0 {
		t.Errorf("A maximal threshold should suppress edges, got %v", splits.Coords(types.Vertical))
	}
}

func TestScanSplitsAscendingAndInside(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 64, 48))
	c := color.NRGBA{40, 40, 40, 255}
	block(img, image.Rect(3, 4, 13, 14), c)
	block(img, image.Rect(30, 20, 45, 30), c)
	block(img, image.Rect(50, 35, 60, 45), c)

	splits := New().Scan(img, NewMask(img, nil))
	for axis, extent := range map[types.Axis]int{types.Vertical: 64, types.Horizontal: 48} {
		coords := splits.Coords(axis)
		if !sort.IntsAreSorted(coords) {
			t.Errorf("%s splits not ascending: %v", axis, coords)
		}
		for _, v := range coords {
			if v < 0 || v >= extent {
				t.Errorf("%s split %d outside 0..%d", axis, v, extent)
			}
		}
	}
}

func TestScanEmptyImage(t *testing.T) {
	img := image.NewNRGBA(image.Rectangle{})
	splits := New().Scan(img, NewMask(img, nil))
	if len(splits.Vertical) != 0 || len(splits.Horizontal) != 0 {
		t.Error("Empty image should have no splits")
	}
}
