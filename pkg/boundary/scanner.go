// Package boundary finds candidate split lines between sprite frames.
//
// A column (or row) becomes a candidate when most of its pixels are empty, or
// when its luminance differs sharply from the previous column (or row). Runs
// of adjacent candidates collapse into one split at the run's midpoint so a
// wide gap yields a single boundary.
package boundary

import (
	"image"
	"math"
	"sync"

	"github.com/disintegration/imaging"

	"github.com/menta2k/sprite-cutter/pkg/types"
)

// Config holds the thresholds used by the scanner
type Config struct {
	// EmptyRatio is the minimum fraction of empty pixels for a transparency split.
	EmptyRatio float64
	// EdgeThreshold is the minimum mean absolute luma delta (0-255) against
	// the previous line for an edge split.
	EdgeThreshold float64
}

// Scanner computes split lines for an image
type Scanner struct {
	config Config
}

// New creates a Scanner with default thresholds
func New() *Scanner {
	return &Scanner{
		config: Config{
			EmptyRatio:    types.DefaultEmptyRatio,
			EdgeThreshold: types.DefaultEdgeThreshold,
		},
	}
}

// NewWithConfig creates a Scanner with custom thresholds
func NewWithConfig(config Config) *Scanner {
	return &Scanner{config: config}
}

// Splits holds ascending split lines for both axes
type Splits struct {
	Vertical   []types.SplitLine
	Horizontal []types.SplitLine
}

// Coords returns the coordinates of the split lines on one axis
func (s Splits) Coords(axis types.Axis) []int {
	lines := s.Vertical
	if axis == types.Horizontal {
		lines = s.Horizontal
	}
	coords := make([]int, len(lines))
	for i, l := range lines {
		coords[i] = l.Coord
	}
	return coords
}

// Scan finds split lines in img using mask for the empty-pixel test. The
// two axes are scanned concurrently.
func (s *Scanner) Scan(img *image.NRGBA, mask *Mask) Splits {
	w, h := mask.Width(), mask.Height()
	if w == 0 || h == 0 {
		return Splits{}
	}
	luma := lumaPlane(img)

	var splits Splits
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		splits.Vertical = s.scanAxis(types.Vertical, w,
			func(x int) float64 { return mask.EmptyRatio(image.Rect(x, 0, x+1, h)) },
			func(x int) float64 { return columnDelta(luma, w, h, x) })
	}()
	go func() {
		defer wg.Done()
		splits.Horizontal = s.scanAxis(types.Horizontal, h,
			func(y int) float64 { return mask.EmptyRatio(image.Rect(0, y, w, y+1)) },
			func(y int) float64 { return rowDelta(luma, w, y) })
	}()
	wg.Wait()

	return splits
}

// scanAxis classifies n lines and collapses candidate runs to midpoints
func (s *Scanner) scanAxis(axis types.Axis, n int, emptyRatio, delta func(int) float64) []types.SplitLine {
	kinds := make([]types.SplitKind, n)
	for i := 0; i < n; i++ {
		if emptyRatio(i) >= s.config.EmptyRatio {
			kinds[i] |= types.SplitTransparent
		}
		if i > 0 && delta(i) > s.config.EdgeThreshold {
			kinds[i] |= types.SplitEdge
		}
	}

	var lines []types.SplitLine
	for i := 0; i < n; {
		if kinds[i] == 0 {
			i++
			continue
		}
		start := i
		var kind types.SplitKind
		for i < n && kinds[i] != 0 {
			kind |= kinds[i]
			i++
		}
		lines = append(lines, types.SplitLine{
			Axis:  axis,
			Coord: (start + i - 1) / 2,
			Kind:  kind,
		})
	}
	return lines
}

// lumaPlane returns Rec. 601 luminance scaled by alpha, one value per pixel
func lumaPlane(img *image.NRGBA) []float64 {
	gray := imaging.Grayscale(img)
	w, h := gray.Rect.Dx(), gray.Rect.Dy()
	luma := make([]float64, w*h)
	for y := 0; y < h; y++ {
		i := y * gray.Stride
		for x := 0; x < w; x++ {
			luma[y*w+x] = float64(gray.Pix[i]) * float64(gray.Pix[i+3]) / 255
			i += 4
		}
	}
	return luma
}

func columnDelta(luma []float64, w, h, x int) float64 {
	var total float64
	for y := 0; y < h; y++ {
		total += math.Abs(luma[y*w+x] - luma[y*w+x-1])
	}
	return total / float64(h)
}

func rowDelta(luma []float64, w, y int) float64 {
	var total float64
	cur, prev := luma[y*w:(y+1)*w], luma[(y-1)*w:y*w]
	for x := range cur {
		total += math.Abs(cur[x] - prev[x])
	}
	return total / float64(w)
}
