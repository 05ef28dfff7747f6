// Package assembler turns split lines into validated frame rectangles.
package assembler

import (
	"github.com/menta2k/sprite-cutter/pkg/boundary"
	"github.com/menta2k/sprite-cutter/pkg/types"
)

// Assembler intersects vertical and horizontal splits into frames
type Assembler struct {
	config Config
}

// Config holds the frame acceptance thresholds
type Config struct {
	MinSpriteSize   int
	MaxSpriteSize   int
	MinContentRatio float64
	// StripFallback enables single-axis detection when the grid pass finds nothing.
	StripFallback bool
}

// New creates an Assembler with default thresholds
func New() *Assembler {
	return &Assembler{
		config: Config{
			MinSpriteSize:   types.DefaultMinSpriteSize,
			MaxSpriteSize:   types.DefaultMaxSpriteSize,
			MinContentRatio: types.DefaultMinContentRatio,
			StripFallback:   true,
		},
	}
}

// NewWithConfig creates an Assembler with custom thresholds
func NewWithConfig(config Config) *Assembler {
	return &Assembler{config: config}
}

// Assemble returns the accepted frames in row-major order. mask supplies the
// image extent and the empty-pixel test.
func (a *Assembler) Assemble(mask *boundary.Mask, splits boundary.Splits) []types.FrameRect {
	w, h := mask.Width(), mask.Height()
	if w == 0 || h == 0 {
		return nil
	}

	xs := a.Boundaries(splits.Coords(types.Vertical), w)
	ys := a.Boundaries(splits.Coords(types.Horizontal), h)

	frames := a.cells(mask, xs, ys)
	if len(frames) > 0 || !a.config.StripFallback {
		return frames
	}

	// Strips from empty-space splits alone: columns first, then rows. Edge
	// splits can swallow a nearby gap during the merge, which leaves grid
	// cells that straddle two sprites.
	xs = a.Boundaries(transparentCoords(splits.Vertical), w)
	ys = a.Boundaries(transparentCoords(splits.Horizontal), h)
	full := func(n int) []int { return []int{0, n} }
	if len(xs) > 2 {
		frames = a.cells(mask, xs, full(h))
	}
	if len(frames) == 0 && len(ys) > 2 {
		frames = a.cells(mask, full(w), ys)
	}
	return frames
}

func transparentCoords(lines []types.SplitLine) []int {
	var coords []int
	for _, l := range lines {
		if l.Kind&types.SplitTransparent != 0 {
			coords = append(coords, l.Coord)
		}
	}
	return coords
}

// Boundaries brackets the ascending split coordinates with 0 and extent and
// drops any split that would leave a span narrower than MinSpriteSize. The
// image edges are always kept.
func (a *Assembler) Boundaries(splits []int, extent int) []int {
	out := []int{0}
	for _, s := range splits {
		if s <= out[len(out)-1] || s >= extent {
			continue
		}
		if s-out[len(out)-1] < a.config.MinSpriteSize {
			continue
		}
		out = append(out, s)
	}
	if len(out) > 1 && extent-out[len(out)-1] < a.config.MinSpriteSize {
		out = out[:len(out)-1]
	}
	return append(out, extent)
}

func (a *Assembler) cells(mask *boundary.Mask, xs, ys []int) []types.FrameRect {
	var frames []types.FrameRect
	for j := 0; j+1 < len(ys); j++ {
		for i := 0; i+1 < len(xs); i++ {
			r := types.FrameRect{
				X:      xs[i],
				Y:      ys[j],
				Width:  xs[i+1] - xs[i],
				Height: ys[j+1] - ys[j],
			}
			if a.Accept(mask, r) {
				frames = append(frames, r)
			}
		}
	}
	return frames
}

// Accept reports whether r satisfies the size and content thresholds
func (a *Assembler) Accept(mask *boundary.Mask, r types.FrameRect) bool {
	if !a.sizeOK(r.Width) || !a.sizeOK(r.Height) {
		return false
	}
	if !r.Within(mask.Width(), mask.Height()) {
		return false
	}
	return mask.ContentRatio(r.Rect()) >= a.config.MinContentRatio
}

func (a *Assembler) sizeOK(n int) bool {
	return n >= a.config.MinSpriteSize && n <= a.config.MaxSpriteSize
}
