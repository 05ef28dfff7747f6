package background

import (
	"errors"
	"image"
	"image/color"

	"github.com/menta2k/sprite-cutter/pkg/pixel"
)

// ErrNoBackground is returned when corner sampling cannot establish a
// background color.
var ErrNoBackground = errors.New("no background detected")

// Matcher classifies pixels as background when every channel lies within
// Tolerance of Color.
type Matcher struct {
	Color     color.NRGBA
	Tolerance uint8
}

// Matches reports whether c is background
func (m *Matcher) Matches(c color.NRGBA) bool {
	if m == nil {
		return false
	}
	t := int(m.Tolerance)
	return absDiff(c.R, m.Color.R) <= t &&
		absDiff(c.G, m.Color.G) <= t &&
		absDiff(c.B, m.Color.B) <= t &&
		absDiff(c.A, m.Color.A) <= t
}

func absDiff(a, b uint8) int {
	if a > b {
		return int(a - b)
	}
	return int(b - a)
}

// Classify samples the four corner regions of img and returns a matcher for
// the most frequent color found there. Each corner region is at most
// sampleSize pixels on a side and never more than half the image, so the
// regions do not overlap. Ties go to the color seen first, scanning the
// corners top-left, top-right, bottom-left, bottom-right, each row by row.
func Classify(img *image.NRGBA, sampleSize int, tolerance uint8) (*Matcher, error) {
	s := pixel.NewSampler(img)
	if s.Empty() {
		return nil, ErrNoBackground
	}
	w, h := s.Width(), s.Height()
	sw, sh := min(sampleSize, w/2), min(sampleSize, h/2)
	if sw <= 0 || sh <= 0 {
		return nil, ErrNoBackground
	}

	corners := [4]image.Point{
		{0, 0},
		{w - sw, 0},
		{0, h - sh},
		{w - sw, h - sh},
	}

	type tally struct {
		count int
		first int
	}
	counts := make(map[color.NRGBA]*tally)
	seen := 0
	for _, origin := range corners {
		for y := origin.Y; y < origin.Y+sh; y++ {
			for x := origin.X; x < origin.X+sw; x++ {
				c := s.At(x, y)
				t, ok := counts[c]
				if !ok {
					t = &tally{first: seen}
					counts[c] = t
				}
				t.count++
				seen++
			}
		}
	}

	var best color.NRGBA
	var bestTally *tally
	for c, t := range counts {
		if bestTally == nil || t.count > bestTally.count ||
			(t.count == bestTally.count && t.first < bestTally.first) {
			best, bestTally = c, t
		}
	}

	return &Matcher{Color: best, Tolerance: tolerance}, nil
}
