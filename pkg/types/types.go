package types

import (
	"fmt"
	"image"
	"strings"
)

// Axis identifies the direction a split line runs along
type Axis int

const (
	// Vertical splits separate columns; their coordinate is an x value.
	Vertical Axis = iota
	// Horizontal splits separate rows; their coordinate is a y value.
	Horizontal
)

func (a Axis) String() string {
	if a == Horizontal {
		return "horizontal"
	}
	return "vertical"
}

// SplitKind records which signal produced a split line
type SplitKind int

const (
	// SplitTransparent comes from a run of mostly empty rows or columns.
	SplitTransparent SplitKind = 1 << iota
	// SplitEdge comes from an abrupt luminance change.
	SplitEdge
)

func (k SplitKind) String() string {
	switch k {
	case SplitTransparent:
		return "transparent"
	case SplitEdge:
		return "edge"
	case SplitTransparent | SplitEdge:
		return "transparent+edge"
	default:
		return "none"
	}
}

// SplitLine is a candidate frame boundary
type SplitLine struct {
	Axis  Axis      `json:"axis"`
	Coord int       `json:"coord"`
	Kind  SplitKind `json:"kind"`
}

// FrameRect is a frame rectangle in source image coordinates
type FrameRect struct {
	X      int `json:"x"`
	Y      int `json:"y"`
	Width  int `json:"width"`
	Height int `json:"height"`
}

// Rect converts the frame into an image.Rectangle
func (r FrameRect) Rect() image.Rectangle {
	return image.Rect(r.X, r.Y, r.X+r.Width, r.Y+r.Height)
}

// Area returns the pixel count covered by the frame
func (r FrameRect) Area() int {
	return r.Width * r.Height
}

// Within reports whether the frame lies fully inside a w x h image
func (r FrameRect) Within(w, h int) bool {
	return r.X >= 0 && r.Y >= 0 && r.Width > 0 && r.Height > 0 &&
		r.X+r.Width <= w && r.Y+r.Height <= h
}

func (r FrameRect) String() string {
	return fmt.Sprintf("%dx%d@%d,%d", r.Width, r.Height, r.X, r.Y)
}

// Frame is one extracted sprite
type Frame struct {
	// Index is 1-based in row-major order.
	Index int
	Rect  FrameRect
	Image *image.NRGBA
}

// Default values for CutterConfig.
const (
	DefaultMinSpriteSize       = 8
	DefaultMaxSpriteSize       = 1024
	DefaultBackgroundTolerance = 20
	DefaultOutputDir           = "assets2"
	DefaultNameTemplate        = "{name}_frame_{index}.png"
	DefaultCornerSampleSize    = 10
	DefaultEmptyRatio          = 0.80
	DefaultMinContentRatio     = 0.05
	DefaultEdgeThreshold       = 48.0
)

// CutterConfig is the per-run configuration of the cutter. It is passed by
// value and never modified after construction.
type CutterConfig struct {
	MinSpriteSize       int
	MaxSpriteSize       int
	BackgroundTolerance uint8
	RemoveBackground    bool
	OutputDir           string
	NameTemplate        string

	CornerSampleSize int
	EmptyRatio       float64
	MinContentRatio  float64
	EdgeThreshold    float64
	StripFallback    bool
}

// DefaultCutterConfig returns the configuration used when nothing is overridden
func DefaultCutterConfig() CutterConfig {
	return CutterConfig{
		MinSpriteSize:       DefaultMinSpriteSize,
		MaxSpriteSize:       DefaultMaxSpriteSize,
		BackgroundTolerance: DefaultBackgroundTolerance,
		RemoveBackground:    true,
		OutputDir:           DefaultOutputDir,
		NameTemplate:        DefaultNameTemplate,
		CornerSampleSize:    DefaultCornerSampleSize,
		EmptyRatio:          DefaultEmptyRatio,
		MinContentRatio:     DefaultMinContentRatio,
		EdgeThreshold:       DefaultEdgeThreshold,
		StripFallback:       true,
	}
}

// FrameName renders the naming template for frame index (1-based) of the
// source named name. {index} is zero-padded to three digits.
func (c CutterConfig) FrameName(name string, index int) string {
	tmpl := c.NameTemplate
	if tmpl == "" {
		tmpl = DefaultNameTemplate
	}
	r := strings.NewReplacer("{name}", name, "{index}", fmt.Sprintf("%03d", index))
	return r.Replace(tmpl)
}
