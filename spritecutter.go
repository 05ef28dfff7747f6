// Package spritecutter splits spritesheets into individual frames.
//
// Frames are found from pixels alone: no grid size or atlas metadata is
// needed. The background color is inferred from the corners of each image
// and cleared from the extracted frames, which are returned as standalone
// NRGBA buffers ready to be written as PNG.
//
// Basic usage:
//
//	package main
//
//	import (
//		"fmt"
//		"log"
//
//		spritecutter "github.com/menta2k/sprite-cutter"
//		"github.com/menta2k/sprite-cutter/pkg/processing"
//		"github.com/menta2k/sprite-cutter/pkg/types"
//	)
//
//	func main() {
//		proc := processing.NewProcessor()
//		img, err := proc.LoadImage("hero.png")
//		if err != nil {
//			log.Fatal(err)
//		}
//
//		cutter := spritecutter.New(types.DefaultCutterConfig())
//		result := cutter.Process(img)
//		for _, f := range result.Frames {
//			fmt.Println(f.Index, f.Rect)
//		}
//	}
//
// The pipeline has five stages, each in its own package:
//
// 1. Pixel sampling (pkg/pixel): normalized read-only pixel access
// 2. Background classification (pkg/background): corner sampling and tolerance matching
// 3. Boundary scanning (pkg/boundary): transparency and edge split lines
// 4. Frame assembly (pkg/assembler): grid cells filtered by size and content
// 5. Frame rendering (pkg/renderer): crop plus background removal
//
// None of the stages fail hard on odd input. An image without a detectable
// background is cut without background removal, and an image without frames
// produces an empty result.
package spritecutter

import (
	"errors"
	"fmt"
	"image"
	"path/filepath"
	"runtime"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/menta2k/sprite-cutter/pkg/assembler"
	"github.com/menta2k/sprite-cutter/pkg/background"
	"github.com/menta2k/sprite-cutter/pkg/boundary"
	"github.com/menta2k/sprite-cutter/pkg/pixel"
	"github.com/menta2k/sprite-cutter/pkg/processing"
	"github.com/menta2k/sprite-cutter/pkg/renderer"
	"github.com/menta2k/sprite-cutter/pkg/types"
)

// Version of the sprite cutter library
const Version = "1.0.0"

var (
	// ErrEmptySource is reported for images with zero width or height.
	ErrEmptySource = errors.New("empty source image")
	// ErrNoFramesFound is reported when no rectangle passes validation.
	ErrNoFramesFound = errors.New("no frames found")
)

// Cutter runs the frame extraction pipeline with a fixed configuration
type Cutter struct {
	config    types.CutterConfig
	scanner   *boundary.Scanner
	assembler *assembler.Assembler
}

// New creates a Cutter. The configuration is copied and never changes
// afterwards.
func New(config types.CutterConfig) *Cutter {
	return &Cutter{
		config: config,
		scanner: boundary.NewWithConfig(boundary.Config{
			EmptyRatio:    config.EmptyRatio,
			EdgeThreshold: config.EdgeThreshold,
		}),
		assembler: assembler.NewWithConfig(assembler.Config{
			MinSpriteSize:   config.MinSpriteSize,
			MaxSpriteSize:   config.MaxSpriteSize,
			MinContentRatio: config.MinContentRatio,
			StripFallback:   config.StripFallback,
		}),
	}
}

// Config returns the cutter's configuration
func (c *Cutter) Config() types.CutterConfig {
	return c.config
}

// Detection holds the intermediate results of frame detection
type Detection struct {
	// Image is the normalized copy of the source.
	Image *image.NRGBA
	// Background is nil when corner sampling failed.
	Background *background.Matcher
	Splits     boundary.Splits
	Rects      []types.FrameRect
}

// Detect classifies the background and finds frame rectangles without
// rendering them.
func (c *Cutter) Detect(img image.Image) (*Detection, error) {
	src := pixel.Normalize(img)
	if src.Rect.Empty() {
		return nil, ErrEmptySource
	}

	matcher, err := background.Classify(src, c.config.CornerSampleSize, c.config.BackgroundTolerance)
	if err != nil {
		matcher = nil
	}

	mask := boundary.NewMask(src, matcher)
	splits := c.scanner.Scan(src, mask)

	return &Detection{
		Image:      src,
		Background: matcher,
		Splits:     splits,
		Rects:      c.assembler.Assemble(mask, splits),
	}, nil
}

// Result is the outcome of processing one image
type Result struct {
	// Frames are in row-major order with 1-based indices.
	Frames []types.Frame
	// Background is nil when no background color could be established.
	Background *background.Matcher
	Splits     boundary.Splits
	// Reason is ErrEmptySource or ErrNoFramesFound when Frames is empty.
	Reason error
}

// Empty reports whether no frames were produced
func (r Result) Empty() bool {
	return len(r.Frames) == 0
}

// Process extracts every frame of img. It never fails: degenerate images
// yield an empty Result with Reason set.
func (c *Cutter) Process(img image.Image) Result {
	det, err := c.Detect(img)
	if err != nil {
		return Result{Reason: err}
	}

	res := Result{Background: det.Background, Splits: det.Splits}
	if len(det.Rects) == 0 {
		res.Reason = ErrNoFramesFound
		return res
	}

	res.Frames = make([]types.Frame, len(det.Rects))
	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, rect := range det.Rects {
		g.Go(func() error {
			res.Frames[i] = types.Frame{
				Index: i + 1,
				Rect:  rect,
				Image: renderer.Render(det.Image, rect, det.Background, c.config.RemoveBackground),
			}
			return nil
		})
	}
	_ = g.Wait()

	return res
}

// RenderWhole returns img as one frame covering the full image, with the
// background cleared when enabled. It is used for sheets that hold a single
// sprite.
func (c *Cutter) RenderWhole(img image.Image) (*image.NRGBA, error) {
	src := pixel.Normalize(img)
	if src.Rect.Empty() {
		return nil, ErrEmptySource
	}
	if !c.config.RemoveBackground {
		return src, nil
	}
	matcher, err := background.Classify(src, c.config.CornerSampleSize, c.config.BackgroundTolerance)
	if err != nil {
		return src, nil
	}
	renderer.ClearBackground(src, matcher)
	return src, nil
}

// ProcessFile is a convenience function that loads a spritesheet, cuts it and
// writes every frame as PNG into outputDir. It returns the number of frames
// written.
func (c *Cutter) ProcessFile(inputPath, outputDir string) (int, error) {
	proc := processing.NewProcessor()

	img, err := proc.LoadImage(inputPath)
	if err != nil {
		return 0, err
	}

	result := c.Process(img)
	if result.Empty() {
		return 0, result.Reason
	}

	name := BaseName(inputPath)
	for _, f := range result.Frames {
		outputPath := filepath.Join(outputDir, c.config.FrameName(name, f.Index))
		if err := proc.SaveImage(f.Image, outputPath); err != nil {
			return f.Index - 1, fmt.Errorf("failed to save frame %d: %w", f.Index, err)
		}
	}

	return len(result.Frames), nil
}

// GetVersion returns the library version
func GetVersion() string {
	return Version
}

// BaseName extracts the base filename without extension
func BaseName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
