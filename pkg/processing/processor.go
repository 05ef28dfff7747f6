package processing

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
	"github.com/pkg/errors"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/menta2k/sprite-cutter/pkg/types"
)

// SupportedExtensions lists the input file extensions the processor decodes
var SupportedExtensions = []string{"png", "jpg", "jpeg", "bmp", "gif", "tiff", "webp"}

// DecodeError reports a file that could not be read or decoded
type DecodeError struct {
	Path string
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode %s: %v", e.Path, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// Processor handles image file operations around the cutter
type Processor struct{}

// NewProcessor creates a new image processor
func NewProcessor() *Processor {
	return &Processor{}
}

// LoadImage loads an image from a file path with WebP support
func (p *Processor) LoadImage(path string) (image.Image, error) {
	// Try imaging.Open (registered decoders)
	if img, err := imaging.Open(path); err == nil {
		return img, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &DecodeError{Path: path, Err: errors.Wrap(err, "reading image file")}
	}
	img, err := p.DecodeBytes(data)
	if err != nil {
		return nil, &DecodeError{Path: path, Err: err}
	}
	return img, nil
}

// LoadImageFromReader loads an image from an io.Reader
func (p *Processor) LoadImageFromReader(r io.Reader) (image.Image, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "reading image data")
	}
	return p.DecodeBytes(data)
}

// DecodeBytes decodes image data using the registered decoders, falling back
// to the libwebp decoder for WebP variants x/image does not handle.
func (p *Processor) DecodeBytes(data []byte) (image.Image, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err == nil {
		return img, nil
	}

	if wimg, werr := webp.Decode(bytes.NewReader(data)); werr == nil {
		return wimg, nil
	}

	return nil, errors.Wrap(err, "image: unknown or unsupported format")
}

// SaveImage writes img as PNG, creating the parent directory when needed.
// Frames are always PNG so the alpha channel survives regardless of the
// source format.
func (p *Processor) SaveImage(img image.Image, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return errors.Wrapf(err, "creating directory for %s", path)
	}
	if !strings.EqualFold(filepath.Ext(path), ".png") {
		path = strings.TrimSuffix(path, filepath.Ext(path)) + ".png"
	}
	if err := imaging.Save(img, path); err != nil {
		return errors.Wrapf(err, "saving %s", path)
	}
	return nil
}

// CreateDebugOverlay draws the detected frames and split lines over a copy of img
func (p *Processor) CreateDebugOverlay(img image.Image, frames []types.FrameRect, vertical, horizontal []int) image.Image {
	nrgba := imaging.Clone(img)
	w := nrgba.Bounds().Dx()
	h := nrgba.Bounds().Dy()

	// Colors
	green := color.NRGBA{0, 255, 0, 255}  // frame box
	red := color.NRGBA{255, 0, 0, 160}    // vertical split
	blue := color.NRGBA{0, 170, 255, 160} // horizontal split

	for _, x := range vertical {
		drawVLine(nrgba, x, 0, h, red)
	}
	for _, y := range horizontal {
		drawHLine(nrgba, y, 0, w, blue)
	}
	for _, f := range frames {
		drawBox(nrgba, f, green, 1)
	}

	return nrgba
}

func drawBox(img *image.NRGBA, f types.FrameRect, color color.NRGBA, stroke int) {
	x0, y0, x1, y1 := f.X, f.Y, f.X+f.Width, f.Y+f.Height
	for s := 0; s < stroke; s++ {
		drawHLine(img, y0+s, x0, x1, color)
		drawHLine(img, y1-1-s, x0, x1, color)
		drawVLine(img, x0+s, y0, y1, color)
		drawVLine(img, x1-1-s, y0, y1, color)
	}
}

func drawHLine(img *image.NRGBA, y, x0, x1 int, c color.NRGBA) {
	if y < 0 || y >= img.Bounds().Dy() {
		return
	}
	if x0 > x1 {
		x0, x1 = x1, x0
	}
	if x1 <= 0 || x0 >= img.Bounds().Dx() {
		return
	}
	if x0 < 0 {
		x0 = 0
	}
	if x1 > img.Bounds().Dx() {
		x1 = img.Bounds().Dx()
	}
	i := y*img.Stride + x0*4
	for x := x0; x < x1; x++ {
		img.Pix[i+0] = c.R
		img.Pix[i+1] = c.G
		img.Pix[i+2] = c.B
		img.Pix[i+3] = c.A
		i += 4
	}
}

func drawVLine(img *image.NRGBA, x, y0, y1 int, c color.NRGBA) {
	if x < 0 || x >= img.Bounds().Dx() {
		return
	}
	if y0 > y1 {
		y0, y1 = y1, y0
	}
	if y1 <= 0 || y0 >= img.Bounds().Dy() {
		return
	}
	if y0 < 0 {
		y0 = 0
	}
	if y1 > img.Bounds().Dy() {
		y1 = img.Bounds().Dy()
	}
	i := y0*img.Stride + x*4
	for y := y0; y < y1; y++ {
		img.Pix[i+0] = c.R
		img.Pix[i+1] = c.G
		img.Pix[i+2] = c.B
		img.Pix[i+3] = c.A
		i += img.Stride
	}
}
