// Package preview prints extracted frames on a terminal.
//
// Output quality depends on the terminal: kitty, iTerm2/WezTerm and sixel
// terminals get real images, everything else gets colored blocks.
package preview

import (
	"fmt"
	"image"
	ic "image/color"
	"io"
	"strings"

	"github.com/gookit/color"
	"github.com/nfnt/resize"
)

// Mode selects how pixels are drawn
type Mode int

const (
	// ModeAuto uses terminal graphics when available and 24-bit blocks otherwise.
	ModeAuto Mode = iota
	// Mode24Bit draws truecolor blocks.
	Mode24Bit
	// Mode256 draws blocks from the xterm 256 color palette.
	Mode256
	// ModePlain draws ASCII shades without color escapes.
	ModePlain
)

// ParseMode converts a flag value into a Mode
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(s) {
	case "", "auto":
		return ModeAuto, nil
	case "24bit", "truecolor":
		return Mode24Bit, nil
	case "256":
		return Mode256, nil
	case "plain", "none":
		return ModePlain, nil
	default:
		return ModeAuto, fmt.Errorf("unknown preview mode %q", s)
	}
}

// Printer draws images to a writer
type Printer struct {
	w       io.Writer
	mode    Mode
	maxSide uint
}

// TermSize is the terminal size in character cells and, when known, pixels
type TermSize struct {
	Rows, Cols     uint
	XPixel, YPixel uint
}

// NewPrinter creates a Printer. Images larger than maxSide on either side are
// shrunk before block rendering; 0 fits them to the terminal width instead.
func NewPrinter(w io.Writer, mode Mode, maxSide uint) *Printer {
	return &Printer{w: w, mode: mode, maxSide: maxSide}
}

// Print draws img followed by a newline
func (p *Printer) Print(img image.Image) error {
	if p.mode == ModeAuto {
		g := img
		if ts, err := GetTermSize(); err == nil && ts.XPixel != 0 && ts.YPixel != 0 {
			g = fit(g, ts.XPixel/2, ts.YPixel/2)
		}
		if printGraphics(p.w, g) {
			return nil
		}
	}
	img = p.thumbnail(img)

	b := img.Bounds()
	var sb strings.Builder
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			sb.WriteString(p.cell(img.At(x, y)))
		}
		sb.WriteString("\n")
	}
	_, err := io.WriteString(p.w, sb.String())
	return err
}

func (p *Printer) thumbnail(img image.Image) image.Image {
	side := p.maxSide
	if side == 0 {
		// Two characters per pixel.
		if ts, err := GetTermSize(); err == nil && ts.Cols > 1 {
			side = ts.Cols / 2
		}
	}
	if side == 0 {
		return img
	}
	return fit(img, side, side)
}

// fit shrinks img to at most w x h keeping its aspect ratio
func fit(img image.Image, w, h uint) image.Image {
	b := img.Bounds()
	if uint(b.Dx()) <= w && uint(b.Dy()) <= h {
		return img
	}
	return resize.Thumbnail(w, h, img, resize.NearestNeighbor)
}

func (p *Printer) cell(col ic.Color) string {
	c := ic.NRGBAModel.Convert(col).(ic.NRGBA)
	if c.A == 0 {
		return "  "
	}
	switch p.mode {
	case ModePlain:
		return shade(c)
	case Mode256:
		return color.C256(xterm256(c), true).Sprint("  ")
	default:
		return color.RGB(c.R, c.G, c.B, true).Sprint("  ")
	}
}

// shade picks an ASCII pair by brightness
func shade(c ic.NRGBA) string {
	a := (int(c.R) + int(c.G) + int(c.B)) / 3
	switch {
	case a < 32:
		return ".."
	case a < 64:
		return "--"
	case a < 128:
		return "=="
	default:
		return "##"
	}
}

// xterm256 maps a color onto the 6x6x6 cube of the xterm palette
func xterm256(c ic.NRGBA) uint8 {
	q := func(v uint8) uint8 { return uint8((int(v)*5 + 127) / 255) }
	return 16 + 36*q(c.R) + 6*q(c.G) + q(c.B)
}
