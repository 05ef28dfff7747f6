//go:build !windows

package preview

import (
	"fmt"
	"image"
	"io"

	"github.com/BourgeoisBear/rasterm"
	"github.com/andybons/gogif"
)

// printGraphics draws img with the terminal's image protocol. It reports
// false when the terminal has none.
func printGraphics(w io.Writer, img image.Image) bool {
	if rasterm.IsTermKitty() {
		if err := (rasterm.Settings{}).KittyWriteImage(w, img); err == nil {
			fmt.Fprintln(w)
			return true
		}
	}
	if rasterm.IsTermItermWez() {
		if err := (rasterm.Settings{}).ItermWriteImage(w, img); err == nil {
			fmt.Fprintln(w)
			return true
		}
	}
	if capable, err := rasterm.IsSixelCapable(); capable && err == nil {
		palettedImage := image.NewPaletted(img.Bounds(), nil)
		quantizer := gogif.MedianCutQuantizer{NumColor: 64}
		quantizer.Quantize(palettedImage, img.Bounds(), img, img.Bounds().Min)

		if err := (rasterm.Settings{}).SixelWriteImage(w, palettedImage); err == nil {
			fmt.Fprintln(w)
			return true
		}
	}
	return false
}
