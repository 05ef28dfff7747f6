//go:build windows

package preview

import (
	"image"
	"io"
)

func printGraphics(w io.Writer, img image.Image) bool {
	return false
}
