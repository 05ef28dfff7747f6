//go:build !(aix || darwin || dragonfly || freebsd || linux || netbsd || openbsd || solaris)

package preview

import (
	"os"

	"golang.org/x/term"
)

// GetTermSize reports the size of the terminal attached to stdout
func GetTermSize() (TermSize, error) {
	w, h, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		return TermSize{}, err
	}
	return TermSize{Rows: uint(h), Cols: uint(w)}, nil
}
