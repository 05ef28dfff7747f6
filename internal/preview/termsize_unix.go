//go:build aix || darwin || dragonfly || freebsd || linux || netbsd || openbsd || solaris

package preview

import (
	"os"

	"golang.org/x/sys/unix"
	"golang.org/x/term"
)

// GetTermSize reports the size of the controlling terminal. The pixel size
// is zero when the terminal does not report it.
func GetTermSize() (TermSize, error) {
	f, err := os.OpenFile("/dev/tty", unix.O_NOCTTY|unix.O_CLOEXEC|unix.O_NDELAY|unix.O_RDWR, 0666)
	if err == nil {
		defer f.Close()
		var sz *unix.Winsize
		if sz, err = unix.IoctlGetWinsize(int(f.Fd()), unix.TIOCGWINSZ); err == nil {
			return TermSize{
				Rows:   uint(sz.Row),
				Cols:   uint(sz.Col),
				XPixel: uint(sz.Xpixel),
				YPixel: uint(sz.Ypixel),
			}, nil
		}
	}

	w, h, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		return TermSize{}, err
	}
	return TermSize{Rows: uint(h), Cols: uint(w)}, nil
}
