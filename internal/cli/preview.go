package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	spritecutter "github.com/menta2k/sprite-cutter"
	"github.com/menta2k/sprite-cutter/internal/preview"
	"github.com/menta2k/sprite-cutter/pkg/processing"
	"github.com/menta2k/sprite-cutter/pkg/types"
)

var (
	previewConfigPath string
	previewOverlay    string
	previewMode       string
	previewMaxSide    uint
	previewFrames     bool
)

var previewCmd = &cobra.Command{
	Use:   "preview FILE",
	Short: "Show the frames detected in a spritesheet",
	Long: `Runs frame detection on FILE without writing frames and prints what was
found: the background color, the split lines and every frame.

With --overlay a copy of the sheet is written with the frame rectangles in
green and the vertical and horizontal split lines in red and blue.`,
	Args: cobra.ExactArgs(1),
	RunE: runPreview,
}

func init() {
	f := previewCmd.Flags()
	f.StringVarP(&previewConfigPath, "config", "c", "", "config file (json or yaml)")
	f.StringVar(&previewOverlay, "overlay", "", "write a debug overlay PNG to this path")
	f.StringVar(&previewMode, "mode", "auto", "terminal drawing mode: auto|24bit|256|plain")
	f.UintVar(&previewMaxSide, "max-side", 32, "shrink frames larger than this many pixels before printing")
	f.BoolVar(&previewFrames, "frames", true, "print every frame to the terminal")
	rootCmd.AddCommand(previewCmd)
}

func runPreview(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(previewConfigPath)
	if err != nil {
		return err
	}
	mode, err := preview.ParseMode(previewMode)
	if err != nil {
		return err
	}

	path := args[0]
	proc := processing.NewProcessor()
	img, err := proc.LoadImage(path)
	if err != nil {
		return err
	}

	cutter := spritecutter.New(cfg.CutterConfig())
	det, err := cutter.Detect(img)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	out := cmd.OutOrStdout()
	b := det.Image.Bounds()
	fmt.Fprintf(out, "%s: %dx%d\n", path, b.Dx(), b.Dy())
	if det.Background != nil {
		c := det.Background.Color
		fmt.Fprintf(out, "background: #%02x%02x%02x%02x ±%d\n", c.R, c.G, c.B, c.A, det.Background.Tolerance)
	} else {
		fmt.Fprintln(out, "background: none")
	}
	fmt.Fprintf(out, "vertical splits:   %v\n", det.Splits.Coords(types.Vertical))
	fmt.Fprintf(out, "horizontal splits: %v\n", det.Splits.Coords(types.Horizontal))
	fmt.Fprintf(out, "frames: %d\n", len(det.Rects))

	if previewOverlay != "" {
		overlay := proc.CreateDebugOverlay(det.Image, det.Rects,
			det.Splits.Coords(types.Vertical), det.Splits.Coords(types.Horizontal))
		if err := proc.SaveImage(overlay, previewOverlay); err != nil {
			return err
		}
		fmt.Fprintf(out, "overlay written to %s\n", previewOverlay)
	}

	if !previewFrames || len(det.Rects) == 0 {
		return nil
	}

	printer := preview.NewPrinter(out, mode, previewMaxSide)
	result := cutter.Process(img)
	for _, f := range result.Frames {
		fmt.Fprintf(out, "frame %d %s\n", f.Index, f.Rect)
		if err := printer.Print(f.Image); err != nil {
			return err
		}
	}
	return nil
}
