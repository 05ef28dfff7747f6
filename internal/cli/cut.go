package cli

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/golang/glog"
	"github.com/spf13/cobra"

	spritecutter "github.com/menta2k/sprite-cutter"
	"github.com/menta2k/sprite-cutter/internal/config"
	"github.com/menta2k/sprite-cutter/internal/utils"
	"github.com/menta2k/sprite-cutter/pkg/batch"
)

var (
	cutConfigPath      string
	cutOutput          string
	cutMinSize         int
	cutMaxSize         int
	cutTolerance       int
	cutKeepBackground  bool
	cutWorkers         int
	cutRecursive       bool
	cutCopyUnsplit     bool
	cutNoStripFallback bool
)

var cutCmd = &cobra.Command{
	Use:   "cut [PATH...]",
	Short: "Extract frames from spritesheets",
	Long: `Cuts every spritesheet found under PATH into frames.

PATH may be an image file or a directory. Frames from a directory are written
to <output>/<directory name>/, frames from a single file to <output>/. Each
frame is named <sheet>_frame_<NNN>.png in row-major order.

Without arguments the Base, Ships and Space folders of the current directory
are processed.`,
	RunE: runCut,
}

func init() {
	f := cutCmd.Flags()
	f.StringVarP(&cutConfigPath, "config", "c", "", "config file (json or yaml)")
	f.StringVarP(&cutOutput, "output", "o", "", "output directory")
	f.IntVar(&cutMinSize, "min-size", 0, "minimum frame side in pixels")
	f.IntVar(&cutMaxSize, "max-size", 0, "maximum frame side in pixels")
	f.IntVar(&cutTolerance, "tolerance", 0, "background color tolerance per channel (0-255)")
	f.BoolVar(&cutKeepBackground, "keep-background", false, "do not clear the background color")
	f.IntVarP(&cutWorkers, "workers", "w", 0, "number of files processed in parallel")
	f.BoolVarP(&cutRecursive, "recursive", "r", false, "descend into subdirectories")
	f.BoolVar(&cutCopyUnsplit, "copy-unsplit", false, "write the whole image when no frames are found")
	f.BoolVar(&cutNoStripFallback, "no-strip-fallback", false, "disable row/column strip detection")
	rootCmd.AddCommand(cutCmd)
}

func runCut(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cutConfigPath)
	if err != nil {
		return err
	}
	applyCutFlags(cmd, cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}

	inputs := args
	if len(inputs) == 0 {
		inputs = cfg.Batch.Inputs
	}

	jobs, err := batch.Plan(inputs, cfg.Output.Dir, cfg.Batch.Recursive)
	if err != nil {
		return err
	}
	if len(jobs) == 0 {
		return fmt.Errorf("no spritesheets found in %v", inputs)
	}
	glog.Infof("Processing %d files with %d workers", len(jobs), cfg.Batch.Workers)

	cutter := spritecutter.New(cfg.CutterConfig())
	runner := batch.NewRunner(cutter, batch.Options{
		Workers:     cfg.Batch.Workers,
		CopyUnsplit: cfg.Output.CopyUnsplit,
	})

	start := time.Now()
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	report := runner.Run(ctx, jobs)
	printSummary(cmd.OutOrStdout(), report, time.Since(start))

	if n := report.Count(batch.OutcomeFailed); n > 0 {
		return fmt.Errorf("%d files failed", n)
	}
	return nil
}

// loadConfig reads path, or the per-user config file when path is empty and
// that file exists, or falls back to the defaults.
func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		path = config.GetConfigPath()
		if !utils.FileExists(path) {
			return config.Default(), nil
		}
	}
	cfg, err := config.LoadFromFile(path)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", path, err)
	}
	glog.V(1).Infof("Loaded config from %s", path)
	return cfg, nil
}

func applyCutFlags(cmd *cobra.Command, cfg *config.Config) {
	f := cmd.Flags()
	if f.Changed("output") {
		cfg.Output.Dir = cutOutput
	}
	if f.Changed("min-size") {
		cfg.Cutter.MinSpriteSize = cutMinSize
	}
	if f.Changed("max-size") {
		cfg.Cutter.MaxSpriteSize = cutMaxSize
	}
	if f.Changed("tolerance") {
		cfg.Cutter.BackgroundTolerance = cutTolerance
	}
	if f.Changed("keep-background") {
		cfg.Cutter.RemoveBackground = !cutKeepBackground
	}
	if f.Changed("workers") {
		cfg.Batch.Workers = cutWorkers
	}
	if f.Changed("recursive") {
		cfg.Batch.Recursive = cutRecursive
	}
	if f.Changed("copy-unsplit") {
		cfg.Output.CopyUnsplit = cutCopyUnsplit
	}
	if f.Changed("no-strip-fallback") {
		cfg.Cutter.StripFallback = !cutNoStripFallback
	}
}

func printSummary(w io.Writer, report batch.Report, elapsed time.Duration) {
	fmt.Fprintf(w, "Processed %d files in %s\n", len(report.Outcomes), elapsed.Round(time.Millisecond))
	fmt.Fprintf(w, "  frames written: %d\n", report.FramesWritten())
	fmt.Fprintf(w, "  with frames:    %d\n", report.Count(batch.OutcomeFrames))
	fmt.Fprintf(w, "  no frames:      %d\n", report.Count(batch.OutcomeEmpty))
	fmt.Fprintf(w, "  unreadable:     %d\n", report.Count(batch.OutcomeDecodeFailed))
	fmt.Fprintf(w, "  failed:         %d\n", report.Count(batch.OutcomeFailed))
	for _, o := range report.Outcomes {
		if o.Kind == batch.OutcomeDecodeFailed || o.Kind == batch.OutcomeFailed {
			fmt.Fprintf(w, "  %s: %v\n", o.Job.Path, o.Err)
		}
	}
}
