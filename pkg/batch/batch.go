// Package batch runs the cutter over many spritesheet files in parallel.
//
// Every file is processed in isolation: a file that cannot be decoded or
// written is recorded in the report and the remaining files carry on.
package batch

import (
	"context"
	"errors"
	"os"
	"path/filepath"

	"github.com/golang/glog"
	pkgerrors "github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	spritecutter "github.com/menta2k/sprite-cutter"
	"github.com/menta2k/sprite-cutter/internal/utils"
	"github.com/menta2k/sprite-cutter/pkg/processing"
)

// OutcomeKind tags the result of one source file
type OutcomeKind int

const (
	// OutcomeFrames means at least one frame was written.
	OutcomeFrames OutcomeKind = iota
	// OutcomeEmpty means the file decoded but no frames were found.
	OutcomeEmpty
	// OutcomeDecodeFailed means the file could not be decoded.
	OutcomeDecodeFailed
	// OutcomeFailed means writing output failed.
	OutcomeFailed
)

func (k OutcomeKind) String() string {
	switch k {
	case OutcomeFrames:
		return "frames"
	case OutcomeEmpty:
		return "empty"
	case OutcomeDecodeFailed:
		return "decode-failed"
	case OutcomeFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Job is one source file and the directory its frames go to
type Job struct {
	Path      string
	OutputDir string
}

// Outcome is the result of one job
type Outcome struct {
	Job     Job
	Kind    OutcomeKind
	Outputs []string
	// Unsplit is set when the whole image was copied because no frames were found.
	Unsplit bool
	Err     error
}

// Report aggregates the outcomes of a run in job order
type Report struct {
	Outcomes []Outcome
}

// Count returns how many outcomes have kind k
func (r Report) Count(k OutcomeKind) int {
	n := 0
	for _, o := range r.Outcomes {
		if o.Kind == k {
			n++
		}
	}
	return n
}

// FramesWritten returns the total number of files written
func (r Report) FramesWritten() int {
	n := 0
	for _, o := range r.Outcomes {
		n += len(o.Outputs)
	}
	return n
}

// Options configures a Runner
type Options struct {
	Workers     int
	CopyUnsplit bool
}

// Runner processes jobs with a bounded worker pool
type Runner struct {
	cutter  *spritecutter.Cutter
	proc    *processing.Processor
	options Options
}

// NewRunner creates a Runner around cutter
func NewRunner(cutter *spritecutter.Cutter, options Options) *Runner {
	if options.Workers < 1 {
		options.Workers = 1
	}
	return &Runner{
		cutter:  cutter,
		proc:    processing.NewProcessor(),
		options: options,
	}
}

// Plan expands inputs into jobs. Directories contribute their image files
// with output under outputDir/<directory name>; files go straight into
// outputDir. Missing inputs are logged and skipped.
func Plan(inputs []string, outputDir string, recursive bool) ([]Job, error) {
	var jobs []Job
	for _, in := range inputs {
		info, err := os.Stat(in)
		if os.IsNotExist(err) {
			glog.Warningf("Input %q not found, skipping", in)
			continue
		}
		if err != nil {
			return nil, pkgerrors.Wrapf(err, "inspecting %s", in)
		}

		if !info.IsDir() {
			if !utils.IsImageFile(in) {
				glog.Warningf("Input %q is not a supported image, skipping", in)
				continue
			}
			jobs = append(jobs, Job{Path: in, OutputDir: outputDir})
			continue
		}

		files, err := utils.ListImageFiles(in, recursive)
		if err != nil {
			return nil, pkgerrors.Wrapf(err, "listing %s", in)
		}
		if len(files) == 0 {
			glog.Infof("No image files found in %s", in)
		}
		dest := filepath.Join(outputDir, utils.SanitizeFilename(filepath.Base(filepath.Clean(in))))
		for _, f := range files {
			jobs = append(jobs, Job{Path: f, OutputDir: dest})
		}
	}
	return jobs, nil
}

// Run processes jobs and returns one outcome per job, in job order. A
// cancelled context stops jobs that have not started yet; they are reported
// as failed.
func (r *Runner) Run(ctx context.Context, jobs []Job) Report {
	outcomes := make([]Outcome, len(jobs))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(r.options.Workers)
	for i, job := range jobs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				outcomes[i] = Outcome{Job: job, Kind: OutcomeFailed, Err: err}
				return nil
			}
			outcomes[i] = r.runOne(job)
			return nil
		})
	}
	_ = g.Wait()

	return Report{Outcomes: outcomes}
}

func (r *Runner) runOne(job Job) Outcome {
	out := Outcome{Job: job}

	img, err := r.proc.LoadImage(job.Path)
	if err != nil {
		glog.Warningf("Skipping %s: %v", job.Path, err)
		out.Kind, out.Err = OutcomeDecodeFailed, err
		return out
	}

	name := spritecutter.BaseName(job.Path)
	result := r.cutter.Process(img)
	if result.Empty() {
		if errors.Is(result.Reason, spritecutter.ErrNoFramesFound) {
			glog.Warningf("%s: no frames found", job.Path)
		} else {
			glog.Warningf("%s: %v", job.Path, result.Reason)
		}
		out.Kind, out.Err = OutcomeEmpty, result.Reason

		if r.options.CopyUnsplit && !errors.Is(result.Reason, spritecutter.ErrEmptySource) {
			whole, err := r.cutter.RenderWhole(img)
			if err == nil {
				path := filepath.Join(job.OutputDir, name+".png")
				if err := r.proc.SaveImage(whole, path); err != nil {
					glog.Errorf("%s: %v", job.Path, err)
					out.Kind, out.Err = OutcomeFailed, err
					return out
				}
				out.Outputs = append(out.Outputs, path)
				out.Unsplit = true
				glog.Infof("%s: copied as single sprite", job.Path)
			}
		}
		return out
	}

	if result.Background == nil {
		glog.V(1).Infof("%s: no background detected, keeping original pixels", job.Path)
	}
	glog.V(1).Infof("%s: %d vertical / %d horizontal splits", job.Path,
		len(result.Splits.Vertical), len(result.Splits.Horizontal))

	cfg := r.cutter.Config()
	for _, f := range result.Frames {
		path := filepath.Join(job.OutputDir, cfg.FrameName(name, f.Index))
		if err := r.proc.SaveImage(f.Image, path); err != nil {
			glog.Errorf("%s: %v", job.Path, err)
			out.Kind, out.Err = OutcomeFailed, err
			return out
		}
		glog.V(1).Infof("%s: frame %d %s -> %s", job.Path, f.Index, f.Rect, path)
		out.Outputs = append(out.Outputs, path)
	}

	glog.Infof("%s: extracted %d frames", job.Path, len(result.Frames))
	out.Kind = OutcomeFrames
	return out
}
