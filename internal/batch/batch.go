// Package batch estimates the frequency of every matching file in a directory.
package batch

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"runtime"
	"sync/atomic"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/cwbudde/algo-freqcall/dsp/series"
	"github.com/cwbudde/algo-freqcall/measure/freq"
	timestats "github.com/cwbudde/algo-freqcall/stats/time"
)

var (
	// ErrDirNotFound indicates that the input directory does not exist.
	ErrDirNotFound = errors.New("directory does not exist")

	// ErrNoFiles indicates that the directory holds no matching files.
	ErrNoFiles = errors.New("no matching files")
)

// Result is the outcome for one file. Frequency is 0 whenever Err is set.
type Result struct {
	File      string // base name
	Path      string
	Frequency float64 // Hz
	Err       error
}

// Runner estimates files concurrently. Each file is loaded, classified and
// estimated by exactly one goroutine.
type Runner struct {
	ext     string
	workers int
	log     *zap.Logger
}

// Option configures a Runner.
type Option func(*Runner)

// WithExtension selects files by extension.
func WithExtension(ext string) Option {
	return func(r *Runner) {
		if ext != "" {
			r.ext = ext
		}
	}
}

// WithWorkers limits the number of files processed at once.
func WithWorkers(n int) Option {
	return func(r *Runner) {
		if n > 0 {
			r.workers = n
		}
	}
}

// WithLogger sets the logger for per-file diagnostics.
func WithLogger(log *zap.Logger) Option {
	return func(r *Runner) {
		if log != nil {
			r.log = log
		}
	}
}

// New returns a Runner for *.csv files using one worker per CPU.
func New(opts ...Option) *Runner {
	r := &Runner{
		ext:     "csv",
		workers: runtime.NumCPU(),
		log:     zap.NewNop(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(r)
		}
	}
	return r
}

// Extension returns the matched file extension.
func (r *Runner) Extension() string {
	return r.ext
}

// Run estimates every matching file in dir. Results are in file name order.
// Per-file failures are reported in Result.Err and do not stop the batch;
// Run itself fails only for a missing or unreadable directory, for an empty
// match (ErrNoFiles) or when ctx is cancelled.
func (r *Runner) Run(ctx context.Context, dir string) ([]Result, error) {
	if !DirExists(dir) {
		return nil, fmt.Errorf("%w: %s", ErrDirNotFound, dir)
	}
	paths, err := MatchFiles(dir, r.ext)
	if err != nil {
		return nil, err
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("%w: *.%s in %s", ErrNoFiles, r.ext, dir)
	}
	r.log.Debug("processing directory", zap.String("dir", dir), zap.Int("files", len(paths)), zap.Int("workers", r.workers))

	results := make([]Result, len(paths))
	var done atomic.Int64

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(r.workers)
	for i, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			results[i] = r.EstimateFile(path)
			r.log.Debug("progress", zap.Int64("done", done.Add(1)), zap.Int("total", len(paths)))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// EstimateFile loads and estimates a single file.
func (r *Runner) EstimateFile(path string) Result {
	res := Result{File: filepath.Base(path), Path: path}
	log := r.log.With(zap.String("file", res.File))

	s, err := series.Load(path)
	if err != nil {
		res.Err = err
		log.Warn("cannot load series", zap.Error(err))
		return res
	}

	if ce := log.Check(zap.DebugLevel, "loaded series"); ce != nil {
		st := timestats.Calculate(s.Values())
		ce.Write(
			zap.Int("samples", st.Length),
			zap.Float64("duration", s.Duration()),
			zap.Float64("mean", st.Mean),
			zap.Float64("rms", st.RMS),
			zap.Float64("range", st.Range),
			zap.Int("mean_crossings", st.ZeroCrossings),
		)
	}

	est, err := freq.Estimate(s)
	c := est.Classification
	if err != nil {
		res.Err = err
		log.Warn("frequency unknown", zap.Error(err), zap.Int("events", est.Events))
		return res
	}

	res.Frequency = est.Frequency
	log.Debug("estimated",
		zap.Float64("frequency_hz", est.Frequency),
		zap.Bool("noisy", c.Noisy),
		zap.Bool("jumped", c.Jumped),
		zap.Bool("superposed", c.Superposed),
		zap.Float64("tolerance", c.Tolerance),
		zap.Int("period_points", c.PeriodPoints),
		zap.Bool("spliced", est.Spliced),
		zap.Int("events", est.Events),
	)
	return res
}
