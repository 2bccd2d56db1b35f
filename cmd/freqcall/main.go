// Command freqcall estimates the fundamental frequency of every sampled
// waveform file in a directory.
//
// Usage:
//
//	freqcall [flags] [path]
//
// Each file holds a header line followed by "time,value" rows. Results are
// printed as a table of file name and frequency in kHz, highest first.
//
// Examples:
//
//	freqcall
//	freqcall -t ./captures
//	freqcall -order asc -workers 4 ./captures
//	freqcall -config freqcall.yaml -v
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"

	"go.uber.org/zap"

	"github.com/cwbudde/algo-freqcall/internal/batch"
	"github.com/cwbudde/algo-freqcall/internal/config"
	"github.com/cwbudde/algo-freqcall/internal/logging"
	"github.com/cwbudde/algo-freqcall/internal/report"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("freqcall", flag.ContinueOnError)
	fs.SetOutput(stderr)

	def := config.Default()
	timing := fs.Bool("t", false, "print elapsed time")
	ext := fs.String("ext", def.Extension, "file extension to process")
	order := fs.String("order", def.Order, "result order by frequency: desc or asc")
	workers := fs.Int("workers", def.Workers, "files processed in parallel")
	cfgFile := fs.String("config", "", "YAML configuration file")
	verbose := fs.Bool("v", false, "debug logging")
	logFormat := fs.String("log-format", def.Log.Format, "log format: console or json")
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: freqcall [flags] [path]\n\n")
		fmt.Fprintf(stderr, "Estimates the frequency of each waveform file in path (default \".\").\n\n")
		fmt.Fprintf(stderr, "Flags:\n")
		fs.PrintDefaults()
		fmt.Fprintf(stderr, "\nExamples:\n")
		fmt.Fprintf(stderr, "  freqcall -t ./captures\n")
		fmt.Fprintf(stderr, "  freqcall -order asc -ext dat ./captures\n")
	}

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}
	if fs.NArg() > 1 {
		fmt.Fprintf(stderr, "error: at most one path expected, got %d\n", fs.NArg())
		fs.Usage()
		return 2
	}

	cfg := def
	if *cfgFile != "" {
		var err error
		if cfg, err = config.Load(*cfgFile); err != nil {
			fmt.Fprintf(stderr, "error: %v\n", err)
			return 1
		}
	}
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "t":
			cfg.Timing = *timing
		case "ext":
			cfg.Extension = *ext
		case "order":
			cfg.Order = *order
		case "workers":
			cfg.Workers = *workers
		case "v":
			if *verbose {
				cfg.Log.Level = "debug"
			}
		case "log-format":
			cfg.Log.Format = *logFormat
		}
	})
	cfg.Normalize()
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 2
	}

	log, err := logging.New(
		logging.WithLevel(cfg.Log.Level),
		logging.WithFormat(cfg.Log.Format),
		logging.WithOutput(stderr),
	)
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 2
	}
	defer func() { _ = log.Sync() }()

	dir := "."
	if fs.NArg() == 1 {
		dir = fs.Arg(0)
	}

	timer := report.NewTimer(cfg.Timing)
	timer.Start()

	runner := batch.New(
		batch.WithExtension(cfg.Extension),
		batch.WithWorkers(cfg.Workers),
		batch.WithLogger(log),
	)
	results, err := runner.Run(ctx, dir)
	switch {
	case errors.Is(err, batch.ErrDirNotFound):
		fmt.Fprintf(stderr, "directory '%s' does not exist\n", dir)
		return 1
	case errors.Is(err, batch.ErrNoFiles):
		fmt.Fprintf(stdout, "no *.%s files in directory '%s'\n", runner.Extension(), dir)
		return 0
	case err != nil:
		log.Error("batch failed", zap.String("dir", dir), zap.Error(err))
		return 1
	}

	batch.SortBy(results, batch.ByFrequency, cfg.Order == config.OrderDescending)
	if err := report.Print(stdout, results); err != nil {
		log.Error("cannot print results", zap.Error(err))
		return 1
	}
	if err := timer.Stop(stdout); err != nil {
		return 1
	}
	return 0
}
