// Command wavegen writes synthetic waveform files for freqcall.
//
// Usage:
//
//	wavegen [flags] [shape ...]
//
// Without arguments it writes one file per known shape. Each file is named
// <shape>.csv and holds a "time,value" header followed by the samples.
//
// Examples:
//
//	wavegen -out ./captures
//	wavegen -period 4e-4 -n 5000 triangle square
//	wavegen -list
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/cwbudde/algo-freqcall/dsp/core"
	"github.com/cwbudde/algo-freqcall/dsp/series"
	"github.com/cwbudde/algo-freqcall/dsp/signal"
)

// params describes one waveform request.
type params struct {
	period    float64
	amplitude float64
	samples   int
}

type shapeEntry struct {
	name string
	desc string
	gen  func(g *signal.Generator, p params) (series.Series, error)
}

var registry = []shapeEntry{
	{"sine", "pure sine", func(g *signal.Generator, p params) (series.Series, error) {
		return g.Sine(p.period, p.amplitude, p.samples)
	}},
	{"triangle", "symmetric triangle", func(g *signal.Generator, p params) (series.Series, error) {
		return g.Triangle(p.period, p.amplitude, p.samples)
	}},
	{"square", "50% duty square wave", func(g *signal.Generator, p params) (series.Series, error) {
		return g.Square(p.period, p.amplitude, p.samples)
	}},
	{"sawtooth", "rising ramp with a falling jump", func(g *signal.Generator, p params) (series.Series, error) {
		return g.Sawtooth(p.period, p.amplitude, p.samples)
	}},
	{"am", "sine with a slow 50% amplitude modulation", func(g *signal.Generator, p params) (series.Series, error) {
		return g.AM(p.period, 20*p.period, 0.5, p.amplitude, p.samples)
	}},
	{"noisy", "sine with sample-rate dither and uniform noise", func(g *signal.Generator, p params) (series.Series, error) {
		s, err := g.Sine(p.period, p.amplitude, p.samples)
		if err != nil {
			return nil, err
		}
		return g.AddNoise(signal.AddDither(s, 0.1*p.amplitude), 0.01*p.amplitude)
	}},
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("wavegen", flag.ContinueOnError)
	fs.SetOutput(stderr)

	out := fs.String("out", ".", "output directory")
	samples := fs.Int("n", 2000, "samples per file")
	step := fs.Float64("step", 1e-5, "sample interval in seconds")
	period := fs.Float64("period", 1e-3, "waveform period in seconds")
	amplitude := fs.Float64("amp", 1, "peak amplitude")
	seed := fs.Int64("seed", 1, "noise seed")
	list := fs.Bool("list", false, "list available shapes")
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: wavegen [flags] [shape ...]\n\n")
		fmt.Fprintf(stderr, "Writes <shape>.csv waveform files. Without arguments writes all shapes.\n\n")
		fmt.Fprintf(stderr, "Flags:\n")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	if *list {
		printList(stdout)
		return 0
	}

	entries, err := resolveEntries(fs.Args())
	if err != nil {
		fmt.Fprintf(stderr, "error: %v (use -list to see available)\n", err)
		return 2
	}
	if *step <= 0 {
		fmt.Fprintf(stderr, "error: step must be > 0: %g\n", *step)
		return 2
	}
	if err := os.MkdirAll(*out, 0o755); err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}

	g := signal.NewGeneratorWithOptions([]core.SamplingOption{core.WithStep(*step)}, signal.WithSeed(*seed))
	p := params{period: *period, amplitude: *amplitude, samples: *samples}
	for _, e := range entries {
		s, err := e.gen(g, p)
		if err != nil {
			fmt.Fprintf(stderr, "error: %s: %v\n", e.name, err)
			return 1
		}
		path := filepath.Join(*out, e.name+".csv")
		if err := series.Save(path, s); err != nil {
			fmt.Fprintf(stderr, "error: %v\n", err)
			return 1
		}
		fmt.Fprintln(stdout, path)
	}
	return 0
}

func printList(w io.Writer) {
	entries := make([]shapeEntry, len(registry))
	copy(entries, registry)
	sort.Slice(entries, func(i, j int) bool { return entries[i].name < entries[j].name })
	for _, e := range entries {
		fmt.Fprintf(w, "%-10s %s\n", e.name, e.desc)
	}
}

func resolveEntries(names []string) ([]shapeEntry, error) {
	if len(names) == 0 {
		return registry, nil
	}
	byName := make(map[string]shapeEntry, len(registry))
	for _, e := range registry {
		byName[e.name] = e
	}

	result := make([]shapeEntry, 0, len(names))
	for _, name := range names {
		e, ok := byName[strings.ToLower(strings.TrimSpace(name))]
		if !ok {
			return nil, fmt.Errorf("unknown shape %q", name)
		}
		result = append(result, e)
	}
	return result, nil
}
