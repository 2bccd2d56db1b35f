package signal

import (
	"fmt"
	"math"
	"math/rand"

	vecmath "github.com/cwbudde/algo-vecmath"
	"gonum.org/v1/gonum/floats"

	"github.com/cwbudde/algo-freqcall/dsp/core"
	"github.com/cwbudde/algo-freqcall/dsp/series"
)

// Generator creates deterministic waveforms on a uniform time axis.
type Generator struct {
	cfg  core.SamplingConfig
	seed int64
}

// Option configures a Generator.
type Option func(*Generator)

// WithSeed sets deterministic random seed for noise generation.
func WithSeed(seed int64) Option {
	return func(g *Generator) {
		g.seed = seed
	}
}

// NewGenerator creates a generator for the given time axis.
func NewGenerator(opts ...core.SamplingOption) *Generator {
	return &Generator{
		cfg:  core.ApplySamplingOptions(opts...),
		seed: 1,
	}
}

// NewGeneratorWithOptions creates a generator with signal-specific options.
func NewGeneratorWithOptions(coreOpts []core.SamplingOption, opts ...Option) *Generator {
	g := NewGenerator(coreOpts...)
	for _, opt := range opts {
		if opt != nil {
			opt(g)
		}
	}
	return g
}

// Config returns the sampling configuration.
func (g *Generator) Config() core.SamplingConfig {
	return g.cfg
}

// Seed returns the noise seed.
func (g *Generator) Seed() int64 {
	return g.seed
}

// SetSeed changes the noise seed.
func (g *Generator) SetSeed(seed int64) {
	g.seed = seed
}

// Times returns the sample times of a series with the given length.
func (g *Generator) Times(samples int) ([]float64, error) {
	if samples <= 0 {
		return nil, fmt.Errorf("samples must be > 0: %d", samples)
	}
	if samples == 1 {
		return []float64{g.cfg.Start}, nil
	}
	end := g.cfg.Start + g.cfg.Step*float64(samples-1)
	return floats.Span(make([]float64, samples), g.cfg.Start, end), nil
}

// Sine generates amplitude*sin(2*pi*t/period).
func (g *Generator) Sine(period, amplitude float64, samples int) (series.Series, error) {
	return g.periodic("sine", period, amplitude, samples, func(t float64) float64 {
		return math.Sin(2 * math.Pi * t / period)
	})
}

// Triangle generates a triangle wave that starts at its minimum.
func (g *Generator) Triangle(period, amplitude float64, samples int) (series.Series, error) {
	return g.periodic("triangle", period, amplitude, samples, func(t float64) float64 {
		p := phase(t, period)
		if p < 0.5 {
			return 4*p - 1
		}
		return 3 - 4*p
	})
}

// Square generates a square wave that is high for the first half period.
func (g *Generator) Square(period, amplitude float64, samples int) (series.Series, error) {
	return g.periodic("square", period, amplitude, samples, func(t float64) float64 {
		if phase(t, period) < 0.5 {
			return 1
		}
		return -1
	})
}

// Sawtooth generates a rising ramp from -amplitude that drops back once per
// period. A negative amplitude yields a falling ramp with abrupt rises.
func (g *Generator) Sawtooth(period, amplitude float64, samples int) (series.Series, error) {
	return g.periodic("sawtooth", period, amplitude, samples, func(t float64) float64 {
		return 2*phase(t, period) - 1
	})
}

// AM generates a sine carrier whose amplitude is modulated by a slower sine:
// (1 + depth*sin(2*pi*t/modPeriod)) * sin(2*pi*t/period).
func (g *Generator) AM(period, modPeriod, depth, amplitude float64, samples int) (series.Series, error) {
	if modPeriod <= 0 {
		return nil, fmt.Errorf("am modulation period must be > 0: %f", modPeriod)
	}
	if depth < 0 || depth > 1 {
		return nil, fmt.Errorf("am depth must be in [0,1]: %f", depth)
	}
	return g.periodic("am", period, amplitude, samples, func(t float64) float64 {
		return (1 + depth*math.Sin(2*math.Pi*t/modPeriod)) * math.Sin(2*math.Pi*t/period)
	})
}

// AddNoise returns a copy of s with deterministic uniform noise in [-amplitude, amplitude] added.
func (g *Generator) AddNoise(s series.Series, amplitude float64) (series.Series, error) {
	if amplitude < 0 {
		return nil, fmt.Errorf("noise amplitude must be >= 0: %f", amplitude)
	}
	out := make(series.Series, len(s))
	rng := rand.New(rand.NewSource(g.seed))
	for i, p := range s {
		out[i] = series.Sample{Time: p.Time, Value: p.Value + (rng.Float64()*2-1)*amplitude}
	}
	return out, nil
}

// AddDither returns a copy of s with +amplitude added to even and
// -amplitude added to odd samples.
func AddDither(s series.Series, amplitude float64) series.Series {
	out := make(series.Series, len(s))
	for i, p := range s {
		d := amplitude
		if i%2 == 1 {
			d = -amplitude
		}
		out[i] = series.Sample{Time: p.Time, Value: p.Value + d}
	}
	return out
}

func (g *Generator) periodic(name string, period, amplitude float64, samples int, wave func(t float64) float64) (series.Series, error) {
	if period <= 0 {
		return nil, fmt.Errorf("%s period must be > 0: %f", name, period)
	}
	times, err := g.Times(samples)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}

	unit := make([]float64, samples)
	for i, t := range times {
		unit[i] = wave(t)
	}
	values := make([]float64, samples)
	vecmath.ScaleBlock(values, unit, amplitude)

	return series.New(times, values), nil
}

// phase returns the position of t within its period in [0, 1).
func phase(t, period float64) float64 {
	p := math.Mod(t, period)
	if p < 0 {
		p += period
	}
	return p / period
}
