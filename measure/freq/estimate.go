package freq

import (
	"fmt"

	"github.com/cwbudde/algo-freqcall/dsp/core"
	"github.com/cwbudde/algo-freqcall/dsp/filter/sliding"
	"github.com/cwbudde/algo-freqcall/dsp/series"
)

const (
	// Median half-width: a fraction of the period for noisy signals,
	// fixed widths otherwise.
	noisyHalfWidthDivisor = 40
	superposedHalfWidth   = 7
	defaultHalfWidth      = 1

	// Average length: long for long or superposed series.
	longAverage      = 20
	shortAverage     = 4
	longSpliceSeries = 2000
)

// Result holds a frequency estimate and the data it was derived from.
type Result struct {
	// Frequency is in onsets per time unit, 0 when unknown.
	Frequency float64
	// Events is the number of registered onsets.
	Events     int
	FirstEvent float64
	LastEvent  float64

	Spliced     bool
	MedianSize  int
	AverageSize int

	Classification Classification
}

// Estimate classifies s and estimates its frequency.
func Estimate(s series.Series) (Result, error) {
	c, err := Classify(s)
	if err != nil {
		return Result{}, err
	}
	return EstimateWith(s, c)
}

// EstimateWith estimates the frequency of s using a classification obtained
// from Classify. When fewer than two onsets are found the returned result
// carries the counters, a zero Frequency and ErrTooFewEvents.
func EstimateWith(s series.Series, c Classification) (Result, error) {
	if len(s) < minSamples {
		return Result{}, fmt.Errorf("%w: got %d", ErrInsufficientData, len(s))
	}
	if !(c.Tolerance > 0) || (c.SignFactor != 1 && c.SignFactor != -1) {
		return Result{}, fmt.Errorf("invalid classification: %s", c)
	}

	res := Result{
		Spliced:        c.Splice(),
		Classification: c,
	}

	src, err := newSource(s, c, &res)
	if err != nil {
		return Result{}, err
	}

	var (
		prev    float64
		seeded  bool
		growing = true
	)
	for i, p := range s {
		v, ok := src.value(i)
		if !ok {
			continue
		}
		if !seeded {
			prev, seeded = v, true
			continue
		}

		if c.SignFactor*(prev-v) > c.Tolerance {
			// Only the first sample of a falling run counts.
			if growing {
				if res.Events == 0 {
					res.FirstEvent = p.Time
				} else {
					res.LastEvent = p.Time
				}
				res.Events++
				growing = false
			}
		} else {
			growing = true
		}
		prev = v
	}

	if res.Events < 2 {
		return res, fmt.Errorf("%w: got %d", ErrTooFewEvents, res.Events)
	}
	f := float64(res.Events-1) / (res.LastEvent - res.FirstEvent)
	if !core.IsFinite(f) || f <= 0 {
		return res, fmt.Errorf("%w: onsets span %g", ErrTooFewEvents, res.LastEvent-res.FirstEvent)
	}
	res.Frequency = f
	return res, nil
}

// filterSizes returns the median and average window lengths for a spliced series of n samples.
func filterSizes(c Classification, n int) (medianSize, averageSize int) {
	half := defaultHalfWidth
	switch {
	case c.Noisy:
		half = c.PeriodPoints / noisyHalfWidthDivisor
	case c.Superposed:
		half = superposedHalfWidth
	}

	averageSize = shortAverage
	if n > longSpliceSeries || c.Superposed {
		averageSize = longAverage
	}
	return sliding.MedianSize(half), averageSize
}

// source yields the effective value of each sample: the raw value, or the
// output of the median-then-average chain when splicing.
type source struct {
	values  []float64
	median  *sliding.Median
	average *sliding.Average
}

func newSource(s series.Series, c Classification, res *Result) (*source, error) {
	src := &source{values: s.Values()}
	if !res.Spliced {
		return src, nil
	}

	res.MedianSize, res.AverageSize = filterSizes(c, len(s))
	var err error
	if src.median, err = sliding.NewMedian(res.MedianSize, src.values); err != nil {
		return nil, err
	}
	if src.average, err = sliding.NewAverage(res.AverageSize); err != nil {
		return nil, err
	}
	return src, nil
}

func (src *source) value(i int) (float64, bool) {
	if src.median == nil {
		return src.values[i], true
	}
	m, ok := src.median.Push(i)
	if !ok {
		return 0, false
	}
	return src.average.Push(m)
}
