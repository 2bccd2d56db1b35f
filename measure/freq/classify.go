package freq

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-freqcall/dsp/core"
	"github.com/cwbudde/algo-freqcall/dsp/series"
)

const (
	minSamples = 3

	// noiseDiffs is the number of leading first differences inspected for noise.
	noiseDiffs = 10
	// noiseFlips is the number of sign flips among them tolerated for a clean signal.
	noiseFlips = 2

	// longSeries selects the shorter scan fraction.
	longSeries      = 1000
	longScanDivisor = 4
	scanDivisor     = 2

	// rangeParts divides the amplitude range into the jump threshold and the tolerance.
	rangeParts = 3

	// maxEpsilon decides when a value has returned to the scanned maximum.
	maxEpsilon = 1e-4
)

// Classification describes the shape of a signal as seen in its leading part.
type Classification struct {
	Noisy      bool
	Jumped     bool
	Superposed bool

	// SignFactor is +1 when fall onsets are counted and -1 when rise onsets are.
	SignFactor float64
	// Tolerance is the minimum per-sample change counted as a direction change.
	Tolerance float64
	// PeriodPoints approximates the number of samples per period.
	PeriodPoints int

	Min     float64
	Max     float64
	ScanLen int
}

// Splice reports whether the series should be smoothed before counting onsets.
func (c Classification) Splice() bool {
	return c.Superposed || (c.Noisy && !c.Jumped)
}

// String implements fmt.Stringer.
func (c Classification) String() string {
	return fmt.Sprintf("noisy=%t jumped=%t superposed=%t sign=%+.0f tolerance=%g points=%d",
		c.Noisy, c.Jumped, c.Superposed, c.SignFactor, c.Tolerance, c.PeriodPoints)
}

// Classify inspects s and returns its classification. It only reads s.
func Classify(s series.Series) (Classification, error) {
	n := len(s)
	if n < minSamples {
		return Classification{}, fmt.Errorf("%w: got %d", ErrInsufficientData, n)
	}
	step := s[1].Time - s[0].Time
	if !(step > 0) {
		return Classification{}, fmt.Errorf("%w: step %g", ErrNonIncreasingTime, step)
	}

	c := Classification{
		SignFactor: 1,
		Noisy:      isNoisy(s),
		ScanLen:    scanLen(n),
	}
	scan := s[:c.ScanLen]

	var minTime float64
	c.Max, c.Min, minTime = extremes(scan)

	amplitude := c.Max - c.Min
	if !(amplitude > 0) {
		return Classification{}, ErrFlatSignal
	}

	c.Jumped, c.SignFactor = detectJump(scan, amplitude/rangeParts)

	c.PeriodPoints = int(minTime / step)
	if c.PeriodPoints < 1 {
		c.PeriodPoints = 1
	}

	if !c.Jumped && !c.Noisy {
		c.Superposed = isSuperposed(scan, c.Max)
	}

	c.Tolerance = amplitude / rangeParts
	if !c.Jumped {
		c.Tolerance /= float64(c.PeriodPoints)
	}
	return c, nil
}

// isNoisy counts how often consecutive first differences change sign within
// the first noiseDiffs differences.
func isNoisy(s series.Series) bool {
	last := min(noiseDiffs, len(s)-1)
	flips := 0
	prev := s[0].Value - s[1].Value
	for i := 2; i <= last; i++ {
		diff := s[i-1].Value - s[i].Value
		if diff*prev < 0 {
			flips++
		}
		prev = diff
	}
	return flips > noiseFlips
}

func scanLen(n int) int {
	div := scanDivisor
	if n > longSeries {
		div = longScanDivisor
	}
	return max(n/div, minSamples)
}

// extremes tracks the running maximum until the signal first falls below it,
// then keeps the running minimum as well. minTime is the time the minimum was
// last reached or, once a minimum exists, the time the maximum was last
// reached again. Without any minimum the first value stands in for it.
func extremes(scan series.Series) (maxVal, minVal, minTime float64) {
	haveMax, haveMin := false, false
	countMax := true
	for _, p := range scan {
		switch {
		case !haveMax || p.Value >= maxVal:
			if !countMax {
				minTime = p.Time
			}
			maxVal = p.Value
			haveMax = true
		case !haveMin || p.Value <= minVal:
			minVal = p.Value
			minTime = p.Time
			haveMin = true
			countMax = false
		}
	}
	if !haveMin {
		minVal = scan[0].Value
	}
	return maxVal, minVal, minTime
}

// detectJump looks for a step between consecutive samples, from the second
// sample on, larger than critical. A rise selects rise-onset counting.
func detectJump(scan series.Series, critical float64) (bool, float64) {
	prev := scan[1].Value
	for _, p := range scan[2:] {
		diff := prev - p.Value
		if math.Abs(diff) > critical {
			if diff < 0 {
				return true, -1
			}
			return true, 1
		}
		prev = p.Value
	}
	return false, 1
}

// isSuperposed reports whether the signal drops before it first reaches the
// scanned maximum.
func isSuperposed(scan series.Series, maxVal float64) bool {
	prev := scan[0].Value
	for _, p := range scan[1:] {
		if p.Value < maxVal && prev-p.Value > 0 {
			return true
		}
		if core.AbsEqual(p.Value, maxVal, maxEpsilon) {
			return false
		}
		prev = p.Value
	}
	return false
}
