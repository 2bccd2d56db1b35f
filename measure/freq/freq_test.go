package freq

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-freqcall/dsp/series"
	"github.com/cwbudde/algo-freqcall/dsp/signal"
	"github.com/cwbudde/algo-freqcall/internal/testutil"
)

var must = testutil.Must

func relErr(got, want float64) float64 {
	return math.Abs(got-want) / math.Abs(want)
}

// triangle99 is 99 samples of a unit triangle with period 10 on a unit time step.
func triangle99(t testing.TB) series.Series {
	return must(t)(signal.NewGenerator().Triangle(10, 1, 99))
}
