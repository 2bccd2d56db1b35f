// Package time computes time-domain summaries of sampled signals.
package time

import "math"

// Stats holds a time-domain summary of a signal.
type Stats struct {
	Length        int
	Mean          float64
	RMS           float64
	Min           float64
	MinPos        int
	Max           float64
	MaxPos        int
	Range         float64 // max - min
	ZeroCrossings int     // sign changes around the mean
}

// Calculate summarizes signal in a single pass. Zero crossings are counted
// around the mean so that offset signals still report their oscillation.
func Calculate(signal []float64) Stats {
	n := len(signal)
	if n == 0 {
		return Stats{}
	}

	var (
		sum    float64
		comp   float64 // Kahan compensation
		sumSq  float64
		maxVal = signal[0]
		maxPos int
		minVal = signal[0]
		minPos int
	)
	for i, x := range signal {
		y := x - comp
		t := sum + y
		comp = (t - sum) - y
		sum = t

		sumSq += x * x

		if x > maxVal {
			maxVal = x
			maxPos = i
		}
		if x < minVal {
			minVal = x
			minPos = i
		}
	}

	nf := float64(n)
	mean := sum / nf

	return Stats{
		Length:        n,
		Mean:          mean,
		RMS:           math.Sqrt(sumSq / nf),
		Min:           minVal,
		MinPos:        minPos,
		Max:           maxVal,
		MaxPos:        maxPos,
		Range:         maxVal - minVal,
		ZeroCrossings: crossings(signal, mean),
	}
}

// RMS returns the root-mean-square of the signal.
func RMS(signal []float64) float64 {
	if len(signal) == 0 {
		return 0
	}

	var sumSq float64
	for _, x := range signal {
		sumSq += x * x
	}

	return math.Sqrt(sumSq / float64(len(signal)))
}

// ZeroCrossings returns the number of zero crossings in the signal.
// A crossing is counted when consecutive samples have opposite signs.
func ZeroCrossings(signal []float64) int {
	return crossings(signal, 0)
}

func crossings(signal []float64, level float64) int {
	var count int
	for i := 1; i < len(signal); i++ {
		if (signal[i-1]-level)*(signal[i]-level) < 0 {
			count++
		}
	}
	return count
}
