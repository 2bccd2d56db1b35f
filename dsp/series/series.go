package series

// Sample is one time/value pair.
type Sample struct {
	Time  float64
	Value float64
}

// Series is an ordered sequence of samples. Times are expected to increase
// monotonically; this is not validated.
type Series []Sample

// New pairs times and values into a Series. Extra elements of the longer
// slice are ignored.
func New(times, values []float64) Series {
	n := min(len(times), len(values))
	s := make(Series, n)
	for i := range s {
		s[i] = Sample{Time: times[i], Value: values[i]}
	}
	return s
}

// Len returns the number of samples.
func (s Series) Len() int {
	return len(s)
}

// Values returns a copy of the sample values.
func (s Series) Values() []float64 {
	out := make([]float64, len(s))
	for i, p := range s {
		out[i] = p.Value
	}
	return out
}

// Times returns a copy of the sample times.
func (s Series) Times() []float64 {
	out := make([]float64, len(s))
	for i, p := range s {
		out[i] = p.Time
	}
	return out
}

// Step returns the time difference between the first two samples,
// or 0 if the series has fewer than two samples.
func (s Series) Step() float64 {
	if len(s) < 2 {
		return 0
	}
	return s[1].Time - s[0].Time
}

// Duration returns the time spanned by the series.
func (s Series) Duration() float64 {
	if len(s) < 2 {
		return 0
	}
	return s[len(s)-1].Time - s[0].Time
}
