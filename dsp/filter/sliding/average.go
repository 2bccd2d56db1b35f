package sliding

import "fmt"

// Average is a simple moving average over the last Size pushed values.
type Average struct {
	ring  []float64
	pos   int
	count int
	sum   float64
}

// NewAverage returns a moving average with the given window length.
func NewAverage(size int) (*Average, error) {
	if size < 1 {
		return nil, fmt.Errorf("sliding average size must be >= 1: %d", size)
	}
	return &Average{ring: make([]float64, size)}, nil
}

// Size returns the window length.
func (a *Average) Size() int {
	return len(a.ring)
}

// Push adds x and returns the mean of the last Size values.
// The boolean is false until Size values have been pushed.
func (a *Average) Push(x float64) (float64, bool) {
	size := len(a.ring)
	a.sum += x
	if a.count == size {
		// ring[pos] holds the oldest value once the window is full.
		a.sum -= a.ring[a.pos]
	} else {
		a.count++
	}
	a.ring[a.pos] = x
	a.pos++
	if a.pos >= size {
		a.pos = 0
	}

	if a.count < size {
		return 0, false
	}
	return a.sum / float64(size), true
}

// Reset clears the window.
func (a *Average) Reset() {
	for i := range a.ring {
		a.ring[i] = 0
	}
	a.pos = 0
	a.count = 0
	a.sum = 0
}
