package sliding

import (
	"fmt"
	"slices"

	"github.com/cwbudde/algo-freqcall/dsp/core"
)

// Median computes the median of a fixed-size window that starts at a given
// position of an external value sequence. The end of that sequence bounds
// every window.
type Median struct {
	size    int
	values  []float64
	scratch []float64
}

// MedianSize returns the window length for a median of the given half-width.
func MedianSize(halfWidth int) int {
	return 2*halfWidth + 1
}

// NewMedian returns a median filter of the given window length over values.
// The filter reads values but never modifies them.
func NewMedian(size int, values []float64) (*Median, error) {
	if size < 1 {
		return nil, fmt.Errorf("sliding median size must be >= 1: %d", size)
	}
	return &Median{
		size:    size,
		values:  values,
		scratch: make([]float64, 0, size),
	}, nil
}

// Size returns the window length.
func (m *Median) Size() int {
	return m.size
}

// Push returns the median of values[pos:pos+Size]. For even sizes this is the
// upper of the two middle elements, not their mean. The boolean is false when
// fewer than Size values remain from pos to the end of the sequence.
func (m *Median) Push(pos int) (float64, bool) {
	if pos < 0 || pos+m.size > len(m.values) {
		return 0, false
	}

	m.scratch = core.EnsureLen(m.scratch, m.size)
	copy(m.scratch, m.values[pos:pos+m.size])
	slices.Sort(m.scratch)
	return m.scratch[m.size/2], true
}
