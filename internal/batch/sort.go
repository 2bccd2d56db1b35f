package batch

import (
	"cmp"
	"slices"
)

// Key extracts the value results are ordered by.
type Key func(Result) float64

// ByFrequency orders results by estimated frequency.
func ByFrequency(r Result) float64 {
	return r.Frequency
}

// SortBy orders results by key, ascending unless descending is set.
// Equal keys keep file name order.
func SortBy(results []Result, key Key, descending bool) {
	slices.SortStableFunc(results, func(a, b Result) int {
		c := cmp.Compare(key(a), key(b))
		if descending {
			c = -c
		}
		if c == 0 {
			c = cmp.Compare(a.File, b.File)
		}
		return c
	})
}
