package batch

import (
	"strings"
	"testing"
)

func names(results []Result) string {
	s := make([]string, len(results))
	for i, r := range results {
		s[i] = r.File
	}
	return strings.Join(s, " ")
}

func TestSortByFrequency(t *testing.T) {
	results := []Result{
		{File: "b", Frequency: 2},
		{File: "a", Frequency: 0},
		{File: "d", Frequency: 10},
		{File: "c", Frequency: 2},
	}

	SortBy(results, ByFrequency, true)
	if got := names(results); got != "d b c a" {
		t.Fatalf("descending = %q, want %q", got, "d b c a")
	}

	SortBy(results, ByFrequency, false)
	if got := names(results); got != "a b c d" {
		t.Fatalf("ascending = %q, want %q", got, "a b c d")
	}
}

func TestSortByCustomKey(t *testing.T) {
	results := []Result{{File: "x", Frequency: 1}, {File: "y", Frequency: 5}}
	SortBy(results, func(r Result) float64 { return -r.Frequency }, false)
	if got := names(results); got != "y x" {
		t.Fatalf("got %q, want %q", got, "y x")
	}
}
