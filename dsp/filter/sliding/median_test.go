package sliding

import (
	"slices"
	"testing"
)

func TestMedianSize(t *testing.T) {
	tests := []struct{ half, want int }{{0, 1}, {1, 3}, {7, 15}, {23, 47}}
	for _, tt := range tests {
		if got := MedianSize(tt.half); got != tt.want {
			t.Errorf("MedianSize(%d) = %d, want %d", tt.half, got, tt.want)
		}
	}
}

func TestNewMedianRejectsInvalidSize(t *testing.T) {
	if _, err := NewMedian(0, []float64{1}); err == nil {
		t.Fatal("expected error for size 0")
	}
}

func TestMedianOddWindow(t *testing.T) {
	values := []float64{5, 1, 4, 2, 3, 9, 0}
	m, err := NewMedian(3, values)
	if err != nil {
		t.Fatal(err)
	}

	want := []float64{4, 2, 3, 3, 3}
	for pos, w := range want {
		got, ok := m.Push(pos)
		if !ok {
			t.Fatalf("Push(%d): expected output", pos)
		}
		if got != w {
			t.Errorf("Push(%d) = %v, want %v", pos, got, w)
		}
	}
}

// The even-window convention picks the upper middle element instead of
// averaging the two middle elements. This pins that behavior.
func TestMedianEvenWindowUpperMiddle(t *testing.T) {
	m, _ := NewMedian(4, []float64{4, 1, 3, 2})
	got, ok := m.Push(0)
	if !ok {
		t.Fatal("expected output")
	}
	if got != 3 {
		t.Fatalf("Push(0) = %v, want 3 (upper middle of 1 2 3 4)", got)
	}
}

func TestMedianInsufficientTrailingData(t *testing.T) {
	values := []float64{1, 2, 3, 4, 5}
	m, _ := NewMedian(3, values)

	if _, ok := m.Push(2); !ok {
		t.Fatal("Push(2): window [2:5] is complete")
	}
	for _, pos := range []int{3, 4, 5, 100, -1} {
		if got, ok := m.Push(pos); ok {
			t.Errorf("Push(%d) = %v, want no output", pos, got)
		}
	}
}

func TestMedianDoesNotModifyInput(t *testing.T) {
	values := []float64{9, 8, 7, 6, 5}
	orig := slices.Clone(values)
	m, _ := NewMedian(5, values)
	if got, _ := m.Push(0); got != 7 {
		t.Fatalf("Push(0) = %v, want 7", got)
	}
	if !slices.Equal(values, orig) {
		t.Fatalf("input modified: %v", values)
	}
}

func TestMedianMatchesSortedSlice(t *testing.T) {
	values := []float64{0.3, -1.2, 2.5, 0.7, 0.7, -0.4, 1.9, 3.3, -2.8, 0.1}
	for _, size := range []int{1, 2, 3, 5, 6, 10} {
		m, _ := NewMedian(size, values)
		for pos := 0; pos+size <= len(values); pos++ {
			window := slices.Clone(values[pos : pos+size])
			slices.Sort(window)
			got, ok := m.Push(pos)
			if !ok || got != window[size/2] {
				t.Fatalf("size %d pos %d: got (%v, %v), want %v", size, pos, got, ok, window[size/2])
			}
		}
	}
}
