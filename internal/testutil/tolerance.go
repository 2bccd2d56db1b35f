package testutil

import (
	"testing"

	"github.com/cwbudde/algo-freqcall/dsp/core"
)

// RequireRelative fails t unless got is finite and within tol of want,
// relative to the larger magnitude.
func RequireRelative(t testing.TB, name string, got, want, tol float64) {
	t.Helper()
	if !core.IsFinite(got) {
		t.Fatalf("%s: non-finite value %v", name, got)
	}
	if !core.NearlyEqual(got, want, tol) {
		t.Fatalf("%s: got %v, want %v within %v", name, got, want, tol)
	}
}
