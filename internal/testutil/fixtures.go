// Package testutil provides helpers shared by tests.
package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/cwbudde/algo-freqcall/dsp/series"
)

// WriteSeries saves s as a CSV file named name in dir and returns its path.
func WriteSeries(t testing.TB, dir, name string, s series.Series) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := series.Save(path, s); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

// WriteFile writes raw content to a file named name in dir and returns its path.
func WriteFile(t testing.TB, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

// Must unwraps a (series, error) pair, failing t on error.
func Must(t testing.TB) func(series.Series, error) series.Series {
	return func(s series.Series, err error) series.Series {
		t.Helper()
		if err != nil {
			t.Fatalf("generate: %v", err)
		}
		return s
	}
}
