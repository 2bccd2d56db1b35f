package testutil

import (
	"os"
	"testing"

	"github.com/cwbudde/algo-freqcall/dsp/series"
)

func TestWriteSeries(t *testing.T) {
	dir := t.TempDir()
	s := series.Series{{Time: 0, Value: 1}, {Time: 1, Value: 2}}
	path := WriteSeries(t, dir, "a.csv", s)

	got, err := series.Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(got) != 2 || got[1] != s[1] {
		t.Fatalf("Load() = %v, want %v", got, s)
	}
}

func TestWriteFile(t *testing.T) {
	path := WriteFile(t, t.TempDir(), "raw.csv", "time,value\n")
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "time,value\n" {
		t.Fatalf("content = %q", data)
	}
}

func TestRequireRelative(t *testing.T) {
	RequireRelative(t, "exact", 0.1, 0.1, 0)
	RequireRelative(t, "close", 0.1049, 0.1, 0.05)
}
