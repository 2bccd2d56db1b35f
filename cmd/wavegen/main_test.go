package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cwbudde/algo-freqcall/dsp/series"
)

func TestRunWritesAllShapes(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "waves")
	var stdout, stderr bytes.Buffer
	if code := run([]string{"-out", dir, "-n", "500"}, &stdout, &stderr); code != 0 {
		t.Fatalf("exit code = %d, stderr:\n%s", code, stderr.String())
	}

	lines := strings.Split(strings.TrimRight(stdout.String(), "\n"), "\n")
	if len(lines) != len(registry) {
		t.Fatalf("wrote %d files, want %d", len(lines), len(registry))
	}
	for _, e := range registry {
		s, err := series.Load(filepath.Join(dir, e.name+".csv"))
		if err != nil {
			t.Fatalf("%s: %v", e.name, err)
		}
		if s.Len() != 500 {
			t.Fatalf("%s: %d samples, want 500", e.name, s.Len())
		}
		if s[0].Time != 0 || s.Step() <= 0 {
			t.Fatalf("%s: unexpected time axis %v, %v", e.name, s[0].Time, s.Step())
		}
	}
}

func TestRunSelectedShapes(t *testing.T) {
	dir := t.TempDir()
	var stdout, stderr bytes.Buffer
	code := run([]string{"-out", dir, "-n", "100", "-amp", "3", "Square"}, &stdout, &stderr)
	if code != 0 {
		t.Fatalf("exit code = %d, stderr:\n%s", code, stderr.String())
	}
	s, err := series.Load(filepath.Join(dir, "square.csv"))
	if err != nil {
		t.Fatal(err)
	}
	if s[0].Value != 3 {
		t.Fatalf("first value = %v, want 3", s[0].Value)
	}
}

func TestRunUnknownShape(t *testing.T) {
	var stdout, stderr bytes.Buffer
	if code := run([]string{"-out", t.TempDir(), "hexagon"}, &stdout, &stderr); code != 2 {
		t.Fatalf("exit code = %d, want 2", code)
	}
	if !strings.Contains(stderr.String(), `unknown shape "hexagon"`) {
		t.Fatalf("stderr = %q", stderr.String())
	}
}

func TestRunList(t *testing.T) {
	var stdout, stderr bytes.Buffer
	if code := run([]string{"-list"}, &stdout, &stderr); code != 0 {
		t.Fatalf("exit code = %d", code)
	}
	first := strings.Fields(strings.SplitN(stdout.String(), "\n", 2)[0])[0]
	if first != "am" {
		t.Fatalf("first listed shape = %q, want am", first)
	}
}

func TestRunBadParameters(t *testing.T) {
	tests := [][]string{
		{"-step", "0"},
		{"-n", "0"},
		{"-period", "-1"},
	}
	for _, args := range tests {
		var stdout, stderr bytes.Buffer
		args = append([]string{"-out", t.TempDir()}, args...)
		if code := run(args, &stdout, &stderr); code == 0 {
			t.Errorf("%v: exit code 0, want failure", args)
		}
	}
}
