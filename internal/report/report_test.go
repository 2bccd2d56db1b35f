package report

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/cwbudde/algo-freqcall/internal/batch"
)

func TestPrint(t *testing.T) {
	results := []batch.Result{
		{File: "fast.csv", Frequency: 123456.7},
		{File: "triangle.csv", Frequency: 2499.9999999999995},
		{File: "slow.csv", Frequency: 0.1},
		{File: "broken.csv", Err: errors.New("bad line")},
	}

	var buf bytes.Buffer
	if err := Print(&buf, results); err != nil {
		t.Fatalf("Print() error = %v", err)
	}

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 5 {
		t.Fatalf("got %d lines, want 5:\n%s", len(lines), buf.String())
	}
	want := [][2]string{
		{"file", "freq, kHz"},
		{"fast.csv", "123.5"},
		{"triangle.csv", "2.5"},
		{"slow.csv", "0.0001"},
		{"broken.csv", "0"},
	}
	for i, w := range want {
		if !strings.HasPrefix(lines[i], w[0]) || !strings.HasSuffix(lines[i], w[1]) {
			t.Errorf("line %d = %q, want %q ... %q", i, lines[i], w[0], w[1])
		}
	}
}

func TestPrintEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := Print(&buf, nil); err != nil {
		t.Fatalf("Print() error = %v", err)
	}
	if buf.Len() != 0 {
		t.Fatalf("Print(nil) wrote %q", buf.String())
	}
}

func TestFormatKHz(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{2.5, "2.5"},
		{1.23456, "1.235"},
		{0.0001, "0.0001"},
		{1234.5, "1234"},
		{0, "0"},
	}
	for _, tt := range tests {
		if got := FormatKHz(tt.in); got != tt.want {
			t.Errorf("FormatKHz(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
