package batch

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/cwbudde/algo-freqcall/internal/testutil"
)

func TestDirExists(t *testing.T) {
	dir := t.TempDir()
	file := testutil.WriteFile(t, dir, "a.csv", "")

	if !DirExists(dir) {
		t.Fatal("DirExists(dir) = false")
	}
	if DirExists(file) {
		t.Fatal("DirExists(file) = true")
	}
	if DirExists(filepath.Join(dir, "missing")) {
		t.Fatal("DirExists(missing) = true")
	}
}

func TestMatchFiles(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"b.csv", "a.CSV", "notes.txt", "csv", "c.csv.bak"} {
		testutil.WriteFile(t, dir, name, "")
	}
	if err := os.Mkdir(filepath.Join(dir, "sub.csv"), 0o700); err != nil {
		t.Fatal(err)
	}

	for _, ext := range []string{"csv", ".csv"} {
		got, err := MatchFiles(dir, ext)
		if err != nil {
			t.Fatalf("MatchFiles() error = %v", err)
		}
		want := []string{filepath.Join(dir, "a.CSV"), filepath.Join(dir, "b.csv")}
		if len(got) != len(want) {
			t.Fatalf("MatchFiles(%q) = %v, want %v", ext, got, want)
		}
		for i := range want {
			if got[i] != want[i] {
				t.Fatalf("MatchFiles(%q)[%d] = %q, want %q", ext, i, got[i], want[i])
			}
		}
	}

	if _, err := MatchFiles(filepath.Join(dir, "missing"), "csv"); err == nil {
		t.Fatal("expected error for missing directory")
	}
}
