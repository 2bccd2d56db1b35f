package batch

import (
	"os"
	"path/filepath"
	"slices"
	"strings"
)

// DirExists reports whether path names an existing directory.
func DirExists(path string) bool {
	fi, err := os.Stat(path)
	return err == nil && fi.IsDir()
}

// MatchFiles returns the paths of regular files in dir whose extension equals
// ext, compared case-insensitively. ext may be given with or without the
// leading dot. Paths are sorted by file name.
func MatchFiles(dir, ext string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	want := "." + strings.TrimPrefix(ext, ".")
	var paths []string
	for _, e := range entries {
		if !e.Type().IsRegular() {
			continue
		}
		if strings.EqualFold(filepath.Ext(e.Name()), want) {
			paths = append(paths, filepath.Join(dir, e.Name()))
		}
	}
	slices.Sort(paths)
	return paths, nil
}
