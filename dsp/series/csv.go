package series

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Header is the header line written by Write.
const Header = "time,value"

var errShortLine = errors.New("expected time and value fields")

// Load reads a CSV series file.
func Load(path string) (Series, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	s, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Read parses a CSV series. The first line is treated as a header and skipped.
func Read(r io.Reader) (Series, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	cr.ReuseRecord = true

	if _, err := cr.Read(); err != nil {
		if errors.Is(err, io.EOF) {
			return Series{}, nil
		}
		return nil, fmt.Errorf("read header: %w", err)
	}

	s := make(Series, 0, 64)
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			return s, nil
		}
		if err != nil {
			return nil, err
		}

		line, _ := cr.FieldPos(0)
		p, err := parseRecord(rec)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		s = append(s, p)
	}
}

func parseRecord(rec []string) (Sample, error) {
	if len(rec) < 2 {
		return Sample{}, errShortLine
	}
	tm, err := parseField(rec[0])
	if err != nil {
		return Sample{}, fmt.Errorf("time: %w", err)
	}
	vl, err := parseField(rec[1])
	if err != nil {
		return Sample{}, fmt.Errorf("value: %w", err)
	}
	return Sample{Time: tm, Value: vl}, nil
}

func parseField(field string) (float64, error) {
	field = strings.TrimSpace(field)
	if field == "" {
		return 0, errors.New("empty field")
	}
	return strconv.ParseFloat(field, 64)
}

// Write encodes s as CSV with a Header line.
func Write(w io.Writer, s Series) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(strings.Split(Header, ",")); err != nil {
		return err
	}

	rec := make([]string, 2)
	for _, p := range s {
		rec[0] = strconv.FormatFloat(p.Time, 'g', -1, 64)
		rec[1] = strconv.FormatFloat(p.Value, 'g', -1, 64)
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// Save writes s to path, creating or truncating the file.
func Save(path string, s Series) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := Write(f, s); err != nil {
		f.Close()
		return fmt.Errorf("%s: %w", path, err)
	}
	return f.Close()
}
