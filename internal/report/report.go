// Package report prints batch results and elapsed time.
package report

import (
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	vecmath "github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-freqcall/internal/batch"
)

const hzPerKHz = 1000

// Print writes one row per result with the frequency in kHz to 4 significant
// digits. Results are printed in the given order; nothing is printed for an
// empty slice.
func Print(w io.Writer, results []batch.Result) error {
	if len(results) == 0 {
		return nil
	}

	hz := make([]float64, len(results))
	for i, r := range results {
		hz[i] = r.Frequency
	}
	khz := make([]float64, len(results))
	vecmath.ScaleBlock(khz, hz, 1.0/hzPerKHz)

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintf(tw, "file\tfreq, kHz\n"); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for i, r := range results {
		if _, err := fmt.Fprintf(tw, "%s\t%s\n", r.File, FormatKHz(khz[i])); err != nil {
			return fmt.Errorf("write row: %w", err)
		}
	}
	return tw.Flush()
}

// FormatKHz formats a value with 4 significant digits.
func FormatKHz(v float64) string {
	return strconv.FormatFloat(v, 'g', 4, 64)
}
