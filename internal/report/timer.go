package report

import (
	"fmt"
	"io"
	"time"
)

// Timer measures one wall-clock interval. A disabled timer does nothing.
type Timer struct {
	enabled bool
	begin   time.Time
	now     func() time.Time
}

// NewTimer returns a timer that is active only if enabled.
func NewTimer(enabled bool) *Timer {
	return &Timer{enabled: enabled, now: time.Now}
}

// Start begins the interval.
func (t *Timer) Start() {
	if t.enabled {
		t.begin = t.now()
	}
}

// Stop prints the time elapsed since Start as mm:ss.
func (t *Timer) Stop(w io.Writer) error {
	if !t.enabled {
		return nil
	}
	_, err := fmt.Fprintf(w, "%s mm:ss\n", FormatElapsed(t.now().Sub(t.begin)))
	return err
}

// FormatElapsed formats d as minutes and seconds, truncating fractions.
func FormatElapsed(d time.Duration) string {
	secs := int64(d / time.Second)
	return fmt.Sprintf("%02d:%02d", secs/60, secs%60)
}
