package freq

import "errors"

var (
	// ErrInsufficientData indicates a series too short to classify.
	ErrInsufficientData = errors.New("series needs at least 3 samples")

	// ErrFlatSignal indicates a scanned prefix with no amplitude range.
	ErrFlatSignal = errors.New("signal has no amplitude range")

	// ErrNonIncreasingTime indicates that the first two samples do not advance in time.
	ErrNonIncreasingTime = errors.New("sample time does not increase")

	// ErrTooFewEvents indicates fewer than two countable onsets.
	ErrTooFewEvents = errors.New("fewer than 2 onsets detected")
)
