package totp

import (
	"errors"
	"fmt"
	"time"
)

// EpochTime is a count of seconds since 1970-01-01T00:00:00Z.
type EpochTime = uint64

// EpochSeconds converts t to EpochTime. Times before the Unix epoch cannot be
// represented and are rejected with ErrClockBeforeEpoch.
func EpochSeconds(t time.Time) (EpochTime, error) {
	sec := t.Unix()
	if sec < 0 {
		return 0, errors.Join(ErrClockBeforeEpoch, fmt.Errorf("got %s", t.UTC().Format(time.RFC3339)))
	}
	return EpochTime(sec), nil
}

// Step returns floor((now - start) / stepSize), the index of the window
// containing now.
func Step(now, start EpochTime, stepSize uint64) (TimeStep, error) {
	elapsed, err := elapsedSince(now, start, stepSize)
	if err != nil {
		return 0, err
	}
	return elapsed / stepSize, nil
}

// Remainder returns the seconds left until the next window starts, in
// [1, stepSize]. At the first second of a window it reports the full stepSize.
func Remainder(now, start EpochTime, stepSize uint64) (uint64, error) {
	elapsed, err := elapsedSince(now, start, stepSize)
	if err != nil {
		return 0, err
	}
	return stepSize - elapsed%stepSize, nil
}

func elapsedSince(now, start EpochTime, stepSize uint64) (uint64, error) {
	if stepSize == 0 {
		return 0, ErrInvalidStepSize
	}
	if now < start {
		return 0, errors.Join(ErrClockBeforeStart, fmt.Errorf("now %d, start %d", now, start))
	}
	return now - start, nil
}
