package shift

import "errors"

// Shift domain errors
var (
	// Timeclock errors
	ErrAlreadyClockedIn = errors.New("you are already clocked in")
	ErrNotClockedIn     = errors.New("you are not clocked in")

	// Data integrity errors
	ErrClockOutBeforeClockIn = errors.New("clock out time is before clock in time")
	ErrShiftNotFound         = errors.New("shift record not found")
)
