package shift

import (
	"math"
	"time"
)

// Shift is one clock-in/clock-out work period for a staff member.
// A nil ClockOut means the shift is still open.
type Shift struct {
	ID        string
	StaffID   string
	ClockIn   time.Time
	ClockOut  *time.Time
	CreatedAt time.Time
	UpdatedAt time.Time

	// DTO
	StaffName *string
}

// IsOpen reports whether the shift has not been clocked out yet.
func (s Shift) IsOpen() bool {
	return s.ClockOut == nil
}

// DurationHours returns the worked hours rounded to 2 decimal places,
// or nil while the shift is open.
func (s Shift) DurationHours() *float64 {
	if s.ClockOut == nil {
		return nil
	}
	hours := s.ClockOut.Sub(s.ClockIn).Hours()
	rounded := math.Round(hours*100) / 100
	return &rounded
}

// CheckRange validates the clock_out >= clock_in invariant. Open shifts
// always pass; a closed shift that ends before it starts is malformed and
// must never reach aggregation.
func (s Shift) CheckRange() error {
	if s.ClockOut != nil && s.ClockOut.Before(s.ClockIn) {
		return ErrClockOutBeforeClockIn
	}
	return nil
}
