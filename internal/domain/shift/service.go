package shift

import "context"

// TimeclockService handles clock-in/clock-out for clinic staff.
type TimeclockService interface {
	// ClockIn opens a new shift for the staff member
	ClockIn(ctx context.Context, req ClockInRequest) (ShiftResponse, error)

	// ClockOut closes the staff member's open shift
	ClockOut(ctx context.Context, req ClockOutRequest) (ShiftResponse, error)

	// ListShifts retrieves one staff member's shifts, newest first
	ListShifts(ctx context.Context, staffID string) ([]ShiftResponse, error)

	// ListAllShifts retrieves every shift in the ledger, newest first
	ListAllShifts(ctx context.Context) ([]ShiftResponse, error)
}
