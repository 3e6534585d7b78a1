package shift

import (
	"context"
	"time"
)

// ShiftRepository defines data access methods for the shift ledger.
type ShiftRepository interface {
	// Create inserts a new (open) shift record
	Create(ctx context.Context, s Shift) (Shift, error)

	// CloseShift sets the clock-out time on an open shift
	CloseShift(ctx context.Context, id string, clockOut time.Time) (Shift, error)

	// LockStaffLedger serializes ledger writes for one staff member for
	// the duration of the surrounding transaction. Must be taken before
	// the open-shift check; the check is unreliable against concurrent
	// writers otherwise.
	LockStaffLedger(ctx context.Context, staffID string) error

	// GetOpenShift retrieves the staff member's open shift, if any.
	// Used to prevent double clock-in.
	GetOpenShift(ctx context.Context, staffID string) (Shift, error)

	// ListByStaff retrieves one staff member's shifts, clock_in descending
	ListByStaff(ctx context.Context, staffID string) ([]Shift, error)

	// ListAll retrieves a snapshot of the whole ledger, clock_in descending.
	// Report generation operates on this snapshot and never writes back.
	ListAll(ctx context.Context) ([]Shift, error)
}
