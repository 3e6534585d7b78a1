package timesheet

import "errors"

// Timesheet domain errors
var (
	// ErrMalformedShift signals a ledger record with clock_out before
	// clock_in. The aggregator refuses to fold such records into totals.
	ErrMalformedShift = errors.New("shift ledger contains a malformed record")
)
