package response

import (
	"errors"
	"net/http"

	"github.com/clinicops/timeclock-backend-go/internal/domain/shift"
	"github.com/clinicops/timeclock-backend-go/internal/domain/staff"
	"github.com/clinicops/timeclock-backend-go/internal/domain/timesheet"
	"github.com/clinicops/timeclock-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Staff domain errors
	case errors.Is(err, staff.ErrStaffNotFound):
		NotFound(w, "Staff member not found")

	// Shift domain errors
	case errors.Is(err, shift.ErrAlreadyClockedIn):
		Conflict(w, "Already clocked in")
	case errors.Is(err, shift.ErrNotClockedIn):
		Conflict(w, "Not clocked in")
	case errors.Is(err, shift.ErrShiftNotFound):
		NotFound(w, "Shift record not found")
	case errors.Is(err, shift.ErrClockOutBeforeClockIn):
		BadRequest(w, "Clock out time is before clock in time", nil)

	// Timesheet domain errors
	case errors.Is(err, timesheet.ErrMalformedShift):
		InternalServerError(w, "Shift ledger contains malformed records")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
