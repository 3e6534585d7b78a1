package shift

import (
	"time"

	"github.com/clinicops/timeclock-backend-go/internal/pkg/validator"
)

type ClockInRequest struct {
	StaffID string `json:"staff_id"`
}

func (r *ClockInRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.StaffID) {
		errs = append(errs, validator.ValidationError{
			Field:   "staff_id",
			Message: "staff_id is required",
		})
	} else if !validator.IsValidUUID(r.StaffID) {
		errs = append(errs, validator.ValidationError{
			Field:   "staff_id",
			Message: "staff_id must be a valid UUID",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ClockOutRequest struct {
	StaffID string `json:"staff_id"`
}

func (r *ClockOutRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.StaffID) {
		errs = append(errs, validator.ValidationError{
			Field:   "staff_id",
			Message: "staff_id is required",
		})
	} else if !validator.IsValidUUID(r.StaffID) {
		errs = append(errs, validator.ValidationError{
			Field:   "staff_id",
			Message: "staff_id must be a valid UUID",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ShiftResponse is the JSON view of a shift record. ClockOut and
// DurationHours are null while the shift is open.
type ShiftResponse struct {
	ID            string   `json:"id"`
	StaffID       string   `json:"staff_id"`
	StaffName     string   `json:"staff_name,omitempty"`
	ClockIn       string   `json:"clock_in"`
	ClockOut      *string  `json:"clock_out"`
	DurationHours *float64 `json:"duration_hours"`
	Active        bool     `json:"active"`
}

// ToResponse converts a shift entity into its JSON view.
func ToResponse(s Shift) ShiftResponse {
	resp := ShiftResponse{
		ID:            s.ID,
		StaffID:       s.StaffID,
		ClockIn:       s.ClockIn.Format(time.RFC3339),
		DurationHours: s.DurationHours(),
		Active:        s.IsOpen(),
	}
	if s.StaffName != nil {
		resp.StaffName = *s.StaffName
	}
	if s.ClockOut != nil {
		out := s.ClockOut.Format(time.RFC3339)
		resp.ClockOut = &out
	}
	return resp
}
