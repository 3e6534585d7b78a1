package staff

import "errors"

// Staff domain errors
var (
	ErrStaffNotFound = errors.New("staff member not found")
)
