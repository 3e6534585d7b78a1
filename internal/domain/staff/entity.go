package staff

import "time"

// Staff is one member of the clinic roster. Staff records are created by
// the admin-management side of the panel; the timeclock and reporting code
// only ever reads them.
type Staff struct {
	ID        string
	Username  string
	CreatedAt time.Time
	UpdatedAt time.Time
}
