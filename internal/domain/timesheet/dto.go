package timesheet

import "time"

// OvertimeThresholdHours is the weekly total above which a week is
// flagged as overtime. Exactly 40.00 hours is not overtime.
const OvertimeThresholdHours = 40.0

// DefaultWeeklyWindow is the number of trailing 7-day periods covered by
// the weekly payroll section.
const DefaultWeeklyWindow = 4

// DetailRow is one shift in the report's detail section.
// ClockOut and DurationHours are nil for a shift that is still open.
type DetailRow struct {
	StaffName     string     `json:"staff_name"`
	ClockIn       time.Time  `json:"clock_in"`
	ClockOut      *time.Time `json:"clock_out"`
	DurationHours *float64   `json:"duration_hours"`
}

// WeeklyRollup is one staff member's hour total over a single 7-day
// period. WeekEnd is inclusive, 6 days after WeekStart.
type WeeklyRollup struct {
	StaffID    string    `json:"staff_id"`
	StaffName  string    `json:"staff_name"`
	WeekStart  time.Time `json:"week_start"`
	WeekEnd    time.Time `json:"week_end"`
	TotalHours float64   `json:"total_hours"`
	Overtime   bool      `json:"overtime"`
}

// MonthlyRollup is one staff member's hour total for a calendar month.
// Month is the "YYYY-MM" key of the shift clock-in times.
type MonthlyRollup struct {
	StaffID    string  `json:"staff_id"`
	StaffName  string  `json:"staff_name"`
	Month      string  `json:"month"`
	TotalHours float64 `json:"total_hours"`
}

// Report is the full three-section payroll report over one ledger
// snapshot. It is derived data only and is never persisted.
type Report struct {
	GeneratedAt   time.Time       `json:"generated_at"`
	ReferenceDate time.Time       `json:"reference_date"`
	Details       []DetailRow     `json:"details"`
	Weekly        []WeeklyRollup  `json:"weekly"`
	Monthly       []MonthlyRollup `json:"monthly"`
}
