package timesheet

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/clinicops/timeclock-backend-go/internal/domain/shift"
	"github.com/clinicops/timeclock-backend-go/internal/domain/staff"
	"github.com/clinicops/timeclock-backend-go/internal/domain/timesheet"
)

// Aggregator folds a read-only snapshot of the shift ledger into the
// three payroll report sections. It performs no I/O, never mutates its
// inputs, and allocates only per-call output, so one instance can serve
// concurrent report requests.
type Aggregator struct{}

func NewAggregator() *Aggregator {
	return &Aggregator{}
}

// WeeklyRollups computes one staff member's hour totals over a trailing
// window of `weeks` consecutive 7-day periods ending at referenceDate,
// most recent period first. Every period is emitted even when no shifts
// fall in it, so the report shape is stable across staff and across runs.
// Open shifts contribute nothing.
func (a *Aggregator) WeeklyRollups(member staff.Staff, shifts []shift.Shift, referenceDate time.Time, weeks int) []timesheet.WeeklyRollup {
	refDay := dateOnly(referenceDate)

	rollups := make([]timesheet.WeeklyRollup, 0, weeks)
	for w := 0; w < weeks; w++ {
		weekEnd := refDay.AddDate(0, 0, -7*w)
		weekStart := weekEnd.AddDate(0, 0, -6)

		var total float64
		for _, s := range shifts {
			if s.StaffID != member.ID || s.ClockOut == nil {
				continue
			}
			day := dateOnly(s.ClockIn)
			if day.Before(weekStart) || day.After(weekEnd) {
				continue
			}
			if d := s.DurationHours(); d != nil {
				total += *d
			}
		}
		total = round2(total)

		rollups = append(rollups, timesheet.WeeklyRollup{
			StaffID:    member.ID,
			StaffName:  member.Username,
			WeekStart:  weekStart,
			WeekEnd:    weekEnd,
			TotalHours: total,
			Overtime:   total > timesheet.OvertimeThresholdHours,
		})
	}

	return rollups
}

// MonthlyRollups groups one staff member's completed shifts by the
// calendar month of clock-in, over the whole ledger history. Months with
// no completed shifts are not emitted; rows are ordered by month key
// ascending. The asymmetry with the padded weekly window is deliberate.
func (a *Aggregator) MonthlyRollups(member staff.Staff, shifts []shift.Shift) []timesheet.MonthlyRollup {
	totals := make(map[string]float64)
	for _, s := range shifts {
		if s.StaffID != member.ID || s.ClockOut == nil {
			continue
		}
		key := s.ClockIn.UTC().Format("2006-01")
		if d := s.DurationHours(); d != nil {
			totals[key] += *d
		}
	}

	months := make([]string, 0, len(totals))
	for month := range totals {
		months = append(months, month)
	}
	sort.Strings(months)

	rollups := make([]timesheet.MonthlyRollup, 0, len(months))
	for _, month := range months {
		rollups = append(rollups, timesheet.MonthlyRollup{
			StaffID:    member.ID,
			StaffName:  member.Username,
			Month:      month,
			TotalHours: round2(totals[month]),
		})
	}

	return rollups
}

// BuildReport assembles the full three-section report for a ledger
// snapshot. Shifts violating the clock_out >= clock_in invariant make the
// whole report fail rather than silently aggregating negative hours.
func (a *Aggregator) BuildReport(roster []staff.Staff, ledger []shift.Shift, referenceDate time.Time) (timesheet.Report, error) {
	for _, s := range ledger {
		if err := s.CheckRange(); err != nil {
			return timesheet.Report{}, fmt.Errorf("%w: shift %s", timesheet.ErrMalformedShift, s.ID)
		}
	}

	names := make(map[string]string, len(roster))
	for _, member := range roster {
		names[member.ID] = member.Username
	}

	// Detail section: one row per shift, clock_in descending. Shifts whose
	// staff member is missing from the roster snapshot are skipped.
	details := make([]timesheet.DetailRow, 0, len(ledger))
	for _, s := range ledger {
		name, ok := names[s.StaffID]
		if !ok {
			continue
		}
		details = append(details, timesheet.DetailRow{
			StaffName:     name,
			ClockIn:       s.ClockIn,
			ClockOut:      s.ClockOut,
			DurationHours: s.DurationHours(),
		})
	}
	sort.SliceStable(details, func(i, j int) bool {
		return details[i].ClockIn.After(details[j].ClockIn)
	})

	var weekly []timesheet.WeeklyRollup
	var monthly []timesheet.MonthlyRollup
	for _, member := range roster {
		weekly = append(weekly, a.WeeklyRollups(member, ledger, referenceDate, timesheet.DefaultWeeklyWindow)...)
		monthly = append(monthly, a.MonthlyRollups(member, ledger)...)
	}

	return timesheet.Report{
		GeneratedAt:   time.Now().UTC(),
		ReferenceDate: dateOnly(referenceDate),
		Details:       details,
		Weekly:        weekly,
		Monthly:       monthly,
	}, nil
}

// dateOnly truncates a timestamp to its UTC calendar date.
func dateOnly(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
