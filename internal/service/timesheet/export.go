package timesheet

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"

	"github.com/clinicops/timeclock-backend-go/internal/domain/timesheet"
	"github.com/xuri/excelize/v2"
)

const (
	sheetShifts  = "Shifts"
	sheetWeekly  = "Weekly Payroll"
	sheetMonthly = "Monthly Summary"

	timestampLayout = "2006-01-02 15:04"
	dateLayout      = "2006-01-02"

	// clockOutActive marks an open shift in the Clock Out column;
	// hoursPending marks its Hours column.
	clockOutActive = "Active"
	hoursPending   = "-"
)

var (
	detailHeader  = []string{"Staff", "Clock In", "Clock Out", "Hours"}
	weeklyHeader  = []string{"Staff", "Week Start", "Week End", "Total Hours", "Overtime?"}
	monthlyHeader = []string{"Staff", "Month", "Total Hours"}
)

// detailCells renders one detail row the same way for the CSV export and
// the workbook's Shifts sheet, so the two can never diverge.
func detailCells(row timesheet.DetailRow) []string {
	clockOut := clockOutActive
	hours := hoursPending
	if row.ClockOut != nil {
		clockOut = row.ClockOut.UTC().Format(timestampLayout)
	}
	if row.DurationHours != nil {
		hours = strconv.FormatFloat(*row.DurationHours, 'f', -1, 64)
	}
	return []string{
		row.StaffName,
		row.ClockIn.UTC().Format(timestampLayout),
		clockOut,
		hours,
	}
}

// renderCSV writes the report's detail section as a flat CSV file.
func renderCSV(report timesheet.Report) (*bytes.Buffer, error) {
	buf := new(bytes.Buffer)
	w := csv.NewWriter(buf)

	if err := w.Write(detailHeader); err != nil {
		return nil, fmt.Errorf("failed to write CSV header: %w", err)
	}
	for _, row := range report.Details {
		if err := w.Write(detailCells(row)); err != nil {
			return nil, fmt.Errorf("failed to write CSV row: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("failed to flush CSV: %w", err)
	}
	return buf, nil
}

// renderWorkbook writes all three report sections as an xlsx workbook.
func renderWorkbook(report timesheet.Report) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer f.Close()

	// Sheet 1: detailed shifts
	if err := f.SetSheetName("Sheet1", sheetShifts); err != nil {
		return nil, fmt.Errorf("failed to rename sheet: %w", err)
	}
	if err := writeHeaderRow(f, sheetShifts, detailHeader); err != nil {
		return nil, err
	}
	for i, row := range report.Details {
		cells := detailCells(row)
		values := []interface{}{cells[0], cells[1], cells[2], cells[3]}
		if err := writeRow(f, sheetShifts, i+2, values); err != nil {
			return nil, err
		}
	}

	// Sheet 2: weekly payroll summary
	if _, err := f.NewSheet(sheetWeekly); err != nil {
		return nil, fmt.Errorf("failed to create sheet: %w", err)
	}
	if err := writeHeaderRow(f, sheetWeekly, weeklyHeader); err != nil {
		return nil, err
	}
	for i, rollup := range report.Weekly {
		overtime := "NO"
		if rollup.Overtime {
			overtime = "YES"
		}
		values := []interface{}{
			rollup.StaffName,
			rollup.WeekStart.Format(dateLayout),
			rollup.WeekEnd.Format(dateLayout),
			rollup.TotalHours,
			overtime,
		}
		if err := writeRow(f, sheetWeekly, i+2, values); err != nil {
			return nil, err
		}
	}

	// Sheet 3: monthly summary
	if _, err := f.NewSheet(sheetMonthly); err != nil {
		return nil, fmt.Errorf("failed to create sheet: %w", err)
	}
	if err := writeHeaderRow(f, sheetMonthly, monthlyHeader); err != nil {
		return nil, err
	}
	for i, rollup := range report.Monthly {
		values := []interface{}{rollup.StaffName, rollup.Month, rollup.TotalHours}
		if err := writeRow(f, sheetMonthly, i+2, values); err != nil {
			return nil, err
		}
	}

	buf := new(bytes.Buffer)
	if err := f.Write(buf); err != nil {
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}
	return buf, nil
}

func writeHeaderRow(f *excelize.File, sheet string, header []string) error {
	values := make([]interface{}, len(header))
	for i, h := range header {
		values[i] = h
	}
	return writeRow(f, sheet, 1, values)
}

func writeRow(f *excelize.File, sheet string, rowNum int, values []interface{}) error {
	cell, err := excelize.CoordinatesToCellName(1, rowNum)
	if err != nil {
		return fmt.Errorf("failed to build cell name: %w", err)
	}
	if err := f.SetSheetRow(sheet, cell, &values); err != nil {
		return fmt.Errorf("failed to write sheet row: %w", err)
	}
	return nil
}
