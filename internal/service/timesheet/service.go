package timesheet

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/clinicops/timeclock-backend-go/internal/domain/shift"
	"github.com/clinicops/timeclock-backend-go/internal/domain/staff"
	"github.com/clinicops/timeclock-backend-go/internal/domain/timesheet"
	"github.com/clinicops/timeclock-backend-go/internal/pkg/email"
	"github.com/clinicops/timeclock-backend-go/internal/pkg/summary"
)

type ReportServiceImpl struct {
	staffRepo    staff.StaffRepository
	shiftRepo    shift.ShiftRepository
	aggregator   *Aggregator
	emailService email.EmailService
	summarizer   summary.Summarizer
	now          func() time.Time
}

func NewReportService(
	staffRepo staff.StaffRepository,
	shiftRepo shift.ShiftRepository,
	emailService email.EmailService,
	summarizer summary.Summarizer,
) timesheet.ReportService {
	return &ReportServiceImpl{
		staffRepo:    staffRepo,
		shiftRepo:    shiftRepo,
		aggregator:   NewAggregator(),
		emailService: emailService,
		summarizer:   summarizer,
		now:          func() time.Time { return time.Now().UTC() },
	}
}

// snapshot reads the roster and the full shift ledger in one pass. A
// shift closing concurrently with the read may or may not be included;
// that read skew is bounded and acceptable for reporting.
func (s *ReportServiceImpl) snapshot(ctx context.Context) ([]staff.Staff, []shift.Shift, error) {
	roster, err := s.staffRepo.List(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load staff roster: %w", err)
	}
	ledger, err := s.shiftRepo.ListAll(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load shift ledger: %w", err)
	}
	return roster, ledger, nil
}

// GetPayrollReport implements timesheet.ReportService.
func (s *ReportServiceImpl) GetPayrollReport(ctx context.Context) (timesheet.Report, error) {
	roster, ledger, err := s.snapshot(ctx)
	if err != nil {
		return timesheet.Report{}, err
	}
	return s.aggregator.BuildReport(roster, ledger, s.now())
}

// ExportCSV implements timesheet.ReportService.
func (s *ReportServiceImpl) ExportCSV(ctx context.Context) (*bytes.Buffer, string, error) {
	report, err := s.GetPayrollReport(ctx)
	if err != nil {
		return nil, "", err
	}
	buf, err := renderCSV(report)
	if err != nil {
		return nil, "", err
	}
	filename := fmt.Sprintf("payroll_report_%s.csv", report.ReferenceDate.Format(dateLayout))
	return buf, filename, nil
}

// ExportWorkbook implements timesheet.ReportService.
func (s *ReportServiceImpl) ExportWorkbook(ctx context.Context) (*bytes.Buffer, string, error) {
	report, err := s.GetPayrollReport(ctx)
	if err != nil {
		return nil, "", err
	}
	buf, err := renderWorkbook(report)
	if err != nil {
		return nil, "", err
	}
	filename := fmt.Sprintf("payroll_report_%s.xlsx", report.ReferenceDate.Format(dateLayout))
	return buf, filename, nil
}

// EmailWorkbook implements timesheet.ReportService.
func (s *ReportServiceImpl) EmailWorkbook(ctx context.Context, to string) error {
	report, err := s.GetPayrollReport(ctx)
	if err != nil {
		return err
	}
	buf, err := renderWorkbook(report)
	if err != nil {
		return err
	}

	body, err := s.summarizer.Summarize(ctx, weeklyDigest(report))
	if err != nil {
		return fmt.Errorf("failed to summarize report: %w", err)
	}

	filename := fmt.Sprintf("payroll_report_%s.xlsx", report.ReferenceDate.Format(dateLayout))
	subject := "Weekly Payroll Report"
	if err := s.emailService.SendPayrollReport(to, subject, body, buf.Bytes(), filename); err != nil {
		return fmt.Errorf("failed to email payroll report: %w", err)
	}
	return nil
}

// weeklyDigest renders the most recent week per staff member as plain
// text for the email body.
func weeklyDigest(report timesheet.Report) string {
	var b strings.Builder
	b.WriteString("Payroll report attached. Most recent week:\n")
	for _, rollup := range report.Weekly {
		if !rollup.WeekEnd.Equal(report.ReferenceDate) {
			continue
		}
		overtime := ""
		if rollup.Overtime {
			overtime = " (overtime)"
		}
		fmt.Fprintf(&b, "- %s: %.2f hours%s\n", rollup.StaffName, rollup.TotalHours, overtime)
	}
	return b.String()
}
