package cron

import (
	"context"
	"log/slog"

	"github.com/clinicops/timeclock-backend-go/internal/config"
	"github.com/clinicops/timeclock-backend-go/internal/domain/timesheet"
)

// RegisterPayrollReportJob schedules the recurring payroll email. The job
// is not registered when no recipient is configured.
func RegisterPayrollReportJob(s *Scheduler, reports timesheet.ReportService, cfg config.ReportConfig) {
	if cfg.ToEmail == "" {
		slog.Warn("REPORT_TO_EMAIL not set, payroll report job disabled")
		return
	}

	s.AddJob("payroll_report", cfg.Interval, func(ctx context.Context) error {
		return reports.EmailWorkbook(ctx, cfg.ToEmail)
	})
}
