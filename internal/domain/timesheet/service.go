package timesheet

import (
	"bytes"
	"context"
)

// ReportService produces payroll reports over a snapshot of the shift
// ledger and renders them for download or email delivery.
type ReportService interface {
	// GetPayrollReport computes the three-section report as JSON-ready data
	GetPayrollReport(ctx context.Context) (Report, error)

	// ExportCSV renders the detail section as a flat CSV file
	ExportCSV(ctx context.Context) (*bytes.Buffer, string, error)

	// ExportWorkbook renders all three sections as an xlsx workbook
	ExportWorkbook(ctx context.Context) (*bytes.Buffer, string, error)

	// EmailWorkbook renders the workbook and sends it as an attachment
	EmailWorkbook(ctx context.Context, to string) error
}
