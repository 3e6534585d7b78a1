package http

import (
	"bytes"
	"net/http"
	"net/url"

	"github.com/clinicops/timeclock-backend-go/internal/domain/timesheet"
	"github.com/clinicops/timeclock-backend-go/internal/handler/http/response"
)

const (
	csvContentType  = "text/csv"
	xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

type ReportHandler interface {
	GetPayrollReport(w http.ResponseWriter, r *http.Request)
	ExportPayroll(w http.ResponseWriter, r *http.Request)
}

type reportHandlerImpl struct {
	reportService timesheet.ReportService
}

func NewReportHandler(reportService timesheet.ReportService) ReportHandler {
	return &reportHandlerImpl{
		reportService: reportService,
	}
}

// GetPayrollReport handles GET /reports/payroll
func (h *reportHandlerImpl) GetPayrollReport(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	result, err := h.reportService.GetPayrollReport(ctx)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ExportPayroll handles GET /reports/payroll/export?format=csv|xlsx
func (h *reportHandlerImpl) ExportPayroll(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	format := r.URL.Query().Get("format")
	if format == "" {
		format = "xlsx"
	}

	var (
		buf         *bytes.Buffer
		filename    string
		contentType string
		err         error
	)
	switch format {
	case "csv":
		buf, filename, err = h.reportService.ExportCSV(ctx)
		contentType = csvContentType
	case "xlsx":
		buf, filename, err = h.reportService.ExportWorkbook(ctx)
		contentType = xlsxContentType
	default:
		response.BadRequest(w, "format must be csv or xlsx", nil)
		return
	}
	if err != nil {
		response.HandleError(w, err)
		return
	}

	w.Header().Set("Content-Description", "File Transfer")
	w.Header().Set("Content-Disposition", "attachment; filename*=UTF-8''"+url.QueryEscape(filename))
	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(buf.Bytes())
}
