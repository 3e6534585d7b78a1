package main

import (
	"context"
	"fmt"
	"net/http"

	"github.com/clinicops/timeclock-backend-go/internal/config"
	appHTTP "github.com/clinicops/timeclock-backend-go/internal/handler/http"
	"github.com/clinicops/timeclock-backend-go/internal/pkg/cron"
	"github.com/clinicops/timeclock-backend-go/internal/pkg/database"
	"github.com/clinicops/timeclock-backend-go/internal/pkg/email"
	"github.com/clinicops/timeclock-backend-go/internal/pkg/summary"
	"github.com/clinicops/timeclock-backend-go/internal/repository/postgresql"
	shiftService "github.com/clinicops/timeclock-backend-go/internal/service/shift"
	timesheetService "github.com/clinicops/timeclock-backend-go/internal/service/timesheet"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	db, err := database.NewPostgreSQLDB(context.Background(), cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}
	defer db.Close()

	staffRepo := postgresql.NewStaffRepository(db)
	shiftRepo := postgresql.NewShiftRepository(db)

	emailService := email.NewEmailService(cfg.SMTP)
	// No completion client is wired in this deployment; the report email
	// body falls back to the truncated digest.
	summarizer := summary.Unavailable()

	timeclockSvc := shiftService.NewTimeclockService(db, shiftRepo, staffRepo)
	reportSvc := timesheetService.NewReportService(staffRepo, shiftRepo, emailService, summarizer)

	timeclockHandler := appHTTP.NewTimeclockHandler(timeclockSvc)
	reportHandler := appHTTP.NewReportHandler(reportSvc)

	scheduler := cron.NewScheduler()
	cron.RegisterPayrollReportJob(scheduler, reportSvc, cfg.Report)
	scheduler.Start()
	defer scheduler.Stop()

	router := appHTTP.NewRouter(timeclockHandler, reportHandler)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
