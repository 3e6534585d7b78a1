package email

import (
	"encoding/base64"
	"fmt"
	"log/slog"
	"mime"
	"net/smtp"
	"strings"
	"time"

	"github.com/clinicops/timeclock-backend-go/internal/config"
)

const maxRetries = 3

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// EmailService defines the interface for sending report emails
type EmailService interface {
	SendPayrollReport(to, subject, body string, attachment []byte, filename string) error
}

type emailServiceImpl struct {
	cfg config.SMTPConfig
}

// NewEmailService creates a new email service instance
func NewEmailService(cfg config.SMTPConfig) EmailService {
	return &emailServiceImpl{cfg: cfg}
}

// SendPayrollReport sends the payroll workbook as an email attachment.
// When SMTP is not configured the send is skipped with a warning so
// report generation still succeeds in development.
func (s *emailServiceImpl) SendPayrollReport(to, subject, body string, attachment []byte, filename string) error {
	if s.cfg.Host == "" {
		slog.Warn("SMTP not configured, skipping email send", "to", to, "subject", subject)
		return nil
	}

	msg := s.buildMessage(to, subject, body, attachment, filename)
	addr := fmt.Sprintf("%s:%d", s.cfg.Host, s.cfg.Port)
	auth := smtp.PlainAuth("", s.cfg.Username, s.cfg.Password, s.cfg.Host)

	var err error
	for attempt := 1; attempt <= maxRetries; attempt++ {
		err = smtp.SendMail(addr, auth, s.cfg.From, []string{to}, msg)
		if err == nil {
			slog.Info("Payroll report emailed", "to", to, "filename", filename)
			return nil
		}
		slog.Warn("Email send failed", "attempt", attempt, "error", err)
		time.Sleep(time.Duration(attempt) * time.Second)
	}

	return fmt.Errorf("failed to send email after %d attempts: %w", maxRetries, err)
}

func (s *emailServiceImpl) buildMessage(to, subject, body string, attachment []byte, filename string) []byte {
	boundary := "payroll-report-boundary"

	var b strings.Builder
	fmt.Fprintf(&b, "From: %s\r\n", s.cfg.From)
	fmt.Fprintf(&b, "To: %s\r\n", to)
	fmt.Fprintf(&b, "Subject: %s\r\n", mime.QEncoding.Encode("utf-8", subject))
	b.WriteString("MIME-Version: 1.0\r\n")
	fmt.Fprintf(&b, "Content-Type: multipart/mixed; boundary=%q\r\n", boundary)
	b.WriteString("\r\n")

	// Text body
	fmt.Fprintf(&b, "--%s\r\n", boundary)
	b.WriteString("Content-Type: text/plain; charset=utf-8\r\n\r\n")
	b.WriteString(body)
	b.WriteString("\r\n")

	// Attachment, base64 in 76-column lines
	fmt.Fprintf(&b, "--%s\r\n", boundary)
	fmt.Fprintf(&b, "Content-Type: %s\r\n", xlsxContentType)
	b.WriteString("Content-Transfer-Encoding: base64\r\n")
	fmt.Fprintf(&b, "Content-Disposition: attachment; filename=%q\r\n\r\n", filename)

	encoded := base64.StdEncoding.EncodeToString(attachment)
	for len(encoded) > 76 {
		b.WriteString(encoded[:76])
		b.WriteString("\r\n")
		encoded = encoded[76:]
	}
	b.WriteString(encoded)
	b.WriteString("\r\n")

	fmt.Fprintf(&b, "--%s--\r\n", boundary)
	return []byte(b.String())
}
