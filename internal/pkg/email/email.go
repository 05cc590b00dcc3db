package email

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"log/slog"
	"net/smtp"
	"time"

	"github.com/omyra-tech/intern-portal-backend-go/internal/config"
)

//go:embed templates/*.html
var templateFS embed.FS

const maxRetries = 3

// EmailService defines the interface for sending transactional email.
type EmailService interface {
	SendStatusUpdate(to, firstName, status string) error
	SendTaskAssigned(to []string, title, description string) error
	SendNotice(to []string, subject, message string) error
}

type emailServiceImpl struct {
	cfg       config.SMTPConfig
	templates *template.Template
}

// NewEmailService creates a new email service instance
func NewEmailService(cfg config.SMTPConfig) (EmailService, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse email templates: %w", err)
	}

	return &emailServiceImpl{
		cfg:       cfg,
		templates: tmpl,
	}, nil
}

type statusUpdateEmailData struct {
	FirstName string
	Status    string
}

// SendStatusUpdate notifies an intern that an admin changed their account status.
func (s *emailServiceImpl) SendStatusUpdate(to, firstName, status string) error {
	data := statusUpdateEmailData{
		FirstName: firstName,
		Status:    status,
	}

	var body bytes.Buffer
	if err := s.templates.ExecuteTemplate(&body, "status_update.html", data); err != nil {
		return fmt.Errorf("failed to execute template: %w", err)
	}

	return s.sendHTML([]string{to}, "Exciting News: Your Account Status Updated!", body.String())
}

type taskAssignedEmailData struct {
	Title       string
	Description string
}

// SendTaskAssigned notifies interns of a newly assigned daily task.
func (s *emailServiceImpl) SendTaskAssigned(to []string, title, description string) error {
	data := taskAssignedEmailData{
		Title:       title,
		Description: description,
	}

	var body bytes.Buffer
	if err := s.templates.ExecuteTemplate(&body, "task_assigned.html", data); err != nil {
		return fmt.Errorf("failed to execute template: %w", err)
	}

	return s.sendHTML(to, "New Task Assigned", body.String())
}

type noticeEmailData struct {
	Message string
}

// SendNotice sends a free-form admin notice to one or more recipients.
func (s *emailServiceImpl) SendNotice(to []string, subject, message string) error {
	data := noticeEmailData{Message: message}

	var body bytes.Buffer
	if err := s.templates.ExecuteTemplate(&body, "notice.html", data); err != nil {
		return fmt.Errorf("failed to execute template: %w", err)
	}

	return s.sendHTML(to, subject, body.String())
}

func (s *emailServiceImpl) sendHTML(to []string, subject, htmlBody string) error {
	// Skip sending if SMTP is not configured
	if s.cfg.Host == "" {
		slog.Warn("SMTP not configured, skipping email send", "to", to, "subject", subject)
		return nil
	}

	from := s.cfg.From

	headers := fmt.Sprintf("From: %s <%s>\r\n", s.cfg.FromName, from)
	for _, recipient := range to {
		headers += fmt.Sprintf("To: %s\r\n", recipient)
	}
	headers += fmt.Sprintf("Subject: %s\r\n", subject)
	headers += "MIME-Version: 1.0\r\n"
	headers += "Content-Type: text/html; charset=\"UTF-8\"\r\n"
	headers += "\r\n"

	message := []byte(headers + htmlBody)

	auth := smtp.PlainAuth("", s.cfg.Username, s.cfg.Password, s.cfg.Host)
	addr := fmt.Sprintf("%s:%d", s.cfg.Host, s.cfg.Port)

	var lastErr error
	for attempt := 1; attempt <= maxRetries; attempt++ {
		err := smtp.SendMail(addr, auth, from, to, message)
		if err == nil {
			slog.Info("Email sent successfully", "to", to, "subject", subject, "attempt", attempt)
			return nil
		}

		lastErr = err
		slog.Error("Failed to send email",
			"to", to,
			"subject", subject,
			"attempt", attempt,
			"max_retries", maxRetries,
			"error", err,
		)

		// Wait before retrying (exponential backoff: 1s, 2s, 4s)
		if attempt < maxRetries {
			time.Sleep(time.Duration(1<<(attempt-1)) * time.Second)
		}
	}

	return fmt.Errorf("failed to send email after %d attempts: %w", maxRetries, lastErr)
}
