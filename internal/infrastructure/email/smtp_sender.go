package email

import (
	"log"
	"os"
	"strconv"
	"strings"

	"gopkg.in/gomail.v2"

	"mbg_backend/internal/usecase/interfaces"
)

// SMTPSender delivers plain-text mail over SMTP. Callers treat sends as
// best-effort; delivery failures are returned, logged by the caller and never
// block the flow that triggered them.

type SMTPSender struct {
	dialer *gomail.Dialer
	from   string
}

var _ interfaces.IEmailSender = (*SMTPSender)(nil)

func NewSMTPSenderFromEnv() *SMTPSender {
	port := 587
	if v := os.Getenv("SMTP_PORT"); v != "" {
		if p, err := strconv.Atoi(v); err == nil {
			port = p
		}
	}
	return &SMTPSender{
		dialer: gomail.NewDialer(os.Getenv("SMTP_HOST"), port, os.Getenv("SMTP_USER"), os.Getenv("SMTP_PASSWORD")),
		from:   os.Getenv("DEFAULT_FROM_EMAIL"),
	}
}

func (s *SMTPSender) Send(to []string, subject, body string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", to...)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", body)
	return s.dialer.DialAndSend(m)
}

// AdminEmails returns the ADMIN_EMAILS env var split on commas.
func AdminEmails() []string {
	raw := os.Getenv("ADMIN_EMAILS")
	if raw == "" {
		return nil
	}
	var out []string
	for _, addr := range strings.Split(raw, ",") {
		if addr = strings.TrimSpace(addr); addr != "" {
			out = append(out, addr)
		}
	}
	return out
}

// LogSender is the no-SMTP fallback used in development: it only logs.
type LogSender struct{}

var _ interfaces.IEmailSender = LogSender{}

func (LogSender) Send(to []string, subject, _ string) error {
	log.Printf("[email][log] would send subject=%q to=%v", subject, to)
	return nil
}
