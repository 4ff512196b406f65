package notify

import (
	"context"
	"fmt"
	"net/smtp"

	"github.com/group8-health/health/internal"
)

// Mailer delivers a fully formatted plain-text report to a recipient.
// Report content is the service layer's job; this is transport only.
type Mailer interface {
	Send(ctx context.Context, to, subject, body string) error
}

type SMTPMailer struct {
	host     string
	port     string
	from     string
	password string
	logger   internal.Logger
}

func NewSMTPMailer(host, port, from, password string, logger internal.Logger) *SMTPMailer {
	return &SMTPMailer{host: host, port: port, from: from, password: password, logger: logger}
}

// Send delivers the message over SMTP. net/smtp has no context-aware send,
// so ctx is accepted for interface symmetry but cancellation is not honored
// once the dial starts.
func (m *SMTPMailer) Send(ctx context.Context, to, subject, body string) error {
	msg := []byte("From: " + m.from + "\r\n" +
		"To: " + to + "\r\n" +
		"Subject: " + subject + "\r\n" +
		"Content-Type: text/plain; charset=utf-8\r\n" +
		"\r\n" +
		body)

	auth := smtp.PlainAuth("", m.from, m.password, m.host)
	addr := m.host + ":" + m.port
	if err := smtp.SendMail(addr, auth, m.from, []string{to}, msg); err != nil {
		m.logger.Errorf("notify: failed to send report to %s: %v", to, err)
		return fmt.Errorf("failed to send email: %w", err)
	}
	m.logger.Infof("notify: report sent to %s", to)
	return nil
}

// NopMailer logs instead of sending; used in development and tests.
type NopMailer struct {
	logger internal.Logger
}

func NewNopMailer(logger internal.Logger) *NopMailer {
	return &NopMailer{logger: logger}
}

func (m *NopMailer) Send(ctx context.Context, to, subject, body string) error {
	m.logger.Infof("notify: (nop) would send %q to %s (%d bytes)", subject, to, len(body))
	return nil
}

var (
	_ Mailer = (*SMTPMailer)(nil)
	_ Mailer = (*NopMailer)(nil)
)
