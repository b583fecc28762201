package mail

import (
	"context"
	"fmt"
	"net/smtp"

	"portfolia/internal/domain/entity"
	"portfolia/internal/domain/service"
	"portfolia/pkg/logger"
)

type smtpMailer struct {
	host      string
	port      string
	user      string
	password  string
	recipient string
}

// NewSMTPMailer builds the contact-notification mailer. With no host or
// recipient configured it degrades to a no-op that only logs, so the
// contact flow works in development without an SMTP account.
func NewSMTPMailer(host, port, user, password, recipient string) service.Mailer {
	if host == "" || recipient == "" {
		logger.Warn("SMTP not configured; contact notifications will be logged only")
		return &noopMailer{}
	}

	return &smtpMailer{
		host:      host,
		port:      port,
		user:      user,
		password:  password,
		recipient: recipient,
	}
}

func (m *smtpMailer) SendContactNotification(ctx context.Context, message *entity.ContactMessage) error {
	body := fmt.Sprintf(
		"From: %s\r\nTo: %s\r\nSubject: New contact message from %s\r\n\r\nName: %s\nEmail: %s\n\n%s\r\n",
		m.user, m.recipient, message.Name, message.Name, message.Email, message.Message,
	)

	var auth smtp.Auth
	if m.user != "" {
		auth = smtp.PlainAuth("", m.user, m.password, m.host)
	}

	addr := m.host + ":" + m.port

	done := make(chan error, 1)
	go func() {
		done <- smtp.SendMail(addr, auth, m.user, []string{m.recipient}, []byte(body))
	}()

	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}

type noopMailer struct{}

func (m *noopMailer) SendContactNotification(ctx context.Context, message *entity.ContactMessage) error {
	logger.Info("Contact message received from %s <%s> (notification disabled)", message.Name, message.Email)
	return nil
}
