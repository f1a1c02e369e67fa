package facades

import (
	"context"
	"fmt"
	"net/smtp"
	"strings"

	"github.com/sbilibin2017/safety-hub/internal/logger"
)

// SMTPConfig holds the outgoing mail server settings.
type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

type sendMailFunc func(addr string, a smtp.Auth, from string, to []string, msg []byte) error

// SMTPMailer sends plain text email through an SMTP relay.
// smtp.SendMail upgrades the connection with STARTTLS when the server offers it.
type SMTPMailer struct {
	cfg      SMTPConfig
	sendMail sendMailFunc
}

// NewSMTPMailer creates a new SMTPMailer. Port defaults to 587.
func NewSMTPMailer(cfg SMTPConfig) *SMTPMailer {
	if cfg.Port == 0 {
		cfg.Port = 587
	}
	if cfg.From == "" {
		cfg.From = cfg.Username
	}
	return &SMTPMailer{cfg: cfg, sendMail: smtp.SendMail}
}

// Send delivers one message. The context is only checked before dialing.
func (m *SMTPMailer) Send(ctx context.Context, to, subject, body string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if to == "" {
		return fmt.Errorf("recipient is empty")
	}

	var msg strings.Builder
	fmt.Fprintf(&msg, "From: %s\r\n", m.cfg.From)
	fmt.Fprintf(&msg, "To: %s\r\n", to)
	fmt.Fprintf(&msg, "Subject: %s\r\n", subject)
	msg.WriteString("MIME-Version: 1.0\r\n")
	msg.WriteString("Content-Type: text/plain; charset=UTF-8\r\n")
	msg.WriteString("\r\n")
	msg.WriteString(body)

	auth := smtp.PlainAuth("", m.cfg.Username, m.cfg.Password, m.cfg.Host)
	addr := fmt.Sprintf("%s:%d", m.cfg.Host, m.cfg.Port)

	if err := m.sendMail(addr, auth, m.cfg.From, []string{to}, []byte(msg.String())); err != nil {
		logger.Log.Errorw("failed to send email via SMTP", "to", to, "host", m.cfg.Host, "error", err)
		return fmt.Errorf("smtp send: %w", err)
	}
	return nil
}

// LogMailer only logs outgoing email. Used when SMTP is not configured.
type LogMailer struct{}

// Send logs the message and reports success.
func (LogMailer) Send(_ context.Context, to, subject, body string) error {
	logger.Log.Infow("email (smtp not configured)", "to", to, "subject", subject, "body", body)
	return nil
}
