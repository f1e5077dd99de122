package alert

import (
	"context"
	"fmt"

	"heat-risk/internal/config"

	"github.com/wneessen/go-mail"
)

// SMTPSender delivers messages over implicit TLS with PLAIN auth
type SMTPSender struct {
	host     string
	port     int
	username string
	password string
}

// NewSMTPSender creates a sender that authenticates as the configured
// sender address
func NewSMTPSender(cfg config.AlertConfig) *SMTPSender {
	return &SMTPSender{
		host:     cfg.SMTPServer,
		port:     cfg.SMTPPort,
		username: cfg.EmailAddress,
		password: cfg.EmailPassword,
	}
}

// Send dials the server, sends msg and closes the connection
func (s *SMTPSender) Send(ctx context.Context, msg Message) error {
	m, err := newMailMsg(msg)
	if err != nil {
		return err
	}

	client, err := mail.NewClient(s.host,
		mail.WithPort(s.port),
		mail.WithSSL(),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(s.username),
		mail.WithPassword(s.password),
	)
	if err != nil {
		return fmt.Errorf("failed to create mail client: %w", err)
	}

	if err := client.DialAndSendWithContext(ctx, m); err != nil {
		return fmt.Errorf("failed to send mail: %w", err)
	}
	return nil
}

func newMailMsg(msg Message) (*mail.Msg, error) {
	m := mail.NewMsg()
	if err := m.From(msg.From); err != nil {
		return nil, fmt.Errorf("invalid sender address: %w", err)
	}
	if err := m.To(msg.To); err != nil {
		return nil, fmt.Errorf("invalid recipient address: %w", err)
	}
	m.Subject(msg.Subject)
	m.SetBodyString(mail.TypeTextPlain, msg.Body)
	return m, nil
}
