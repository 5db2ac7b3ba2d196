// Package mailing sends the transactional emails the auth flows dispatch:
// a welcome note on registration and the reset-token email.
package mailing

import (
	"context"
	"fmt"
	"strings"

	"github.com/wneessen/go-mail"

	"beatbazaar/config"
)

// Mailer is what the auth flows depend on. Tests swap in a recording fake.
type Mailer interface {
	SendWelcomeEmail(ctx context.Context, to, name string) error
	SendPasswordResetEmail(ctx context.Context, to, token string) error
}

// SMTPMailer delivers mail over SMTP.
type SMTPMailer struct {
	client *mail.Client
	from   string
}

func NewSMTPMailer(cfg config.Config) (*SMTPMailer, error) {
	opts := []mail.Option{
		mail.WithPort(cfg.SMTPPort),
		mail.WithTLSPortPolicy(mail.TLSOpportunistic),
	}
	if cfg.SMTPUsername != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(cfg.SMTPUsername),
			mail.WithPassword(cfg.SMTPPassword),
		)
	}

	client, err := mail.NewClient(cfg.SMTPHost, opts...)
	if err != nil {
		return nil, fmt.Errorf("smtp client: %w", err)
	}
	return &SMTPMailer{client: client, from: cfg.EmailFrom}, nil
}

func (m *SMTPMailer) SendWelcomeEmail(ctx context.Context, to, name string) error {
	body := fmt.Sprintf("WELCOME TO BEATBAZAAR, %s!\n\nYour account is ready. Happy listening.\n", strings.ToUpper(name))
	return m.send(ctx, to, "Welcome to BeatBazaar", body)
}

func (m *SMTPMailer) SendPasswordResetEmail(ctx context.Context, to, token string) error {
	body := fmt.Sprintf("A password reset was requested for your account.\n\nYour reset token is: %s\n\nIt expires in 15 minutes. If you did not ask for this, ignore this email.\n", token)
	return m.send(ctx, to, "BeatBazaar password reset", body)
}

func (m *SMTPMailer) send(ctx context.Context, to, subject, body string) error {
	msg := mail.NewMsg()
	if err := msg.From(m.from); err != nil {
		return fmt.Errorf("mail from: %w", err)
	}
	if err := msg.To(to); err != nil {
		return fmt.Errorf("mail to: %w", err)
	}
	msg.Subject(subject)
	msg.SetBodyString(mail.TypeTextPlain, body)

	if err := m.client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("send mail: %w", err)
	}
	return nil
}

var _ Mailer = (*SMTPMailer)(nil)
