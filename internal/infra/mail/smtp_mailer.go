// Package mail implements the Mailer on a plain SMTP relay.
package mail

import (
	"context"
	"fmt"
	"net/smtp"
	"strings"

	"backstage/config"
	"backstage/internal/domain/service"
	"backstage/internal/errors"
)

type smtpMailer struct {
	addr string
	auth smtp.Auth
	from string
}

// New creates the SMTP-backed mailer.
func New(cfg *config.Config) (service.Mailer, error) {
	if cfg.Mail == nil || cfg.Mail.Host == "" {
		return nil, errors.New("mail host must be provided")
	}

	var auth smtp.Auth
	if cfg.Mail.Username != "" {
		auth = smtp.PlainAuth("", cfg.Mail.Username, cfg.Mail.Password, cfg.Mail.Host)
	}

	return &smtpMailer{
		addr: fmt.Sprintf("%s:%d", cfg.Mail.Host, cfg.Mail.Port),
		auth: auth,
		from: cfg.Mail.From,
	}, nil
}

func (m *smtpMailer) SendMail(ctx context.Context, to, subject, body string) error {
	if err := ctx.Err(); err != nil {
		return errors.Wrap(err, "send mail")
	}

	msg := strings.Join([]string{
		"From: " + m.from,
		"To: " + to,
		"Subject: " + subject,
		"MIME-Version: 1.0",
		`Content-Type: text/plain; charset="utf-8"`,
		"",
		body,
	}, "\r\n")

	if err := smtp.SendMail(m.addr, m.auth, m.from, []string{to}, []byte(msg)); err != nil {
		return errors.Wrap(err, "smtp send")
	}

	return nil
}
