package service

import "context"

// Mailer sends plain-text mail. The transport (SMTP relay, provider API)
// is an infrastructure concern.
type Mailer interface {
	SendMail(ctx context.Context, to, subject, body string) error
}
