package service

import "context"

// MailSender delivers a single HTML email.
type MailSender interface {
	Send(ctx context.Context, to, subject, html string) error
}
