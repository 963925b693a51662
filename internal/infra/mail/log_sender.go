package mail

import (
	"context"
	"log/slog"

	deliverycontext "estate/internal/delivery/context"
)

// logSender writes outgoing mail to the log instead of delivering it. Development only.
type logSender struct {
	logger *slog.Logger
}

func (s *logSender) Send(ctx context.Context, to, subject, html string) error {
	deliverycontext.GetLoggerOrDefault(ctx, s.logger).Info("Mail not delivered, log provider active",
		slog.String("to", to),
		slog.String("subject", subject),
		slog.String("body", html),
	)

	return nil
}
