// Package mail holds the outbound email adapters.
package mail

import (
	"log/slog"

	"estate/config"
	"estate/internal/domain/constants"
	"estate/internal/domain/service"
	"estate/internal/errors"
)

// NewMailSender picks the sender named by mail.provider; an empty config logs mail instead of sending it.
func NewMailSender(cfg *config.Config, logger *slog.Logger) (service.MailSender, error) {
	mailCfg := cfg.Mail
	if mailCfg == nil || mailCfg.Provider == "" || mailCfg.Provider == constants.MailProviderLog {
		logger.Warn("Mail provider not configured, messages are only logged")

		return &logSender{logger: logger}, nil
	}

	switch mailCfg.Provider {
	case constants.MailProviderBrevo:
		return newBrevoSender(mailCfg, logger)
	default:
		return nil, errors.Errorf("unknown mail provider: %s", mailCfg.Provider)
	}
}
