package mail

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"estate/config"
	domainerrors "estate/internal/domain/errors"
	"estate/internal/domain/service"
	"estate/internal/errors"

	"github.com/sony/gobreaker"
)

const (
	defaultBrevoEndpoint = "https://api.brevo.com/v3/smtp/email"
	defaultTimeout       = 10 * time.Second
	defaultMaxFailures   = 5
	defaultOpenTimeout   = 30 * time.Second
	maxErrorBodyBytes    = 4 << 10
)

type brevoAddress struct {
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
}

type brevoRequest struct {
	Sender      brevoAddress   `json:"sender"`
	To          []brevoAddress `json:"to"`
	Subject     string         `json:"subject"`
	HTMLContent string         `json:"htmlContent"`
}

// brevoSender delivers transactional email through the Brevo HTTP API.
// Consecutive failures open the breaker so registrations fail fast while the provider is down.
type brevoSender struct {
	endpoint   string
	apiKey     string
	from       brevoAddress
	httpClient *http.Client
	breaker    *gobreaker.CircuitBreaker
	logger     *slog.Logger
}

func newBrevoSender(cfg *config.MailConfig, logger *slog.Logger) (*brevoSender, error) {
	if cfg.APIKey == "" || cfg.FromEmail == "" {
		return nil, errors.New("brevo mail provider requires apiKey and fromEmail")
	}

	endpoint := cfg.Endpoint
	if endpoint == "" {
		endpoint = defaultBrevoEndpoint
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	maxFailures := cfg.Breaker.MaxFailures
	if maxFailures == 0 {
		maxFailures = defaultMaxFailures
	}
	openTimeout := cfg.Breaker.Timeout
	if openTimeout <= 0 {
		openTimeout = defaultOpenTimeout
	}

	breaker := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "brevo",
		MaxRequests: 1,
		Interval:    cfg.Breaker.Interval,
		Timeout:     openTimeout,
		IsSuccessful: countsAsHealthy,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= maxFailures
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("Mail circuit breaker state changed",
				slog.String("name", name),
				slog.String("from", from.String()),
				slog.String("to", to.String()),
			)
		},
	})

	return &brevoSender{
		endpoint:   endpoint,
		apiKey:     cfg.APIKey,
		from:       brevoAddress{Email: cfg.FromEmail, Name: cfg.FromName},
		httpClient: &http.Client{Timeout: timeout},
		breaker:    breaker,
		logger:     logger,
	}, nil
}

func (s *brevoSender) Send(ctx context.Context, to, subject, html string) error {
	if to == "" || subject == "" || html == "" {
		return errors.New("recipient, subject and html body are required")
	}

	_, err := s.breaker.Execute(func() (any, error) {
		return nil, s.post(ctx, brevoRequest{
			Sender:      s.from,
			To:          []brevoAddress{{Email: to}},
			Subject:     subject,
			HTMLContent: html,
		})
	})
	if err != nil {
		return domainerrors.NewUpstreamError("mail provider", err)
	}

	return nil
}

func (s *brevoSender) post(ctx context.Context, payload brevoRequest) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return errors.Wrap(err, "failed to marshal brevo request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint, bytes.NewReader(body))
	if err != nil {
		return errors.Wrap(err, "failed to build brevo request")
	}
	req.Header.Set("api-key", s.apiKey)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return errors.Wrap(err, "brevo request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyBytes))

		return &brevoStatusError{status: resp.StatusCode, body: string(bytes.TrimSpace(detail))}
	}

	return nil
}

// brevoStatusError is a non-2xx answer from the Brevo API.
type brevoStatusError struct {
	status int
	body   string
}

func (e *brevoStatusError) Error() string {
	return fmt.Sprintf("brevo API error: status %d, body: %s", e.status, e.body)
}

// rejectedMessage reports a 4xx caused by the message itself, such as a bad recipient.
// Auth failures and throttling affect every message and are not included.
func (e *brevoStatusError) rejectedMessage() bool {
	switch e.status {
	case http.StatusUnauthorized, http.StatusForbidden, http.StatusTooManyRequests:
		return false
	default:
		return e.status >= http.StatusBadRequest && e.status < http.StatusInternalServerError
	}
}

// countsAsHealthy keeps rejected messages from opening the breaker for every recipient.
func countsAsHealthy(err error) bool {
	if err == nil {
		return true
	}

	statusErr, ok := errors.AsType[*brevoStatusError](err)

	return ok && statusErr.rejectedMessage()
}

var _ service.MailSender = (*brevoSender)(nil)
