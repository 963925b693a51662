package impl

import (
	"context"
	"log/slog"

	deliverycontext "estate/internal/delivery/context"
	"estate/internal/domain/service"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
)

// eventEmitter publishes domain events on a best-effort basis.
type eventEmitter struct {
	publisher service.EventPublisher
	clock     clockwork.Clock
	logger    *slog.Logger
}

// emit never fails the caller; a lost event is only logged.
func (e *eventEmitter) emit(ctx context.Context, eventType, subject string, attributes map[string]string) {
	if e.publisher == nil {
		return
	}

	event := &service.DomainEvent{
		ID:         uuid.NewString(),
		Type:       eventType,
		RequestID:  deliverycontext.GetRequestIDFromContext(ctx),
		Subject:    subject,
		OccurredAt: e.clock.Now().UTC(),
		Attributes: attributes,
	}

	if err := e.publisher.Publish(ctx, event); err != nil {
		deliverycontext.GetLoggerOrDefault(ctx, e.logger).Warn("Failed to publish event",
			slog.String("event_type", eventType),
			slog.String("subject", subject),
			slog.Any("error", err),
		)
	}
}
