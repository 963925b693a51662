package pubsub

import (
	"context"
	"log/slog"
	"maps"

	"estate/config"
	"estate/internal/domain/constants"
	"estate/internal/domain/service"
	"estate/internal/errors"

	"go.uber.org/fx"
)

// discardPublisher drops events when no broker is configured.
type discardPublisher struct {
	logger *slog.Logger
}

func (p *discardPublisher) Publish(ctx context.Context, event *service.DomainEvent) error {
	p.logger.DebugContext(ctx, "Domain event dropped, no broker configured",
		slog.String("event_type", event.Type),
		slog.String("subject", event.Subject),
	)

	return nil
}

func (p *discardPublisher) Close() error {
	return nil
}

// PublisherParams holds dependencies for EventPublisher, injected by Fx
type PublisherParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewEventPublisher returns the broker named by pubsub.provider, closed on shutdown.
func NewEventPublisher(params PublisherParams) (service.EventPublisher, error) {
	cfg := params.Config.PubSub
	if cfg == nil || cfg.Provider == "" {
		params.Logger.Info("Domain events disabled")

		return &discardPublisher{logger: params.Logger}, nil
	}

	publisher, err := openPublisher(params.Ctx, cfg, params.Logger)
	if err != nil {
		return nil, err
	}
	params.Logger.Info("Domain events enabled", slog.String("provider", cfg.Provider))

	params.Lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return publisher.Close()
		},
	})

	return publisher, nil
}

func openPublisher(ctx context.Context, cfg *config.PubSubConfig, logger *slog.Logger) (service.EventPublisher, error) {
	switch cfg.Provider {
	case constants.PubSubProviderLocal:
		if cfg.LocalEndpoint == "" {
			return nil, errors.New("pubsub.localEndpoint is required for the local provider")
		}

		return NewLocalHTTPPublisher(cfg.LocalEndpoint, logger), nil
	case constants.PubSubProviderGoogle:
		if cfg.ProjectID == "" || cfg.TopicID == "" {
			return nil, errors.New("pubsub.projectId and pubsub.topicId are required for the google provider")
		}

		return NewGooglePubSubPublisher(ctx, cfg, logger)
	default:
		return nil, errors.Errorf("unknown pubsub provider: %s", cfg.Provider)
	}
}

// messageAttributes lets subscribers filter on event type without decoding the payload.
// Event attributes are copied first so the routing keys always win.
func messageAttributes(event *service.DomainEvent) map[string]string {
	attributes := make(map[string]string, len(event.Attributes)+3)
	maps.Copy(attributes, event.Attributes)
	attributes["event_type"] = event.Type
	attributes["subject"] = event.Subject
	if event.RequestID != "" {
		attributes["request_id"] = event.RequestID
	}

	return attributes
}
