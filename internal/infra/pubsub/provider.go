// Package pubsub publishes presence and alert events for downstream consumers.
package pubsub

import (
	"context"
	"log/slog"

	"screentrack/config"
	"screentrack/internal/domain/constants"
	"screentrack/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// PublisherParams holds dependencies for EventPublisher, injected by Fx
type PublisherParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewEventPublisher picks the publisher for pubsub.provider and closes it on shutdown.
// An empty provider disables publishing.
func NewEventPublisher(params PublisherParams) (service.EventPublisher, error) {
	publisher, err := newPublisher(params.Ctx, params.Config.PubSub, params.Logger)
	if err != nil {
		return nil, err
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			params.Logger.Info("Closing event publisher")

			return publisher.Close()
		},
	})

	return publisher, nil
}

func newPublisher(ctx context.Context, cfg *config.PubSubConfig, logger *slog.Logger) (service.EventPublisher, error) {
	if cfg == nil || cfg.Provider == "" {
		logger.Info("PubSub not configured, presence and alert events are dropped")

		return &noopPublisher{logger: logger}, nil
	}

	switch cfg.Provider {
	case constants.PubSubProviderLocal:
		if cfg.LocalEndpoint == "" {
			return nil, errors.New("local endpoint is required for local provider")
		}
		logger.Info("Publishing events to local push endpoint", slog.String("endpoint", cfg.LocalEndpoint))

		return NewLocalHTTPPublisher(cfg.LocalEndpoint, logger), nil

	case constants.PubSubProviderGoogle:
		if cfg.ProjectID == "" {
			return nil, errors.New("project ID is required for google provider")
		}
		if cfg.PresenceTopicID == "" || cfg.AlertTopicID == "" {
			return nil, errors.New("presence and alert topic IDs are required for google provider")
		}
		logger.Info("Publishing events to Google Pub/Sub",
			slog.String("project_id", cfg.ProjectID),
			slog.String("presence_topic", cfg.PresenceTopicID),
			slog.String("alert_topic", cfg.AlertTopicID),
		)

		return NewGooglePubSubPublisher(ctx, cfg.ProjectID, cfg.PresenceTopicID, cfg.AlertTopicID, logger)

	default:
		return nil, errors.Errorf("unknown pubsub provider: %s", cfg.Provider)
	}
}

// noopPublisher drops events when publishing is disabled.
type noopPublisher struct {
	logger *slog.Logger
}

func (p *noopPublisher) PublishPresenceEvent(ctx context.Context, event *service.PresenceEvent) error {
	p.logger.DebugContext(ctx, "[NoopPubSub] Presence event dropped",
		slog.String("device_id", event.DeviceID),
		slog.Bool("is_online", event.IsOnline),
	)

	return nil
}

func (p *noopPublisher) PublishAlertEvent(ctx context.Context, event *service.AlertEvent) error {
	p.logger.DebugContext(ctx, "[NoopPubSub] Alert event dropped",
		slog.String("material_id", event.MaterialID),
		slog.String("alert_type", event.AlertType),
	)

	return nil
}

func (p *noopPublisher) Close() error {
	return nil
}
