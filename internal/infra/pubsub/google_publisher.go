package pubsub

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"screentrack/internal/domain/service"

	"cloud.google.com/go/pubsub/v2"
	pubsubpb "cloud.google.com/go/pubsub/v2/apiv1/pubsubpb"
	"github.com/pkg/errors"
)

// googlePubSubPublisher implements EventPublisher using Google Cloud Pub/Sub,
// with one topic for presence and one for alerts
type googlePubSubPublisher struct {
	client   *pubsub.Client
	presence *pubsub.Publisher
	alerts   *pubsub.Publisher
	logger   *slog.Logger
}

// NewGooglePubSubPublisher creates a new Google Pub/Sub publisher
func NewGooglePubSubPublisher(ctx context.Context, projectID, presenceTopicID, alertTopicID string, logger *slog.Logger) (service.EventPublisher, error) {
	client, err := pubsub.NewClient(ctx, projectID)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	for _, topicID := range []string{presenceTopicID, alertTopicID} {
		topicPath := fmt.Sprintf("projects/%s/topics/%s", projectID, topicID)
		if _, err := client.TopicAdminClient.GetTopic(ctx, &pubsubpb.GetTopicRequest{Topic: topicPath}); err != nil {
			client.Close()

			return nil, errors.Wrapf(err, "failed to get topic %s", topicID)
		}
	}

	logger.Info("Google Pub/Sub publisher initialized",
		slog.String("project_id", projectID),
		slog.String("presence_topic_id", presenceTopicID),
		slog.String("alert_topic_id", alertTopicID),
	)

	return &googlePubSubPublisher{
		client:   client,
		presence: client.Publisher(presenceTopicID),
		alerts:   client.Publisher(alertTopicID),
		logger:   logger,
	}, nil
}

// PublishPresenceEvent publishes a presence event to the presence topic
func (p *googlePubSubPublisher) PublishPresenceEvent(ctx context.Context, event *service.PresenceEvent) error {
	return p.publish(ctx, p.presence, presenceAttributes(event), event)
}

// PublishAlertEvent publishes an alert event to the alert topic
func (p *googlePubSubPublisher) PublishAlertEvent(ctx context.Context, event *service.AlertEvent) error {
	return p.publish(ctx, p.alerts, alertAttributes(event), event)
}

func (p *googlePubSubPublisher) publish(ctx context.Context, publisher *pubsub.Publisher, attributes map[string]string, event any) error {
	data, err := json.Marshal(event)
	if err != nil {
		return errors.WithStack(err)
	}

	result := publisher.Publish(ctx, &pubsub.Message{
		Data:       data,
		Attributes: attributes,
	})

	serverID, err := result.Get(ctx)
	if err != nil {
		return errors.WithStack(err)
	}

	p.logger.Debug("[GooglePubSub] Event published",
		slog.String("event_type", attributes[attrEventType]),
		slog.String("server_id", serverID),
	)

	return nil
}

// Close releases Pub/Sub client resources
func (p *googlePubSubPublisher) Close() error {
	if p.presence != nil {
		p.presence.Stop()
	}
	if p.alerts != nil {
		p.alerts.Stop()
	}
	if p.client != nil {
		return errors.WithStack(p.client.Close())
	}

	return nil
}
