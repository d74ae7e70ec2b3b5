package pubsub

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	deliverycontext "screentrack/internal/delivery/context"
	"screentrack/internal/domain/service"

	"github.com/pkg/errors"
)

const (
	localPushTimeout = 10 * time.Second

	localPresenceSubscription = "projects/local/subscriptions/presence-sub"
	localAlertSubscription    = "projects/local/subscriptions/alert-sub"
)

// PushEnvelope is the body Google Pub/Sub POSTs to push subscribers. The local publisher
// sends the same shape so consumers can be developed without the emulator.
type PushEnvelope struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

type localHTTPPublisher struct {
	endpoint   string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewLocalHTTPPublisher pushes every event straight to endpoint.
func NewLocalHTTPPublisher(endpoint string, logger *slog.Logger) service.EventPublisher {
	return &localHTTPPublisher{
		endpoint:   endpoint,
		httpClient: &http.Client{Timeout: localPushTimeout},
		logger:     logger,
	}
}

func (p *localHTTPPublisher) PublishPresenceEvent(ctx context.Context, event *service.PresenceEvent) error {
	envelope, err := newPushEnvelope(localPresenceSubscription, event.EventID, event.OccurredAt, presenceAttributes(event), event)
	if err != nil {
		return err
	}

	return p.push(ctx, event.RequestID, envelope)
}

func (p *localHTTPPublisher) PublishAlertEvent(ctx context.Context, event *service.AlertEvent) error {
	envelope, err := newPushEnvelope(localAlertSubscription, event.EventID, event.RaisedAt, alertAttributes(event), event)
	if err != nil {
		return err
	}

	return p.push(ctx, event.RequestID, envelope)
}

func newPushEnvelope(subscription, messageID string, at time.Time, attributes map[string]string, event any) (*PushEnvelope, error) {
	data, err := json.Marshal(event)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode event")
	}
	if at.IsZero() {
		at = time.Now()
	}

	envelope := &PushEnvelope{Subscription: subscription}
	envelope.Message.Data = base64.StdEncoding.EncodeToString(data)
	envelope.Message.Attributes = attributes
	envelope.Message.MessageID = messageID
	envelope.Message.PublishTime = at.UTC().Format(time.RFC3339Nano)

	return envelope, nil
}

func (p *localHTTPPublisher) push(ctx context.Context, requestID string, envelope *PushEnvelope) error {
	body, err := json.Marshal(envelope)
	if err != nil {
		return errors.WithStack(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.endpoint, bytes.NewReader(body))
	if err != nil {
		return errors.WithStack(err)
	}
	req.Header.Set("Content-Type", "application/json")
	if requestID != "" {
		req.Header.Set(deliverycontext.HeaderXRequestID, requestID)
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return errors.Wrap(err, "local push failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return errors.Errorf("local endpoint returned non-success status: %d", resp.StatusCode)
	}

	p.logger.DebugContext(ctx, "[LocalPubSub] Event pushed",
		slog.String("subscription", envelope.Subscription),
		slog.String("event_id", envelope.Message.MessageID),
		slog.String("event_type", envelope.Message.Attributes[attrEventType]),
	)

	return nil
}

func (p *localHTTPPublisher) Close() error {
	p.httpClient.CloseIdleConnections()

	return nil
}
