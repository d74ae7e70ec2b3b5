package service

import (
	"context"
	"time"
)

// PresenceEvent announces a device connecting to or leaving the gateway.
type PresenceEvent struct {
	RequestID  string    `json:"request_id,omitempty"` // For distributed tracing
	EventID    string    `json:"event_id"`
	DeviceID   string    `json:"device_id"`
	MaterialID string    `json:"material_id,omitempty"`
	IsOnline   bool      `json:"is_online"`
	Source     string    `json:"source"`
	OccurredAt time.Time `json:"occurred_at"`
}

// AlertEvent carries a newly raised tracking-unit alert.
type AlertEvent struct {
	RequestID  string    `json:"request_id,omitempty"`
	EventID    string    `json:"event_id"`
	MaterialID string    `json:"material_id"`
	AlertID    string    `json:"alert_id"`
	AlertType  string    `json:"alert_type"`
	Severity   string    `json:"severity"`
	Message    string    `json:"message"`
	RaisedAt   time.Time `json:"raised_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishPresenceEvent publishes a connect or disconnect for downstream consumers
	PublishPresenceEvent(ctx context.Context, event *PresenceEvent) error

	// PublishAlertEvent publishes a newly raised alert
	PublishAlertEvent(ctx context.Context, event *AlertEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
