package service

import (
	"context"
)

// NotificationService defines the interface for push notification services
type NotificationService interface {
	// SendTopicNotification pushes a notification to every subscriber of topic
	SendTopicNotification(ctx context.Context, topic, title, body string, data map[string]string) error
}
