package impl

import (
	"context"
	"fmt"
	"log/slog"

	"screentrack/config"
	deliverycontext "screentrack/internal/delivery/context"
	"screentrack/internal/domain/entity"
	"screentrack/internal/domain/service"

	"github.com/google/uuid"
)

const defaultAlertTopic = "fleet-alerts"

// alertDispatcher fans committed alerts out to the event bus and, for urgent ones, the
// push topic. Delivery is best-effort.
type alertDispatcher struct {
	publisher service.EventPublisher
	notifier  service.NotificationService
	topic     string
	logger    *slog.Logger
}

func newAlertDispatcher(publisher service.EventPublisher, notifier service.NotificationService, cfg *config.FirebaseConfig, logger *slog.Logger) *alertDispatcher {
	topic := defaultAlertTopic
	if cfg != nil && cfg.AlertTopic != "" {
		topic = cfg.AlertTopic
	}

	return &alertDispatcher{
		publisher: publisher,
		notifier:  notifier,
		topic:     topic,
		logger:    logger,
	}
}

func (d *alertDispatcher) dispatch(ctx context.Context, materialID string, alerts []entity.Alert) {
	logger := deliverycontext.GetLoggerOrDefault(ctx, d.logger)

	for _, alert := range alerts {
		if d.publisher != nil {
			event := &service.AlertEvent{
				RequestID:  deliverycontext.GetRequestIDFromContext(ctx),
				EventID:    uuid.NewString(),
				MaterialID: materialID,
				AlertID:    alert.ID,
				AlertType:  string(alert.Type),
				Severity:   string(alert.Severity),
				Message:    alert.Message,
				RaisedAt:   alert.Timestamp,
			}
			if err := d.publisher.PublishAlertEvent(ctx, event); err != nil {
				logger.Warn("[Alerts] Failed to publish alert event",
					slog.String("materialId", materialID),
					slog.String("alertType", string(alert.Type)),
					slog.Any("error", err),
				)
			}
		}

		if d.notifier == nil || !alert.Severity.IsUrgent() {
			continue
		}
		data := map[string]string{
			"materialId": materialID,
			"alertId":    alert.ID,
			"alertType":  string(alert.Type),
			"severity":   string(alert.Severity),
		}
		title := fmt.Sprintf("%s alert on %s", alert.Severity, materialID)
		if err := d.notifier.SendTopicNotification(ctx, d.topic, title, alert.Message, data); err != nil {
			logger.Warn("[Alerts] Failed to push alert notification",
				slog.String("materialId", materialID),
				slog.String("alertType", string(alert.Type)),
				slog.Any("error", err),
			)
		}
	}
}
