package pubsub

import (
	"strconv"

	"screentrack/internal/domain/service"
)

const (
	attrEventType = "event_type"

	eventTypePresence = "presence"
	eventTypeAlert    = "alert"
)

// Attributes let subscribers filter without decoding the payload.
func presenceAttributes(event *service.PresenceEvent) map[string]string {
	attributes := map[string]string{
		attrEventType: eventTypePresence,
		"device_id":   event.DeviceID,
		"is_online":   strconv.FormatBool(event.IsOnline),
	}
	if event.MaterialID != "" {
		attributes["material_id"] = event.MaterialID
	}
	if event.RequestID != "" {
		attributes["request_id"] = event.RequestID
	}

	return attributes
}

func alertAttributes(event *service.AlertEvent) map[string]string {
	attributes := map[string]string{
		attrEventType: eventTypeAlert,
		"material_id": event.MaterialID,
		"alert_type":  event.AlertType,
		"severity":    event.Severity,
	}
	if event.RequestID != "" {
		attributes["request_id"] = event.RequestID
	}

	return attributes
}
