package entity

import "time"

// AlertType classifies compliance and health alerts.
type AlertType string

const (
	AlertLowHours      AlertType = "LOW_HOURS"
	AlertLowAccuracy   AlertType = "LOW_ACCURACY"
	AlertDeviceOffline AlertType = "DEVICE_OFFLINE"
	AlertSlotEvicted   AlertType = "SLOT_EVICTED"
)

// AlertSeverity ranks alerts for notification routing.
type AlertSeverity string

const (
	SeverityLow      AlertSeverity = "LOW"
	SeverityMedium   AlertSeverity = "MEDIUM"
	SeverityHigh     AlertSeverity = "HIGH"
	SeverityCritical AlertSeverity = "CRITICAL"
)

// IsUrgent reports whether the severity warrants a push notification.
func (s AlertSeverity) IsUrgent() bool {
	return s == SeverityHigh || s == SeverityCritical
}

// Alert is a compliance or health notice attached to a tracking unit.
type Alert struct {
	ID         string        `json:"id"`
	Type       AlertType     `json:"type"`
	Message    string        `json:"message"`
	Severity   AlertSeverity `json:"severity"`
	Timestamp  time.Time     `json:"timestamp"`
	IsResolved bool          `json:"isResolved"`
	ResolvedAt *time.Time    `json:"resolvedAt,omitempty"`
}
