package entity

import "time"

// StatusSource names the signal a verdict was derived from.
type StatusSource string

const (
	SourceWebSocket StatusSource = "websocket"
	SourceDatabase  StatusSource = "database"
	SourceTimeout   StatusSource = "timeout"
)

// Confidence ranks how much a verdict can be trusted.
type Confidence string

const (
	ConfidenceHigh   Confidence = "high"
	ConfidenceMedium Confidence = "medium"
	ConfidenceLow    Confidence = "low"
)

// StatusVerdict is the arbiter's online/offline determination for one device.
type StatusVerdict struct {
	DeviceID   string       `json:"deviceId"`
	IsOnline   bool         `json:"isOnline"`
	Source     StatusSource `json:"source"`
	Confidence Confidence   `json:"confidence"`
	LastSeen   time.Time    `json:"lastSeen"`
	ComputedAt time.Time    `json:"computedAt"`
}

// IsLive reports whether the verdict comes from a currently registered WebSocket.
func (v StatusVerdict) IsLive() bool {
	return v.IsOnline && v.Source == SourceWebSocket
}

// StatusSummary counts verdicts across all known devices.
type StatusSummary struct {
	Total        int                  `json:"total"`
	Online       int                  `json:"online"`
	Offline      int                  `json:"offline"`
	BySource     map[StatusSource]int `json:"bySource"`
	ByConfidence map[Confidence]int   `json:"byConfidence"`
}
