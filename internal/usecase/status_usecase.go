package usecase

import (
	"time"

	"screentrack/internal/domain/entity"
)

// StatusUsecase arbitrates one online/offline verdict per device from WebSocket
// connections and database heartbeats. No method blocks.
type StatusUsecase interface {
	// SetWebSocketStatus records a gateway connect or disconnect
	SetWebSocketStatus(deviceID string, isConnected bool, at time.Time)

	// SetDatabaseStatus records a heartbeat reported through the persistent store
	SetDatabaseStatus(deviceID string, isOnline bool, at time.Time)

	// GetStatus returns the current verdict for a device
	GetStatus(deviceID string) entity.StatusVerdict

	// GetAllStatuses returns the verdict for every known device, ordered by device id
	GetAllStatuses() []entity.StatusVerdict

	// Summary counts verdicts by source and confidence
	Summary() entity.StatusSummary

	// Forget drops a device that has no connection and no recent heartbeat.
	// It reports whether anything was removed.
	Forget(deviceID string) bool
}
