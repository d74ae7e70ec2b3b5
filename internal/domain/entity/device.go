// Package entity contains the core business objects of the project.
package entity

import "time"

// DeviceConnection is the gateway's ephemeral record of one live WebSocket.
type DeviceConnection struct {
	DeviceID    string    `json:"deviceId"`
	MaterialID  string    `json:"materialId,omitempty"`
	ConnectedAt time.Time `json:"connectedAt"`
	LastPong    time.Time `json:"lastPong"`
}

// SlotDevice is the tablet currently mounted in a slot.
type SlotDevice struct {
	DeviceID              string         `json:"deviceId"`
	IsOnline              bool           `json:"isOnline"`
	OnlineSince           *time.Time     `json:"onlineSince,omitempty"` // Start of the current online interval.
	LastSeen              time.Time      `json:"lastSeen"`
	RegisteredAt          time.Time      `json:"registeredAt"`
	CurrentLocation       *LocationPoint `json:"currentLocation,omitempty"`
	TotalHoursOnline      float64        `json:"totalHoursOnline"`
	TotalDistanceTraveled float64        `json:"totalDistanceTraveled"` // Kilometers.
}

// Slot is one of the two mounting positions on a tracking unit.
// A nil Device means the slot is unoccupied.
type Slot struct {
	Number int         `json:"slotNumber"`
	Device *SlotDevice `json:"device"`
}

// IsEmpty reports whether no device is mounted in the slot.
func (s *Slot) IsEmpty() bool {
	return s.Device == nil
}

// IsOnline reports whether the slot holds a device that is online.
func (s *Slot) IsOnline() bool {
	return s.Device != nil && s.Device.IsOnline
}

// ValidSlotNumber reports whether n names a physical slot.
func ValidSlotNumber(n int) bool {
	return n >= 1 && n <= MaxSlots
}
