package usecase

import (
	"context"
	"time"

	"screentrack/internal/domain/entity"

	"github.com/paulmach/orb/geojson"
)

// LocationInput is one GPS fix reported by a tablet
type LocationInput struct {
	Lat      float64 `json:"lat" validate:"gte=-90,lte=90"`
	Lng      float64 `json:"lng" validate:"gte=-180,lte=180"`
	Speed    float64 `json:"speed" validate:"gte=0"`
	Heading  float64 `json:"heading" validate:"gte=0,lte=360"`
	Accuracy float64 `json:"accuracy" validate:"gte=0"`
}

// LocationResult summarizes today's progress after a location update
type LocationResult struct {
	Accepted           bool      `json:"accepted"`
	CurrentHours       float64   `json:"currentHours"`
	HoursRemaining     float64   `json:"hoursRemaining"`
	IsCompliant        bool      `json:"isCompliant"`
	TotalDistanceToday float64   `json:"totalDistanceToday"`
	LastSeen           time.Time `json:"lastSeen"`
}

// RegisterDeviceInput binds a tablet to a slot on a material
type RegisterDeviceInput struct {
	DeviceID   string `json:"deviceId" validate:"required,max=128"`
	MaterialID string `json:"materialId" validate:"required,max=64"`
	SlotNumber int    `json:"slotNumber" validate:"required,min=1,max=2"`
	CarGroupID string `json:"carGroupId" validate:"max=64"`
	ScreenType string `json:"screenType" validate:"max=32"`
}

// UnregisterDeviceInput names the slot to release
type UnregisterDeviceInput struct {
	MaterialID string `json:"materialId" validate:"required,max=64"`
	SlotNumber int    `json:"slotNumber" validate:"required,min=1,max=2"`
	CarGroupID string `json:"carGroupId" validate:"max=64"`
}

// UnregisterResult reports whether a slot was released
type UnregisterResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// SlotCompliance is one tablet's line in a compliance report
type SlotCompliance struct {
	MaterialID       string                  `json:"materialId"`
	CarGroupID       string                  `json:"carGroupId,omitempty"`
	SlotNumber       int                     `json:"slotNumber"`
	DeviceID         string                  `json:"deviceId"`
	IsOnline         bool                    `json:"isOnline"`
	HoursOnline      float64                 `json:"hoursOnline"`
	DistanceTraveled float64                 `json:"distanceTraveled"`
	ComplianceStatus entity.ComplianceStatus `json:"complianceStatus"`
	IsCompliant      bool                    `json:"isCompliant"`
	LastSeen         time.Time               `json:"lastSeen"`
}

// ComplianceReport aggregates one calendar day across the fleet
type ComplianceReport struct {
	Date             string           `json:"date"`
	TotalTablets     int              `json:"totalTablets"`
	OnlineTablets    int              `json:"onlineTablets"`
	CompliantTablets int              `json:"compliantTablets"`
	AverageHours     float64          `json:"averageHours"`
	AverageDistance  float64          `json:"averageDistance"`
	PerSlotBreakdown []SlotCompliance `json:"perSlotBreakdown"`
}

// SessionTracker is the part of the telemetry engine the presence gateway drives
type SessionTracker interface {
	// HandleConnect marks the device's slot online and opens today's session. A non-empty
	// materialID registers an unknown device on that material first.
	HandleConnect(ctx context.Context, deviceID, materialID string) error

	// HandleDisconnect marks the device's slot offline
	HandleDisconnect(ctx context.Context, deviceID string) error

	// UpdateLocation appends a fix for a live device; fixes from devices that are not live
	// are acknowledged without being recorded
	UpdateLocation(ctx context.Context, deviceID string, input *LocationInput) (*LocationResult, error)
}

// TelemetryUsecase converts presence and location events into sessions, compliance, and alerts
type TelemetryUsecase interface {
	SessionTracker

	// RegisterDevice binds a device to a slot, creating the tracking unit if needed
	RegisterDevice(ctx context.Context, input *RegisterDeviceInput) (*entity.TrackingUnit, error)

	// UnregisterDevice marks a slot offline without deleting the unit
	UnregisterDevice(ctx context.Context, input *UnregisterDeviceInput) (*UnregisterResult, error)

	// RecordHeartbeat refreshes the device's last sighting
	RecordHeartbeat(ctx context.Context, deviceID string) error

	// StartDailySession opens today's session if none is open
	StartDailySession(ctx context.Context, materialID string) (*entity.TrackingUnit, error)

	// EndDailySession closes the open session and scores it
	EndDailySession(ctx context.Context, materialID string) (*entity.Session, error)

	// AddAlert raises an alert unless an equivalent one is still fresh
	AddAlert(ctx context.Context, materialID string, alertType entity.AlertType, message string, severity entity.AlertSeverity) (*entity.Alert, error)

	// ResolveAlert marks an alert resolved
	ResolveAlert(ctx context.Context, materialID, alertID string) error

	// GetTrackingUnit returns the unit for a material
	GetTrackingUnit(ctx context.Context, materialID string) (*entity.TrackingUnit, error)

	// GetLocationTrail returns today's trail as a GeoJSON LineString feature
	GetLocationTrail(ctx context.Context, materialID string) (*geojson.Feature, error)

	// GetComplianceReport aggregates the given day; a zero date means today
	GetComplianceReport(ctx context.Context, date time.Time) (*ComplianceReport, error)
}
