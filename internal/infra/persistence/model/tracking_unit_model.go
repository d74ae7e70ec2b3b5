package model

import (
	"time"

	"screentrack/internal/domain/entity"

	"gorm.io/datatypes"
)

// TrackingUnitModel is the GORM-specific struct for the 'tracking_units' table.
// The root status columns are kept alongside the JSONB documents so reconciliation can
// filter without decoding every row.
type TrackingUnitModel struct {
	MaterialID string `gorm:"type:varchar(64);primaryKey"`
	CarGroupID string `gorm:"type:varchar(64);index"`
	ScreenType string `gorm:"type:varchar(32)"`

	DeviceID   string    `gorm:"type:varchar(128);index"`
	SlotNumber int       `gorm:"not null;default:0;check:chk_slot_number,slot_number BETWEEN 0 AND 2"`
	IsOnline   bool      `gorm:"not null;default:false;index"`
	LastSeen   time.Time `gorm:"not null"`

	Slots          datatypes.JSONType[[entity.MaxSlots]entity.Slot] `gorm:"type:jsonb;not null"`
	CurrentSession datatypes.JSONType[*entity.Session]              `gorm:"type:jsonb"`
	DailySessions  datatypes.JSONSlice[entity.Session]              `gorm:"type:jsonb;not null"`
	Alerts         datatypes.JSONSlice[entity.Alert]                `gorm:"type:jsonb;not null"`

	TotalHoursOnline      float64 `gorm:"not null;default:0"`
	TotalDistanceTraveled float64 `gorm:"not null;default:0"`
	AverageDailyHours     float64 `gorm:"not null;default:0"`
	ComplianceRate        float64 `gorm:"not null;default:0"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (TrackingUnitModel) TableName() string {
	return "tracking_units"
}
