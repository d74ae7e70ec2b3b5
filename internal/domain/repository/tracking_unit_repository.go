// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"screentrack/internal/domain/entity"

	"github.com/pkg/errors"
)

// ErrTrackingUnitNotFound is returned when no tracking unit matches the lookup.
var ErrTrackingUnitNotFound = errors.New("tracking unit not found")

// TrackingUnitRepository defines the persistence operations for tracking units.
type TrackingUnitRepository interface {
	// FindByMaterialID retrieves the unit for a material.
	FindByMaterialID(ctx context.Context, materialID string) (*entity.TrackingUnit, error)

	// LockByMaterialID retrieves the unit and holds a row lock until the surrounding
	// transaction ends. Only meaningful inside TransactionManager.Execute.
	LockByMaterialID(ctx context.Context, materialID string) (*entity.TrackingUnit, error)

	// FindByDeviceID retrieves the unit whose slots hold deviceID.
	FindByDeviceID(ctx context.Context, deviceID string) (*entity.TrackingUnit, error)

	// FindAll retrieves every unit.
	FindAll(ctx context.Context) ([]*entity.TrackingUnit, error)

	// FindWithOpenActivity retrieves units that are online or still have an open session,
	// the only candidates for reconciliation.
	FindWithOpenActivity(ctx context.Context) ([]*entity.TrackingUnit, error)

	// Save upserts the whole unit keyed by material id.
	Save(ctx context.Context, unit *entity.TrackingUnit) error
}
