// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"encoding/json"

	"screentrack/internal/domain/entity"
	"screentrack/internal/domain/repository"
	"screentrack/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/plugin/dbresolver"
)

// trackingUnitRepository implements the repository.TrackingUnitRepository interface.
type trackingUnitRepository struct {
	db *gorm.DB
}

// NewTrackingUnitRepository is the constructor for trackingUnitRepository.
func NewTrackingUnitRepository(db *gorm.DB) repository.TrackingUnitRepository {
	return &trackingUnitRepository{
		db: db,
	}
}

// primary pins reads to the primary so a device sees its own registration immediately.
// Without configured replicas the clause is a no-op.
func (repo *trackingUnitRepository) primary(ctx context.Context) *gorm.DB {
	return repo.db.WithContext(ctx).Clauses(dbresolver.Write)
}

// FindByMaterialID retrieves the unit for a material.
func (repo *trackingUnitRepository) FindByMaterialID(ctx context.Context, materialID string) (*entity.TrackingUnit, error) {
	return repo.first(repo.primary(ctx).Where("material_id = ?", materialID), "failed to find tracking unit by material ID")
}

// LockByMaterialID retrieves the unit with SELECT ... FOR UPDATE.
func (repo *trackingUnitRepository) LockByMaterialID(ctx context.Context, materialID string) (*entity.TrackingUnit, error) {
	query := repo.primary(ctx).
		Clauses(clause.Locking{Strength: clause.LockingStrengthUpdate}).
		Where("material_id = ?", materialID)

	return repo.first(query, "failed to lock tracking unit")
}

// FindByDeviceID retrieves the unit whose slots contain deviceID, using JSONB containment.
func (repo *trackingUnitRepository) FindByDeviceID(ctx context.Context, deviceID string) (*entity.TrackingUnit, error) {
	containment, err := json.Marshal([]map[string]any{{"device": map[string]string{"deviceId": deviceID}}})
	if err != nil {
		return nil, errors.Wrap(err, "failed to build slot containment filter")
	}

	query := repo.primary(ctx).
		Where("slots @> ?::jsonb", string(containment)).
		Order("updated_at DESC")

	return repo.first(query, "failed to find tracking unit by device ID")
}

// FindAll retrieves every unit. It feeds reports only, so it may be served by a replica.
func (repo *trackingUnitRepository) FindAll(ctx context.Context) ([]*entity.TrackingUnit, error) {
	var unitModels []*model.TrackingUnitModel

	if err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Read).
		Order("material_id ASC").
		Find(&unitModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find tracking units")
	}

	return toTrackingUnitsDomain(unitModels), nil
}

// FindWithOpenActivity retrieves units that are online or hold an open session.
func (repo *trackingUnitRepository) FindWithOpenActivity(ctx context.Context) ([]*entity.TrackingUnit, error) {
	var unitModels []*model.TrackingUnitModel

	if err := repo.primary(ctx).
		Where("is_online = ? OR slots @> ?::jsonb OR current_session <> 'null'::jsonb",
			true, `[{"device":{"isOnline":true}}]`).
		Order("material_id ASC").
		Find(&unitModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find active tracking units")
	}

	return toTrackingUnitsDomain(unitModels), nil
}

// Save upserts the unit keyed by material id.
func (repo *trackingUnitRepository) Save(ctx context.Context, unit *entity.TrackingUnit) error {
	unitM := fromTrackingUnitDomain(unit)

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "material_id"}},
			UpdateAll: true,
		}).
		Create(unitM).Error; err != nil {
		return saveError(err)
	}

	return nil
}

func (repo *trackingUnitRepository) first(query *gorm.DB, wrapMsg string) (*entity.TrackingUnit, error) {
	var unitM model.TrackingUnitModel

	if err := query.First(&unitM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrTrackingUnitNotFound
		}

		return nil, errors.Wrap(err, wrapMsg)
	}

	return toTrackingUnitDomain(&unitM), nil
}

func toTrackingUnitsDomain(unitModels []*model.TrackingUnitModel) []*entity.TrackingUnit {
	units := make([]*entity.TrackingUnit, 0, len(unitModels))
	for _, unitM := range unitModels {
		units = append(units, toTrackingUnitDomain(unitM))
	}

	return units
}

func toTrackingUnitDomain(data *model.TrackingUnitModel) *entity.TrackingUnit {
	unit := &entity.TrackingUnit{
		MaterialID:            data.MaterialID,
		CarGroupID:            data.CarGroupID,
		ScreenType:            data.ScreenType,
		Slots:                 data.Slots.Data(),
		DeviceID:              data.DeviceID,
		SlotNumber:            data.SlotNumber,
		IsOnline:              data.IsOnline,
		LastSeen:              data.LastSeen,
		CurrentSession:        data.CurrentSession.Data(),
		DailySessions:         []entity.Session(data.DailySessions),
		TotalHoursOnline:      data.TotalHoursOnline,
		TotalDistanceTraveled: data.TotalDistanceTraveled,
		AverageDailyHours:     data.AverageDailyHours,
		ComplianceRate:        data.ComplianceRate,
		Alerts:                []entity.Alert(data.Alerts),
		CreatedAt:             data.CreatedAt,
		UpdatedAt:             data.UpdatedAt,
	}

	// Rows written before a slot was ever assigned may carry zero slot numbers.
	for i := range unit.Slots {
		unit.Slots[i].Number = i + 1
	}

	return unit
}

func fromTrackingUnitDomain(data *entity.TrackingUnit) *model.TrackingUnitModel {
	dailySessions := data.DailySessions
	if dailySessions == nil {
		dailySessions = []entity.Session{}
	}
	alerts := data.Alerts
	if alerts == nil {
		alerts = []entity.Alert{}
	}

	return &model.TrackingUnitModel{
		MaterialID:            data.MaterialID,
		CarGroupID:            data.CarGroupID,
		ScreenType:            data.ScreenType,
		DeviceID:              data.DeviceID,
		SlotNumber:            data.SlotNumber,
		IsOnline:              data.IsOnline,
		LastSeen:              data.LastSeen,
		Slots:                 datatypes.NewJSONType(data.Slots),
		CurrentSession:        datatypes.NewJSONType(data.CurrentSession),
		DailySessions:         datatypes.NewJSONSlice(dailySessions),
		Alerts:                datatypes.NewJSONSlice(alerts),
		TotalHoursOnline:      data.TotalHoursOnline,
		TotalDistanceTraveled: data.TotalDistanceTraveled,
		AverageDailyHours:     data.AverageDailyHours,
		ComplianceRate:        data.ComplianceRate,
		CreatedAt:             data.CreatedAt,
		UpdatedAt:             data.UpdatedAt,
	}
}
