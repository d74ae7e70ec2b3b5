package impl

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"screentrack/config"
	deliverycontext "screentrack/internal/delivery/context"
	"screentrack/internal/domain/constants"
	"screentrack/internal/domain/entity"
	domainerrors "screentrack/internal/domain/errors"
	"screentrack/internal/domain/repository"
	"screentrack/internal/domain/service"
	"screentrack/internal/usecase"
	"screentrack/internal/util"

	"github.com/jonboulle/clockwork"
	"github.com/moby/locker"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	defaultTimezone = "Asia/Manila"
	geocodeTimeout  = 3 * time.Second
)

// unitCommand mutates a cloned unit and reports what must be persisted.
type unitCommand func(unit *entity.TrackingUnit, now time.Time) (entity.Outcome, error)

// telemetryService implements usecase.TelemetryUsecase.
type telemetryService struct {
	txManager repository.TransactionManager
	unitRepo  repository.TrackingUnitRepository
	status    usecase.StatusUsecase
	geocoder  service.Geocoder
	alerts    *alertDispatcher
	clock     clockwork.Clock
	policy    entity.Policy
	locks     *locker.Locker
	logger    *slog.Logger
}

// TelemetryServiceParams holds dependencies for TelemetryService, injected by Fx.
type TelemetryServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	UnitRepo  repository.TrackingUnitRepository
	Status    usecase.StatusUsecase
	Publisher service.EventPublisher
	Notifier  service.NotificationService `optional:"true"`
	Geocoder  service.Geocoder
	Clock     clockwork.Clock
	Config    *config.Config
	Logger    *slog.Logger
}

// NewTelemetryService is the constructor for telemetryService.
func NewTelemetryService(params TelemetryServiceParams) (usecase.TelemetryUsecase, error) {
	policy, err := NewPolicy(params.Config.Telemetry)
	if err != nil {
		return nil, err
	}

	return &telemetryService{
		txManager: params.TxManager,
		unitRepo:  params.UnitRepo,
		status:    params.Status,
		geocoder:  params.Geocoder,
		alerts:    newAlertDispatcher(params.Publisher, params.Notifier, params.Config.Firebase, params.Logger),
		clock:     params.Clock,
		policy:    policy,
		locks:     locker.New(),
		logger:    params.Logger,
	}, nil
}

// NewPolicy builds the aggregate policy from configuration, falling back to defaults.
func NewPolicy(cfg *config.TelemetryConfig) (entity.Policy, error) {
	policy := entity.DefaultPolicy()
	timezone := defaultTimezone

	if cfg != nil {
		if cfg.TargetHours > 0 {
			policy.TargetHours = cfg.TargetHours
		}
		if cfg.MaxLocationHistory > 0 {
			policy.MaxLocationHistory = cfg.MaxLocationHistory
		}
		if cfg.MaxAlerts > 0 {
			policy.MaxAlerts = cfg.MaxAlerts
		}
		if cfg.LowAccuracyMeters > 0 {
			policy.LowAccuracyMeters = cfg.LowAccuracyMeters
		}
		if cfg.AlertSuppressionWindow > 0 {
			policy.AlertSuppressionWindow = cfg.AlertSuppressionWindow
		}
		if cfg.ComplianceWindowDays > 0 {
			policy.ComplianceWindowDays = cfg.ComplianceWindowDays
		}
		if cfg.Timezone != "" {
			timezone = cfg.Timezone
		}
	}

	location, err := time.LoadLocation(timezone)
	if err != nil {
		return entity.Policy{}, errors.Wrapf(err, "invalid telemetry timezone %q", timezone)
	}
	policy.Location = location

	return policy, nil
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (s *telemetryService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// mutate runs cmd against materialID's unit under the per-material lock and a row lock,
// rolling the session over first. Nothing is written unless the outcome is dirty.
// create, when non-nil, builds the unit if it does not exist yet.
func (s *telemetryService) mutate(ctx context.Context, materialID string, create func(now time.Time) *entity.TrackingUnit, cmd unitCommand) (*entity.TrackingUnit, entity.Outcome, error) {
	s.locks.Lock(materialID)
	defer func() { _ = s.locks.Unlock(materialID) }()

	now := s.clock.Now()

	var (
		result  *entity.TrackingUnit
		outcome entity.Outcome
	)
	err := s.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		repo := repoFactory.NewTrackingUnitRepository()
		outcome = entity.Outcome{}

		loaded, err := repo.LockByMaterialID(ctx, materialID)
		switch {
		case errors.Is(err, repository.ErrTrackingUnitNotFound) && create != nil:
			loaded = create(now)
			outcome.Dirty = true
		case err != nil:
			return mapRepositoryError(err)
		}

		unit := loaded.Clone()
		outcome.Merge(unit.ResetIfNewDay(now, s.policy))

		out, err := cmd(unit, now)
		if err != nil {
			return err
		}
		outcome.Merge(out)

		if outcome.Dirty {
			if err := repo.Save(ctx, unit); err != nil {
				return err
			}
		}
		result = unit

		return nil
	})
	if err != nil {
		return nil, entity.Outcome{}, err
	}

	s.alerts.dispatch(ctx, materialID, outcome.NewAlerts)

	return result, outcome, nil
}

// mutateByDevice resolves the unit holding deviceID and runs cmd on it.
func (s *telemetryService) mutateByDevice(ctx context.Context, deviceID string, cmd unitCommand) (*entity.TrackingUnit, entity.Outcome, error) {
	located, err := s.unitRepo.FindByDeviceID(ctx, deviceID)
	if err != nil {
		if errors.Is(err, repository.ErrTrackingUnitNotFound) {
			return nil, entity.Outcome{}, domainerrors.ErrDeviceNotRegistered
		}

		return nil, entity.Outcome{}, mapRepositoryError(err)
	}

	return s.mutate(ctx, located.MaterialID, nil, cmd)
}

// HandleConnect marks the device online, registering it on materialID when it is new there.
func (s *telemetryService) HandleConnect(ctx context.Context, deviceID, materialID string) error {
	connect := func(unit *entity.TrackingUnit, now time.Time) (entity.Outcome, error) {
		var outcome entity.Outcome
		if unit.SlotByDevice(deviceID) == nil {
			assigned, err := unit.AssignSlot(deviceID, entity.AutoSlot, now, s.policy)
			if err != nil {
				return outcome, err
			}
			outcome.Merge(assigned)
		}

		online, err := unit.MarkDeviceOnline(deviceID, now)
		if err != nil {
			return outcome, err
		}
		outcome.Merge(online)
		outcome.Merge(unit.StartSession(now, s.policy))

		return outcome, nil
	}

	var err error
	if materialID != "" {
		_, _, err = s.mutate(ctx, materialID, func(now time.Time) *entity.TrackingUnit {
			return entity.NewTrackingUnit(materialID, "", "", now)
		}, connect)
	} else {
		_, _, err = s.mutateByDevice(ctx, deviceID, connect)
		if errors.Is(err, domainerrors.ErrDeviceNotRegistered) {
			s.log(ctx).Debug("[Telemetry] Connect from unregistered device, presence only", slog.String("deviceId", deviceID))

			return nil
		}
	}
	if err != nil {
		s.log(ctx).Warn("[Telemetry] Failed to start tracking on connect",
			slog.String("deviceId", deviceID),
			slog.String("materialId", materialID),
			slog.Any("error", err),
		)

		return err
	}

	return nil
}

// HandleDisconnect marks the device's slot offline. The session stays open.
func (s *telemetryService) HandleDisconnect(ctx context.Context, deviceID string) error {
	_, _, err := s.mutateByDevice(ctx, deviceID, func(unit *entity.TrackingUnit, now time.Time) (entity.Outcome, error) {
		return unit.MarkDeviceOffline(deviceID, now)
	})
	if errors.Is(err, domainerrors.ErrDeviceNotRegistered) {
		return nil
	}
	if err != nil {
		s.log(ctx).Warn("[Telemetry] Failed to stop tracking on disconnect",
			slog.String("deviceId", deviceID),
			slog.Any("error", err),
		)

		return err
	}

	return nil
}

// UpdateLocation records a fix from a live device. Fixes from devices the arbiter does not
// attribute to a live WebSocket are acknowledged and dropped.
func (s *telemetryService) UpdateLocation(ctx context.Context, deviceID string, input *usecase.LocationInput) (*usecase.LocationResult, error) {
	verdict := s.status.GetStatus(deviceID)
	if !verdict.IsLive() {
		s.log(ctx).Debug("[Telemetry] Location ignored, device not live",
			slog.String("deviceId", deviceID),
			slog.String("source", string(verdict.Source)),
		)

		return &usecase.LocationResult{Accepted: false, LastSeen: verdict.LastSeen}, nil
	}

	now := s.clock.Now()
	point := entity.LocationPoint{
		Lat:       input.Lat,
		Lng:       input.Lng,
		Speed:     input.Speed,
		Heading:   input.Heading,
		Accuracy:  input.Accuracy,
		Timestamp: now,
	}
	if !point.IsDegenerate() {
		point.Address = s.resolveAddress(ctx, point)
	}

	unit, _, err := s.mutateByDevice(ctx, deviceID, func(unit *entity.TrackingUnit, now time.Time) (entity.Outcome, error) {
		outcome := unit.StartSession(now, s.policy)
		recorded, err := unit.RecordLocation(deviceID, point, now, s.policy)
		if err != nil {
			return outcome, err
		}
		outcome.Merge(recorded)

		return outcome, nil
	})
	if err != nil {
		return nil, err
	}

	return s.locationResult(unit, deviceID, s.clock.Now()), nil
}

func (s *telemetryService) resolveAddress(ctx context.Context, point entity.LocationPoint) string {
	if s.geocoder == nil {
		return util.FormatCoordinate(point.Lat, point.Lng)
	}

	geoCtx, cancel := context.WithTimeout(ctx, geocodeTimeout)
	defer cancel()

	address, err := s.geocoder.ReverseGeocode(geoCtx, point.Lat, point.Lng)
	if err != nil || address == "" {
		s.log(ctx).Debug("[Telemetry] Reverse geocoding failed, using coordinates", slog.Any("error", err))

		return util.FormatCoordinate(point.Lat, point.Lng)
	}

	return address
}

func (s *telemetryService) locationResult(unit *entity.TrackingUnit, deviceID string, now time.Time) *usecase.LocationResult {
	result := &usecase.LocationResult{Accepted: true, LastSeen: unit.LastSeen}
	if slot := unit.SlotByDevice(deviceID); slot != nil {
		result.LastSeen = slot.Device.LastSeen
	}

	session := unit.CurrentSession
	if session == nil {
		result.HoursRemaining = s.policy.TargetHours

		return result
	}

	hours := session.HoursAt(now)
	result.CurrentHours = util.RoundTo(hours, 2)
	result.HoursRemaining = util.RoundTo(max(session.TargetHours-hours, 0), 2)
	result.IsCompliant = session.IsCompliantAt(now)
	result.TotalDistanceToday = util.RoundTo(session.TotalDistanceTraveled, 3)

	return result
}

// RegisterDevice binds a device to an explicit slot, creating the unit on first use.
func (s *telemetryService) RegisterDevice(ctx context.Context, input *usecase.RegisterDeviceInput) (*entity.TrackingUnit, error) {
	if !entity.ValidSlotNumber(input.SlotNumber) {
		return nil, domainerrors.ErrInvalidSlotNumber
	}

	live := s.status.GetStatus(input.DeviceID).IsLive()

	unit, _, err := s.mutate(ctx, input.MaterialID, func(now time.Time) *entity.TrackingUnit {
		return entity.NewTrackingUnit(input.MaterialID, input.CarGroupID, input.ScreenType, now)
	}, func(unit *entity.TrackingUnit, now time.Time) (entity.Outcome, error) {
		var outcome entity.Outcome
		if input.CarGroupID != "" && unit.CarGroupID != input.CarGroupID {
			unit.CarGroupID = input.CarGroupID
			outcome.Dirty = true
		}
		if input.ScreenType != "" && unit.ScreenType != input.ScreenType {
			unit.ScreenType = input.ScreenType
			outcome.Dirty = true
		}

		assigned, err := unit.AssignSlot(input.DeviceID, input.SlotNumber, now, s.policy)
		if err != nil {
			return outcome, err
		}
		outcome.Merge(assigned)

		// The tablet may have connected before it was registered here.
		if live {
			online, err := unit.MarkDeviceOnline(input.DeviceID, now)
			if err != nil {
				return outcome, err
			}
			outcome.Merge(online)
		}
		outcome.Merge(unit.StartSession(now, s.policy))

		return outcome, nil
	})
	if err != nil {
		s.log(ctx).Warn("[Telemetry] Device registration failed",
			slog.String("deviceId", input.DeviceID),
			slog.String("materialId", input.MaterialID),
			slog.Int("slotNumber", input.SlotNumber),
			slog.Any("error", err),
		)

		return nil, err
	}

	s.log(ctx).Info("[Telemetry] Device registered",
		slog.String("deviceId", input.DeviceID),
		slog.String("materialId", input.MaterialID),
		slog.Int("slotNumber", input.SlotNumber),
	)

	return unit, nil
}

// UnregisterDevice marks a slot offline. An empty slot is reported, not treated as an error.
func (s *telemetryService) UnregisterDevice(ctx context.Context, input *usecase.UnregisterDeviceInput) (*usecase.UnregisterResult, error) {
	if !entity.ValidSlotNumber(input.SlotNumber) {
		return nil, domainerrors.ErrInvalidSlotNumber
	}

	result := &usecase.UnregisterResult{}
	_, _, err := s.mutate(ctx, input.MaterialID, nil, func(unit *entity.TrackingUnit, now time.Time) (entity.Outcome, error) {
		slot := unit.SlotByNumber(input.SlotNumber)
		if slot.IsEmpty() {
			result.Message = fmt.Sprintf("Slot %d on %s has no device", input.SlotNumber, input.MaterialID)

			return entity.Outcome{}, nil
		}

		deviceID := slot.Device.DeviceID
		outcome, err := unit.ReleaseSlot(input.SlotNumber, now)
		if err != nil {
			return outcome, err
		}
		result.Success = true
		result.Message = fmt.Sprintf("Device %s in slot %d marked offline", deviceID, input.SlotNumber)

		return outcome, nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

// RecordHeartbeat refreshes lastSeen and then registers a database heartbeat with the
// arbiter. A device that is not mounted on any unit leaves the arbiter untouched.
func (s *telemetryService) RecordHeartbeat(ctx context.Context, deviceID string) error {
	var seenAt time.Time
	_, _, err := s.mutateByDevice(ctx, deviceID, func(unit *entity.TrackingUnit, now time.Time) (entity.Outcome, error) {
		seenAt = now

		return unit.Touch(deviceID, now)
	})
	if err != nil {
		return err
	}
	s.status.SetDatabaseStatus(deviceID, true, seenAt)

	return nil
}

// StartDailySession opens today's session if none is open.
func (s *telemetryService) StartDailySession(ctx context.Context, materialID string) (*entity.TrackingUnit, error) {
	unit, _, err := s.mutate(ctx, materialID, nil, func(unit *entity.TrackingUnit, now time.Time) (entity.Outcome, error) {
		return unit.StartSession(now, s.policy), nil
	})

	return unit, err
}

// EndDailySession closes and scores the open session.
func (s *telemetryService) EndDailySession(ctx context.Context, materialID string) (*entity.Session, error) {
	_, outcome, err := s.mutate(ctx, materialID, nil, func(unit *entity.TrackingUnit, now time.Time) (entity.Outcome, error) {
		return unit.EndSession(now, s.policy)
	})
	if err != nil {
		return nil, err
	}
	if len(outcome.ClosedSessions) == 0 {
		return nil, domainerrors.ErrNoActiveSession
	}
	closed := outcome.ClosedSessions[len(outcome.ClosedSessions)-1]

	s.log(ctx).Info("[Telemetry] Session closed",
		slog.String("materialId", materialID),
		slog.Float64("hours", util.RoundTo(closed.TotalHoursOnline, 2)),
		slog.String("status", string(closed.ComplianceStatus)),
	)

	return &closed, nil
}

// AddAlert raises an alert. A suppressed duplicate returns a nil alert and no error.
func (s *telemetryService) AddAlert(ctx context.Context, materialID string, alertType entity.AlertType, message string, severity entity.AlertSeverity) (*entity.Alert, error) {
	var raised *entity.Alert
	_, _, err := s.mutate(ctx, materialID, nil, func(unit *entity.TrackingUnit, now time.Time) (entity.Outcome, error) {
		alert, ok := unit.AddAlert(alertType, message, severity, now, s.policy)
		if !ok {
			return entity.Outcome{}, nil
		}
		raised = &alert

		return entity.Outcome{Dirty: true, NewAlerts: []entity.Alert{alert}}, nil
	})
	if err != nil {
		return nil, err
	}

	return raised, nil
}

// ResolveAlert marks an alert resolved.
func (s *telemetryService) ResolveAlert(ctx context.Context, materialID, alertID string) error {
	_, _, err := s.mutate(ctx, materialID, nil, func(unit *entity.TrackingUnit, now time.Time) (entity.Outcome, error) {
		return unit.ResolveAlert(alertID, now)
	})

	return err
}

// GetTrackingUnit returns the persisted unit.
func (s *telemetryService) GetTrackingUnit(ctx context.Context, materialID string) (*entity.TrackingUnit, error) {
	unit, err := s.unitRepo.FindByMaterialID(ctx, materialID)
	if err != nil {
		return nil, mapRepositoryError(err)
	}

	return unit, nil
}

// GetLocationTrail returns today's breadcrumb trail as a GeoJSON LineString feature.
func (s *telemetryService) GetLocationTrail(ctx context.Context, materialID string) (*geojson.Feature, error) {
	unit, err := s.GetTrackingUnit(ctx, materialID)
	if err != nil {
		return nil, err
	}

	line := orb.LineString{}
	feature := geojson.NewFeature(line)
	feature.Properties["materialId"] = unit.MaterialID
	feature.Properties["distanceKm"] = 0.0

	session := unit.CurrentSession
	if session == nil {
		return feature, nil
	}

	for _, point := range session.LocationHistory {
		line = append(line, point.Point())
	}
	feature.Geometry = line
	feature.Properties["date"] = session.Date.Format(constants.DateLayout)
	feature.Properties["distanceKm"] = util.RoundTo(session.TotalDistanceTraveled, 3)
	feature.Properties["points"] = len(line)
	if len(session.LocationHistory) > 0 {
		feature.Properties["startedAt"] = session.LocationHistory[0].Timestamp
		feature.Properties["endedAt"] = session.LocationHistory[len(session.LocationHistory)-1].Timestamp
	}

	return feature, nil
}

func mapRepositoryError(err error) error {
	if errors.Is(err, repository.ErrTrackingUnitNotFound) {
		return domainerrors.ErrTrackingUnitNotFound
	}

	return err
}
