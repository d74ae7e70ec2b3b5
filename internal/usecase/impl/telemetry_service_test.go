package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"screentrack/config"
	"screentrack/internal/domain/entity"
	domainerrors "screentrack/internal/domain/errors"
	"screentrack/internal/domain/repository"
	"screentrack/internal/domain/service"
	mockRepo "screentrack/internal/mocks/repository"
	mockService "screentrack/internal/mocks/service"
	"screentrack/internal/usecase"

	"github.com/jonboulle/clockwork"
	"github.com/paulmach/orb"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const (
	testMaterialID = "MAT-001"
	testDeviceA    = "tab-a"
	testDeviceB    = "tab-b"
)

// telemetryServiceFixtures holds all test dependencies for telemetry service tests.
type telemetryServiceFixtures struct {
	service     usecase.TelemetryUsecase
	txManager   *mockRepo.MockTransactionManager
	repoFactory *mockRepo.MockRepositoryFactory
	unitRepo    *mockRepo.MockTrackingUnitRepository
	publisher   *mockService.MockEventPublisher
	notifier    *mockService.MockNotificationService
	geocoder    *mockService.MockGeocoder
	status      usecase.StatusUsecase
	clock       *clockwork.FakeClock
	policy      entity.Policy
}

func createTestTelemetryService(t *testing.T) telemetryServiceFixtures {
	t.Helper()

	fakeClock := clockwork.NewFakeClockAt(arbiterEpoch)
	cfg := &config.Config{
		Telemetry: &config.TelemetryConfig{Timezone: "UTC"},
		Firebase:  &config.FirebaseConfig{AlertTopic: "ops-alerts"},
	}

	fixtures := telemetryServiceFixtures{
		txManager:   mockRepo.NewMockTransactionManager(t),
		repoFactory: mockRepo.NewMockRepositoryFactory(t),
		unitRepo:    mockRepo.NewMockTrackingUnitRepository(t),
		publisher:   mockService.NewMockEventPublisher(t),
		notifier:    mockService.NewMockNotificationService(t),
		geocoder:    mockService.NewMockGeocoder(t),
		status:      NewStatusArbiter(StatusArbiterParams{Config: cfg, Clock: fakeClock}),
		clock:       fakeClock,
	}

	fixtures.txManager.EXPECT().
		Execute(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(fixtures.repoFactory)
		}).
		Maybe()
	fixtures.repoFactory.EXPECT().
		NewTrackingUnitRepository().
		Return(fixtures.unitRepo).
		Maybe()

	svc, err := NewTelemetryService(TelemetryServiceParams{
		TxManager: fixtures.txManager,
		UnitRepo:  fixtures.unitRepo,
		Status:    fixtures.status,
		Publisher: fixtures.publisher,
		Notifier:  fixtures.notifier,
		Geocoder:  fixtures.geocoder,
		Clock:     fakeClock,
		Config:    cfg,
		Logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	require.NoError(t, err)
	fixtures.service = svc

	policy, err := NewPolicy(cfg.Telemetry)
	require.NoError(t, err)
	fixtures.policy = policy

	return fixtures
}

// onlineUnit returns a unit with deviceID online in slot 1 and a session opened at now.
func (f telemetryServiceFixtures) onlineUnit(t *testing.T, deviceID string) *entity.TrackingUnit {
	t.Helper()

	now := f.clock.Now()
	unit := entity.NewTrackingUnit(testMaterialID, "CG-1", "HEADREST", now)
	_, err := unit.AssignSlot(deviceID, 1, now, f.policy)
	require.NoError(t, err)
	_, err = unit.MarkDeviceOnline(deviceID, now)
	require.NoError(t, err)
	unit.StartSession(now, f.policy)

	return unit
}

// captureSave records the last unit passed to Save.
func (f telemetryServiceFixtures) captureSave() **entity.TrackingUnit {
	var saved *entity.TrackingUnit
	f.unitRepo.EXPECT().
		Save(mock.Anything, mock.AnythingOfType("*entity.TrackingUnit")).
		Run(func(_ context.Context, unit *entity.TrackingUnit) { saved = unit }).
		Return(nil)

	return &saved
}

func TestNewPolicy(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		policy, err := NewPolicy(nil)
		require.NoError(t, err)
		assert.Equal(t, entity.DefaultTargetHours, policy.TargetHours)
		assert.Equal(t, "Asia/Manila", policy.Location.String())
	})

	t.Run("overrides", func(t *testing.T) {
		policy, err := NewPolicy(&config.TelemetryConfig{
			TargetHours:            6,
			Timezone:               "UTC",
			MaxLocationHistory:     50,
			AlertSuppressionWindow: 10 * time.Minute,
		})
		require.NoError(t, err)
		assert.Equal(t, 6.0, policy.TargetHours)
		assert.Equal(t, 50, policy.MaxLocationHistory)
		assert.Equal(t, 10*time.Minute, policy.AlertSuppressionWindow)
		assert.Equal(t, entity.DefaultMaxAlerts, policy.MaxAlerts)
		assert.Equal(t, time.UTC, policy.Location)
	})

	t.Run("invalid timezone", func(t *testing.T) {
		_, err := NewPolicy(&config.TelemetryConfig{Timezone: "Mars/Olympus"})
		assert.Error(t, err)
	})
}

func TestTelemetryService_HandleConnect(t *testing.T) {
	t.Run("creates unit and auto assigns slot", func(t *testing.T) {
		f := createTestTelemetryService(t)
		ctx := context.Background()

		f.unitRepo.EXPECT().
			LockByMaterialID(ctx, testMaterialID).
			Return(nil, repository.ErrTrackingUnitNotFound)
		saved := f.captureSave()

		require.NoError(t, f.service.HandleConnect(ctx, testDeviceA, testMaterialID))

		unit := *saved
		require.NotNil(t, unit)
		assert.Equal(t, testMaterialID, unit.MaterialID)
		assert.Equal(t, testDeviceA, unit.Slots[0].Device.DeviceID)
		assert.True(t, unit.Slots[0].Device.IsOnline)
		assert.True(t, unit.IsOnline)
		assert.Equal(t, 1, unit.SlotNumber)
		require.NotNil(t, unit.CurrentSession)
		assert.Equal(t, f.clock.Now(), unit.CurrentSession.StartTime)
	})

	t.Run("known device without material id", func(t *testing.T) {
		f := createTestTelemetryService(t)
		ctx := context.Background()

		unit := f.onlineUnit(t, testDeviceA)
		_, err := unit.MarkDeviceOffline(testDeviceA, f.clock.Now())
		require.NoError(t, err)
		f.clock.Advance(time.Minute)

		f.unitRepo.EXPECT().FindByDeviceID(ctx, testDeviceA).Return(unit, nil)
		f.unitRepo.EXPECT().LockByMaterialID(ctx, testMaterialID).Return(unit, nil)
		saved := f.captureSave()

		require.NoError(t, f.service.HandleConnect(ctx, testDeviceA, ""))
		assert.True(t, (*saved).Slots[0].Device.IsOnline)
		assert.False(t, unit.Slots[0].Device.IsOnline, "loaded unit must not be mutated")
	})

	t.Run("unregistered device without material id", func(t *testing.T) {
		f := createTestTelemetryService(t)
		ctx := context.Background()

		f.unitRepo.EXPECT().
			FindByDeviceID(ctx, testDeviceA).
			Return(nil, repository.ErrTrackingUnitNotFound)

		assert.NoError(t, f.service.HandleConnect(ctx, testDeviceA, ""))
	})

	t.Run("both slots online", func(t *testing.T) {
		f := createTestTelemetryService(t)
		ctx := context.Background()

		unit := f.onlineUnit(t, testDeviceA)
		_, err := unit.AssignSlot(testDeviceB, 2, f.clock.Now(), f.policy)
		require.NoError(t, err)
		_, err = unit.MarkDeviceOnline(testDeviceB, f.clock.Now())
		require.NoError(t, err)

		f.unitRepo.EXPECT().LockByMaterialID(ctx, testMaterialID).Return(unit, nil)

		err = f.service.HandleConnect(ctx, "tab-c", testMaterialID)
		assert.ErrorIs(t, err, domainerrors.ErrSlotOccupied)
	})
}

func TestTelemetryService_HandleDisconnect(t *testing.T) {
	t.Run("marks slot offline and keeps session", func(t *testing.T) {
		f := createTestTelemetryService(t)
		ctx := context.Background()

		unit := f.onlineUnit(t, testDeviceA)
		f.clock.Advance(2 * time.Hour)

		f.unitRepo.EXPECT().FindByDeviceID(ctx, testDeviceA).Return(unit, nil)
		f.unitRepo.EXPECT().LockByMaterialID(ctx, testMaterialID).Return(unit, nil)
		saved := f.captureSave()

		require.NoError(t, f.service.HandleDisconnect(ctx, testDeviceA))

		slot := (*saved).Slots[0]
		assert.False(t, slot.Device.IsOnline)
		assert.InDelta(t, 2.0, slot.Device.TotalHoursOnline, 1e-9)
		assert.False(t, (*saved).IsOnline)
		assert.NotNil(t, (*saved).CurrentSession)
	})

	t.Run("unregistered device", func(t *testing.T) {
		f := createTestTelemetryService(t)
		ctx := context.Background()

		f.unitRepo.EXPECT().
			FindByDeviceID(ctx, testDeviceA).
			Return(nil, repository.ErrTrackingUnitNotFound)

		assert.NoError(t, f.service.HandleDisconnect(ctx, testDeviceA))
	})
}

func TestTelemetryService_UpdateLocation(t *testing.T) {
	input := &usecase.LocationInput{Lat: 14.5995, Lng: 120.9842, Speed: 30, Heading: 90, Accuracy: 12}

	t.Run("device not live", func(t *testing.T) {
		f := createTestTelemetryService(t)
		ctx := context.Background()

		result, err := f.service.UpdateLocation(ctx, testDeviceA, input)
		require.NoError(t, err)
		assert.False(t, result.Accepted)
	})

	t.Run("database heartbeat alone is not enough", func(t *testing.T) {
		f := createTestTelemetryService(t)
		ctx := context.Background()
		f.status.SetDatabaseStatus(testDeviceA, true, f.clock.Now())

		result, err := f.service.UpdateLocation(ctx, testDeviceA, input)
		require.NoError(t, err)
		assert.False(t, result.Accepted)
	})

	t.Run("live device with geocoded address", func(t *testing.T) {
		f := createTestTelemetryService(t)
		ctx := context.Background()

		unit := f.onlineUnit(t, testDeviceA)
		f.clock.Advance(2 * time.Hour)
		f.status.SetWebSocketStatus(testDeviceA, true, f.clock.Now())

		f.geocoder.EXPECT().
			ReverseGeocode(mock.Anything, input.Lat, input.Lng).
			Return("Rizal Park, Manila", nil)
		f.unitRepo.EXPECT().FindByDeviceID(ctx, testDeviceA).Return(unit, nil)
		f.unitRepo.EXPECT().LockByMaterialID(ctx, testMaterialID).Return(unit, nil)
		saved := f.captureSave()

		result, err := f.service.UpdateLocation(ctx, testDeviceA, input)
		require.NoError(t, err)
		assert.True(t, result.Accepted)
		assert.InDelta(t, 2.0, result.CurrentHours, 0.01)
		assert.InDelta(t, 6.0, result.HoursRemaining, 0.01)
		assert.False(t, result.IsCompliant)
		assert.Equal(t, f.clock.Now(), result.LastSeen)

		history := (*saved).CurrentSession.LocationHistory
		require.Len(t, history, 1)
		assert.Equal(t, "Rizal Park, Manila", history[0].Address)
		assert.Equal(t, 12.0, history[0].Accuracy)
	})

	t.Run("geocoding failure falls back to coordinates", func(t *testing.T) {
		f := createTestTelemetryService(t)
		ctx := context.Background()

		unit := f.onlineUnit(t, testDeviceA)
		f.status.SetWebSocketStatus(testDeviceA, true, f.clock.Now())

		f.geocoder.EXPECT().
			ReverseGeocode(mock.Anything, input.Lat, input.Lng).
			Return("", errors.New("upstream timeout"))
		f.unitRepo.EXPECT().FindByDeviceID(ctx, testDeviceA).Return(unit, nil)
		f.unitRepo.EXPECT().LockByMaterialID(ctx, testMaterialID).Return(unit, nil)
		saved := f.captureSave()

		_, err := f.service.UpdateLocation(ctx, testDeviceA, input)
		require.NoError(t, err)
		assert.Equal(t, "14.599500, 120.984200", (*saved).CurrentSession.LocationHistory[0].Address)
	})

	t.Run("degenerate fix skips geocoding", func(t *testing.T) {
		f := createTestTelemetryService(t)
		ctx := context.Background()

		unit := f.onlineUnit(t, testDeviceA)
		f.status.SetWebSocketStatus(testDeviceA, true, f.clock.Now())

		f.unitRepo.EXPECT().FindByDeviceID(ctx, testDeviceA).Return(unit, nil)
		f.unitRepo.EXPECT().LockByMaterialID(ctx, testMaterialID).Return(unit, nil)
		saved := f.captureSave()

		result, err := f.service.UpdateLocation(ctx, testDeviceA, &usecase.LocationInput{})
		require.NoError(t, err)
		assert.True(t, result.Accepted)
		assert.Empty(t, (*saved).CurrentSession.LocationHistory)
	})

	t.Run("save failure is returned", func(t *testing.T) {
		f := createTestTelemetryService(t)
		ctx := context.Background()

		unit := f.onlineUnit(t, testDeviceA)
		f.status.SetWebSocketStatus(testDeviceA, true, f.clock.Now())
		dbErr := domainerrors.NewDatabaseExecuteError(errors.New("connection reset"), "save tracking unit")

		f.geocoder.EXPECT().ReverseGeocode(mock.Anything, mock.Anything, mock.Anything).Return("addr", nil)
		f.unitRepo.EXPECT().FindByDeviceID(ctx, testDeviceA).Return(unit, nil)
		f.unitRepo.EXPECT().LockByMaterialID(ctx, testMaterialID).Return(unit, nil)
		f.unitRepo.EXPECT().Save(ctx, mock.Anything).Return(dbErr)

		_, err := f.service.UpdateLocation(ctx, testDeviceA, input)
		assert.ErrorIs(t, err, dbErr)
		assert.Nil(t, unit.CurrentSession.LocationHistory, "loaded unit must stay retry safe")
	})
}

func TestTelemetryService_RegisterDevice(t *testing.T) {
	t.Run("invalid slot", func(t *testing.T) {
		f := createTestTelemetryService(t)

		_, err := f.service.RegisterDevice(context.Background(), &usecase.RegisterDeviceInput{
			DeviceID: testDeviceA, MaterialID: testMaterialID, SlotNumber: 3,
		})
		assert.ErrorIs(t, err, domainerrors.ErrInvalidSlotNumber)
	})

	t.Run("new unit", func(t *testing.T) {
		f := createTestTelemetryService(t)
		ctx := context.Background()

		f.unitRepo.EXPECT().
			LockByMaterialID(ctx, testMaterialID).
			Return(nil, repository.ErrTrackingUnitNotFound)
		f.captureSave()

		unit, err := f.service.RegisterDevice(ctx, &usecase.RegisterDeviceInput{
			DeviceID: testDeviceB, MaterialID: testMaterialID, SlotNumber: 2, CarGroupID: "CG-9",
		})
		require.NoError(t, err)
		assert.Equal(t, "CG-9", unit.CarGroupID)
		assert.True(t, unit.Slots[0].IsEmpty())
		assert.Equal(t, testDeviceB, unit.Slots[1].Device.DeviceID)
		assert.False(t, unit.Slots[1].Device.IsOnline)
		assert.NotNil(t, unit.CurrentSession)
	})

	t.Run("device already connected is marked online", func(t *testing.T) {
		f := createTestTelemetryService(t)
		ctx := context.Background()
		f.status.SetWebSocketStatus(testDeviceA, true, f.clock.Now())

		f.unitRepo.EXPECT().
			LockByMaterialID(ctx, testMaterialID).
			Return(nil, repository.ErrTrackingUnitNotFound)
		f.captureSave()

		unit, err := f.service.RegisterDevice(ctx, &usecase.RegisterDeviceInput{
			DeviceID: testDeviceA, MaterialID: testMaterialID, SlotNumber: 1,
		})
		require.NoError(t, err)
		assert.True(t, unit.IsOnline)
		assert.Equal(t, testDeviceA, unit.DeviceID)
	})

	t.Run("slot held by online device", func(t *testing.T) {
		f := createTestTelemetryService(t)
		ctx := context.Background()

		f.unitRepo.EXPECT().LockByMaterialID(ctx, testMaterialID).Return(f.onlineUnit(t, testDeviceA), nil)

		_, err := f.service.RegisterDevice(ctx, &usecase.RegisterDeviceInput{
			DeviceID: testDeviceB, MaterialID: testMaterialID, SlotNumber: 1,
		})
		assert.ErrorIs(t, err, domainerrors.ErrSlotOccupied)
	})

	t.Run("eviction publishes alert", func(t *testing.T) {
		f := createTestTelemetryService(t)
		ctx := context.Background()

		unit := f.onlineUnit(t, testDeviceA)
		_, err := unit.MarkDeviceOffline(testDeviceA, f.clock.Now())
		require.NoError(t, err)

		f.unitRepo.EXPECT().LockByMaterialID(ctx, testMaterialID).Return(unit, nil)
		f.captureSave()
		var published []string
		f.publisher.EXPECT().
			PublishAlertEvent(ctx, mock.AnythingOfType("*service.AlertEvent")).
			Run(func(_ context.Context, event *service.AlertEvent) {
				assert.Equal(t, testMaterialID, event.MaterialID)
				published = append(published, event.AlertType)
			}).
			Return(nil)

		registered, err := f.service.RegisterDevice(ctx, &usecase.RegisterDeviceInput{
			DeviceID: testDeviceB, MaterialID: testMaterialID, SlotNumber: 1,
		})
		require.NoError(t, err)
		assert.Equal(t, testDeviceB, registered.Slots[0].Device.DeviceID)
		// The rolled session stays pending until the day ends.
		assert.Equal(t, []string{string(entity.AlertSlotEvicted)}, published)
		require.Len(t, registered.DailySessions, 1)
		assert.Equal(t, entity.CompliancePending, registered.DailySessions[0].ComplianceStatus)
		assert.Zero(t, registered.ComplianceRate)
	})
}

func TestTelemetryService_UnregisterDevice(t *testing.T) {
	t.Run("occupied slot", func(t *testing.T) {
		f := createTestTelemetryService(t)
		ctx := context.Background()

		f.unitRepo.EXPECT().LockByMaterialID(ctx, testMaterialID).Return(f.onlineUnit(t, testDeviceA), nil)
		saved := f.captureSave()

		result, err := f.service.UnregisterDevice(ctx, &usecase.UnregisterDeviceInput{
			MaterialID: testMaterialID, SlotNumber: 1,
		})
		require.NoError(t, err)
		assert.True(t, result.Success)
		assert.Contains(t, result.Message, testDeviceA)
		assert.False(t, (*saved).Slots[0].Device.IsOnline)
	})

	t.Run("empty slot", func(t *testing.T) {
		f := createTestTelemetryService(t)
		ctx := context.Background()

		f.unitRepo.EXPECT().LockByMaterialID(ctx, testMaterialID).Return(f.onlineUnit(t, testDeviceA), nil)

		result, err := f.service.UnregisterDevice(ctx, &usecase.UnregisterDeviceInput{
			MaterialID: testMaterialID, SlotNumber: 2,
		})
		require.NoError(t, err)
		assert.False(t, result.Success)
		assert.Contains(t, result.Message, "no device")
	})

	t.Run("unknown material", func(t *testing.T) {
		f := createTestTelemetryService(t)
		ctx := context.Background()

		f.unitRepo.EXPECT().
			LockByMaterialID(ctx, testMaterialID).
			Return(nil, repository.ErrTrackingUnitNotFound)

		_, err := f.service.UnregisterDevice(ctx, &usecase.UnregisterDeviceInput{
			MaterialID: testMaterialID, SlotNumber: 1,
		})
		assert.ErrorIs(t, err, domainerrors.ErrTrackingUnitNotFound)
	})
}

func TestTelemetryService_RecordHeartbeat(t *testing.T) {
	t.Run("registered device", func(t *testing.T) {
		f := createTestTelemetryService(t)
		ctx := context.Background()

		unit := f.onlineUnit(t, testDeviceA)
		f.clock.Advance(10 * time.Second)

		f.unitRepo.EXPECT().FindByDeviceID(ctx, testDeviceA).Return(unit, nil)
		f.unitRepo.EXPECT().LockByMaterialID(ctx, testMaterialID).Return(unit, nil)
		saved := f.captureSave()

		require.NoError(t, f.service.RecordHeartbeat(ctx, testDeviceA))

		assert.Equal(t, f.clock.Now(), (*saved).Slots[0].Device.LastSeen)
		verdict := f.status.GetStatus(testDeviceA)
		assert.True(t, verdict.IsOnline)
		assert.Equal(t, entity.SourceDatabase, verdict.Source)
	})

	t.Run("unregistered device leaves arbiter untouched", func(t *testing.T) {
		f := createTestTelemetryService(t)
		ctx := context.Background()

		f.unitRepo.EXPECT().FindByDeviceID(ctx, testDeviceB).Return(nil, repository.ErrTrackingUnitNotFound)

		err := f.service.RecordHeartbeat(ctx, testDeviceB)
		assert.ErrorIs(t, err, domainerrors.ErrDeviceNotRegistered)

		verdict := f.status.GetStatus(testDeviceB)
		assert.False(t, verdict.IsOnline)
		assert.Equal(t, entity.SourceTimeout, verdict.Source)
		assert.Empty(t, f.status.GetAllStatuses())
	})
}

func TestTelemetryService_EndDailySession(t *testing.T) {
	t.Run("compliant", func(t *testing.T) {
		f := createTestTelemetryService(t)
		ctx := context.Background()

		f.unitRepo.EXPECT().LockByMaterialID(ctx, testMaterialID).Return(f.onlineUnit(t, testDeviceA), nil)
		f.captureSave()
		f.clock.Advance(9 * time.Hour)

		session, err := f.service.EndDailySession(ctx, testMaterialID)
		require.NoError(t, err)
		assert.Equal(t, entity.ComplianceCompliant, session.ComplianceStatus)
		assert.InDelta(t, 9.0, session.TotalHoursOnline, 1e-9)
	})

	t.Run("non compliant raises low hours alert", func(t *testing.T) {
		f := createTestTelemetryService(t)
		ctx := context.Background()

		f.unitRepo.EXPECT().LockByMaterialID(ctx, testMaterialID).Return(f.onlineUnit(t, testDeviceA), nil)
		saved := f.captureSave()
		f.publisher.EXPECT().
			PublishAlertEvent(ctx, mock.MatchedBy(func(event *service.AlertEvent) bool {
				return event.AlertType == string(entity.AlertLowHours) && event.Severity == string(entity.SeverityMedium)
			})).
			Return(nil)
		f.clock.Advance(5 * time.Hour)

		session, err := f.service.EndDailySession(ctx, testMaterialID)
		require.NoError(t, err)
		assert.Equal(t, entity.ComplianceNonCompliant, session.ComplianceStatus)
		assert.Nil(t, (*saved).CurrentSession)
		require.Len(t, (*saved).Alerts, 1)
	})

	t.Run("no active session", func(t *testing.T) {
		f := createTestTelemetryService(t)
		ctx := context.Background()

		unit := entity.NewTrackingUnit(testMaterialID, "", "", f.clock.Now())
		f.unitRepo.EXPECT().LockByMaterialID(ctx, testMaterialID).Return(unit, nil)

		_, err := f.service.EndDailySession(ctx, testMaterialID)
		assert.ErrorIs(t, err, domainerrors.ErrNoActiveSession)
	})
}

func TestTelemetryService_StartDailySession(t *testing.T) {
	f := createTestTelemetryService(t)
	ctx := context.Background()

	unit := entity.NewTrackingUnit(testMaterialID, "", "", f.clock.Now())
	f.unitRepo.EXPECT().LockByMaterialID(ctx, testMaterialID).Return(unit, nil)
	f.captureSave()

	started, err := f.service.StartDailySession(ctx, testMaterialID)
	require.NoError(t, err)
	require.NotNil(t, started.CurrentSession)
	assert.Equal(t, entity.CompliancePending, started.CurrentSession.ComplianceStatus)
}

func TestTelemetryService_AddAlert(t *testing.T) {
	t.Run("urgent alert is published and pushed", func(t *testing.T) {
		f := createTestTelemetryService(t)
		ctx := context.Background()

		f.unitRepo.EXPECT().LockByMaterialID(ctx, testMaterialID).Return(f.onlineUnit(t, testDeviceA), nil)
		f.captureSave()
		f.publisher.EXPECT().PublishAlertEvent(ctx, mock.Anything).Return(nil)
		f.notifier.EXPECT().
			SendTopicNotification(ctx, "ops-alerts", mock.Anything, "screen dark", mock.MatchedBy(func(data map[string]string) bool {
				return data["materialId"] == testMaterialID && data["severity"] == string(entity.SeverityHigh)
			})).
			Return(nil)

		alert, err := f.service.AddAlert(ctx, testMaterialID, entity.AlertDeviceOffline, "screen dark", entity.SeverityHigh)
		require.NoError(t, err)
		require.NotNil(t, alert)
		assert.Equal(t, entity.AlertDeviceOffline, alert.Type)
	})

	t.Run("delivery failures are swallowed", func(t *testing.T) {
		f := createTestTelemetryService(t)
		ctx := context.Background()

		f.unitRepo.EXPECT().LockByMaterialID(ctx, testMaterialID).Return(f.onlineUnit(t, testDeviceA), nil)
		f.captureSave()
		f.publisher.EXPECT().PublishAlertEvent(ctx, mock.Anything).Return(errors.New("broker down"))
		f.notifier.EXPECT().
			SendTopicNotification(ctx, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			Return(errors.New("fcm down"))

		alert, err := f.service.AddAlert(ctx, testMaterialID, entity.AlertDeviceOffline, "screen dark", entity.SeverityCritical)
		require.NoError(t, err)
		assert.NotNil(t, alert)
	})

	t.Run("suppressed duplicate", func(t *testing.T) {
		f := createTestTelemetryService(t)
		ctx := context.Background()

		unit := f.onlineUnit(t, testDeviceA)
		_, ok := unit.AddAlert(entity.AlertLowAccuracy, "first", entity.SeverityLow, f.clock.Now(), f.policy)
		require.True(t, ok)
		f.clock.Advance(10 * time.Minute)

		f.unitRepo.EXPECT().LockByMaterialID(ctx, testMaterialID).Return(unit, nil)

		alert, err := f.service.AddAlert(ctx, testMaterialID, entity.AlertLowAccuracy, "second", entity.SeverityLow)
		require.NoError(t, err)
		assert.Nil(t, alert)
	})
}

func TestTelemetryService_ResolveAlert(t *testing.T) {
	t.Run("existing alert", func(t *testing.T) {
		f := createTestTelemetryService(t)
		ctx := context.Background()

		unit := f.onlineUnit(t, testDeviceA)
		alert, ok := unit.AddAlert(entity.AlertLowAccuracy, "weak fix", entity.SeverityLow, f.clock.Now(), f.policy)
		require.True(t, ok)

		f.unitRepo.EXPECT().LockByMaterialID(ctx, testMaterialID).Return(unit, nil)
		saved := f.captureSave()

		require.NoError(t, f.service.ResolveAlert(ctx, testMaterialID, alert.ID))
		assert.True(t, (*saved).Alerts[0].IsResolved)
	})

	t.Run("unknown alert", func(t *testing.T) {
		f := createTestTelemetryService(t)
		ctx := context.Background()

		f.unitRepo.EXPECT().LockByMaterialID(ctx, testMaterialID).Return(f.onlineUnit(t, testDeviceA), nil)

		err := f.service.ResolveAlert(ctx, testMaterialID, "missing")
		assert.ErrorIs(t, err, domainerrors.ErrAlertNotFound)
	})
}

func TestTelemetryService_GetTrackingUnit(t *testing.T) {
	f := createTestTelemetryService(t)
	ctx := context.Background()

	f.unitRepo.EXPECT().
		FindByMaterialID(ctx, testMaterialID).
		Return(nil, repository.ErrTrackingUnitNotFound)

	_, err := f.service.GetTrackingUnit(ctx, testMaterialID)
	assert.ErrorIs(t, err, domainerrors.ErrTrackingUnitNotFound)
}

func TestTelemetryService_GetLocationTrail(t *testing.T) {
	f := createTestTelemetryService(t)
	ctx := context.Background()

	unit := f.onlineUnit(t, testDeviceA)
	for i, lat := range []float64{14.50, 14.51} {
		at := f.clock.Now().Add(time.Duration(i) * time.Minute)
		_, err := unit.RecordLocation(testDeviceA, entity.LocationPoint{Lat: lat, Lng: 121.0, Timestamp: at}, at, f.policy)
		require.NoError(t, err)
	}

	f.unitRepo.EXPECT().FindByMaterialID(ctx, testMaterialID).Return(unit, nil)

	feature, err := f.service.GetLocationTrail(ctx, testMaterialID)
	require.NoError(t, err)

	line, ok := feature.Geometry.(orb.LineString)
	require.True(t, ok)
	require.Len(t, line, 2)
	assert.Equal(t, orb.Point{121.0, 14.50}, line[0])
	assert.Equal(t, 2, feature.Properties["points"])
	assert.InDelta(t, 1.112, feature.Properties["distanceKm"], 0.01)
	assert.Equal(t, "2026-03-10", feature.Properties["date"])
}

func TestTelemetryService_GetComplianceReport(t *testing.T) {
	f := createTestTelemetryService(t)
	ctx := context.Background()

	compliant := f.onlineUnit(t, testDeviceA)
	f.clock.Advance(9 * time.Hour)

	lagging := entity.NewTrackingUnit("MAT-002", "", "", f.clock.Now())
	_, err := lagging.AssignSlot(testDeviceB, 2, f.clock.Now(), f.policy)
	require.NoError(t, err)
	lagging.StartSession(f.clock.Now().Add(-3*time.Hour), f.policy)
	_, err = lagging.EndSession(f.clock.Now(), f.policy)
	require.NoError(t, err)

	f.unitRepo.EXPECT().FindAll(ctx).Return([]*entity.TrackingUnit{lagging, compliant}, nil).Once()

	report, err := f.service.GetComplianceReport(ctx, time.Time{})
	require.NoError(t, err)

	assert.Equal(t, "2026-03-10", report.Date)
	assert.Equal(t, 2, report.TotalTablets)
	assert.Equal(t, 1, report.OnlineTablets)
	assert.Equal(t, 1, report.CompliantTablets)
	assert.InDelta(t, 6.0, report.AverageHours, 0.01)
	require.Len(t, report.PerSlotBreakdown, 2)

	first := report.PerSlotBreakdown[0]
	assert.Equal(t, testMaterialID, first.MaterialID)
	assert.Equal(t, entity.ComplianceCompliant, first.ComplianceStatus)
	assert.True(t, first.IsCompliant)

	second := report.PerSlotBreakdown[1]
	assert.Equal(t, "MAT-002", second.MaterialID)
	assert.Equal(t, 2, second.SlotNumber)
	assert.Equal(t, entity.ComplianceNonCompliant, second.ComplianceStatus)

	t.Run("other day has no hours", func(t *testing.T) {
		f.unitRepo.EXPECT().FindAll(ctx).Return([]*entity.TrackingUnit{compliant}, nil)

		report, err := f.service.GetComplianceReport(ctx, arbiterEpoch.AddDate(0, 0, -1))
		require.NoError(t, err)
		assert.Equal(t, "2026-03-09", report.Date)
		assert.Equal(t, 0.0, report.PerSlotBreakdown[0].HoursOnline)
		assert.Equal(t, entity.ComplianceNonCompliant, report.PerSlotBreakdown[0].ComplianceStatus)
	})
}
