package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"screentrack/config"
	"screentrack/internal/domain/entity"
	"screentrack/internal/domain/repository"
	"screentrack/internal/domain/service"
	mockRepo "screentrack/internal/mocks/repository"
	mockService "screentrack/internal/mocks/service"
	"screentrack/internal/usecase"

	"github.com/jonboulle/clockwork"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// reconcileServiceFixtures holds all test dependencies for reconcile service tests.
type reconcileServiceFixtures struct {
	service   usecase.ReconcileUsecase
	unitRepo  *mockRepo.MockTrackingUnitRepository
	publisher *mockService.MockEventPublisher
	notifier  *mockService.MockNotificationService
	status    usecase.StatusUsecase
	clock     *clockwork.FakeClock
	policy    entity.Policy
}

func createTestReconcileService(t *testing.T) reconcileServiceFixtures {
	t.Helper()

	fakeClock := clockwork.NewFakeClockAt(arbiterEpoch)
	cfg := &config.Config{
		Telemetry: &config.TelemetryConfig{Timezone: "UTC"},
		Reconcile: &config.ReconcileConfig{StaleThreshold: 2 * time.Minute, SessionIdleTimeout: 30 * time.Minute},
	}

	txManager := mockRepo.NewMockTransactionManager(t)
	repoFactory := mockRepo.NewMockRepositoryFactory(t)
	unitRepo := mockRepo.NewMockTrackingUnitRepository(t)
	txManager.EXPECT().
		Execute(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(repoFactory)
		}).
		Maybe()
	repoFactory.EXPECT().NewTrackingUnitRepository().Return(unitRepo).Maybe()

	fixtures := reconcileServiceFixtures{
		unitRepo:  unitRepo,
		publisher: mockService.NewMockEventPublisher(t),
		notifier:  mockService.NewMockNotificationService(t),
		status:    NewStatusArbiter(StatusArbiterParams{Config: cfg, Clock: fakeClock}),
		clock:     fakeClock,
	}

	svc, err := NewReconcileService(ReconcileServiceParams{
		TxManager: txManager,
		UnitRepo:  unitRepo,
		Status:    fixtures.status,
		Publisher: fixtures.publisher,
		Notifier:  fixtures.notifier,
		Clock:     fakeClock,
		Config:    cfg,
		Logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	require.NoError(t, err)
	fixtures.service = svc

	fixtures.policy, err = NewPolicy(cfg.Telemetry)
	require.NoError(t, err)

	return fixtures
}

func (f reconcileServiceFixtures) onlineUnit(t *testing.T, materialID, deviceID string) *entity.TrackingUnit {
	t.Helper()

	now := f.clock.Now()
	unit := entity.NewTrackingUnit(materialID, "", "", now)
	_, err := unit.AssignSlot(deviceID, 1, now, f.policy)
	require.NoError(t, err)
	_, err = unit.MarkDeviceOnline(deviceID, now)
	require.NoError(t, err)
	unit.StartSession(now, f.policy)

	return unit
}

func TestReconcileService_RunOnce_ForcesStaleSlotOffline(t *testing.T) {
	f := createTestReconcileService(t)
	ctx := context.Background()

	unit := f.onlineUnit(t, testMaterialID, testDeviceA)
	f.clock.Advance(5 * time.Minute)

	f.unitRepo.EXPECT().FindWithOpenActivity(ctx).Return([]*entity.TrackingUnit{unit}, nil)
	f.unitRepo.EXPECT().LockByMaterialID(ctx, testMaterialID).Return(unit, nil)

	var saved *entity.TrackingUnit
	f.unitRepo.EXPECT().
		Save(ctx, mock.AnythingOfType("*entity.TrackingUnit")).
		Run(func(_ context.Context, u *entity.TrackingUnit) { saved = u }).
		Return(nil)
	f.publisher.EXPECT().
		PublishAlertEvent(ctx, mock.MatchedBy(func(event *service.AlertEvent) bool {
			return event.AlertType == string(entity.AlertDeviceOffline)
		})).
		Return(nil)
	f.notifier.EXPECT().
		SendTopicNotification(ctx, defaultAlertTopic, mock.Anything, mock.Anything, mock.Anything).
		Return(nil)

	result, err := f.service.RunOnce(ctx)
	require.NoError(t, err)

	assert.Equal(t, 1, result.UnitsScanned)
	assert.Equal(t, 1, result.UnitsUpdated)
	assert.Equal(t, 1, result.SlotsForced)
	assert.Equal(t, 0, result.SessionsClosed)
	assert.Equal(t, 0, result.Failures)

	require.NotNil(t, saved)
	assert.False(t, saved.IsOnline)
	assert.False(t, saved.Slots[0].Device.IsOnline)
	assert.Equal(t, arbiterEpoch, saved.Slots[0].Device.LastSeen)
	assert.NotNil(t, saved.CurrentSession, "session stays open until the idle timeout")
}

func TestReconcileService_RunOnce_LeavesLiveDeviceAlone(t *testing.T) {
	f := createTestReconcileService(t)
	ctx := context.Background()

	unit := f.onlineUnit(t, testMaterialID, testDeviceA)
	f.clock.Advance(5 * time.Minute)
	f.status.SetWebSocketStatus(testDeviceA, true, arbiterEpoch)

	f.unitRepo.EXPECT().FindWithOpenActivity(ctx).Return([]*entity.TrackingUnit{unit}, nil)
	f.unitRepo.EXPECT().LockByMaterialID(ctx, testMaterialID).Return(unit, nil)

	result, err := f.service.RunOnce(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, result.UnitsUpdated)
	assert.Equal(t, 0, result.SlotsForced)
	f.unitRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestReconcileService_RunOnce_ClosesIdleSession(t *testing.T) {
	f := createTestReconcileService(t)
	ctx := context.Background()

	unit := f.onlineUnit(t, testMaterialID, testDeviceA)
	f.clock.Advance(3 * time.Hour)
	_, err := unit.MarkDeviceOffline(testDeviceA, f.clock.Now())
	require.NoError(t, err)
	f.clock.Advance(45 * time.Minute)

	f.unitRepo.EXPECT().FindWithOpenActivity(ctx).Return([]*entity.TrackingUnit{unit}, nil)
	f.unitRepo.EXPECT().LockByMaterialID(ctx, testMaterialID).Return(unit, nil)

	var saved *entity.TrackingUnit
	f.unitRepo.EXPECT().
		Save(ctx, mock.Anything).
		Run(func(_ context.Context, u *entity.TrackingUnit) { saved = u }).
		Return(nil)
	f.publisher.EXPECT().
		PublishAlertEvent(ctx, mock.MatchedBy(func(event *service.AlertEvent) bool {
			return event.AlertType == string(entity.AlertLowHours)
		})).
		Return(nil)

	result, err := f.service.RunOnce(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, result.SessionsClosed)
	assert.Equal(t, 0, result.SlotsForced)

	require.NotNil(t, saved)
	assert.Nil(t, saved.CurrentSession)
	require.Len(t, saved.DailySessions, 1)
	assert.InDelta(t, 3.0, saved.DailySessions[0].TotalHoursOnline, 1e-9)
}

func TestReconcileService_RunOnce_CountsFailures(t *testing.T) {
	f := createTestReconcileService(t)
	ctx := context.Background()

	broken := entity.NewTrackingUnit("MAT-BROKEN", "", "", f.clock.Now())
	healthy := f.onlineUnit(t, testMaterialID, testDeviceA)
	f.status.SetWebSocketStatus(testDeviceA, true, f.clock.Now())

	f.unitRepo.EXPECT().FindWithOpenActivity(ctx).Return([]*entity.TrackingUnit{broken, healthy}, nil)
	f.unitRepo.EXPECT().LockByMaterialID(ctx, "MAT-BROKEN").Return(nil, errors.New("lock timeout"))
	f.unitRepo.EXPECT().LockByMaterialID(ctx, testMaterialID).Return(healthy, nil)

	result, err := f.service.RunOnce(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, result.UnitsScanned)
	assert.Equal(t, 1, result.Failures)
}

func TestReconcileService_RunOnce_SkipsDeletedUnit(t *testing.T) {
	f := createTestReconcileService(t)
	ctx := context.Background()

	unit := f.onlineUnit(t, testMaterialID, testDeviceA)
	f.unitRepo.EXPECT().FindWithOpenActivity(ctx).Return([]*entity.TrackingUnit{unit}, nil)
	f.unitRepo.EXPECT().LockByMaterialID(ctx, testMaterialID).Return(nil, repository.ErrTrackingUnitNotFound)

	result, err := f.service.RunOnce(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, result.Failures)
	assert.Equal(t, 0, result.UnitsUpdated)
}

func TestReconcileService_RunOnce_ListingError(t *testing.T) {
	f := createTestReconcileService(t)
	ctx := context.Background()

	f.unitRepo.EXPECT().FindWithOpenActivity(ctx).Return(nil, errors.New("connection refused"))

	_, err := f.service.RunOnce(ctx)
	assert.ErrorContains(t, err, "connection refused")
}

func TestReconcileService_RunOnce_ForgetsTimedOutStatuses(t *testing.T) {
	f := createTestReconcileService(t)
	ctx := context.Background()

	f.status.SetDatabaseStatus("tab-stale", true, f.clock.Now().Add(-time.Hour))
	f.status.SetDatabaseStatus("tab-fresh", true, f.clock.Now())
	f.status.SetWebSocketStatus("tab-live", true, f.clock.Now())

	f.unitRepo.EXPECT().FindWithOpenActivity(ctx).Return(nil, nil)

	result, err := f.service.RunOnce(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, result.StatusesDropped)

	ids := make([]string, 0)
	for _, verdict := range f.status.GetAllStatuses() {
		ids = append(ids, verdict.DeviceID)
	}
	assert.Equal(t, []string{"tab-fresh", "tab-live"}, ids)
}

func TestReconcileService_RunOnce_IsIdempotent(t *testing.T) {
	f := createTestReconcileService(t)
	ctx := context.Background()

	unit := f.onlineUnit(t, testMaterialID, testDeviceA)
	f.clock.Advance(5 * time.Minute)

	var saved *entity.TrackingUnit
	f.unitRepo.EXPECT().FindWithOpenActivity(ctx).Return([]*entity.TrackingUnit{unit}, nil).Once()
	f.unitRepo.EXPECT().LockByMaterialID(ctx, testMaterialID).Return(unit, nil).Once()
	f.unitRepo.EXPECT().
		Save(ctx, mock.Anything).
		Run(func(_ context.Context, u *entity.TrackingUnit) { saved = u }).
		Return(nil).
		Once()
	f.publisher.EXPECT().PublishAlertEvent(ctx, mock.Anything).Return(nil).Once()
	f.notifier.EXPECT().
		SendTopicNotification(ctx, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(nil).
		Once()

	_, err := f.service.RunOnce(ctx)
	require.NoError(t, err)
	require.NotNil(t, saved)

	f.unitRepo.EXPECT().FindWithOpenActivity(ctx).Return([]*entity.TrackingUnit{saved}, nil).Once()
	f.unitRepo.EXPECT().LockByMaterialID(ctx, testMaterialID).Return(saved, nil).Once()

	second, err := f.service.RunOnce(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, second.UnitsUpdated)
	assert.Equal(t, 0, second.SlotsForced)
}
