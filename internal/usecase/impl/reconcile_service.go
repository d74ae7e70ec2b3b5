package impl

import (
	"context"
	"log/slog"
	"time"

	"screentrack/config"
	deliverycontext "screentrack/internal/delivery/context"
	"screentrack/internal/domain/entity"
	"screentrack/internal/domain/repository"
	"screentrack/internal/domain/service"
	"screentrack/internal/usecase"

	"github.com/jonboulle/clockwork"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	defaultStaleThreshold     = 2 * time.Minute
	defaultSessionIdleTimeout = 30 * time.Minute
)

// reconcileService implements usecase.ReconcileUsecase.
type reconcileService struct {
	txManager      repository.TransactionManager
	unitRepo       repository.TrackingUnitRepository
	status         usecase.StatusUsecase
	alerts         *alertDispatcher
	clock          clockwork.Clock
	policy         entity.Policy
	staleThreshold time.Duration
	idleTimeout    time.Duration
	logger         *slog.Logger
}

// ReconcileServiceParams holds dependencies for ReconcileService, injected by Fx.
type ReconcileServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	UnitRepo  repository.TrackingUnitRepository
	Status    usecase.StatusUsecase
	Publisher service.EventPublisher
	Notifier  service.NotificationService `optional:"true"`
	Clock     clockwork.Clock
	Config    *config.Config
	Logger    *slog.Logger
}

// NewReconcileService is the constructor for reconcileService.
func NewReconcileService(params ReconcileServiceParams) (usecase.ReconcileUsecase, error) {
	policy, err := NewPolicy(params.Config.Telemetry)
	if err != nil {
		return nil, err
	}

	staleThreshold := defaultStaleThreshold
	idleTimeout := defaultSessionIdleTimeout
	if cfg := params.Config.Reconcile; cfg != nil {
		if cfg.StaleThreshold > 0 {
			staleThreshold = cfg.StaleThreshold
		}
		if cfg.SessionIdleTimeout > 0 {
			idleTimeout = cfg.SessionIdleTimeout
		}
	}

	return &reconcileService{
		txManager:      params.TxManager,
		unitRepo:       params.UnitRepo,
		status:         params.Status,
		alerts:         newAlertDispatcher(params.Publisher, params.Notifier, params.Config.Firebase, params.Logger),
		clock:          params.Clock,
		policy:         policy,
		staleThreshold: staleThreshold,
		idleTimeout:    idleTimeout,
		logger:         params.Logger,
	}, nil
}

// RunOnce repairs every unit that still shows open activity, then drops arbiter entries
// that have timed out. A failing unit is counted and skipped.
func (s *reconcileService) RunOnce(ctx context.Context) (*usecase.ReconcileResult, error) {
	logger := deliverycontext.GetLoggerOrDefault(ctx, s.logger)
	now := s.clock.Now()
	result := &usecase.ReconcileResult{}

	units, err := s.unitRepo.FindWithOpenActivity(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "list units with open activity")
	}
	result.UnitsScanned = len(units)

	for _, unit := range units {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		forced, outcome, err := s.reconcileUnit(ctx, unit.MaterialID, now)
		if err != nil {
			result.Failures++
			logger.Warn("[Reconcile] Failed to reconcile unit",
				slog.String("materialId", unit.MaterialID),
				slog.Any("error", err),
			)

			continue
		}
		if outcome.Dirty {
			result.UnitsUpdated++
		}
		result.SlotsForced += forced
		result.SessionsClosed += len(outcome.ClosedSessions)
	}

	for _, verdict := range s.status.GetAllStatuses() {
		if verdict.IsOnline {
			continue
		}
		if s.status.Forget(verdict.DeviceID) {
			result.StatusesDropped++
		}
	}

	attrs := []any{
		slog.Int("scanned", result.UnitsScanned),
		slog.Int("updated", result.UnitsUpdated),
		slog.Int("slotsForced", result.SlotsForced),
		slog.Int("sessionsClosed", result.SessionsClosed),
		slog.Int("statusesDropped", result.StatusesDropped),
		slog.Int("failures", result.Failures),
	}
	if result.UnitsUpdated > 0 || result.Failures > 0 {
		logger.Info("[Reconcile] Pass complete", attrs...)
	} else {
		logger.Debug("[Reconcile] Pass complete", attrs...)
	}

	return result, nil
}

// reconcileUnit re-reads the unit under a row lock so it never overwrites a concurrent
// telemetry write with the stale listing snapshot.
func (s *reconcileService) reconcileUnit(ctx context.Context, materialID string, now time.Time) (int, entity.Outcome, error) {
	var (
		forced  int
		outcome entity.Outcome
	)
	err := s.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		repo := repoFactory.NewTrackingUnitRepository()

		loaded, err := repo.LockByMaterialID(ctx, materialID)
		if errors.Is(err, repository.ErrTrackingUnitNotFound) {
			return nil
		}
		if err != nil {
			return err
		}

		unit := loaded.Clone()
		before := unit.OnlineCount()
		outcome = unit.ReconcileStale(now, now.Add(-s.staleThreshold), s.idleTimeout, s.isLive, s.policy)
		forced = max(before-unit.OnlineCount(), 0)

		if !outcome.Dirty {
			return nil
		}

		return repo.Save(ctx, unit)
	})
	if err != nil {
		return 0, entity.Outcome{}, err
	}

	s.alerts.dispatch(ctx, materialID, outcome.NewAlerts)

	return forced, outcome, nil
}

func (s *reconcileService) isLive(deviceID string) bool {
	return s.status.GetStatus(deviceID).IsLive()
}
