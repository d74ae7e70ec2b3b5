// Package worker runs the periodic reconciliation job as a long-running delivery.
package worker

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"screentrack/config"
	"screentrack/internal/delivery"
	deliverycontext "screentrack/internal/delivery/context"
	"screentrack/internal/domain/lifecycle"
	"screentrack/internal/usecase"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const defaultReconcileInterval = 30 * time.Second

type reconcileScheduler struct {
	enabled     bool
	interval    time.Duration
	reconcileUC usecase.ReconcileUsecase
	clock       clockwork.Clock
	logger      *slog.Logger

	quit     chan struct{}
	quitOnce sync.Once
	done     chan struct{}
}

// SchedulerParams holds dependencies for the reconciliation scheduler
type SchedulerParams struct {
	fx.In

	Lc          fx.Lifecycle
	Cfg         *config.Config
	Logger      *slog.Logger
	Clock       clockwork.Clock
	ReconcileUC usecase.ReconcileUsecase
}

// NewScheduler creates the delivery that runs a reconciliation pass every reconcile.interval
func NewScheduler(params SchedulerParams) (delivery.Delivery, error) {
	s := newScheduler(params.Cfg.Reconcile, params.ReconcileUC, params.Clock, params.Logger)

	if params.Lc != nil {
		params.Lc.Append(fx.Hook{
			OnStop: s.stop,
		})
	}

	return s, nil
}

func newScheduler(cfg *config.ReconcileConfig, reconcileUC usecase.ReconcileUsecase, clk clockwork.Clock, logger *slog.Logger) *reconcileScheduler {
	s := &reconcileScheduler{
		enabled:     true,
		interval:    defaultReconcileInterval,
		reconcileUC: reconcileUC,
		clock:       clk,
		logger:      logger,
		quit:        make(chan struct{}),
		done:        make(chan struct{}),
	}
	if cfg != nil {
		s.enabled = cfg.Enabled
		if cfg.Interval > 0 {
			s.interval = cfg.Interval
		}
	}

	return s
}

// Serve blocks, running one pass per tick until the scheduler is stopped or ctx ends
func (s *reconcileScheduler) Serve(ctx context.Context) error {
	defer close(s.done)

	if !s.enabled {
		s.logger.Info("[Reconcile] Scheduler disabled")

		return nil
	}

	s.logger.Info("[Reconcile] Starting scheduler", slog.Duration("interval", s.interval))
	ticker := s.clock.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-s.quit:
			return nil
		case <-ctx.Done():
			return nil
		case <-ticker.Chan():
			s.runOnce(ctx)
		}
	}
}

// runOnce executes a single pass with its own request id. Errors are logged and the
// schedule continues.
func (s *reconcileScheduler) runOnce(ctx context.Context) {
	runID := uuid.NewString()
	runLogger := s.logger.With(slog.String("request_id", runID))
	runCtx := deliverycontext.WithLogger(deliverycontext.WithRequestID(ctx, runID), runLogger)

	if _, err := s.reconcileUC.RunOnce(runCtx); err != nil {
		runLogger.Error("[Reconcile] Pass failed", slog.Any("error", err))
	}
}

// stop halts the loop and waits for an in-flight pass to finish
func (s *reconcileScheduler) stop(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	s.logger.Info("[Reconcile] Stopping scheduler")
	s.quitOnce.Do(func() { close(s.quit) })

	select {
	case <-s.done:
		return nil
	case <-shutdownCtx.Done():
		return errors.Wrap(shutdownCtx.Err(), "wait for reconcile scheduler")
	}
}
