package worker

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"screentrack/config"
	deliverycontext "screentrack/internal/delivery/context"
	mockUsecase "screentrack/internal/mocks/usecase"
	"screentrack/internal/usecase"

	"github.com/jonboulle/clockwork"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var schedulerEpoch = time.Date(2026, 3, 10, 8, 0, 0, 0, time.UTC)

func newTestScheduler(t *testing.T, cfg *config.ReconcileConfig) (*reconcileScheduler, *mockUsecase.MockReconcileUsecase, *clockwork.FakeClock) {
	t.Helper()

	reconcileUC := mockUsecase.NewMockReconcileUsecase(t)
	fakeClock := clockwork.NewFakeClockAt(schedulerEpoch)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return newScheduler(cfg, reconcileUC, fakeClock, logger), reconcileUC, fakeClock
}

func serveInBackground(t *testing.T, s *reconcileScheduler) <-chan error {
	t.Helper()

	result := make(chan error, 1)
	go func() {
		result <- s.Serve(context.Background())
	}()

	return result
}

func waitForTicker(t *testing.T, fakeClock *clockwork.FakeClock) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, fakeClock.BlockUntilContext(ctx, 1))
}

func TestScheduler_RunsOncePerInterval(t *testing.T) {
	s, reconcileUC, fakeClock := newTestScheduler(t, &config.ReconcileConfig{Enabled: true, Interval: 10 * time.Second})

	runs := make(chan string, 4)
	reconcileUC.EXPECT().RunOnce(mock.Anything).
		RunAndReturn(func(ctx context.Context) (*usecase.ReconcileResult, error) {
			runs <- deliverycontext.GetRequestIDFromContext(ctx)

			return &usecase.ReconcileResult{}, nil
		}).Times(2)

	served := serveInBackground(t, s)
	waitForTicker(t, fakeClock)

	fakeClock.Advance(5 * time.Second)
	assert.Never(t, func() bool { return len(runs) > 0 }, 50*time.Millisecond, 5*time.Millisecond)

	fakeClock.Advance(5 * time.Second)
	first := <-runs
	assert.NotEmpty(t, first)

	fakeClock.Advance(10 * time.Second)
	second := <-runs
	assert.NotEqual(t, first, second, "each pass gets its own request id")

	require.NoError(t, s.stop(context.Background()))
	require.NoError(t, <-served)

	fakeClock.Advance(10 * time.Second)
	assert.Empty(t, runs, "no pass after stop")
}

func TestScheduler_ContinuesAfterFailure(t *testing.T) {
	s, reconcileUC, fakeClock := newTestScheduler(t, &config.ReconcileConfig{Enabled: true})

	runs := make(chan struct{}, 4)
	reconcileUC.EXPECT().RunOnce(mock.Anything).
		RunAndReturn(func(context.Context) (*usecase.ReconcileResult, error) {
			runs <- struct{}{}

			return nil, errors.New("database unavailable")
		}).Times(2)

	served := serveInBackground(t, s)
	waitForTicker(t, fakeClock)

	fakeClock.Advance(defaultReconcileInterval)
	<-runs
	fakeClock.Advance(defaultReconcileInterval)
	<-runs

	require.NoError(t, s.stop(context.Background()))
	require.NoError(t, <-served)
}

func TestScheduler_Disabled(t *testing.T) {
	s, _, fakeClock := newTestScheduler(t, &config.ReconcileConfig{Enabled: false})

	require.NoError(t, s.Serve(context.Background()))
	fakeClock.Advance(2 * defaultReconcileInterval)
	require.NoError(t, s.stop(context.Background()))
}

func TestScheduler_StopsWithContext(t *testing.T) {
	s, _, fakeClock := newTestScheduler(t, nil)
	assert.Equal(t, defaultReconcileInterval, s.interval)

	ctx, cancel := context.WithCancel(context.Background())
	served := make(chan error, 1)
	go func() { served <- s.Serve(ctx) }()

	waitForTicker(t, fakeClock)
	cancel()

	require.NoError(t, <-served)
}
