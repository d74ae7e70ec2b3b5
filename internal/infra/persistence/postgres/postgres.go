package postgres

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"screentrack/config"
	"screentrack/internal/domain/lifecycle"
	"screentrack/internal/infra/persistence/model"

	"github.com/pkg/errors"
	pgLib "github.com/slighter12/go-lib/database/postgres"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

const (
	poolSampleInterval = 5 * time.Second
	poolWaitWarnAfter  = 50 * time.Millisecond
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New opens the tracking store. Startup pings the primary, migrates tracking_units when
// auto-migrate is on, and starts sampling pool contention.
func New(params Params) (*gorm.DB, error) {
	db, err := pgLib.New(params.Config.Postgres)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create PostgreSQL client")
	}
	// Multi-step writes go through TransactionManager.Execute.
	db = db.Session(&gorm.Session{
		SkipDefaultTransaction: true,
		Logger:                 newGormSlogLogger(params.Logger, params.Config),
	})

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get PostgreSQL sql.DB")
	}

	sampleCtx, stopSampling := context.WithCancel(context.Background())

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := sqlDB.PingContext(ctx); err != nil {
				return errors.Wrap(err, "failed to ping PostgreSQL")
			}
			if params.Config.Env.AutoMigrate {
				if err := migrate(ctx, db, params.Logger); err != nil {
					return err
				}
			}

			go samplePool(sampleCtx, params.Logger, sqlDB)

			return nil
		},
		OnStop: func(_ context.Context) error {
			stopSampling()

			return errors.WithStack(sqlDB.Close())
		},
	})

	return db, nil
}

func migrate(ctx context.Context, db *gorm.DB, logger *slog.Logger) error {
	if err := db.WithContext(ctx).AutoMigrate(&model.TrackingUnitModel{}); err != nil {
		return errors.Wrap(err, "failed to migrate tracking_units")
	}
	logger.Info("Postgres schema migrated", slog.String("table", model.TrackingUnitModel{}.TableName()))

	return nil
}

// samplePool logs whenever callers had to wait for a connection since the last sample.
// Session writes and the reconcile sweep compete for the same pool, so sustained waits
// show up here before they show up as request latency.
func samplePool(ctx context.Context, logger *slog.Logger, sqlDB *sql.DB) {
	ticker := time.NewTicker(poolSampleInterval)
	defer ticker.Stop()

	prev := sqlDB.Stats()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			cur := sqlDB.Stats()
			waits := cur.WaitCount - prev.WaitCount
			waited := cur.WaitDuration - prev.WaitDuration
			prev = cur

			if waits <= 0 {
				continue
			}

			level := slog.LevelDebug
			if waited >= poolWaitWarnAfter {
				level = slog.LevelWarn
			}
			logger.LogAttrs(ctx, level, "Tracking store pool contention",
				slog.Int64("waits", waits),
				slog.Duration("waited", waited),
				slog.Duration("avg_wait", waited/time.Duration(waits)),
				slog.Int("open_conns", cur.OpenConnections),
				slog.Int("in_use", cur.InUse),
				slog.Int("idle", cur.Idle),
				slog.Int("max_open", cur.MaxOpenConnections),
			)
		}
	}
}
