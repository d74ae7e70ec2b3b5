package main

import (
	"context"
	"log/slog"
	"os"
	_ "time/tzdata"

	"screentrack/config"
	"screentrack/internal/delivery"
	"screentrack/internal/delivery/api"
	"screentrack/internal/delivery/api/router/handler"
	"screentrack/internal/delivery/worker"
	"screentrack/internal/delivery/ws"
	"screentrack/internal/domain/service"
	"screentrack/internal/infra/geocode"
	logs "screentrack/internal/infra/log"
	"screentrack/internal/infra/notification"
	"screentrack/internal/infra/persistence/postgres"
	"screentrack/internal/infra/pubsub"
	"screentrack/internal/infra/qrcode"
	"screentrack/internal/usecase"
	"screentrack/internal/usecase/impl"

	"github.com/jonboulle/clockwork"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		clockwork.NewRealClock,
		postgres.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewTrackingUnitRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			pubsub.NewEventPublisher,
			geocode.NewGeocoder,
			newFirebaseService,
			newQRCodeService,
		),
	)
}

// newFirebaseService creates the alert notifier, falling back to a logging no-op when
// Firebase is not configured
func newFirebaseService(ctx context.Context, cfg *config.Config, logger *slog.Logger) (service.NotificationService, error) {
	if cfg.Firebase == nil || cfg.Firebase.CredentialsPath == "" {
		logger.Info("Firebase not configured, urgent alerts will only be logged")

		return notification.NewNoopService(logger), nil
	}

	svc, err := notification.NewFirebaseService(ctx, cfg.Firebase.ProjectID, cfg.Firebase.CredentialsPath)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create Firebase service")
	}

	return svc, nil
}

// newQRCodeService creates a QR code service with dependency injection
func newQRCodeService(cfg *config.Config) (service.QRCodeService, error) {
	if cfg.QRCode == nil {
		// Use default values if not configured
		return qrcode.NewQRCodeService(256, "medium", "")
	}

	return qrcode.NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel, cfg.QRCode.BaseURL)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewStatusArbiter,
			impl.NewTelemetryService,
			impl.NewReconcileService,
			asSessionTracker,
		),
	)
}

// asSessionTracker exposes the telemetry engine to the gateway through its narrower port
func asSessionTracker(telemetry usecase.TelemetryUsecase) usecase.SessionTracker {
	return telemetry
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			ws.NewGateway,
			handler.NewDeviceHandler,
			handler.NewUnitHandler,
			handler.NewReportHandler,
			handler.NewTestHandler,
			handler.NewPushHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
			fx.Annotate(
				worker.NewScheduler,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
