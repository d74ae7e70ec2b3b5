// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"screentrack/config"
	"screentrack/internal/delivery/api/router/handler"
	"screentrack/internal/delivery/ws"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	DeviceHandler *handler.DeviceHandler
	UnitHandler   *handler.UnitHandler
	ReportHandler *handler.ReportHandler
	TestHandler   *handler.TestHandler
	PushHandler   *handler.PushHandler
	Gateway       *ws.Gateway
	Config        *config.Config
}

// router holds all the handlers that need to be registered.
type router struct {
	deviceHandler *handler.DeviceHandler
	unitHandler   *handler.UnitHandler
	reportHandler *handler.ReportHandler
	testHandler   *handler.TestHandler
	pushHandler   *handler.PushHandler
	gateway       *ws.Gateway
	config        *config.Config
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		deviceHandler: params.DeviceHandler,
		unitHandler:   params.UnitHandler,
		reportHandler: params.ReportHandler,
		testHandler:   params.TestHandler,
		pushHandler:   params.PushHandler,
		gateway:       params.Gateway,
		config:        params.Config,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// WebSocket endpoints
	wsGroup := e.Group("/ws")
	{
		wsGroup.GET("/status", r.gateway.HandleDevice)
		wsGroup.GET("/observe", r.gateway.HandleObserver)
	}

	apiV1 := e.Group("/api/v1")

	// Device routes. Static paths are registered before the :deviceId ones.
	devicesGroup := apiV1.Group("/devices")
	{
		devicesGroup.POST("/register", r.deviceHandler.RegisterDevice)
		devicesGroup.POST("/unregister", r.deviceHandler.UnregisterDevice)
		devicesGroup.GET("/status", r.deviceHandler.GetAllStatuses)
		devicesGroup.GET("/status/summary", r.deviceHandler.GetStatusSummary)
		devicesGroup.POST("/:deviceId/location", r.deviceHandler.UpdateLocation)
		devicesGroup.POST("/:deviceId/heartbeat", r.deviceHandler.RecordHeartbeat)
		devicesGroup.GET("/:deviceId/status", r.deviceHandler.GetDeviceStatus)
	}

	// Tracking unit routes
	unitsGroup := apiV1.Group("/units/:materialId")
	{
		unitsGroup.GET("", r.unitHandler.GetTrackingUnit)
		unitsGroup.GET("/trail", r.unitHandler.GetLocationTrail)
		unitsGroup.POST("/session/start", r.unitHandler.StartSession)
		unitsGroup.POST("/session/end", r.unitHandler.EndSession)
		unitsGroup.POST("/alerts", r.unitHandler.AddAlert)
		unitsGroup.POST("/alerts/:alertId/resolve", r.unitHandler.ResolveAlert)
		unitsGroup.GET("/slots/:slotNumber/qr", r.unitHandler.GetPairingQR)
	}

	// Reports
	apiV1.GET("/reports/compliance", r.reportHandler.GetComplianceReport)

	// Pub/Sub push subscription for scheduled reconciliation triggers
	e.POST("/pubsub/reconcile", r.pushHandler.HandleReconcilePush)
}

func (r *router) RegisterTestRoutes(e *echo.Echo) {
	// Test routes - only enabled when configured
	if r.config.TestRoutes != nil && r.config.TestRoutes.Enabled {
		testGroup := e.Group("/test")
		testGroup.GET("/public", r.testHandler.TestPublicEndpoint)

		e.POST("/api/v1/reconcile", r.testHandler.RunReconcile)
	}
}
