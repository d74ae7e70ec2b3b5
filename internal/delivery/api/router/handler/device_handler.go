package handler

import (
	"log/slog"
	"net/http"

	"screentrack/internal/delivery/api/response"
	"screentrack/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// DeviceHandlerParams holds dependencies for DeviceHandler, injected by Fx.
type DeviceHandlerParams struct {
	fx.In

	TelemetryUC usecase.TelemetryUsecase
	StatusUC    usecase.StatusUsecase
	Logger      *slog.Logger
}

// DeviceHandler holds dependencies for device-related handlers
type DeviceHandler struct {
	telemetryUC usecase.TelemetryUsecase
	statusUC    usecase.StatusUsecase
	logger      *slog.Logger
}

// NewDeviceHandler is the constructor for DeviceHandler
func NewDeviceHandler(params DeviceHandlerParams) *DeviceHandler {
	return &DeviceHandler{
		telemetryUC: params.TelemetryUC,
		statusUC:    params.StatusUC,
		logger:      params.Logger,
	}
}

// RegisterDevice binds a tablet to a slot
func (h *DeviceHandler) RegisterDevice(c echo.Context) error {
	var req usecase.RegisterDeviceInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid registration input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	unit, err := h.telemetryUC.RegisterDevice(c.Request().Context(), &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, unit)
}

// UnregisterDevice marks a slot's tablet offline
func (h *DeviceHandler) UnregisterDevice(c echo.Context) error {
	var req usecase.UnregisterDeviceInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid unregistration input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	result, err := h.telemetryUC.UnregisterDevice(c.Request().Context(), &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, result)
}

// UpdateLocation records a GPS fix for a device
func (h *DeviceHandler) UpdateLocation(c echo.Context) error {
	deviceID := c.Param("deviceId")
	if deviceID == "" {
		return response.BadRequest(c, "INVALID_ID", "Device ID is required")
	}

	var req usecase.LocationInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid location input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	result, err := h.telemetryUC.UpdateLocation(c.Request().Context(), deviceID, &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, result)
}

// RecordHeartbeat registers a database heartbeat for a device
func (h *DeviceHandler) RecordHeartbeat(c echo.Context) error {
	deviceID := c.Param("deviceId")
	if deviceID == "" {
		return response.BadRequest(c, "INVALID_ID", "Device ID is required")
	}

	if err := h.telemetryUC.RecordHeartbeat(c.Request().Context(), deviceID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, h.statusUC.GetStatus(deviceID))
}

// GetDeviceStatus returns the arbitrated status of one device
func (h *DeviceHandler) GetDeviceStatus(c echo.Context) error {
	deviceID := c.Param("deviceId")
	if deviceID == "" {
		return response.BadRequest(c, "INVALID_ID", "Device ID is required")
	}

	return response.Success(c, http.StatusOK, h.statusUC.GetStatus(deviceID))
}

// GetAllStatuses returns the arbitrated status of every known device
func (h *DeviceHandler) GetAllStatuses(c echo.Context) error {
	return response.Success(c, http.StatusOK, h.statusUC.GetAllStatuses())
}

// GetStatusSummary returns verdict counts by source and confidence
func (h *DeviceHandler) GetStatusSummary(c echo.Context) error {
	return response.Success(c, http.StatusOK, h.statusUC.Summary())
}
