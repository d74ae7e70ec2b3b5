package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"screentrack/internal/delivery/api/response"
	"screentrack/internal/domain/entity"
	"screentrack/internal/domain/service"
	"screentrack/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// UnitHandlerParams holds dependencies for UnitHandler, injected by Fx.
type UnitHandlerParams struct {
	fx.In

	TelemetryUC usecase.TelemetryUsecase
	QRService   service.QRCodeService
	Logger      *slog.Logger
}

// UnitHandler serves tracking unit sessions, alerts, trails, and pairing codes
type UnitHandler struct {
	telemetryUC usecase.TelemetryUsecase
	qrService   service.QRCodeService
	logger      *slog.Logger
}

// NewUnitHandler is the constructor for UnitHandler
func NewUnitHandler(params UnitHandlerParams) *UnitHandler {
	return &UnitHandler{
		telemetryUC: params.TelemetryUC,
		qrService:   params.QRService,
		logger:      params.Logger,
	}
}

// AddAlertRequest represents the request body for raising an alert
type AddAlertRequest struct {
	Type     entity.AlertType     `json:"type" validate:"required,max=64"`
	Message  string               `json:"message" validate:"required,max=512"`
	Severity entity.AlertSeverity `json:"severity" validate:"required,oneof=LOW MEDIUM HIGH CRITICAL"`
}

// GetTrackingUnit returns a unit with its slots, sessions, and alerts
func (h *UnitHandler) GetTrackingUnit(c echo.Context) error {
	unit, err := h.telemetryUC.GetTrackingUnit(c.Request().Context(), c.Param("materialId"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, unit)
}

// GetLocationTrail returns today's trail as a GeoJSON feature
func (h *UnitHandler) GetLocationTrail(c echo.Context) error {
	feature, err := h.telemetryUC.GetLocationTrail(c.Request().Context(), c.Param("materialId"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, feature)
}

// StartSession opens today's session
func (h *UnitHandler) StartSession(c echo.Context) error {
	unit, err := h.telemetryUC.StartDailySession(c.Request().Context(), c.Param("materialId"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, unit.CurrentSession)
}

// EndSession closes and scores the open session
func (h *UnitHandler) EndSession(c echo.Context) error {
	session, err := h.telemetryUC.EndDailySession(c.Request().Context(), c.Param("materialId"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, session)
}

// AddAlert raises an alert on a unit. A suppressed duplicate answers 204.
func (h *UnitHandler) AddAlert(c echo.Context) error {
	var req AddAlertRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid alert input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	alert, err := h.telemetryUC.AddAlert(c.Request().Context(), c.Param("materialId"), req.Type, req.Message, req.Severity)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	if alert == nil {
		return c.NoContent(http.StatusNoContent)
	}

	return response.Success(c, http.StatusCreated, alert)
}

// ResolveAlert marks an alert resolved
func (h *UnitHandler) ResolveAlert(c echo.Context) error {
	if err := h.telemetryUC.ResolveAlert(c.Request().Context(), c.Param("materialId"), c.Param("alertId")); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Alert resolved"})
}

// GetPairingQR renders the PNG a tablet scans to bind itself to a slot
func (h *UnitHandler) GetPairingQR(c echo.Context) error {
	slotNumber, err := strconv.Atoi(c.Param("slotNumber"))
	if err != nil || !entity.ValidSlotNumber(slotNumber) {
		return response.BadRequest(c, "INVALID_SLOT_NUMBER", "Slot number must be 1 or 2")
	}

	png, err := h.qrService.GeneratePairingQR(service.PairingTarget{
		MaterialID: c.Param("materialId"),
		SlotNumber: slotNumber,
	})
	if err != nil {
		h.logger.Error("Failed to generate pairing QR code", slog.Any("error", err))

		return response.InternalServerError(c, "QR_GENERATION_FAILED", "Failed to generate QR code")
	}

	return c.Blob(http.StatusOK, "image/png", png)
}
