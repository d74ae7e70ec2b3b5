package handler

import (
	"net/http"
	"time"

	"screentrack/internal/delivery/api/response"
	"screentrack/internal/domain/constants"
	"screentrack/internal/usecase"

	"github.com/labstack/echo/v4"
)

// ReportHandler serves fleet compliance reports
type ReportHandler struct {
	telemetryUC usecase.TelemetryUsecase
}

// NewReportHandler is the constructor for ReportHandler
func NewReportHandler(telemetryUC usecase.TelemetryUsecase) *ReportHandler {
	return &ReportHandler{telemetryUC: telemetryUC}
}

// GetComplianceReport aggregates one calendar day, today when no date is given
func (h *ReportHandler) GetComplianceReport(c echo.Context) error {
	var date time.Time
	if raw := c.QueryParam("date"); raw != "" {
		parsed, err := time.Parse(constants.DateLayout, raw)
		if err != nil {
			return response.BadRequest(c, "INVALID_DATE", "Date must be formatted as YYYY-MM-DD")
		}
		date = parsed
	}

	report, err := h.telemetryUC.GetComplianceReport(c.Request().Context(), date)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, report)
}
