package handler

import (
	"net/http"

	"screentrack/internal/delivery/api/response"
	"screentrack/internal/usecase"

	"github.com/labstack/echo/v4"
)

// TestHandler handles operational endpoints that are only mounted when test routes are enabled
type TestHandler struct {
	reconcileUC usecase.ReconcileUsecase
}

// NewTestHandler creates a new TestHandler instance
func NewTestHandler(reconcileUC usecase.ReconcileUsecase) *TestHandler {
	return &TestHandler{reconcileUC: reconcileUC}
}

// RunReconcile runs one reconciliation pass on demand
func (h *TestHandler) RunReconcile(c echo.Context) error {
	result, err := h.reconcileUC.RunOnce(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, result)
}

// TestPublicEndpoint tests a public endpoint
func (h *TestHandler) TestPublicEndpoint(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]any{
		"message": "Public endpoint test successful",
		"status":  "public",
	})
}

// HealthCheck reports that the process is serving
func HealthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
