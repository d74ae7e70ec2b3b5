package middleware

import (
	"log/slog"

	deliverycontext "screentrack/internal/delivery/context"
	"screentrack/internal/domain/constants"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// RequestIDMiddleware assigns every request an id and a request-scoped logger. Requests made
// by or about a tablet also carry its device id in the context and the logger.
type RequestIDMiddleware struct {
	logger *slog.Logger
}

// NewRequestIDMiddleware creates a new Request ID middleware
func NewRequestIDMiddleware(logger *slog.Logger) *RequestIDMiddleware {
	return &RequestIDMiddleware{
		logger: logger,
	}
}

// Process extracts or generates the request id, then stores it and the child logger in
// the request context for the use-case layer
func (m *RequestIDMiddleware) Process(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		requestID := c.Request().Header.Get(deliverycontext.HeaderXRequestID)
		if requestID == "" {
			requestID = uuid.New().String()
		}

		deliverycontext.SetRequestID(c, requestID)
		c.Response().Header().Set(deliverycontext.HeaderXRequestID, requestID)

		reqLogger := m.logger.With(slog.String("request_id", requestID))

		ctx := c.Request().Context()
		ctx = deliverycontext.WithRequestID(ctx, requestID)
		if deviceID := requestDeviceID(c); deviceID != "" {
			ctx = deliverycontext.WithDeviceID(ctx, deviceID)
			reqLogger = reqLogger.With(slog.String("device_id", deviceID))
		}
		ctx = deliverycontext.WithLogger(ctx, reqLogger)
		c.SetRequest(c.Request().WithContext(ctx))

		return next(c)
	}
}

// requestDeviceID finds the tablet named by the route, the WebSocket handshake query, or
// the device header, in that order.
func requestDeviceID(c echo.Context) string {
	if id := c.Param("deviceId"); id != "" {
		return id
	}
	if id := c.QueryParam("deviceId"); id != "" {
		return id
	}

	return c.Request().Header.Get(constants.HeaderDeviceID)
}
