package middleware

import (
	"context"
	"log/slog"
	"time"

	"screentrack/config"
	deliverycontext "screentrack/internal/delivery/context"

	"github.com/labstack/echo/v4"
)

// LoggerMiddleware logs HTTP requests when debug is on, and WebSocket sessions always.
type LoggerMiddleware struct {
	logger *slog.Logger
	debug  bool
}

// NewLoggerMiddleware creates a new logger middleware
func NewLoggerMiddleware(logger *slog.Logger, config *config.Config) *LoggerMiddleware {
	return &LoggerMiddleware{
		logger: logger,
		debug:  config.Env.Debug,
	}
}

// Handle processes request logging
func (m *LoggerMiddleware) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()
		err := next(c)

		switch {
		case c.IsWebSocket():
			m.logSocket(c, start, err)
		case m.debug:
			m.logRequest(c, start, err)
		}

		return err
	}
}

// logRequest logs request details
func (m *LoggerMiddleware) logRequest(c echo.Context, start time.Time, err error) {
	req := c.Request()
	res := c.Response()

	fields := []slog.Attr{
		slog.String("request_id", deliverycontext.GetRequestID(c)),
		slog.String("method", req.Method),
		slog.String("uri", req.URL.Path),
		slog.Int("status", res.Status),
		slog.Duration("latency", time.Since(start)),
		slog.String("remote_ip", c.RealIP()),
		slog.String("user_agent", req.UserAgent()),
		slog.String("time", start.Format(time.RFC3339)),
	}

	if deviceID := deliverycontext.GetDeviceIDFromContext(req.Context()); deviceID != "" {
		fields = append(fields, slog.String("device_id", deviceID))
	}
	if len(req.URL.RawQuery) > 0 {
		fields = append(fields, slog.String("query", req.URL.RawQuery))
	}
	if err != nil {
		fields = append(fields, slog.Any("error", err))
	}

	logLevel := slog.LevelInfo
	if res.Status >= 400 {
		logLevel = slog.LevelWarn
	}
	if res.Status >= 500 {
		logLevel = slog.LevelError
	}

	m.logger.LogAttrs(context.Background(), logLevel, "HTTP Request", fields...)
}

// logSocket logs a finished WebSocket handshake. An upgraded socket's handler returns only
// when the connection ends, so the elapsed time is the session length.
func (m *LoggerMiddleware) logSocket(c echo.Context, start time.Time, err error) {
	req := c.Request()
	res := c.Response()

	fields := []slog.Attr{
		slog.String("request_id", deliverycontext.GetRequestID(c)),
		slog.String("uri", req.URL.Path),
		slog.Int("status", res.Status),
		slog.Duration("session", time.Since(start)),
		slog.String("remote_ip", c.RealIP()),
	}
	if deviceID := deliverycontext.GetDeviceIDFromContext(req.Context()); deviceID != "" {
		fields = append(fields, slog.String("device_id", deviceID))
	}
	if err != nil {
		fields = append(fields, slog.Any("error", err))
	}

	logLevel := slog.LevelInfo
	if res.Status >= 400 {
		logLevel = slog.LevelWarn
	}

	m.logger.LogAttrs(context.Background(), logLevel, "WebSocket Session", fields...)
}
