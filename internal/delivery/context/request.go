// Package context carries per-request state between the HTTP layer and the
// use cases.
package context

import (
	"context"
	"log/slog"

	"github.com/labstack/echo/v4"
)

type ctxKey int

const loggerKey ctxKey = iota

// echo.Context keys.
const (
	echoRequestIDKey = "request_id"
	echoCallerKey    = "caller_id"
)

// Bind stores requestID on echo.Context and logger on the request context,
// where use cases and repositories pick it up.
func Bind(c echo.Context, requestID string, logger *slog.Logger) {
	c.Set(echoRequestIDKey, requestID)

	ctx := context.WithValue(c.Request().Context(), loggerKey, logger)
	c.SetRequest(c.Request().WithContext(ctx))
}

// RequestID returns the id assigned by the request id middleware, or "".
func RequestID(c echo.Context) string {
	id, _ := c.Get(echoRequestIDKey).(string)

	return id
}

// LoggerFrom returns the request-scoped logger, or fallback outside a request.
func LoggerFrom(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if logger, ok := ctx.Value(loggerKey).(*slog.Logger); ok && logger != nil {
		return logger
	}

	return fallback
}
