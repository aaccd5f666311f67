package context

import (
	"context"
	"log/slog"

	"github.com/labstack/echo/v4"
)

// SetCaller records the authenticated user and tags the request logger with it.
func SetCaller(c echo.Context, userID uint) {
	c.Set(echoCallerKey, userID)

	ctx := c.Request().Context()
	if logger, ok := ctx.Value(loggerKey).(*slog.Logger); ok && logger != nil {
		ctx = context.WithValue(ctx, loggerKey, logger.With(slog.Uint64("user_id", uint64(userID))))
		c.SetRequest(c.Request().WithContext(ctx))
	}
}

// Caller returns the authenticated user id. ok is false on anonymous requests.
func Caller(c echo.Context) (userID uint, ok bool) {
	userID, ok = c.Get(echoCallerKey).(uint)

	return userID, ok && userID != 0
}
