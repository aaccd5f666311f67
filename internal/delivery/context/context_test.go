package context

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newContext() echo.Context {
	req := httptest.NewRequest(http.MethodGet, "/users/7", nil)

	return echo.New().NewContext(req, httptest.NewRecorder())
}

func TestBind(t *testing.T) {
	c := newContext()
	logger := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))

	Bind(c, "req-1", logger)

	assert.Equal(t, "req-1", RequestID(c))
	assert.Same(t, logger, LoggerFrom(c.Request().Context(), slog.Default()))
}

func TestLoggerFrom_Fallback(t *testing.T) {
	fallback := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))

	assert.Same(t, fallback, LoggerFrom(context.Background(), fallback))
	assert.Empty(t, RequestID(newContext()))
}

func TestSetCaller(t *testing.T) {
	c := newContext()
	var buf bytes.Buffer
	Bind(c, "req-2", slog.New(slog.NewTextHandler(&buf, nil)))

	_, ok := Caller(c)
	assert.False(t, ok)

	SetCaller(c, 7)

	userID, ok := Caller(c)
	require.True(t, ok)
	assert.Equal(t, uint(7), userID)

	LoggerFrom(c.Request().Context(), nil).Info("hello")
	assert.Contains(t, buf.String(), "user_id=7")
}

func TestCaller_ZeroIsAnonymous(t *testing.T) {
	c := newContext()
	SetCaller(c, 0)

	_, ok := Caller(c)
	assert.False(t, ok)
}
