package middleware

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"academy/config"
	"academy/internal/delivery/api/validator"
	domainerrors "academy/internal/domain/errors"
	"academy/internal/errors"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func serveError(t *testing.T, debug bool, handlerErr error) *httptest.ResponseRecorder {
	t.Helper()

	cfg := &config.Config{}
	cfg.Env.Debug = debug

	e := echo.New()
	e.Validator = validator.New()
	e.HTTPErrorHandler = NewErrorMiddleware(slog.New(slog.DiscardHandler), cfg).HandleHTTPError
	e.GET("/boom", func(echo.Context) error { return handlerErr })

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/boom", nil))

	return rec
}

func TestErrorMiddleware_HandleHTTPError(t *testing.T) {
	type payload struct {
		Email string `json:"email" validate:"required,email"`
	}
	validationErr := validator.New().Validate(&payload{Email: "nope"})

	tests := []struct {
		name       string
		debug      bool
		err        error
		wantStatus int
		wantBody   []string
		notInBody  []string
	}{
		{
			name:       "client app error keeps details",
			err:        errors.WithStack(domainerrors.ErrInvalidInput.WithDetails("id must be a positive integer")),
			wantStatus: http.StatusBadRequest,
			wantBody:   []string{`"code":"INVALID_INPUT"`, "id must be a positive integer"},
		},
		{
			name:       "validation error lists fields",
			err:        validationErr,
			wantStatus: http.StatusBadRequest,
			wantBody:   []string{`"code":"VALIDATION_ERROR"`, `"email"`},
		},
		{
			name:       "server app error hides details",
			err:        domainerrors.ErrTransactionFailed.WithDetails("deadlock detected"),
			wantStatus: http.StatusInternalServerError,
			notInBody:  []string{"deadlock"},
		},
		{
			name:       "server app error shows details in debug",
			debug:      true,
			err:        domainerrors.ErrTransactionFailed.WithDetails("deadlock detected"),
			wantStatus: http.StatusInternalServerError,
			wantBody:   []string{"deadlock"},
		},
		{
			name:       "unknown error",
			err:        errors.New("pq: connection reset"),
			wantStatus: http.StatusInternalServerError,
			wantBody:   []string{`"code":"INTERNAL_ERROR"`},
			notInBody:  []string{"connection reset"},
		},
		{
			name:       "echo http error",
			err:        echo.ErrMethodNotAllowed,
			wantStatus: http.StatusMethodNotAllowed,
			wantBody:   []string{`"code":"METHOD_NOT_ALLOWED"`},
		},
		{
			name:       "auth errors never carry details",
			err:        domainerrors.ErrTokenInvalid.WithDetails("signature is invalid"),
			wantStatus: http.StatusUnauthorized,
			notInBody:  []string{"signature"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serveError(t, tt.debug, tt.err)

			assert.Equal(t, tt.wantStatus, rec.Code)
			for _, s := range tt.wantBody {
				assert.Contains(t, rec.Body.String(), s)
			}
			for _, s := range tt.notInBody {
				assert.NotContains(t, rec.Body.String(), s)
			}
		})
	}
}

func TestErrorMiddleware_UnknownRoute(t *testing.T) {
	e := echo.New()
	e.HTTPErrorHandler = NewErrorMiddleware(slog.New(slog.DiscardHandler), &config.Config{}).HandleHTTPError

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/missing", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), `"code":"NOT_FOUND"`)
}
