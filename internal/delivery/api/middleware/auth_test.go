package middleware

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"academy/config"
	deliverycontext "academy/internal/delivery/context"
	"academy/internal/domain/entity"
	domainerrors "academy/internal/domain/errors"
	mockusecase "academy/internal/mocks/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newAuthTestEcho(t *testing.T) (*echo.Echo, *mockusecase.MockAuthUsecase) {
	authUC := mockusecase.NewMockAuthUsecase(t)
	m := NewAuthMiddleware(authUC)

	e := echo.New()
	e.HTTPErrorHandler = NewErrorMiddleware(slog.New(slog.DiscardHandler), &config.Config{}).HandleHTTPError

	whoami := func(c echo.Context) error {
		userID, _ := deliverycontext.Caller(c)

		return c.JSON(http.StatusOK, map[string]uint{"user_id": userID})
	}
	e.GET("/me", whoami, m.Authenticate)
	e.GET("/admin", whoami, m.Authenticate, m.RequireAdmin)
	e.GET("/users/:id", whoami, m.Authenticate, m.SelfOrAdmin("id"))

	return e, authUC
}

func serveWithToken(e *echo.Echo, target, authorization string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	if authorization != "" {
		req.Header.Set(echo.HeaderAuthorization, authorization)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

func TestAuthMiddleware_Authenticate(t *testing.T) {
	tests := []struct {
		name          string
		authorization string
		setup         func(authUC *mockusecase.MockAuthUsecase)
		wantStatus    int
		wantBody      string
	}{
		{
			name:          "valid token",
			authorization: "Bearer good",
			setup: func(authUC *mockusecase.MockAuthUsecase) {
				authUC.EXPECT().Authenticate(mock.Anything, "good").Return(uint(7), nil)
			},
			wantStatus: http.StatusOK,
			wantBody:   `"user_id":7`,
		},
		{
			name:       "missing header",
			wantStatus: http.StatusUnauthorized,
			wantBody:   "Authentication token is missing",
		},
		{
			name:          "wrong scheme",
			authorization: "Basic abc",
			wantStatus:    http.StatusUnauthorized,
			wantBody:      "TOKEN_MALFORMED",
		},
		{
			name:          "too many parts",
			authorization: "Bearer a b",
			wantStatus:    http.StatusUnauthorized,
			wantBody:      "TOKEN_MALFORMED",
		},
		{
			name:          "expired",
			authorization: "Bearer old",
			setup: func(authUC *mockusecase.MockAuthUsecase) {
				authUC.EXPECT().Authenticate(mock.Anything, "old").Return(0, domainerrors.ErrTokenExpired)
			},
			wantStatus: http.StatusUnauthorized,
			wantBody:   "TOKEN_EXPIRED",
		},
		{
			name:          "missing secret",
			authorization: "Bearer any",
			setup: func(authUC *mockusecase.MockAuthUsecase) {
				authUC.EXPECT().Authenticate(mock.Anything, "any").Return(0, domainerrors.ErrAuthMisconfigured)
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   "AUTH_MISCONFIGURED",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, authUC := newAuthTestEcho(t)
			if tt.setup != nil {
				tt.setup(authUC)
			}

			rec := serveWithToken(e, "/me", tt.authorization)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.wantBody)
		})
	}
}

func TestAuthMiddleware_RequireAdmin(t *testing.T) {
	e, authUC := newAuthTestEcho(t)

	authUC.EXPECT().Authenticate(mock.Anything, "admin").Return(uint(1), nil)
	authUC.EXPECT().Authenticate(mock.Anything, "user").Return(uint(2), nil)
	authUC.EXPECT().CurrentUser(mock.Anything, uint(1)).Return(&entity.User{ID: 1, Role: entity.RoleAdmin}, nil)
	authUC.EXPECT().CurrentUser(mock.Anything, uint(2)).Return(&entity.User{ID: 2, Role: entity.RoleUser}, nil)

	rec := serveWithToken(e, "/admin", "Bearer admin")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = serveWithToken(e, "/admin", "Bearer user")
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Contains(t, rec.Body.String(), "ADMIN_REQUIRED")
}

func TestAuthMiddleware_SelfOrAdmin(t *testing.T) {
	e, authUC := newAuthTestEcho(t)

	authUC.EXPECT().Authenticate(mock.Anything, "user").Return(uint(2), nil)
	authUC.EXPECT().Authenticate(mock.Anything, "admin").Return(uint(1), nil)
	authUC.EXPECT().CurrentUser(mock.Anything, uint(2)).Return(&entity.User{ID: 2, Role: entity.RoleUser}, nil)
	authUC.EXPECT().CurrentUser(mock.Anything, uint(1)).Return(&entity.User{ID: 1, Role: entity.RoleAdmin}, nil)

	// Own id never loads the user.
	rec := serveWithToken(e, "/users/2", "Bearer user")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = serveWithToken(e, "/users/3", "Bearer user")
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Contains(t, rec.Body.String(), "FORBIDDEN")

	rec = serveWithToken(e, "/users/3", "Bearer admin")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAuthMiddleware_Optional(t *testing.T) {
	tests := []struct {
		name          string
		authorization string
		setup         func(authUC *mockusecase.MockAuthUsecase)
		wantBody      string
	}{
		{
			name:          "valid token sets caller",
			authorization: "Bearer good",
			setup: func(authUC *mockusecase.MockAuthUsecase) {
				authUC.EXPECT().Authenticate(mock.Anything, "good").Return(uint(9), nil)
			},
			wantBody: `"user_id":9`,
		},
		{
			name:     "no token is anonymous",
			wantBody: `"user_id":0`,
		},
		{
			name:          "malformed header is anonymous",
			authorization: "Token abc",
			wantBody:      `"user_id":0`,
		},
		{
			name:          "expired token is anonymous",
			authorization: "Bearer old",
			setup: func(authUC *mockusecase.MockAuthUsecase) {
				authUC.EXPECT().Authenticate(mock.Anything, "old").Return(uint(0), domainerrors.ErrTokenExpired)
			},
			wantBody: `"user_id":0`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			authUC := mockusecase.NewMockAuthUsecase(t)
			if tt.setup != nil {
				tt.setup(authUC)
			}
			m := NewAuthMiddleware(authUC)

			e := echo.New()
			e.GET("/invoices/:n", func(c echo.Context) error {
				userID, _ := deliverycontext.Caller(c)

				return c.JSON(http.StatusOK, map[string]uint{"user_id": userID})
			}, m.Optional)

			rec := serveWithToken(e, "/invoices/INV-1", tt.authorization)

			assert.Equal(t, http.StatusOK, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.wantBody)
		})
	}
}
