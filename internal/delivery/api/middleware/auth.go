package middleware

import (
	"strconv"
	"strings"

	deliverycontext "academy/internal/delivery/context"
	"academy/internal/domain/entity"
	domainerrors "academy/internal/domain/errors"
	"academy/internal/usecase"

	"github.com/labstack/echo/v4"
)

// keyCurrentUser caches the caller loaded by an admin check.
const keyCurrentUser = "current_user"

// AuthMiddleware provides middleware for bearer authentication and authorization.
type AuthMiddleware struct {
	authUC usecase.AuthUsecase
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(authUC usecase.AuthUsecase) *AuthMiddleware {
	return &AuthMiddleware{authUC: authUC}
}

// Authenticate rejects requests without a valid bearer token.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token, err := bearerToken(c)
		if err != nil {
			return err
		}

		userID, err := m.authUC.Authenticate(c.Request().Context(), token)
		if err != nil {
			return err
		}

		deliverycontext.SetCaller(c, userID)

		return next(c)
	}
}

// Optional sets the caller when a valid bearer token is present. Requests
// without one, or with a bad one, continue anonymously.
func (m *AuthMiddleware) Optional(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token, err := bearerToken(c)
		if err != nil {
			return next(c)
		}

		if userID, err := m.authUC.Authenticate(c.Request().Context(), token); err == nil {
			deliverycontext.SetCaller(c, userID)
		}

		return next(c)
	}
}

// RequireAdmin must run after Authenticate.
func (m *AuthMiddleware) RequireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		user, err := m.currentUser(c)
		if err != nil {
			return err
		}
		if !user.IsAdmin() {
			return domainerrors.ErrAdminRequired
		}

		return next(c)
	}
}

// SelfOrAdmin allows the request when the path parameter param is the
// caller's own id, or when the caller is an admin. It must run after Authenticate.
func (m *AuthMiddleware) SelfOrAdmin(param string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			callerID, ok := deliverycontext.Caller(c)
			if !ok {
				return domainerrors.ErrTokenMissing
			}

			targetID, err := strconv.ParseUint(c.Param(param), 10, 64)
			if err == nil && uint(targetID) == callerID {
				return next(c)
			}

			user, err := m.currentUser(c)
			if err != nil {
				return err
			}
			if !user.IsAdmin() {
				return domainerrors.ErrForbidden
			}

			return next(c)
		}
	}
}

func (m *AuthMiddleware) currentUser(c echo.Context) (*entity.User, error) {
	if user, ok := c.Get(keyCurrentUser).(*entity.User); ok {
		return user, nil
	}

	userID, ok := deliverycontext.Caller(c)
	if !ok {
		return nil, domainerrors.ErrTokenMissing
	}

	user, err := m.authUC.CurrentUser(c.Request().Context(), userID)
	if err != nil {
		return nil, err
	}
	c.Set(keyCurrentUser, user)

	return user, nil
}

// bearerToken extracts the token of an "Authorization: Bearer <token>" header.
func bearerToken(c echo.Context) (string, error) {
	header := strings.TrimSpace(c.Request().Header.Get(echo.HeaderAuthorization))
	if header == "" {
		return "", domainerrors.ErrTokenMissing
	}

	parts := strings.Fields(header)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", domainerrors.ErrTokenMalformed
	}

	return parts[1], nil
}
