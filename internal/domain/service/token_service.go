package service

import (
	"academy/internal/errors"

	"github.com/golang-jwt/jwt/v5"
)

// Token validation failures, mapped by the auth gate to its rejections.
var (
	ErrTokenExpired       = errors.New("token has expired")
	ErrTokenInvalid       = errors.New("invalid token")
	ErrTokenMisconfigured = errors.New("token signing key is not configured")
)

// Claims are the custom JWT claims issued at signup and login.
type Claims struct {
	UserID uint `json:"user_id"`
	jwt.RegisteredClaims
}

// TokenService issues and validates bearer tokens.
type TokenService interface {
	// GenerateToken signs a token for the user.
	GenerateToken(userID uint) (string, error)

	// ValidateToken parses the token and returns its claims, or one of
	// ErrTokenExpired, ErrTokenInvalid, ErrTokenMisconfigured.
	ValidateToken(tokenString string) (*Claims, error)
}
