// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"time"

	"academy/config"
	"academy/internal/domain/service"
	"academy/internal/errors"

	"github.com/golang-jwt/jwt/v5"
)

// jwtService is a concrete implementation of the TokenService interface using HS256 tokens.
type jwtService struct {
	secret []byte        // Empty when the deployment forgot to configure one.
	ttl    time.Duration // Lifetime of issued tokens.
	now    func() time.Time
}

// NewJWTService is the constructor for jwtService.
// A missing secret does not fail construction: every token operation
// reports service.ErrTokenMisconfigured instead, so the API answers 500.
func NewJWTService(cfg *config.Config) service.TokenService {
	s := &jwtService{
		ttl: config.DefaultTokenTTL,
		now: time.Now,
	}
	if cfg.Auth != nil {
		s.secret = []byte(cfg.Auth.JWTSecret)
		if cfg.Auth.TokenTTL > 0 {
			s.ttl = cfg.Auth.TokenTTL
		}
	}

	return s
}

// GenerateToken signs a token carrying the user id.
func (s *jwtService) GenerateToken(userID uint) (string, error) {
	if len(s.secret) == 0 {
		return "", service.ErrTokenMisconfigured
	}

	now := s.now()
	claims := service.Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", errors.Wrap(err, "failed to sign token")
	}

	return signed, nil
}

// ValidateToken verifies signature and expiry and returns the claims.
func (s *jwtService) ValidateToken(tokenString string) (*service.Claims, error) {
	if len(s.secret) == 0 {
		return nil, service.ErrTokenMisconfigured
	}

	claims := &service.Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(s.now),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, service.ErrTokenExpired
		}

		return nil, errors.Wrap(service.ErrTokenInvalid, err.Error())
	}

	if !token.Valid || claims.UserID == 0 {
		return nil, service.ErrTokenInvalid
	}

	return claims, nil
}
