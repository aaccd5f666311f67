package auth

import (
	"testing"
	"time"

	"academy/config"
	"academy/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test_secret_key_very_long_for_testing"

func newTestConfig(secret string, ttl time.Duration) *config.Config {
	return &config.Config{
		Auth: &config.AuthConfig{
			JWTSecret: secret,
			TokenTTL:  ttl,
		},
	}
}

func TestJWTService_GenerateAndValidateToken(t *testing.T) {
	jwtService := NewJWTService(newTestConfig(testSecret, time.Hour))

	token, err := jwtService.GenerateToken(42)
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := jwtService.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, uint(42), claims.UserID)
	require.NotNil(t, claims.ExpiresAt)
	require.NotNil(t, claims.IssuedAt)
	assert.Equal(t, time.Hour, claims.ExpiresAt.Sub(claims.IssuedAt.Time))
}

func TestJWTService_DefaultTTL(t *testing.T) {
	jwtService := NewJWTService(newTestConfig(testSecret, 0))

	token, err := jwtService.GenerateToken(1)
	require.NoError(t, err)

	claims, err := jwtService.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, config.DefaultTokenTTL, claims.ExpiresAt.Sub(claims.IssuedAt.Time))
}

func TestJWTService_ExpiredToken(t *testing.T) {
	s := NewJWTService(newTestConfig(testSecret, time.Minute)).(*jwtService)
	s.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }

	token, err := s.GenerateToken(7)
	require.NoError(t, err)

	s.now = time.Now
	claims, err := s.ValidateToken(token)
	assert.ErrorIs(t, err, service.ErrTokenExpired)
	assert.Nil(t, claims)
}

func TestJWTService_InvalidToken(t *testing.T) {
	jwtService := NewJWTService(newTestConfig(testSecret, time.Hour))

	claims, err := jwtService.ValidateToken("clearly-not-a-jwt-token-format")
	assert.ErrorIs(t, err, service.ErrTokenInvalid)
	assert.Nil(t, claims)
}

func TestJWTService_WrongSecret(t *testing.T) {
	issuer := NewJWTService(newTestConfig("another_secret_used_by_someone_else", time.Hour))
	token, err := issuer.GenerateToken(3)
	require.NoError(t, err)

	claims, err := NewJWTService(newTestConfig(testSecret, time.Hour)).ValidateToken(token)
	assert.ErrorIs(t, err, service.ErrTokenInvalid)
	assert.Nil(t, claims)
}

func TestJWTService_RejectsOtherAlgorithms(t *testing.T) {
	claims := service.Claims{
		UserID: 3,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS512, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)

	_, err = NewJWTService(newTestConfig(testSecret, time.Hour)).ValidateToken(token)
	assert.ErrorIs(t, err, service.ErrTokenInvalid)
}

func TestJWTService_MissingUserID(t *testing.T) {
	claims := service.Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)

	_, err = NewJWTService(newTestConfig(testSecret, time.Hour)).ValidateToken(token)
	assert.ErrorIs(t, err, service.ErrTokenInvalid)
}

func TestJWTService_EmptySecret(t *testing.T) {
	jwtService := NewJWTService(newTestConfig("", time.Hour))

	_, err := jwtService.GenerateToken(1)
	assert.ErrorIs(t, err, service.ErrTokenMisconfigured)

	_, err = jwtService.ValidateToken("anything")
	assert.ErrorIs(t, err, service.ErrTokenMisconfigured)

	_, err = NewJWTService(&config.Config{}).ValidateToken("anything")
	assert.ErrorIs(t, err, service.ErrTokenMisconfigured)
}
