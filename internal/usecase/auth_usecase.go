package usecase

import (
	"context"

	"academy/internal/domain/entity"
)

// SignupInput defines the data required to open an account.
type SignupInput struct {
	Username string
	Email    string
	Password string
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string
	Password string
}

// AuthOutput carries the issued bearer token and its user.
type AuthOutput struct {
	Token string
	User  *entity.User
}

// AuthUsecase covers account creation, login and token resolution.
type AuthUsecase interface {
	Signup(ctx context.Context, input *SignupInput) (*AuthOutput, error)
	Login(ctx context.Context, input *LoginInput) (*AuthOutput, error)

	// Authenticate resolves a raw bearer token to the caller's user id.
	Authenticate(ctx context.Context, token string) (uint, error)

	// CurrentUser loads the caller. It fails with ErrUserNotFound when the
	// account was deleted after the token was issued.
	CurrentUser(ctx context.Context, userID uint) (*entity.User, error)
}
