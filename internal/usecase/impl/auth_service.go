package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "academy/internal/delivery/context"
	"academy/internal/domain/entity"
	domainerrors "academy/internal/domain/errors"
	"academy/internal/domain/repository"
	"academy/internal/domain/service"
	"academy/internal/errors"
	"academy/internal/usecase"

	"go.uber.org/fx"
)

// authService implements the AuthUsecase interface.
type authService struct {
	userRepo     repository.UserRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger
}

// AuthServiceParams holds dependencies for AuthService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	UserRepo     repository.UserRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewAuthService is the constructor for authService.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		userRepo:     params.UserRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		logger:       params.Logger,
	}
}

func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.LoggerFrom(ctx, srv.logger)
}

// Signup creates a regular user and logs it in.
func (srv *authService) Signup(ctx context.Context, input *usecase.SignupInput) (*usecase.AuthOutput, error) {
	user, err := createAccount(ctx, srv.userRepo, srv.hasher, newAccount{
		Username: input.Username,
		Email:    input.Email,
		Password: input.Password,
		Role:     entity.RoleUser,
	})
	if err != nil {
		srv.log(ctx).Info("Signup rejected", slog.String("email", input.Email), slog.Any("error", err))

		return nil, err
	}

	token, err := srv.issueToken(user.ID)
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("User signed up", slog.Uint64("user_id", uint64(user.ID)))

	return &usecase.AuthOutput{Token: token, User: user}, nil
}

// Login checks the credentials and issues a token.
func (srv *authService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.AuthOutput, error) {
	user, err := srv.userRepo.FindByEmail(ctx, strings.TrimSpace(input.Email))
	if errors.Is(err, repository.ErrUserNotFound) {
		return nil, domainerrors.ErrInvalidCredentials
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find user by email")
	}

	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.log(ctx).Info("Login failed", slog.Uint64("user_id", uint64(user.ID)))

		return nil, domainerrors.ErrInvalidCredentials
	}

	token, err := srv.issueToken(user.ID)
	if err != nil {
		return nil, err
	}

	return &usecase.AuthOutput{Token: token, User: user}, nil
}

// Authenticate validates a raw bearer token.
func (srv *authService) Authenticate(ctx context.Context, token string) (uint, error) {
	claims, err := srv.tokenService.ValidateToken(token)
	switch {
	case err == nil:
		return claims.UserID, nil
	case errors.Is(err, service.ErrTokenExpired):
		return 0, domainerrors.ErrTokenExpired
	case errors.Is(err, service.ErrTokenMisconfigured):
		srv.log(ctx).Error("Token validation impossible, signing key missing")

		return 0, domainerrors.ErrAuthMisconfigured
	default:
		srv.log(ctx).Debug("Token rejected", slog.Any("error", err))

		return 0, domainerrors.ErrTokenInvalid
	}
}

// CurrentUser loads the authenticated user.
func (srv *authService) CurrentUser(ctx context.Context, userID uint) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, translateRepoError(err, "failed to find current user")
	}

	return user, nil
}

func (srv *authService) issueToken(userID uint) (string, error) {
	token, err := srv.tokenService.GenerateToken(userID)
	if errors.Is(err, service.ErrTokenMisconfigured) {
		return "", domainerrors.ErrAuthMisconfigured
	}
	if err != nil {
		return "", errors.Wrap(err, "failed to issue token")
	}

	return token, nil
}
