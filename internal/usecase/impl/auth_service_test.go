package impl

import (
	"context"
	"testing"

	"academy/internal/domain/entity"
	domainerrors "academy/internal/domain/errors"
	"academy/internal/domain/repository"
	"academy/internal/domain/service"
	"academy/internal/errors"
	mockRepo "academy/internal/mocks/repository"
	mockSvc "academy/internal/mocks/service"
	"academy/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type authServiceFixtures struct {
	service      usecase.AuthUsecase
	userRepo     *mockRepo.MockUserRepository
	hasher       *mockSvc.MockPasswordHasher
	tokenService *mockSvc.MockTokenService
}

func createTestAuthService(t *testing.T) authServiceFixtures {
	fixtures := authServiceFixtures{
		userRepo:     mockRepo.NewMockUserRepository(t),
		hasher:       mockSvc.NewMockPasswordHasher(t),
		tokenService: mockSvc.NewMockTokenService(t),
	}
	fixtures.service = NewAuthService(AuthServiceParams{
		UserRepo:     fixtures.userRepo,
		Hasher:       fixtures.hasher,
		TokenService: fixtures.tokenService,
		Logger:       newDiscardLogger(),
	})

	return fixtures
}

func TestAuthService_Signup_Success(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().ExistsByUsername(ctx, "alice").Return(false, nil)
	fx.userRepo.EXPECT().ExistsByEmail(ctx, "alice@example.com").Return(false, nil)
	fx.hasher.EXPECT().Hash("secret1").Return("hashed", nil)
	fx.userRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.User")).
		Run(func(_ context.Context, user *entity.User) { user.ID = 5 }).
		Return(nil)
	fx.tokenService.EXPECT().GenerateToken(uint(5)).Return("token", nil)

	output, err := fx.service.Signup(ctx, &usecase.SignupInput{
		Username: " alice ",
		Email:    "alice@example.com",
		Password: "secret1",
	})

	require.NoError(t, err)
	assert.Equal(t, "token", output.Token)
	assert.Equal(t, uint(5), output.User.ID)
	assert.Equal(t, "alice", output.User.Username)
	assert.Equal(t, "hashed", output.User.PasswordHash)
	assert.Equal(t, entity.RoleUser, output.User.Role)
	assert.Equal(t, []uint{}, output.User.OwnedCourses)
}

func TestAuthService_Signup_Conflicts(t *testing.T) {
	t.Run("username", func(t *testing.T) {
		fx := createTestAuthService(t)
		fx.userRepo.EXPECT().ExistsByUsername(mock.Anything, "alice").Return(true, nil)

		_, err := fx.service.Signup(context.Background(), &usecase.SignupInput{Username: "alice", Email: "a@example.com", Password: "secret1"})

		assert.ErrorIs(t, err, domainerrors.ErrUsernameTaken)
	})

	t.Run("email", func(t *testing.T) {
		fx := createTestAuthService(t)
		fx.userRepo.EXPECT().ExistsByUsername(mock.Anything, "alice").Return(false, nil)
		fx.userRepo.EXPECT().ExistsByEmail(mock.Anything, "a@example.com").Return(true, nil)

		_, err := fx.service.Signup(context.Background(), &usecase.SignupInput{Username: "alice", Email: "a@example.com", Password: "secret1"})

		assert.ErrorIs(t, err, domainerrors.ErrEmailTaken)
	})

	t.Run("unique index race", func(t *testing.T) {
		fx := createTestAuthService(t)
		fx.userRepo.EXPECT().ExistsByUsername(mock.Anything, "alice").Return(false, nil)
		fx.userRepo.EXPECT().ExistsByEmail(mock.Anything, "a@example.com").Return(false, nil)
		fx.hasher.EXPECT().Hash("secret1").Return("hashed", nil)
		fx.userRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(errors.Wrap(repository.ErrEmailTaken, "insert"))

		_, err := fx.service.Signup(context.Background(), &usecase.SignupInput{Username: "alice", Email: "a@example.com", Password: "secret1"})

		assert.ErrorIs(t, err, domainerrors.ErrEmailTaken)
	})
}

func TestAuthService_Signup_MissingFields(t *testing.T) {
	fx := createTestAuthService(t)

	_, err := fx.service.Signup(context.Background(), &usecase.SignupInput{Username: "alice"})

	require.Error(t, err)
	appErr, ok := domainerrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, "All fields are required", appErr.Message())
}

func TestAuthService_Signup_MissingSigningKey(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().ExistsByUsername(ctx, "alice").Return(false, nil)
	fx.userRepo.EXPECT().ExistsByEmail(ctx, "a@example.com").Return(false, nil)
	fx.hasher.EXPECT().Hash("secret1").Return("hashed", nil)
	fx.userRepo.EXPECT().Create(ctx, mock.Anything).Return(nil)
	fx.tokenService.EXPECT().GenerateToken(mock.Anything).Return("", service.ErrTokenMisconfigured)

	_, err := fx.service.Signup(ctx, &usecase.SignupInput{Username: "alice", Email: "a@example.com", Password: "secret1"})

	assert.ErrorIs(t, err, domainerrors.ErrAuthMisconfigured)
}

func TestAuthService_Login(t *testing.T) {
	user := &entity.User{ID: 5, Email: "alice@example.com", PasswordHash: "hashed"}

	t.Run("success", func(t *testing.T) {
		fx := createTestAuthService(t)
		fx.userRepo.EXPECT().FindByEmail(mock.Anything, "alice@example.com").Return(user, nil)
		fx.hasher.EXPECT().Check("secret1", "hashed").Return(true)
		fx.tokenService.EXPECT().GenerateToken(uint(5)).Return("token", nil)

		output, err := fx.service.Login(context.Background(), &usecase.LoginInput{Email: "alice@example.com", Password: "secret1"})

		require.NoError(t, err)
		assert.Equal(t, "token", output.Token)
		assert.Equal(t, user, output.User)
	})

	t.Run("wrong password", func(t *testing.T) {
		fx := createTestAuthService(t)
		fx.userRepo.EXPECT().FindByEmail(mock.Anything, "alice@example.com").Return(user, nil)
		fx.hasher.EXPECT().Check("nope", "hashed").Return(false)

		_, err := fx.service.Login(context.Background(), &usecase.LoginInput{Email: "alice@example.com", Password: "nope"})

		assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	})

	t.Run("unknown email", func(t *testing.T) {
		fx := createTestAuthService(t)
		fx.userRepo.EXPECT().FindByEmail(mock.Anything, "bob@example.com").Return(nil, repository.ErrUserNotFound)

		_, err := fx.service.Login(context.Background(), &usecase.LoginInput{Email: "bob@example.com", Password: "secret1"})

		assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	})
}

func TestAuthService_Authenticate(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		wantErr error
	}{
		{name: "valid"},
		{name: "expired", err: service.ErrTokenExpired, wantErr: domainerrors.ErrTokenExpired},
		{name: "invalid", err: errors.Wrap(service.ErrTokenInvalid, "signature"), wantErr: domainerrors.ErrTokenInvalid},
		{name: "unexpected", err: errors.New("boom"), wantErr: domainerrors.ErrTokenInvalid},
		{name: "misconfigured", err: service.ErrTokenMisconfigured, wantErr: domainerrors.ErrAuthMisconfigured},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestAuthService(t)
			if tt.err == nil {
				fx.tokenService.EXPECT().ValidateToken("raw").Return(&service.Claims{UserID: 9}, nil)
			} else {
				fx.tokenService.EXPECT().ValidateToken("raw").Return(nil, tt.err)
			}

			userID, err := fx.service.Authenticate(context.Background(), "raw")

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Zero(t, userID)

				return
			}
			require.NoError(t, err)
			assert.Equal(t, uint(9), userID)
		})
	}
}

func TestAuthService_CurrentUser_Deleted(t *testing.T) {
	fx := createTestAuthService(t)
	fx.userRepo.EXPECT().FindByID(mock.Anything, uint(9)).Return(nil, repository.ErrUserNotFound)

	_, err := fx.service.CurrentUser(context.Background(), 9)

	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}
