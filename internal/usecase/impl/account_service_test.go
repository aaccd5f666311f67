package impl

import (
	"context"
	"testing"

	"academy/internal/domain/entity"
	domainerrors "academy/internal/domain/errors"
	"academy/internal/domain/repository"
	mockRepo "academy/internal/mocks/repository"
	mockSvc "academy/internal/mocks/service"
	"academy/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type accountServiceFixtures struct {
	service    usecase.AccountUsecase
	txManager  *mockRepo.MockTransactionManager
	userRepo   *mockRepo.MockUserRepository
	courseRepo *mockRepo.MockCourseRepository
	blogRepo   *mockRepo.MockBlogRepository
	hasher     *mockSvc.MockPasswordHasher
}

func createTestAccountService(t *testing.T) accountServiceFixtures {
	fixtures := accountServiceFixtures{
		txManager:  mockRepo.NewMockTransactionManager(t),
		userRepo:   mockRepo.NewMockUserRepository(t),
		courseRepo: mockRepo.NewMockCourseRepository(t),
		blogRepo:   mockRepo.NewMockBlogRepository(t),
		hasher:     mockSvc.NewMockPasswordHasher(t),
	}
	fixtures.service = NewAccountService(AccountServiceParams{
		TxManager:  fixtures.txManager,
		UserRepo:   fixtures.userRepo,
		CourseRepo: fixtures.courseRepo,
		BlogRepo:   fixtures.blogRepo,
		Hasher:     fixtures.hasher,
		Logger:     newDiscardLogger(),
	})

	return fixtures
}

func TestAccountService_CreateUser_DefaultsRole(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().ExistsByUsername(ctx, "bob").Return(false, nil)
	fx.userRepo.EXPECT().ExistsByEmail(ctx, "bob@example.com").Return(false, nil)
	fx.hasher.EXPECT().Hash("secret1").Return("hashed", nil)
	fx.userRepo.EXPECT().Create(ctx, mock.MatchedBy(func(u *entity.User) bool {
		return u.Role == entity.RoleUser
	})).Return(nil)

	user, err := fx.service.CreateUser(ctx, &usecase.CreateUserInput{
		Username: "bob",
		Email:    "bob@example.com",
		Password: "secret1",
		Role:     "superuser",
	})

	require.NoError(t, err)
	assert.Equal(t, entity.RoleUser, user.Role)
}

func TestAccountService_GetUserDetails_KeepsListOrder(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()
	user := &entity.User{
		ID:               3,
		OwnedCourses:     []uint{11, 10},
		FavouriteCourses: []uint{},
		SavedBlogs:       []uint{2, 404},
	}

	fx.userRepo.EXPECT().FindByID(ctx, uint(3)).Return(user, nil)
	fx.courseRepo.EXPECT().FindByIDs(ctx, []uint{11, 10}).
		Return([]*entity.Course{{ID: 10}, {ID: 11}}, nil)
	fx.blogRepo.EXPECT().FindByIDs(ctx, []uint{2, 404}).Return([]*entity.Blog{{ID: 2}}, nil)

	details, err := fx.service.GetUserDetails(ctx, 3)

	require.NoError(t, err)
	require.Len(t, details.OwnedCourses, 2)
	assert.Equal(t, uint(11), details.OwnedCourses[0].ID)
	assert.Equal(t, uint(10), details.OwnedCourses[1].ID)
	assert.Empty(t, details.FavouriteCourses)
	require.Len(t, details.SavedBlogs, 1)
	assert.Equal(t, uint(2), details.SavedBlogs[0].ID)
}

func TestAccountService_UpdateUser(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()
	username := "carol"
	email := "same@example.com"

	fx.userRepo.EXPECT().FindByID(ctx, uint(3)).
		Return(&entity.User{ID: 3, Username: "bob", Email: "same@example.com"}, nil)
	fx.userRepo.EXPECT().ExistsByUsername(ctx, "carol").Return(false, nil)
	fx.userRepo.EXPECT().Update(ctx, mock.MatchedBy(func(u *entity.User) bool {
		return u.Username == "carol" && u.Email == "same@example.com"
	})).Return(nil)

	user, err := fx.service.UpdateUser(ctx, &usecase.UpdateUserInput{UserID: 3, Username: &username, Email: &email})

	require.NoError(t, err)
	assert.Equal(t, "carol", user.Username)
}

func TestAccountService_UpdateUser_EmailTaken(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()
	email := "taken@example.com"

	fx.userRepo.EXPECT().FindByID(ctx, uint(3)).Return(&entity.User{ID: 3, Email: "bob@example.com"}, nil)
	fx.userRepo.EXPECT().ExistsByEmail(ctx, email).Return(true, nil)

	_, err := fx.service.UpdateUser(ctx, &usecase.UpdateUserInput{UserID: 3, Email: &email})

	assert.ErrorIs(t, err, domainerrors.ErrEmailTaken)
}

func TestAccountService_DeleteUser(t *testing.T) {
	t.Run("primary admin", func(t *testing.T) {
		fx := createTestAccountService(t)

		_, err := fx.service.DeleteUser(context.Background(), entity.PrimaryAdminID)

		assert.ErrorIs(t, err, domainerrors.ErrPrimaryAdminProtected)
	})

	t.Run("has purchases", func(t *testing.T) {
		fx := createTestAccountService(t)
		fx.userRepo.EXPECT().FindByID(mock.Anything, uint(4)).Return(&entity.User{ID: 4}, nil)
		fx.userRepo.EXPECT().Delete(mock.Anything, uint(4)).Return(repository.ErrUserHasPurchases)

		_, err := fx.service.DeleteUser(context.Background(), 4)

		require.Error(t, err)
		appErr, ok := domainerrors.AsAppError(err)
		require.True(t, ok)
		assert.Equal(t, 409, appErr.HTTPCode())
	})

	t.Run("success", func(t *testing.T) {
		fx := createTestAccountService(t)
		fx.userRepo.EXPECT().FindByID(mock.Anything, uint(4)).Return(&entity.User{ID: 4, Username: "dave"}, nil)
		fx.userRepo.EXPECT().Delete(mock.Anything, uint(4)).Return(nil)

		user, err := fx.service.DeleteUser(context.Background(), 4)

		require.NoError(t, err)
		assert.Equal(t, "dave", user.Username)
	})
}

func TestAccountService_EnsureAdmin(t *testing.T) {
	input := &usecase.CreateUserInput{Username: "admin", Email: "admin@example.com", Password: "secret1"}

	t.Run("creates", func(t *testing.T) {
		fx := createTestAccountService(t)
		fx.userRepo.EXPECT().FindByEmail(mock.Anything, "admin@example.com").Return(nil, repository.ErrUserNotFound)
		fx.userRepo.EXPECT().ExistsByUsername(mock.Anything, "admin").Return(false, nil)
		fx.userRepo.EXPECT().ExistsByEmail(mock.Anything, "admin@example.com").Return(false, nil)
		fx.hasher.EXPECT().Hash("secret1").Return("hashed", nil)
		fx.userRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

		user, created, err := fx.service.EnsureAdmin(context.Background(), input)

		require.NoError(t, err)
		assert.True(t, created)
		assert.True(t, user.IsAdmin())
		assert.Equal(t, entity.Role(""), input.Role)
	})

	t.Run("promotes existing", func(t *testing.T) {
		fx := createTestAccountService(t)
		fx.userRepo.EXPECT().FindByEmail(mock.Anything, "admin@example.com").
			Return(&entity.User{ID: 2, Role: entity.RoleUser}, nil)
		fx.userRepo.EXPECT().Update(mock.Anything, mock.Anything).Return(nil)

		user, created, err := fx.service.EnsureAdmin(context.Background(), input)

		require.NoError(t, err)
		assert.False(t, created)
		assert.True(t, user.IsAdmin())
	})

	t.Run("already admin", func(t *testing.T) {
		fx := createTestAccountService(t)
		fx.userRepo.EXPECT().FindByEmail(mock.Anything, "admin@example.com").
			Return(&entity.User{ID: 1, Role: entity.RoleAdmin}, nil)

		_, created, err := fx.service.EnsureAdmin(context.Background(), input)

		require.NoError(t, err)
		assert.False(t, created)
	})
}

func TestAccountService_PromoteToAdmin_Unknown(t *testing.T) {
	fx := createTestAccountService(t)
	fx.userRepo.EXPECT().FindByEmail(mock.Anything, "ghost@example.com").Return(nil, repository.ErrUserNotFound)

	_, err := fx.service.PromoteToAdmin(context.Background(), "ghost@example.com")

	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

func TestAccountService_AddFavouriteCourse(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()
	tx := expectTx(t, fx.txManager)

	fx.courseRepo.EXPECT().FindByID(ctx, uint(10)).Return(&entity.Course{ID: 10}, nil)
	tx.userRepo.EXPECT().FindByIDForUpdate(ctx, uint(3)).
		Return(&entity.User{ID: 3, FavouriteCourses: []uint{4}}, nil)
	tx.userRepo.EXPECT().UpdateFavouriteCourses(ctx, uint(3), []uint{4, 10}).Return(nil)

	user, err := fx.service.AddFavouriteCourse(ctx, 3, 10)

	require.NoError(t, err)
	assert.Equal(t, []uint{4, 10}, user.FavouriteCourses)
}

func TestAccountService_AddFavouriteCourse_Duplicate(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()
	tx := expectTx(t, fx.txManager)

	fx.courseRepo.EXPECT().FindByID(ctx, uint(10)).Return(&entity.Course{ID: 10}, nil)
	tx.userRepo.EXPECT().FindByIDForUpdate(ctx, uint(3)).
		Return(&entity.User{ID: 3, FavouriteCourses: []uint{10}}, nil)

	_, err := fx.service.AddFavouriteCourse(ctx, 3, 10)

	assert.ErrorIs(t, err, domainerrors.ErrAlreadyFavourite)
}

func TestAccountService_AddFavouriteCourse_UnknownCourse(t *testing.T) {
	fx := createTestAccountService(t)
	fx.courseRepo.EXPECT().FindByID(mock.Anything, uint(999)).Return(nil, repository.ErrCourseNotFound)

	_, err := fx.service.AddFavouriteCourse(context.Background(), 3, 999)

	assert.ErrorIs(t, err, domainerrors.ErrCourseNotFound)
}

func TestAccountService_RemoveFavouriteCourse_NotPresent(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()
	tx := expectTx(t, fx.txManager)

	tx.userRepo.EXPECT().FindByIDForUpdate(ctx, uint(3)).Return(&entity.User{ID: 3}, nil)

	_, err := fx.service.RemoveFavouriteCourse(ctx, 3, 10)

	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestAccountService_SaveAndUnsaveBlog(t *testing.T) {
	t.Run("save", func(t *testing.T) {
		fx := createTestAccountService(t)
		ctx := context.Background()
		tx := expectTx(t, fx.txManager)

		fx.blogRepo.EXPECT().FindByID(ctx, uint(2)).Return(&entity.Blog{ID: 2}, nil)
		tx.userRepo.EXPECT().FindByIDForUpdate(ctx, uint(3)).Return(&entity.User{ID: 3, SavedBlogs: []uint{}}, nil)
		tx.userRepo.EXPECT().UpdateSavedBlogs(ctx, uint(3), []uint{2}).Return(nil)

		user, err := fx.service.SaveBlog(ctx, 3, 2)

		require.NoError(t, err)
		assert.Equal(t, []uint{2}, user.SavedBlogs)
	})

	t.Run("save twice", func(t *testing.T) {
		fx := createTestAccountService(t)
		ctx := context.Background()
		tx := expectTx(t, fx.txManager)

		fx.blogRepo.EXPECT().FindByID(ctx, uint(2)).Return(&entity.Blog{ID: 2}, nil)
		tx.userRepo.EXPECT().FindByIDForUpdate(ctx, uint(3)).Return(&entity.User{ID: 3, SavedBlogs: []uint{2}}, nil)

		_, err := fx.service.SaveBlog(ctx, 3, 2)

		assert.ErrorIs(t, err, domainerrors.ErrBlogAlreadySaved)
	})

	t.Run("unsave", func(t *testing.T) {
		fx := createTestAccountService(t)
		ctx := context.Background()
		tx := expectTx(t, fx.txManager)

		saved := []uint{2, 5}
		tx.userRepo.EXPECT().FindByIDForUpdate(ctx, uint(3)).Return(&entity.User{ID: 3, SavedBlogs: saved}, nil)
		tx.userRepo.EXPECT().UpdateSavedBlogs(ctx, uint(3), []uint{5}).Return(nil)

		user, err := fx.service.UnsaveBlog(ctx, 3, 2)

		require.NoError(t, err)
		assert.Equal(t, []uint{5}, user.SavedBlogs)
		assert.Equal(t, []uint{2, 5}, saved)
	})
}
