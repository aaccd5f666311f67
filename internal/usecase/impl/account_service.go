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

var (
	errNotFavourite = domainerrors.ErrNotFound.WithMessage("Course not found in favourites")
	errNotSaved     = domainerrors.ErrNotFound.WithMessage("Blog not found in saved blogs")
)

// accountService implements the AccountUsecase interface.
type accountService struct {
	txManager  repository.TransactionManager
	userRepo   repository.UserRepository
	courseRepo repository.CourseRepository
	blogRepo   repository.BlogRepository
	hasher     service.PasswordHasher
	logger     *slog.Logger
}

// AccountServiceParams holds dependencies for AccountService, injected by Fx.
type AccountServiceParams struct {
	fx.In

	TxManager  repository.TransactionManager
	UserRepo   repository.UserRepository
	CourseRepo repository.CourseRepository
	BlogRepo   repository.BlogRepository
	Hasher     service.PasswordHasher
	Logger     *slog.Logger
}

// NewAccountService is the constructor for accountService.
func NewAccountService(params AccountServiceParams) usecase.AccountUsecase {
	return &accountService{
		txManager:  params.TxManager,
		userRepo:   params.UserRepo,
		courseRepo: params.CourseRepo,
		blogRepo:   params.BlogRepo,
		hasher:     params.Hasher,
		logger:     params.Logger,
	}
}

func (srv *accountService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.LoggerFrom(ctx, srv.logger)
}

func (srv *accountService) ListUsers(ctx context.Context) ([]*entity.User, error) {
	users, err := srv.userRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list users")
	}

	return users, nil
}

func (srv *accountService) CreateUser(ctx context.Context, input *usecase.CreateUserInput) (*entity.User, error) {
	user, err := createAccount(ctx, srv.userRepo, srv.hasher, newAccount{
		Username: input.Username,
		Email:    input.Email,
		Password: input.Password,
		Role:     input.Role,
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("User created",
		slog.Uint64("user_id", uint64(user.ID)),
		slog.String("role", user.Role.String()),
	)

	return user, nil
}

func (srv *accountService) GetUser(ctx context.Context, userID uint) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, translateRepoError(err, "failed to find user")
	}

	return user, nil
}

// GetUserDetails resolves the user's course and blog id lists. Ids that no
// longer resolve are skipped.
func (srv *accountService) GetUserDetails(ctx context.Context, userID uint) (*usecase.UserDetails, error) {
	user, err := srv.GetUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	owned, err := srv.coursesByIDs(ctx, user.OwnedCourses)
	if err != nil {
		return nil, err
	}

	favourites, err := srv.coursesByIDs(ctx, user.FavouriteCourses)
	if err != nil {
		return nil, err
	}

	blogs, err := srv.blogsByIDs(ctx, user.SavedBlogs)
	if err != nil {
		return nil, err
	}

	return &usecase.UserDetails{
		User:             user,
		OwnedCourses:     owned,
		FavouriteCourses: favourites,
		SavedBlogs:       blogs,
	}, nil
}

func (srv *accountService) UpdateUser(ctx context.Context, input *usecase.UpdateUserInput) (*entity.User, error) {
	user, err := srv.GetUser(ctx, input.UserID)
	if err != nil {
		return nil, err
	}

	if input.Username != nil {
		username := strings.TrimSpace(*input.Username)
		if username != user.Username {
			taken, err := srv.userRepo.ExistsByUsername(ctx, username)
			if err != nil {
				return nil, errors.Wrap(err, "failed to check username")
			}
			if taken {
				return nil, domainerrors.ErrUsernameTaken
			}
			user.Username = username
		}
	}

	if input.Email != nil {
		email := strings.TrimSpace(*input.Email)
		if email != user.Email {
			taken, err := srv.userRepo.ExistsByEmail(ctx, email)
			if err != nil {
				return nil, errors.Wrap(err, "failed to check email")
			}
			if taken {
				return nil, domainerrors.ErrEmailTaken
			}
			user.Email = email
		}
	}

	if err := srv.userRepo.Update(ctx, user); err != nil {
		return nil, translateRepoError(err, "failed to update user")
	}

	return user, nil
}

// DeleteUser removes an account that has no ledger rows.
func (srv *accountService) DeleteUser(ctx context.Context, userID uint) (*entity.User, error) {
	if userID == entity.PrimaryAdminID {
		return nil, domainerrors.ErrPrimaryAdminProtected
	}

	user, err := srv.GetUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	if err := srv.userRepo.Delete(ctx, userID); err != nil {
		return nil, translateRepoError(err, "failed to delete user")
	}

	srv.log(ctx).Info("User deleted", slog.Uint64("user_id", uint64(userID)))

	return user, nil
}

func (srv *accountService) EnsureAdmin(ctx context.Context, input *usecase.CreateUserInput) (*entity.User, bool, error) {
	existing, err := srv.userRepo.FindByEmail(ctx, strings.TrimSpace(input.Email))
	switch {
	case err == nil:
		if existing.IsAdmin() {
			return existing, false, nil
		}
		user, err := srv.promote(ctx, existing)

		return user, false, err
	case !errors.Is(err, repository.ErrUserNotFound):
		return nil, false, errors.Wrap(err, "failed to find admin by email")
	}

	admin := *input
	admin.Role = entity.RoleAdmin
	user, err := srv.CreateUser(ctx, &admin)
	if err != nil {
		return nil, false, err
	}

	return user, true, nil
}

func (srv *accountService) PromoteToAdmin(ctx context.Context, email string) (*entity.User, error) {
	user, err := srv.userRepo.FindByEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		return nil, translateRepoError(err, "failed to find user by email")
	}
	if user.IsAdmin() {
		return user, nil
	}

	return srv.promote(ctx, user)
}

func (srv *accountService) promote(ctx context.Context, user *entity.User) (*entity.User, error) {
	user.Role = entity.RoleAdmin
	if err := srv.userRepo.Update(ctx, user); err != nil {
		return nil, translateRepoError(err, "failed to promote user")
	}

	srv.log(ctx).Info("User promoted to admin", slog.Uint64("user_id", uint64(user.ID)))

	return user, nil
}

func (srv *accountService) OwnedCourses(ctx context.Context, userID uint) ([]*entity.Course, error) {
	user, err := srv.GetUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	return srv.coursesByIDs(ctx, user.OwnedCourses)
}

func (srv *accountService) FavouriteCourses(ctx context.Context, userID uint) ([]*entity.Course, error) {
	user, err := srv.GetUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	return srv.coursesByIDs(ctx, user.FavouriteCourses)
}

func (srv *accountService) AddFavouriteCourse(ctx context.Context, userID, courseID uint) (*entity.User, error) {
	if _, err := srv.courseRepo.FindByID(ctx, courseID); err != nil {
		return nil, translateRepoError(err, "failed to find course")
	}

	return srv.updateLockedUser(ctx, userID, func(user *entity.User, userRepo repository.UserRepository) error {
		if user.HasFavourite(courseID) {
			return domainerrors.ErrAlreadyFavourite
		}
		user.FavouriteCourses = append(user.FavouriteCourses, courseID)

		return userRepo.UpdateFavouriteCourses(ctx, user.ID, user.FavouriteCourses)
	})
}

func (srv *accountService) RemoveFavouriteCourse(ctx context.Context, userID, courseID uint) (*entity.User, error) {
	return srv.updateLockedUser(ctx, userID, func(user *entity.User, userRepo repository.UserRepository) error {
		if !user.HasFavourite(courseID) {
			return errNotFavourite
		}
		user.FavouriteCourses = entity.RemoveID(user.FavouriteCourses, courseID)

		return userRepo.UpdateFavouriteCourses(ctx, user.ID, user.FavouriteCourses)
	})
}

func (srv *accountService) SavedBlogs(ctx context.Context, userID uint) ([]*entity.Blog, error) {
	user, err := srv.GetUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	return srv.blogsByIDs(ctx, user.SavedBlogs)
}

func (srv *accountService) SaveBlog(ctx context.Context, userID, blogID uint) (*entity.User, error) {
	if _, err := srv.blogRepo.FindByID(ctx, blogID); err != nil {
		return nil, translateRepoError(err, "failed to find blog")
	}

	return srv.updateLockedUser(ctx, userID, func(user *entity.User, userRepo repository.UserRepository) error {
		if user.HasSavedBlog(blogID) {
			return domainerrors.ErrBlogAlreadySaved
		}
		user.SavedBlogs = append(user.SavedBlogs, blogID)

		return userRepo.UpdateSavedBlogs(ctx, user.ID, user.SavedBlogs)
	})
}

func (srv *accountService) UnsaveBlog(ctx context.Context, userID, blogID uint) (*entity.User, error) {
	return srv.updateLockedUser(ctx, userID, func(user *entity.User, userRepo repository.UserRepository) error {
		if !user.HasSavedBlog(blogID) {
			return errNotSaved
		}
		user.SavedBlogs = entity.RemoveID(user.SavedBlogs, blogID)

		return userRepo.UpdateSavedBlogs(ctx, user.ID, user.SavedBlogs)
	})
}

// updateLockedUser runs mutate against the row-locked user so concurrent
// list edits of one user do not overwrite each other.
func (srv *accountService) updateLockedUser(
	ctx context.Context,
	userID uint,
	mutate func(*entity.User, repository.UserRepository) error,
) (*entity.User, error) {
	var updated *entity.User
	err := srv.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		userRepo := factory.NewUserRepository()

		user, err := userRepo.FindByIDForUpdate(ctx, userID)
		if err != nil {
			return translateRepoError(err, "failed to lock user")
		}

		if err := mutate(user, userRepo); err != nil {
			return translateRepoError(err, "failed to update user lists")
		}
		updated = user

		return nil
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

func (srv *accountService) coursesByIDs(ctx context.Context, ids []uint) ([]*entity.Course, error) {
	if len(ids) == 0 {
		return []*entity.Course{}, nil
	}

	courses, err := srv.courseRepo.FindByIDs(ctx, ids)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find courses")
	}

	return orderByIDs(ids, courses, courseID), nil
}

func (srv *accountService) blogsByIDs(ctx context.Context, ids []uint) ([]*entity.Blog, error) {
	if len(ids) == 0 {
		return []*entity.Blog{}, nil
	}

	blogs, err := srv.blogRepo.FindByIDs(ctx, ids)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find blogs")
	}

	return orderByIDs(ids, blogs, blogID), nil
}
