package postgres

import (
	"context"
	"strings"

	"academy/internal/domain/entity"
	domainerrors "academy/internal/domain/errors"
	"academy/internal/domain/repository"
	"academy/internal/errors"
	"academy/internal/infra/persistence/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// userRepository implements repository.UserRepository using GORM.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository is the constructor for userRepository.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{
		db: db,
	}
}

// FindByID retrieves a single user by id.
func (repo *userRepository) FindByID(ctx context.Context, id uint) (*entity.User, error) {
	return repo.first(ctx, repo.db.WithContext(ctx).Where("id = ?", id), "failed to find user by id")
}

// FindByIDForUpdate retrieves a user with SELECT ... FOR UPDATE.
func (repo *userRepository) FindByIDForUpdate(ctx context.Context, id uint) (*entity.User, error) {
	query := repo.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: clause.LockingStrengthUpdate}).
		Where("id = ?", id)

	return repo.first(ctx, query, "failed to lock user")
}

// FindByEmail retrieves a single user by email address.
func (repo *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	return repo.first(ctx, repo.db.WithContext(ctx).Where("email = ?", email), "failed to find user by email")
}

func (repo *userRepository) first(_ context.Context, query *gorm.DB, msg string) (*entity.User, error) {
	var userM model.UserModel
	if err := query.First(&userM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, msg)
	}

	return toUserDomain(&userM), nil
}

// ExistsByUsername reports whether the username is taken.
func (repo *userRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	var count int64
	if err := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("username = ?", username).
		Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "failed to check username")
	}

	return count > 0, nil
}

// ExistsByEmail reports whether the email is taken.
func (repo *userRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var count int64
	if err := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("email = ?", email).
		Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "failed to check email")
	}

	return count > 0, nil
}

// List returns all users ordered by id.
func (repo *userRepository) List(ctx context.Context) ([]*entity.User, error) {
	var userModels []*model.UserModel
	if err := repo.db.WithContext(ctx).Order("id ASC").Find(&userModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list users")
	}

	users := make([]*entity.User, 0, len(userModels))
	for _, userM := range userModels {
		users = append(users, toUserDomain(userM))
	}

	return users, nil
}

// Create persists a new user.
func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	userM := fromUserDomain(user)

	if err := repo.db.WithContext(ctx).Create(userM).Error; err != nil {
		return translateUserWriteError(err, "failed to create user")
	}

	user.ID = userM.ID
	user.CreatedAt = userM.CreatedAt
	user.UpdatedAt = userM.UpdatedAt

	return nil
}

// Update writes the scalar profile fields of the user.
func (repo *userRepository) Update(ctx context.Context, user *entity.User) error {
	result := repo.db.WithContext(ctx).
		Model(&model.UserModel{ID: user.ID}).
		Updates(map[string]any{
			"username":        user.Username,
			"email":           user.Email,
			"role":            entity.RoleOrDefault(user.Role).String(),
			"profile_picture": user.ProfilePicture,
		})
	if result.Error != nil {
		return translateUserWriteError(result.Error, "failed to update user")
	}

	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

// UpdateOwnedCourses replaces the owned-course cache.
func (repo *userRepository) UpdateOwnedCourses(ctx context.Context, userID uint, courseIDs []uint) error {
	return repo.updateList(ctx, userID, "owned_courses", courseIDs)
}

// UpdateFavouriteCourses replaces the favourites list.
func (repo *userRepository) UpdateFavouriteCourses(ctx context.Context, userID uint, courseIDs []uint) error {
	return repo.updateList(ctx, userID, "favourite_courses", courseIDs)
}

// UpdateSavedBlogs replaces the saved-blogs list.
func (repo *userRepository) UpdateSavedBlogs(ctx context.Context, userID uint, blogIDs []uint) error {
	return repo.updateList(ctx, userID, "saved_blogs", blogIDs)
}

func (repo *userRepository) updateList(ctx context.Context, userID uint, column string, ids []uint) error {
	result := repo.db.WithContext(ctx).
		Model(&model.UserModel{ID: userID}).
		Update(column, model.IDList(ids))
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update "+column)
	}

	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

// Delete removes the user. Ledger rows pin the user in place.
func (repo *userRepository) Delete(ctx context.Context, id uint) error {
	result := repo.db.WithContext(ctx).Delete(&model.UserModel{}, id)
	if result.Error != nil {
		if isForeignKeyConstraintViolation(result.Error) {
			return repository.ErrUserHasPurchases
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete user")
	}

	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

func translateUserWriteError(err error, details string) error {
	switch {
	case isUniqueConstraintViolation(err):
		constraint := violatedConstraint(err)
		switch {
		case constraint == model.IdxUsersUsername || strings.Contains(constraint, "username"):
			return repository.ErrUsernameTaken
		case constraint == model.IdxUsersEmail || strings.Contains(constraint, "email"):
			return repository.ErrEmailTaken
		default:
			return domainerrors.ErrConflict.WrapMessage(details)
		}
	case isNotNullConstraintViolation(err), isCheckConstraintViolation(err):
		return domainerrors.ErrInvalidInput.WithDetails("missing or invalid user information")
	default:
		return domainerrors.NewDatabaseExecuteError(err, details)
	}
}

func toUserDomain(userM *model.UserModel) *entity.User {
	return &entity.User{
		ID:               userM.ID,
		Username:         userM.Username,
		Email:            userM.Email,
		PasswordHash:     userM.PasswordHash,
		Role:             entity.RoleOrDefault(entity.Role(userM.Role)),
		ProfilePicture:   userM.ProfilePicture,
		OwnedCourses:     idsOrEmpty(userM.OwnedCourses),
		FavouriteCourses: idsOrEmpty(userM.FavouriteCourses),
		SavedBlogs:       idsOrEmpty(userM.SavedBlogs),
		CreatedAt:        userM.CreatedAt,
		UpdatedAt:        userM.UpdatedAt,
	}
}

func fromUserDomain(user *entity.User) *model.UserModel {
	return &model.UserModel{
		ID:               user.ID,
		Username:         user.Username,
		Email:            user.Email,
		PasswordHash:     user.PasswordHash,
		Role:             entity.RoleOrDefault(user.Role).String(),
		ProfilePicture:   user.ProfilePicture,
		OwnedCourses:     model.IDList(user.OwnedCourses),
		FavouriteCourses: model.IDList(user.FavouriteCourses),
		SavedBlogs:       model.IDList(user.SavedBlogs),
		CreatedAt:        user.CreatedAt,
		UpdatedAt:        user.UpdatedAt,
	}
}

func idsOrEmpty(ids []uint) []uint {
	if ids == nil {
		return []uint{}
	}

	return []uint(ids)
}
