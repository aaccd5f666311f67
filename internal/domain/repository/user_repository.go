// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"academy/internal/domain/entity"
	"academy/internal/errors"
)

// Domain-specific errors for user persistence.
var (
	// ErrUserNotFound is returned when a user is not found.
	ErrUserNotFound = errors.New("user not found")
	// ErrUsernameTaken is returned when the username unique index rejects a write.
	ErrUsernameTaken = errors.New("username already exists")
	// ErrEmailTaken is returned when the email unique index rejects a write.
	ErrEmailTaken = errors.New("email already exists")
	// ErrUserHasPurchases is returned when deleting a user still referenced by the ledger.
	ErrUserHasPurchases = errors.New("user has purchase records")
)

// UserRepository defines the standard operations for user persistence.
type UserRepository interface {
	// FindByID retrieves a single user by id.
	FindByID(ctx context.Context, id uint) (*entity.User, error)

	// FindByIDForUpdate retrieves a user and locks the row until the
	// surrounding transaction ends. Outside a transaction it behaves like FindByID.
	FindByIDForUpdate(ctx context.Context, id uint) (*entity.User, error)

	// FindByEmail retrieves a single user by email address.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// ExistsByUsername reports whether the username is taken.
	ExistsByUsername(ctx context.Context, username string) (bool, error)

	// ExistsByEmail reports whether the email is taken.
	ExistsByEmail(ctx context.Context, email string) (bool, error)

	// List returns all users ordered by id.
	List(ctx context.Context) ([]*entity.User, error)

	// Create persists a new user and fills its id and timestamps.
	Create(ctx context.Context, user *entity.User) error

	// Update writes username, email, role and profile picture.
	Update(ctx context.Context, user *entity.User) error

	// UpdateOwnedCourses replaces the owned-course cache.
	UpdateOwnedCourses(ctx context.Context, userID uint, courseIDs []uint) error

	// UpdateFavouriteCourses replaces the favourites list.
	UpdateFavouriteCourses(ctx context.Context, userID uint, courseIDs []uint) error

	// UpdateSavedBlogs replaces the saved-blogs list.
	UpdateSavedBlogs(ctx context.Context, userID uint, blogIDs []uint) error

	// Delete removes the user.
	Delete(ctx context.Context, id uint) error
}
