package usecase

import (
	"context"

	"academy/internal/domain/entity"
)

// CreateUserInput defines an account created by an admin or the CLI.
type CreateUserInput struct {
	Username string
	Email    string
	Password string
	Role     entity.Role
}

// UpdateUserInput holds a partial profile update. Nil fields are kept.
type UpdateUserInput struct {
	UserID   uint
	Username *string
	Email    *string
}

// UserDetails is a user with its id lists resolved to records.
type UserDetails struct {
	User             *entity.User
	OwnedCourses     []*entity.Course
	FavouriteCourses []*entity.Course
	SavedBlogs       []*entity.Blog
}

// AccountUsecase manages accounts and their bookmark lists.
type AccountUsecase interface {
	ListUsers(ctx context.Context) ([]*entity.User, error)
	CreateUser(ctx context.Context, input *CreateUserInput) (*entity.User, error)
	GetUser(ctx context.Context, userID uint) (*entity.User, error)
	GetUserDetails(ctx context.Context, userID uint) (*UserDetails, error)
	UpdateUser(ctx context.Context, input *UpdateUserInput) (*entity.User, error)
	DeleteUser(ctx context.Context, userID uint) (*entity.User, error)

	// EnsureAdmin creates the admin account, or promotes the account that
	// already holds the email. created reports which happened.
	EnsureAdmin(ctx context.Context, input *CreateUserInput) (user *entity.User, created bool, err error)
	PromoteToAdmin(ctx context.Context, email string) (*entity.User, error)

	OwnedCourses(ctx context.Context, userID uint) ([]*entity.Course, error)
	FavouriteCourses(ctx context.Context, userID uint) ([]*entity.Course, error)
	AddFavouriteCourse(ctx context.Context, userID, courseID uint) (*entity.User, error)
	RemoveFavouriteCourse(ctx context.Context, userID, courseID uint) (*entity.User, error)
	SavedBlogs(ctx context.Context, userID uint) ([]*entity.Blog, error)
	SaveBlog(ctx context.Context, userID, blogID uint) (*entity.User, error)
	UnsaveBlog(ctx context.Context, userID, blogID uint) (*entity.User, error)
}
