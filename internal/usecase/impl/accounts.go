package impl

import (
	"cmp"
	"context"
	"strings"

	"academy/internal/domain/entity"
	domainerrors "academy/internal/domain/errors"
	"academy/internal/domain/repository"
	"academy/internal/domain/service"
	"academy/internal/errors"
)

type newAccount struct {
	Username string
	Email    string
	Password string
	Role     entity.Role
}

// createAccount checks uniqueness, hashes the password and stores a new user.
func createAccount(ctx context.Context, userRepo repository.UserRepository, hasher service.PasswordHasher, input newAccount) (*entity.User, error) {
	username := strings.TrimSpace(input.Username)
	email := strings.TrimSpace(input.Email)
	if username == "" || email == "" || input.Password == "" {
		return nil, domainerrors.ErrInvalidInput.WithMessage("All fields are required")
	}

	taken, err := userRepo.ExistsByUsername(ctx, username)
	if err != nil {
		return nil, errors.Wrap(err, "failed to check username")
	}
	if taken {
		return nil, domainerrors.ErrUsernameTaken
	}

	taken, err = userRepo.ExistsByEmail(ctx, email)
	if err != nil {
		return nil, errors.Wrap(err, "failed to check email")
	}
	if taken {
		return nil, domainerrors.ErrEmailTaken
	}

	hash, err := hasher.Hash(input.Password)
	if err != nil {
		return nil, domainerrors.ErrPasswordHashFailed.WithDetails(err.Error())
	}

	user := &entity.User{
		Username:         username,
		Email:            email,
		PasswordHash:     hash,
		Role:             entity.RoleOrDefault(input.Role),
		OwnedCourses:     []uint{},
		FavouriteCourses: []uint{},
		SavedBlogs:       []uint{},
	}
	if err := userRepo.Create(ctx, user); err != nil {
		return nil, translateRepoError(err, "failed to create user")
	}

	return user, nil
}

// orderByIDs returns the records whose id is in ids, in the order of ids.
func orderByIDs[T any](ids []uint, records []T, id func(T) uint) []T {
	byID := make(map[uint]T, len(records))
	for _, r := range records {
		byID[id(r)] = r
	}

	ordered := make([]T, 0, len(ids))
	for _, i := range ids {
		if r, ok := byID[i]; ok {
			ordered = append(ordered, r)
		}
	}

	return ordered
}

func courseID(c *entity.Course) uint { return c.ID }

func blogID(b *entity.Blog) uint { return b.ID }

func valueOr[T comparable](v, fallback T) T {
	return cmp.Or(v, fallback)
}
