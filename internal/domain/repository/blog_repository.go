package repository

import (
	"context"

	"academy/internal/domain/entity"
	"academy/internal/errors"
)

// ErrBlogNotFound is returned when a blog is not found.
var ErrBlogNotFound = errors.New("blog not found")

// BlogRepository defines blog persistence operations.
type BlogRepository interface {
	FindByID(ctx context.Context, id uint) (*entity.Blog, error)
	FindByIDs(ctx context.Context, ids []uint) ([]*entity.Blog, error)
	// List returns a page of blogs, newest first, and the total count.
	List(ctx context.Context, page entity.Page) ([]*entity.Blog, int64, error)
	Create(ctx context.Context, blog *entity.Blog) error
	Delete(ctx context.Context, id uint) error
}
