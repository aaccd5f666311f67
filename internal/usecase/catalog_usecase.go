package usecase

import (
	"context"
	"io"

	"academy/internal/domain/entity"
)

// HomeData is the landing page payload.
type HomeData struct {
	Courses []*entity.Course
	Blogs   []*entity.Blog
}

// CatalogUsecase serves courses and blogs.
type CatalogUsecase interface {
	ListCourses(ctx context.Context, filter entity.CourseFilter) ([]*entity.Course, int64, error)
	GetCourse(ctx context.Context, courseID uint) (*entity.Course, error)
	CreateCourse(ctx context.Context, course *entity.Course) (*entity.Course, error)
	UpdateCourse(ctx context.Context, course *entity.Course) (*entity.Course, error)
	DeleteCourse(ctx context.Context, courseID uint) error

	// ExportCoursePDF writes the course sheet and returns the course it rendered.
	ExportCoursePDF(ctx context.Context, courseID uint, theme string, w io.Writer) (*entity.Course, error)

	ListBlogs(ctx context.Context, page entity.Page) ([]*entity.Blog, int64, error)
	GetBlog(ctx context.Context, blogID uint) (*entity.Blog, error)
	CreateBlog(ctx context.Context, blog *entity.Blog) (*entity.Blog, error)
	DeleteBlog(ctx context.Context, blogID uint) error

	HomeData(ctx context.Context) (*HomeData, error)
}
