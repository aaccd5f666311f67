package impl

import (
	"context"
	"io"
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

// homeDataSize is the number of courses and blogs on the landing page.
const homeDataSize = 4

// catalogService implements the CatalogUsecase interface.
type catalogService struct {
	courseRepo repository.CourseRepository
	blogRepo   repository.BlogRepository
	exporter   service.CourseExporter
	logger     *slog.Logger
}

// CatalogServiceParams holds dependencies for CatalogService, injected by Fx.
type CatalogServiceParams struct {
	fx.In

	CourseRepo repository.CourseRepository
	BlogRepo   repository.BlogRepository
	Exporter   service.CourseExporter
	Logger     *slog.Logger
}

// NewCatalogService is the constructor for catalogService.
func NewCatalogService(params CatalogServiceParams) usecase.CatalogUsecase {
	return &catalogService{
		courseRepo: params.CourseRepo,
		blogRepo:   params.BlogRepo,
		exporter:   params.Exporter,
		logger:     params.Logger,
	}
}

func (srv *catalogService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.LoggerFrom(ctx, srv.logger)
}

func (srv *catalogService) ListCourses(ctx context.Context, filter entity.CourseFilter) ([]*entity.Course, int64, error) {
	courses, total, err := srv.courseRepo.List(ctx, filter)
	if err != nil {
		return nil, 0, errors.Wrap(err, "failed to list courses")
	}

	return courses, total, nil
}

func (srv *catalogService) GetCourse(ctx context.Context, courseID uint) (*entity.Course, error) {
	course, err := srv.courseRepo.FindByID(ctx, courseID)
	if err != nil {
		return nil, translateRepoError(err, "failed to find course")
	}

	return course, nil
}

func (srv *catalogService) CreateCourse(ctx context.Context, course *entity.Course) (*entity.Course, error) {
	if err := srv.courseRepo.Create(ctx, course); err != nil {
		return nil, translateRepoError(err, "failed to create course")
	}

	srv.log(ctx).Info("Course created", slog.Uint64("course_id", uint64(course.ID)), slog.String("name", course.Name))

	return course, nil
}

func (srv *catalogService) UpdateCourse(ctx context.Context, course *entity.Course) (*entity.Course, error) {
	if err := srv.courseRepo.Update(ctx, course); err != nil {
		return nil, translateRepoError(err, "failed to update course")
	}

	return srv.GetCourse(ctx, course.ID)
}

// DeleteCourse removes a course. Courses with ledger rows are kept.
func (srv *catalogService) DeleteCourse(ctx context.Context, courseID uint) error {
	if err := srv.courseRepo.Delete(ctx, courseID); err != nil {
		return translateRepoError(err, "failed to delete course")
	}

	srv.log(ctx).Info("Course deleted", slog.Uint64("course_id", uint64(courseID)))

	return nil
}

func (srv *catalogService) ExportCoursePDF(ctx context.Context, courseID uint, theme string, w io.Writer) (*entity.Course, error) {
	theme = valueOr(strings.ToLower(strings.TrimSpace(theme)), service.ThemeLight)
	if theme != service.ThemeLight && theme != service.ThemeDark {
		return nil, domainerrors.ErrInvalidInput.WithDetails("theme must be light or dark")
	}

	course, err := srv.GetCourse(ctx, courseID)
	if err != nil {
		return nil, err
	}

	if err := srv.exporter.ExportPDF(w, course, theme); err != nil {
		return nil, errors.Wrapf(err, "failed to export course %d", courseID)
	}

	return course, nil
}

func (srv *catalogService) ListBlogs(ctx context.Context, page entity.Page) ([]*entity.Blog, int64, error) {
	blogs, total, err := srv.blogRepo.List(ctx, page)
	if err != nil {
		return nil, 0, errors.Wrap(err, "failed to list blogs")
	}

	return blogs, total, nil
}

func (srv *catalogService) GetBlog(ctx context.Context, blogID uint) (*entity.Blog, error) {
	blog, err := srv.blogRepo.FindByID(ctx, blogID)
	if err != nil {
		return nil, translateRepoError(err, "failed to find blog")
	}

	return blog, nil
}

func (srv *catalogService) CreateBlog(ctx context.Context, blog *entity.Blog) (*entity.Blog, error) {
	if err := srv.blogRepo.Create(ctx, blog); err != nil {
		return nil, translateRepoError(err, "failed to create blog")
	}

	return blog, nil
}

func (srv *catalogService) DeleteBlog(ctx context.Context, blogID uint) error {
	if err := srv.blogRepo.Delete(ctx, blogID); err != nil {
		return translateRepoError(err, "failed to delete blog")
	}

	return nil
}

// HomeData returns the first courses and the latest blogs.
func (srv *catalogService) HomeData(ctx context.Context) (*usecase.HomeData, error) {
	courses, _, err := srv.courseRepo.List(ctx, entity.CourseFilter{Limit: homeDataSize})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list home courses")
	}

	blogs, _, err := srv.blogRepo.List(ctx, entity.Page{Limit: homeDataSize})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list home blogs")
	}

	return &usecase.HomeData{Courses: courses, Blogs: blogs}, nil
}
