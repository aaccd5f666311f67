package impl

import (
	"bytes"
	"context"
	"io"
	"testing"

	"academy/internal/domain/entity"
	domainerrors "academy/internal/domain/errors"
	"academy/internal/domain/repository"
	"academy/internal/domain/service"
	mockRepo "academy/internal/mocks/repository"
	mockSvc "academy/internal/mocks/service"
	"academy/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type catalogServiceFixtures struct {
	service    usecase.CatalogUsecase
	courseRepo *mockRepo.MockCourseRepository
	blogRepo   *mockRepo.MockBlogRepository
	exporter   *mockSvc.MockCourseExporter
}

func createTestCatalogService(t *testing.T) catalogServiceFixtures {
	fixtures := catalogServiceFixtures{
		courseRepo: mockRepo.NewMockCourseRepository(t),
		blogRepo:   mockRepo.NewMockBlogRepository(t),
		exporter:   mockSvc.NewMockCourseExporter(t),
	}
	fixtures.service = NewCatalogService(CatalogServiceParams{
		CourseRepo: fixtures.courseRepo,
		BlogRepo:   fixtures.blogRepo,
		Exporter:   fixtures.exporter,
		Logger:     newDiscardLogger(),
	})

	return fixtures
}

func TestCatalogService_ListCourses(t *testing.T) {
	fx := createTestCatalogService(t)
	filter := entity.CourseFilter{Topic: "python", Limit: 10}
	courses := []*entity.Course{{ID: 1}, {ID: 2}}

	fx.courseRepo.EXPECT().List(mock.Anything, filter).Return(courses, int64(12), nil)

	got, total, err := fx.service.ListCourses(context.Background(), filter)

	require.NoError(t, err)
	assert.Equal(t, courses, got)
	assert.Equal(t, int64(12), total)
}

func TestCatalogService_GetCourse_NotFound(t *testing.T) {
	fx := createTestCatalogService(t)
	fx.courseRepo.EXPECT().FindByID(mock.Anything, uint(404)).Return(nil, repository.ErrCourseNotFound)

	_, err := fx.service.GetCourse(context.Background(), 404)

	assert.ErrorIs(t, err, domainerrors.ErrCourseNotFound)
}

func TestCatalogService_CreateCourse_NameTaken(t *testing.T) {
	fx := createTestCatalogService(t)
	course := &entity.Course{Name: "Go"}
	fx.courseRepo.EXPECT().Create(mock.Anything, course).Return(repository.ErrCourseNameTaken)

	_, err := fx.service.CreateCourse(context.Background(), course)

	assert.ErrorIs(t, err, domainerrors.ErrCourseNameTaken)
}

func TestCatalogService_UpdateCourse_ReturnsStoredState(t *testing.T) {
	fx := createTestCatalogService(t)
	course := &entity.Course{ID: 3, Name: "Go"}
	stored := &entity.Course{ID: 3, Name: "Go"}

	fx.courseRepo.EXPECT().Update(mock.Anything, course).Return(nil)
	fx.courseRepo.EXPECT().FindByID(mock.Anything, uint(3)).Return(stored, nil)

	got, err := fx.service.UpdateCourse(context.Background(), course)

	require.NoError(t, err)
	assert.Same(t, stored, got)
}

func TestCatalogService_DeleteCourse_WithPurchases(t *testing.T) {
	fx := createTestCatalogService(t)
	fx.courseRepo.EXPECT().Delete(mock.Anything, uint(3)).Return(repository.ErrCourseHasPurchases)

	err := fx.service.DeleteCourse(context.Background(), 3)

	assert.ErrorIs(t, err, domainerrors.ErrResourceInUse)
}

func TestCatalogService_ExportCoursePDF(t *testing.T) {
	course := &entity.Course{ID: 3, Name: "Go"}

	tests := []struct {
		name      string
		theme     string
		wantTheme string
	}{
		{name: "default", theme: "", wantTheme: service.ThemeLight},
		{name: "dark", theme: "Dark", wantTheme: service.ThemeDark},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestCatalogService(t)
			var buf bytes.Buffer

			fx.courseRepo.EXPECT().FindByID(mock.Anything, uint(3)).Return(course, nil)
			fx.exporter.EXPECT().ExportPDF(&buf, course, tt.wantTheme).
				RunAndReturn(func(w io.Writer, _ *entity.Course, _ string) error {
					_, err := w.Write([]byte("%PDF-"))

					return err
				})

			got, err := fx.service.ExportCoursePDF(context.Background(), 3, tt.theme, &buf)

			require.NoError(t, err)
			assert.Equal(t, course, got)
			assert.Equal(t, "%PDF-", buf.String())
		})
	}
}

func TestCatalogService_ExportCoursePDF_UnknownTheme(t *testing.T) {
	fx := createTestCatalogService(t)

	_, err := fx.service.ExportCoursePDF(context.Background(), 3, "sepia", io.Discard)

	assert.ErrorIs(t, err, domainerrors.ErrInvalidInput)
}

func TestCatalogService_Blogs(t *testing.T) {
	fx := createTestCatalogService(t)
	ctx := context.Background()
	blog := &entity.Blog{Title: "Hello"}

	fx.blogRepo.EXPECT().Create(ctx, blog).Return(nil)
	fx.blogRepo.EXPECT().FindByID(ctx, uint(7)).Return(nil, repository.ErrBlogNotFound)
	fx.blogRepo.EXPECT().Delete(ctx, uint(7)).Return(repository.ErrBlogNotFound)

	created, err := fx.service.CreateBlog(ctx, blog)
	require.NoError(t, err)
	assert.Same(t, blog, created)

	_, err = fx.service.GetBlog(ctx, 7)
	assert.ErrorIs(t, err, domainerrors.ErrBlogNotFound)

	err = fx.service.DeleteBlog(ctx, 7)
	assert.ErrorIs(t, err, domainerrors.ErrBlogNotFound)
}

func TestCatalogService_HomeData(t *testing.T) {
	fx := createTestCatalogService(t)
	courses := []*entity.Course{{ID: 1}, {ID: 2}, {ID: 3}, {ID: 4}}
	blogs := []*entity.Blog{{ID: 9}}

	fx.courseRepo.EXPECT().List(mock.Anything, entity.CourseFilter{Limit: 4}).Return(courses, int64(20), nil)
	fx.blogRepo.EXPECT().List(mock.Anything, entity.Page{Limit: 4}).Return(blogs, int64(1), nil)

	home, err := fx.service.HomeData(context.Background())

	require.NoError(t, err)
	assert.Equal(t, courses, home.Courses)
	assert.Equal(t, blogs, home.Blogs)
}
