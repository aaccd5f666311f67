package handler

import (
	"bytes"
	"fmt"
	"net/http"
	"strings"
	"time"

	"academy/internal/delivery/api/response"
	"academy/internal/domain/entity"
	"academy/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

// CatalogHandlerParams holds dependencies for CatalogHandler, injected by Fx.
type CatalogHandlerParams struct {
	fx.In

	CatalogUC usecase.CatalogUsecase
}

// CatalogHandler serves courses and blogs.
type CatalogHandler struct {
	catalogUC usecase.CatalogUsecase
}

// NewCatalogHandler is the constructor for CatalogHandler
func NewCatalogHandler(params CatalogHandlerParams) *CatalogHandler {
	return &CatalogHandler{catalogUC: params.CatalogUC}
}

// TagRequest is a colored label.
type TagRequest struct {
	Label string `json:"label" validate:"required,max=40"`
	Color string `json:"color" validate:"required,hexcolor,len=7"`
}

// CourseSummaryRequest is the optional course synopsis.
type CourseSummaryRequest struct {
	Goal         string   `json:"goal"`
	Syllabus     []string `json:"syllabus"`
	Requirements []uint   `json:"requirements" validate:"dive,gt=0"`
}

// LessonRequest is one unit of course content.
type LessonRequest struct {
	Title          string `json:"title" validate:"required"`
	Body           string `json:"body"`
	Instructions   string `json:"instructions"`
	ExpectedOutput string `json:"expected_output"`
	Conclusion     string `json:"conclusion"`
}

// CourseRequest represents the body of course create and update
type CourseRequest struct {
	Name        string                `json:"name" validate:"required,max=100"`
	Price       float64               `json:"price" validate:"gte=0"`
	Discount    float64               `json:"discount" validate:"gte=0,ltefield=Price"`
	Language    string                `json:"language" validate:"required,max=50"`
	Topic       string                `json:"topic" validate:"required,max=100"`
	Level       string                `json:"level" validate:"required,max=50"`
	Description string                `json:"description" validate:"required"`
	Tags        []TagRequest          `json:"tags" validate:"max=5,dive"`
	Summary     *CourseSummaryRequest `json:"summary"`
	Content     []LessonRequest       `json:"content" validate:"dive"`
	ImageURL    string                `json:"image_url" validate:"omitempty,max=255"`
	ImageAlt    string                `json:"image_alt" validate:"omitempty,max=255"`
}

func (r *CourseRequest) toEntity() *entity.Course {
	course := &entity.Course{
		Name:        strings.TrimSpace(r.Name),
		Price:       decimal.NewFromFloat(r.Price).Round(2),
		Discount:    decimal.NewFromFloat(r.Discount).Round(2),
		Language:    r.Language,
		Topic:       r.Topic,
		Level:       r.Level,
		Description: r.Description,
		Tags:        toTags(r.Tags),
		ImageURL:    r.ImageURL,
		ImageAlt:    r.ImageAlt,
	}
	if r.Summary != nil {
		course.Summary = &entity.CourseSummary{
			Goal:         r.Summary.Goal,
			Syllabus:     r.Summary.Syllabus,
			Requirements: r.Summary.Requirements,
		}
	}
	for _, lesson := range r.Content {
		course.Content = append(course.Content, entity.Lesson(lesson))
	}

	return course
}

func toTags(tags []TagRequest) []entity.Tag {
	out := make([]entity.Tag, 0, len(tags))
	for _, tag := range tags {
		out = append(out, entity.Tag{Label: tag.Label, Color: strings.ToUpper(tag.Color)})
	}

	return out
}

// ListCourses filters the catalog by topic, level, language and text.
func (h *CatalogHandler) ListCourses(c echo.Context) error {
	limit, err := queryInt(c, "limit")
	if err != nil {
		return response.HandleAppError(c, err)
	}
	offset, err := queryInt(c, "offset")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	courses, total, err := h.catalogUC.ListCourses(c.Request().Context(), entity.CourseFilter{
		Topic:    c.QueryParam("topic"),
		Level:    c.QueryParam("level"),
		Language: c.QueryParam("language"),
		Query:    c.QueryParam("q"),
		Limit:    limit,
		Offset:   offset,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"count":   total,
		"courses": response.NewCourseViews(courses),
	})
}

// GetCourse returns one course.
func (h *CatalogHandler) GetCourse(c echo.Context) error {
	courseID, err := pathID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	course, err := h.catalogUC.GetCourse(c.Request().Context(), courseID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, response.NewCourseView(course))
}

// CreateCourse adds a course to the catalog.
func (h *CatalogHandler) CreateCourse(c echo.Context) error {
	var req CourseRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	course, err := h.catalogUC.CreateCourse(c.Request().Context(), req.toEntity())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, response.NewCourseView(course))
}

// UpdateCourse replaces a course's fields. Existing ledger rows keep their prices.
func (h *CatalogHandler) UpdateCourse(c echo.Context) error {
	courseID, err := pathID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req CourseRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	course := req.toEntity()
	course.ID = courseID

	updated, err := h.catalogUC.UpdateCourse(c.Request().Context(), course)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, response.NewCourseView(updated))
}

// DeleteCourse removes a course that nobody has bought.
func (h *CatalogHandler) DeleteCourse(c echo.Context) error {
	courseID, err := pathID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.catalogUC.DeleteCourse(c.Request().Context(), courseID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Message(c, http.StatusOK, "Course deleted successfully")
}

// ExportCoursePDF renders the course sheet as a PDF attachment.
func (h *CatalogHandler) ExportCoursePDF(c echo.Context) error {
	courseID, err := pathID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var buf bytes.Buffer
	course, err := h.catalogUC.ExportCoursePDF(c.Request().Context(), courseID, c.QueryParam("theme"), &buf)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	c.Response().Header().Set(echo.HeaderContentDisposition,
		fmt.Sprintf("attachment; filename=%q", course.Name+".pdf"))

	return c.Blob(http.StatusOK, "application/pdf", buf.Bytes())
}

// BlogRequest represents the body of blog creation
type BlogRequest struct {
	Title           string       `json:"title" validate:"required,max=200"`
	AuthorName      string       `json:"author_name" validate:"required,max=100"`
	Email           string       `json:"email" validate:"required,email,max=120"`
	URL             string       `json:"url" validate:"required,url,max=255"`
	Description     string       `json:"description" validate:"required"`
	Tags            []TagRequest `json:"tags" validate:"max=5,dive"`
	ImageURL        string       `json:"image_url" validate:"omitempty,max=255"`
	ImageAlt        string       `json:"image_alt" validate:"omitempty,max=255"`
	PublicationDate time.Time    `json:"publication_date"`
}

// ListBlogs returns a page of blogs.
func (h *CatalogHandler) ListBlogs(c echo.Context) error {
	limit, err := queryInt(c, "limit")
	if err != nil {
		return response.HandleAppError(c, err)
	}
	offset, err := queryInt(c, "offset")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	blogs, total, err := h.catalogUC.ListBlogs(c.Request().Context(), entity.Page{Limit: limit, Offset: offset})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"count": total,
		"blogs": response.NewBlogViews(blogs),
	})
}

// GetBlog returns one blog.
func (h *CatalogHandler) GetBlog(c echo.Context) error {
	blogID, err := pathID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	blog, err := h.catalogUC.GetBlog(c.Request().Context(), blogID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, response.NewBlogView(blog))
}

// CreateBlog adds a blog. A zero publication date means now.
func (h *CatalogHandler) CreateBlog(c echo.Context) error {
	var req BlogRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	published := req.PublicationDate
	if published.IsZero() {
		published = time.Now().UTC()
	}

	blog, err := h.catalogUC.CreateBlog(c.Request().Context(), &entity.Blog{
		Title:           strings.TrimSpace(req.Title),
		AuthorName:      req.AuthorName,
		Email:           req.Email,
		URL:             req.URL,
		Description:     req.Description,
		Tags:            toTags(req.Tags),
		ImageURL:        req.ImageURL,
		ImageAlt:        req.ImageAlt,
		PublicationDate: published,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, response.NewBlogView(blog))
}

// DeleteBlog removes a blog.
func (h *CatalogHandler) DeleteBlog(c echo.Context) error {
	blogID, err := pathID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.catalogUC.DeleteBlog(c.Request().Context(), blogID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Message(c, http.StatusOK, "Blog deleted successfully")
}
