package postgres

import (
	"context"
	"strings"

	"academy/internal/domain/entity"
	domainerrors "academy/internal/domain/errors"
	"academy/internal/domain/repository"
	"academy/internal/errors"
	"academy/internal/infra/persistence/model"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	defaultCourseListLimit = 20
	maxCourseListLimit     = 100
)

// courseRepository implements repository.CourseRepository.
type courseRepository struct {
	db *gorm.DB
}

// NewCourseRepository is the constructor for courseRepository.
func NewCourseRepository(db *gorm.DB) repository.CourseRepository {
	return &courseRepository{
		db: db,
	}
}

// FindByID retrieves a course by id.
func (repo *courseRepository) FindByID(ctx context.Context, id uint) (*entity.Course, error) {
	var courseM model.CourseModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&courseM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCourseNotFound
		}

		return nil, errors.Wrap(err, "failed to find course by id")
	}

	return toCourseDomain(&courseM), nil
}

// FindByIDs retrieves the courses that exist among ids.
func (repo *courseRepository) FindByIDs(ctx context.Context, ids []uint) ([]*entity.Course, error) {
	if len(ids) == 0 {
		return []*entity.Course{}, nil
	}

	var courseModels []*model.CourseModel
	if err := repo.db.WithContext(ctx).
		Where("id IN ?", ids).
		Order("id ASC").
		Find(&courseModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find courses by ids")
	}

	return toCourseDomains(courseModels), nil
}

// List returns a filtered page of courses.
func (repo *courseRepository) List(ctx context.Context, filter entity.CourseFilter) ([]*entity.Course, int64, error) {
	query := repo.db.WithContext(ctx).Model(&model.CourseModel{})

	if filter.Topic != "" {
		query = query.Where("LOWER(topic) = LOWER(?)", filter.Topic)
	}
	if filter.Level != "" {
		query = query.Where("LOWER(level) = LOWER(?)", filter.Level)
	}
	if filter.Language != "" {
		query = query.Where("LOWER(language) = LOWER(?)", filter.Language)
	}
	if q := strings.TrimSpace(filter.Query); q != "" {
		pattern := "%" + escapeLike(q) + "%"
		query = query.Where("name ILIKE ? OR description ILIKE ?", pattern, pattern)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count courses")
	}

	var courseModels []*model.CourseModel
	if err := query.
		Order("id ASC").
		Limit(clampLimit(filter.Limit, defaultCourseListLimit, maxCourseListLimit)).
		Offset(max(filter.Offset, 0)).
		Find(&courseModels).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to list courses")
	}

	return toCourseDomains(courseModels), total, nil
}

// Create persists a new course.
func (repo *courseRepository) Create(ctx context.Context, course *entity.Course) error {
	courseM := fromCourseDomain(course)

	if err := repo.db.WithContext(ctx).Create(courseM).Error; err != nil {
		return translateCourseWriteError(err, "failed to create course")
	}

	course.ID = courseM.ID
	course.CreatedAt = courseM.CreatedAt
	course.UpdatedAt = courseM.UpdatedAt

	return nil
}

// Update overwrites all mutable fields of the course.
func (repo *courseRepository) Update(ctx context.Context, course *entity.Course) error {
	courseM := fromCourseDomain(course)

	result := repo.db.WithContext(ctx).
		Model(&model.CourseModel{ID: course.ID}).
		Select("name", "price", "discount", "language", "topic", "level", "description",
			"tags", "summary", "content", "image_url", "image_alt").
		Updates(courseM)
	if result.Error != nil {
		return translateCourseWriteError(result.Error, "failed to update course")
	}

	if result.RowsAffected == 0 {
		return repository.ErrCourseNotFound
	}

	return nil
}

// Delete removes a course that no ledger row references.
func (repo *courseRepository) Delete(ctx context.Context, id uint) error {
	result := repo.db.WithContext(ctx).Delete(&model.CourseModel{}, id)
	if result.Error != nil {
		if isForeignKeyConstraintViolation(result.Error) {
			return repository.ErrCourseHasPurchases
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete course")
	}

	if result.RowsAffected == 0 {
		return repository.ErrCourseNotFound
	}

	return nil
}

func translateCourseWriteError(err error, details string) error {
	switch {
	case isUniqueConstraintViolation(err):
		return repository.ErrCourseNameTaken
	case isNotNullConstraintViolation(err), isCheckConstraintViolation(err):
		return domainerrors.ErrInvalidInput.WithDetails("missing or invalid course information")
	default:
		return domainerrors.NewDatabaseExecuteError(err, details)
	}
}

func toCourseDomains(courseModels []*model.CourseModel) []*entity.Course {
	courses := make([]*entity.Course, 0, len(courseModels))
	for _, courseM := range courseModels {
		courses = append(courses, toCourseDomain(courseM))
	}

	return courses
}

func toCourseDomain(courseM *model.CourseModel) *entity.Course {
	tags := []entity.Tag(courseM.Tags)
	if tags == nil {
		tags = []entity.Tag{}
	}

	return &entity.Course{
		ID:          courseM.ID,
		Name:        courseM.Name,
		Price:       courseM.Price,
		Discount:    courseM.Discount,
		Language:    courseM.Language,
		Topic:       courseM.Topic,
		Level:       courseM.Level,
		Description: courseM.Description,
		Tags:        tags,
		Summary:     courseM.Summary.Data(),
		Content:     []entity.Lesson(courseM.Content),
		ImageURL:    courseM.ImageURL,
		ImageAlt:    courseM.ImageAlt,
		CreatedAt:   courseM.CreatedAt,
		UpdatedAt:   courseM.UpdatedAt,
	}
}

func fromCourseDomain(course *entity.Course) *model.CourseModel {
	tags := course.Tags
	if tags == nil {
		tags = []entity.Tag{}
	}
	content := course.Content
	if content == nil {
		content = []entity.Lesson{}
	}

	return &model.CourseModel{
		ID:          course.ID,
		Name:        course.Name,
		Price:       course.Price,
		Discount:    course.Discount,
		Language:    course.Language,
		Topic:       course.Topic,
		Level:       course.Level,
		Description: course.Description,
		Tags:        datatypes.NewJSONSlice(tags),
		Summary:     datatypes.NewJSONType(course.Summary),
		Content:     datatypes.NewJSONSlice(content),
		ImageURL:    course.ImageURL,
		ImageAlt:    course.ImageAlt,
		CreatedAt:   course.CreatedAt,
		UpdatedAt:   course.UpdatedAt,
	}
}

func clampLimit(limit, fallback, ceiling int) int {
	switch {
	case limit <= 0:
		return fallback
	case limit > ceiling:
		return ceiling
	default:
		return limit
	}
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
