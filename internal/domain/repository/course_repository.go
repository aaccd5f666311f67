package repository

import (
	"context"

	"academy/internal/domain/entity"
	"academy/internal/errors"
)

// Domain-specific errors for course persistence.
var (
	// ErrCourseNotFound is returned when a course is not found.
	ErrCourseNotFound = errors.New("course not found")
	// ErrCourseNameTaken is returned when the course name unique index rejects a write.
	ErrCourseNameTaken = errors.New("course name already exists")
	// ErrCourseHasPurchases is returned when deleting a course still referenced by the ledger.
	ErrCourseHasPurchases = errors.New("course has purchase records")
)

// CourseRepository defines the catalog persistence operations.
type CourseRepository interface {
	// FindByID retrieves a course by id.
	FindByID(ctx context.Context, id uint) (*entity.Course, error)

	// FindByIDs retrieves the courses that exist among ids, ordered by id.
	FindByIDs(ctx context.Context, ids []uint) ([]*entity.Course, error)

	// List returns a filtered page of courses and the total match count.
	List(ctx context.Context, filter entity.CourseFilter) ([]*entity.Course, int64, error)

	// Create persists a new course.
	Create(ctx context.Context, course *entity.Course) error

	// Update overwrites all mutable course fields.
	Update(ctx context.Context, course *entity.Course) error

	// Delete removes a course.
	Delete(ctx context.Context, id uint) error
}
