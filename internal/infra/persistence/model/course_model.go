package model

import (
	"time"

	"academy/internal/domain/entity"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// CourseModel mirrors the 'courses' table.
type CourseModel struct {
	ID          uint                                      `gorm:"primaryKey"`
	Name        string                                    `gorm:"type:varchar(100);not null;uniqueIndex:idx_courses_name"`
	Price       decimal.Decimal                           `gorm:"type:numeric(8,2);not null"`
	Discount    decimal.Decimal                           `gorm:"type:numeric(8,2);not null;default:0"`
	Language    string                                    `gorm:"type:varchar(100);not null;default:''"`
	Topic       string                                    `gorm:"type:varchar(100);not null;index"`
	Level       string                                    `gorm:"type:varchar(100);not null"`
	Description string                                    `gorm:"type:text"`
	Tags        datatypes.JSONSlice[entity.Tag]           `gorm:"type:jsonb;not null"`
	Summary     datatypes.JSONType[*entity.CourseSummary] `gorm:"type:jsonb;not null"` // JSON null when absent
	Content     datatypes.JSONSlice[entity.Lesson]        `gorm:"type:jsonb;not null"`
	ImageURL    string                                    `gorm:"type:varchar(500)"`
	ImageAlt    string                                    `gorm:"type:varchar(255)"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (CourseModel) TableName() string {
	return "courses"
}
