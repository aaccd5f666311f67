package model

import (
	"time"

	"academy/internal/domain/entity"

	"gorm.io/datatypes"
)

// BlogModel mirrors the 'blogs' table.
type BlogModel struct {
	ID              uint                            `gorm:"primaryKey"`
	Title           string                          `gorm:"type:varchar(200);not null"`
	AuthorName      string                          `gorm:"type:varchar(100);not null"`
	Email           string                          `gorm:"type:varchar(120);not null"`
	URL             string                          `gorm:"column:url;type:varchar(255);not null"`
	Description     string                          `gorm:"type:text;not null"`
	Tags            datatypes.JSONSlice[entity.Tag] `gorm:"type:jsonb;not null"`
	ImageURL        string                          `gorm:"type:varchar(500)"`
	ImageAlt        string                          `gorm:"type:varchar(255)"`
	PublicationDate time.Time                       `gorm:"not null;index"`
}

// TableName explicitly sets the table name for GORM.
func (BlogModel) TableName() string {
	return "blogs"
}
