// Package model holds the gorm row types of the academy schema.
package model

import (
	"time"

	"gorm.io/datatypes"
)

// Index names referenced when translating unique violations.
const (
	IdxUsersUsername       = "idx_users_username"
	IdxUsersEmail          = "idx_users_email"
	IdxCoursesName         = "idx_courses_name"
	IdxPurchasesUserCourse = "idx_purchases_user_course"
	IdxPurchasesInvoice    = "idx_purchases_invoice_number"
)

// UserModel mirrors the 'users' table. The three id lists are JSON arrays.
type UserModel struct {
	ID               uint                      `gorm:"primaryKey"`
	Username         string                    `gorm:"type:varchar(80);not null;uniqueIndex:idx_users_username"`
	Email            string                    `gorm:"type:varchar(120);not null;uniqueIndex:idx_users_email"`
	PasswordHash     string                    `gorm:"type:varchar(255);not null"`
	Role             string                    `gorm:"type:varchar(20);not null;default:user"`
	ProfilePicture   string                    `gorm:"type:varchar(255)"`
	OwnedCourses     datatypes.JSONSlice[uint] `gorm:"type:jsonb;not null"`
	FavouriteCourses datatypes.JSONSlice[uint] `gorm:"type:jsonb;not null"`
	SavedBlogs       datatypes.JSONSlice[uint] `gorm:"type:jsonb;not null"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}

// IDList converts ids into a non-nil JSON slice so the column never holds null.
func IDList(ids []uint) datatypes.JSONSlice[uint] {
	if ids == nil {
		return datatypes.JSONSlice[uint]{}
	}

	return datatypes.NewJSONSlice(ids)
}
