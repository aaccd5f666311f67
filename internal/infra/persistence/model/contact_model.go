package model

import "time"

// ContactModel mirrors the 'contacts' table.
type ContactModel struct {
	ID        uint   `gorm:"primaryKey"`
	Email     string `gorm:"type:varchar(120);not null"`
	Messages  string `gorm:"type:text;not null"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (ContactModel) TableName() string {
	return "contacts"
}

// All lists every model in dependency order, for AutoMigrate.
func All() []any {
	return []any{
		&UserModel{},
		&CourseModel{},
		&BlogModel{},
		&ContactModel{},
		&PurchaseModel{},
	}
}
