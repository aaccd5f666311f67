package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// PurchaseModel mirrors the 'purchases' ledger. A user can hold at most one
// row per course, and ledger rows pin their user and course.
type PurchaseModel struct {
	ID              uint            `gorm:"primaryKey"`
	UserID          uint            `gorm:"not null;uniqueIndex:idx_purchases_user_course,priority:1"`
	CourseID        uint            `gorm:"not null;uniqueIndex:idx_purchases_user_course,priority:2;index"`
	PricePaid       decimal.Decimal `gorm:"type:numeric(8,2);not null"`
	DiscountApplied decimal.Decimal `gorm:"type:numeric(8,2);not null;default:0"`
	FinalPrice      decimal.Decimal `gorm:"type:numeric(8,2);not null"`
	InvoiceNumber   string          `gorm:"type:varchar(20);not null;uniqueIndex:idx_purchases_invoice_number"`
	PurchaseDate    time.Time       `gorm:"not null"`

	User   *UserModel   `gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
	Course *CourseModel `gorm:"foreignKey:CourseID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
}

// TableName explicitly sets the table name for GORM.
func (PurchaseModel) TableName() string {
	return "purchases"
}
