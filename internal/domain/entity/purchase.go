package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Purchase is an immutable row of the ledger: one priced ownership grant
// of a course to a user.
type Purchase struct {
	ID              uint
	UserID          uint
	CourseID        uint
	PricePaid       decimal.Decimal // Course price at purchase time.
	DiscountApplied decimal.Decimal // Course discount at purchase time.
	FinalPrice      decimal.Decimal // max(0, PricePaid - DiscountApplied).
	InvoiceNumber   string          // Public, unguessable identifier.
	PurchaseDate    time.Time
	Course          *Course // Populated only by expanded reads.
}

// NewPurchase snapshots the course pricing into a ledger row.
func NewPurchase(userID uint, course *Course, invoiceNumber string, now time.Time) *Purchase {
	return &Purchase{
		UserID:          userID,
		CourseID:        course.ID,
		PricePaid:       course.Price.Round(2),
		DiscountApplied: course.Discount.Round(2),
		FinalPrice:      course.FinalPrice(),
		InvoiceNumber:   invoiceNumber,
		PurchaseDate:    now,
	}
}

// Invoice is the public view of a ledger row.
type Invoice struct {
	Purchase *Purchase
	User     *UserSnapshot // Nil when the account no longer resolves.
	Course   *Course       // Current catalog state, nil when unresolvable.
}
