package repository

import (
	"context"

	"academy/internal/domain/entity"
	"academy/internal/errors"
)

// Domain-specific errors for the purchase ledger.
var (
	// ErrPurchaseNotFound is returned when no ledger row matches.
	ErrPurchaseNotFound = errors.New("purchase not found")
	// ErrInvoiceNumberTaken is returned when the generated invoice number
	// already exists. The caller regenerates and retries.
	ErrInvoiceNumberTaken = errors.New("invoice number already exists")
	// ErrDuplicatePurchase is returned when the (user, course) pair is
	// already in the ledger.
	ErrDuplicatePurchase = errors.New("course already purchased by user")
)

// PurchaseRepository is the append-only ledger. Rows are never updated.
type PurchaseRepository interface {
	// Create inserts a ledger row. It returns ErrInvoiceNumberTaken on an
	// invoice number collision and ErrDuplicatePurchase when the user
	// already bought the course.
	Create(ctx context.Context, purchase *entity.Purchase) error

	// FindByInvoiceNumber looks a row up by exact invoice number.
	FindByInvoiceNumber(ctx context.Context, invoiceNumber string) (*entity.Purchase, error)

	// FindByUser lists a user's purchases, newest first. When withCourse is
	// set each row carries its course.
	FindByUser(ctx context.Context, userID uint, withCourse bool) ([]*entity.Purchase, error)

	// CourseIDsByUser returns the purchased course ids in purchase order.
	CourseIDsByUser(ctx context.Context, userID uint) ([]uint, error)
}
