package usecase

import (
	"context"

	"academy/internal/domain/entity"
)

// PurchaseInput is a purchase request of the authenticated caller.
type PurchaseInput struct {
	UserID    uint
	CourseIDs []uint
}

// PurchaseOutput is the result of a committed purchase.
type PurchaseOutput struct {
	Purchases      []*entity.Purchase
	InvoiceNumbers []string // Same order as the requested course ids.
	User           *entity.User
}

// ReconcileOutput reports a rebuild of a user's owned-course cache.
type ReconcileOutput struct {
	UserID  uint
	Before  []uint
	After   []uint
	Changed bool
}

// PurchaseUsecase is the purchase and invoicing workflow.
type PurchaseUsecase interface {
	// Purchase buys every course in input.CourseIDs or none of them.
	Purchase(ctx context.Context, input *PurchaseInput) (*PurchaseOutput, error)

	// ListPurchases returns the user's ledger rows, newest first.
	ListPurchases(ctx context.Context, userID uint, expand bool) ([]*entity.Purchase, error)

	// GetInvoice resolves a public invoice number.
	GetInvoice(ctx context.Context, invoiceNumber string) (*entity.Invoice, error)

	// GetInvoiceQR renders a QR code linking to the invoice.
	GetInvoiceQR(ctx context.Context, invoiceNumber string) ([]byte, error)

	// ReconcileOwnedCourses rewrites the owned-course cache from the ledger.
	ReconcileOwnedCourses(ctx context.Context, userID uint) (*ReconcileOutput, error)
}
