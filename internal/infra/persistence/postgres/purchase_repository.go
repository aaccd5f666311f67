package postgres

import (
	"context"

	"academy/internal/domain/entity"
	domainerrors "academy/internal/domain/errors"
	"academy/internal/domain/repository"
	"academy/internal/errors"
	"academy/internal/infra/persistence/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// purchaseRepository implements the append-only ledger.
type purchaseRepository struct {
	db *gorm.DB
}

// NewPurchaseRepository is the constructor for purchaseRepository.
func NewPurchaseRepository(db *gorm.DB) repository.PurchaseRepository {
	return &purchaseRepository{
		db: db,
	}
}

// Create inserts a ledger row. An invoice number collision is absorbed by
// ON CONFLICT DO NOTHING and reported as ErrInvoiceNumberTaken, which keeps
// the surrounding transaction usable for a retry. Any other unique
// violation is the (user_id, course_id) index.
func (repo *purchaseRepository) Create(ctx context.Context, purchase *entity.Purchase) error {
	purchaseM := fromPurchaseDomain(purchase)

	result := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "invoice_number"}},
			DoNothing: true,
		}).
		Create(purchaseM)
	if result.Error != nil {
		return translatePurchaseError(result.Error)
	}

	if result.RowsAffected == 0 {
		return repository.ErrInvoiceNumberTaken
	}

	purchase.ID = purchaseM.ID

	return nil
}

// FindByInvoiceNumber looks a row up by exact, case-sensitive invoice number.
func (repo *purchaseRepository) FindByInvoiceNumber(ctx context.Context, invoiceNumber string) (*entity.Purchase, error) {
	var purchaseM model.PurchaseModel
	if err := repo.db.WithContext(ctx).
		Where("invoice_number = ?", invoiceNumber).
		First(&purchaseM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPurchaseNotFound
		}

		return nil, errors.Wrap(err, "failed to find purchase by invoice number")
	}

	return toPurchaseDomain(&purchaseM), nil
}

// FindByUser lists a user's purchases, newest first.
func (repo *purchaseRepository) FindByUser(ctx context.Context, userID uint, withCourse bool) ([]*entity.Purchase, error) {
	query := repo.db.WithContext(ctx).Where("user_id = ?", userID)
	if withCourse {
		query = query.Preload("Course")
	}

	var purchaseModels []*model.PurchaseModel
	if err := query.Order("purchase_date DESC, id DESC").Find(&purchaseModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find purchases by user")
	}

	purchases := make([]*entity.Purchase, 0, len(purchaseModels))
	for _, purchaseM := range purchaseModels {
		purchases = append(purchases, toPurchaseDomain(purchaseM))
	}

	return purchases, nil
}

// CourseIDsByUser returns purchased course ids in purchase order.
func (repo *purchaseRepository) CourseIDsByUser(ctx context.Context, userID uint) ([]uint, error) {
	courseIDs := []uint{}
	if err := repo.db.WithContext(ctx).
		Model(&model.PurchaseModel{}).
		Where("user_id = ?", userID).
		Order("purchase_date ASC, id ASC").
		Pluck("course_id", &courseIDs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list purchased course ids")
	}

	return courseIDs, nil
}

func translatePurchaseError(err error) error {
	switch {
	case isUniqueConstraintViolation(err):
		if violatedConstraint(err) == model.IdxPurchasesInvoice {
			return repository.ErrInvoiceNumberTaken
		}

		return repository.ErrDuplicatePurchase
	case isForeignKeyConstraintViolation(err):
		return domainerrors.ErrNotFound.WithDetails("purchase references a missing user or course")
	default:
		return domainerrors.NewDatabaseExecuteError(err, "failed to record purchase")
	}
}

func toPurchaseDomain(purchaseM *model.PurchaseModel) *entity.Purchase {
	purchase := &entity.Purchase{
		ID:              purchaseM.ID,
		UserID:          purchaseM.UserID,
		CourseID:        purchaseM.CourseID,
		PricePaid:       purchaseM.PricePaid,
		DiscountApplied: purchaseM.DiscountApplied,
		FinalPrice:      purchaseM.FinalPrice,
		InvoiceNumber:   purchaseM.InvoiceNumber,
		PurchaseDate:    purchaseM.PurchaseDate,
	}
	if purchaseM.Course != nil {
		purchase.Course = toCourseDomain(purchaseM.Course)
	}

	return purchase
}

func fromPurchaseDomain(purchase *entity.Purchase) *model.PurchaseModel {
	return &model.PurchaseModel{
		ID:              purchase.ID,
		UserID:          purchase.UserID,
		CourseID:        purchase.CourseID,
		PricePaid:       purchase.PricePaid,
		DiscountApplied: purchase.DiscountApplied,
		FinalPrice:      purchase.FinalPrice,
		InvoiceNumber:   purchase.InvoiceNumber,
		PurchaseDate:    purchase.PurchaseDate,
	}
}
