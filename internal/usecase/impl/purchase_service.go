package impl

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"academy/config"
	deliverycontext "academy/internal/delivery/context"
	"academy/internal/domain/entity"
	domainerrors "academy/internal/domain/errors"
	"academy/internal/domain/repository"
	"academy/internal/domain/service"
	"academy/internal/errors"
	"academy/internal/usecase"

	"go.uber.org/fx"
)

// purchaseService implements the PurchaseUsecase interface.
type purchaseService struct {
	txManager     repository.TransactionManager
	userRepo      repository.UserRepository
	courseRepo    repository.CourseRepository
	purchaseRepo  repository.PurchaseRepository
	invoiceNumber service.InvoiceNumberGenerator
	qrCode        service.QRCodeService
	maxAttempts   int
	now           func() time.Time
	logger        *slog.Logger
}

// PurchaseServiceParams holds dependencies for PurchaseService, injected by Fx.
type PurchaseServiceParams struct {
	fx.In

	TxManager     repository.TransactionManager
	UserRepo      repository.UserRepository
	CourseRepo    repository.CourseRepository
	PurchaseRepo  repository.PurchaseRepository
	InvoiceNumber service.InvoiceNumberGenerator
	QRCode        service.QRCodeService
	Config        *config.Config
	Logger        *slog.Logger
}

// NewPurchaseService is the constructor for purchaseService.
func NewPurchaseService(params PurchaseServiceParams) usecase.PurchaseUsecase {
	maxAttempts := config.DefaultInvoiceAttempts
	if params.Config != nil && params.Config.Invoice != nil && params.Config.Invoice.MaxAttempts > 0 {
		maxAttempts = params.Config.Invoice.MaxAttempts
	}

	return &purchaseService{
		txManager:     params.TxManager,
		userRepo:      params.UserRepo,
		courseRepo:    params.CourseRepo,
		purchaseRepo:  params.PurchaseRepo,
		invoiceNumber: params.InvoiceNumber,
		qrCode:        params.QRCode,
		maxAttempts:   maxAttempts,
		now:           time.Now,
		logger:        params.Logger,
	}
}

func (srv *purchaseService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.LoggerFrom(ctx, srv.logger)
}

// Purchase records one ledger row per course and grants ownership, all in a
// single transaction. Any failure leaves the ledger and the user untouched.
func (srv *purchaseService) Purchase(ctx context.Context, input *usecase.PurchaseInput) (*usecase.PurchaseOutput, error) {
	if input == nil || len(input.CourseIDs) == 0 {
		return nil, domainerrors.ErrCourseIDsRequired
	}
	if slices.Contains(input.CourseIDs, 0) {
		return nil, domainerrors.ErrCourseIDsRequired.WithDetails("course ids must be positive integers")
	}

	srv.log(ctx).Info("Starting purchase",
		slog.Uint64("user_id", uint64(input.UserID)),
		slog.Any("course_ids", input.CourseIDs),
	)

	output := &usecase.PurchaseOutput{
		Purchases:      make([]*entity.Purchase, 0, len(input.CourseIDs)),
		InvoiceNumbers: make([]string, 0, len(input.CourseIDs)),
	}

	err := srv.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		userRepo := factory.NewUserRepository()
		courseRepo := factory.NewCourseRepository()
		purchaseRepo := factory.NewPurchaseRepository()

		user, err := userRepo.FindByIDForUpdate(ctx, input.UserID)
		if errors.Is(err, repository.ErrUserNotFound) {
			return domainerrors.ErrUserNotFound
		}
		if err != nil {
			return errors.Wrap(err, "failed to lock user")
		}

		now := srv.now().UTC()
		for _, courseID := range input.CourseIDs {
			course, err := courseRepo.FindByID(ctx, courseID)
			if errors.Is(err, repository.ErrCourseNotFound) {
				return domainerrors.ErrCourseNotFound.WithMessage(fmt.Sprintf("Course with ID %d not found", courseID))
			}
			if err != nil {
				return errors.Wrapf(err, "failed to find course %d", courseID)
			}

			if user.OwnsCourse(courseID) {
				return alreadyOwned(courseID)
			}

			purchase, err := srv.recordPurchase(ctx, purchaseRepo, user.ID, course, now)
			if err != nil {
				return err
			}

			user.GrantCourse(courseID)
			output.Purchases = append(output.Purchases, purchase)
			output.InvoiceNumbers = append(output.InvoiceNumbers, purchase.InvoiceNumber)
		}

		if err := userRepo.UpdateOwnedCourses(ctx, user.ID, user.OwnedCourses); err != nil {
			return errors.Wrap(err, "failed to update owned courses")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Purchase rolled back",
			slog.Uint64("user_id", uint64(input.UserID)),
			slog.Any("error", err),
		)

		return nil, err
	}

	user, err := srv.userRepo.FindByID(ctx, input.UserID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to reload user after purchase")
	}
	output.User = user

	srv.log(ctx).Info("Purchase committed",
		slog.Uint64("user_id", uint64(input.UserID)),
		slog.Any("invoice_numbers", output.InvoiceNumbers),
	)

	return output, nil
}

// recordPurchase inserts a ledger row, regenerating the invoice number on
// collision up to maxAttempts times.
func (srv *purchaseService) recordPurchase(
	ctx context.Context,
	purchaseRepo repository.PurchaseRepository,
	userID uint,
	course *entity.Course,
	now time.Time,
) (*entity.Purchase, error) {
	for attempt := 1; attempt <= srv.maxAttempts; attempt++ {
		invoiceNumber, err := srv.invoiceNumber.Generate()
		if err != nil {
			return nil, errors.Wrap(err, "failed to generate invoice number")
		}

		purchase := entity.NewPurchase(userID, course, invoiceNumber, now)
		err = purchaseRepo.Create(ctx, purchase)
		switch {
		case err == nil:
			return purchase, nil
		case errors.Is(err, repository.ErrInvoiceNumberTaken):
			srv.log(ctx).Debug("Invoice number collision",
				slog.String("invoice_number", invoiceNumber),
				slog.Int("attempt", attempt),
			)

			continue
		case errors.Is(err, repository.ErrDuplicatePurchase):
			return nil, alreadyOwned(course.ID)
		default:
			return nil, errors.Wrap(err, "failed to record purchase")
		}
	}

	srv.log(ctx).Error("Invoice numbers exhausted", slog.Int("attempts", srv.maxAttempts))

	return nil, domainerrors.ErrInvoiceNumberExhausted
}

func alreadyOwned(courseID uint) error {
	return domainerrors.ErrCourseAlreadyOwned.WithMessage(fmt.Sprintf("You already own course %d", courseID))
}

// ListPurchases returns the caller's ledger rows.
func (srv *purchaseService) ListPurchases(ctx context.Context, userID uint, expand bool) ([]*entity.Purchase, error) {
	purchases, err := srv.purchaseRepo.FindByUser(ctx, userID, expand)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list purchases")
	}

	return purchases, nil
}

// GetInvoice resolves an invoice number to its ledger row, buyer and course.
func (srv *purchaseService) GetInvoice(ctx context.Context, invoiceNumber string) (*entity.Invoice, error) {
	if invoiceNumber == "" {
		return nil, domainerrors.ErrInvoiceNotFound
	}

	purchase, err := srv.purchaseRepo.FindByInvoiceNumber(ctx, invoiceNumber)
	if errors.Is(err, repository.ErrPurchaseNotFound) {
		return nil, domainerrors.ErrInvoiceNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find invoice")
	}

	invoice := &entity.Invoice{Purchase: purchase}

	user, err := srv.userRepo.FindByID(ctx, purchase.UserID)
	switch {
	case err == nil:
		snapshot := user.Snapshot()
		invoice.User = &snapshot
	case !errors.Is(err, repository.ErrUserNotFound):
		return nil, errors.Wrap(err, "failed to find invoice user")
	}

	course, err := srv.courseRepo.FindByID(ctx, purchase.CourseID)
	switch {
	case err == nil:
		invoice.Course = course
	case !errors.Is(err, repository.ErrCourseNotFound):
		return nil, errors.Wrap(err, "failed to find invoice course")
	}

	return invoice, nil
}

// GetInvoiceQR renders a QR code for an existing invoice.
func (srv *purchaseService) GetInvoiceQR(ctx context.Context, invoiceNumber string) ([]byte, error) {
	if invoiceNumber == "" {
		return nil, domainerrors.ErrInvoiceNotFound
	}

	_, err := srv.purchaseRepo.FindByInvoiceNumber(ctx, invoiceNumber)
	if errors.Is(err, repository.ErrPurchaseNotFound) {
		return nil, domainerrors.ErrInvoiceNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find invoice")
	}

	png, err := srv.qrCode.GenerateInvoiceQR(invoiceNumber)
	if err != nil {
		return nil, errors.Wrap(err, "failed to render invoice QR code")
	}

	return png, nil
}

// ReconcileOwnedCourses rebuilds the owned-course cache from the ledger.
func (srv *purchaseService) ReconcileOwnedCourses(ctx context.Context, userID uint) (*usecase.ReconcileOutput, error) {
	output := &usecase.ReconcileOutput{UserID: userID}

	err := srv.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		userRepo := factory.NewUserRepository()

		user, err := userRepo.FindByIDForUpdate(ctx, userID)
		if errors.Is(err, repository.ErrUserNotFound) {
			return domainerrors.ErrUserNotFound
		}
		if err != nil {
			return errors.Wrap(err, "failed to lock user")
		}

		ledger, err := factory.NewPurchaseRepository().CourseIDsByUser(ctx, userID)
		if err != nil {
			return errors.Wrap(err, "failed to read ledger")
		}

		if ledger == nil {
			ledger = []uint{}
		}
		output.Before = slices.Clone(user.OwnedCourses)
		output.After = slices.Compact(ledger)
		if slices.Equal(output.Before, output.After) {
			return nil
		}

		output.Changed = true

		return userRepo.UpdateOwnedCourses(ctx, userID, output.After)
	})
	if err != nil {
		return nil, err
	}

	if output.Changed {
		srv.log(ctx).Warn("Owned courses reconciled from ledger",
			slog.Uint64("user_id", uint64(userID)),
			slog.Any("before", output.Before),
			slog.Any("after", output.After),
		)
	}

	return output, nil
}
