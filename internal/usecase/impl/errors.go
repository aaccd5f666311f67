package impl

import (
	domainerrors "academy/internal/domain/errors"
	"academy/internal/domain/repository"
	"academy/internal/errors"
)

// repositoryErrors maps persistence sentinels to the errors rendered to clients.
var repositoryErrors = []struct {
	from error
	to   *domainerrors.BaseError
}{
	{repository.ErrUserNotFound, domainerrors.ErrUserNotFound},
	{repository.ErrCourseNotFound, domainerrors.ErrCourseNotFound},
	{repository.ErrBlogNotFound, domainerrors.ErrBlogNotFound},
	{repository.ErrPurchaseNotFound, domainerrors.ErrInvoiceNotFound},
	{repository.ErrUsernameTaken, domainerrors.ErrUsernameTaken},
	{repository.ErrEmailTaken, domainerrors.ErrEmailTaken},
	{repository.ErrCourseNameTaken, domainerrors.ErrCourseNameTaken},
	{repository.ErrDuplicatePurchase, domainerrors.ErrCourseAlreadyOwned},
	{repository.ErrUserHasPurchases, domainerrors.ErrResourceInUse.WithMessage("User has purchase records and cannot be deleted")},
	{repository.ErrCourseHasPurchases, domainerrors.ErrResourceInUse.WithMessage("Course has purchase records and cannot be deleted")},
}

// translateRepoError converts a known repository sentinel into its domain
// error and wraps anything else with message.
func translateRepoError(err error, message string) error {
	if err == nil {
		return nil
	}
	if _, ok := domainerrors.AsAppError(err); ok {
		return err
	}
	for _, m := range repositoryErrors {
		if errors.Is(err, m.from) {
			return m.to
		}
	}

	return errors.Wrap(err, message)
}
