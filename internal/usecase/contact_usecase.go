package usecase

import (
	"context"

	"academy/internal/domain/entity"
)

// ContactUsecase stores and lists contact-form messages.
type ContactUsecase interface {
	CreateContact(ctx context.Context, email, messages string) (*entity.Contact, error)
	ListContacts(ctx context.Context) ([]*entity.Contact, error)
}
