package repository

import (
	"context"

	"academy/internal/domain/entity"
)

// ContactRepository stores contact-form messages.
type ContactRepository interface {
	Create(ctx context.Context, contact *entity.Contact) error
	List(ctx context.Context) ([]*entity.Contact, error)
}
