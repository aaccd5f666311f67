package postgres

import (
	"context"

	"academy/internal/domain/entity"
	domainerrors "academy/internal/domain/errors"
	"academy/internal/domain/repository"
	"academy/internal/errors"
	"academy/internal/infra/persistence/model"

	"gorm.io/gorm"
)

type contactRepository struct {
	db *gorm.DB
}

// NewContactRepository is the constructor for contactRepository.
func NewContactRepository(db *gorm.DB) repository.ContactRepository {
	return &contactRepository{
		db: db,
	}
}

func (repo *contactRepository) Create(ctx context.Context, contact *entity.Contact) error {
	contactM := &model.ContactModel{
		Email:    contact.Email,
		Messages: contact.Messages,
	}

	if err := repo.db.WithContext(ctx).Create(contactM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create contact")
	}

	contact.ID = contactM.ID
	contact.CreatedAt = contactM.CreatedAt

	return nil
}

func (repo *contactRepository) List(ctx context.Context) ([]*entity.Contact, error) {
	var contactModels []*model.ContactModel
	if err := repo.db.WithContext(ctx).Order("id DESC").Find(&contactModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list contacts")
	}

	contacts := make([]*entity.Contact, 0, len(contactModels))
	for _, contactM := range contactModels {
		contacts = append(contacts, &entity.Contact{
			ID:        contactM.ID,
			Email:     contactM.Email,
			Messages:  contactM.Messages,
			CreatedAt: contactM.CreatedAt,
		})
	}

	return contacts, nil
}
