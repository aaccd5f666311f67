package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "academy/internal/delivery/context"
	"academy/internal/domain/entity"
	domainerrors "academy/internal/domain/errors"
	"academy/internal/domain/repository"
	"academy/internal/errors"
	"academy/internal/usecase"

	"go.uber.org/fx"
)

type contactService struct {
	contactRepo repository.ContactRepository
	logger      *slog.Logger
}

// ContactServiceParams holds dependencies for ContactService, injected by Fx.
type ContactServiceParams struct {
	fx.In

	ContactRepo repository.ContactRepository
	Logger      *slog.Logger
}

// NewContactService is the constructor for contactService.
func NewContactService(params ContactServiceParams) usecase.ContactUsecase {
	return &contactService{
		contactRepo: params.ContactRepo,
		logger:      params.Logger,
	}
}

func (srv *contactService) CreateContact(ctx context.Context, email, messages string) (*entity.Contact, error) {
	contact := &entity.Contact{
		Email:    strings.TrimSpace(email),
		Messages: strings.TrimSpace(messages),
	}
	if contact.Email == "" || contact.Messages == "" {
		return nil, domainerrors.ErrInvalidInput.WithMessage("Email and messages are required")
	}

	if err := srv.contactRepo.Create(ctx, contact); err != nil {
		return nil, translateRepoError(err, "failed to create contact")
	}

	deliverycontext.LoggerFrom(ctx, srv.logger).
		Info("Contact message received", slog.Uint64("contact_id", uint64(contact.ID)))

	return contact, nil
}

func (srv *contactService) ListContacts(ctx context.Context) ([]*entity.Contact, error) {
	contacts, err := srv.contactRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list contacts")
	}

	return contacts, nil
}
