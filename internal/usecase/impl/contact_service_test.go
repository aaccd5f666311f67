package impl

import (
	"context"
	"testing"

	"academy/internal/domain/entity"
	domainerrors "academy/internal/domain/errors"
	mockRepo "academy/internal/mocks/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestContactService_CreateContact(t *testing.T) {
	contactRepo := mockRepo.NewMockContactRepository(t)
	svc := NewContactService(ContactServiceParams{ContactRepo: contactRepo, Logger: newDiscardLogger()})

	contactRepo.EXPECT().Create(mock.Anything, mock.MatchedBy(func(c *entity.Contact) bool {
		return c.Email == "a@example.com" && c.Messages == "hello"
	})).Run(func(_ context.Context, c *entity.Contact) { c.ID = 1 }).Return(nil)

	contact, err := svc.CreateContact(context.Background(), " a@example.com ", "hello\n")

	require.NoError(t, err)
	assert.Equal(t, uint(1), contact.ID)
}

func TestContactService_CreateContact_Empty(t *testing.T) {
	svc := NewContactService(ContactServiceParams{
		ContactRepo: mockRepo.NewMockContactRepository(t),
		Logger:      newDiscardLogger(),
	})

	_, err := svc.CreateContact(context.Background(), "a@example.com", "  ")

	assert.ErrorIs(t, err, domainerrors.ErrInvalidInput)
}

func TestContactService_ListContacts(t *testing.T) {
	contactRepo := mockRepo.NewMockContactRepository(t)
	svc := NewContactService(ContactServiceParams{ContactRepo: contactRepo, Logger: newDiscardLogger()})
	contacts := []*entity.Contact{{ID: 2}, {ID: 1}}

	contactRepo.EXPECT().List(mock.Anything).Return(contacts, nil)

	got, err := svc.ListContacts(context.Background())

	require.NoError(t, err)
	assert.Equal(t, contacts, got)
}
