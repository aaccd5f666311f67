package handler

import (
	"net/http"
	"testing"

	"academy/internal/domain/entity"
	mockusecase "academy/internal/mocks/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestContactHandler(t *testing.T) {
	contactUC := mockusecase.NewMockContactUsecase(t)
	h := NewContactHandler(ContactHandlerParams{ContactUC: contactUC})

	e := newTestEcho()
	e.POST("/contacts", h.CreateContact)
	e.GET("/contacts", h.ListContacts)

	contactUC.EXPECT().CreateContact(mock.Anything, "ana@example.com", "Hello").
		Return(&entity.Contact{ID: 1, Email: "ana@example.com", Messages: "Hello"}, nil)
	contactUC.EXPECT().ListContacts(mock.Anything).
		Return([]*entity.Contact{{ID: 1, Email: "ana@example.com", Messages: "Hello"}}, nil)

	rec := doJSON(e, http.MethodPost, "/contacts", `{"email":"ana@example.com","messages":"Hello"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "Hello", decodeMap(t, rec)["messages"])

	rec = doJSON(e, http.MethodPost, "/contacts", `{"email":"ana@example.com"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(e, http.MethodGet, "/contacts", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"email":"ana@example.com"`)
}
