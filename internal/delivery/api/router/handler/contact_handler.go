package handler

import (
	"net/http"

	"academy/internal/delivery/api/response"
	"academy/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ContactHandlerParams holds dependencies for ContactHandler, injected by Fx.
type ContactHandlerParams struct {
	fx.In

	ContactUC usecase.ContactUsecase
}

// ContactHandler serves the contact form.
type ContactHandler struct {
	contactUC usecase.ContactUsecase
}

// NewContactHandler is the constructor for ContactHandler
func NewContactHandler(params ContactHandlerParams) *ContactHandler {
	return &ContactHandler{contactUC: params.ContactUC}
}

// ContactRequest represents a contact-form submission
type ContactRequest struct {
	Email    string `json:"email" validate:"required,email,max=120"`
	Messages string `json:"messages" validate:"required,max=5000"`
}

// CreateContact stores a message.
func (h *ContactHandler) CreateContact(c echo.Context) error {
	var req ContactRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	contact, err := h.contactUC.CreateContact(c.Request().Context(), req.Email, req.Messages)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, response.NewContactView(contact))
}

// ListContacts returns every stored message.
func (h *ContactHandler) ListContacts(c echo.Context) error {
	contacts, err := h.contactUC.ListContacts(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, response.NewContactViews(contacts))
}
