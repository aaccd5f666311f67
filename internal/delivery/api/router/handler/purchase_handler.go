package handler

import (
	"net/http"

	"academy/internal/delivery/api/response"
	"academy/internal/delivery/api/validator"
	deliverycontext "academy/internal/delivery/context"
	domainerrors "academy/internal/domain/errors"
	"academy/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// PurchaseHandlerParams holds dependencies for PurchaseHandler, injected by Fx.
type PurchaseHandlerParams struct {
	fx.In

	PurchaseUC usecase.PurchaseUsecase
}

// PurchaseHandler serves purchases and invoices.
type PurchaseHandler struct {
	purchaseUC usecase.PurchaseUsecase
}

// NewPurchaseHandler is the constructor for PurchaseHandler
func NewPurchaseHandler(params PurchaseHandlerParams) *PurchaseHandler {
	return &PurchaseHandler{purchaseUC: params.PurchaseUC}
}

// PurchaseRequest represents the request body for buying courses
type PurchaseRequest struct {
	CourseIDs []int64 `json:"course_ids" validate:"required,min=1,dive,gt=0"`
}

// Purchase buys every listed course for the caller, or none of them.
func (h *PurchaseHandler) Purchase(c echo.Context) error {
	userID, ok := deliverycontext.Caller(c)
	if !ok {
		return domainerrors.ErrTokenMissing
	}

	var req PurchaseRequest
	if err := c.Bind(&req); err != nil {
		return response.HandleAppError(c,
			domainerrors.ErrCourseIDsRequired.WithDetails("course_ids must be a JSON array of integers"))
	}
	if err := c.Validate(&req); err != nil {
		_, fields, ok := validator.AsAppError(err)
		if !ok {
			return err
		}

		return response.BadRequestWithDetails(c,
			domainerrors.ErrCourseIDsRequired.ErrorCode(), domainerrors.ErrCourseIDsRequired.Message(), fields)
	}

	courseIDs := make([]uint, 0, len(req.CourseIDs))
	for _, id := range req.CourseIDs {
		courseIDs = append(courseIDs, uint(id))
	}

	output, err := h.purchaseUC.Purchase(c.Request().Context(), &usecase.PurchaseInput{
		UserID:    userID,
		CourseIDs: courseIDs,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, response.NewPurchaseResultView(output))
}

// ListPurchases returns the caller's purchases. ?expand=true embeds courses.
func (h *PurchaseHandler) ListPurchases(c echo.Context) error {
	userID, ok := deliverycontext.Caller(c)
	if !ok {
		return domainerrors.ErrTokenMissing
	}

	purchases, err := h.purchaseUC.ListPurchases(c.Request().Context(), userID, queryBool(c, "expand"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"count":     len(purchases),
		"purchases": response.NewPurchaseViews(purchases),
	})
}

// GetInvoice is public: the invoice number is the capability.
func (h *PurchaseHandler) GetInvoice(c echo.Context) error {
	invoice, err := h.purchaseUC.GetInvoice(c.Request().Context(), c.Param("invoice_number"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, response.NewInvoiceView(invoice))
}

// GetInvoiceQR returns a PNG QR code linking to the invoice.
func (h *PurchaseHandler) GetInvoiceQR(c echo.Context) error {
	png, err := h.purchaseUC.GetInvoiceQR(c.Request().Context(), c.Param("invoice_number"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}
