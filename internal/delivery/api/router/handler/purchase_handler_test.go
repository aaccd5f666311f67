package handler

import (
	"net/http"
	"testing"
	"time"

	"academy/internal/domain/entity"
	domainerrors "academy/internal/domain/errors"
	mockusecase "academy/internal/mocks/usecase"
	"academy/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newPurchaseTestEcho(t *testing.T, userID uint) (*echo.Echo, *mockusecase.MockPurchaseUsecase) {
	purchaseUC := mockusecase.NewMockPurchaseUsecase(t)
	h := NewPurchaseHandler(PurchaseHandlerParams{PurchaseUC: purchaseUC})

	e := newTestEcho()
	e.POST("/purchase", h.Purchase, asUser(userID))
	e.GET("/purchases", h.ListPurchases, asUser(userID))
	e.GET("/invoices/:invoice_number", h.GetInvoice)
	e.GET("/invoices/:invoice_number/qr", h.GetInvoiceQR)

	return e, purchaseUC
}

func TestPurchaseHandler_Purchase(t *testing.T) {
	e, purchaseUC := newPurchaseTestEcho(t, 5)

	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	purchaseUC.EXPECT().
		Purchase(mock.Anything, &usecase.PurchaseInput{UserID: 5, CourseIDs: []uint{2, 3}}).
		Return(&usecase.PurchaseOutput{
			Purchases: []*entity.Purchase{
				{ID: 1, UserID: 5, CourseID: 2, PricePaid: decimal.RequireFromString("100"), DiscountApplied: decimal.RequireFromString("20"), FinalPrice: decimal.RequireFromString("80"), InvoiceNumber: "INV-0000000001", PurchaseDate: now},
				{ID: 2, UserID: 5, CourseID: 3, PricePaid: decimal.RequireFromString("10"), DiscountApplied: decimal.Zero, FinalPrice: decimal.RequireFromString("10"), InvoiceNumber: "INV-0000000002", PurchaseDate: now},
			},
			InvoiceNumbers: []string{"INV-0000000001", "INV-0000000002"},
			User:           &entity.User{ID: 5, Username: "ana", Email: "ana@example.com", Role: entity.RoleUser, OwnedCourses: []uint{2, 3}},
		}, nil)

	rec := doJSON(e, http.MethodPost, "/purchase", `{"course_ids":[2,3]}`)

	require.Equal(t, http.StatusCreated, rec.Code)
	body := decodeMap(t, rec)
	assert.Equal(t, "Purchase successful", body["message"])
	assert.Equal(t, []any{"INV-0000000001", "INV-0000000002"}, body["invoice_numbers"])
	purchases := body["purchases"].([]any)
	require.Len(t, purchases, 2)
	assert.InDelta(t, 80.0, purchases[0].(map[string]any)["final_price"], 0.001)
	user := body["user"].(map[string]any)
	assert.Equal(t, []any{2.0, 3.0}, user["owned_courses"])
	assert.NotContains(t, user, "password_hash")
}

func TestPurchaseHandler_Purchase_InvalidBody(t *testing.T) {
	tests := []struct {
		name        string
		body        string
		wantDetails string
	}{
		{name: "empty list", body: `{"course_ids":[]}`, wantDetails: "course_ids"},
		{name: "missing field", body: `{}`, wantDetails: "course_ids"},
		{name: "not a list", body: `{"course_ids":"abc"}`, wantDetails: "course_ids must be a JSON array of integers"},
		{name: "non-positive id", body: `{"course_ids":[1,0]}`, wantDetails: "course_ids[1]"},
		{name: "string id", body: `{"course_ids":["x"]}`, wantDetails: "course_ids must be a JSON array of integers"},
		{name: "malformed json", body: `{"course_ids":`, wantDetails: "course_ids must be a JSON array of integers"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, _ := newPurchaseTestEcho(t, 5)

			rec := doJSON(e, http.MethodPost, "/purchase", tt.body)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			body := decodeError(t, rec)
			assert.Equal(t, "INVALID_INPUT", body.Code)
			assert.Equal(t, "course_ids must be a non-empty list", body.Error)
			switch details := body.Details.(type) {
			case map[string]any:
				assert.Contains(t, details, tt.wantDetails)
			case string:
				assert.Equal(t, tt.wantDetails, details)
			default:
				t.Fatalf("unexpected details %#v", body.Details)
			}
		})
	}
}

func TestPurchaseHandler_Purchase_UsecaseErrors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantError  string
	}{
		{
			name:       "unknown course",
			err:        domainerrors.ErrCourseNotFound.WithMessage("Course with ID 99 not found"),
			wantStatus: http.StatusNotFound,
			wantError:  "Course with ID 99 not found",
		},
		{
			name:       "already owned",
			err:        domainerrors.ErrCourseAlreadyOwned.WithMessage("You already own course 2"),
			wantStatus: http.StatusConflict,
			wantError:  "You already own course 2",
		},
		{
			name:       "invoice numbers exhausted",
			err:        domainerrors.ErrInvoiceNumberExhausted,
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, purchaseUC := newPurchaseTestEcho(t, 5)
			purchaseUC.EXPECT().Purchase(mock.Anything, mock.Anything).Return(nil, tt.err)

			rec := doJSON(e, http.MethodPost, "/purchase", `{"course_ids":[2]}`)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantError != "" {
				assert.Equal(t, tt.wantError, decodeError(t, rec).Error)
			}
		})
	}
}

func TestPurchaseHandler_ListPurchases(t *testing.T) {
	e, purchaseUC := newPurchaseTestEcho(t, 5)

	purchaseUC.EXPECT().ListPurchases(mock.Anything, uint(5), true).
		Return([]*entity.Purchase{
			{ID: 1, UserID: 5, CourseID: 2, FinalPrice: decimal.RequireFromString("80"), InvoiceNumber: "INV-1", Course: &entity.Course{ID: 2, Name: "Go"}},
		}, nil)

	rec := doJSON(e, http.MethodGet, "/purchases?expand=true", "")

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeMap(t, rec)
	assert.Equal(t, 1.0, body["count"])
	purchase := body["purchases"].([]any)[0].(map[string]any)
	assert.Equal(t, "Go", purchase["course"].(map[string]any)["name"])
}

func TestPurchaseHandler_GetInvoice(t *testing.T) {
	e, purchaseUC := newPurchaseTestEcho(t, 0)

	purchaseUC.EXPECT().GetInvoice(mock.Anything, "INV-1").Return(&entity.Invoice{
		Purchase: &entity.Purchase{ID: 1, UserID: 5, CourseID: 2, InvoiceNumber: "INV-1"},
		User:     &entity.UserSnapshot{ID: 5, Username: "ana", Email: "ana@example.com"},
		Course:   &entity.Course{ID: 2, Name: "Go"},
	}, nil)
	purchaseUC.EXPECT().GetInvoice(mock.Anything, "INV-404").Return(nil, domainerrors.ErrInvoiceNotFound)

	rec := doJSON(e, http.MethodGet, "/invoices/INV-1", "")
	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeMap(t, rec)
	assert.Equal(t, "INV-1", body["invoice_number"])
	assert.Equal(t, "ana", body["user"].(map[string]any)["username"])

	rec = doJSON(e, http.MethodGet, "/invoices/INV-404", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "INVOICE_NOT_FOUND", decodeError(t, rec).Code)
}

func TestPurchaseHandler_GetInvoiceQR(t *testing.T) {
	e, purchaseUC := newPurchaseTestEcho(t, 0)

	png := []byte{0x89, 'P', 'N', 'G'}
	purchaseUC.EXPECT().GetInvoiceQR(mock.Anything, "INV-1").Return(png, nil)

	rec := doJSON(e, http.MethodGet, "/invoices/INV-1/qr", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))
	assert.Equal(t, png, rec.Body.Bytes())
}
