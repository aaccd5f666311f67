package handler

import (
	"context"
	"log/slog"
	"net/http"
	"testing"

	"academy/internal/domain/entity"
	"academy/internal/errors"
	mockusecase "academy/internal/mocks/usecase"
	"academy/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type stubHealthChecker struct{ err error }

func (s stubHealthChecker) Ping(context.Context) error { return s.err }

func newIndexTestEcho(t *testing.T, db HealthChecker) (*echo.Echo, *mockusecase.MockCatalogUsecase) {
	catalogUC := mockusecase.NewMockCatalogUsecase(t)
	h := NewIndexHandler(IndexHandlerParams{CatalogUC: catalogUC, DB: db, Logger: slog.New(slog.DiscardHandler)})

	e := newTestEcho()
	e.GET("/", h.Index)
	e.GET("/favicon.ico", h.Favicon)
	e.GET("/health", h.Health)
	e.GET("/home-data", h.HomeData)

	return e, catalogUC
}

func TestIndexHandler(t *testing.T) {
	e, _ := newIndexTestEcho(t, stubHealthChecker{})

	rec := doJSON(e, http.MethodGet, "/", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Welcome!", decodeMap(t, rec)["msg"])

	rec = doJSON(e, http.MethodGet, "/favicon.ico", "")
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = doJSON(e, http.MethodGet, "/health", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", decodeMap(t, rec)["status"])
}

func TestIndexHandler_HealthDatabaseDown(t *testing.T) {
	e, _ := newIndexTestEcho(t, stubHealthChecker{err: errors.New("connection refused")})

	rec := doJSON(e, http.MethodGet, "/health", "")

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Equal(t, "unavailable", decodeMap(t, rec)["status"])
}

func TestIndexHandler_HomeData(t *testing.T) {
	e, catalogUC := newIndexTestEcho(t, stubHealthChecker{})

	catalogUC.EXPECT().HomeData(mock.Anything).Return(&usecase.HomeData{
		Courses: []*entity.Course{{ID: 1, Name: "Go"}},
		Blogs:   []*entity.Blog{{ID: 1, Title: "Channels"}},
	}, nil)

	rec := doJSON(e, http.MethodGet, "/home-data", "")

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeMap(t, rec)
	assert.Len(t, body["courses"], 1)
	assert.Len(t, body["blogs"], 1)
}
