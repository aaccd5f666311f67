package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"academy/internal/delivery/api/response"
	"academy/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const healthTimeout = 2 * time.Second

// HealthChecker reports whether a backing store is reachable.
type HealthChecker interface {
	Ping(ctx context.Context) error
}

// IndexHandlerParams holds dependencies for IndexHandler, injected by Fx.
type IndexHandlerParams struct {
	fx.In

	CatalogUC usecase.CatalogUsecase
	DB        HealthChecker
	Logger    *slog.Logger
}

// IndexHandler serves the landing and health routes.
type IndexHandler struct {
	catalogUC usecase.CatalogUsecase
	db        HealthChecker
	logger    *slog.Logger
}

// NewIndexHandler is the constructor for IndexHandler
func NewIndexHandler(params IndexHandlerParams) *IndexHandler {
	return &IndexHandler{
		catalogUC: params.CatalogUC,
		db:        params.DB,
		logger:    params.Logger,
	}
}

// Index greets the client.
func (h *IndexHandler) Index(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"msg": "Welcome!"})
}

// Favicon has no icon to serve.
func (h *IndexHandler) Favicon(c echo.Context) error {
	return c.NoContent(http.StatusNoContent)
}

// Health reports 503 when the database is unreachable.
func (h *IndexHandler) Health(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), healthTimeout)
	defer cancel()

	if err := h.db.Ping(ctx); err != nil {
		h.logger.Warn("Health check failed", slog.Any("error", err))

		return response.Success(c, http.StatusServiceUnavailable, map[string]string{"status": "unavailable"})
	}

	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"})
}

// HomeData returns the landing page courses and blogs.
func (h *IndexHandler) HomeData(c echo.Context) error {
	home, err := h.catalogUC.HomeData(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"courses": response.NewCourseViews(home.Courses),
		"blogs":   response.NewBlogViews(home.Blogs),
	})
}
