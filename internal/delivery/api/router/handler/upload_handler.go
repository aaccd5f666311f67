package handler

import (
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"academy/internal/delivery/api/response"
	domainerrors "academy/internal/domain/errors"
	"academy/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const uploadField = "file"

// UploadHandlerParams holds dependencies for UploadHandler, injected by Fx.
type UploadHandlerParams struct {
	fx.In

	UploadUC usecase.UploadUsecase
	Logger   *slog.Logger
}

// UploadHandler serves profile pictures.
type UploadHandler struct {
	uploadUC usecase.UploadUsecase
	logger   *slog.Logger
}

// NewUploadHandler is the constructor for UploadHandler
func NewUploadHandler(params UploadHandlerParams) *UploadHandler {
	return &UploadHandler{
		uploadUC: params.UploadUC,
		logger:   params.Logger,
	}
}

// UploadProfilePicture replaces the user's picture with the multipart "file".
func (h *UploadHandler) UploadProfilePicture(c echo.Context) error {
	userID, err := pathID(c, "user_id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	header, err := c.FormFile(uploadField)
	if err != nil || header.Filename == "" {
		return response.HandleAppError(c, domainerrors.ErrNoFileProvided)
	}

	file, err := header.Open()
	if err != nil {
		return response.HandleAppError(c, domainerrors.ErrNoFileProvided)
	}
	defer file.Close()

	user, err := h.uploadUC.UploadProfilePicture(c.Request().Context(), &usecase.UploadInput{
		UserID:   userID,
		Filename: header.Filename,
		Size:     header.Size,
		Content:  file,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"message":         "Profile picture uploaded successfully",
		"profile_picture": user.ProfilePicture,
		"user":            response.NewUserView(user),
	})
}

// DeleteProfilePicture removes the user's picture.
func (h *UploadHandler) DeleteProfilePicture(c echo.Context) error {
	userID, err := pathID(c, "user_id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	user, err := h.uploadUC.DeleteProfilePicture(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"message": "Profile picture deleted successfully",
		"user":    response.NewUserView(user),
	})
}

// ServeProfilePicture streams a stored picture.
func (h *UploadHandler) ServeProfilePicture(c echo.Context) error {
	body, info, err := h.uploadUC.OpenProfilePicture(c.Request().Context(), c.Param("name"))
	if err != nil {
		return response.HandleAppError(c, err)
	}
	defer body.Close()

	if info.Size > 0 {
		c.Response().Header().Set(echo.HeaderContentLength, strconv.FormatInt(info.Size, 10))
	}
	contentType := info.ContentType
	if contentType == "" {
		contentType = echo.MIMEOctetStream
	}
	c.Response().Header().Set(echo.HeaderContentType, contentType)
	c.Response().WriteHeader(http.StatusOK)

	if _, err := io.Copy(c.Response(), body); err != nil {
		h.logger.Warn("Failed to stream profile picture",
			slog.String("name", c.Param("name")),
			slog.Any("error", err))
	}

	return nil
}
