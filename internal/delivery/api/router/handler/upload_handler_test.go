package handler

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"academy/internal/domain/entity"
	domainerrors "academy/internal/domain/errors"
	"academy/internal/domain/service"
	mockusecase "academy/internal/mocks/usecase"
	"academy/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newUploadTestEcho(t *testing.T) (*echo.Echo, *mockusecase.MockUploadUsecase) {
	uploadUC := mockusecase.NewMockUploadUsecase(t)
	h := NewUploadHandler(UploadHandlerParams{UploadUC: uploadUC, Logger: slog.New(slog.DiscardHandler)})

	e := newTestEcho()
	e.POST("/upload/profile-picture/:user_id", h.UploadProfilePicture)
	e.DELETE("/upload/profile-picture/:user_id", h.DeleteProfilePicture)
	e.GET("/static/uploads/profile_pictures/:name", h.ServeProfilePicture)

	return e, uploadUC
}

func multipartRequest(t *testing.T, target, field, filename string, content []byte) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	if field != "" {
		part, err := w.CreateFormFile(field, filename)
		require.NoError(t, err)
		_, err = part.Write(content)
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, target, &buf)
	req.Header.Set(echo.HeaderContentType, w.FormDataContentType())

	return req
}

func TestUploadHandler_UploadProfilePicture(t *testing.T) {
	e, uploadUC := newUploadTestEcho(t)

	picture := usecase.ProfilePicturePrefix + "2_abc.png"
	uploadUC.EXPECT().
		UploadProfilePicture(mock.Anything, mock.MatchedBy(func(in *usecase.UploadInput) bool {
			return in.UserID == 2 && in.Filename == "me.png" && in.Size == 4
		})).
		RunAndReturn(func(_ context.Context, in *usecase.UploadInput) (*entity.User, error) {
			data, err := io.ReadAll(in.Content)
			require.NoError(t, err)
			assert.Equal(t, []byte("\x89PNG"), data)

			return &entity.User{ID: 2, Username: "ana", ProfilePicture: picture}, nil
		})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, multipartRequest(t, "/upload/profile-picture/2", "file", "me.png", []byte("\x89PNG")))

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeMap(t, rec)
	assert.Equal(t, picture, body["profile_picture"])
	assert.Equal(t, picture, body["user"].(map[string]any)["profile_picture"])
}

func TestUploadHandler_UploadProfilePicture_Errors(t *testing.T) {
	e, uploadUC := newUploadTestEcho(t)

	uploadUC.EXPECT().UploadProfilePicture(mock.Anything, mock.Anything).
		Return(nil, domainerrors.ErrFileTypeNotAllowed)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, multipartRequest(t, "/upload/profile-picture/2", "", "", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "NO_FILE_PROVIDED", decodeError(t, rec).Code)

	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, multipartRequest(t, "/upload/profile-picture/2", "file", "virus.exe", []byte("MZ")))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "FILE_TYPE_NOT_ALLOWED", decodeError(t, rec).Code)
}

func TestUploadHandler_DeleteProfilePicture(t *testing.T) {
	e, uploadUC := newUploadTestEcho(t)

	uploadUC.EXPECT().DeleteProfilePicture(mock.Anything, uint(2)).Return(&entity.User{ID: 2}, nil)
	uploadUC.EXPECT().DeleteProfilePicture(mock.Anything, uint(3)).Return(nil, domainerrors.ErrProfilePictureNotFound)

	rec := doJSON(e, http.MethodDelete, "/upload/profile-picture/2", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Nil(t, decodeMap(t, rec)["user"].(map[string]any)["profile_picture"])

	rec = doJSON(e, http.MethodDelete, "/upload/profile-picture/3", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestUploadHandler_ServeProfilePicture(t *testing.T) {
	e, uploadUC := newUploadTestEcho(t)

	uploadUC.EXPECT().OpenProfilePicture(mock.Anything, "2_abc.png").
		Return(io.NopCloser(bytes.NewReader([]byte("\x89PNG"))), &service.ObjectInfo{ContentType: "image/png", Size: 4}, nil)
	uploadUC.EXPECT().OpenProfilePicture(mock.Anything, "missing.png").
		Return(nil, nil, domainerrors.ErrNotFound.WithMessage("File not found"))

	rec := doJSON(e, http.MethodGet, "/static/uploads/profile_pictures/2_abc.png", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))
	assert.Equal(t, "\x89PNG", rec.Body.String())

	rec = doJSON(e, http.MethodGet, "/static/uploads/profile_pictures/missing.png", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "File not found", decodeError(t, rec).Error)
}
