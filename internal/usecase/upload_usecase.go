package usecase

import (
	"context"
	"io"

	"academy/internal/domain/entity"
	"academy/internal/domain/service"
)

// ProfilePicturePrefix is the public path under which profile pictures are served.
const ProfilePicturePrefix = "/static/uploads/profile_pictures/"

// UploadInput is a profile picture received from a client.
type UploadInput struct {
	UserID   uint
	Filename string
	Size     int64
	Content  io.Reader
}

// UploadUsecase manages profile pictures.
type UploadUsecase interface {
	UploadProfilePicture(ctx context.Context, input *UploadInput) (*entity.User, error)
	DeleteProfilePicture(ctx context.Context, userID uint) (*entity.User, error)

	// OpenProfilePicture streams a stored picture by file name.
	OpenProfilePicture(ctx context.Context, name string) (io.ReadCloser, *service.ObjectInfo, error)
}
