package impl

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"mime"
	"path"
	"slices"
	"strings"

	"academy/config"
	deliverycontext "academy/internal/delivery/context"
	"academy/internal/domain/entity"
	domainerrors "academy/internal/domain/errors"
	"academy/internal/domain/repository"
	"academy/internal/domain/service"
	"academy/internal/errors"
	"academy/internal/usecase"
	"academy/internal/util"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// profilePictureDir is the object key prefix of profile pictures in the bucket.
const profilePictureDir = "profile_pictures/"

var errFileNotFound = domainerrors.ErrNotFound.WithMessage("File not found")

type uploadService struct {
	userRepo          repository.UserRepository
	storage           service.ObjectStorage
	maxBytes          int64
	allowedExtensions []string
	newName           func() string
	logger            *slog.Logger
}

// UploadServiceParams holds dependencies for UploadService, injected by Fx.
type UploadServiceParams struct {
	fx.In

	UserRepo repository.UserRepository
	Storage  service.ObjectStorage
	Config   *config.Config
	Logger   *slog.Logger
}

// NewUploadService is the constructor for uploadService.
func NewUploadService(params UploadServiceParams) usecase.UploadUsecase {
	srv := &uploadService{
		userRepo: params.UserRepo,
		storage:  params.Storage,
		newName:  func() string { return strings.ReplaceAll(uuid.NewString(), "-", "") },
		logger:   params.Logger,
	}
	if params.Config != nil && params.Config.Upload != nil {
		srv.maxBytes = params.Config.Upload.MaxBytes
		for _, ext := range params.Config.Upload.AllowedExtensions {
			srv.allowedExtensions = append(srv.allowedExtensions, strings.ToLower(strings.TrimPrefix(ext, ".")))
		}
	}

	return srv
}

func (srv *uploadService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.LoggerFrom(ctx, srv.logger)
}

// UploadProfilePicture stores a new picture and replaces the previous one.
func (srv *uploadService) UploadProfilePicture(ctx context.Context, input *usecase.UploadInput) (*entity.User, error) {
	if input == nil || input.Content == nil || input.Filename == "" {
		return nil, domainerrors.ErrNoFileProvided
	}
	if srv.maxBytes > 0 && input.Size > srv.maxBytes {
		return nil, domainerrors.ErrFileTooLarge.WithDetails(
			fmt.Sprintf("received %s, limit %s", util.FormatBytes(input.Size), util.FormatBytes(srv.maxBytes)))
	}

	ext := strings.ToLower(strings.TrimPrefix(path.Ext(input.Filename), "."))
	if !slices.Contains(srv.allowedExtensions, ext) {
		return nil, domainerrors.ErrFileTypeNotAllowed.WithDetails("allowed: " + strings.Join(srv.allowedExtensions, ", "))
	}

	user, err := srv.userRepo.FindByID(ctx, input.UserID)
	if err != nil {
		return nil, translateRepoError(err, "failed to find user")
	}

	name := fmt.Sprintf("%d_%s.%s", user.ID, srv.newName(), ext)
	content := input.Content
	if srv.maxBytes > 0 {
		content = io.LimitReader(content, srv.maxBytes)
	}
	if err := srv.storage.Put(ctx, profilePictureDir+name, content, mime.TypeByExtension("."+ext)); err != nil {
		return nil, errors.Wrap(err, "failed to store profile picture")
	}

	previous := user.ProfilePicture
	user.ProfilePicture = usecase.ProfilePicturePrefix + name
	if err := srv.userRepo.Update(ctx, user); err != nil {
		srv.removeObject(ctx, name)

		return nil, translateRepoError(err, "failed to update profile picture")
	}

	if old, ok := strings.CutPrefix(previous, usecase.ProfilePicturePrefix); ok && old != "" {
		srv.removeObject(ctx, old)
	}

	srv.log(ctx).Info("Profile picture uploaded",
		slog.Uint64("user_id", uint64(user.ID)),
		slog.String("object", name),
	)

	return user, nil
}

// DeleteProfilePicture removes the stored picture and clears the field.
func (srv *uploadService) DeleteProfilePicture(ctx context.Context, userID uint) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, translateRepoError(err, "failed to find user")
	}
	if user.ProfilePicture == "" {
		return nil, domainerrors.ErrProfilePictureNotFound
	}

	previous := user.ProfilePicture
	user.ProfilePicture = ""
	if err := srv.userRepo.Update(ctx, user); err != nil {
		return nil, translateRepoError(err, "failed to clear profile picture")
	}

	if old, ok := strings.CutPrefix(previous, usecase.ProfilePicturePrefix); ok && old != "" {
		srv.removeObject(ctx, old)
	}

	return user, nil
}

// OpenProfilePicture streams a picture. name must be a bare file name.
func (srv *uploadService) OpenProfilePicture(ctx context.Context, name string) (io.ReadCloser, *service.ObjectInfo, error) {
	if name == "" || name != path.Base(name) || strings.HasPrefix(name, ".") {
		return nil, nil, errFileNotFound
	}

	rc, info, err := srv.storage.Open(ctx, profilePictureDir+name)
	if errors.Is(err, service.ErrObjectNotFound) {
		return nil, nil, errFileNotFound
	}
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to open profile picture")
	}

	return rc, info, nil
}

// removeObject deletes a picture object, logging instead of failing.
func (srv *uploadService) removeObject(ctx context.Context, name string) {
	if err := srv.storage.Delete(ctx, profilePictureDir+name); err != nil {
		srv.log(ctx).Warn("Failed to delete profile picture object",
			slog.String("object", name),
			slog.Any("error", err),
		)
	}
}
