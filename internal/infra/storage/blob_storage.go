// Package storage keeps uploaded files in a gocloud.dev blob bucket.
package storage

import (
	"context"
	"io"
	"log/slog"

	"academy/config"
	"academy/internal/domain/service"
	"academy/internal/errors"

	"go.uber.org/fx"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob" // file:// buckets
	_ "gocloud.dev/blob/memblob"  // mem:// buckets
	"gocloud.dev/gcerrors"
)

const defaultBucketURL = "mem://"

type blobStorage struct {
	bucket *blob.Bucket
}

// Params holds dependencies for the bucket constructor.
type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

// New opens the configured bucket and closes it on shutdown.
func New(params Params) (service.ObjectStorage, error) {
	bucketURL := defaultBucketURL
	if params.Config.Upload != nil && params.Config.Upload.BucketURL != "" {
		bucketURL = params.Config.Upload.BucketURL
	}

	bucket, err := blob.OpenBucket(context.Background(), bucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "open bucket %q", bucketURL)
	}

	if bucketURL == defaultBucketURL {
		params.Logger.Warn("Upload bucket not configured, files are kept in memory")
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return bucket.Close()
		},
	})

	return NewBlobStorage(bucket), nil
}

// NewBlobStorage wraps an open bucket.
func NewBlobStorage(bucket *blob.Bucket) service.ObjectStorage {
	return &blobStorage{bucket: bucket}
}

func (s *blobStorage) Put(ctx context.Context, key string, r io.Reader, contentType string) error {
	w, err := s.bucket.NewWriter(ctx, key, &blob.WriterOptions{ContentType: contentType})
	if err != nil {
		return errors.Wrapf(err, "open writer for %s", key)
	}

	if _, err := io.Copy(w, r); err != nil {
		_ = w.Close()

		return errors.Wrapf(err, "write %s", key)
	}

	if err := w.Close(); err != nil {
		return errors.Wrapf(err, "close writer for %s", key)
	}

	return nil
}

func (s *blobStorage) Open(ctx context.Context, key string) (io.ReadCloser, *service.ObjectInfo, error) {
	r, err := s.bucket.NewReader(ctx, key, nil)
	if err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return nil, nil, service.ErrObjectNotFound
		}

		return nil, nil, errors.Wrapf(err, "open %s", key)
	}

	return r, &service.ObjectInfo{
		ContentType: r.ContentType(),
		Size:        r.Size(),
	}, nil
}

func (s *blobStorage) Delete(ctx context.Context, key string) error {
	if err := s.bucket.Delete(ctx, key); err != nil && gcerrors.Code(err) != gcerrors.NotFound {
		return errors.Wrapf(err, "delete %s", key)
	}

	return nil
}
