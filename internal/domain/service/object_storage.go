package service

import (
	"context"
	"io"

	"academy/internal/errors"
)

// ErrObjectNotFound is returned when a stored object does not exist.
var ErrObjectNotFound = errors.New("object not found")

// ObjectInfo describes a stored object opened for reading.
type ObjectInfo struct {
	ContentType string
	Size        int64
}

// ObjectStorage stores uploaded files by key.
type ObjectStorage interface {
	Put(ctx context.Context, key string, r io.Reader, contentType string) error
	Open(ctx context.Context, key string) (io.ReadCloser, *ObjectInfo, error)
	// Delete removes the object. Missing objects are not an error.
	Delete(ctx context.Context, key string) error
}
