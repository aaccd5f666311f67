package storage

import (
	"context"
	"io"
	"strings"
	"testing"

	"academy/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocloud.dev/blob/memblob"
)

func newTestStorage(t *testing.T) service.ObjectStorage {
	t.Helper()

	bucket := memblob.OpenBucket(nil)
	t.Cleanup(func() { _ = bucket.Close() })

	return NewBlobStorage(bucket)
}

func TestBlobStorage_PutOpen(t *testing.T) {
	ctx := context.Background()
	store := newTestStorage(t)

	err := store.Put(ctx, "profile_pictures/1_abc.png", strings.NewReader("png-bytes"), "image/png")
	require.NoError(t, err)

	rc, info, err := store.Open(ctx, "profile_pictures/1_abc.png")
	require.NoError(t, err)
	defer rc.Close()

	body, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, "png-bytes", string(body))
	assert.Equal(t, "image/png", info.ContentType)
	assert.Equal(t, int64(len("png-bytes")), info.Size)
}

func TestBlobStorage_OpenMissing(t *testing.T) {
	store := newTestStorage(t)

	rc, info, err := store.Open(context.Background(), "profile_pictures/missing.png")
	assert.ErrorIs(t, err, service.ErrObjectNotFound)
	assert.Nil(t, rc)
	assert.Nil(t, info)
}

func TestBlobStorage_Delete(t *testing.T) {
	ctx := context.Background()
	store := newTestStorage(t)

	require.NoError(t, store.Put(ctx, "k", strings.NewReader("v"), "text/plain"))
	require.NoError(t, store.Delete(ctx, "k"))

	_, _, err := store.Open(ctx, "k")
	assert.ErrorIs(t, err, service.ErrObjectNotFound)

	// deleting again is not an error
	assert.NoError(t, store.Delete(ctx, "k"))
}
