package blob

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"testing/iotest"

	"gocart-be/internal/apperr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocloud.dev/blob/memblob"
)

func TestStorage_Upload(t *testing.T) {
	ctx := context.Background()

	bucket := memblob.OpenBucket(nil)
	defer bucket.Close()
	storage := NewStorage(bucket, "https://cdn.example.com/")

	url, err := storage.Upload(ctx, "st-1/logo.png", "image/png", strings.NewReader("png-bytes"))
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/st-1/logo.png", url)

	r, err := bucket.NewReader(ctx, "st-1/logo.png", nil)
	require.NoError(t, err)
	defer r.Close()

	data, err := io.ReadAll(r)
	require.NoError(t, err)
	assert.Equal(t, "png-bytes", string(data))
	assert.Equal(t, "image/png", r.ContentType())
}

func TestStorage_Upload_ReaderFailure(t *testing.T) {
	ctx := context.Background()

	bucket := memblob.OpenBucket(nil)
	defer bucket.Close()
	storage := NewStorage(bucket, "https://cdn.example.com")

	_, err := storage.Upload(ctx, "broken", "application/octet-stream",
		iotest.ErrReader(errors.New("disk gone")))
	assert.ErrorIs(t, err, apperr.ErrUpstream)
}

func TestStorage_UploadAll_BestEffort(t *testing.T) {
	ctx := context.Background()

	bucket := memblob.OpenBucket(nil)
	defer bucket.Close()
	storage := NewStorage(bucket, "https://cdn.example.com")

	results := storage.UploadAll(ctx, []UploadItem{
		{Key: "a.png", ContentType: "image/png", Body: strings.NewReader("a")},
		{Key: "b.png", ContentType: "image/png", Body: iotest.ErrReader(errors.New("boom"))},
		{Key: "c.png", ContentType: "image/png", Body: strings.NewReader("c")},
	})

	require.Len(t, results, 3)
	assert.Equal(t, "https://cdn.example.com/a.png", results[0].URL)
	assert.Empty(t, results[0].Err)

	assert.Empty(t, results[1].URL)
	assert.NotEmpty(t, results[1].Err)

	// A failed item never blocks the ones after it.
	assert.Equal(t, "https://cdn.example.com/c.png", results[2].URL)
}
