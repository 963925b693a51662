package storage

import (
	"bytes"
	"context"
	"image/color"
	"io"
	"log/slog"
	"strings"
	"testing"

	domainerrors "estate/internal/domain/errors"
	"estate/internal/domain/service"

	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocloud.dev/blob/memblob"
)

func newTestStore(t *testing.T, maxWidth int) *blobImageStore {
	t.Helper()
	bucket := memblob.OpenBucket(nil)
	t.Cleanup(func() { _ = bucket.Close() })

	return newBlobImageStore(bucket, "https://cdn.estate.example/", maxWidth, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func encodedImage(t *testing.T, width, height int, format imaging.Format) []byte {
	t.Helper()
	img := imaging.New(width, height, color.NRGBA{R: 200, A: 255})

	var buf bytes.Buffer
	require.NoError(t, imaging.Encode(&buf, img, format))

	return buf.Bytes()
}

func pngOf(t *testing.T, width, height int) []byte {
	return encodedImage(t, width, height, imaging.PNG)
}

func TestBlobImageStore_UploadAndDelete(t *testing.T) {
	store := newTestStore(t, 0)
	ctx := context.Background()

	img, err := store.Upload(ctx, service.ImageUpload{Filename: "front.png", ContentType: "image/png", Data: pngOf(t, 4, 4)}, "properties")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(img.PublicID, "properties/"))
	assert.True(t, strings.HasSuffix(img.PublicID, ".png"))
	assert.Equal(t, "https://cdn.estate.example/"+img.PublicID, img.URL)

	exists, err := store.bucket.Exists(ctx, img.PublicID)
	require.NoError(t, err)
	assert.True(t, exists)

	require.NoError(t, store.Delete(ctx, img.PublicID))
	// deleting twice is not an error
	require.NoError(t, store.Delete(ctx, img.PublicID))
}

func TestBlobImageStore_DownscalesWideImages(t *testing.T) {
	store := newTestStore(t, 16)
	ctx := context.Background()

	img, err := store.Upload(ctx, service.ImageUpload{ContentType: "image/png", Data: pngOf(t, 64, 32)}, "users")
	require.NoError(t, err)

	stored, err := store.bucket.ReadAll(ctx, img.PublicID)
	require.NoError(t, err)

	// PNG signature
	require.True(t, bytes.HasPrefix(stored, []byte("\x89PNG")))
	decoded, err := imaging.Decode(bytes.NewReader(stored))
	require.NoError(t, err)
	assert.Equal(t, 16, decoded.Bounds().Dx())
	assert.Equal(t, 8, decoded.Bounds().Dy())
}

func TestBlobImageStore_DownscalesJPEGAsJPEG(t *testing.T) {
	store := newTestStore(t, 20)
	ctx := context.Background()

	img, err := store.Upload(ctx, service.ImageUpload{ContentType: "image/jpeg", Data: encodedImage(t, 80, 40, imaging.JPEG)}, "properties")
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(img.PublicID, ".jpg"))

	stored, err := store.bucket.ReadAll(ctx, img.PublicID)
	require.NoError(t, err)
	// JPEG SOI marker
	require.True(t, bytes.HasPrefix(stored, []byte{0xFF, 0xD8}))

	decoded, err := imaging.Decode(bytes.NewReader(stored))
	require.NoError(t, err)
	assert.Equal(t, 20, decoded.Bounds().Dx())
	assert.Equal(t, 10, decoded.Bounds().Dy())
}

func TestBlobImageStore_NarrowImagesStoredUntouched(t *testing.T) {
	store := newTestStore(t, 64)
	ctx := context.Background()
	original := encodedImage(t, 32, 32, imaging.JPEG)

	img, err := store.Upload(ctx, service.ImageUpload{ContentType: "image/jpeg", Data: original}, "users")
	require.NoError(t, err)

	stored, err := store.bucket.ReadAll(ctx, img.PublicID)
	require.NoError(t, err)
	assert.Equal(t, original, stored)
}

func TestBlobImageStore_RejectsInvalidUploads(t *testing.T) {
	store := newTestStore(t, 16)
	ctx := context.Background()

	_, err := store.Upload(ctx, service.ImageUpload{ContentType: "application/pdf", Data: []byte("%PDF")}, "users")
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	_, err = store.Upload(ctx, service.ImageUpload{ContentType: "image/png"}, "users")
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	_, err = store.Upload(ctx, service.ImageUpload{ContentType: "image/png", Data: []byte("not a png")}, "users")
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}
