// Package storage keeps uploaded images in a gocloud blob bucket.
package storage

import (
	"bytes"
	"context"
	"log/slog"
	"net/url"
	"path"
	"strings"

	"estate/config"
	"estate/internal/domain/entity"
	domainerrors "estate/internal/domain/errors"
	"estate/internal/domain/service"
	"estate/internal/errors"

	"github.com/disintegration/imaging"
	"github.com/segmentio/ksuid"
	"go.uber.org/fx"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/gcsblob"
	_ "gocloud.dev/blob/memblob"
	_ "gocloud.dev/blob/s3blob"
	"gocloud.dev/gcerrors"
)

const (
	defaultBucketURL = "mem://"
	jpegQuality      = 85
)

// resizableFormats are re-encoded after downscaling. Other types are stored untouched.
var resizableFormats = map[string]imaging.Format{
	"image/jpeg": imaging.JPEG,
	"image/png":  imaging.PNG,
}

var allowedContentTypes = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
	"image/gif":  ".gif",
}

// blobImageStore writes images under <folder>/<ksuid><ext> and serves them from publicBaseURL.
type blobImageStore struct {
	bucket        *blob.Bucket
	publicBaseURL string
	maxWidth      int
	logger        *slog.Logger
}

// Params defines the dependencies of the image store.
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// NewImageStore opens the configured bucket and closes it on shutdown.
func NewImageStore(params Params) (service.ImageStore, error) {
	storageCfg := params.Config.Storage
	if storageCfg == nil {
		storageCfg = &config.StorageConfig{}
	}

	bucketURL := storageCfg.BucketURL
	if bucketURL == "" {
		params.Logger.Warn("Storage bucket not configured, images are kept in memory")
		bucketURL = defaultBucketURL
	}

	bucket, err := blob.OpenBucket(context.Background(), bucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open bucket %s", bucketURL)
	}

	params.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return errors.WithStack(bucket.Close())
		},
	})

	return newBlobImageStore(bucket, storageCfg.PublicBaseURL, storageCfg.MaxImageWidth, params.Logger), nil
}

func newBlobImageStore(bucket *blob.Bucket, publicBaseURL string, maxWidth int, logger *slog.Logger) *blobImageStore {
	return &blobImageStore{
		bucket:        bucket,
		publicBaseURL: strings.TrimRight(publicBaseURL, "/"),
		maxWidth:      maxWidth,
		logger:        logger,
	}
}

func (s *blobImageStore) Upload(ctx context.Context, upload service.ImageUpload, folder string) (entity.Image, error) {
	contentType := strings.ToLower(strings.TrimSpace(upload.ContentType))
	ext, ok := allowedContentTypes[contentType]
	if !ok {
		return entity.Image{}, domainerrors.ErrValidationFailed.WithDetails("unsupported image type: " + upload.ContentType)
	}
	if len(upload.Data) == 0 {
		return entity.Image{}, domainerrors.ErrValidationFailed.WithDetails("image is empty")
	}

	data, err := s.downscale(upload.Data, contentType)
	if err != nil {
		return entity.Image{}, domainerrors.ErrValidationFailed.WithDetails("image could not be decoded")
	}

	key := path.Join(folder, ksuid.New().String()+ext)
	opts := &blob.WriterOptions{
		ContentType: contentType,
		Metadata:    map[string]string{"filename": path.Base(upload.Filename)},
	}
	if err := s.bucket.WriteAll(ctx, key, data, opts); err != nil {
		return entity.Image{}, domainerrors.NewUpstreamError("image storage", err)
	}

	return entity.Image{URL: s.publicURL(key), PublicID: key}, nil
}

func (s *blobImageStore) Delete(ctx context.Context, publicID string) error {
	if publicID == "" {
		return nil
	}

	if err := s.bucket.Delete(ctx, publicID); err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return nil
		}

		return domainerrors.NewUpstreamError("image storage", err)
	}

	return nil
}

// downscale shrinks JPEG and PNG images wider than maxWidth.
func (s *blobImageStore) downscale(data []byte, contentType string) ([]byte, error) {
	format, ok := resizableFormats[contentType]
	if s.maxWidth <= 0 || !ok {
		return data, nil
	}

	img, err := imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(true))
	if err != nil {
		return nil, errors.WithStack(err)
	}
	if img.Bounds().Dx() <= s.maxWidth {
		return data, nil
	}

	resized := imaging.Resize(img, s.maxWidth, 0, imaging.Lanczos)

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, resized, format, imaging.JPEGQuality(jpegQuality)); err != nil {
		return nil, errors.Wrap(err, "failed to encode image")
	}

	return buf.Bytes(), nil
}

func (s *blobImageStore) publicURL(key string) string {
	if s.publicBaseURL == "" {
		return "/" + key
	}

	escaped := make([]string, 0, strings.Count(key, "/")+1)
	for _, part := range strings.Split(key, "/") {
		escaped = append(escaped, url.PathEscape(part))
	}

	return s.publicBaseURL + "/" + strings.Join(escaped, "/")
}
