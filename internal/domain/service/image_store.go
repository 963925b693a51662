package service

import (
	"context"

	"estate/internal/domain/entity"
)

// ImageUpload is one file received from a client.
type ImageUpload struct {
	Filename    string
	ContentType string
	Data        []byte
}

// ImageStore keeps uploaded pictures and serves them from a public URL.
type ImageStore interface {
	// Upload stores the image under folder and returns its public URL and id.
	Upload(ctx context.Context, upload ImageUpload, folder string) (entity.Image, error)

	// Delete removes an image by the public id returned from Upload. Deleting a missing image is not an error.
	Delete(ctx context.Context, publicID string) error
}
