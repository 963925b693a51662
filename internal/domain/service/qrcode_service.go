package service

import (
	"github.com/google/uuid"
)

// QRCodeService renders share codes for listings.
type QRCodeService interface {
	// GeneratePropertyQR returns a PNG pointing at the public page of the property.
	GeneratePropertyQR(propertyID uuid.UUID) ([]byte, error)

	// ParsePropertyLink extracts the property id from a scanned share link.
	ParsePropertyLink(link string) (uuid.UUID, error)
}
