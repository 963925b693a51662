package entity

import (
	"time"

	"github.com/google/uuid"
)

// Image is a stored picture: its public URL and the key needed to delete it.
type Image struct {
	URL      string `json:"url"`
	PublicID string `json:"publicId"`
}

// GeoPoint is a WGS84 coordinate.
type GeoPoint struct {
	Latitude  float64
	Longitude float64
}

// Property is a listing published by a seller.
type Property struct {
	ID          uuid.UUID
	SellerID    uuid.UUID
	Title       string
	Category    string
	Description string
	Price       float64
	Features    []string
	Address     string
	Country     string
	State       string
	City        string
	Zip         string
	Location    *GeoPoint
	Images      []Image
	Views       int64
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// PropertyFilter drives the public search.
type PropertyFilter struct {
	Category   string
	Search     string
	MinPrice   *float64
	MaxPrice   *float64
	Pagination Pagination
}

// NearbyProperty pairs a listing with its distance from the query point.
type NearbyProperty struct {
	Property   *Property
	DistanceKm float64
}

// SavedProperty is a bookmark of a property by an account.
type SavedProperty struct {
	AccountID  uuid.UUID
	PropertyID uuid.UUID
	CreatedAt  time.Time
}
