package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// News is an editorial article. Content is an opaque rich-text JSON document.
type News struct {
	ID               uuid.UUID
	Title            string
	Thumbnail        Image
	Location         string
	Category         string
	Content          json.RawMessage
	IsPublished      bool
	FirstPublishedAt *time.Time
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// Publish flips the article to published, stamping the first publication once.
func (n *News) Publish(now time.Time) {
	n.IsPublished = true
	if n.FirstPublishedAt == nil {
		n.FirstPublishedAt = &now
	}
}

// NewsFilter narrows news listings.
type NewsFilter struct {
	Category      string
	PublishedOnly bool
	Pagination    Pagination
}
