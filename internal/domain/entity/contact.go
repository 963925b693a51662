package entity

import (
	"time"

	"github.com/google/uuid"
)

// Contact is a message left through the public contact form.
type Contact struct {
	ID        uuid.UUID
	Name      string
	Email     string
	Phone     string
	Country   string
	Message   string
	IsRead    bool
	CreatedAt time.Time
}

// ContactFilter narrows the inbox.
type ContactFilter struct {
	UnreadOnly bool
	Pagination Pagination
}
