// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"estate/internal/domain/entity"

	"github.com/google/uuid"
)

// AccountRepository persists accounts. Lookups return domainerrors.ErrAccountNotFound
// when no row matches and Create/Update return ErrAccountAlreadyExists on a duplicate email.
type AccountRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Account, error)

	// FindByEmail loads the account with its seller profile, if any.
	FindByEmail(ctx context.Context, email string) (*entity.Account, error)

	Create(ctx context.Context, account *entity.Account) error

	// Update saves the account columns only, never the seller profile.
	Update(ctx context.Context, account *entity.Account) error

	Delete(ctx context.Context, id uuid.UUID) error

	List(ctx context.Context, filter entity.AccountFilter) (*entity.Page[*entity.Account], error)
}
