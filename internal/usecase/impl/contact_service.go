package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "estate/internal/delivery/context"
	"estate/internal/domain/entity"
	domainerrors "estate/internal/domain/errors"
	"estate/internal/domain/repository"
	"estate/internal/domain/service"
	"estate/internal/errors"
	"estate/internal/usecase"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"go.uber.org/fx"
)

// addressRule accepts a bare address only, never a display-name form.
var addressRule = validator.New()

type contactService struct {
	contactRepo repository.ContactRepository
	events      *eventEmitter
	logger      *slog.Logger
}

// ContactServiceParams holds dependencies for ContactService, injected by Fx.
type ContactServiceParams struct {
	fx.In

	ContactRepo repository.ContactRepository
	Publisher   service.EventPublisher
	Clock       clockwork.Clock
	Logger      *slog.Logger
}

// NewContactService is the constructor for contactService.
func NewContactService(params ContactServiceParams) usecase.ContactUsecase {
	return &contactService{
		contactRepo: params.ContactRepo,
		events:      &eventEmitter{publisher: params.Publisher, clock: params.Clock, logger: params.Logger},
		logger:      params.Logger,
	}
}

func (srv *contactService) Create(ctx context.Context, input *usecase.CreateContactInput) (*entity.Contact, error) {
	email := strings.TrimSpace(input.Email)
	if err := addressRule.Var(email, "required,email"); err != nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("invalid email address")
	}

	contact := &entity.Contact{
		Name:    strings.TrimSpace(input.Name),
		Email:   email,
		Phone:   input.Phone,
		Country: input.Country,
		Message: input.Message,
	}

	if err := srv.contactRepo.Create(ctx, contact); err != nil {
		return nil, errors.Wrap(err, "failed to create contact message")
	}

	deliverycontext.GetLoggerOrDefault(ctx, srv.logger).Info("Contact message received", slog.Any("contactID", contact.ID))
	srv.events.emit(ctx, entity.EventContactReceived, contact.ID.String(), map[string]string{"email": contact.Email})

	return contact, nil
}

func (srv *contactService) List(ctx context.Context, filter entity.ContactFilter) (*entity.Page[*entity.Contact], error) {
	filter.Pagination = normalizePagination(filter.Pagination)

	page, err := srv.contactRepo.List(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list contact messages")
	}

	return page, nil
}

func (srv *contactService) Get(ctx context.Context, contactID uuid.UUID) (*entity.Contact, error) {
	contact, err := srv.contactRepo.FindByID(ctx, contactID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find contact message")
	}

	return contact, nil
}

func (srv *contactService) UpdateReadStatus(ctx context.Context, contactID uuid.UUID, isRead bool) (*entity.Contact, error) {
	if err := srv.contactRepo.UpdateReadStatus(ctx, contactID, isRead); err != nil {
		return nil, errors.Wrap(err, "failed to update contact message")
	}

	return srv.Get(ctx, contactID)
}
