package impl

import (
	"context"
	"testing"

	"estate/internal/domain/entity"
	domainerrors "estate/internal/domain/errors"
	"estate/internal/domain/service"
	mockRepo "estate/internal/mocks/repository"
	mockSvc "estate/internal/mocks/service"
	"estate/internal/usecase"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type contactServiceFixtures struct {
	service     usecase.ContactUsecase
	contactRepo *mockRepo.MockContactRepository
	publisher   *mockSvc.MockEventPublisher
}

func createTestContactService(t *testing.T) contactServiceFixtures {
	fx := contactServiceFixtures{
		contactRepo: mockRepo.NewMockContactRepository(t),
		publisher:   mockSvc.NewMockEventPublisher(t),
	}
	fx.service = NewContactService(ContactServiceParams{
		ContactRepo: fx.contactRepo,
		Publisher:   fx.publisher,
		Clock:       clockwork.NewFakeClock(),
		Logger:      newDiscardLogger(),
	})

	return fx
}

func TestContactService_Create_EmitsEvent(t *testing.T) {
	fx := createTestContactService(t)

	ctx := context.Background()
	fx.contactRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Contact")).
		Run(func(_ context.Context, contact *entity.Contact) {
			contact.ID = uuid.New()
		}).
		Return(nil)
	fx.publisher.EXPECT().Publish(ctx, mock.AnythingOfType("*service.DomainEvent")).
		Run(func(_ context.Context, event *service.DomainEvent) {
			assert.Equal(t, entity.EventContactReceived, event.Type)
			assert.Equal(t, "lead@example.com", event.Attributes["email"])
		}).
		Return(nil)

	contact, err := fx.service.Create(ctx, &usecase.CreateContactInput{
		Name:    "Lead",
		Email:   " lead@example.com ",
		Message: "Is the flat still available?",
	})

	require.NoError(t, err)
	assert.Equal(t, "lead@example.com", contact.Email)
	assert.False(t, contact.IsRead)
}

func TestContactService_Create_InvalidEmail(t *testing.T) {
	fx := createTestContactService(t)

	for _, email := range []string{"not-an-email", "", "Ada <ada@example.com>", "ada@example.com, bob@example.com"} {
		_, err := fx.service.Create(context.Background(), &usecase.CreateContactInput{Name: "x", Email: email, Message: "hi"})
		assert.Equal(t, domainerrors.KindValidationFailed, domainerrors.KindOf(err), email)
	}
}

func TestContactService_UpdateReadStatus_ReturnsReloaded(t *testing.T) {
	fx := createTestContactService(t)

	ctx := context.Background()
	contactID := uuid.New()
	fx.contactRepo.EXPECT().UpdateReadStatus(ctx, contactID, true).Return(nil)
	fx.contactRepo.EXPECT().FindByID(ctx, contactID).Return(&entity.Contact{ID: contactID, IsRead: true}, nil)

	contact, err := fx.service.UpdateReadStatus(ctx, contactID, true)

	require.NoError(t, err)
	assert.True(t, contact.IsRead)
}

func TestContactService_UpdateReadStatus_Missing(t *testing.T) {
	fx := createTestContactService(t)

	ctx := context.Background()
	contactID := uuid.New()
	fx.contactRepo.EXPECT().UpdateReadStatus(ctx, contactID, false).Return(domainerrors.ErrContactNotFound)

	_, err := fx.service.UpdateReadStatus(ctx, contactID, false)

	assert.Equal(t, domainerrors.KindNotFound, domainerrors.KindOf(err))
}

func TestContactService_List_UnreadOnly(t *testing.T) {
	fx := createTestContactService(t)

	ctx := context.Background()
	expected := &entity.Page[*entity.Contact]{Page: 2, Limit: 10}
	fx.contactRepo.EXPECT().
		List(ctx, entity.ContactFilter{UnreadOnly: true, Pagination: entity.Pagination{Page: 2, Limit: 10}}).
		Return(expected, nil)

	page, err := fx.service.List(ctx, entity.ContactFilter{UnreadOnly: true, Pagination: entity.Pagination{Page: 2}})

	require.NoError(t, err)
	assert.Same(t, expected, page)
}
