package handler

import (
	"log/slog"
	"net/http"

	"estate/internal/delivery/api/response"
	"estate/internal/domain/entity"
	domainerrors "estate/internal/domain/errors"
	"estate/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ContactHandlerParams holds dependencies for ContactHandler, injected by Fx.
type ContactHandlerParams struct {
	fx.In

	ContactUC usecase.ContactUsecase
	Logger    *slog.Logger
}

// ContactHandler serves the public contact form and its inbox.
type ContactHandler struct {
	contactUC usecase.ContactUsecase
	logger    *slog.Logger
}

// NewContactHandler is the constructor for ContactHandler
func NewContactHandler(params ContactHandlerParams) *ContactHandler {
	return &ContactHandler{
		contactUC: params.ContactUC,
		logger:    params.Logger,
	}
}

// CreateContactRequest is a message from the public contact form.
type CreateContactRequest struct {
	Name    string `json:"name" validate:"required,max=120"`
	Email   string `json:"email" validate:"required,email"`
	Phone   string `json:"phone" validate:"omitempty,max=32"`
	Country string `json:"country" validate:"omitempty,max=64"`
	Message string `json:"message" validate:"required,max=5000"`
}

// UpdateReadStatusRequest marks a message read or unread.
type UpdateReadStatusRequest struct {
	IsRead *bool `json:"isRead" validate:"required"`
}

// Create stores a contact message.
func (h *ContactHandler) Create(c echo.Context) error {
	var req CreateContactRequest
	if err := bindJSON(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	contact, err := h.contactUC.Create(c.Request().Context(), &usecase.CreateContactInput{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Country: req.Country,
		Message: req.Message,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, toContactResponse(contact))
}

// List returns one page of the inbox.
func (h *ContactHandler) List(c echo.Context) error {
	var filter entity.ContactFilter

	err := echo.QueryParamsBinder(c).
		Bool("unreadOnly", &filter.UnreadOnly).
		Int("page", &filter.Pagination.Page).
		Int("limit", &filter.Pagination.Limit).
		BindError()
	if err != nil {
		return response.HandleAppError(c, domainerrors.ErrValidationFailed.WithDetails(err.Error()))
	}

	page, err := h.contactUC.List(c.Request().Context(), filter)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	contacts := make([]*ContactResponse, 0, len(page.Items))
	for _, contact := range page.Items {
		contacts = append(contacts, toContactResponse(contact))
	}

	return response.Paginated(c, contacts, page.Page, page.Limit, page.Total)
}

// Get returns one message.
func (h *ContactHandler) Get(c echo.Context) error {
	contactID, err := paramUUID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	contact, err := h.contactUC.Get(c.Request().Context(), contactID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toContactResponse(contact))
}

// UpdateReadStatus marks a message read or unread.
func (h *ContactHandler) UpdateReadStatus(c echo.Context) error {
	contactID, err := paramUUID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req UpdateReadStatusRequest
	if err := bindJSON(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	contact, err := h.contactUC.UpdateReadStatus(c.Request().Context(), contactID, *req.IsRead)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toContactResponse(contact))
}
