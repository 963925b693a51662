package handler

import (
	"log/slog"
	"net/http"

	"estate/internal/delivery/api/response"
	"estate/internal/domain/entity"
	"estate/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ProfileHandlerParams holds dependencies for ProfileHandler, injected by Fx.
type ProfileHandlerParams struct {
	fx.In

	ProfileUC usecase.ProfileUsecase
	Logger    *slog.Logger
}

// ProfileHandler lets the caller read and edit their own account.
type ProfileHandler struct {
	profileUC usecase.ProfileUsecase
	logger    *slog.Logger
}

// NewProfileHandler is the constructor for ProfileHandler
func NewProfileHandler(params ProfileHandlerParams) *ProfileHandler {
	return &ProfileHandler{
		profileUC: params.ProfileUC,
		logger:    params.Logger,
	}
}

// UpdateProfileRequest is a partial update; absent fields are left untouched.
type UpdateProfileRequest struct {
	Name             *string `json:"name" validate:"omitempty,min=1,max=120"`
	Language         *string `json:"language" validate:"omitempty,max=16"`
	CompanyName      *string `json:"companyName" validate:"omitempty,min=1,max=200"`
	CompanyWebsite   *string `json:"companyWebsite" validate:"omitempty,url"`
	Phone            *string `json:"phone" validate:"omitempty,max=32"`
	Address          *string `json:"address"`
	Country          *string `json:"country"`
	State            *string `json:"state"`
	City             *string `json:"city"`
	Zip              *string `json:"zip" validate:"omitempty,max=16"`
	SubscriptionTier *string `json:"subscriptionTier" validate:"omitempty,tier"`
	Document         *string `json:"document" validate:"omitempty,max=2048"`
}

func (r *UpdateProfileRequest) bindForm(form formValues) error {
	r.Name = form.optText("name")
	r.Language = form.optText("language")
	r.CompanyName = form.optText("companyName")
	r.CompanyWebsite = form.optText("companyWebsite")
	r.Phone = form.optText("phone")
	r.Address = form.optText("address")
	r.Country = form.optText("country")
	r.State = form.optText("state")
	r.City = form.optText("city")
	r.Zip = form.optText("zip")
	r.SubscriptionTier = form.optText("subscriptionTier")
	r.Document = form.optText("document")

	return nil
}

// sellerInput is nil when no seller field was submitted.
func (r *UpdateProfileRequest) sellerInput() *usecase.UpdateSellerInput {
	seller := &usecase.UpdateSellerInput{
		CompanyName:    r.CompanyName,
		CompanyWebsite: r.CompanyWebsite,
		Phone:          r.Phone,
		Address:        r.Address,
		Country:        r.Country,
		State:          r.State,
		City:           r.City,
		Zip:            r.Zip,
		Document:       r.Document,
	}
	if r.SubscriptionTier != nil {
		tier := entity.SubscriptionTier(*r.SubscriptionTier)
		seller.SubscriptionTier = &tier
	}

	if *seller == (usecase.UpdateSellerInput{}) {
		return nil
	}

	return seller
}

// GetProfile returns the caller's account.
func (h *ProfileHandler) GetProfile(c echo.Context) error {
	claims, err := claimsOf(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	account, err := h.profileUC.GetProfile(c.Request().Context(), claims.AccountID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toAccountResponse(account))
}

// UpdateProfile edits the caller's account and seller profile.
func (h *ProfileHandler) UpdateProfile(c echo.Context) error {
	claims, err := claimsOf(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req UpdateProfileRequest
	if err := bindRequest(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	image, err := formImage(c, "image")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	input := &usecase.UpdateProfileInput{
		Name:     req.Name,
		Language: req.Language,
		Image:    image,
		Seller:   req.sellerInput(),
	}

	account, err := h.profileUC.UpdateProfile(c.Request().Context(), claims.AccountID, input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toAccountResponse(account))
}
