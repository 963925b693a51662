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

// AuthHandlerParams holds dependencies for AuthHandler, injected by Fx.
type AuthHandlerParams struct {
	fx.In

	AuthUC usecase.AuthUsecase
	Logger *slog.Logger
}

// AuthHandler serves registration, verification and session endpoints.
type AuthHandler struct {
	authUC usecase.AuthUsecase
	logger *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler
func NewAuthHandler(params AuthHandlerParams) *AuthHandler {
	return &AuthHandler{
		authUC: params.AuthUC,
		logger: params.Logger,
	}
}

// UserFieldsRequest are the account attributes of every registration.
type UserFieldsRequest struct {
	Email    string `json:"email" validate:"required,email,max=254"`
	Password string `json:"password" validate:"required,min=6,bcryptlen"`
	Name     string `json:"name" validate:"required,max=120"`
	Language string `json:"language" validate:"omitempty,max=16"`
}

func (r *UserFieldsRequest) bindForm(form formValues) error {
	r.Email = form.text("email")
	r.Password = form.raw("password")
	r.Name = form.text("name")
	r.Language = form.text("language")

	return nil
}

// RegisterUserRequest represents the request body for registering a plain user
type RegisterUserRequest struct {
	UserFieldsRequest
}

// RegisterSellerRequest adds the company data of a seller.
type RegisterSellerRequest struct {
	UserFieldsRequest
	CompanyName      string `json:"companyName" validate:"required,max=200"`
	CompanyWebsite   string `json:"companyWebsite" validate:"omitempty,url"`
	Phone            string `json:"phone" validate:"required,max=32"`
	Address          string `json:"address" validate:"required"`
	Country          string `json:"country" validate:"required"`
	State            string `json:"state" validate:"required"`
	City             string `json:"city" validate:"required"`
	Zip              string `json:"zip" validate:"required,max=16"`
	SubscriptionTier string `json:"subscriptionTier" validate:"omitempty,tier"`
	Document         string `json:"document" validate:"omitempty,max=2048"`
}

func (r *RegisterSellerRequest) bindForm(form formValues) error {
	if err := r.UserFieldsRequest.bindForm(form); err != nil {
		return err
	}
	r.CompanyName = form.text("companyName")
	r.CompanyWebsite = form.text("companyWebsite")
	r.Phone = form.text("phone")
	r.Address = form.text("address")
	r.Country = form.text("country")
	r.State = form.text("state")
	r.City = form.text("city")
	r.Zip = form.text("zip")
	r.SubscriptionTier = form.text("subscriptionTier")
	r.Document = form.text("document")

	return nil
}

// VerifyRequest carries the emailed code.
type VerifyRequest struct {
	Email string `json:"email" validate:"required,email"`
	Code  int    `json:"code" validate:"required,gte=100000,lte=999999"`
}

// ResendOTPRequest asks for a fresh code.
type ResendOTPRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// LoginRequest represents the request body for user login
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// RefreshTokenRequest represents the request body for refreshing tokens
type RefreshTokenRequest struct {
	RefreshToken string `json:"refreshToken" validate:"required"`
}

// UpdatePasswordRequest rotates the caller's password.
type UpdatePasswordRequest struct {
	Email           string `json:"email" validate:"required,email"`
	CurrentPassword string `json:"currentPassword" validate:"required"`
	NewPassword     string `json:"newPassword" validate:"required,min=6,bcryptlen"`
}

func (r *UserFieldsRequest) toInput(c echo.Context) (usecase.UserFields, error) {
	image, err := formImage(c, "image")
	if err != nil {
		return usecase.UserFields{}, err
	}

	return usecase.UserFields{
		Email:    r.Email,
		Password: r.Password,
		Name:     r.Name,
		Language: r.Language,
		Image:    image,
	}, nil
}

// RegisterUser handles plain user registration, JSON or multipart with an optional image.
func (h *AuthHandler) RegisterUser(c echo.Context) error {
	var req RegisterUserRequest
	if err := bindRequest(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	fields, err := req.toInput(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	out, err := h.authUC.RegisterUser(c.Request().Context(), &usecase.RegisterUserInput{UserFields: fields})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, toAccountResponse(out.Account))
}

// RegisterSeller handles seller registration.
func (h *AuthHandler) RegisterSeller(c echo.Context) error {
	var req RegisterSellerRequest
	if err := bindRequest(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	fields, err := req.toInput(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	input := &usecase.RegisterSellerInput{
		UserFields:       fields,
		CompanyName:      req.CompanyName,
		CompanyWebsite:   req.CompanyWebsite,
		Phone:            req.Phone,
		Address:          req.Address,
		Country:          req.Country,
		State:            req.State,
		City:             req.City,
		Zip:              req.Zip,
		SubscriptionTier: entity.SubscriptionTier(req.SubscriptionTier),
		Document:         req.Document,
	}

	out, err := h.authUC.RegisterSeller(c.Request().Context(), input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, toAccountResponse(out.Account))
}

// Verify confirms an email address with the emailed code.
func (h *AuthHandler) Verify(c echo.Context) error {
	var req VerifyRequest
	if err := bindJSON(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	account, err := h.authUC.Verify(c.Request().Context(), &usecase.VerifyInput{Email: req.Email, Code: req.Code})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toAccountResponse(account))
}

// ResendOTP issues and mails a fresh code.
func (h *AuthHandler) ResendOTP(c echo.Context) error {
	var req ResendOTPRequest
	if err := bindJSON(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.authUC.ResendOTP(c.Request().Context(), req.Email); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Message(c, http.StatusOK, "verification code sent")
}

// Login handles user login with email and password
func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := bindJSON(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	out, err := h.authUC.Login(c.Request().Context(), &usecase.LoginInput{Email: req.Email, Password: req.Password})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toLoginResponse(out))
}

// RefreshToken exchanges a refresh token for a new pair.
func (h *AuthHandler) RefreshToken(c echo.Context) error {
	var req RefreshTokenRequest
	if err := bindJSON(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	out, err := h.authUC.RefreshToken(c.Request().Context(), req.RefreshToken)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toLoginResponse(out))
}

// UpdatePassword rotates the authenticated caller's password.
func (h *AuthHandler) UpdatePassword(c echo.Context) error {
	claims, err := claimsOf(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req UpdatePasswordRequest
	if err := bindJSON(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	input := &usecase.UpdatePasswordInput{
		Email:           req.Email,
		CurrentPassword: req.CurrentPassword,
		NewPassword:     req.NewPassword,
	}

	account, err := h.authUC.UpdatePassword(c.Request().Context(), claims.Email, input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toAccountResponse(account))
}
