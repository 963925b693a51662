// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"estate/internal/domain/entity"
	"estate/internal/domain/service"
)

// --- Input DTOs ---

// UserFields are the account attributes shared by every registration.
type UserFields struct {
	Email    string
	Password string
	Name     string
	Language string
	Image    *service.ImageUpload
}

// RegisterUserInput defines the data required to register a plain user.
type RegisterUserInput struct {
	UserFields
}

// RegisterSellerInput adds the company data of a seller profile.
type RegisterSellerInput struct {
	UserFields
	CompanyName      string
	CompanyWebsite   string
	Phone            string
	Address          string
	Country          string
	State            string
	City             string
	Zip              string
	SubscriptionTier entity.SubscriptionTier
	Document         string
}

// VerifyInput carries the code a user received by email.
type VerifyInput struct {
	Email string
	Code  int
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string
	Password string
}

// UpdatePasswordInput rotates a password after re-checking the current one.
type UpdatePasswordInput struct {
	Email           string
	CurrentPassword string
	NewPassword     string
}

// --- Output DTOs ---

// RegisterOutput returns the newly created account without secrets.
type RegisterOutput struct {
	Account *entity.Account
}

// LoginOutput returns the generated tokens after a successful login or refresh.
type LoginOutput struct {
	Account *entity.Account
	Tokens  *service.TokenPair
}

// AuthUsecase is the registration, verification and session workflow.
type AuthUsecase interface {
	RegisterUser(ctx context.Context, input *RegisterUserInput) (*RegisterOutput, error)

	// RegisterSeller writes the account and its seller profile in one transaction.
	RegisterSeller(ctx context.Context, input *RegisterSellerInput) (*RegisterOutput, error)

	Verify(ctx context.Context, input *VerifyInput) (*entity.Account, error)
	ResendOTP(ctx context.Context, email string) error
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)
	RefreshToken(ctx context.Context, refreshToken string) (*LoginOutput, error)

	// UpdatePassword only lets callers rotate their own password.
	UpdatePassword(ctx context.Context, callerEmail string, input *UpdatePasswordInput) (*entity.Account, error)
}
