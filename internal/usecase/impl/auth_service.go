// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"strings"

	"estate/config"
	deliverycontext "estate/internal/delivery/context"
	"estate/internal/domain/constants"
	"estate/internal/domain/entity"
	domainerrors "estate/internal/domain/errors"
	"estate/internal/domain/repository"
	"estate/internal/domain/service"
	"estate/internal/errors"
	"estate/internal/usecase"

	"github.com/jonboulle/clockwork"
	"go.uber.org/fx"
)

// authService implements the AuthUsecase interface.
type authService struct {
	txManager             repository.TransactionManager
	accountRepo           repository.AccountRepository
	hasher                service.PasswordHasher
	otpIssuer             service.OTPIssuer
	tokenService          service.TokenService
	mailSender            service.MailSender
	imageStore            service.ImageStore
	events                *eventEmitter
	clock                 clockwork.Clock
	requireVerifiedLogin  bool
	rollbackOnMailFailure bool
	logger                *slog.Logger
}

// AuthServiceParams holds dependencies for AuthService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	AccountRepo  repository.AccountRepository
	Hasher       service.PasswordHasher
	OTPIssuer    service.OTPIssuer
	TokenService service.TokenService
	MailSender   service.MailSender
	ImageStore   service.ImageStore
	Publisher    service.EventPublisher
	Clock        clockwork.Clock
	Config       *config.Config
	Logger       *slog.Logger
}

// NewAuthService is the constructor for authService.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	srv := &authService{
		txManager:             params.TxManager,
		accountRepo:           params.AccountRepo,
		hasher:                params.Hasher,
		otpIssuer:             params.OTPIssuer,
		tokenService:          params.TokenService,
		mailSender:            params.MailSender,
		imageStore:            params.ImageStore,
		events:                &eventEmitter{publisher: params.Publisher, clock: params.Clock, logger: params.Logger},
		clock:                 params.Clock,
		rollbackOnMailFailure: true,
		logger:                params.Logger,
	}
	if params.Config != nil && params.Config.Auth != nil {
		srv.requireVerifiedLogin = params.Config.Auth.RequireVerifiedLogin
		srv.rollbackOnMailFailure = params.Config.Auth.RollbackOnMailFailure
	}

	return srv
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// registration is what differs between a user and a seller sign-up.
type registration struct {
	fields  usecase.UserFields
	role    entity.Role
	profile *entity.SellerProfile
}

func (srv *authService) RegisterUser(ctx context.Context, input *usecase.RegisterUserInput) (*usecase.RegisterOutput, error) {
	return srv.register(ctx, &registration{fields: input.UserFields, role: entity.RoleUser})
}

func (srv *authService) RegisterSeller(ctx context.Context, input *usecase.RegisterSellerInput) (*usecase.RegisterOutput, error) {
	tier := input.SubscriptionTier
	if tier == "" {
		tier = entity.SubscriptionFree
	}
	if !tier.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("unknown subscription tier: " + string(tier))
	}

	profile := &entity.SellerProfile{
		Status:           entity.VerificationPending,
		CompanyName:      input.CompanyName,
		CompanyWebsite:   input.CompanyWebsite,
		Phone:            input.Phone,
		Address:          input.Address,
		Country:          input.Country,
		State:            input.State,
		City:             input.City,
		Zip:              input.Zip,
		SubscriptionTier: tier,
		Document:         input.Document,
	}

	return srv.register(ctx, &registration{fields: input.UserFields, role: entity.RoleSeller, profile: profile})
}

// register creates the account (and seller profile) in one transaction. The OTP
// mail is sent inside the transaction when a mail failure must undo the sign-up.
func (srv *authService) register(ctx context.Context, reg *registration) (*usecase.RegisterOutput, error) {
	email := strings.TrimSpace(reg.fields.Email)
	srv.log(ctx).Info("Starting registration", slog.Any("role", reg.role), slog.String("email", email))

	if _, err := srv.accountRepo.FindByEmail(ctx, email); err == nil {
		return nil, domainerrors.ErrAccountAlreadyExists
	} else if !errors.Is(err, domainerrors.ErrAccountNotFound) {
		return nil, errors.Wrap(err, "failed to check existing account")
	}

	passwordHash, err := srv.hasher.Hash(reg.fields.Password)
	if err != nil {
		return nil, errors.Wrap(err, "failed to hash password during registration")
	}

	code, err := srv.otpIssuer.Issue()
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue verification code")
	}
	otpHash, err := srv.otpIssuer.Hash(code.Code)
	if err != nil {
		return nil, errors.Wrap(err, "failed to hash verification code")
	}

	account := &entity.Account{
		Email:        email,
		PasswordHash: passwordHash,
		Name:         reg.fields.Name,
		Language:     reg.fields.Language,
		Role:         reg.role,
	}
	account.SetOTP(otpHash, code.ExpiresAt)

	if reg.fields.Image != nil {
		image, err := srv.imageStore.Upload(ctx, *reg.fields.Image, constants.FolderUsers)
		if err != nil {
			return nil, errors.Wrap(err, "failed to upload profile image")
		}
		account.ImageURL = image.URL
		account.ImagePublicID = image.PublicID
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.AccountRepo().Create(ctx, account); err != nil {
			return errors.Wrap(err, "failed to create account")
		}

		if reg.profile != nil {
			reg.profile.AccountID = account.ID
			if err := repoFactory.SellerRepo().Create(ctx, reg.profile); err != nil {
				return errors.Wrap(err, "failed to create seller profile")
			}
			account.SellerProfile = reg.profile
		}

		if srv.rollbackOnMailFailure {
			return srv.sendVerificationCode(ctx, account, code)
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Registration failed", slog.Any("role", reg.role), slog.String("email", email), slog.Any("error", err))
		srv.discardImage(ctx, account.ImagePublicID)

		return nil, err
	}

	if !srv.rollbackOnMailFailure {
		if err := srv.sendVerificationCode(ctx, account, code); err != nil {
			srv.log(ctx).Warn("Verification mail failed, account kept for resend", slog.Any("accountID", account.ID), slog.Any("error", err))
		}
	}

	srv.events.emit(ctx, entity.EventAccountRegistered, account.ID.String(), map[string]string{"role": account.Role.String()})
	srv.log(ctx).Debug("Registration completed", slog.Any("role", reg.role), slog.Any("accountID", account.ID))

	return &usecase.RegisterOutput{Account: account.Sanitized()}, nil
}

func (srv *authService) sendVerificationCode(ctx context.Context, account *entity.Account, code entity.OneTimeCode) error {
	body, err := renderVerificationMail(account.Name, code.Code, code.ExpiresAt.Sub(srv.clock.Now()))
	if err != nil {
		return err
	}

	if err := srv.mailSender.Send(ctx, account.Email, verificationSubject, body); err != nil {
		if domainerrors.KindOf(err) != domainerrors.KindUpstreamFailure {
			err = domainerrors.NewUpstreamError("mail sender", err)
		}

		return errors.Wrap(err, "failed to send verification code")
	}

	return nil
}

func (srv *authService) discardImage(ctx context.Context, publicID string) {
	if publicID == "" {
		return
	}
	if err := srv.imageStore.Delete(ctx, publicID); err != nil {
		srv.log(ctx).Warn("Failed to delete orphaned image", slog.String("publicID", publicID), slog.Any("error", err))
	}
}

// Verify marks the email as confirmed and clears the code so it cannot be replayed.
func (srv *authService) Verify(ctx context.Context, input *usecase.VerifyInput) (*entity.Account, error) {
	account, err := srv.accountRepo.FindByEmail(ctx, strings.TrimSpace(input.Email))
	if err != nil {
		return nil, errors.Wrap(err, "failed to find account for verification")
	}

	if !account.HasOTP() || !srv.otpIssuer.Verify(input.Code, *account.OTPHash) {
		srv.log(ctx).Warn("Invalid verification code", slog.Any("accountID", account.ID))

		return nil, domainerrors.ErrInvalidOTP
	}
	if srv.otpIssuer.Expired(*account.OTPExpiresAt) {
		return nil, domainerrors.ErrOTPExpired
	}

	account.IsEmailVerified = true
	account.ClearOTP()
	if err := srv.accountRepo.Update(ctx, account); err != nil {
		return nil, errors.Wrap(err, "failed to mark account as verified")
	}

	srv.events.emit(ctx, entity.EventAccountVerified, account.ID.String(), nil)

	return account.Sanitized(), nil
}

func (srv *authService) ResendOTP(ctx context.Context, email string) error {
	account, err := srv.accountRepo.FindByEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		return errors.Wrap(err, "failed to find account for resend")
	}
	if account.IsEmailVerified {
		return domainerrors.ErrAlreadyVerified
	}

	code, err := srv.otpIssuer.Issue()
	if err != nil {
		return errors.Wrap(err, "failed to issue verification code")
	}
	otpHash, err := srv.otpIssuer.Hash(code.Code)
	if err != nil {
		return errors.Wrap(err, "failed to hash verification code")
	}

	account.SetOTP(otpHash, code.ExpiresAt)
	if err := srv.accountRepo.Update(ctx, account); err != nil {
		return errors.Wrap(err, "failed to store verification code")
	}

	return srv.sendVerificationCode(ctx, account, code)
}

func (srv *authService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	account, err := srv.accountRepo.FindByEmail(ctx, strings.TrimSpace(input.Email))
	if err != nil {
		return nil, errors.Wrap(err, "failed to find account for login")
	}

	if err := srv.hasher.Verify(input.Password, account.PasswordHash); err != nil {
		srv.log(ctx).Warn("Login rejected", slog.Any("accountID", account.ID), slog.Any("error", err))

		return nil, err
	}

	if srv.requireVerifiedLogin && !account.IsEmailVerified {
		return nil, domainerrors.ErrEmailNotVerified
	}

	return srv.issueSession(ctx, account)
}

func (srv *authService) RefreshToken(ctx context.Context, refreshToken string) (*usecase.LoginOutput, error) {
	claims, err := srv.tokenService.ValidateRefreshToken(refreshToken)
	if err != nil {
		srv.log(ctx).Debug("Refresh token rejected", slog.Any("error", err))

		return nil, domainerrors.ErrRefreshTokenInvalid
	}

	account, err := srv.accountRepo.FindByID(ctx, claims.AccountID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load account for refresh")
	}

	return srv.issueSession(ctx, account)
}

func (srv *authService) issueSession(ctx context.Context, account *entity.Account) (*usecase.LoginOutput, error) {
	tokens, err := srv.tokenService.IssueTokens(account.ID, account.Email, account.Role)
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue tokens")
	}

	srv.log(ctx).Debug("Session issued", slog.Any("accountID", account.ID))

	return &usecase.LoginOutput{Account: account.Sanitized(), Tokens: tokens}, nil
}

func (srv *authService) UpdatePassword(ctx context.Context, callerEmail string, input *usecase.UpdatePasswordInput) (*entity.Account, error) {
	email := strings.TrimSpace(input.Email)
	if callerEmail != email {
		return nil, domainerrors.ErrForbidden.WithDetails("password can only be changed by its owner")
	}

	account, err := srv.accountRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find account for password update")
	}

	if err := srv.hasher.Verify(input.CurrentPassword, account.PasswordHash); err != nil {
		return nil, err
	}

	passwordHash, err := srv.hasher.Hash(input.NewPassword)
	if err != nil {
		return nil, errors.Wrap(err, "failed to hash new password")
	}

	account.PasswordHash = passwordHash
	if err := srv.accountRepo.Update(ctx, account); err != nil {
		return nil, errors.Wrap(err, "failed to update password")
	}

	return account.Sanitized(), nil
}
