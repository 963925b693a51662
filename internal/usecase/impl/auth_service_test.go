package impl

import (
	"context"
	"regexp"
	"strconv"
	"sync"
	"testing"
	"time"

	"estate/config"
	"estate/internal/domain/entity"
	domainerrors "estate/internal/domain/errors"
	"estate/internal/domain/service"
	"estate/internal/infra/auth"
	mockSvc "estate/internal/mocks/service"
	"estate/internal/usecase"

	"github.com/jonboulle/clockwork"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var otpPattern = regexp.MustCompile(`\b\d{6}\b`)

// recordingMailer keeps every message and optionally fails.
type recordingMailer struct {
	mu     sync.Mutex
	bodies []string
	err    error
}

func (m *recordingMailer) Send(_ context.Context, _, _, html string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.err != nil {
		return m.err
	}
	m.bodies = append(m.bodies, html)

	return nil
}

func (m *recordingMailer) sent() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	return len(m.bodies)
}

func (m *recordingMailer) lastCode(t *testing.T) int {
	t.Helper()

	m.mu.Lock()
	defer m.mu.Unlock()

	require.NotEmpty(t, m.bodies, "no verification mail sent")
	match := otpPattern.FindString(m.bodies[len(m.bodies)-1])
	require.NotEmpty(t, match, "no code in verification mail")

	code, err := strconv.Atoi(match)
	require.NoError(t, err)

	return code
}

type authServiceFixtures struct {
	service usecase.AuthUsecase
	store   *memStore
	mailer  *recordingMailer
	clock   *clockwork.FakeClock
	tokens  service.TokenService
}

func createTestAuthService(t *testing.T, adjust func(cfg *config.Config)) authServiceFixtures {
	cfg := newTestConfig()
	if adjust != nil {
		adjust(cfg)
	}

	clock := clockwork.NewFakeClockAt(time.Date(2026, time.March, 1, 9, 0, 0, 0, time.UTC))
	hasher := auth.NewBcryptHasher(cfg)
	tokens, err := auth.NewJWTService(cfg, clock)
	require.NoError(t, err)

	publisher := mockSvc.NewMockEventPublisher(t)
	publisher.EXPECT().Publish(mock.Anything, mock.Anything).Return(nil).Maybe()

	store := newMemStore()
	mailer := &recordingMailer{}
	srv := NewAuthService(AuthServiceParams{
		TxManager:    store,
		AccountRepo:  store.AccountRepo(),
		Hasher:       hasher,
		OTPIssuer:    auth.NewOTPIssuer(hasher, clock, cfg),
		TokenService: tokens,
		MailSender:   mailer,
		ImageStore:   mockSvc.NewMockImageStore(t),
		Publisher:    publisher,
		Clock:        clock,
		Config:       cfg,
		Logger:       newDiscardLogger(),
	})

	return authServiceFixtures{
		service: srv,
		store:   store,
		mailer:  mailer,
		clock:   clock,
		tokens:  tokens,
	}
}

func userInput(email string) *usecase.RegisterUserInput {
	return &usecase.RegisterUserInput{UserFields: usecase.UserFields{
		Email:    email,
		Password: "correct horse battery",
		Name:     "Ada",
		Language: "en",
	}}
}

func sellerInput(email string) *usecase.RegisterSellerInput {
	return &usecase.RegisterSellerInput{
		UserFields:  userInput(email).UserFields,
		CompanyName: "Harbor Homes",
		Phone:       "+1 555 0100",
		City:        "Lisbon",
	}
}

func TestAuthService_RegisterVerifyLogin_RoundTrip(t *testing.T) {
	fx := createTestAuthService(t, nil)
	ctx := context.Background()

	out, err := fx.service.RegisterUser(ctx, userInput("ada@example.com"))
	require.NoError(t, err)
	assert.Equal(t, entity.RoleUser, out.Account.Role)
	assert.False(t, out.Account.IsEmailVerified)
	assert.Empty(t, out.Account.PasswordHash)
	assert.Nil(t, out.Account.OTPHash)

	stored := fx.store.findByEmail("ada@example.com")
	require.NotNil(t, stored)
	require.True(t, stored.HasOTP())
	assert.NotEqual(t, "correct horse battery", stored.PasswordHash)

	code := fx.mailer.lastCode(t)

	verified, err := fx.service.Verify(ctx, &usecase.VerifyInput{Email: "ada@example.com", Code: code})
	require.NoError(t, err)
	assert.True(t, verified.IsEmailVerified)
	assert.False(t, fx.store.findByEmail("ada@example.com").HasOTP())

	_, err = fx.service.Verify(ctx, &usecase.VerifyInput{Email: "ada@example.com", Code: code})
	assert.Equal(t, domainerrors.KindInvalidCode, domainerrors.KindOf(err))

	login, err := fx.service.Login(ctx, &usecase.LoginInput{Email: "ada@example.com", Password: "correct horse battery"})
	require.NoError(t, err)
	require.NotNil(t, login.Tokens)

	claims, err := fx.tokens.ValidateAccessToken(login.Tokens.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, stored.ID, claims.AccountID)
	assert.Equal(t, "ada@example.com", claims.Email)
	assert.Equal(t, entity.RoleUser, claims.Role)
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	fx := createTestAuthService(t, nil)
	ctx := context.Background()

	_, err := fx.service.RegisterUser(ctx, userInput("dup@example.com"))
	require.NoError(t, err)

	_, err = fx.service.RegisterSeller(ctx, sellerInput("dup@example.com"))
	require.Error(t, err)
	assert.Equal(t, domainerrors.KindConflict, domainerrors.KindOf(err))
	assert.Equal(t, 1, fx.store.accountCount())
	assert.Equal(t, 0, fx.store.sellerCount())
}

func TestAuthService_Verify_ExpiredCode(t *testing.T) {
	fx := createTestAuthService(t, nil)
	ctx := context.Background()

	_, err := fx.service.RegisterUser(ctx, userInput("late@example.com"))
	require.NoError(t, err)
	code := fx.mailer.lastCode(t)

	fx.clock.Advance(10*time.Minute + time.Second)

	_, err = fx.service.Verify(ctx, &usecase.VerifyInput{Email: "late@example.com", Code: code})
	require.Error(t, err)
	assert.Equal(t, domainerrors.KindExpired, domainerrors.KindOf(err))
	assert.False(t, fx.store.findByEmail("late@example.com").IsEmailVerified)
}

func TestAuthService_Verify_WrongCode(t *testing.T) {
	fx := createTestAuthService(t, nil)
	ctx := context.Background()

	_, err := fx.service.RegisterUser(ctx, userInput("typo@example.com"))
	require.NoError(t, err)

	wrong := 123456
	if fx.mailer.lastCode(t) == wrong {
		wrong = 654321
	}

	_, err = fx.service.Verify(ctx, &usecase.VerifyInput{Email: "typo@example.com", Code: wrong})
	require.Error(t, err)
	assert.Equal(t, domainerrors.KindInvalidCode, domainerrors.KindOf(err))

	stored := fx.store.findByEmail("typo@example.com")
	assert.False(t, stored.IsEmailVerified)
	assert.True(t, stored.HasOTP())
}

func TestAuthService_Verify_UnknownEmail(t *testing.T) {
	fx := createTestAuthService(t, nil)

	_, err := fx.service.Verify(context.Background(), &usecase.VerifyInput{Email: "ghost@example.com", Code: 123456})
	assert.Equal(t, domainerrors.KindNotFound, domainerrors.KindOf(err))
}

func TestAuthService_RegisterSeller_Success(t *testing.T) {
	fx := createTestAuthService(t, nil)
	ctx := context.Background()

	out, err := fx.service.RegisterSeller(ctx, sellerInput("seller@example.com"))
	require.NoError(t, err)
	assert.Equal(t, entity.RoleSeller, out.Account.Role)
	require.NotNil(t, out.Account.SellerProfile)
	assert.Equal(t, entity.VerificationPending, out.Account.SellerProfile.Status)
	assert.Equal(t, entity.SubscriptionFree, out.Account.SellerProfile.SubscriptionTier)
	assert.Equal(t, out.Account.ID, out.Account.SellerProfile.AccountID)
	assert.Equal(t, 1, fx.store.sellerCount())

	login, err := fx.service.Login(ctx, &usecase.LoginInput{Email: "seller@example.com", Password: "correct horse battery"})
	require.NoError(t, err)
	claims, err := fx.tokens.ValidateAccessToken(login.Tokens.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, entity.RoleSeller, claims.Role)
}

func TestAuthService_RegisterSeller_InvalidTier(t *testing.T) {
	fx := createTestAuthService(t, nil)

	input := sellerInput("tier@example.com")
	input.SubscriptionTier = "GOLD"

	_, err := fx.service.RegisterSeller(context.Background(), input)
	assert.Equal(t, domainerrors.KindValidationFailed, domainerrors.KindOf(err))
	assert.Equal(t, 0, fx.store.accountCount())
}

func TestAuthService_RegisterSeller_ProfileFailureLeavesNoAccount(t *testing.T) {
	fx := createTestAuthService(t, nil)
	fx.store.failSellerCreate = domainerrors.ErrValidationFailed.WithDetails("company name is required")

	_, err := fx.service.RegisterSeller(context.Background(), sellerInput("half@example.com"))
	require.Error(t, err)
	assert.Equal(t, domainerrors.KindValidationFailed, domainerrors.KindOf(err))
	assert.Equal(t, 0, fx.store.accountCount())
	assert.Equal(t, 0, fx.store.sellerCount())
	assert.Equal(t, 0, fx.mailer.sent())
}

func TestAuthService_Register_MailFailureRollsBack(t *testing.T) {
	fx := createTestAuthService(t, nil)
	fx.mailer.err = errors.New("smtp unreachable")

	_, err := fx.service.RegisterSeller(context.Background(), sellerInput("nomail@example.com"))
	require.Error(t, err)
	assert.Equal(t, domainerrors.KindUpstreamFailure, domainerrors.KindOf(err))
	assert.Equal(t, 0, fx.store.accountCount())
	assert.Equal(t, 0, fx.store.sellerCount())
}

func TestAuthService_Register_MailFailureKeepsAccountWhenConfigured(t *testing.T) {
	fx := createTestAuthService(t, func(cfg *config.Config) {
		cfg.Auth.RollbackOnMailFailure = false
	})
	fx.mailer.err = errors.New("smtp unreachable")

	out, err := fx.service.RegisterUser(context.Background(), userInput("kept@example.com"))
	require.NoError(t, err)
	assert.False(t, out.Account.IsEmailVerified)
	assert.Equal(t, 1, fx.store.accountCount())
}

func TestAuthService_ResendOTP(t *testing.T) {
	fx := createTestAuthService(t, nil)
	ctx := context.Background()

	_, err := fx.service.RegisterUser(ctx, userInput("again@example.com"))
	require.NoError(t, err)
	first := fx.mailer.lastCode(t)

	fx.clock.Advance(9 * time.Minute)
	require.NoError(t, fx.service.ResendOTP(ctx, "again@example.com"))
	assert.Equal(t, 2, fx.mailer.sent())
	second := fx.mailer.lastCode(t)

	// the fresh code carries its own full TTL
	fx.clock.Advance(5 * time.Minute)

	if first != second {
		_, err = fx.service.Verify(ctx, &usecase.VerifyInput{Email: "again@example.com", Code: first})
		assert.Equal(t, domainerrors.KindInvalidCode, domainerrors.KindOf(err))
	}

	_, err = fx.service.Verify(ctx, &usecase.VerifyInput{Email: "again@example.com", Code: second})
	require.NoError(t, err)

	err = fx.service.ResendOTP(ctx, "again@example.com")
	assert.Equal(t, domainerrors.KindConflict, domainerrors.KindOf(err))
}

func TestAuthService_Login_Failures(t *testing.T) {
	fx := createTestAuthService(t, nil)
	ctx := context.Background()

	_, err := fx.service.RegisterUser(ctx, userInput("login@example.com"))
	require.NoError(t, err)

	_, err = fx.service.Login(ctx, &usecase.LoginInput{Email: "login@example.com", Password: "wrong"})
	assert.Equal(t, domainerrors.KindInvalidCredentials, domainerrors.KindOf(err))

	_, err = fx.service.Login(ctx, &usecase.LoginInput{Email: "nobody@example.com", Password: "wrong"})
	assert.Equal(t, domainerrors.KindNotFound, domainerrors.KindOf(err))
}

func TestAuthService_Login_RequiresVerifiedEmailWhenConfigured(t *testing.T) {
	fx := createTestAuthService(t, func(cfg *config.Config) {
		cfg.Auth.RequireVerifiedLogin = true
	})
	ctx := context.Background()

	_, err := fx.service.RegisterUser(ctx, userInput("strict@example.com"))
	require.NoError(t, err)

	_, err = fx.service.Login(ctx, &usecase.LoginInput{Email: "strict@example.com", Password: "correct horse battery"})
	assert.True(t, errors.Is(err, domainerrors.ErrEmailNotVerified))
}

func TestAuthService_RefreshToken(t *testing.T) {
	fx := createTestAuthService(t, nil)
	ctx := context.Background()

	_, err := fx.service.RegisterUser(ctx, userInput("refresh@example.com"))
	require.NoError(t, err)
	login, err := fx.service.Login(ctx, &usecase.LoginInput{Email: "refresh@example.com", Password: "correct horse battery"})
	require.NoError(t, err)

	refreshed, err := fx.service.RefreshToken(ctx, login.Tokens.RefreshToken)
	require.NoError(t, err)
	assert.Equal(t, login.Account.ID, refreshed.Account.ID)

	_, err = fx.service.RefreshToken(ctx, login.Tokens.AccessToken)
	assert.True(t, errors.Is(err, domainerrors.ErrRefreshTokenInvalid))
}

func TestAuthService_UpdatePassword(t *testing.T) {
	fx := createTestAuthService(t, nil)
	ctx := context.Background()

	_, err := fx.service.RegisterUser(ctx, userInput("owner@example.com"))
	require.NoError(t, err)

	input := &usecase.UpdatePasswordInput{
		Email:           "owner@example.com",
		CurrentPassword: "correct horse battery",
		NewPassword:     "staple battery horse",
	}

	_, err = fx.service.UpdatePassword(ctx, "intruder@example.com", input)
	assert.Equal(t, domainerrors.KindForbidden, domainerrors.KindOf(err))

	updated, err := fx.service.UpdatePassword(ctx, "owner@example.com", input)
	require.NoError(t, err)
	assert.Empty(t, updated.PasswordHash)

	_, err = fx.service.Login(ctx, &usecase.LoginInput{Email: "owner@example.com", Password: "correct horse battery"})
	assert.Equal(t, domainerrors.KindInvalidCredentials, domainerrors.KindOf(err))

	_, err = fx.service.Login(ctx, &usecase.LoginInput{Email: "owner@example.com", Password: "staple battery horse"})
	assert.NoError(t, err)
}

func TestAuthService_UpdatePassword_WrongCurrentKeepsHash(t *testing.T) {
	fx := createTestAuthService(t, nil)
	ctx := context.Background()

	_, err := fx.service.RegisterUser(ctx, userInput("keep@example.com"))
	require.NoError(t, err)
	before := fx.store.findByEmail("keep@example.com").PasswordHash

	_, err = fx.service.UpdatePassword(ctx, "keep@example.com", &usecase.UpdatePasswordInput{
		Email:           "keep@example.com",
		CurrentPassword: "not my password",
		NewPassword:     "staple battery horse",
	})
	require.Error(t, err)
	assert.Equal(t, domainerrors.KindInvalidCredentials, domainerrors.KindOf(err))
	assert.Equal(t, before, fx.store.findByEmail("keep@example.com").PasswordHash)

	_, err = fx.service.Login(ctx, &usecase.LoginInput{Email: "keep@example.com", Password: "correct horse battery"})
	assert.NoError(t, err)
}

func TestAuthService_UpdatePassword_UnknownEmail(t *testing.T) {
	fx := createTestAuthService(t, nil)

	_, err := fx.service.UpdatePassword(context.Background(), "ghost@example.com", &usecase.UpdatePasswordInput{
		Email:           "ghost@example.com",
		CurrentPassword: "whatever1",
		NewPassword:     "whatever2",
	})
	require.Error(t, err)
	assert.Equal(t, domainerrors.KindNotFound, domainerrors.KindOf(err))
	assert.Equal(t, 0, fx.store.accountCount())
}
