package router_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"estate/config"
	"estate/internal/delivery/api"
	"estate/internal/delivery/api/middleware"
	"estate/internal/delivery/api/response"
	"estate/internal/delivery/api/router"
	"estate/internal/delivery/api/router/handler"
	deliverymiddleware "estate/internal/delivery/middleware"
	"estate/internal/domain/entity"
	domainerrors "estate/internal/domain/errors"
	"estate/internal/domain/service"
	mockSvc "estate/internal/mocks/service"
	mockUC "estate/internal/mocks/usecase"
	"estate/internal/usecase"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const (
	userToken   = "user-token"
	sellerToken = "seller-token"
	adminToken  = "admin-token"
)

type testRouterFixture struct {
	echo       *echo.Echo
	authUC     *mockUC.MockAuthUsecase
	profileUC  *mockUC.MockProfileUsecase
	adminUC    *mockUC.MockAdminUsecase
	propertyUC *mockUC.MockPropertyUsecase
	newsUC     *mockUC.MockNewsUsecase
	contactUC  *mockUC.MockContactUsecase
	userID     uuid.UUID
	sellerID   uuid.UUID
}

func createTestRouter(t *testing.T, adjust func(cfg *config.Config)) *testRouterFixture {
	t.Helper()

	cfg := &config.Config{}
	cfg.HTTP.MaxRequestBodySize = "10MB"
	cfg.HTTP.RateLimit.RPS = 100
	cfg.HTTP.RateLimit.Burst = 100
	if adjust != nil {
		adjust(cfg)
	}

	logger := slog.New(slog.DiscardHandler)

	fx := &testRouterFixture{
		authUC:     mockUC.NewMockAuthUsecase(t),
		profileUC:  mockUC.NewMockProfileUsecase(t),
		adminUC:    mockUC.NewMockAdminUsecase(t),
		propertyUC: mockUC.NewMockPropertyUsecase(t),
		newsUC:     mockUC.NewMockNewsUsecase(t),
		contactUC:  mockUC.NewMockContactUsecase(t),
		userID:     uuid.New(),
		sellerID:   uuid.New(),
	}

	tokenSvc := mockSvc.NewMockTokenService(t)
	tokenSvc.EXPECT().ValidateAccessToken(userToken).
		Return(&service.Claims{AccountID: fx.userID, Email: "user@example.com", Role: entity.RoleUser, Type: service.TokenTypeAccess}, nil).Maybe()
	tokenSvc.EXPECT().ValidateAccessToken(sellerToken).
		Return(&service.Claims{AccountID: fx.sellerID, Email: "seller@example.com", Role: entity.RoleSeller, Type: service.TokenTypeAccess}, nil).Maybe()
	tokenSvc.EXPECT().ValidateAccessToken(adminToken).
		Return(&service.Claims{AccountID: uuid.New(), Email: "admin@example.com", Role: entity.RoleAdmin, Type: service.TokenTypeAccess}, nil).Maybe()
	tokenSvc.EXPECT().ValidateAccessToken(mock.Anything).Return(nil, domainerrors.ErrInvalidCredentials).Maybe()

	e := api.NewEcho(cfg, logger)
	r := router.NewRouter(router.RouterParams{
		AuthHandler:     handler.NewAuthHandler(handler.AuthHandlerParams{AuthUC: fx.authUC, Logger: logger}),
		ProfileHandler:  handler.NewProfileHandler(handler.ProfileHandlerParams{ProfileUC: fx.profileUC, Logger: logger}),
		AdminHandler:    handler.NewAdminHandler(handler.AdminHandlerParams{AdminUC: fx.adminUC, Logger: logger}),
		PropertyHandler: handler.NewPropertyHandler(handler.PropertyHandlerParams{PropertyUC: fx.propertyUC, Logger: logger}),
		NewsHandler:     handler.NewNewsHandler(handler.NewsHandlerParams{NewsUC: fx.newsUC, Logger: logger}),
		ContactHandler:  handler.NewContactHandler(handler.ContactHandlerParams{ContactUC: fx.contactUC, Logger: logger}),
		AuthMiddleware:  middleware.NewAuthMiddleware(tokenSvc, logger),
		RateLimiter:     deliverymiddleware.NewIPRateLimiter(cfg, clockwork.NewFakeClock(), logger),
	})
	r.RegisterRoutes(e)
	fx.echo = e

	return fx
}

func (fx *testRouterFixture) do(method, path string, body any, token string) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		raw, _ := json.Marshal(body)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	fx.echo.ServeHTTP(rec, req)

	return rec
}

type envelope struct {
	Data  json.RawMessage     `json:"data"`
	Error *response.ErrorInfo `json:"error"`
	Meta  *response.MetaInfo  `json:"meta"`
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())

	return env
}

func TestRegisterUser_JSON(t *testing.T) {
	fx := createTestRouter(t, nil)

	fx.authUC.EXPECT().RegisterUser(mock.Anything, mock.MatchedBy(func(in *usecase.RegisterUserInput) bool {
		return in.Email == "a@x.com" && in.Password == "secret1" && in.Name == "Ana" && in.Image == nil
	})).Return(&usecase.RegisterOutput{Account: &entity.Account{ID: fx.userID, Email: "a@x.com", Name: "Ana", Role: entity.RoleUser}}, nil)

	rec := fx.do(http.MethodPost, "/auth/register/user", map[string]any{
		"email": "a@x.com", "password": "secret1", "name": "Ana",
	}, "")

	assert.Equal(t, http.StatusCreated, rec.Code)
	env := decode(t, rec)
	require.NotNil(t, env.Meta)
	assert.NotEmpty(t, env.Meta.RequestID)
	assert.Equal(t, env.Meta.RequestID, rec.Header().Get("X-Request-Id"))

	var account handler.AccountResponse
	require.NoError(t, json.Unmarshal(env.Data, &account))
	assert.Equal(t, fx.userID, account.ID)
	assert.False(t, account.IsEmailVerified)
	assert.NotContains(t, rec.Body.String(), "password")
}

func TestRegisterSeller_Multipart(t *testing.T) {
	fx := createTestRouter(t, nil)

	var body bytes.Buffer
	form := multipart.NewWriter(&body)
	for key, value := range map[string]string{
		"email": "s@x.com", "password": "secret1", "name": "Sam",
		"companyName": "Acme Homes", "phone": "+351 900", "address": "Rua 1",
		"country": "PT", "state": "Lisboa", "city": "Lisboa", "zip": "1000-001",
		"subscriptionTier": "PREMIUM",
	} {
		require.NoError(t, form.WriteField(key, value))
	}
	part, err := form.CreateFormFile("image", "avatar.png")
	require.NoError(t, err)
	_, err = part.Write([]byte("\x89PNG\r\n\x1a\n0000"))
	require.NoError(t, err)
	require.NoError(t, form.Close())

	fx.authUC.EXPECT().RegisterSeller(mock.Anything, mock.MatchedBy(func(in *usecase.RegisterSellerInput) bool {
		return in.Email == "s@x.com" &&
			in.CompanyName == "Acme Homes" &&
			in.SubscriptionTier == entity.SubscriptionPremium &&
			in.Image != nil && in.Image.ContentType == "image/png" && in.Image.Filename == "avatar.png"
	})).Return(&usecase.RegisterOutput{Account: &entity.Account{
		ID:            fx.sellerID,
		Email:         "s@x.com",
		Role:          entity.RoleSeller,
		SellerProfile: &entity.SellerProfile{CompanyName: "Acme Homes", Status: entity.VerificationPending},
	}}, nil)

	req := httptest.NewRequest(http.MethodPost, "/auth/register/seller", &body)
	req.Header.Set(echo.HeaderContentType, form.FormDataContentType())
	rec := httptest.NewRecorder()
	fx.echo.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var account handler.AccountResponse
	require.NoError(t, json.Unmarshal(decode(t, rec).Data, &account))
	require.NotNil(t, account.Seller)
	assert.Equal(t, entity.VerificationPending, account.Seller.Status)
}

func TestRegisterUser_ValidationFailure(t *testing.T) {
	fx := createTestRouter(t, nil)

	rec := fx.do(http.MethodPost, "/auth/register/user", map[string]any{
		"email": "not-an-email", "password": "123", "name": "",
	}, "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	env := decode(t, rec)
	require.NotNil(t, env.Error)
	assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)
	details, _ := env.Error.Details.(string)
	assert.Contains(t, details, "email must be a valid email address")
	assert.Contains(t, details, "password must be at least 6")
	assert.Contains(t, details, "name is required")
}

func TestVerify_ExpiredCode(t *testing.T) {
	fx := createTestRouter(t, nil)

	fx.authUC.EXPECT().Verify(mock.Anything, &usecase.VerifyInput{Email: "a@x.com", Code: 123456}).
		Return(nil, domainerrors.ErrOTPExpired)

	rec := fx.do(http.MethodPost, "/auth/verify", map[string]any{"email": "a@x.com", "code": 123456}, "")

	assert.Equal(t, http.StatusGone, rec.Code)
	assert.Equal(t, "OTP_EXPIRED", decode(t, rec).Error.Code)
}

func TestLogin_InvalidCredentialsHidesDetails(t *testing.T) {
	fx := createTestRouter(t, nil)

	fx.authUC.EXPECT().Login(mock.Anything, &usecase.LoginInput{Email: "a@x.com", Password: "wrong"}).
		Return(nil, domainerrors.ErrInvalidCredentials.WithDetails("hash mismatch"))

	rec := fx.do(http.MethodPost, "/auth/login", map[string]any{"email": "a@x.com", "password": "wrong"}, "")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	env := decode(t, rec)
	assert.Equal(t, "INVALID_CREDENTIALS", env.Error.Code)
	assert.Nil(t, env.Error.Details)
}

func TestLogin_ReturnsTokens(t *testing.T) {
	fx := createTestRouter(t, nil)

	fx.authUC.EXPECT().Login(mock.Anything, mock.Anything).Return(&usecase.LoginOutput{
		Account: &entity.Account{ID: fx.userID, Email: "a@x.com", Role: entity.RoleUser},
		Tokens:  &service.TokenPair{AccessToken: "access", RefreshToken: "refresh"},
	}, nil)

	rec := fx.do(http.MethodPost, "/auth/login", map[string]any{"email": "a@x.com", "password": "secret1"}, "")

	assert.Equal(t, http.StatusOK, rec.Code)
	var out handler.LoginResponse
	require.NoError(t, json.Unmarshal(decode(t, rec).Data, &out))
	assert.Equal(t, "Bearer", out.Tokens.TokenType)
	assert.Equal(t, "access", out.Tokens.AccessToken)
	assert.Equal(t, "refresh", out.Tokens.RefreshToken)
}

func TestAuthRoutes_RateLimited(t *testing.T) {
	fx := createTestRouter(t, func(cfg *config.Config) {
		cfg.HTTP.RateLimit.RPS = 1
		cfg.HTTP.RateLimit.Burst = 2
	})

	fx.authUC.EXPECT().ResendOTP(mock.Anything, "a@x.com").Return(nil).Times(2)

	for range 2 {
		rec := fx.do(http.MethodPost, "/auth/otp/resend", map[string]any{"email": "a@x.com"}, "")
		assert.Equal(t, http.StatusOK, rec.Code)
	}

	rec := fx.do(http.MethodPost, "/auth/otp/resend", map[string]any{"email": "a@x.com"}, "")
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "RATE_LIMITED", decode(t, rec).Error.Code)
}

func TestUpdatePassword_UsesTokenEmail(t *testing.T) {
	fx := createTestRouter(t, nil)

	fx.authUC.EXPECT().UpdatePassword(mock.Anything, "user@example.com", &usecase.UpdatePasswordInput{
		Email: "other@example.com", CurrentPassword: "secret1", NewPassword: "secret2",
	}).Return(nil, domainerrors.ErrForbidden)

	rec := fx.do(http.MethodPut, "/auth/password", map[string]any{
		"email": "other@example.com", "currentPassword": "secret1", "newPassword": "secret2",
	}, userToken)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestProfile_RequiresBearerToken(t *testing.T) {
	fx := createTestRouter(t, nil)

	rec := fx.do(http.MethodGet, "/users/profile", nil, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "UNAUTHORIZED", decode(t, rec).Error.Code)

	rec = fx.do(http.MethodGet, "/users/profile", nil, "forged")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestProfile_Get(t *testing.T) {
	fx := createTestRouter(t, nil)

	fx.profileUC.EXPECT().GetProfile(mock.Anything, fx.userID).
		Return(&entity.Account{ID: fx.userID, Email: "user@example.com", Role: entity.RoleUser}, nil)

	rec := fx.do(http.MethodGet, "/users/profile", nil, userToken)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestProfile_UpdateOnlySubmittedFields(t *testing.T) {
	fx := createTestRouter(t, nil)

	fx.profileUC.EXPECT().UpdateProfile(mock.Anything, fx.userID, mock.MatchedBy(func(in *usecase.UpdateProfileInput) bool {
		return in.Name != nil && *in.Name == "New Name" && in.Language == nil && in.Seller == nil && in.Image == nil
	})).Return(&entity.Account{ID: fx.userID, Name: "New Name"}, nil)

	rec := fx.do(http.MethodPatch, "/users/profile", map[string]any{"name": "New Name"}, userToken)

	assert.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
}

func TestAdminRoutes_RejectNonStaff(t *testing.T) {
	fx := createTestRouter(t, nil)

	rec := fx.do(http.MethodGet, "/admin/sellers", nil, userToken)

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Nil(t, decode(t, rec).Error.Details)
}

func TestAdmin_ListSellers(t *testing.T) {
	fx := createTestRouter(t, nil)

	fx.adminUC.EXPECT().ListSellers(mock.Anything, entity.SellerFilter{
		Status:     entity.VerificationPending,
		Pagination: entity.Pagination{Page: 2, Limit: 5},
	}).Return(&entity.Page[*entity.SellerProfile]{
		Items: []*entity.SellerProfile{{ID: uuid.New()}},
		Total: 11,
		Page:  2,
		Limit: 5,
	}, nil)

	rec := fx.do(http.MethodGet, "/admin/sellers?status=PENDING&page=2&limit=5", nil, adminToken)

	assert.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	env := decode(t, rec)
	require.NotNil(t, env.Meta.Pagination)
	assert.Equal(t, int64(11), env.Meta.Pagination.Total)
	assert.Equal(t, int64(3), env.Meta.Pagination.TotalPages)
}

func TestAdmin_UpdateSellerStatusRejectsUnknownStatus(t *testing.T) {
	fx := createTestRouter(t, nil)

	rec := fx.do(http.MethodPatch, "/admin/sellers/"+uuid.NewString()+"/status", map[string]any{"status": "MAYBE"}, adminToken)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	details, _ := decode(t, rec).Error.Details.(string)
	assert.Contains(t, details, "status must be one of")
}

func TestAdmin_InvalidIDParam(t *testing.T) {
	fx := createTestRouter(t, nil)

	rec := fx.do(http.MethodGet, "/admin/users/not-a-uuid", nil, adminToken)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestProperties_StaticRoutesWinOverID(t *testing.T) {
	fx := createTestRouter(t, nil)

	fx.propertyUC.EXPECT().Portfolio(mock.Anything, fx.sellerID).
		Return(&usecase.PortfolioOutput{Properties: []*entity.Property{{ID: uuid.New(), Views: 4}}, TotalViews: 4}, nil)
	fx.propertyUC.EXPECT().ListSaved(mock.Anything, fx.userID).Return([]*entity.Property{}, nil)

	rec := fx.do(http.MethodGet, "/properties/me", nil, sellerToken)
	assert.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var portfolio handler.PortfolioResponse
	require.NoError(t, json.Unmarshal(decode(t, rec).Data, &portfolio))
	assert.Equal(t, int64(4), portfolio.TotalViews)

	rec = fx.do(http.MethodGet, "/properties/saved", nil, userToken)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestProperties_CreateRequiresSeller(t *testing.T) {
	fx := createTestRouter(t, nil)

	rec := fx.do(http.MethodPost, "/properties", map[string]any{"title": "Flat"}, userToken)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestProperties_Create(t *testing.T) {
	fx := createTestRouter(t, nil)

	fx.propertyUC.EXPECT().Create(mock.Anything, fx.sellerID, mock.MatchedBy(func(in *usecase.CreatePropertyInput) bool {
		return in.Title == "Flat" && in.Price == 250000 &&
			in.Location != nil && in.Location.Latitude == 38.7 && in.Location.Longitude == -9.1 &&
			len(in.Features) == 2
	})).Return(&entity.Property{ID: uuid.New(), Title: "Flat"}, nil)

	rec := fx.do(http.MethodPost, "/properties", map[string]any{
		"title": "Flat", "category": "apartment", "description": "Bright",
		"price": 250000, "features": []string{"balcony", "lift"},
		"address": "Rua 1", "country": "PT", "state": "Lisboa", "city": "Lisboa", "zip": "1000",
		"latitude": 38.7, "longitude": -9.1,
	}, sellerToken)

	assert.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
}

func TestProperties_CreateNeedsBothCoordinates(t *testing.T) {
	fx := createTestRouter(t, nil)

	rec := fx.do(http.MethodPost, "/properties", map[string]any{
		"title": "Flat", "category": "apartment", "description": "Bright", "price": 1,
		"address": "Rua 1", "country": "PT", "state": "Lisboa", "city": "Lisboa", "zip": "1000",
		"latitude": 38.7,
	}, sellerToken)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestProperties_SearchParsesQuery(t *testing.T) {
	fx := createTestRouter(t, nil)

	fx.propertyUC.EXPECT().Search(mock.Anything, mock.MatchedBy(func(f entity.PropertyFilter) bool {
		return f.Category == "house" && f.Search == "garden" &&
			f.MinPrice != nil && *f.MinPrice == 100 && f.MaxPrice == nil &&
			f.Pagination.Page == 3
	})).Return(&entity.Page[*entity.Property]{Page: 3, Limit: 10}, nil)

	rec := fx.do(http.MethodGet, "/properties?category=house&search=garden&minPrice=100&page=3", nil, "")

	assert.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.JSONEq(t, `[]`, string(decode(t, rec).Data))
}

func TestProperties_SearchRejectsBadNumber(t *testing.T) {
	fx := createTestRouter(t, nil)

	rec := fx.do(http.MethodGet, "/properties?minPrice=cheap", nil, "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestProperties_Nearby(t *testing.T) {
	fx := createTestRouter(t, nil)

	fx.propertyUC.EXPECT().Nearby(mock.Anything, &usecase.NearbyInput{Latitude: 38.7, Longitude: -9.1, RadiusKm: 10}).
		Return([]*entity.NearbyProperty{{Property: &entity.Property{ID: uuid.New()}, DistanceKm: 1.5}}, nil)

	rec := fx.do(http.MethodGet, "/properties/nearby?lat=38.7&lng=-9.1", nil, "")
	assert.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var nearby []handler.NearbyPropertyResponse
	require.NoError(t, json.Unmarshal(decode(t, rec).Data, &nearby))
	require.Len(t, nearby, 1)
	assert.InDelta(t, 1.5, nearby[0].DistanceKm, 1e-9)

	rec = fx.do(http.MethodGet, "/properties/nearby?lng=-9.1", nil, "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestProperties_ShareQR(t *testing.T) {
	fx := createTestRouter(t, nil)
	propertyID := uuid.New()

	fx.propertyUC.EXPECT().ShareQR(mock.Anything, propertyID).Return([]byte("png-bytes"), nil)

	rec := fx.do(http.MethodGet, "/properties/"+propertyID.String()+"/qr", nil, "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))
	assert.Equal(t, "png-bytes", rec.Body.String())
}

func TestProperties_SaveConflict(t *testing.T) {
	fx := createTestRouter(t, nil)
	propertyID := uuid.New()

	fx.propertyUC.EXPECT().Save(mock.Anything, fx.userID, propertyID).Return(domainerrors.ErrPropertyAlreadySaved)

	rec := fx.do(http.MethodPost, "/properties/"+propertyID.String()+"/save", nil, userToken)

	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestNews_PublicListIsPublishedOnly(t *testing.T) {
	fx := createTestRouter(t, nil)

	fx.newsUC.EXPECT().List(mock.Anything, entity.NewsFilter{
		Category:      "market",
		PublishedOnly: true,
		Pagination:    entity.Pagination{Page: 1, Limit: 2},
	}).Return(&entity.Page[*entity.News]{Page: 1, Limit: 2}, nil)

	rec := fx.do(http.MethodGet, "/news?category=market&page=1&limit=2", nil, "")

	assert.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
}

func TestNews_CreateRequiresStaff(t *testing.T) {
	fx := createTestRouter(t, nil)

	rec := fx.do(http.MethodPost, "/news", map[string]any{"title": "x"}, sellerToken)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestNews_CreateKeepsContentVerbatim(t *testing.T) {
	fx := createTestRouter(t, nil)
	content := `{"blocks":[{"type":"paragraph","text":"hi"}]}`

	fx.newsUC.EXPECT().Create(mock.Anything, mock.MatchedBy(func(in *usecase.CreateNewsInput) bool {
		return in.Title == "Market update" && in.IsPublished && strings.Contains(string(in.Content), `"paragraph"`)
	})).Return(&entity.News{ID: uuid.New(), Title: "Market update", Content: json.RawMessage(content), IsPublished: true}, nil)

	rec := fx.do(http.MethodPost, "/news", map[string]any{
		"title": "Market update", "category": "market", "isPublished": true,
		"content": json.RawMessage(content),
	}, adminToken)

	assert.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
}

func TestNews_UpdateStatusRequiresFlag(t *testing.T) {
	fx := createTestRouter(t, nil)

	rec := fx.do(http.MethodPatch, "/news/"+uuid.NewString()+"/status", map[string]any{}, adminToken)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestContacts_PublicCreateAndStaffInbox(t *testing.T) {
	fx := createTestRouter(t, nil)

	fx.contactUC.EXPECT().Create(mock.Anything, &usecase.CreateContactInput{
		Name: "Ana", Email: "ana@example.com", Message: "Is the flat available?",
	}).Return(&entity.Contact{ID: uuid.New(), Name: "Ana"}, nil)
	fx.contactUC.EXPECT().List(mock.Anything, entity.ContactFilter{UnreadOnly: true}).
		Return(&entity.Page[*entity.Contact]{Page: 1, Limit: 20}, nil)

	rec := fx.do(http.MethodPost, "/contacts", map[string]any{
		"name": "Ana", "email": "ana@example.com", "message": "Is the flat available?",
	}, "")
	assert.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = fx.do(http.MethodGet, "/contacts?unreadOnly=true", nil, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = fx.do(http.MethodGet, "/contacts?unreadOnly=true", nil, adminToken)
	assert.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
}

func TestUnhandledErrorIsGeneric(t *testing.T) {
	fx := createTestRouter(t, nil)
	propertyID := uuid.New()

	fx.propertyUC.EXPECT().Get(mock.Anything, propertyID).Return(nil, assert.AnError)

	rec := fx.do(http.MethodGet, "/properties/"+propertyID.String(), nil, "")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	env := decode(t, rec)
	assert.Equal(t, "INTERNAL_ERROR", env.Error.Code)
	assert.NotContains(t, rec.Body.String(), assert.AnError.Error())
}
