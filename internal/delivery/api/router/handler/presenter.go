package handler

import (
	"encoding/json"
	"time"

	"estate/internal/domain/entity"
	"estate/internal/domain/service"
	"estate/internal/usecase"

	"github.com/google/uuid"
)

// AccountResponse is the client view of an account. Password and OTP digests never leave the server.
type AccountResponse struct {
	ID              uuid.UUID       `json:"id"`
	Email           string          `json:"email"`
	Name            string          `json:"name"`
	ImageURL        string          `json:"imageUrl,omitempty"`
	Language        string          `json:"language,omitempty"`
	Role            entity.Role     `json:"role"`
	IsEmailVerified bool            `json:"isEmailVerified"`
	Seller          *SellerResponse `json:"seller,omitempty"`
	CreatedAt       time.Time       `json:"createdAt"`
	UpdatedAt       time.Time       `json:"updatedAt"`
}

// SellerResponse is the client view of a seller profile.
type SellerResponse struct {
	ID               uuid.UUID                 `json:"id"`
	AccountID        uuid.UUID                 `json:"accountId"`
	Status           entity.VerificationStatus `json:"status"`
	CompanyName      string                    `json:"companyName"`
	CompanyWebsite   string                    `json:"companyWebsite,omitempty"`
	Phone            string                    `json:"phone"`
	Address          string                    `json:"address"`
	Country          string                    `json:"country"`
	State            string                    `json:"state"`
	City             string                    `json:"city"`
	Zip              string                    `json:"zip"`
	SubscriptionTier entity.SubscriptionTier   `json:"subscriptionTier"`
	Document         string                    `json:"document,omitempty"`
	CreatedAt        time.Time                 `json:"createdAt"`
	UpdatedAt        time.Time                 `json:"updatedAt"`
}

// TokenResponse carries a freshly issued token pair.
type TokenResponse struct {
	TokenType        string    `json:"tokenType"`
	AccessToken      string    `json:"accessToken"`
	RefreshToken     string    `json:"refreshToken"`
	AccessExpiresAt  time.Time `json:"accessExpiresAt"`
	RefreshExpiresAt time.Time `json:"refreshExpiresAt"`
}

// LoginResponse is returned by login and refresh.
type LoginResponse struct {
	Account *AccountResponse `json:"account"`
	Tokens  *TokenResponse   `json:"tokens"`
}

// LocationResponse is a WGS84 coordinate.
type LocationResponse struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// PropertyResponse is the public view of a listing.
type PropertyResponse struct {
	ID          uuid.UUID         `json:"id"`
	SellerID    uuid.UUID         `json:"sellerId"`
	Title       string            `json:"title"`
	Category    string            `json:"category"`
	Description string            `json:"description"`
	Price       float64           `json:"price"`
	Features    []string          `json:"features"`
	Address     string            `json:"address"`
	Country     string            `json:"country"`
	State       string            `json:"state"`
	City        string            `json:"city"`
	Zip         string            `json:"zip"`
	Location    *LocationResponse `json:"location,omitempty"`
	Images      []entity.Image    `json:"images"`
	Views       int64             `json:"views"`
	CreatedAt   time.Time         `json:"createdAt"`
	UpdatedAt   time.Time         `json:"updatedAt"`
}

// NearbyPropertyResponse adds the distance from the query point.
type NearbyPropertyResponse struct {
	*PropertyResponse
	DistanceKm float64 `json:"distanceKm"`
}

// PortfolioResponse is a seller's own listings.
type PortfolioResponse struct {
	Properties []*PropertyResponse `json:"properties"`
	TotalViews int64               `json:"totalViews"`
}

// NewsResponse is the view of an article.
type NewsResponse struct {
	ID               uuid.UUID       `json:"id"`
	Title            string          `json:"title"`
	Thumbnail        entity.Image    `json:"thumbnail"`
	Location         string          `json:"location"`
	Category         string          `json:"category"`
	Content          json.RawMessage `json:"content"`
	IsPublished      bool            `json:"isPublished"`
	FirstPublishedAt *time.Time      `json:"firstPublishedAt,omitempty"`
	CreatedAt        time.Time       `json:"createdAt"`
	UpdatedAt        time.Time       `json:"updatedAt"`
}

// NewsDetailResponse is an article with related suggestions.
type NewsDetailResponse struct {
	*NewsResponse
	Suggestions []*NewsResponse `json:"suggestions"`
}

// ContactResponse is one inbox message.
type ContactResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone,omitempty"`
	Country   string    `json:"country,omitempty"`
	Message   string    `json:"message"`
	IsRead    bool      `json:"isRead"`
	CreatedAt time.Time `json:"createdAt"`
}

func toAccountResponse(account *entity.Account) *AccountResponse {
	if account == nil {
		return nil
	}

	return &AccountResponse{
		ID:              account.ID,
		Email:           account.Email,
		Name:            account.Name,
		ImageURL:        account.ImageURL,
		Language:        account.Language,
		Role:            account.Role,
		IsEmailVerified: account.IsEmailVerified,
		Seller:          toSellerResponse(account.SellerProfile),
		CreatedAt:       account.CreatedAt,
		UpdatedAt:       account.UpdatedAt,
	}
}

func toSellerResponse(seller *entity.SellerProfile) *SellerResponse {
	if seller == nil {
		return nil
	}

	return &SellerResponse{
		ID:               seller.ID,
		AccountID:        seller.AccountID,
		Status:           seller.Status,
		CompanyName:      seller.CompanyName,
		CompanyWebsite:   seller.CompanyWebsite,
		Phone:            seller.Phone,
		Address:          seller.Address,
		Country:          seller.Country,
		State:            seller.State,
		City:             seller.City,
		Zip:              seller.Zip,
		SubscriptionTier: seller.SubscriptionTier,
		Document:         seller.Document,
		CreatedAt:        seller.CreatedAt,
		UpdatedAt:        seller.UpdatedAt,
	}
}

func toLoginResponse(out *usecase.LoginOutput) *LoginResponse {
	return &LoginResponse{
		Account: toAccountResponse(out.Account),
		Tokens:  toTokenResponse(out.Tokens),
	}
}

func toTokenResponse(tokens *service.TokenPair) *TokenResponse {
	if tokens == nil {
		return nil
	}

	return &TokenResponse{
		TokenType:        "Bearer",
		AccessToken:      tokens.AccessToken,
		RefreshToken:     tokens.RefreshToken,
		AccessExpiresAt:  tokens.AccessExpiresAt,
		RefreshExpiresAt: tokens.RefreshExpiresAt,
	}
}

func toPropertyResponse(property *entity.Property) *PropertyResponse {
	if property == nil {
		return nil
	}

	resp := &PropertyResponse{
		ID:          property.ID,
		SellerID:    property.SellerID,
		Title:       property.Title,
		Category:    property.Category,
		Description: property.Description,
		Price:       property.Price,
		Features:    property.Features,
		Address:     property.Address,
		Country:     property.Country,
		State:       property.State,
		City:        property.City,
		Zip:         property.Zip,
		Images:      property.Images,
		Views:       property.Views,
		CreatedAt:   property.CreatedAt,
		UpdatedAt:   property.UpdatedAt,
	}
	if resp.Features == nil {
		resp.Features = []string{}
	}
	if resp.Images == nil {
		resp.Images = []entity.Image{}
	}
	if property.Location != nil {
		resp.Location = &LocationResponse{
			Latitude:  property.Location.Latitude,
			Longitude: property.Location.Longitude,
		}
	}

	return resp
}

func toPropertyResponses(properties []*entity.Property) []*PropertyResponse {
	out := make([]*PropertyResponse, 0, len(properties))
	for _, p := range properties {
		out = append(out, toPropertyResponse(p))
	}

	return out
}

func toNewsResponse(news *entity.News) *NewsResponse {
	if news == nil {
		return nil
	}

	return &NewsResponse{
		ID:               news.ID,
		Title:            news.Title,
		Thumbnail:        news.Thumbnail,
		Location:         news.Location,
		Category:         news.Category,
		Content:          news.Content,
		IsPublished:      news.IsPublished,
		FirstPublishedAt: news.FirstPublishedAt,
		CreatedAt:        news.CreatedAt,
		UpdatedAt:        news.UpdatedAt,
	}
}

func toNewsResponses(items []*entity.News) []*NewsResponse {
	out := make([]*NewsResponse, 0, len(items))
	for _, n := range items {
		out = append(out, toNewsResponse(n))
	}

	return out
}

func toContactResponse(contact *entity.Contact) *ContactResponse {
	if contact == nil {
		return nil
	}

	return &ContactResponse{
		ID:        contact.ID,
		Name:      contact.Name,
		Email:     contact.Email,
		Phone:     contact.Phone,
		Country:   contact.Country,
		Message:   contact.Message,
		IsRead:    contact.IsRead,
		CreatedAt: contact.CreatedAt,
	}
}
