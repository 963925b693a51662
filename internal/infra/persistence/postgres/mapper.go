package postgres

import (
	"encoding/json"

	"estate/internal/domain/entity"
	"estate/internal/infra/persistence/model"

	"gorm.io/datatypes"
)

func toAccountDomain(m *model.AccountModel) *entity.Account {
	account := &entity.Account{
		ID:              m.ID,
		Email:           m.Email,
		PasswordHash:    m.PasswordHash,
		Name:            m.Name,
		ImageURL:        m.ImageURL,
		ImagePublicID:   m.ImagePublicID,
		Language:        m.Language,
		Role:            entity.Role(m.Role),
		IsEmailVerified: m.IsEmailVerified,
		OTPHash:         m.OTPHash,
		OTPExpiresAt:    m.OTPExpiresAt,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
	if m.SellerProfile != nil {
		account.SellerProfile = toSellerProfileDomain(m.SellerProfile)
	}

	return account
}

func fromAccountDomain(a *entity.Account) *model.AccountModel {
	return &model.AccountModel{
		ID:              a.ID,
		Email:           a.Email,
		PasswordHash:    a.PasswordHash,
		Name:            a.Name,
		ImageURL:        a.ImageURL,
		ImagePublicID:   a.ImagePublicID,
		Language:        a.Language,
		Role:            string(a.Role),
		IsEmailVerified: a.IsEmailVerified,
		OTPHash:         a.OTPHash,
		OTPExpiresAt:    a.OTPExpiresAt,
		CreatedAt:       a.CreatedAt,
		UpdatedAt:       a.UpdatedAt,
	}
}

func toSellerProfileDomain(m *model.SellerProfileModel) *entity.SellerProfile {
	return &entity.SellerProfile{
		ID:               m.ID,
		AccountID:        m.AccountID,
		Status:           entity.VerificationStatus(m.Status),
		CompanyName:      m.CompanyName,
		CompanyWebsite:   m.CompanyWebsite,
		Phone:            m.Phone,
		Address:          m.Address,
		Country:          m.Country,
		State:            m.State,
		City:             m.City,
		Zip:              m.Zip,
		SubscriptionTier: entity.SubscriptionTier(m.SubscriptionTier),
		Document:         m.Document,
		CreatedAt:        m.CreatedAt,
		UpdatedAt:        m.UpdatedAt,
	}
}

func fromSellerProfileDomain(p *entity.SellerProfile) *model.SellerProfileModel {
	status := p.Status
	if status == "" {
		status = entity.VerificationPending
	}
	tier := p.SubscriptionTier
	if tier == "" {
		tier = entity.SubscriptionFree
	}

	return &model.SellerProfileModel{
		ID:               p.ID,
		AccountID:        p.AccountID,
		Status:           string(status),
		CompanyName:      p.CompanyName,
		CompanyWebsite:   p.CompanyWebsite,
		Phone:            p.Phone,
		Address:          p.Address,
		Country:          p.Country,
		State:            p.State,
		City:             p.City,
		Zip:              p.Zip,
		SubscriptionTier: string(tier),
		Document:         p.Document,
		CreatedAt:        p.CreatedAt,
		UpdatedAt:        p.UpdatedAt,
	}
}

func toPropertyDomain(m *model.PropertyModel) *entity.Property {
	property := &entity.Property{
		ID:          m.ID,
		SellerID:    m.SellerID,
		Title:       m.Title,
		Category:    m.Category,
		Description: m.Description,
		Price:       m.Price,
		Features:    append([]string{}, m.Features...),
		Address:     m.Address,
		Country:     m.Country,
		State:       m.State,
		City:        m.City,
		Zip:         m.Zip,
		Images:      make([]entity.Image, 0, len(m.Images)),
		Views:       m.Views,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
	for _, img := range m.Images {
		property.Images = append(property.Images, entity.Image{URL: img.URL, PublicID: img.PublicID})
	}
	if m.Latitude != nil && m.Longitude != nil {
		property.Location = &entity.GeoPoint{Latitude: *m.Latitude, Longitude: *m.Longitude}
	}

	return property
}

func fromPropertyDomain(p *entity.Property) *model.PropertyModel {
	images := make([]model.ImageRef, 0, len(p.Images))
	for _, img := range p.Images {
		images = append(images, model.ImageRef{URL: img.URL, PublicID: img.PublicID})
	}

	m := &model.PropertyModel{
		ID:          p.ID,
		SellerID:    p.SellerID,
		Title:       p.Title,
		Category:    p.Category,
		Description: p.Description,
		Price:       p.Price,
		Features:    datatypes.JSONSlice[string](append([]string{}, p.Features...)),
		Address:     p.Address,
		Country:     p.Country,
		State:       p.State,
		City:        p.City,
		Zip:         p.Zip,
		Images:      datatypes.JSONSlice[model.ImageRef](images),
		Views:       p.Views,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
	if p.Location != nil {
		lat, lng := p.Location.Latitude, p.Location.Longitude
		m.Latitude = &lat
		m.Longitude = &lng
	}

	return m
}

func toNewsDomain(m *model.NewsModel) *entity.News {
	return &entity.News{
		ID:               m.ID,
		Title:            m.Title,
		Thumbnail:        entity.Image{URL: m.ThumbnailURL, PublicID: m.ThumbnailPublicID},
		Location:         m.Location,
		Category:         m.Category,
		Content:          json.RawMessage(m.Content),
		IsPublished:      m.IsPublished,
		FirstPublishedAt: m.FirstPublishedAt,
		CreatedAt:        m.CreatedAt,
		UpdatedAt:        m.UpdatedAt,
	}
}

func fromNewsDomain(n *entity.News) *model.NewsModel {
	return &model.NewsModel{
		ID:                n.ID,
		Title:             n.Title,
		ThumbnailURL:      n.Thumbnail.URL,
		ThumbnailPublicID: n.Thumbnail.PublicID,
		Location:          n.Location,
		Category:          n.Category,
		Content:           datatypes.JSON(n.Content),
		IsPublished:       n.IsPublished,
		FirstPublishedAt:  n.FirstPublishedAt,
		CreatedAt:         n.CreatedAt,
		UpdatedAt:         n.UpdatedAt,
	}
}

func toContactDomain(m *model.ContactModel) *entity.Contact {
	return &entity.Contact{
		ID:        m.ID,
		Name:      m.Name,
		Email:     m.Email,
		Phone:     m.Phone,
		Country:   m.Country,
		Message:   m.Message,
		IsRead:    m.IsRead,
		CreatedAt: m.CreatedAt,
	}
}

func fromContactDomain(c *entity.Contact) *model.ContactModel {
	return &model.ContactModel{
		ID:        c.ID,
		Name:      c.Name,
		Email:     c.Email,
		Phone:     c.Phone,
		Country:   c.Country,
		Message:   c.Message,
		IsRead:    c.IsRead,
		CreatedAt: c.CreatedAt,
	}
}
