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

const defaultNearbyRadiusKm = 10

// PropertyHandlerParams holds dependencies for PropertyHandler, injected by Fx.
type PropertyHandlerParams struct {
	fx.In

	PropertyUC usecase.PropertyUsecase
	Logger     *slog.Logger
}

// PropertyHandler serves listings, discovery and bookmarks.
type PropertyHandler struct {
	propertyUC usecase.PropertyUsecase
	logger     *slog.Logger
}

// NewPropertyHandler is the constructor for PropertyHandler
func NewPropertyHandler(params PropertyHandlerParams) *PropertyHandler {
	return &PropertyHandler{
		propertyUC: params.PropertyUC,
		logger:     params.Logger,
	}
}

// CreatePropertyRequest defines a new listing. Images arrive as multipart files named "images".
type CreatePropertyRequest struct {
	Title       string   `json:"title" validate:"required,max=200"`
	Category    string   `json:"category" validate:"required,max=64"`
	Description string   `json:"description" validate:"required"`
	Price       float64  `json:"price" validate:"gte=0"`
	Features    []string `json:"features" validate:"omitempty,dive,max=100"`
	Address     string   `json:"address" validate:"required"`
	Country     string   `json:"country" validate:"required"`
	State       string   `json:"state" validate:"required"`
	City        string   `json:"city" validate:"required"`
	Zip         string   `json:"zip" validate:"required,max=16"`
	Latitude    *float64 `json:"latitude" validate:"required_with=Longitude"`
	Longitude   *float64 `json:"longitude" validate:"required_with=Latitude"`
}

func (r *CreatePropertyRequest) bindForm(form formValues) error {
	var err error
	r.Title = form.text("title")
	r.Category = form.text("category")
	r.Description = form.text("description")
	if r.Price, err = form.float("price"); err != nil {
		return err
	}
	r.Features = form.list("features")
	r.Address = form.text("address")
	r.Country = form.text("country")
	r.State = form.text("state")
	r.City = form.text("city")
	r.Zip = form.text("zip")
	if r.Latitude, err = form.optFloat("latitude"); err != nil {
		return err
	}
	r.Longitude, err = form.optFloat("longitude")

	return err
}

// UpdatePropertyRequest is a partial update; absent fields are left untouched.
type UpdatePropertyRequest struct {
	Title          *string  `json:"title" validate:"omitempty,min=1,max=200"`
	Category       *string  `json:"category" validate:"omitempty,min=1,max=64"`
	Description    *string  `json:"description" validate:"omitempty,min=1"`
	Price          *float64 `json:"price" validate:"omitempty,gte=0"`
	Features       []string `json:"features" validate:"omitempty,dive,max=100"`
	Address        *string  `json:"address"`
	Country        *string  `json:"country"`
	State          *string  `json:"state"`
	City           *string  `json:"city"`
	Zip            *string  `json:"zip" validate:"omitempty,max=16"`
	Latitude       *float64 `json:"latitude" validate:"required_with=Longitude"`
	Longitude      *float64 `json:"longitude" validate:"required_with=Latitude"`
	RemoveImageIDs []string `json:"removeImageIds"`
}

func (r *UpdatePropertyRequest) bindForm(form formValues) error {
	var err error
	r.Title = form.optText("title")
	r.Category = form.optText("category")
	r.Description = form.optText("description")
	if r.Price, err = form.optFloat("price"); err != nil {
		return err
	}
	r.Features = form.list("features")
	r.Address = form.optText("address")
	r.Country = form.optText("country")
	r.State = form.optText("state")
	r.City = form.optText("city")
	r.Zip = form.optText("zip")
	r.RemoveImageIDs = form.list("removeImageIds")
	if r.Latitude, err = form.optFloat("latitude"); err != nil {
		return err
	}
	r.Longitude, err = form.optFloat("longitude")

	return err
}

func geoPoint(lat, lng *float64) *entity.GeoPoint {
	if lat == nil || lng == nil {
		return nil
	}

	return &entity.GeoPoint{Latitude: *lat, Longitude: *lng}
}

// Create publishes a listing for the calling seller.
func (h *PropertyHandler) Create(c echo.Context) error {
	claims, err := claimsOf(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req CreatePropertyRequest
	if err := bindRequest(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	images, err := formImages(c, "images")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	input := &usecase.CreatePropertyInput{
		Title:       req.Title,
		Category:    req.Category,
		Description: req.Description,
		Price:       req.Price,
		Features:    req.Features,
		Address:     req.Address,
		Country:     req.Country,
		State:       req.State,
		City:        req.City,
		Zip:         req.Zip,
		Location:    geoPoint(req.Latitude, req.Longitude),
		Images:      images,
	}

	property, err := h.propertyUC.Create(c.Request().Context(), claims.AccountID, input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, toPropertyResponse(property))
}

// Update edits a listing owned by the caller.
func (h *PropertyHandler) Update(c echo.Context) error {
	claims, err := claimsOf(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	propertyID, err := paramUUID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req UpdatePropertyRequest
	if err := bindRequest(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	images, err := formImages(c, "images")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	input := &usecase.UpdatePropertyInput{
		Title:          req.Title,
		Category:       req.Category,
		Description:    req.Description,
		Price:          req.Price,
		Features:       req.Features,
		Address:        req.Address,
		Country:        req.Country,
		State:          req.State,
		City:           req.City,
		Zip:            req.Zip,
		Location:       geoPoint(req.Latitude, req.Longitude),
		NewImages:      images,
		RemoveImageIDs: req.RemoveImageIDs,
	}

	property, err := h.propertyUC.Update(c.Request().Context(), claims.AccountID, propertyID, input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toPropertyResponse(property))
}

// Delete removes a listing owned by the caller.
func (h *PropertyHandler) Delete(c echo.Context) error {
	claims, err := claimsOf(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	propertyID, err := paramUUID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.propertyUC.Delete(c.Request().Context(), claims.AccountID, propertyID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Message(c, http.StatusOK, "property deleted")
}

// Get returns one listing and counts the view.
func (h *PropertyHandler) Get(c echo.Context) error {
	propertyID, err := paramUUID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	property, err := h.propertyUC.Get(c.Request().Context(), propertyID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toPropertyResponse(property))
}

// ListBySeller returns every listing of one seller.
func (h *PropertyHandler) ListBySeller(c echo.Context) error {
	sellerID, err := paramUUID(c, "sellerId")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	properties, err := h.propertyUC.ListBySeller(c.Request().Context(), sellerID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toPropertyResponses(properties))
}

// Portfolio returns the caller's own listings with their total views.
func (h *PropertyHandler) Portfolio(c echo.Context) error {
	claims, err := claimsOf(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	out, err := h.propertyUC.Portfolio(c.Request().Context(), claims.AccountID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, &PortfolioResponse{
		Properties: toPropertyResponses(out.Properties),
		TotalViews: out.TotalViews,
	})
}

// Search is the public paginated listing search.
func (h *PropertyHandler) Search(c echo.Context) error {
	var (
		filter             entity.PropertyFilter
		minPrice, maxPrice float64
	)

	err := echo.QueryParamsBinder(c).
		String("category", &filter.Category).
		String("search", &filter.Search).
		Float64("minPrice", &minPrice).
		Float64("maxPrice", &maxPrice).
		Int("page", &filter.Pagination.Page).
		Int("limit", &filter.Pagination.Limit).
		BindError()
	if err != nil {
		return response.HandleAppError(c, domainerrors.ErrValidationFailed.WithDetails(err.Error()))
	}
	if c.QueryParam("minPrice") != "" {
		filter.MinPrice = &minPrice
	}
	if c.QueryParam("maxPrice") != "" {
		filter.MaxPrice = &maxPrice
	}

	page, err := h.propertyUC.Search(c.Request().Context(), filter)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Paginated(c, toPropertyResponses(page.Items), page.Page, page.Limit, page.Total)
}

// Trending returns the most viewed recent listings.
func (h *PropertyHandler) Trending(c echo.Context) error {
	var (
		category string
		limit    int
	)

	err := echo.QueryParamsBinder(c).
		String("category", &category).
		Int("limit", &limit).
		BindError()
	if err != nil {
		return response.HandleAppError(c, domainerrors.ErrValidationFailed.WithDetails(err.Error()))
	}

	properties, err := h.propertyUC.Trending(c.Request().Context(), category, limit)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toPropertyResponses(properties))
}

// Nearby returns listings within radiusKm of lat/lng, closest first.
func (h *PropertyHandler) Nearby(c echo.Context) error {
	input := usecase.NearbyInput{RadiusKm: defaultNearbyRadiusKm}

	err := echo.QueryParamsBinder(c).
		MustFloat64("lat", &input.Latitude).
		MustFloat64("lng", &input.Longitude).
		Float64("radiusKm", &input.RadiusKm).
		Int("limit", &input.Limit).
		BindError()
	if err != nil {
		return response.HandleAppError(c, domainerrors.ErrValidationFailed.WithDetails(err.Error()))
	}

	nearby, err := h.propertyUC.Nearby(c.Request().Context(), &input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	out := make([]*NearbyPropertyResponse, 0, len(nearby))
	for _, n := range nearby {
		out = append(out, &NearbyPropertyResponse{
			PropertyResponse: toPropertyResponse(n.Property),
			DistanceKm:       n.DistanceKm,
		})
	}

	return response.Success(c, http.StatusOK, out)
}

// Save bookmarks a listing for the caller.
func (h *PropertyHandler) Save(c echo.Context) error {
	claims, err := claimsOf(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	propertyID, err := paramUUID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.propertyUC.Save(c.Request().Context(), claims.AccountID, propertyID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Message(c, http.StatusCreated, "property saved")
}

// Unsave removes a bookmark.
func (h *PropertyHandler) Unsave(c echo.Context) error {
	claims, err := claimsOf(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	propertyID, err := paramUUID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.propertyUC.Unsave(c.Request().Context(), claims.AccountID, propertyID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Message(c, http.StatusOK, "property removed from saved list")
}

// ListSaved returns the caller's bookmarks.
func (h *PropertyHandler) ListSaved(c echo.Context) error {
	claims, err := claimsOf(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	properties, err := h.propertyUC.ListSaved(c.Request().Context(), claims.AccountID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toPropertyResponses(properties))
}

// ShareQR renders a PNG QR code pointing at the listing page.
func (h *PropertyHandler) ShareQR(c echo.Context) error {
	propertyID, err := paramUUID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	png, err := h.propertyUC.ShareQR(c.Request().Context(), propertyID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	c.Response().Header().Set(echo.HeaderContentDisposition, `inline; filename="property-`+propertyID.String()+`.png"`)

	return c.Blob(http.StatusOK, "image/png", png)
}
