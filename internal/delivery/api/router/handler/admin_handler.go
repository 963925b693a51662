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

// AdminHandlerParams holds dependencies for AdminHandler, injected by Fx.
type AdminHandlerParams struct {
	fx.In

	AdminUC usecase.AdminUsecase
	Logger  *slog.Logger
}

// AdminHandler serves the back-office review of accounts and sellers.
type AdminHandler struct {
	adminUC usecase.AdminUsecase
	logger  *slog.Logger
}

// NewAdminHandler is the constructor for AdminHandler
func NewAdminHandler(params AdminHandlerParams) *AdminHandler {
	return &AdminHandler{
		adminUC: params.AdminUC,
		logger:  params.Logger,
	}
}

// ListSellersQuery filters the seller listing.
type ListSellersQuery struct {
	Status string `query:"status" validate:"omitempty,sellerstatus"`
	Page   int    `query:"page" validate:"gte=0"`
	Limit  int    `query:"limit" validate:"gte=0"`
}

// UpdateSellerStatusRequest sets the review state of a seller.
type UpdateSellerStatusRequest struct {
	Status string `json:"status" validate:"required,sellerstatus"`
}

// GetAccount returns any account by id.
func (h *AdminHandler) GetAccount(c echo.Context) error {
	accountID, err := paramUUID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	account, err := h.adminUC.GetAccount(c.Request().Context(), accountID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toAccountResponse(account))
}

// ListSellers returns one page of seller profiles.
func (h *AdminHandler) ListSellers(c echo.Context) error {
	var query ListSellersQuery
	if err := bindJSON(c, &query); err != nil {
		return response.HandleAppError(c, err)
	}

	filter := entity.SellerFilter{
		Status:     entity.VerificationStatus(query.Status),
		Pagination: entity.Pagination{Page: query.Page, Limit: query.Limit},
	}

	page, err := h.adminUC.ListSellers(c.Request().Context(), filter)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	sellers := make([]*SellerResponse, 0, len(page.Items))
	for _, seller := range page.Items {
		sellers = append(sellers, toSellerResponse(seller))
	}

	return response.Paginated(c, sellers, page.Page, page.Limit, page.Total)
}

// GetSeller returns one seller profile.
func (h *AdminHandler) GetSeller(c echo.Context) error {
	sellerID, err := paramUUID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	seller, err := h.adminUC.GetSeller(c.Request().Context(), sellerID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toSellerResponse(seller))
}

// UpdateSellerStatus approves, rejects or resets a seller.
func (h *AdminHandler) UpdateSellerStatus(c echo.Context) error {
	sellerID, err := paramUUID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req UpdateSellerStatusRequest
	if err := bindJSON(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	seller, err := h.adminUC.UpdateSellerStatus(c.Request().Context(), sellerID, entity.VerificationStatus(req.Status))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toSellerResponse(seller))
}

// DeleteSeller removes a seller profile with its listings.
func (h *AdminHandler) DeleteSeller(c echo.Context) error {
	sellerID, err := paramUUID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.adminUC.DeleteSeller(c.Request().Context(), sellerID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Message(c, http.StatusOK, "seller deleted")
}
