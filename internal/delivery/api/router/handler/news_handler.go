package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"estate/internal/delivery/api/response"
	"estate/internal/domain/entity"
	domainerrors "estate/internal/domain/errors"
	"estate/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// NewsHandlerParams holds dependencies for NewsHandler, injected by Fx.
type NewsHandlerParams struct {
	fx.In

	NewsUC usecase.NewsUsecase
	Logger *slog.Logger
}

// NewsHandler serves editorial content.
type NewsHandler struct {
	newsUC usecase.NewsUsecase
	logger *slog.Logger
}

// NewNewsHandler is the constructor for NewsHandler
func NewNewsHandler(params NewsHandlerParams) *NewsHandler {
	return &NewsHandler{
		newsUC: params.NewsUC,
		logger: params.Logger,
	}
}

// CreateNewsRequest defines an article. The thumbnail arrives as a multipart file named "thumbnail".
type CreateNewsRequest struct {
	Title       string          `json:"title" validate:"required,max=300"`
	Location    string          `json:"location" validate:"max=200"`
	Category    string          `json:"category" validate:"required,max=64"`
	Content     json.RawMessage `json:"content" validate:"required"`
	IsPublished bool            `json:"isPublished"`
}

func (r *CreateNewsRequest) bindForm(form formValues) error {
	var err error
	r.Title = form.text("title")
	r.Location = form.text("location")
	r.Category = form.text("category")
	if content := form.raw("content"); content != "" {
		r.Content = json.RawMessage(content)
	}
	r.IsPublished, err = form.flag("isPublished")

	return err
}

// UpdateNewsRequest is a partial update; absent fields are left untouched.
type UpdateNewsRequest struct {
	Title    *string         `json:"title" validate:"omitempty,min=1,max=300"`
	Location *string         `json:"location" validate:"omitempty,max=200"`
	Category *string         `json:"category" validate:"omitempty,min=1,max=64"`
	Content  json.RawMessage `json:"content"`
}

func (r *UpdateNewsRequest) bindForm(form formValues) error {
	r.Title = form.optText("title")
	r.Location = form.optText("location")
	r.Category = form.optText("category")
	if content := form.raw("content"); content != "" {
		r.Content = json.RawMessage(content)
	}

	return nil
}

// UpdateNewsStatusRequest publishes or unpublishes an article.
type UpdateNewsStatusRequest struct {
	IsPublished *bool `json:"isPublished" validate:"required"`
}

// Create stores a new article.
func (h *NewsHandler) Create(c echo.Context) error {
	var req CreateNewsRequest
	if err := bindRequest(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	thumbnail, err := formImage(c, "thumbnail")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	news, err := h.newsUC.Create(c.Request().Context(), &usecase.CreateNewsInput{
		Title:       req.Title,
		Location:    req.Location,
		Category:    req.Category,
		Content:     req.Content,
		IsPublished: req.IsPublished,
		Thumbnail:   thumbnail,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, toNewsResponse(news))
}

// Update edits an article.
func (h *NewsHandler) Update(c echo.Context) error {
	newsID, err := paramUUID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req UpdateNewsRequest
	if err := bindRequest(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	thumbnail, err := formImage(c, "thumbnail")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	news, err := h.newsUC.Update(c.Request().Context(), newsID, &usecase.UpdateNewsInput{
		Title:     req.Title,
		Location:  req.Location,
		Category:  req.Category,
		Content:   req.Content,
		Thumbnail: thumbnail,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toNewsResponse(news))
}

// UpdateStatus publishes or unpublishes an article.
func (h *NewsHandler) UpdateStatus(c echo.Context) error {
	newsID, err := paramUUID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req UpdateNewsStatusRequest
	if err := bindJSON(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	news, err := h.newsUC.UpdateStatus(c.Request().Context(), newsID, *req.IsPublished)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toNewsResponse(news))
}

// Delete removes an article.
func (h *NewsHandler) Delete(c echo.Context) error {
	newsID, err := paramUUID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.newsUC.Delete(c.Request().Context(), newsID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Message(c, http.StatusOK, "news deleted")
}

// List returns published articles, newest first.
func (h *NewsHandler) List(c echo.Context) error {
	filter := entity.NewsFilter{PublishedOnly: true}

	err := echo.QueryParamsBinder(c).
		String("category", &filter.Category).
		Int("page", &filter.Pagination.Page).
		Int("limit", &filter.Pagination.Limit).
		BindError()
	if err != nil {
		return response.HandleAppError(c, domainerrors.ErrValidationFailed.WithDetails(err.Error()))
	}

	page, err := h.newsUC.List(c.Request().Context(), filter)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Paginated(c, toNewsResponses(page.Items), page.Page, page.Limit, page.Total)
}

// Get returns a published article with suggestions from its category.
func (h *NewsHandler) Get(c echo.Context) error {
	newsID, err := paramUUID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	detail, err := h.newsUC.Get(c.Request().Context(), newsID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, &NewsDetailResponse{
		NewsResponse: toNewsResponse(detail.News),
		Suggestions:  toNewsResponses(detail.Suggestions),
	})
}

// Recent returns the latest published articles.
func (h *NewsHandler) Recent(c echo.Context) error {
	var limit int
	if err := echo.QueryParamsBinder(c).Int("limit", &limit).BindError(); err != nil {
		return response.HandleAppError(c, domainerrors.ErrValidationFailed.WithDetails(err.Error()))
	}

	items, err := h.newsUC.Recent(c.Request().Context(), limit)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toNewsResponses(items))
}
