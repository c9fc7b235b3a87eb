package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/atlasmedia/newsdesk/internal/app/models/dto"
	"github.com/atlasmedia/newsdesk/internal/app/services"
	"github.com/atlasmedia/newsdesk/internal/middleware"
	"github.com/atlasmedia/newsdesk/internal/pkg/apperrors"
	"github.com/atlasmedia/newsdesk/internal/pkg/filestorage"
)

// NewsController handles news operations
type NewsController struct {
	newsService services.NewsService
	fileStorage filestorage.FileStorage
}

// NewNewsController creates a new NewsController
func NewNewsController(newsService services.NewsService, fileStorage filestorage.FileStorage) *NewsController {
	return &NewsController{
		newsService: newsService,
		fileStorage: fileStorage,
	}
}

// CreateNews godoc
// @Summary Create a news item
// @Description Create a news item with its cover image
// @Tags news
// @Accept multipart/form-data
// @Produce json
// @Security ApiKeyAuth
// @Param title formData string true "Title"
// @Param image formData file true "Cover image"
// @Success 201 {object} dto.APIResponse{data=models.News}
// @Failure 400 {object} dto.APIResponse
// @Failure 409 {object} dto.APIResponse
// @Router /news [post]
func (c *NewsController) CreateNews(ctx *gin.Context) {
	var req dto.CreateNewsRequest
	if err := ctx.ShouldBind(&req); err != nil {
		middleware.DiscardUploadedFiles(ctx, c.fileStorage)
		middleware.HandleBindingError(ctx, err)
		return
	}

	news, err := c.newsService.CreateNews(ctx, &req, middleware.UploadedFiles(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(http.StatusCreated, "News created successfully", news))
}

// GetNewsByID godoc
// @Summary Get a news item by ID
// @Tags news
// @Produce json
// @Param id path int true "News ID"
// @Success 200 {object} dto.APIResponse{data=models.News}
// @Failure 404 {object} dto.APIResponse
// @Router /news/{id} [get]
func (c *NewsController) GetNewsByID(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "id")
	if err != nil {
		middleware.HandleAPIError(ctx, apperrors.NewBadRequestError("Invalid news ID"))
		return
	}

	news, err := c.newsService.GetNewsByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(http.StatusOK, "News retrieved successfully", news))
}

// ListNews godoc
// @Summary List news
// @Description Get a paginated list of news with optional title search
// @Tags news
// @Produce json
// @Param page query int false "Page number (default: 1)"
// @Param limit query int false "Page size (default: 10, max: 100)"
// @Param query query string false "Title search"
// @Success 200 {object} dto.APIResponse{data=dto.PaginatedResponse}
// @Router /news [get]
func (c *NewsController) ListNews(ctx *gin.Context) {
	var q dto.ListQuery
	if err := ctx.ShouldBindQuery(&q); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	page, err := c.newsService.ListNews(ctx, q)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(http.StatusOK, "News retrieved successfully", page))
}

// GetAllNews godoc
// @Summary Get all news
// @Description Get every news item without pagination
// @Tags news
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]models.News}
// @Router /news/all [get]
func (c *NewsController) GetAllNews(ctx *gin.Context) {
	items, err := c.newsService.GetAllNews(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(http.StatusOK, "News retrieved successfully", items))
}

// UpdateNews godoc
// @Summary Update a news item
// @Description Update news fields and optionally replace the cover image
// @Tags news
// @Accept multipart/form-data
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "News ID"
// @Param title formData string false "Title"
// @Param image formData file false "Replacement cover image"
// @Success 200 {object} dto.APIResponse{data=models.News}
// @Failure 404 {object} dto.APIResponse
// @Failure 409 {object} dto.APIResponse
// @Router /news/{id} [patch]
func (c *NewsController) UpdateNews(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "id")
	if err != nil {
		middleware.DiscardUploadedFiles(ctx, c.fileStorage)
		middleware.HandleAPIError(ctx, apperrors.NewBadRequestError("Invalid news ID"))
		return
	}

	var req dto.UpdateNewsRequest
	if err := ctx.ShouldBind(&req); err != nil {
		middleware.DiscardUploadedFiles(ctx, c.fileStorage)
		middleware.HandleBindingError(ctx, err)
		return
	}

	news, err := c.newsService.UpdateNews(ctx, id, &req, middleware.UploadedFiles(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(http.StatusOK, "News updated successfully", news))
}

// DeleteNews godoc
// @Summary Delete a news item
// @Tags news
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "News ID"
// @Success 200 {object} dto.APIResponse
// @Failure 404 {object} dto.APIResponse
// @Router /news/{id} [delete]
func (c *NewsController) DeleteNews(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "id")
	if err != nil {
		middleware.HandleAPIError(ctx, apperrors.NewBadRequestError("Invalid news ID"))
		return
	}

	if err := c.newsService.DeleteNews(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(http.StatusOK, "News deleted successfully", nil))
}
