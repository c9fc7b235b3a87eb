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

// RSSFeedController handles rss feed operations
type RSSFeedController struct {
	rssFeedService services.RSSFeedService
	fileStorage    filestorage.FileStorage
}

// NewRSSFeedController creates a new RSSFeedController
func NewRSSFeedController(rssFeedService services.RSSFeedService, fileStorage filestorage.FileStorage) *RSSFeedController {
	return &RSSFeedController{
		rssFeedService: rssFeedService,
		fileStorage:    fileStorage,
	}
}

// CreateRSSFeed godoc
// @Summary Register an rss feed
// @Tags rss-feeds
// @Accept multipart/form-data
// @Produce json
// @Security ApiKeyAuth
// @Param name formData string true "Name"
// @Param title formData string true "Title"
// @Param url formData string true "Feed URL"
// @Param category formData string true "Category"
// @Param language formData string true "Language"
// @Param image formData file true "Cover image"
// @Success 201 {object} dto.APIResponse{data=models.RSSFeed}
// @Failure 400 {object} dto.APIResponse
// @Failure 409 {object} dto.APIResponse
// @Router /rss-feeds [post]
func (c *RSSFeedController) CreateRSSFeed(ctx *gin.Context) {
	var req dto.CreateRSSFeedRequest
	if err := ctx.ShouldBind(&req); err != nil {
		middleware.DiscardUploadedFiles(ctx, c.fileStorage)
		middleware.HandleBindingError(ctx, err)
		return
	}

	feed, err := c.rssFeedService.CreateRSSFeed(ctx, &req, middleware.UploadedFiles(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(http.StatusCreated, "RSS feed created successfully", feed))
}

// GetRSSFeedByID godoc
// @Summary Get an rss feed by ID
// @Tags rss-feeds
// @Produce json
// @Param id path int true "RSS feed ID"
// @Success 200 {object} dto.APIResponse{data=models.RSSFeed}
// @Failure 404 {object} dto.APIResponse
// @Router /rss-feeds/{id} [get]
func (c *RSSFeedController) GetRSSFeedByID(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "id")
	if err != nil {
		middleware.HandleAPIError(ctx, apperrors.NewBadRequestError("Invalid rss feed ID"))
		return
	}

	feed, err := c.rssFeedService.GetRSSFeedByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(http.StatusOK, "RSS feed retrieved successfully", feed))
}

// ListRSSFeeds godoc
// @Summary List rss feeds
// @Tags rss-feeds
// @Produce json
// @Param page query int false "Page number (default: 1)"
// @Param limit query int false "Page size (default: 10, max: 100)"
// @Param query query string false "Name or title search"
// @Success 200 {object} dto.APIResponse{data=dto.PaginatedResponse}
// @Router /rss-feeds [get]
func (c *RSSFeedController) ListRSSFeeds(ctx *gin.Context) {
	var q dto.ListQuery
	if err := ctx.ShouldBindQuery(&q); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	page, err := c.rssFeedService.ListRSSFeeds(ctx, q)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(http.StatusOK, "RSS feeds retrieved successfully", page))
}

// GetAllRSSFeeds godoc
// @Summary Get all rss feeds
// @Tags rss-feeds
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]models.RSSFeed}
// @Router /rss-feeds/all [get]
func (c *RSSFeedController) GetAllRSSFeeds(ctx *gin.Context) {
	items, err := c.rssFeedService.GetAllRSSFeeds(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(http.StatusOK, "RSS feeds retrieved successfully", items))
}

// UpdateRSSFeed godoc
// @Summary Update an rss feed
// @Tags rss-feeds
// @Accept multipart/form-data
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "RSS feed ID"
// @Param name formData string false "Name"
// @Param title formData string false "Title"
// @Param url formData string false "Feed URL"
// @Param category formData string false "Category"
// @Param language formData string false "Language"
// @Param image formData file false "Replacement cover image"
// @Success 200 {object} dto.APIResponse{data=models.RSSFeed}
// @Failure 404 {object} dto.APIResponse
// @Failure 409 {object} dto.APIResponse
// @Router /rss-feeds/{id} [patch]
func (c *RSSFeedController) UpdateRSSFeed(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "id")
	if err != nil {
		middleware.DiscardUploadedFiles(ctx, c.fileStorage)
		middleware.HandleAPIError(ctx, apperrors.NewBadRequestError("Invalid rss feed ID"))
		return
	}

	var req dto.UpdateRSSFeedRequest
	if err := ctx.ShouldBind(&req); err != nil {
		middleware.DiscardUploadedFiles(ctx, c.fileStorage)
		middleware.HandleBindingError(ctx, err)
		return
	}

	feed, err := c.rssFeedService.UpdateRSSFeed(ctx, id, &req, middleware.UploadedFiles(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(http.StatusOK, "RSS feed updated successfully", feed))
}

// DeleteRSSFeed godoc
// @Summary Delete an rss feed
// @Tags rss-feeds
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "RSS feed ID"
// @Success 200 {object} dto.APIResponse
// @Failure 404 {object} dto.APIResponse
// @Router /rss-feeds/{id} [delete]
func (c *RSSFeedController) DeleteRSSFeed(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "id")
	if err != nil {
		middleware.HandleAPIError(ctx, apperrors.NewBadRequestError("Invalid rss feed ID"))
		return
	}

	if err := c.rssFeedService.DeleteRSSFeed(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(http.StatusOK, "RSS feed deleted successfully", nil))
}
