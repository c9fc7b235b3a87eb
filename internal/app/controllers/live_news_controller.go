package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/atlasmedia/newsdesk/internal/app/models/dto"
	"github.com/atlasmedia/newsdesk/internal/app/services"
	"github.com/atlasmedia/newsdesk/internal/middleware"
	"github.com/atlasmedia/newsdesk/internal/pkg/apperrors"
)

// LiveNewsController handles live news operations. Live news carries a stream
// URL in the JSON body, so there is no upload step on these routes.
type LiveNewsController struct {
	liveNewsService services.LiveNewsService
}

// NewLiveNewsController creates a new LiveNewsController
func NewLiveNewsController(liveNewsService services.LiveNewsService) *LiveNewsController {
	return &LiveNewsController{liveNewsService: liveNewsService}
}

// CreateLiveNews godoc
// @Summary Create a live news entry
// @Tags live-news
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param request body dto.CreateLiveNewsRequest true "Live news"
// @Success 201 {object} dto.APIResponse{data=models.LiveNews}
// @Failure 400 {object} dto.APIResponse
// @Failure 409 {object} dto.APIResponse
// @Router /live-news [post]
func (c *LiveNewsController) CreateLiveNews(ctx *gin.Context) {
	var req dto.CreateLiveNewsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	liveNews, err := c.liveNewsService.CreateLiveNews(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(http.StatusCreated, "Live news created successfully", liveNews))
}

// GetLiveNewsByID godoc
// @Summary Get a live news entry by ID
// @Tags live-news
// @Produce json
// @Param id path int true "Live news ID"
// @Success 200 {object} dto.APIResponse{data=models.LiveNews}
// @Failure 404 {object} dto.APIResponse
// @Router /live-news/{id} [get]
func (c *LiveNewsController) GetLiveNewsByID(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "id")
	if err != nil {
		middleware.HandleAPIError(ctx, apperrors.NewBadRequestError("Invalid live news ID"))
		return
	}

	liveNews, err := c.liveNewsService.GetLiveNewsByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(http.StatusOK, "Live news retrieved successfully", liveNews))
}

// ListLiveNews godoc
// @Summary List live news
// @Tags live-news
// @Produce json
// @Param page query int false "Page number (default: 1)"
// @Param limit query int false "Page size (default: 10, max: 100)"
// @Param query query string false "Name search"
// @Success 200 {object} dto.APIResponse{data=dto.PaginatedResponse}
// @Router /live-news [get]
func (c *LiveNewsController) ListLiveNews(ctx *gin.Context) {
	var q dto.ListQuery
	if err := ctx.ShouldBindQuery(&q); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	page, err := c.liveNewsService.ListLiveNews(ctx, q)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(http.StatusOK, "Live news retrieved successfully", page))
}

// GetAllLiveNews godoc
// @Summary Get all live news
// @Tags live-news
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]models.LiveNews}
// @Router /live-news/all [get]
func (c *LiveNewsController) GetAllLiveNews(ctx *gin.Context) {
	items, err := c.liveNewsService.GetAllLiveNews(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(http.StatusOK, "Live news retrieved successfully", items))
}

// UpdateLiveNews godoc
// @Summary Update a live news entry
// @Tags live-news
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Live news ID"
// @Param request body dto.UpdateLiveNewsRequest true "Fields to update"
// @Success 200 {object} dto.APIResponse{data=models.LiveNews}
// @Failure 404 {object} dto.APIResponse
// @Failure 409 {object} dto.APIResponse
// @Router /live-news/{id} [patch]
func (c *LiveNewsController) UpdateLiveNews(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "id")
	if err != nil {
		middleware.HandleAPIError(ctx, apperrors.NewBadRequestError("Invalid live news ID"))
		return
	}

	var req dto.UpdateLiveNewsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	liveNews, err := c.liveNewsService.UpdateLiveNews(ctx, id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(http.StatusOK, "Live news updated successfully", liveNews))
}

// DeleteLiveNews godoc
// @Summary Delete a live news entry
// @Tags live-news
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Live news ID"
// @Success 200 {object} dto.APIResponse
// @Failure 404 {object} dto.APIResponse
// @Router /live-news/{id} [delete]
func (c *LiveNewsController) DeleteLiveNews(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "id")
	if err != nil {
		middleware.HandleAPIError(ctx, apperrors.NewBadRequestError("Invalid live news ID"))
		return
	}

	if err := c.liveNewsService.DeleteLiveNews(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(http.StatusOK, "Live news deleted successfully", nil))
}
