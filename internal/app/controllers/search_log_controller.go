package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/atlasmedia/newsdesk/internal/app/models/dto"
	"github.com/atlasmedia/newsdesk/internal/app/services"
	"github.com/atlasmedia/newsdesk/internal/middleware"
	"github.com/atlasmedia/newsdesk/internal/pkg/apperrors"
)

// SearchLogController handles search term tracking operations
type SearchLogController struct {
	searchLogService services.SearchLogService
}

// NewSearchLogController creates a new SearchLogController
func NewSearchLogController(searchLogService services.SearchLogService) *SearchLogController {
	return &SearchLogController{searchLogService: searchLogService}
}

// RecordSearch godoc
// @Summary Record a search term
// @Tags search-logs
// @Accept json
// @Produce json
// @Param request body dto.CreateSearchLogRequest true "Search term"
// @Success 201 {object} dto.APIResponse{data=models.SearchLog}
// @Failure 400 {object} dto.APIResponse
// @Router /search-logs [post]
func (c *SearchLogController) RecordSearch(ctx *gin.Context) {
	var req dto.CreateSearchLogRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	log, err := c.searchLogService.RecordSearch(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(http.StatusCreated, "Search recorded successfully", log))
}

// GetSearchLogByID godoc
// @Summary Get a search log by ID
// @Tags search-logs
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Search log ID"
// @Success 200 {object} dto.APIResponse{data=models.SearchLog}
// @Failure 404 {object} dto.APIResponse
// @Router /search-logs/{id} [get]
func (c *SearchLogController) GetSearchLogByID(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "id")
	if err != nil {
		middleware.HandleAPIError(ctx, apperrors.NewBadRequestError("Invalid search log ID"))
		return
	}

	log, err := c.searchLogService.GetSearchLogByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(http.StatusOK, "Search log retrieved successfully", log))
}

// ListSearchLogs godoc
// @Summary List search logs by popularity
// @Tags search-logs
// @Produce json
// @Security ApiKeyAuth
// @Param page query int false "Page number (default: 1)"
// @Param limit query int false "Page size (default: 10, max: 100)"
// @Param query query string false "Term search"
// @Success 200 {object} dto.APIResponse{data=dto.PaginatedResponse}
// @Router /search-logs [get]
func (c *SearchLogController) ListSearchLogs(ctx *gin.Context) {
	var q dto.ListQuery
	if err := ctx.ShouldBindQuery(&q); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	page, err := c.searchLogService.ListSearchLogs(ctx, q)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(http.StatusOK, "Search logs retrieved successfully", page))
}

// UpdateSearchLog godoc
// @Summary Update a search log
// @Tags search-logs
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Search log ID"
// @Param request body dto.UpdateSearchLogRequest true "Fields to update"
// @Success 200 {object} dto.APIResponse{data=models.SearchLog}
// @Failure 404 {object} dto.APIResponse
// @Failure 409 {object} dto.APIResponse
// @Router /search-logs/{id} [patch]
func (c *SearchLogController) UpdateSearchLog(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "id")
	if err != nil {
		middleware.HandleAPIError(ctx, apperrors.NewBadRequestError("Invalid search log ID"))
		return
	}

	var req dto.UpdateSearchLogRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	log, err := c.searchLogService.UpdateSearchLog(ctx, id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(http.StatusOK, "Search log updated successfully", log))
}

// DeleteSearchLog godoc
// @Summary Delete a search log
// @Tags search-logs
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Search log ID"
// @Success 200 {object} dto.APIResponse
// @Failure 404 {object} dto.APIResponse
// @Router /search-logs/{id} [delete]
func (c *SearchLogController) DeleteSearchLog(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "id")
	if err != nil {
		middleware.HandleAPIError(ctx, apperrors.NewBadRequestError("Invalid search log ID"))
		return
	}

	if err := c.searchLogService.DeleteSearchLog(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(http.StatusOK, "Search log deleted successfully", nil))
}
