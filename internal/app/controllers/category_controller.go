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

// CategoryController handles category operations
type CategoryController struct {
	categoryService services.CategoryService
	fileStorage     filestorage.FileStorage
}

// NewCategoryController creates a new CategoryController
func NewCategoryController(categoryService services.CategoryService, fileStorage filestorage.FileStorage) *CategoryController {
	return &CategoryController{
		categoryService: categoryService,
		fileStorage:     fileStorage,
	}
}

// CreateCategory godoc
// @Summary Create a category
// @Tags categories
// @Accept multipart/form-data
// @Produce json
// @Security ApiKeyAuth
// @Param name formData string true "Name"
// @Param mainCategory formData string true "Main category"
// @Param image formData file true "Image"
// @Success 201 {object} dto.APIResponse{data=models.Category}
// @Failure 400 {object} dto.APIResponse
// @Failure 409 {object} dto.APIResponse
// @Router /categories [post]
func (c *CategoryController) CreateCategory(ctx *gin.Context) {
	var req dto.CreateCategoryRequest
	if err := ctx.ShouldBind(&req); err != nil {
		middleware.DiscardUploadedFiles(ctx, c.fileStorage)
		middleware.HandleBindingError(ctx, err)
		return
	}

	category, err := c.categoryService.CreateCategory(ctx, &req, middleware.UploadedFiles(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(http.StatusCreated, "Category created successfully", category))
}

// GetCategoryByID godoc
// @Summary Get a category by ID
// @Tags categories
// @Produce json
// @Param id path int true "Category ID"
// @Success 200 {object} dto.APIResponse{data=models.Category}
// @Failure 404 {object} dto.APIResponse
// @Router /categories/{id} [get]
func (c *CategoryController) GetCategoryByID(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "id")
	if err != nil {
		middleware.HandleAPIError(ctx, apperrors.NewBadRequestError("Invalid category ID"))
		return
	}

	category, err := c.categoryService.GetCategoryByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(http.StatusOK, "Category retrieved successfully", category))
}

// ListCategories godoc
// @Summary List categories
// @Tags categories
// @Produce json
// @Param page query int false "Page number (default: 1)"
// @Param limit query int false "Page size (default: 10, max: 100)"
// @Param query query string false "Name or main category search"
// @Success 200 {object} dto.APIResponse{data=dto.PaginatedResponse}
// @Router /categories [get]
func (c *CategoryController) ListCategories(ctx *gin.Context) {
	var q dto.ListQuery
	if err := ctx.ShouldBindQuery(&q); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	page, err := c.categoryService.ListCategories(ctx, q)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(http.StatusOK, "Categories retrieved successfully", page))
}

// GetAllCategories godoc
// @Summary Get all categories
// @Tags categories
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]models.Category}
// @Router /categories/all [get]
func (c *CategoryController) GetAllCategories(ctx *gin.Context) {
	items, err := c.categoryService.GetAllCategories(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(http.StatusOK, "Categories retrieved successfully", items))
}

// UpdateCategory godoc
// @Summary Update a category
// @Tags categories
// @Accept multipart/form-data
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Category ID"
// @Param name formData string false "Name"
// @Param mainCategory formData string false "Main category"
// @Param image formData file false "Replacement image"
// @Success 200 {object} dto.APIResponse{data=models.Category}
// @Failure 404 {object} dto.APIResponse
// @Failure 409 {object} dto.APIResponse
// @Router /categories/{id} [patch]
func (c *CategoryController) UpdateCategory(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "id")
	if err != nil {
		middleware.DiscardUploadedFiles(ctx, c.fileStorage)
		middleware.HandleAPIError(ctx, apperrors.NewBadRequestError("Invalid category ID"))
		return
	}

	var req dto.UpdateCategoryRequest
	if err := ctx.ShouldBind(&req); err != nil {
		middleware.DiscardUploadedFiles(ctx, c.fileStorage)
		middleware.HandleBindingError(ctx, err)
		return
	}

	category, err := c.categoryService.UpdateCategory(ctx, id, &req, middleware.UploadedFiles(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(http.StatusOK, "Category updated successfully", category))
}

// DeleteCategory godoc
// @Summary Delete a category
// @Tags categories
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Category ID"
// @Success 200 {object} dto.APIResponse
// @Failure 404 {object} dto.APIResponse
// @Router /categories/{id} [delete]
func (c *CategoryController) DeleteCategory(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "id")
	if err != nil {
		middleware.HandleAPIError(ctx, apperrors.NewBadRequestError("Invalid category ID"))
		return
	}

	if err := c.categoryService.DeleteCategory(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(http.StatusOK, "Category deleted successfully", nil))
}
