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

// AdvertisementController handles classified advertisement operations
type AdvertisementController struct {
	advertisementService services.AdvertisementService
	fileStorage          filestorage.FileStorage
}

// NewAdvertisementController creates a new AdvertisementController
func NewAdvertisementController(advertisementService services.AdvertisementService, fileStorage filestorage.FileStorage) *AdvertisementController {
	return &AdvertisementController{
		advertisementService: advertisementService,
		fileStorage:          fileStorage,
	}
}

// CreateAdvertisement godoc
// @Summary Submit a classified advertisement
// @Tags advertisements
// @Accept multipart/form-data
// @Produce json
// @Security ApiKeyAuth
// @Param advertisementType formData string true "Advertisement type"
// @Param postType formData string true "Post type"
// @Param bannerType formData string false "Banner type"
// @Param content formData string false "Advertisement text"
// @Param image formData file false "Advertisement image"
// @Success 201 {object} dto.APIResponse{data=models.Advertisement}
// @Failure 400 {object} dto.APIResponse
// @Router /advertisements [post]
func (c *AdvertisementController) CreateAdvertisement(ctx *gin.Context) {
	var req dto.CreateAdvertisementRequest
	if err := ctx.ShouldBind(&req); err != nil {
		middleware.DiscardUploadedFiles(ctx, c.fileStorage)
		middleware.HandleBindingError(ctx, err)
		return
	}

	advertisement, err := c.advertisementService.CreateAdvertisement(ctx, &req, middleware.UploadedFiles(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(http.StatusCreated, "Advertisement created successfully", advertisement))
}

// GetAdvertisementByID godoc
// @Summary Get a classified advertisement by ID
// @Tags advertisements
// @Produce json
// @Param id path int true "Advertisement ID"
// @Success 200 {object} dto.APIResponse{data=models.Advertisement}
// @Failure 404 {object} dto.APIResponse
// @Router /advertisements/{id} [get]
func (c *AdvertisementController) GetAdvertisementByID(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "id")
	if err != nil {
		middleware.HandleAPIError(ctx, apperrors.NewBadRequestError("Invalid advertisement ID"))
		return
	}

	advertisement, err := c.advertisementService.GetAdvertisementByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(http.StatusOK, "Advertisement retrieved successfully", advertisement))
}

// ListAdvertisements godoc
// @Summary List classified advertisements
// @Tags advertisements
// @Produce json
// @Param page query int false "Page number (default: 1)"
// @Param limit query int false "Page size (default: 10, max: 100)"
// @Param query query string false "Content or type search"
// @Success 200 {object} dto.APIResponse{data=dto.PaginatedResponse}
// @Router /advertisements [get]
func (c *AdvertisementController) ListAdvertisements(ctx *gin.Context) {
	var q dto.ListQuery
	if err := ctx.ShouldBindQuery(&q); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	page, err := c.advertisementService.ListAdvertisements(ctx, q)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(http.StatusOK, "Advertisements retrieved successfully", page))
}

// GetAllAdvertisements godoc
// @Summary Get all classified advertisements
// @Tags advertisements
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]models.Advertisement}
// @Router /advertisements/all [get]
func (c *AdvertisementController) GetAllAdvertisements(ctx *gin.Context) {
	items, err := c.advertisementService.GetAllAdvertisements(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(http.StatusOK, "Advertisements retrieved successfully", items))
}

// UpdateAdvertisement godoc
// @Summary Update a classified advertisement
// @Tags advertisements
// @Accept multipart/form-data
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Advertisement ID"
// @Param advertisementType formData string false "Advertisement type"
// @Param postType formData string false "Post type"
// @Param bannerType formData string false "Banner type"
// @Param content formData string false "Advertisement text"
// @Param status formData string false "Moderation status" Enums(PENDING, APPROVED, REJECTED)
// @Param image formData file false "Replacement advertisement image"
// @Success 200 {object} dto.APIResponse{data=models.Advertisement}
// @Failure 404 {object} dto.APIResponse
// @Router /advertisements/{id} [patch]
func (c *AdvertisementController) UpdateAdvertisement(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "id")
	if err != nil {
		middleware.DiscardUploadedFiles(ctx, c.fileStorage)
		middleware.HandleAPIError(ctx, apperrors.NewBadRequestError("Invalid advertisement ID"))
		return
	}

	var req dto.UpdateAdvertisementRequest
	if err := ctx.ShouldBind(&req); err != nil {
		middleware.DiscardUploadedFiles(ctx, c.fileStorage)
		middleware.HandleBindingError(ctx, err)
		return
	}

	advertisement, err := c.advertisementService.UpdateAdvertisement(ctx, id, &req, middleware.UploadedFiles(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(http.StatusOK, "Advertisement updated successfully", advertisement))
}

// DeleteAdvertisement godoc
// @Summary Delete a classified advertisement
// @Tags advertisements
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Advertisement ID"
// @Success 200 {object} dto.APIResponse
// @Failure 404 {object} dto.APIResponse
// @Router /advertisements/{id} [delete]
func (c *AdvertisementController) DeleteAdvertisement(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "id")
	if err != nil {
		middleware.HandleAPIError(ctx, apperrors.NewBadRequestError("Invalid advertisement ID"))
		return
	}

	if err := c.advertisementService.DeleteAdvertisement(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(http.StatusOK, "Advertisement deleted successfully", nil))
}
