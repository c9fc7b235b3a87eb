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

// AdController handles ad operations
type AdController struct {
	adService   services.AdService
	fileStorage filestorage.FileStorage
}

// NewAdController creates a new AdController
func NewAdController(adService services.AdService, fileStorage filestorage.FileStorage) *AdController {
	return &AdController{
		adService:   adService,
		fileStorage: fileStorage,
	}
}

// CreateAd godoc
// @Summary Create an ad
// @Tags ads
// @Accept multipart/form-data
// @Produce json
// @Security ApiKeyAuth
// @Param title formData string true "Title"
// @Param timestamp formData string true "Timestamp"
// @Param frequency formData string true "Frequency"
// @Param media formData file true "Media file"
// @Success 201 {object} dto.APIResponse{data=models.Ad}
// @Failure 400 {object} dto.APIResponse
// @Failure 409 {object} dto.APIResponse
// @Router /ads [post]
func (c *AdController) CreateAd(ctx *gin.Context) {
	var req dto.CreateAdRequest
	if err := ctx.ShouldBind(&req); err != nil {
		middleware.DiscardUploadedFiles(ctx, c.fileStorage)
		middleware.HandleBindingError(ctx, err)
		return
	}

	ad, err := c.adService.CreateAd(ctx, &req, middleware.UploadedFiles(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(http.StatusCreated, "Ad created successfully", ad))
}

// GetAdByID godoc
// @Summary Get an ad by ID
// @Tags ads
// @Produce json
// @Param id path int true "Ad ID"
// @Success 200 {object} dto.APIResponse{data=models.Ad}
// @Failure 404 {object} dto.APIResponse
// @Router /ads/{id} [get]
func (c *AdController) GetAdByID(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "id")
	if err != nil {
		middleware.HandleAPIError(ctx, apperrors.NewBadRequestError("Invalid ad ID"))
		return
	}

	ad, err := c.adService.GetAdByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(http.StatusOK, "Ad retrieved successfully", ad))
}

// ListAds godoc
// @Summary List ads
// @Tags ads
// @Produce json
// @Param page query int false "Page number (default: 1)"
// @Param limit query int false "Page size (default: 10, max: 100)"
// @Param query query string false "Title search"
// @Success 200 {object} dto.APIResponse{data=dto.PaginatedResponse}
// @Router /ads [get]
func (c *AdController) ListAds(ctx *gin.Context) {
	var q dto.ListQuery
	if err := ctx.ShouldBindQuery(&q); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	page, err := c.adService.ListAds(ctx, q)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(http.StatusOK, "Ads retrieved successfully", page))
}

// GetAllAds godoc
// @Summary Get all ads
// @Tags ads
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]models.Ad}
// @Router /ads/all [get]
func (c *AdController) GetAllAds(ctx *gin.Context) {
	items, err := c.adService.GetAllAds(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(http.StatusOK, "Ads retrieved successfully", items))
}

// UpdateAd godoc
// @Summary Update an ad
// @Tags ads
// @Accept multipart/form-data
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Ad ID"
// @Param title formData string false "Title"
// @Param timestamp formData string false "Timestamp"
// @Param frequency formData string false "Frequency"
// @Param media formData file false "Replacement media file"
// @Success 200 {object} dto.APIResponse{data=models.Ad}
// @Failure 404 {object} dto.APIResponse
// @Failure 409 {object} dto.APIResponse
// @Router /ads/{id} [patch]
func (c *AdController) UpdateAd(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "id")
	if err != nil {
		middleware.DiscardUploadedFiles(ctx, c.fileStorage)
		middleware.HandleAPIError(ctx, apperrors.NewBadRequestError("Invalid ad ID"))
		return
	}

	var req dto.UpdateAdRequest
	if err := ctx.ShouldBind(&req); err != nil {
		middleware.DiscardUploadedFiles(ctx, c.fileStorage)
		middleware.HandleBindingError(ctx, err)
		return
	}

	ad, err := c.adService.UpdateAd(ctx, id, &req, middleware.UploadedFiles(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(http.StatusOK, "Ad updated successfully", ad))
}

// DeleteAd godoc
// @Summary Delete an ad
// @Tags ads
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Ad ID"
// @Success 200 {object} dto.APIResponse
// @Failure 404 {object} dto.APIResponse
// @Router /ads/{id} [delete]
func (c *AdController) DeleteAd(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "id")
	if err != nil {
		middleware.HandleAPIError(ctx, apperrors.NewBadRequestError("Invalid ad ID"))
		return
	}

	if err := c.adService.DeleteAd(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(http.StatusOK, "Ad deleted successfully", nil))
}
