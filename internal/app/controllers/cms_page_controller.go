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

// CMSPageController handles static cms page operations
type CMSPageController struct {
	cmsPageService services.CMSPageService
	fileStorage    filestorage.FileStorage
}

// NewCMSPageController creates a new CMSPageController
func NewCMSPageController(cmsPageService services.CMSPageService, fileStorage filestorage.FileStorage) *CMSPageController {
	return &CMSPageController{
		cmsPageService: cmsPageService,
		fileStorage:    fileStorage,
	}
}

// CreateCMSPage godoc
// @Summary Create a cms page
// @Tags cms-pages
// @Accept multipart/form-data
// @Produce json
// @Security ApiKeyAuth
// @Param title formData string true "Title"
// @Param description formData string true "Body content"
// @Param media formData file true "Media attachment"
// @Success 201 {object} dto.APIResponse{data=models.CMSPage}
// @Failure 400 {object} dto.APIResponse
// @Failure 409 {object} dto.APIResponse
// @Router /cms-pages [post]
func (c *CMSPageController) CreateCMSPage(ctx *gin.Context) {
	var req dto.CreateCMSPageRequest
	if err := ctx.ShouldBind(&req); err != nil {
		middleware.DiscardUploadedFiles(ctx, c.fileStorage)
		middleware.HandleBindingError(ctx, err)
		return
	}

	page, err := c.cmsPageService.CreateCMSPage(ctx, &req, middleware.UploadedFiles(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(http.StatusCreated, "CMS page created successfully", page))
}

// GetCMSPageByID godoc
// @Summary Get a cms page by ID
// @Tags cms-pages
// @Produce json
// @Param id path int true "CMS page ID"
// @Success 200 {object} dto.APIResponse{data=models.CMSPage}
// @Failure 404 {object} dto.APIResponse
// @Router /cms-pages/{id} [get]
func (c *CMSPageController) GetCMSPageByID(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "id")
	if err != nil {
		middleware.HandleAPIError(ctx, apperrors.NewBadRequestError("Invalid cms page ID"))
		return
	}

	page, err := c.cmsPageService.GetCMSPageByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(http.StatusOK, "CMS page retrieved successfully", page))
}

// ListCMSPages godoc
// @Summary List cms pages
// @Tags cms-pages
// @Produce json
// @Param page query int false "Page number (default: 1)"
// @Param limit query int false "Page size (default: 10, max: 100)"
// @Param query query string false "Title search"
// @Success 200 {object} dto.APIResponse{data=dto.PaginatedResponse}
// @Router /cms-pages [get]
func (c *CMSPageController) ListCMSPages(ctx *gin.Context) {
	var q dto.ListQuery
	if err := ctx.ShouldBindQuery(&q); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	page, err := c.cmsPageService.ListCMSPages(ctx, q)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(http.StatusOK, "CMS pages retrieved successfully", page))
}

// GetAllCMSPages godoc
// @Summary Get all cms pages
// @Tags cms-pages
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]models.CMSPage}
// @Router /cms-pages/all [get]
func (c *CMSPageController) GetAllCMSPages(ctx *gin.Context) {
	items, err := c.cmsPageService.GetAllCMSPages(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(http.StatusOK, "CMS pages retrieved successfully", items))
}

// UpdateCMSPage godoc
// @Summary Update a cms page
// @Tags cms-pages
// @Accept multipart/form-data
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "CMS page ID"
// @Param title formData string false "Title"
// @Param description formData string false "Body content"
// @Param media formData file false "Replacement media attachment"
// @Success 200 {object} dto.APIResponse{data=models.CMSPage}
// @Failure 404 {object} dto.APIResponse
// @Failure 409 {object} dto.APIResponse
// @Router /cms-pages/{id} [patch]
func (c *CMSPageController) UpdateCMSPage(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "id")
	if err != nil {
		middleware.DiscardUploadedFiles(ctx, c.fileStorage)
		middleware.HandleAPIError(ctx, apperrors.NewBadRequestError("Invalid cms page ID"))
		return
	}

	var req dto.UpdateCMSPageRequest
	if err := ctx.ShouldBind(&req); err != nil {
		middleware.DiscardUploadedFiles(ctx, c.fileStorage)
		middleware.HandleBindingError(ctx, err)
		return
	}

	page, err := c.cmsPageService.UpdateCMSPage(ctx, id, &req, middleware.UploadedFiles(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(http.StatusOK, "CMS page updated successfully", page))
}

// DeleteCMSPage godoc
// @Summary Delete a cms page
// @Tags cms-pages
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "CMS page ID"
// @Success 200 {object} dto.APIResponse
// @Failure 404 {object} dto.APIResponse
// @Router /cms-pages/{id} [delete]
func (c *CMSPageController) DeleteCMSPage(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "id")
	if err != nil {
		middleware.HandleAPIError(ctx, apperrors.NewBadRequestError("Invalid cms page ID"))
		return
	}

	if err := c.cmsPageService.DeleteCMSPage(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(http.StatusOK, "CMS page deleted successfully", nil))
}
