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

// EPaperController handles e-paper edition operations
type EPaperController struct {
	epaperService services.EPaperService
	fileStorage   filestorage.FileStorage
}

// NewEPaperController creates a new EPaperController
func NewEPaperController(epaperService services.EPaperService, fileStorage filestorage.FileStorage) *EPaperController {
	return &EPaperController{
		epaperService: epaperService,
		fileStorage:   fileStorage,
	}
}

// CreateEPaper godoc
// @Summary Publish an e-paper edition
// @Tags epapers
// @Accept multipart/form-data
// @Produce json
// @Security ApiKeyAuth
// @Param name formData string true "Edition name"
// @Param media formData file true "Cover image"
// @Param pdf formData file true "Edition PDF"
// @Success 201 {object} dto.APIResponse{data=models.EPaper}
// @Failure 400 {object} dto.APIResponse
// @Failure 409 {object} dto.APIResponse
// @Router /epapers [post]
func (c *EPaperController) CreateEPaper(ctx *gin.Context) {
	var req dto.CreateEPaperRequest
	if err := ctx.ShouldBind(&req); err != nil {
		middleware.DiscardUploadedFiles(ctx, c.fileStorage)
		middleware.HandleBindingError(ctx, err)
		return
	}

	epaper, err := c.epaperService.CreateEPaper(ctx, &req, middleware.UploadedFiles(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(http.StatusCreated, "E-paper created successfully", epaper))
}

// GetEPaperByID godoc
// @Summary Get an e-paper edition by ID
// @Tags epapers
// @Produce json
// @Param id path int true "E-paper ID"
// @Success 200 {object} dto.APIResponse{data=models.EPaper}
// @Failure 404 {object} dto.APIResponse
// @Router /epapers/{id} [get]
func (c *EPaperController) GetEPaperByID(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "id")
	if err != nil {
		middleware.HandleAPIError(ctx, apperrors.NewBadRequestError("Invalid e-paper ID"))
		return
	}

	epaper, err := c.epaperService.GetEPaperByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(http.StatusOK, "E-paper retrieved successfully", epaper))
}

// ListEPapers godoc
// @Summary List e-paper editions
// @Tags epapers
// @Produce json
// @Param page query int false "Page number (default: 1)"
// @Param limit query int false "Page size (default: 10, max: 100)"
// @Param query query string false "Name search"
// @Success 200 {object} dto.APIResponse{data=dto.PaginatedResponse}
// @Router /epapers [get]
func (c *EPaperController) ListEPapers(ctx *gin.Context) {
	var q dto.ListQuery
	if err := ctx.ShouldBindQuery(&q); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	page, err := c.epaperService.ListEPapers(ctx, q)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(http.StatusOK, "E-papers retrieved successfully", page))
}

// GetAllEPapers godoc
// @Summary Get all e-paper editions
// @Tags epapers
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]models.EPaper}
// @Router /epapers/all [get]
func (c *EPaperController) GetAllEPapers(ctx *gin.Context) {
	items, err := c.epaperService.GetAllEPapers(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(http.StatusOK, "E-papers retrieved successfully", items))
}

// UpdateEPaper godoc
// @Summary Update an e-paper edition
// @Tags epapers
// @Accept multipart/form-data
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "E-paper ID"
// @Param name formData string false "Edition name"
// @Param media formData file false "Replacement cover image"
// @Param pdf formData file false "Replacement edition PDF"
// @Success 200 {object} dto.APIResponse{data=models.EPaper}
// @Failure 404 {object} dto.APIResponse
// @Failure 409 {object} dto.APIResponse
// @Router /epapers/{id} [patch]
func (c *EPaperController) UpdateEPaper(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "id")
	if err != nil {
		middleware.DiscardUploadedFiles(ctx, c.fileStorage)
		middleware.HandleAPIError(ctx, apperrors.NewBadRequestError("Invalid e-paper ID"))
		return
	}

	var req dto.UpdateEPaperRequest
	if err := ctx.ShouldBind(&req); err != nil {
		middleware.DiscardUploadedFiles(ctx, c.fileStorage)
		middleware.HandleBindingError(ctx, err)
		return
	}

	epaper, err := c.epaperService.UpdateEPaper(ctx, id, &req, middleware.UploadedFiles(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(http.StatusOK, "E-paper updated successfully", epaper))
}

// DeleteEPaper godoc
// @Summary Delete an e-paper edition
// @Tags epapers
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "E-paper ID"
// @Success 200 {object} dto.APIResponse
// @Failure 404 {object} dto.APIResponse
// @Router /epapers/{id} [delete]
func (c *EPaperController) DeleteEPaper(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "id")
	if err != nil {
		middleware.HandleAPIError(ctx, apperrors.NewBadRequestError("Invalid e-paper ID"))
		return
	}

	if err := c.epaperService.DeleteEPaper(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(http.StatusOK, "E-paper deleted successfully", nil))
}
