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

// ReporterController handles citizen reporter application operations
type ReporterController struct {
	reporterService services.ReporterService
	fileStorage     filestorage.FileStorage
}

// NewReporterController creates a new ReporterController
func NewReporterController(reporterService services.ReporterService, fileStorage filestorage.FileStorage) *ReporterController {
	return &ReporterController{
		reporterService: reporterService,
		fileStorage:     fileStorage,
	}
}

// CreateReporter godoc
// @Summary Apply as a citizen reporter
// @Tags reporters
// @Accept multipart/form-data
// @Produce json
// @Security ApiKeyAuth
// @Param name formData string true "Full name"
// @Param state formData string true "State"
// @Param district formData string true "District"
// @Param constituency formData string false "Constituency"
// @Param mandal formData string false "Mandal"
// @Param userId formData int true "Applying user ID"
// @Param image formData file false "Profile photo"
// @Success 201 {object} dto.APIResponse{data=models.Reporter}
// @Failure 400 {object} dto.APIResponse
// @Failure 409 {object} dto.APIResponse
// @Router /reporters [post]
func (c *ReporterController) CreateReporter(ctx *gin.Context) {
	var req dto.CreateReporterRequest
	if err := ctx.ShouldBind(&req); err != nil {
		middleware.DiscardUploadedFiles(ctx, c.fileStorage)
		middleware.HandleBindingError(ctx, err)
		return
	}

	reporter, err := c.reporterService.CreateReporter(ctx, &req, middleware.UploadedFiles(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(http.StatusCreated, "Reporter application created successfully", reporter))
}

// GetReporterByID godoc
// @Summary Get a reporter application by ID
// @Tags reporters
// @Produce json
// @Param id path int true "Reporter ID"
// @Success 200 {object} dto.APIResponse{data=models.Reporter}
// @Failure 404 {object} dto.APIResponse
// @Router /reporters/{id} [get]
func (c *ReporterController) GetReporterByID(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "id")
	if err != nil {
		middleware.HandleAPIError(ctx, apperrors.NewBadRequestError("Invalid reporter ID"))
		return
	}

	reporter, err := c.reporterService.GetReporterByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(http.StatusOK, "Reporter retrieved successfully", reporter))
}

// ListReporters godoc
// @Summary List reporter applications
// @Tags reporters
// @Produce json
// @Security ApiKeyAuth
// @Param page query int false "Page number (default: 1)"
// @Param limit query int false "Page size (default: 10, max: 100)"
// @Param query query string false "Name or district search"
// @Success 200 {object} dto.APIResponse{data=dto.PaginatedResponse}
// @Router /reporters [get]
func (c *ReporterController) ListReporters(ctx *gin.Context) {
	var q dto.ListQuery
	if err := ctx.ShouldBindQuery(&q); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	page, err := c.reporterService.ListReporters(ctx, q)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(http.StatusOK, "Reporters retrieved successfully", page))
}

// UpdateReporter godoc
// @Summary Update a reporter application
// @Tags reporters
// @Accept multipart/form-data
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Reporter ID"
// @Param name formData string false "Full name"
// @Param state formData string false "State"
// @Param district formData string false "District"
// @Param constituency formData string false "Constituency"
// @Param mandal formData string false "Mandal"
// @Param status formData string false "Application status" Enums(WAITING, APPROVED, REJECTED)
// @Param image formData file false "Replacement profile photo"
// @Success 200 {object} dto.APIResponse{data=models.Reporter}
// @Failure 404 {object} dto.APIResponse
// @Router /reporters/{id} [patch]
func (c *ReporterController) UpdateReporter(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "id")
	if err != nil {
		middleware.DiscardUploadedFiles(ctx, c.fileStorage)
		middleware.HandleAPIError(ctx, apperrors.NewBadRequestError("Invalid reporter ID"))
		return
	}

	var req dto.UpdateReporterRequest
	if err := ctx.ShouldBind(&req); err != nil {
		middleware.DiscardUploadedFiles(ctx, c.fileStorage)
		middleware.HandleBindingError(ctx, err)
		return
	}

	reporter, err := c.reporterService.UpdateReporter(ctx, id, &req, middleware.UploadedFiles(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(http.StatusOK, "Reporter updated successfully", reporter))
}

// DeleteReporter godoc
// @Summary Delete a reporter application
// @Tags reporters
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Reporter ID"
// @Success 200 {object} dto.APIResponse
// @Failure 404 {object} dto.APIResponse
// @Router /reporters/{id} [delete]
func (c *ReporterController) DeleteReporter(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "id")
	if err != nil {
		middleware.HandleAPIError(ctx, apperrors.NewBadRequestError("Invalid reporter ID"))
		return
	}

	if err := c.reporterService.DeleteReporter(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(http.StatusOK, "Reporter deleted successfully", nil))
}
