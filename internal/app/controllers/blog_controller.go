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

// BlogController handles blog operations
type BlogController struct {
	blogService services.BlogService
	fileStorage filestorage.FileStorage
}

// NewBlogController creates a new BlogController
func NewBlogController(blogService services.BlogService, fileStorage filestorage.FileStorage) *BlogController {
	return &BlogController{
		blogService: blogService,
		fileStorage: fileStorage,
	}
}

// CreateBlog godoc
// @Summary Create a blog entry
// @Tags blogs
// @Accept multipart/form-data
// @Produce json
// @Security ApiKeyAuth
// @Param title formData string true "Title"
// @Param visibility formData string true "Visibility"
// @Param publishDateTime formData string false "Publish date (RFC 3339)"
// @Param status formData string true "Status (DRAFT, PUBLISHED, ARCHIVED)"
// @Param type formData string true "Type"
// @Param image formData file true "Cover image"
// @Success 201 {object} dto.APIResponse{data=models.Blog}
// @Failure 400 {object} dto.APIResponse
// @Failure 409 {object} dto.APIResponse
// @Router /blogs [post]
func (c *BlogController) CreateBlog(ctx *gin.Context) {
	var req dto.CreateBlogRequest
	if err := ctx.ShouldBind(&req); err != nil {
		middleware.DiscardUploadedFiles(ctx, c.fileStorage)
		middleware.HandleBindingError(ctx, err)
		return
	}

	blog, err := c.blogService.CreateBlog(ctx, &req, middleware.UploadedFiles(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(http.StatusCreated, "Blog created successfully", blog))
}

// GetBlogByID godoc
// @Summary Get a blog by ID
// @Tags blogs
// @Produce json
// @Param id path int true "Blog ID"
// @Success 200 {object} dto.APIResponse{data=models.Blog}
// @Failure 404 {object} dto.APIResponse
// @Router /blogs/{id} [get]
func (c *BlogController) GetBlogByID(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "id")
	if err != nil {
		middleware.HandleAPIError(ctx, apperrors.NewBadRequestError("Invalid blog ID"))
		return
	}

	blog, err := c.blogService.GetBlogByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(http.StatusOK, "Blog retrieved successfully", blog))
}

// ListBlogs godoc
// @Summary List blogs
// @Tags blogs
// @Produce json
// @Param page query int false "Page number (default: 1)"
// @Param limit query int false "Page size (default: 10, max: 100)"
// @Param query query string false "Title or type search"
// @Success 200 {object} dto.APIResponse{data=dto.PaginatedResponse}
// @Router /blogs [get]
func (c *BlogController) ListBlogs(ctx *gin.Context) {
	var q dto.ListQuery
	if err := ctx.ShouldBindQuery(&q); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	page, err := c.blogService.ListBlogs(ctx, q)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(http.StatusOK, "Blogs retrieved successfully", page))
}

// GetAllBlogs godoc
// @Summary Get all blogs
// @Tags blogs
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]models.Blog}
// @Router /blogs/all [get]
func (c *BlogController) GetAllBlogs(ctx *gin.Context) {
	items, err := c.blogService.GetAllBlogs(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(http.StatusOK, "Blogs retrieved successfully", items))
}

// UpdateBlog godoc
// @Summary Update a blog
// @Tags blogs
// @Accept multipart/form-data
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Blog ID"
// @Param title formData string false "Title"
// @Param visibility formData string false "Visibility"
// @Param publishDateTime formData string false "Publish date (RFC 3339)"
// @Param status formData string false "Status (DRAFT, PUBLISHED, ARCHIVED)"
// @Param type formData string false "Type"
// @Param image formData file false "Replacement cover image"
// @Success 200 {object} dto.APIResponse{data=models.Blog}
// @Failure 404 {object} dto.APIResponse
// @Failure 409 {object} dto.APIResponse
// @Router /blogs/{id} [patch]
func (c *BlogController) UpdateBlog(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "id")
	if err != nil {
		middleware.DiscardUploadedFiles(ctx, c.fileStorage)
		middleware.HandleAPIError(ctx, apperrors.NewBadRequestError("Invalid blog ID"))
		return
	}

	var req dto.UpdateBlogRequest
	if err := ctx.ShouldBind(&req); err != nil {
		middleware.DiscardUploadedFiles(ctx, c.fileStorage)
		middleware.HandleBindingError(ctx, err)
		return
	}

	blog, err := c.blogService.UpdateBlog(ctx, id, &req, middleware.UploadedFiles(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(http.StatusOK, "Blog updated successfully", blog))
}

// DeleteBlog godoc
// @Summary Delete a blog
// @Tags blogs
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Blog ID"
// @Success 200 {object} dto.APIResponse
// @Failure 404 {object} dto.APIResponse
// @Router /blogs/{id} [delete]
func (c *BlogController) DeleteBlog(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "id")
	if err != nil {
		middleware.HandleAPIError(ctx, apperrors.NewBadRequestError("Invalid blog ID"))
		return
	}

	if err := c.blogService.DeleteBlog(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(http.StatusOK, "Blog deleted successfully", nil))
}
