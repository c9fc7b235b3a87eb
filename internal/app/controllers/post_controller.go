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

// PostController handles user-submitted post operations
type PostController struct {
	postService services.PostService
	fileStorage filestorage.FileStorage
}

// NewPostController creates a new PostController
func NewPostController(postService services.PostService, fileStorage filestorage.FileStorage) *PostController {
	return &PostController{
		postService: postService,
		fileStorage: fileStorage,
	}
}

// CreatePost godoc
// @Summary Submit a post
// @Tags posts
// @Accept multipart/form-data
// @Produce json
// @Security ApiKeyAuth
// @Param type formData string true "Post type"
// @Param description formData string true "Post body"
// @Param userId formData int true "Author user ID"
// @Param status formData string false "Moderation status" Enums(PENDING, PUBLISHED, REJECTED)
// @Param image formData file false "Post image"
// @Success 201 {object} dto.APIResponse{data=dto.PostResponse}
// @Failure 400 {object} dto.APIResponse
// @Failure 404 {object} dto.APIResponse
// @Router /posts [post]
func (c *PostController) CreatePost(ctx *gin.Context) {
	var req dto.CreatePostRequest
	if err := ctx.ShouldBind(&req); err != nil {
		middleware.DiscardUploadedFiles(ctx, c.fileStorage)
		middleware.HandleBindingError(ctx, err)
		return
	}

	post, err := c.postService.CreatePost(ctx, &req, middleware.UploadedFiles(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(http.StatusCreated, "Post created successfully", post))
}

// GetPostByID godoc
// @Summary Get a post by ID
// @Tags posts
// @Produce json
// @Param id path int true "Post ID"
// @Success 200 {object} dto.APIResponse{data=dto.PostResponse}
// @Failure 404 {object} dto.APIResponse
// @Router /posts/{id} [get]
func (c *PostController) GetPostByID(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "id")
	if err != nil {
		middleware.HandleAPIError(ctx, apperrors.NewBadRequestError("Invalid post ID"))
		return
	}

	post, err := c.postService.GetPostByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(http.StatusOK, "Post retrieved successfully", post))
}

// ListPosts godoc
// @Summary List posts
// @Tags posts
// @Produce json
// @Param page query int false "Page number (default: 1)"
// @Param limit query int false "Page size (default: 10, max: 100)"
// @Param query query string false "Description search"
// @Param type query string false "Filter by post type"
// @Param status query string false "Filter by moderation status" Enums(PENDING, PUBLISHED, REJECTED)
// @Success 200 {object} dto.APIResponse{data=dto.PaginatedResponse}
// @Router /posts [get]
func (c *PostController) ListPosts(ctx *gin.Context) {
	var q dto.ListQuery
	if err := ctx.ShouldBindQuery(&q); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	postType := ctx.Query("type")
	status := ctx.Query("status")

	page, err := c.postService.ListPosts(ctx, postType, status, q)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(http.StatusOK, "Posts retrieved successfully", page))
}

// UpdatePost godoc
// @Summary Update a post
// @Tags posts
// @Accept multipart/form-data
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Post ID"
// @Param type formData string false "Post type"
// @Param description formData string false "Post body"
// @Param status formData string false "Moderation status" Enums(PENDING, PUBLISHED, REJECTED)
// @Param image formData file false "Replacement post image"
// @Success 200 {object} dto.APIResponse{data=dto.PostResponse}
// @Failure 404 {object} dto.APIResponse
// @Router /posts/{id} [patch]
func (c *PostController) UpdatePost(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "id")
	if err != nil {
		middleware.DiscardUploadedFiles(ctx, c.fileStorage)
		middleware.HandleAPIError(ctx, apperrors.NewBadRequestError("Invalid post ID"))
		return
	}

	var req dto.UpdatePostRequest
	if err := ctx.ShouldBind(&req); err != nil {
		middleware.DiscardUploadedFiles(ctx, c.fileStorage)
		middleware.HandleBindingError(ctx, err)
		return
	}

	post, err := c.postService.UpdatePost(ctx, id, &req, middleware.UploadedFiles(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(http.StatusOK, "Post updated successfully", post))
}

// UpdatePostStatus godoc
// @Summary Moderate a post
// @Tags posts
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Post ID"
// @Param request body dto.UpdatePostStatusRequest true "Moderation decision"
// @Success 200 {object} dto.APIResponse{data=dto.PostResponse}
// @Failure 404 {object} dto.APIResponse
// @Router /posts/{id}/status [patch]
func (c *PostController) UpdatePostStatus(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "id")
	if err != nil {
		middleware.HandleAPIError(ctx, apperrors.NewBadRequestError("Invalid post ID"))
		return
	}

	var req dto.UpdatePostStatusRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	post, err := c.postService.UpdatePostStatus(ctx, id, req.Status)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(http.StatusOK, "Post status updated successfully", post))
}

// DeletePost godoc
// @Summary Delete a post
// @Tags posts
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Post ID"
// @Success 200 {object} dto.APIResponse
// @Failure 404 {object} dto.APIResponse
// @Router /posts/{id} [delete]
func (c *PostController) DeletePost(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "id")
	if err != nil {
		middleware.HandleAPIError(ctx, apperrors.NewBadRequestError("Invalid post ID"))
		return
	}

	if err := c.postService.DeletePost(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(http.StatusOK, "Post deleted successfully", nil))
}

// AddView godoc
// @Summary Record a post view
// @Tags posts
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Post ID"
// @Success 200 {object} dto.APIResponse
// @Failure 404 {object} dto.APIResponse
// @Router /posts/{id}/view [post]
func (c *PostController) AddView(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "id")
	if err != nil {
		middleware.HandleAPIError(ctx, apperrors.NewBadRequestError("Invalid post ID"))
		return
	}

	if err := c.postService.AddView(ctx, id, middleware.AccountID(ctx)); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(http.StatusOK, "Post view recorded successfully", nil))
}

// ToggleReaction godoc
// @Summary Toggle a like or dislike on a post
// @Tags posts
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Post ID"
// @Param request body dto.ToggleReactionRequest true "Reaction"
// @Success 200 {object} dto.APIResponse{data=dto.PostResponse}
// @Failure 404 {object} dto.APIResponse
// @Router /posts/{id}/reaction [post]
func (c *PostController) ToggleReaction(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "id")
	if err != nil {
		middleware.HandleAPIError(ctx, apperrors.NewBadRequestError("Invalid post ID"))
		return
	}

	var req dto.ToggleReactionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	post, err := c.postService.ToggleReaction(ctx, id, middleware.AccountID(ctx), req.Reaction)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(http.StatusOK, "Post reaction updated successfully", post))
}
